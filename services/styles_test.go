package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildStyles(t *testing.T) {
	accent := DefaultAccent()
	styles := BuildStyles(accent)

	t.Run("Deterministic", func(t *testing.T) {
		assert.Equal(t, styles, BuildStyles(accent))
	})

	t.Run("Body", func(t *testing.T) {
		assert.Equal(t, "Helvetica", styles.Body.Font)
		assert.Equal(t, "", styles.Body.Variant)
		assert.Equal(t, 11.0, styles.Body.Size)
		assert.Equal(t, 14.0, styles.Body.Leading)
		assert.Equal(t, 6.0, styles.Body.SpaceAfter)
		assert.Equal(t, RGB{}, styles.Body.Color)
	})

	t.Run("Title", func(t *testing.T) {
		assert.Equal(t, "B", styles.Title.Variant)
		assert.Equal(t, 11.0, styles.Title.Size)
		assert.Equal(t, 8.0, styles.Title.SpaceBefore)
		assert.Equal(t, RGB{}, styles.Title.Color)
	})

	t.Run("Accent reserved for price callout", func(t *testing.T) {
		assert.Equal(t, accent, styles.Price.Color)
		assert.Equal(t, 24.0, styles.Price.Size)
		assert.Equal(t, 28.0, styles.Price.Leading)
		assert.Equal(t, "C", styles.Price.Align)
		assert.Equal(t, "B", styles.Price.Variant)
	})

	t.Run("Italic note", func(t *testing.T) {
		assert.Equal(t, "I", styles.Italic.Variant)
		assert.Equal(t, "C", styles.Italic.Align)
		assert.Equal(t, RGB{}, styles.Italic.Color)
	})
}

func TestDefaultAccent(t *testing.T) {
	assert.Equal(t, RGB{R: 193, G: 18, B: 31}, DefaultAccent())
}
