package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveBrandAssets(t *testing.T) {
	t.Run("Defaults present", func(t *testing.T) {
		dir := t.TempDir()
		header := writeTestJPEG(t, dir, DefaultHeaderFile, 800, 100)
		footer := writeTestJPEG(t, dir, DefaultFooterFile, 1000, 80)

		assets, err := ResolveBrandAssets(dir, "", "")
		assert.NoError(t, err)
		assert.Equal(t, header, assets.HeaderPath)
		assert.Equal(t, footer, assets.FooterPath)
	})

	t.Run("Overrides beat defaults", func(t *testing.T) {
		dir := t.TempDir()
		override := writeTestJPEG(t, dir, "custom_header.jpg", 800, 120)
		footer := writeTestJPEG(t, dir, DefaultFooterFile, 1000, 80)

		assets, err := ResolveBrandAssets(dir, override, "")
		assert.NoError(t, err)
		assert.Equal(t, override, assets.HeaderPath)
		assert.Equal(t, footer, assets.FooterPath)
	})

	t.Run("Missing defaults without overrides fail", func(t *testing.T) {
		_, err := ResolveBrandAssets(t.TempDir(), "", "")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "brand assets missing")
	})
}
