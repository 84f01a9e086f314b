package services

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLocalArchive(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "archive_test")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tempDir)

	archive := NewLocalArchive(tempDir)
	ctx := context.Background()
	content := []byte("%PDF-1.3 fake quote")
	key := "quotes/2026-08/Preventivo_Larini_Model_X_2026-08-23.pdf"

	t.Run("Put creates file", func(t *testing.T) {
		url, err := archive.Put(ctx, key, content, "application/pdf")
		assert.NoError(t, err)
		assert.NotEmpty(t, url)

		_, err = os.Stat(filepath.Join(tempDir, key))
		assert.NoError(t, err)
	})

	t.Run("Get retrieves content and type", func(t *testing.T) {
		reader, contentType, err := archive.Get(ctx, key)
		assert.NoError(t, err)
		defer reader.Close()

		got, _ := io.ReadAll(reader)
		assert.Equal(t, content, got)
		assert.Equal(t, "application/pdf", contentType)
	})

	t.Run("GetSignedURL returns local path", func(t *testing.T) {
		url, err := archive.GetSignedURL(ctx, key, time.Hour)
		assert.NoError(t, err)
		assert.Equal(t, "/"+filepath.Join(tempDir, key), url)
	})

	t.Run("Delete removes file", func(t *testing.T) {
		assert.NoError(t, archive.Delete(ctx, key))
		_, err := os.Stat(filepath.Join(tempDir, key))
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("Delete is idempotent", func(t *testing.T) {
		assert.NoError(t, archive.Delete(ctx, key))
	})

	t.Run("Always configured", func(t *testing.T) {
		assert.True(t, archive.IsConfigured())
	})
}

func TestQuoteArchiveKey(t *testing.T) {
	renderedAt := time.Date(2026, 8, 23, 10, 30, 0, 0, time.UTC)
	key := QuoteArchiveKey(renderedAt, "Preventivo_Larini_Model_X_2026-08-23.pdf")
	assert.Equal(t, "quotes/2026-08/Preventivo_Larini_Model_X_2026-08-23.pdf", key)
}
