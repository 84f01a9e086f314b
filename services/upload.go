package services

import (
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

const (
	MaxUploadSize = 10 * 1024 * 1024 // 10MB
)

// Image uploads are limited to formats the PDF writer can embed.
var allowedImageExtensions = []string{".jpg", ".jpeg", ".png", ".gif"}

// Supplier documents accepted by the best-effort extractor.
var allowedSupplierExtensions = []string{".pdf", ".docx", ".doc", ".xlsx", ".txt"}

// ValidateImageUpload checks that an uploaded brand image or vehicle photo is
// an embeddable raster image within size limits.
func ValidateImageUpload(fileHeader *multipart.FileHeader) error {
	if fileHeader.Size > MaxUploadSize {
		return fmt.Errorf("file size exceeds maximum allowed size of 10MB")
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !extensionAllowed(ext, allowedImageExtensions) {
		return fmt.Errorf("image type not allowed. Accepted formats: JPG, PNG, GIF")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	buffer := make([]byte, 512)
	n, err := file.Read(buffer)
	if err != nil && err != io.EOF {
		return fmt.Errorf("failed to read file content: %w", err)
	}
	if !isRasterImage(buffer[:n]) {
		return fmt.Errorf("file is not a valid image")
	}

	return nil
}

// ValidateSupplierUpload checks that an uploaded supplier document has an
// extractable format within size limits.
func ValidateSupplierUpload(fileHeader *multipart.FileHeader) error {
	if fileHeader.Size > MaxUploadSize {
		return fmt.Errorf("file size exceeds maximum allowed size of 10MB")
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !extensionAllowed(ext, allowedSupplierExtensions) {
		return fmt.Errorf("file type not allowed. Accepted formats: PDF, DOC, DOCX, XLSX, TXT")
	}

	return nil
}

func extensionAllowed(ext string, allowed []string) bool {
	for _, a := range allowed {
		if ext == a {
			return true
		}
	}
	return false
}

// isRasterImage sniffs the magic bytes of the formats the renderer embeds.
func isRasterImage(head []byte) bool {
	switch {
	case len(head) >= 8 && string(head[0:8]) == "\x89PNG\r\n\x1a\n":
		return true
	case len(head) >= 3 && string(head[0:3]) == "\xff\xd8\xff":
		return true
	case len(head) >= 6 && (string(head[0:6]) == "GIF87a" || string(head[0:6]) == "GIF89a"):
		return true
	}
	return false
}

// SaveTempUpload writes an uploaded file under tmpDir with a uuid-prefixed
// filename. The handler owns the returned path and removes it after the
// render completes; the engine only ever reads it.
func SaveTempUpload(fileHeader *multipart.FileHeader, tmpDir string, prefix string) (string, error) {
	if err := os.MkdirAll(tmpDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create tmp directory: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	fileName := fmt.Sprintf("%s_%s%s", prefix, uuid.New().String(), ext)
	filePath := filepath.Join(tmpDir, fileName)

	// Verify path is within tmp directory (prevent path traversal)
	absTmpDir, err := filepath.Abs(tmpDir)
	if err != nil {
		return "", fmt.Errorf("failed to resolve tmp directory: %w", err)
	}
	absFilePath, err := filepath.Abs(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to resolve file path: %w", err)
	}
	if !strings.HasPrefix(absFilePath, absTmpDir) {
		return "", fmt.Errorf("invalid file path: path traversal detected")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	dst, err := os.Create(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		os.Remove(filePath)
		return "", fmt.Errorf("failed to save file: %w", err)
	}

	return filePath, nil
}

// RemoveTempFiles deletes temp uploads after a render. Missing files are not
// an error.
func RemoveTempFiles(paths ...string) {
	for _, p := range paths {
		if p == "" {
			continue
		}
		if err := os.Remove(p); err != nil && !os.IsNotExist(err) {
			log.Printf("[WARNING] Failed to remove temp file %s: %v", p, err)
		}
	}
}
