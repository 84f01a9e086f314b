package services

import (
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func fillTestImage(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: 200, G: 200, B: 200, A: 255})
		}
	}
	return img
}

func writeTestPNG(t *testing.T, dir, name string, width, height int) string {
	t.Helper()
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create test image: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, fillTestImage(width, height)); err != nil {
		t.Fatalf("failed to encode test png: %v", err)
	}
	return path
}

func writeTestJPEG(t *testing.T, dir, name string, width, height int) string {
	t.Helper()
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create test image: %v", err)
	}
	defer f.Close()
	if err := jpeg.Encode(f, fillTestImage(width, height), nil); err != nil {
		t.Fatalf("failed to encode test jpeg: %v", err)
	}
	return path
}

// writeMislabeledImage writes GIF data under the given (non-gif) filename.
// image.DecodeConfig sniffs content and still reads dimensions; the PDF
// writer trusts the extension and rejects the data.
func writeMislabeledImage(t *testing.T, dir, name string, width, height int) string {
	t.Helper()
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create test image: %v", err)
	}
	defer f.Close()
	if err := gif.Encode(f, fillTestImage(width, height), nil); err != nil {
		t.Fatalf("failed to encode test gif: %v", err)
	}
	return path
}
