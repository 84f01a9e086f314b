package services

import (
	"image"
	"os"

	// Raster formats accepted for brand assets and vehicle photos. The x/image
	// drivers extend the stdlib set so geometry survives bmp/tiff/webp art.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// LayoutConfig holds the fixed page constants, in points. It is passed
// explicitly rather than kept as package globals so tests can exercise the
// geometry with alternate constants.
type LayoutConfig struct {
	PageWidth       float64
	PageHeight      float64
	Margin          float64
	BottomOffset    float64
	ReservedGap     float64
	VehicleGap      float64
	MaxVehicleWidth float64
	MaxVehicleRatio float64
	MinUsableHeight float64
}

// DefaultLayout returns the production layout: A4, ~15 mm margins, footer
// 0.5 cm from the page bottom with a 10 pt gap reserved above it, vehicle
// photo padded by ~1 cm and capped at 30% of the first page's usable height.
func DefaultLayout() LayoutConfig {
	return LayoutConfig{
		PageWidth:       595.28,
		PageHeight:      841.89,
		Margin:          42.52,
		BottomOffset:    14.17,
		ReservedGap:     10,
		VehicleGap:      28.35,
		MaxVehicleWidth: 283.46,
		MaxVehicleRatio: 0.30,
		MinUsableHeight: 100,
	}
}

// PageGeometry is the computed frame geometry for one render call.
type PageGeometry struct {
	PageWidth    float64
	PageHeight   float64
	Margin       float64
	UsableWidth  float64
	BottomOffset float64

	HeaderHeight   float64
	FooterHeight   float64
	BottomReserved float64

	FirstPageUsableHeight    float64
	ContinuationUsableHeight float64
}

// readImageSize returns an image file's pixel dimensions without decoding
// pixel data. An unopenable file is an *AssetReadError; a file the registered
// decoders cannot parse reports zero dimensions and no error, so layout
// degrades instead of aborting.
func readImageSize(path string) (int, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, &AssetReadError{Path: path, Err: err}
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return 0, 0, nil
	}
	return cfg.Width, cfg.Height, nil
}

// scaledImageHeight returns the rendered height of an image scaled,
// aspect-preserving, to targetWidth points. Zero or negative source
// dimensions yield 0, never an error.
func scaledImageHeight(pixelWidth, pixelHeight int, targetWidth float64) float64 {
	if pixelWidth <= 0 || pixelHeight <= 0 {
		return 0
	}
	return float64(pixelHeight) * (targetWidth / float64(pixelWidth))
}

// ComputeGeometry derives the two usable content rectangles from the brand
// images. The footer scales to the full page width, the header to the usable
// width; both usable heights are floored at MinUsableHeight so oversized art
// can never produce a degenerate frame.
func ComputeGeometry(cfg LayoutConfig, headerPath, footerPath string) (PageGeometry, error) {
	usableWidth := cfg.PageWidth - 2*cfg.Margin

	hw, hh, err := readImageSize(headerPath)
	if err != nil {
		return PageGeometry{}, err
	}
	headerHeight := scaledImageHeight(hw, hh, usableWidth)

	fw, fh, err := readImageSize(footerPath)
	if err != nil {
		return PageGeometry{}, err
	}
	footerHeight := scaledImageHeight(fw, fh, cfg.PageWidth)

	bottomReserved := cfg.BottomOffset + footerHeight + cfg.ReservedGap
	firstTop := cfg.PageHeight - cfg.Margin - headerHeight
	laterTop := cfg.PageHeight - cfg.Margin

	return PageGeometry{
		PageWidth:                cfg.PageWidth,
		PageHeight:               cfg.PageHeight,
		Margin:                   cfg.Margin,
		UsableWidth:              usableWidth,
		BottomOffset:             cfg.BottomOffset,
		HeaderHeight:             headerHeight,
		FooterHeight:             footerHeight,
		BottomReserved:           bottomReserved,
		FirstPageUsableHeight:    max(firstTop-bottomReserved, cfg.MinUsableHeight),
		ContinuationUsableHeight: max(laterTop-bottomReserved, cfg.MinUsableHeight),
	}, nil
}
