package services

import (
	"fmt"
	"os"
	"path/filepath"
)

// Default brand asset filenames under the configured assets directory.
const (
	DefaultHeaderFile = "Heater.jpg"
	DefaultFooterFile = "footer.jpg"
)

// BrandAssets holds the header/footer image paths used for one render.
// Both are mandatory; the vehicle photo is carried separately and optional.
type BrandAssets struct {
	HeaderPath string
	FooterPath string
}

// ResolveBrandAssets returns the default header/footer locations, verifying
// they exist. Uploaded overrides take precedence over defaults; a missing
// default without an override is a precondition failure for the request.
func ResolveBrandAssets(assetsDir string, headerOverride, footerOverride string) (BrandAssets, error) {
	assets := BrandAssets{
		HeaderPath: filepath.Join(assetsDir, DefaultHeaderFile),
		FooterPath: filepath.Join(assetsDir, DefaultFooterFile),
	}
	if headerOverride != "" {
		assets.HeaderPath = headerOverride
	}
	if footerOverride != "" {
		assets.FooterPath = footerOverride
	}

	for _, p := range []string{assets.HeaderPath, assets.FooterPath} {
		if _, err := os.Stat(p); err != nil {
			return BrandAssets{}, fmt.Errorf("brand assets missing: upload header_image/footer_image or place %s and %s under %s",
				DefaultHeaderFile, DefaultFooterFile, assetsDir)
		}
	}
	return assets, nil
}
