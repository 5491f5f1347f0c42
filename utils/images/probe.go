// Package images holds small image helpers shared by the encode pipeline:
// dimension probing and SVG rasterization.
package images

import (
	"fmt"
	"image"
	"os"

	// register decoders for every raster format we accept as a frame
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// ProbeSize returns pixel dimensions of an image file reading only its
// header, without decoding pixel data.
func ProbeSize(path string) (width, height int, err error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, err
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return 0, 0, fmt.Errorf("unable to decode image header of %q: %w", path, err)
	}
	return cfg.Width, cfg.Height, nil
}

// Even rounds n up to the nearest even value. libx264 refuses odd frame
// dimensions with the default pixel formats.
func Even(n int) int {
	if n%2 == 0 {
		return n
	}
	return n + 1
}
