package images

import (
	"bytes"
	"image/png"
	"testing"
)

const testSVG = `<svg viewBox="0 0 100 50" xmlns="http://www.w3.org/2000/svg">
  <rect x="10" y="10" width="80" height="30" fill="none" stroke="black"/>
</svg>`

func TestRasterizeSVGToImage(t *testing.T) {
	tests := []struct {
		name             string
		targetW, targetH int
		wantW, wantH     int
	}{
		{"intrinsic size", 0, 0, 100, 50},
		{"scale by width", 200, 0, 200, 100},
		{"scale by height", 0, 100, 200, 100},
		{"fit into box", 300, 100, 200, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, err := RasterizeSVGToImage([]byte(testSVG), tt.targetW, tt.targetH)
			if err != nil {
				t.Fatalf("RasterizeSVGToImage() error = %v", err)
			}
			b := img.Bounds()
			if b.Dx() != tt.wantW || b.Dy() != tt.wantH {
				t.Errorf("rasterized size = %dx%d, want %dx%d", b.Dx(), b.Dy(), tt.wantW, tt.wantH)
			}
		})
	}
}

func TestRasterizeSVGToImage_ClampsHugeViewBox(t *testing.T) {
	huge := `<svg viewBox="0 0 100000 100000" xmlns="http://www.w3.org/2000/svg"></svg>`
	img, err := RasterizeSVGToImage([]byte(huge), 0, 0)
	if err != nil {
		t.Fatalf("RasterizeSVGToImage() error = %v", err)
	}
	b := img.Bounds()
	if b.Dx() > maxRasterDim || b.Dy() > maxRasterDim {
		t.Errorf("rasterized size = %dx%d exceeds clamp %d", b.Dx(), b.Dy(), maxRasterDim)
	}
}

func TestRasterizeSVGToImage_BadData(t *testing.T) {
	if _, err := RasterizeSVGToImage([]byte("not svg at all"), 0, 0); err == nil {
		t.Error("RasterizeSVGToImage() expected error for invalid data")
	}
}

func TestRasterizeSVGToPNG(t *testing.T) {
	data, err := RasterizeSVGToPNG([]byte(testSVG), 64, 0)
	if err != nil {
		t.Fatalf("RasterizeSVGToPNG() error = %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("result does not decode as PNG: %v", err)
	}
	if img.Bounds().Dx() != 64 {
		t.Errorf("PNG width = %d, want 64", img.Bounds().Dx())
	}
}
