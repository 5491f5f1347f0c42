package images

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func writeTestPNG(t *testing.T, w, h int) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Failed to create test image: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, image.NewRGBA(image.Rect(0, 0, w, h))); err != nil {
		t.Fatalf("Failed to encode test image: %v", err)
	}
	return path
}

func TestProbeSize(t *testing.T) {
	path := writeTestPNG(t, 321, 240)

	w, h, err := ProbeSize(path)
	if err != nil {
		t.Fatalf("ProbeSize() error = %v", err)
	}
	if w != 321 || h != 240 {
		t.Errorf("ProbeSize() = %dx%d, want 321x240", w, h)
	}
}

func TestProbeSize_NotAnImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bogus.png")
	if err := os.WriteFile(path, []byte("not an image"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, _, err := ProbeSize(path); err == nil {
		t.Error("ProbeSize() expected error for non-image data")
	}
}

func TestEven(t *testing.T) {
	tests := []struct{ in, want int }{
		{0, 0}, {1, 2}, {2, 2}, {255, 256}, {256, 256},
	}
	for _, tt := range tests {
		if got := Even(tt.in); got != tt.want {
			t.Errorf("Even(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
