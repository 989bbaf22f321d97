package imageprobe_test

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/bmp"

	"github.com/alnah/go-beaddeck/internal/imageprobe"
)

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.RGBA{R: 0, G: 128, B: 0, A: 255})
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png.Encode() error = %v", err)
	}
	return buf.Bytes()
}

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

// ---------------------------------------------------------------------------
// TestCheck
// ---------------------------------------------------------------------------

func TestCheck_PNG(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "graph.png", encodePNG(t, 30, 20))

	info, err := imageprobe.Check(path)
	if err != nil {
		t.Fatalf("Check() error = %v", err)
	}
	if info.Format != "png" || info.Width != 30 || info.Height != 20 {
		t.Errorf("Check() = %+v, want png 30x20", info)
	}
}

func TestCheck_BMP(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := bmp.Encode(&buf, image.NewGray(image.Rect(0, 0, 4, 4))); err != nil {
		t.Fatalf("bmp.Encode() error = %v", err)
	}
	path := writeFile(t, "graph.bmp", buf.Bytes())

	info, err := imageprobe.Check(path)
	if err != nil {
		t.Fatalf("Check() error = %v", err)
	}
	if info.Format != "bmp" {
		t.Errorf("Check().Format = %q, want bmp", info.Format)
	}
}

func TestCheck_Undecodable(t *testing.T) {
	t.Parallel()

	full := encodePNG(t, 50, 50)

	tests := []struct {
		name string
		data []byte
	}{
		{name: "not an image", data: []byte("digraph { a -> b }")},
		{name: "empty file", data: nil},
		{name: "truncated png", data: full[:len(full)/2]},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			path := writeFile(t, "graph.png", tt.data)
			_, err := imageprobe.Check(path)
			if !errors.Is(err, imageprobe.ErrUndecodable) {
				t.Errorf("Check() error = %v, want %v", err, imageprobe.ErrUndecodable)
			}
		})
	}
}

func TestCheck_Missing(t *testing.T) {
	t.Parallel()

	_, err := imageprobe.Check(filepath.Join(t.TempDir(), "nope.png"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Check() error = %v, want %v", err, os.ErrNotExist)
	}
}
