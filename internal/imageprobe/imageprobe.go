// Package imageprobe checks that an image file can actually be decoded
// before it is placed in the deck.
package imageprobe

import (
	"errors"
	"fmt"
	"image"
	"os"

	// Decoders registered with image.Decode.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// ErrUndecodable indicates the file is not an image any registered decoder
// understands, or is truncated.
var ErrUndecodable = errors.New("image could not be decoded")

// Info describes a decoded image.
type Info struct {
	Format string
	Width  int
	Height int
}

// Check opens path and decodes the whole image. Decoding fully (not just the
// header) catches truncated files that Chrome would draw as a broken icon.
func Check(path string) (Info, error) {
	f, err := os.Open(path) // #nosec G304 -- graph paths come from deck configuration
	if err != nil {
		return Info{}, err
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return Info{}, fmt.Errorf("%w: %s: %v", ErrUndecodable, path, err)
	}
	b := img.Bounds()
	return Info{Format: format, Width: b.Dx(), Height: b.Dy()}, nil
}
