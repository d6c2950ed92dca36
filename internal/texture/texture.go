// Package texture loads and prepares the image wrapped onto UV-mapped geometry.
package texture

import (
	"fmt"
	"image"
	"image/color"

	"github.com/anthonynsimon/bild/clone"
	"github.com/anthonynsimon/bild/imgio"
	"github.com/anthonynsimon/bild/transform"

	// Decoders beyond the png/jpeg set registered by imgio.
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// MaxSize caps the texture edge uploaded to the GPU.
const MaxSize = 2048

const (
	defaultSize  = 512
	defaultCells = 8
)

var (
	checkerLight = color.RGBA{R: 235, G: 235, B: 235, A: 255}
	checkerDark  = color.RGBA{R: 70, G: 110, B: 140, A: 255}
)

// Load decodes an image file (png, jpeg, bmp, tiff, webp).
func Load(path string) (image.Image, error) {
	img, err := imgio.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load texture %s: %w", path, err)
	}
	return img, nil
}

// Prepare returns img as RGBA with power-of-two edges no larger than maxSize,
// resampling only when the size has to change.
func Prepare(img image.Image, maxSize int) *image.RGBA {
	b := img.Bounds()
	w, h := potSize(b.Dx(), maxSize), potSize(b.Dy(), maxSize)
	if w == b.Dx() && h == b.Dy() {
		return clone.AsRGBA(img)
	}
	return transform.Resize(img, w, h, transform.Linear)
}

// potSize is the power of two closest to n (ties round up), clamped to [1, maxSize].
func potSize(n, maxSize int) int {
	p := 1
	for p < n && p < maxSize {
		p <<= 1
	}
	if p > 1 && p-n > n-p/2 {
		p >>= 1
	}
	return p
}

// Checker returns a size x size checkerboard with cells x cells squares, starting with a
// in the top-left corner.
func Checker(size, cells int, a, b color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	cell := max(size/max(cells, 1), 1)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			c := a
			if (x/cell+y/cell)%2 == 1 {
				c = b
			}
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

// Default is the built-in checkerboard used when no texture file is configured.
func Default() *image.RGBA {
	return Checker(defaultSize, defaultCells, checkerLight, checkerDark)
}
