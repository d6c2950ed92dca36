package texture

import (
	"image"
	"image/color"
	"path/filepath"
	"testing"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChecker(t *testing.T) {
	t.Parallel()

	a := color.RGBA{R: 255, A: 255}
	b := color.RGBA{B: 255, A: 255}
	img := Checker(8, 4, a, b)

	require.Equal(t, image.Rect(0, 0, 8, 8), img.Bounds())
	assert.Equal(t, a, img.RGBAAt(0, 0))
	assert.Equal(t, a, img.RGBAAt(1, 1))
	assert.Equal(t, b, img.RGBAAt(2, 0))
	assert.Equal(t, b, img.RGBAAt(0, 2))
	assert.Equal(t, a, img.RGBAAt(7, 7))
}

func TestPotSize(t *testing.T) {
	t.Parallel()

	cases := []struct{ n, max, want int }{
		{0, 2048, 1},
		{1, 2048, 1},
		{512, 2048, 512},
		{300, 2048, 256},
		{384, 2048, 512},
		{1000, 2048, 1024},
		{5000, 2048, 2048},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, potSize(tc.n, tc.max), "potSize(%d, %d)", tc.n, tc.max)
	}
}

func TestPrepare(t *testing.T) {
	t.Parallel()

	src := image.NewRGBA(image.Rect(0, 0, 300, 520))
	out := Prepare(src, MaxSize)
	assert.Equal(t, image.Rect(0, 0, 256, 512), out.Bounds())

	pot := Default()
	same := Prepare(pot, MaxSize)
	assert.Equal(t, pot.Bounds(), same.Bounds())
	assert.Equal(t, pot.Pix, same.Pix)
}

func TestLoad(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "checker.png")
	require.NoError(t, imgio.Save(path, Checker(16, 2, checkerLight, checkerDark), imgio.PNGEncoder()))

	img, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 16, 16), img.Bounds())

	_, err = Load(filepath.Join(t.TempDir(), "missing.png"))
	assert.Error(t, err)
}
