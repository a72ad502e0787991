package render

import (
	"errors"
	"image"
	"image/png"
	"os"

	"mad-terrain/internal/core"
)

// ErrNoGrid is returned when there is nothing to render.
var ErrNoGrid = errors.New("render: nil grid")

// Image composes g into an RGBA image, top row first.
func Image(g *core.TileGrid, l Layers) *image.RGBA {
	b := g.Bounds()
	img := image.NewRGBA(image.Rect(0, 0, b.W, b.H))
	fillTileRGBA(img.Pix, b.W, b.H, g.ForegroundCells(), g.BackgroundCells(), l)
	return img
}

// WritePNG stores the composed grid at path.
func WritePNG(path string, g *core.TileGrid, l Layers) error {
	if g == nil {
		return ErrNoGrid
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, Image(g, l)); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
