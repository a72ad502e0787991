//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"

	"mad-terrain/internal/core"
)

// GridPainter uploads a tile grid into a single RGBA image.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// Update recomposes the painter image from g.
func (gp *GridPainter) Update(g *core.TileGrid, l Layers) {
	if g == nil || g.Size() != (core.Size{W: gp.w, H: gp.h}) {
		return
	}
	fillTileRGBA(gp.buf, gp.w, gp.h, g.ForegroundCells(), g.BackgroundCells(), l)
	gp.img.ReplacePixels(gp.buf)
}

// Draw paints the last composed image scaled onto dst.
func (gp *GridPainter) Draw(dst *ebiten.Image, scale int) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
