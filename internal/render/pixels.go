package render

import (
	"image/color"

	"mad-terrain/internal/core"
	"mad-terrain/internal/worldgen"
)

// Layers selects the palettes used to compose a tile grid.
type Layers struct {
	Foreground     []color.RGBA
	Background     []color.RGBA
	Sky            color.RGBA
	HideBackground bool
}

// DefaultLayers uses the terrain palettes over a pale sky.
func DefaultLayers() Layers {
	return Layers{
		Foreground: worldgen.Palette(),
		Background: worldgen.BackgroundPalette(),
		Sky:        color.RGBA{R: 150, G: 200, B: 235, A: 255},
	}
}

// fillTileRGBA composes foreground tiles over background tiles into buf.
// Grid rows grow upward, so the last grid row lands on the first pixel row.
func fillTileRGBA(buf []byte, w, h int, fg, bg []core.Tile, l Layers) {
	if len(fg) != w*h || len(bg) != w*h || len(buf) < 4*w*h {
		return
	}
	for row := 0; row < h; row++ {
		dstRow := h - 1 - row
		for x := 0; x < w; x++ {
			i := row*w + x
			col, ok := lookup(l.Foreground, fg[i])
			if !ok && !l.HideBackground {
				col, ok = lookup(l.Background, bg[i])
			}
			if !ok {
				col = l.Sky
			}
			base := (dstRow*w + x) * 4
			buf[base+0] = col.R
			buf[base+1] = col.G
			buf[base+2] = col.B
			buf[base+3] = col.A
		}
	}
}

// lookup returns the palette entry of t. Air and transparent entries report
// false. Tiles beyond the palette use its last entry.
func lookup(palette []color.RGBA, t core.Tile) (color.RGBA, bool) {
	if t == core.None || len(palette) == 0 {
		return color.RGBA{}, false
	}
	idx := int(t)
	if last := len(palette) - 1; idx > last {
		idx = last
	}
	col := palette[idx]
	return col, col.A != 0
}
