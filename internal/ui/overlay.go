//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"mad-terrain/internal/worldgen"
)

// Overlay draws optional debugging visuals on top of the terrain view.
type Overlay struct {
	world *worldgen.World
	scale int

	showBiomes  bool
	showCaves   bool
	showSurface bool

	maskImg *ebiten.Image
	maskBuf []byte
	maskFor *worldgen.World

	pixel *ebiten.Image
}

// NewOverlay constructs an overlay. The biome strip starts visible.
func NewOverlay(scale int) *Overlay {
	if scale <= 0 {
		scale = 1
	}
	o := &Overlay{scale: scale, showBiomes: true}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// SetWorld switches the overlay to a freshly generated world.
func (o *Overlay) SetWorld(w *worldgen.World) { o.world = w }

// Update toggles layers: 1 biome strip, 2 cave mask, 3 surface line.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showBiomes = !o.showBiomes
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showCaves = !o.showCaves
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit3) {
		o.showSurface = !o.showSurface
	}
}

// Draw renders the enabled layers onto screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if o.world == nil || o.world.Grid == nil {
		return
	}
	if o.showCaves {
		o.drawCaveMask(screen)
	}
	if o.showSurface {
		o.drawSurface(screen)
	}
	if o.showBiomes {
		o.drawBiomeStrip(screen)
	}
}

const biomeStripHeight = 6

func (o *Overlay) drawBiomeStrip(screen *ebiten.Image) {
	minX := o.world.Config.MinX()
	for _, ch := range o.world.Chunks {
		col := worldgen.BiomeColor(ch.Biome)
		col.A = 200
		x := float64((ch.StartX - minX) * o.scale)
		w := float64((ch.EndX - ch.StartX) * o.scale)
		o.fillRect(screen, x, 0, w, biomeStripHeight, col)
	}
}

// drawSurface marks the surface row of every column.
func (o *Overlay) drawSurface(screen *ebiten.Image) {
	b := o.world.Grid.Bounds()
	col := color.RGBA{R: 255, G: 60, B: 60, A: 220}
	for i, surface := range o.world.Surface {
		row := b.MinY + b.H - 1 - surface
		o.fillRect(screen, float64(i*o.scale), float64(row*o.scale), float64(o.scale), float64(o.scale), col)
	}
}

// drawCaveMask tints carved cells: air in front of a background wall.
func (o *Overlay) drawCaveMask(screen *ebiten.Image) {
	g := o.world.Grid
	size := g.Size()
	total := size.W * size.H
	if total == 0 {
		return
	}
	if o.maskImg == nil || o.maskImg.Bounds().Dx() != size.W || o.maskImg.Bounds().Dy() != size.H {
		o.maskImg = ebiten.NewImage(size.W, size.H)
		o.maskBuf = make([]byte, 4*total)
		o.maskFor = nil
	}
	if o.maskFor != o.world {
		fg := g.ForegroundCells()
		bg := g.BackgroundCells()
		for row := 0; row < size.H; row++ {
			dst := (size.H - 1 - row) * size.W
			for x := 0; x < size.W; x++ {
				i := row*size.W + x
				base := (dst + x) * 4
				if fg[i] == 0 && bg[i] != 0 {
					o.maskBuf[base+0] = 255
					o.maskBuf[base+1] = 0
					o.maskBuf[base+2] = 200
					o.maskBuf[base+3] = 140
					continue
				}
				o.maskBuf[base+3] = 0
			}
		}
		o.maskImg.ReplacePixels(o.maskBuf)
		o.maskFor = o.world
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(o.scale), float64(o.scale))
	screen.DrawImage(o.maskImg, op)
}

func (o *Overlay) fillRect(screen *ebiten.Image, x, y, w, h float64, col color.RGBA) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorM.Scale(float64(col.R)/255.0, float64(col.G)/255.0, float64(col.B)/255.0, float64(col.A)/255.0)
	screen.DrawImage(o.pixel, op)
}
