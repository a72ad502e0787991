package core

import (
	"crypto/sha256"
	"encoding/binary"
)

// Tile identifies a renderable block type. None means air.
type Tile uint16

// None is the empty tile.
const None Tile = 0

// Bounds is a half-open rectangle of cell coordinates.
type Bounds struct {
	MinX, MinY int
	W, H       int
}

// Contains reports whether (x, y) lies inside the bounds.
func (b Bounds) Contains(x, y int) bool {
	return x >= b.MinX && x < b.MinX+b.W && y >= b.MinY && y < b.MinY+b.H
}

// TileGrid stores foreground and background tiles in row-major order. Writes
// outside the bounds are dropped, reads outside return None.
type TileGrid struct {
	b  Bounds
	fg []Tile
	bg []Tile
}

// NewTileGrid allocates a grid covering the given bounds.
func NewTileGrid(b Bounds) *TileGrid {
	if b.W <= 0 {
		b.W = 1
	}
	if b.H <= 0 {
		b.H = 1
	}
	return &TileGrid{b: b, fg: make([]Tile, b.W*b.H), bg: make([]Tile, b.W*b.H)}
}

// Bounds returns the covered rectangle.
func (g *TileGrid) Bounds() Bounds { return g.b }

// Size reports the grid dimensions.
func (g *TileGrid) Size() Size { return Size{W: g.b.W, H: g.b.H} }

// Index returns the linear slice index for coordinates (x, y), or -1 when the
// cell is out of bounds.
func (g *TileGrid) Index(x, y int) int {
	if !g.b.Contains(x, y) {
		return -1
	}
	return (y-g.b.MinY)*g.b.W + (x - g.b.MinX)
}

// Foreground returns the foreground tile at (x, y).
func (g *TileGrid) Foreground(x, y int) Tile {
	if i := g.Index(x, y); i >= 0 {
		return g.fg[i]
	}
	return None
}

// Background returns the background tile at (x, y).
func (g *TileGrid) Background(x, y int) Tile {
	if i := g.Index(x, y); i >= 0 {
		return g.bg[i]
	}
	return None
}

// SetForeground implements Sink.
func (g *TileGrid) SetForeground(x, y int, t Tile) {
	if i := g.Index(x, y); i >= 0 {
		g.fg[i] = t
	}
}

// SetBackground implements Sink.
func (g *TileGrid) SetBackground(x, y int, t Tile) {
	if i := g.Index(x, y); i >= 0 {
		g.bg[i] = t
	}
}

// ClearForeground implements Sink.
func (g *TileGrid) ClearForeground() { clear(g.fg) }

// ClearBackground implements Sink.
func (g *TileGrid) ClearBackground() { clear(g.bg) }

// ForegroundCells exposes the backing foreground slice.
func (g *TileGrid) ForegroundCells() []Tile { return g.fg }

// BackgroundCells exposes the backing background slice.
func (g *TileGrid) BackgroundCells() []Tile { return g.bg }

// Load replaces both layers. Slices must match the grid area.
func (g *TileGrid) Load(fg, bg []Tile) bool {
	if len(fg) != len(g.fg) || len(bg) != len(g.bg) {
		return false
	}
	copy(g.fg, fg)
	copy(g.bg, bg)
	return true
}

// Digest hashes both layers so grids can be compared cheaply.
func (g *TileGrid) Digest() [32]byte {
	h := sha256.New()
	var tmp [8]byte
	binary.LittleEndian.PutUint32(tmp[:4], uint32(int32(g.b.MinX)))
	binary.LittleEndian.PutUint32(tmp[4:], uint32(int32(g.b.MinY)))
	h.Write(tmp[:])
	binary.LittleEndian.PutUint32(tmp[:4], uint32(g.b.W))
	binary.LittleEndian.PutUint32(tmp[4:], uint32(g.b.H))
	h.Write(tmp[:])
	for _, layer := range [][]Tile{g.fg, g.bg} {
		for _, v := range layer {
			binary.LittleEndian.PutUint16(tmp[:2], uint16(v))
			h.Write(tmp[:2])
		}
	}
	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}

// Replay writes every non-empty cell of g into dst after clearing dst's layers.
func Replay(g *TileGrid, dst Sink) {
	dst.ClearForeground()
	dst.ClearBackground()
	b := g.b
	for row := 0; row < b.H; row++ {
		for col := 0; col < b.W; col++ {
			i := row*b.W + col
			x, y := b.MinX+col, b.MinY+row
			if g.bg[i] != None {
				dst.SetBackground(x, y, g.bg[i])
			}
			if g.fg[i] != None {
				dst.SetForeground(x, y, g.fg[i])
			}
		}
	}
}
