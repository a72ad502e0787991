// Package store holds the pieces shared by the persistent tile sinks.
package store

import (
	"cmp"
	"slices"

	"mad-terrain/internal/core"
)

// Cell addresses one grid position.
type Cell struct {
	X, Y int
}

// Pair is the foreground/background stack at one cell.
type Pair struct {
	FG core.Tile
	BG core.Tile
}

// Empty reports whether both layers are None.
func (p Pair) Empty() bool { return p.FG == core.None && p.BG == core.None }

// Buffer is an unbounded sparse Sink. Persistent sinks collect writes in a
// Buffer and store its final state on flush.
type Buffer struct {
	cells map[Cell]Pair
}

// NewBuffer returns an empty buffer.
func NewBuffer() *Buffer {
	return &Buffer{cells: make(map[Cell]Pair)}
}

// SetForeground implements core.Sink.
func (b *Buffer) SetForeground(x, y int, t core.Tile) {
	c := Cell{x, y}
	p := b.cells[c]
	p.FG = t
	b.put(c, p)
}

// SetBackground implements core.Sink.
func (b *Buffer) SetBackground(x, y int, t core.Tile) {
	c := Cell{x, y}
	p := b.cells[c]
	p.BG = t
	b.put(c, p)
}

// ClearForeground implements core.Sink.
func (b *Buffer) ClearForeground() {
	for c, p := range b.cells {
		p.FG = core.None
		b.put(c, p)
	}
}

// ClearBackground implements core.Sink.
func (b *Buffer) ClearBackground() {
	for c, p := range b.cells {
		p.BG = core.None
		b.put(c, p)
	}
}

func (b *Buffer) put(c Cell, p Pair) {
	if p.Empty() {
		delete(b.cells, c)
		return
	}
	b.cells[c] = p
}

// Len returns the number of non-empty cells.
func (b *Buffer) Len() int { return len(b.cells) }

// Each visits non-empty cells row by row, left to right.
func (b *Buffer) Each(fn func(Cell, Pair) error) error {
	keys := make([]Cell, 0, len(b.cells))
	for c := range b.cells {
		keys = append(keys, c)
	}
	slices.SortFunc(keys, func(a, b Cell) int {
		if a.Y != b.Y {
			return cmp.Compare(a.Y, b.Y)
		}
		return cmp.Compare(a.X, b.X)
	})
	for _, c := range keys {
		if err := fn(c, b.cells[c]); err != nil {
			return err
		}
	}
	return nil
}
