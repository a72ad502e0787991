package store

import (
	"testing"

	"mad-terrain/internal/core"
)

func TestBufferTracksFinalState(t *testing.T) {
	b := NewBuffer()
	b.SetForeground(3, 1, 4)
	b.SetBackground(3, 1, 5)
	b.SetForeground(-2, 0, 7)
	b.SetForeground(-2, 0, core.None)

	if b.Len() != 1 {
		t.Fatalf("expected 1 cell, got %d", b.Len())
	}

	b.SetForeground(0, 0, 1)
	b.SetForeground(-1, 0, 1)
	b.SetForeground(9, -3, 1)
	var order []Cell
	_ = b.Each(func(c Cell, _ Pair) error {
		order = append(order, c)
		return nil
	})
	want := []Cell{{9, -3}, {-1, 0}, {0, 0}, {3, 1}}
	if len(order) != len(want) {
		t.Fatalf("visited %v", order)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("visit order %v, want %v", order, want)
		}
	}

	b.ClearForeground()
	if b.Len() != 1 {
		t.Fatalf("only the background cell should survive, got %d", b.Len())
	}
	b.ClearBackground()
	if b.Len() != 0 {
		t.Fatalf("expected an empty buffer, got %d", b.Len())
	}
}
