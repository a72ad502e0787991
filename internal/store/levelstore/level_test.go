package levelstore

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"

	"github.com/syndtr/goleveldb/leveldb"

	"mad-terrain/internal/core"
)

func TestStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tiles")
	src := core.NewTileGrid(core.Bounds{MinX: -3, MinY: -3, W: 6, H: 6})
	for x := -3; x < 3; x++ {
		src.SetBackground(x, -2, 35)
		src.SetForeground(x, x, 4)
	}

	s, err := Open(path, "run-a")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	core.Replay(src, s)
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	s2, err := Open(path, "run-b")
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s2.Close()

	runs, err := s2.Runs()
	if err != nil {
		t.Fatalf("Runs: %v", err)
	}
	if runs["run-a"] != 11 {
		t.Fatalf("runs = %v", runs)
	}

	dst := core.NewTileGrid(src.Bounds())
	if err := s2.Load("run-a", dst); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if dst.Digest() != src.Digest() {
		t.Fatal("loaded grid differs from the stored one")
	}
}

func TestFlushReplacesRun(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "tiles"), "")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer s.Close()

	s.SetForeground(1, 1, 4)
	s.SetForeground(5, 5, 4)
	if err := s.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	s.ClearForeground()
	s.SetForeground(2, 2, 5)
	if err := s.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}

	dst := core.NewTileGrid(core.Bounds{W: 8, H: 8})
	if err := s.Load(s.RunID(), dst); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if dst.Foreground(1, 1) != core.None || dst.Foreground(5, 5) != core.None || dst.Foreground(2, 2) != 5 {
		t.Fatal("second flush should replace the first")
	}
}

func TestTileKeysSortByRow(t *testing.T) {
	p := runTilePrefix("r")
	keys := [][]byte{tileKey(p, 5, -2), tileKey(p, -5, -1), tileKey(p, -1, 0), tileKey(p, 0, 0), tileKey(p, 2, 7)}
	for i := 1; i < len(keys); i++ {
		if bytes.Compare(keys[i-1], keys[i]) >= 0 {
			t.Fatalf("key %d does not sort before key %d", i-1, i)
		}
	}
	for _, xy := range [][2]int{{-3, 4}, {0, 0}, {100, -100}} {
		x, y, ok := decodeTileKey(p, tileKey(p, xy[0], xy[1]))
		if !ok || x != xy[0] || y != xy[1] {
			t.Fatalf("decode(%v) = %d,%d,%v", xy, x, y, ok)
		}
	}
}

func TestFlushErrorIsSticky(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "tiles"), "run-a")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	s.SetForeground(1, 1, 4)
	if err := s.db.Close(); err != nil {
		t.Fatalf("close db: %v", err)
	}

	first := s.Flush()
	if !errors.Is(first, leveldb.ErrClosed) {
		t.Fatalf("expected ErrClosed, got %v", first)
	}
	s.SetForeground(2, 2, 4)
	if err := s.Flush(); err != first {
		t.Fatalf("second flush = %v, want the first error %v", err, first)
	}
}
