// Package snapshot persists generated worlds as zstd-compressed files: one
// JSON header line followed by a gob body.
package snapshot

import (
	"bufio"
	"encoding/gob"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/klauspost/compress/zstd"

	"mad-terrain/internal/core"
	"mad-terrain/internal/worldgen"
)

// Version is written into every header.
const Version = 1

var (
	// ErrCorrupt reports a snapshot whose body does not match its header.
	ErrCorrupt = errors.New("corrupt snapshot")
	// ErrNoGrid reports a world generated into a sink other than a grid.
	ErrNoGrid = errors.New("world has no grid")
)

// Header is stored uncompressed-first so tools can identify a snapshot
// without decoding the body.
type Header struct {
	Version int    `json:"version"`
	RunID   string `json:"run_id"`
	Seed    int64  `json:"seed"`
	Digest  string `json:"digest"`
}

// SnapshotV1 is the full contents of a snapshot file.
type SnapshotV1 struct {
	Header Header

	Config  worldgen.Config
	Bounds  core.Bounds
	Surface []int
	Chunks  []worldgen.ChunkInfo
	Tunnels int

	Foreground []core.Tile
	Background []core.Tile
}

// FromWorld captures w. An empty runID gets a fresh random one.
func FromWorld(w *worldgen.World, runID string) (SnapshotV1, error) {
	if w.Grid == nil {
		return SnapshotV1{}, ErrNoGrid
	}
	if runID == "" {
		runID = uuid.NewString()
	}
	digest := w.Grid.Digest()
	return SnapshotV1{
		Header: Header{
			Version: Version,
			RunID:   runID,
			Seed:    w.Seed,
			Digest:  hex.EncodeToString(digest[:]),
		},
		Config:     w.Config,
		Bounds:     w.Grid.Bounds(),
		Surface:    append([]int(nil), w.Surface...),
		Chunks:     append([]worldgen.ChunkInfo(nil), w.Chunks...),
		Tunnels:    w.Tunnels,
		Foreground: append([]core.Tile(nil), w.Grid.ForegroundCells()...),
		Background: append([]core.Tile(nil), w.Grid.BackgroundCells()...),
	}, nil
}

// World rebuilds the world and checks it against the header digest.
func (s SnapshotV1) World() (*worldgen.World, error) {
	grid := core.NewTileGrid(s.Bounds)
	if !grid.Load(s.Foreground, s.Background) {
		return nil, fmt.Errorf("%w: %d/%d cells for bounds %+v", ErrCorrupt, len(s.Foreground), len(s.Background), s.Bounds)
	}
	digest := grid.Digest()
	if got := hex.EncodeToString(digest[:]); got != s.Header.Digest {
		return nil, fmt.Errorf("%w: digest %s, header says %s", ErrCorrupt, got, s.Header.Digest)
	}
	return &worldgen.World{
		Seed:    s.Header.Seed,
		Config:  s.Config,
		Grid:    grid,
		Surface: s.Surface,
		Chunks:  s.Chunks,
		Tunnels: s.Tunnels,
	}, nil
}

// Write stores snap at path, creating parent directories as needed.
func Write(path string, snap SnapshotV1) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	if err := encode(f, snap); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func encode(f *os.File, snap SnapshotV1) error {
	enc, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return err
	}
	bw := bufio.NewWriterSize(enc, 256*1024)

	hb, err := json.Marshal(snap.Header)
	if err != nil {
		enc.Close()
		return err
	}
	if _, err := bw.Write(append(hb, '\n')); err != nil {
		enc.Close()
		return err
	}
	if err := gob.NewEncoder(bw).Encode(&snap); err != nil {
		enc.Close()
		return fmt.Errorf("gob encode: %w", err)
	}
	if err := bw.Flush(); err != nil {
		enc.Close()
		return err
	}
	return enc.Close()
}

// Read loads the snapshot at path.
func Read(path string) (SnapshotV1, error) {
	var snap SnapshotV1
	err := open(path, func(br *bufio.Reader) error {
		if _, err := readHeader(br); err != nil {
			return err
		}
		if err := gob.NewDecoder(br).Decode(&snap); err != nil {
			return fmt.Errorf("gob decode: %w", err)
		}
		return nil
	})
	return snap, err
}

// ReadHeader decodes only the header line.
func ReadHeader(path string) (Header, error) {
	var h Header
	err := open(path, func(br *bufio.Reader) error {
		var err error
		h, err = readHeader(br)
		return err
	})
	return h, err
}

func open(path string, fn func(*bufio.Reader) error) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	dec, err := zstd.NewReader(f)
	if err != nil {
		return err
	}
	defer dec.Close()

	return fn(bufio.NewReaderSize(dec, 256*1024))
}

func readHeader(br *bufio.Reader) (Header, error) {
	var h Header
	line, err := br.ReadBytes('\n')
	if err != nil {
		return h, fmt.Errorf("header: %w", err)
	}
	if err := json.Unmarshal(line, &h); err != nil {
		return h, fmt.Errorf("header: %w", err)
	}
	if h.Version != Version {
		return h, fmt.Errorf("unsupported snapshot version %d", h.Version)
	}
	return h, nil
}
