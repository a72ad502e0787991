// Package levelstore persists generated tiles to a LevelDB database.
package levelstore

import (
	"encoding/binary"
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/util"

	"mad-terrain/internal/core"
	"mad-terrain/internal/store"
)

func init() {
	core.RegisterSink("leveldb", func(cfg map[string]string) (core.SinkCloser, error) {
		return Open(cfg["path"], cfg["run_id"])
	})
}

// Key layout:
//
//	tile/<run>/<y><x>  -> fg, bg (little endian uint16 each)
//	run/<run>          -> decimal cell count
//
// x and y are stored as big-endian uint32 with the sign bit flipped so keys
// sort row by row.
const (
	tilePrefix = "tile/"
	runPrefix  = "run/"
)

// Store is a core.Sink writing into one run of a LevelDB database. Writes are
// buffered and persisted by Flush and Close. The first error is kept and
// reported by Close.
type Store struct {
	db    *leveldb.DB
	runID string
	buf   *store.Buffer
	err   error
}

// Open opens or creates the database directory at path. An empty runID gets
// a fresh random one.
func Open(path, runID string) (*Store, error) {
	if path == "" {
		return nil, fmt.Errorf("empty db path")
	}
	db, err := leveldb.OpenFile(path, nil)
	if err != nil {
		return nil, err
	}
	if runID == "" {
		runID = uuid.NewString()
	}
	return &Store{db: db, runID: runID, buf: store.NewBuffer()}, nil
}

// RunID identifies the run this store writes.
func (s *Store) RunID() string { return s.runID }

// SetForeground implements core.Sink.
func (s *Store) SetForeground(x, y int, t core.Tile) { s.buf.SetForeground(x, y, t) }

// SetBackground implements core.Sink.
func (s *Store) SetBackground(x, y int, t core.Tile) { s.buf.SetBackground(x, y, t) }

// ClearForeground implements core.Sink.
func (s *Store) ClearForeground() { s.buf.ClearForeground() }

// ClearBackground implements core.Sink.
func (s *Store) ClearBackground() { s.buf.ClearBackground() }

// Flush replaces the stored run with the buffered state in one batch.
func (s *Store) Flush() error {
	if s.err != nil {
		return s.err
	}
	s.err = s.flush()
	return s.err
}

func (s *Store) flush() error {
	batch := new(leveldb.Batch)
	prefix := runTilePrefix(s.runID)
	iter := s.db.NewIterator(util.BytesPrefix(prefix), nil)
	for iter.Next() {
		batch.Delete(append([]byte(nil), iter.Key()...))
	}
	iter.Release()
	if err := iter.Error(); err != nil {
		return err
	}

	err := s.buf.Each(func(c store.Cell, p store.Pair) error {
		var v [4]byte
		binary.LittleEndian.PutUint16(v[:2], uint16(p.FG))
		binary.LittleEndian.PutUint16(v[2:], uint16(p.BG))
		batch.Put(tileKey(prefix, c.X, c.Y), v[:])
		return nil
	})
	if err != nil {
		return err
	}
	batch.Put([]byte(runPrefix+s.runID), []byte(strconv.Itoa(s.buf.Len())))
	return s.db.Write(batch, nil)
}

// Close flushes and closes the database.
func (s *Store) Close() error {
	err := s.Flush()
	if cerr := s.db.Close(); err == nil {
		err = cerr
	}
	return err
}

// Runs maps stored run ids to their cell counts.
func (s *Store) Runs() (map[string]int, error) {
	out := map[string]int{}
	iter := s.db.NewIterator(util.BytesPrefix([]byte(runPrefix)), nil)
	defer iter.Release()
	for iter.Next() {
		n, err := strconv.Atoi(string(iter.Value()))
		if err != nil {
			return nil, fmt.Errorf("run %s: %w", iter.Key(), err)
		}
		out[string(iter.Key()[len(runPrefix):])] = n
	}
	return out, iter.Error()
}

// Load clears dst and writes the tiles of runID into it.
func (s *Store) Load(runID string, dst core.Sink) error {
	prefix := runTilePrefix(runID)
	iter := s.db.NewIterator(util.BytesPrefix(prefix), nil)
	defer iter.Release()

	dst.ClearForeground()
	dst.ClearBackground()
	for iter.Next() {
		x, y, ok := decodeTileKey(prefix, iter.Key())
		v := iter.Value()
		if !ok || len(v) != 4 {
			return fmt.Errorf("malformed tile entry %q", iter.Key())
		}
		if bg := core.Tile(binary.LittleEndian.Uint16(v[2:])); bg != core.None {
			dst.SetBackground(x, y, bg)
		}
		if fg := core.Tile(binary.LittleEndian.Uint16(v[:2])); fg != core.None {
			dst.SetForeground(x, y, fg)
		}
	}
	return iter.Error()
}

func runTilePrefix(runID string) []byte {
	return []byte(tilePrefix + runID + "/")
}

func tileKey(prefix []byte, x, y int) []byte {
	k := make([]byte, len(prefix)+8)
	n := copy(k, prefix)
	binary.BigEndian.PutUint32(k[n:], uint32(int32(y))^0x80000000)
	binary.BigEndian.PutUint32(k[n+4:], uint32(int32(x))^0x80000000)
	return k
}

func decodeTileKey(prefix, key []byte) (x, y int, ok bool) {
	if len(key) != len(prefix)+8 {
		return 0, 0, false
	}
	rest := key[len(prefix):]
	y = int(int32(binary.BigEndian.Uint32(rest[:4]) ^ 0x80000000))
	x = int(int32(binary.BigEndian.Uint32(rest[4:]) ^ 0x80000000))
	return x, y, true
}
