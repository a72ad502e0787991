package core

import (
	"fmt"
	"sort"
)

// Size describes the dimensions of a grid.
type Size struct {
	W int
	H int
}

// Sink receives tile writes from the generator.
type Sink interface {
	SetForeground(x, y int, t Tile)
	SetBackground(x, y int, t Tile)
	ClearForeground()
	ClearBackground()
}

// SinkCloser is a Sink backed by a resource that must be flushed and released.
// Close reports the first error encountered by any earlier write.
type SinkCloser interface {
	Sink
	Close() error
}

// SinkFactory opens a SinkCloser using flag-style key/value options.
type SinkFactory func(cfg map[string]string) (SinkCloser, error)

var sinks = map[string]SinkFactory{}

// RegisterSink adds a sink factory under the provided name.
func RegisterSink(name string, f SinkFactory) {
	if name == "" || f == nil {
		return
	}
	sinks[name] = f
}

// OpenSink opens a registered sink by name.
func OpenSink(name string, cfg map[string]string) (SinkCloser, error) {
	f, ok := sinks[name]
	if !ok {
		return nil, fmt.Errorf("unknown sink %q (have %v)", name, SinkNames())
	}
	return f(cfg)
}

// SinkNames lists registered sink names in sorted order.
func SinkNames() []string {
	names := make([]string, 0, len(sinks))
	for name := range sinks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
