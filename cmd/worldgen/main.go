// Command worldgen generates a world without a window and writes it to a
// snapshot, a PNG and/or a tile store.
package main

import (
	"flag"
	"fmt"
	"log"
	"strings"
	"time"

	"mad-terrain/internal/config"
	"mad-terrain/internal/core"
	"mad-terrain/internal/render"
	"mad-terrain/internal/snapshot"
	_ "mad-terrain/internal/store/levelstore"
	_ "mad-terrain/internal/store/sqlitestore"
	"mad-terrain/internal/worldgen"
)

func main() {
	worldFile := flag.String("config", "", "world document (YAML); defaults when empty")
	seed := flag.Int64("seed", 0, "world seed; overrides the document seed when set")
	workers := flag.Int("workers", -1, "chunk workers; overrides the document when >= 0")
	out := flag.String("out", "", "write a zstd snapshot to this path")
	pngPath := flag.String("png", "", "write a PNG rendering to this path")
	sink := flag.String("store", "", "persist tiles to a store ("+strings.Join(core.SinkNames(), ", ")+")")
	storePath := flag.String("store-path", "", "database path for -store")
	runID := flag.String("run-id", "", "run id for -store and -out; random when empty")
	from := flag.String("from-snapshot", "", "load a snapshot instead of generating")
	flag.Parse()

	var (
		w   *worldgen.World
		err error
	)
	start := time.Now()
	if *from != "" {
		w, err = loadSnapshot(*from)
	} else {
		w, err = generate(*worldFile, *seed, *workers)
	}
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("world seed=%d size=%dx%d in %s", w.Seed, w.Grid.Size().W, w.Grid.Size().H, time.Since(start).Round(time.Millisecond))

	s := worldgen.Measure(w)
	log.Printf("surface %d..%d solid=%d cavities=%d ores=%d lava=%d water=%d trees=%d tunnels=%d",
		s.MinSurface, s.MaxSurface, s.Solid, s.Cavities, s.Ores, s.Lava, s.Water, s.Trees, s.Tunnels)
	log.Printf("biomes %s", formatBiomes(s.Biomes))

	if *out != "" {
		snap, err := snapshot.FromWorld(w, *runID)
		if err != nil {
			log.Fatalf("snapshot: %v", err)
		}
		if err := snapshot.Write(*out, snap); err != nil {
			log.Fatalf("snapshot: %v", err)
		}
		log.Printf("snapshot %s run=%s", *out, snap.Header.RunID)
	}
	if *pngPath != "" {
		if err := render.WritePNG(*pngPath, w.Grid, render.DefaultLayers()); err != nil {
			log.Fatalf("png: %v", err)
		}
		log.Printf("png %s", *pngPath)
	}
	if *sink != "" {
		st, err := core.OpenSink(*sink, map[string]string{"path": *storePath, "run_id": *runID})
		if err != nil {
			log.Fatalf("store: %v", err)
		}
		core.Replay(w.Grid, st)
		if err := st.Close(); err != nil {
			log.Fatalf("store: %v", err)
		}
		log.Printf("stored %s in %s", *sink, *storePath)
	}
}

func generate(path string, seed int64, workers int) (*worldgen.World, error) {
	doc := config.Default()
	if path != "" {
		var err error
		if doc, err = config.Load(path); err != nil {
			return nil, err
		}
	}
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			doc.Seed = seed
		}
	})
	if workers >= 0 {
		doc.World.Workers = workers
	}
	gen, err := doc.Generator()
	if err != nil {
		return nil, err
	}
	return gen.Generate(doc.Seed)
}

func loadSnapshot(path string) (*worldgen.World, error) {
	snap, err := snapshot.Read(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return snap.World()
}

func formatBiomes(counts map[worldgen.Biome]int) string {
	var parts []string
	for b := worldgen.Plains; b <= worldgen.Ocean; b++ {
		parts = append(parts, fmt.Sprintf("%s=%d", b, counts[b]))
	}
	return strings.Join(parts, " ")
}
