package worldgen

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"mad-terrain/internal/core"
)

// Random stream ids. Every pass and every chunk draws from its own stream so
// output does not depend on chunk scheduling.
const (
	streamBase    uint64 = 1
	streamTunnels uint64 = 2
	streamChunk0  uint64 = 1 << 16
)

// baseLavaRows is the height of the lava-prone band at the bottom of the base
// layer.
const baseLavaRows = 20

// ChunkInfo records the biome drawn for one chunk.
type ChunkInfo struct {
	Index  int
	StartX int
	EndX   int
	Biome  Biome
}

// World is the result of one generation pass.
type World struct {
	Seed    int64
	Config  Config
	Grid    *core.TileGrid
	Surface []int
	Chunks  []ChunkInfo
	Tunnels int
}

// SurfaceAt returns the surface row of column x.
func (w *World) SurfaceAt(x int) (int, bool) {
	i := x - w.Config.MinX()
	if i < 0 || i >= len(w.Surface) {
		return 0, false
	}
	return w.Surface[i], true
}

// BiomeAt returns the biome of the chunk containing column x.
func (w *World) BiomeAt(x int) (Biome, bool) {
	for _, ch := range w.Chunks {
		if x >= ch.StartX && x < ch.EndX {
			return ch.Biome, true
		}
	}
	return 0, false
}

// Generator produces complete worlds from a validated configuration.
type Generator struct {
	cfg   Config
	noise NoiseSet
	ores  []OreDefinition
}

// NewGenerator validates the inputs and returns a Generator.
func NewGenerator(cfg Config, noise NoiseSet, ores []OreDefinition) (*Generator, error) {
	if cfg.Basis == "" {
		cfg.Basis = BasisSimplex
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := ValidateNoise(noise); err != nil {
		return nil, err
	}
	if err := ValidateOres(ores); err != nil {
		return nil, err
	}
	return &Generator{cfg: cfg, noise: noise, ores: append([]OreDefinition(nil), ores...)}, nil
}

// Config returns the generator configuration.
func (g *Generator) Config() Config { return g.cfg }

// Bounds covers the base layer, the full map depth and every column.
func (g *Generator) Bounds() core.Bounds {
	return core.Bounds{
		MinX: g.cfg.MinX(),
		MinY: -g.cfg.BaseDepth,
		W:    g.cfg.MapWidth,
		H:    g.cfg.BaseDepth + g.cfg.MapDepth,
	}
}

// Generate builds a fresh grid for seed.
func (g *Generator) Generate(seed int64) (*World, error) {
	grid := core.NewTileGrid(g.Bounds())
	w, err := g.GenerateInto(seed, grid)
	if err != nil {
		return nil, err
	}
	w.Grid = grid
	return w, nil
}

// GenerateInto clears sink and writes a complete world into it: base layer,
// then chunks, then tunnels. World.Grid is set only when sink is a
// *core.TileGrid; for any other sink it is nil.
func (g *Generator) GenerateInto(seed int64, sink core.Sink) (*World, error) {
	p := g.pipeline(seed)
	world := &World{Seed: seed, Config: g.cfg}
	if grid, ok := sink.(*core.TileGrid); ok {
		world.Grid = grid
	}

	sink.ClearForeground()
	sink.ClearBackground()

	p.baseLayer(sink, core.NewStream(seed, streamBase))

	chunks, err := p.chunks(seed, sink)
	if err != nil {
		return nil, err
	}
	world.Chunks = make([]ChunkInfo, len(chunks))
	world.Surface = make([]int, 0, g.cfg.MapWidth)
	for i, ch := range chunks {
		world.Chunks[i] = ch.info
		world.Surface = append(world.Surface, ch.surfaces...)
	}

	world.Tunnels = p.tunnels.Carve(sink, core.NewStream(seed, streamTunnels))
	return world, nil
}

type pipeline struct {
	cfg     Config
	ores    *OreTable
	caves   *CaveCarver
	columns *ColumnGenerator
	tunnels *TunnelCarver
}

func (g *Generator) pipeline(seed int64) *pipeline {
	f := newNoiseFields(seed, g.noise, g.cfg.Basis)
	ores := NewOreTable(g.ores, f.ore)
	caves := NewCaveCarver(g.cfg, f.cave)
	return &pipeline{
		cfg:     g.cfg,
		ores:    ores,
		caves:   caves,
		columns: NewColumnGenerator(g.cfg, f.height, f.stone, ores, caves),
		tunnels: NewTunnelCarver(g.cfg, f.tunnel, caves),
	}
}

func (p *pipeline) baseLayer(sink core.Sink, rng core.Random) {
	cfg := p.cfg
	floor := -cfg.BaseDepth + baseLavaRows
	minX := cfg.MinX()
	for x := minX; x < minX+cfg.MapWidth; x++ {
		for y := -cfg.BaseDepth; y < 0; y++ {
			sink.SetBackground(x, y, StoneDark)
			if p.caves.IsDeepCave(x, y) {
				if y < floor && rng.Float64() < cfg.LavaChance*2 {
					sink.SetForeground(x, y, Lava)
				}
				continue
			}
			fg, ok := p.ores.Resolve(x, y+cfg.MapDepth, rng)
			if !ok {
				fg = Stone
				if y < floor && rng.Float64() < cfg.LavaChance*1.5 {
					fg = Lava
				}
			}
			sink.SetForeground(x, y, fg)
		}
	}
}

type chunkResult struct {
	info     ChunkInfo
	surfaces []int
	rec      *recorder
}

func (p *pipeline) chunk(seed int64, index int, sink core.Sink) chunkResult {
	rng := core.NewStream(seed, streamChunk0+uint64(index))
	startX := index*p.cfg.ChunkSize + p.cfg.MinX()
	endX := startX + p.cfg.ChunkSize
	biome := Classify(p.cfg.BiomeThresholds, rng.Float64())
	surfaces := p.columns.GenerateChunk(startX, endX, biome, rng, sink)
	return chunkResult{
		info:     ChunkInfo{Index: index, StartX: startX, EndX: endX, Biome: biome},
		surfaces: surfaces,
	}
}

// chunks runs the per-chunk pass. With more than one worker each chunk
// writes into a private recorder, and recorders are replayed in chunk order
// so the sink sees the same writes as a sequential run.
func (p *pipeline) chunks(seed int64, sink core.Sink) ([]chunkResult, error) {
	n := p.cfg.Chunks()
	results := make([]chunkResult, n)
	if p.cfg.Workers <= 1 {
		for i := 0; i < n; i++ {
			results[i] = p.chunk(seed, i, sink)
		}
		return results, nil
	}

	var eg errgroup.Group
	eg.SetLimit(p.cfg.Workers)
	for i := 0; i < n; i++ {
		eg.Go(func() error {
			rec := &recorder{}
			res := p.chunk(seed, i, rec)
			res.rec = rec
			results[i] = res
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("chunk pass: %w", err)
	}
	for i := range results {
		results[i].rec.replay(sink)
		results[i].rec = nil
	}
	return results, nil
}

type tileWrite struct {
	x, y       int
	tile       core.Tile
	background bool
}

// recorder is a Sink that buffers writes for later replay.
type recorder struct {
	writes []tileWrite
}

func (r *recorder) SetForeground(x, y int, t core.Tile) {
	r.writes = append(r.writes, tileWrite{x: x, y: y, tile: t})
}

func (r *recorder) SetBackground(x, y int, t core.Tile) {
	r.writes = append(r.writes, tileWrite{x: x, y: y, tile: t, background: true})
}

func (r *recorder) ClearForeground() { r.drop(false) }

func (r *recorder) ClearBackground() { r.drop(true) }

func (r *recorder) drop(background bool) {
	kept := r.writes[:0]
	for _, w := range r.writes {
		if w.background != background {
			kept = append(kept, w)
		}
	}
	r.writes = kept
}

func (r *recorder) replay(dst core.Sink) {
	for _, w := range r.writes {
		if w.background {
			dst.SetBackground(w.x, w.y, w.tile)
			continue
		}
		dst.SetForeground(w.x, w.y, w.tile)
	}
}
