package worldgen

import "mad-terrain/internal/core"

// Stats summarizes a generated world.
type Stats struct {
	Cells    int
	Solid    int
	Cavities int
	Ores     int
	Lava     int
	Water    int
	Trees    int
	Tunnels  int

	MinSurface int
	MaxSurface int

	Tiles  [TileCount]int
	Biomes map[Biome]int
}

// Measure counts tiles in w's grid.
func Measure(w *World) Stats {
	s := Stats{Tunnels: w.Tunnels, Biomes: map[Biome]int{}}
	for _, ch := range w.Chunks {
		s.Biomes[ch.Biome]++
	}
	for i, h := range w.Surface {
		if i == 0 || h < s.MinSurface {
			s.MinSurface = h
		}
		if i == 0 || h > s.MaxSurface {
			s.MaxSurface = h
		}
	}
	if w.Grid == nil {
		return s
	}
	fg := w.Grid.ForegroundCells()
	bg := w.Grid.BackgroundCells()
	s.Cells = len(fg)
	for i, t := range fg {
		if int(t) < TileCount {
			s.Tiles[t]++
		}
		switch {
		case t == core.None:
			if bg[i] != core.None {
				s.Cavities++
			}
			continue
		case IsOre(t):
			s.Ores++
		case t == Lava:
			s.Lava++
		case t == Water:
			s.Water++
		case t == TrunkBottom:
			s.Trees++
		}
		s.Solid++
	}
	return s
}
