package worldgen

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid world config")

// Config controls world dimensions and carving rules.
type Config struct {
	MapWidth  int `yaml:"map_width"`
	MapDepth  int `yaml:"map_depth"`
	ChunkSize int `yaml:"chunk_size"`
	BaseDepth int `yaml:"base_depth"`

	OceanLevel int `yaml:"ocean_level"`
	OceanDepth int `yaml:"ocean_depth"`

	CaveThreshold      float64 `yaml:"cave_threshold"`
	TunnelThreshold    float64 `yaml:"tunnel_threshold"`
	MinCaveDepth       int     `yaml:"min_cave_depth"`
	MaxCaveSize        int     `yaml:"max_cave_size"`
	CaveConnectivity   float64 `yaml:"cave_connectivity"`
	TunnelSearchRadius int     `yaml:"tunnel_search_radius"`
	TunnelProbeSurface int     `yaml:"tunnel_probe_surface"`

	LavaStartDepth int     `yaml:"lava_start_depth"`
	LavaChance     float64 `yaml:"lava_chance"`

	StoneBlendThreshold float64 `yaml:"stone_blend_threshold"`

	BiomeThresholds [4]float64 `yaml:"biome_thresholds,flow"`

	Basis   Basis `yaml:"basis"`
	Workers int   `yaml:"workers"`
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		MapWidth:            1000,
		MapDepth:            500,
		ChunkSize:           100,
		BaseDepth:           100,
		OceanLevel:          0,
		OceanDepth:          1,
		CaveThreshold:       0.45,
		TunnelThreshold:     0.35,
		MinCaveDepth:        5,
		MaxCaveSize:         15,
		CaveConnectivity:    0.3,
		TunnelSearchRadius:  10,
		TunnelProbeSurface:  100,
		LavaStartDepth:      80,
		LavaChance:          0.05,
		StoneBlendThreshold: 0.55,
		BiomeThresholds:     [4]float64{0.5, 0.7, 0.9, 1.0},
		Basis:               BasisSimplex,
		Workers:             1,
	}
}

// Chunks returns the number of chunks across the map.
func (c Config) Chunks() int {
	if c.ChunkSize <= 0 {
		return 0
	}
	return c.MapWidth / c.ChunkSize
}

// MinX is the leftmost column.
func (c Config) MinX() int { return -c.MapWidth / 2 }

// Validate checks c. Failures wrap ErrInvalidConfig.
func (c Config) Validate() error {
	switch {
	case c.MapWidth <= 0:
		return invalid("map_width", "must be positive, got %d", c.MapWidth)
	case c.MapDepth <= 0:
		return invalid("map_depth", "must be positive, got %d", c.MapDepth)
	case c.ChunkSize <= 0:
		return invalid("chunk_size", "must be positive, got %d", c.ChunkSize)
	case c.MapWidth%c.ChunkSize != 0:
		return invalid("map_width", "%d is not a multiple of chunk_size %d", c.MapWidth, c.ChunkSize)
	case c.BaseDepth < 0:
		return invalid("base_depth", "must not be negative, got %d", c.BaseDepth)
	case c.OceanDepth < 0:
		return invalid("ocean_depth", "must not be negative, got %d", c.OceanDepth)
	case c.MinCaveDepth < 0:
		return invalid("min_cave_depth", "must not be negative, got %d", c.MinCaveDepth)
	case c.MaxCaveSize < 0:
		return invalid("max_cave_size", "must not be negative, got %d", c.MaxCaveSize)
	case c.TunnelSearchRadius < 0:
		return invalid("tunnel_search_radius", "must not be negative, got %d", c.TunnelSearchRadius)
	case outsideUnit(c.CaveConnectivity):
		return invalid("cave_connectivity", "must be within [0,1], got %g", c.CaveConnectivity)
	case outsideUnit(c.LavaChance):
		return invalid("lava_chance", "must be within [0,1], got %g", c.LavaChance)
	case c.Workers < 0:
		return invalid("workers", "must not be negative, got %d", c.Workers)
	}
	switch c.Basis {
	case "", BasisSimplex, BasisPerlin:
	default:
		return invalid("basis", "unknown noise basis %q", c.Basis)
	}
	prev := 0.0
	for i, t := range c.BiomeThresholds {
		if outsideUnit(t) {
			return invalid("biome_thresholds", "threshold %d (%g) outside [0,1]", i, t)
		}
		if t < prev {
			return invalid("biome_thresholds", "threshold %d (%g) is below threshold %d (%g)", i, t, i-1, prev)
		}
		prev = t
	}
	if c.BiomeThresholds[3] != 1 {
		return invalid("biome_thresholds", "last threshold must be 1, got %g", c.BiomeThresholds[3])
	}
	return nil
}

// ValidateNoise checks every channel of set.
func ValidateNoise(set NoiseSet) error {
	channels := []struct {
		name string
		p    NoiseParams
	}{
		{"height", set.Height},
		{"stone", set.Stone},
		{"cave", set.Cave},
		{"ore", set.Ore},
		{"tunnel", set.Tunnel},
	}
	for _, ch := range channels {
		switch {
		case ch.p.Octaves < 1:
			return invalid("noise."+ch.name, "octaves must be at least 1, got %d", ch.p.Octaves)
		case !(ch.p.Persistence > 0):
			return invalid("noise."+ch.name, "persistence must be positive, got %g", ch.p.Persistence)
		case !(ch.p.StartFrequency > 0):
			return invalid("noise."+ch.name, "start_frequency must be positive, got %g", ch.p.StartFrequency)
		case !(ch.p.FrequencyModifier > 0):
			return invalid("noise."+ch.name, "frequency_modifier must be positive, got %g", ch.p.FrequencyModifier)
		}
	}
	if set.Height.RangeMax < set.Height.RangeMin {
		return invalid("noise.height", "range_max %g below range_min %g", set.Height.RangeMax, set.Height.RangeMin)
	}
	return nil
}

// ValidateOres checks the ore table.
func ValidateOres(defs []OreDefinition) error {
	if len(defs) == 0 {
		return invalid("ores", "table is empty")
	}
	for i, d := range defs {
		field := "ores[" + strconv.Itoa(i) + "]"
		switch {
		case d.Primary == 0 || d.Alternate == 0:
			return invalid(field, "missing tile")
		case d.MaxDepth <= d.MinDepth:
			return invalid(field, "max_depth %d must exceed min_depth %d", d.MaxDepth, d.MinDepth)
		case !(d.Rarity > 0):
			return invalid(field, "rarity must be positive, got %g", d.Rarity)
		}
	}
	return nil
}

// outsideUnit reports whether v is NaN or outside [0,1].
func outsideUnit(v float64) bool {
	return math.IsNaN(v) || v < 0 || v > 1
}

func invalid(field, format string, args ...any) error {
	return fmt.Errorf("%w: %s: %s", ErrInvalidConfig, field, fmt.Sprintf(format, args...))
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	ints := map[string]*int{
		"map_width":            &c.MapWidth,
		"map_depth":            &c.MapDepth,
		"chunk_size":           &c.ChunkSize,
		"base_depth":           &c.BaseDepth,
		"ocean_level":          &c.OceanLevel,
		"ocean_depth":          &c.OceanDepth,
		"min_cave_depth":       &c.MinCaveDepth,
		"max_cave_size":        &c.MaxCaveSize,
		"tunnel_search_radius": &c.TunnelSearchRadius,
		"tunnel_probe_surface": &c.TunnelProbeSurface,
		"lava_start_depth":     &c.LavaStartDepth,
		"workers":              &c.Workers,
	}
	for key, dst := range ints {
		if v, ok := cfg[key]; ok {
			if parsed, err := strconv.Atoi(v); err == nil {
				*dst = parsed
			}
		}
	}
	floats := map[string]*float64{
		"cave_threshold":        &c.CaveThreshold,
		"tunnel_threshold":      &c.TunnelThreshold,
		"cave_connectivity":     &c.CaveConnectivity,
		"lava_chance":           &c.LavaChance,
		"stone_blend_threshold": &c.StoneBlendThreshold,
	}
	for key, dst := range floats {
		if v, ok := cfg[key]; ok {
			if parsed, err := strconv.ParseFloat(v, 64); err == nil {
				*dst = parsed
			}
		}
	}
	if v, ok := cfg["basis"]; ok {
		c.Basis = Basis(v)
	}
	return c
}
