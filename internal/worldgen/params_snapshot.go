package worldgen

import (
	"fmt"
	"strconv"

	"mad-terrain/internal/core"
)

// Tuner holds adjustable generator inputs and regenerates on demand. It backs
// the viewer HUD.
type Tuner struct {
	Config Config
	Noise  NoiseSet
	Ores   []OreDefinition
	Seed   int64

	dirty bool
}

// NewTuner wraps the provided inputs.
func NewTuner(cfg Config, noise NoiseSet, ores []OreDefinition, seed int64) *Tuner {
	return &Tuner{Config: cfg, Noise: noise, Ores: ores, Seed: seed, dirty: true}
}

// Name identifies the tuner on the HUD.
func (t *Tuner) Name() string { return "worldgen" }

// Size reports the full grid including the base layer.
func (t *Tuner) Size() core.Size {
	return core.Size{W: t.Config.MapWidth, H: t.Config.BaseDepth + t.Config.MapDepth}
}

// Dirty reports whether a parameter changed since the last Generate.
func (t *Tuner) Dirty() bool { return t.dirty }

// Reseed changes the seed and marks the tuner dirty.
func (t *Tuner) Reseed(seed int64) {
	t.Seed = seed
	t.dirty = true
}

// Generate builds a world from the current inputs.
func (t *Tuner) Generate() (*World, error) {
	gen, err := NewGenerator(t.Config, t.Noise, t.Ores)
	if err != nil {
		return nil, err
	}
	w, err := gen.Generate(t.Seed)
	if err != nil {
		return nil, err
	}
	t.dirty = false
	return w, nil
}

// Parameters lists the current settings grouped for display.
func (t *Tuner) Parameters() core.ParameterSnapshot {
	c := t.Config
	h := t.Noise.Height
	groups := []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				int64Param("seed", "Seed", t.Seed),
				intParam("map_width", "Width", c.MapWidth),
				intParam("map_depth", "Depth", c.MapDepth),
				intParam("chunk_size", "Chunk size", c.ChunkSize),
				intParam("base_depth", "Base depth", c.BaseDepth),
				stringParam("basis", "Noise basis", string(c.Basis)),
			},
		},
		{
			Name: "Surface",
			Params: []core.Parameter{
				floatParam("height_range_min", "Height min", h.RangeMin),
				floatParam("height_range_max", "Height max", h.RangeMax),
				floatParam("height_frequency", "Height frequency", h.StartFrequency),
				intParam("ocean_level", "Ocean level", c.OceanLevel),
				intParam("ocean_depth", "Ocean depth", c.OceanDepth),
				stringParam("biome_thresholds", "Biome thresholds", fmt.Sprint(c.BiomeThresholds)),
			},
		},
		{
			Name: "Caves",
			Params: []core.Parameter{
				floatParam("cave_threshold", "Cave threshold", c.CaveThreshold),
				intParam("min_cave_depth", "Min cave depth", c.MinCaveDepth),
				floatParam("tunnel_threshold", "Tunnel threshold", c.TunnelThreshold),
				floatParam("cave_connectivity", "Cave connectivity", c.CaveConnectivity),
				intParam("tunnel_search_radius", "Tunnel search radius", c.TunnelSearchRadius),
			},
		},
		{
			Name: "Lava",
			Params: []core.Parameter{
				intParam("lava_start_depth", "Lava start depth", c.LavaStartDepth),
				floatParam("lava_chance", "Lava chance", c.LavaChance),
			},
		},
	}
	ores := core.ParameterGroup{Name: "Ores"}
	for i, o := range t.Ores {
		ores.Params = append(ores.Params, core.Parameter{
			Key:   "ore_" + strconv.Itoa(i),
			Label: TileName(o.Primary),
			Type:  core.ParamTypeString,
			Value: fmt.Sprintf("%d..%d peak %g rarity %g", o.MinDepth, o.MaxDepth, o.PeakDepth, o.Rarity),
		})
	}
	groups = append(groups, ores)
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the settings adjustable from the HUD.
func (t *Tuner) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "cave_threshold", Label: "Cave threshold", Type: core.ParamTypeFloat, Step: 0.01, Min: 0, Max: 1, HasMin: true, HasMax: true},
		{Key: "min_cave_depth", Label: "Min cave depth", Type: core.ParamTypeInt, Step: 1, Min: 0, HasMin: true},
		{Key: "tunnel_threshold", Label: "Tunnel threshold", Type: core.ParamTypeFloat, Step: 0.01, Min: 0, Max: 1, HasMin: true, HasMax: true},
		{Key: "cave_connectivity", Label: "Connectivity", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, Max: 1, HasMin: true, HasMax: true},
		{Key: "lava_chance", Label: "Lava chance", Type: core.ParamTypeFloat, Step: 0.01, Min: 0, Max: 1, HasMin: true, HasMax: true},
		{Key: "ocean_level", Label: "Ocean level", Type: core.ParamTypeInt, Step: 1},
		{Key: "height_range_min", Label: "Height min", Type: core.ParamTypeFloat, Step: 1},
		{Key: "height_range_max", Label: "Height max", Type: core.ParamTypeFloat, Step: 1},
	}
}

// SetIntParameter updates an integer setting. It reports whether key is known.
func (t *Tuner) SetIntParameter(key string, value int) bool {
	var dst *int
	switch key {
	case "min_cave_depth":
		if value < 0 {
			value = 0
		}
		dst = &t.Config.MinCaveDepth
	case "ocean_level":
		dst = &t.Config.OceanLevel
	case "ocean_depth":
		if value < 0 {
			value = 0
		}
		dst = &t.Config.OceanDepth
	case "lava_start_depth":
		dst = &t.Config.LavaStartDepth
	case "tunnel_search_radius":
		if value < 0 {
			value = 0
		}
		dst = &t.Config.TunnelSearchRadius
	default:
		return false
	}
	*dst = value
	t.dirty = true
	return true
}

// SetFloatParameter updates a floating point setting. Probabilities clamp to
// [0,1]. It reports whether key is known.
func (t *Tuner) SetFloatParameter(key string, value float64) bool {
	switch key {
	case "cave_threshold":
		t.Config.CaveThreshold = clamp01(value)
	case "tunnel_threshold":
		t.Config.TunnelThreshold = clamp01(value)
	case "cave_connectivity":
		t.Config.CaveConnectivity = clamp01(value)
	case "lava_chance":
		t.Config.LavaChance = clamp01(value)
	case "height_range_min":
		if value > t.Noise.Height.RangeMax {
			value = t.Noise.Height.RangeMax
		}
		t.Noise.Height.RangeMin = value
	case "height_range_max":
		if value < t.Noise.Height.RangeMin {
			value = t.Noise.Height.RangeMin
		}
		t.Noise.Height.RangeMax = value
	case "height_frequency":
		if value <= 0 {
			return false
		}
		t.Noise.Height.StartFrequency = value
	default:
		return false
	}
	t.dirty = true
	return true
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}

func stringParam(key, label, value string) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeString,
		Value: value,
	}
}
