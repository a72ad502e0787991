// Package config loads world documents: YAML files describing the seed, the
// world configuration, the noise channels and the ore table.
package config

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"

	"mad-terrain/internal/core"
	"mad-terrain/internal/worldgen"
)

//go:embed world.schema.json
var schemaSource string

var schema = jsonschema.MustCompileString("world.schema.json", schemaSource)

// File is a decoded world document.
type File struct {
	Seed  int64
	World worldgen.Config
	Noise worldgen.NoiseSet
	Ores  []worldgen.OreDefinition
}

// Default returns the document used when no file is given.
func Default() File {
	return File{
		World: worldgen.DefaultConfig(),
		Noise: worldgen.DefaultNoiseSet(),
		Ores:  worldgen.DefaultOres(),
	}
}

// Generator builds a generator from the document.
func (f File) Generator() (*worldgen.Generator, error) {
	return worldgen.NewGenerator(f.World, f.Noise, f.Ores)
}

type document struct {
	Seed  int64             `yaml:"seed"`
	World worldgen.Config   `yaml:"world"`
	Noise worldgen.NoiseSet `yaml:"noise"`
	Ores  []oreDoc          `yaml:"ores,omitempty"`
}

type oreDoc struct {
	Primary   string   `yaml:"primary"`
	Alternate string   `yaml:"alternate,omitempty"`
	MinDepth  int      `yaml:"min_depth"`
	MaxDepth  int      `yaml:"max_depth"`
	PeakDepth *float64 `yaml:"peak_depth,omitempty"`
	Rarity    float64  `yaml:"rarity"`
}

// Load reads and validates the document at path.
func Load(path string) (File, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return File{}, err
	}
	f, err := Parse(raw)
	if err != nil {
		return File{}, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return f, nil
}

// Parse decodes a YAML document. Keys that are absent keep their defaults; an
// absent ore table means the default table. The document is checked against
// the embedded schema before decoding and against the generator rules after.
func Parse(raw []byte) (File, error) {
	var generic any
	if err := yaml.Unmarshal(raw, &generic); err != nil {
		return File{}, err
	}
	if generic == nil {
		generic = map[string]any{}
	}
	inst, err := jsonValue(generic)
	if err != nil {
		return File{}, err
	}
	if err := schema.Validate(inst); err != nil {
		return File{}, fmt.Errorf("schema: %w", err)
	}

	doc := document{World: worldgen.DefaultConfig(), Noise: worldgen.DefaultNoiseSet()}
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return File{}, err
	}
	f := File{Seed: doc.Seed, World: doc.World, Noise: doc.Noise, Ores: worldgen.DefaultOres()}
	if len(doc.Ores) > 0 {
		f.Ores = make([]worldgen.OreDefinition, len(doc.Ores))
		for i, o := range doc.Ores {
			def, err := o.definition()
			if err != nil {
				return File{}, fmt.Errorf("ores[%d]: %w", i, err)
			}
			f.Ores[i] = def
		}
	}

	if err := f.World.Validate(); err != nil {
		return File{}, err
	}
	if err := worldgen.ValidateNoise(f.Noise); err != nil {
		return File{}, err
	}
	if err := worldgen.ValidateOres(f.Ores); err != nil {
		return File{}, err
	}
	return f, nil
}

// Marshal encodes f as a YAML document that Parse accepts.
func Marshal(f File) ([]byte, error) {
	doc := document{Seed: f.Seed, World: f.World, Noise: f.Noise}
	for _, o := range f.Ores {
		peak := o.PeakDepth
		doc.Ores = append(doc.Ores, oreDoc{
			Primary:   worldgen.TileName(o.Primary),
			Alternate: worldgen.TileName(o.Alternate),
			MinDepth:  o.MinDepth,
			MaxDepth:  o.MaxDepth,
			PeakDepth: &peak,
			Rarity:    o.Rarity,
		})
	}
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (o oreDoc) definition() (worldgen.OreDefinition, error) {
	primary, err := tile(o.Primary)
	if err != nil {
		return worldgen.OreDefinition{}, err
	}
	alternate := primary
	if o.Alternate != "" {
		if alternate, err = tile(o.Alternate); err != nil {
			return worldgen.OreDefinition{}, err
		}
	}
	peak := float64(o.MinDepth+o.MaxDepth) / 2
	if o.PeakDepth != nil {
		peak = *o.PeakDepth
	}
	return worldgen.OreDefinition{
		Primary:   primary,
		Alternate: alternate,
		MinDepth:  o.MinDepth,
		MaxDepth:  o.MaxDepth,
		PeakDepth: peak,
		Rarity:    o.Rarity,
	}, nil
}

func tile(name string) (core.Tile, error) {
	t, ok := worldgen.TileByName(name)
	if !ok || t == core.None {
		return core.None, fmt.Errorf("unknown tile %q", name)
	}
	return t, nil
}

// jsonValue converts a decoded YAML tree into the plain JSON values the schema
// validator expects.
func jsonValue(v any) (any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("document is not JSON compatible: %w", err)
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var out any
	if err := dec.Decode(&out); err != nil {
		return nil, err
	}
	return out, nil
}
