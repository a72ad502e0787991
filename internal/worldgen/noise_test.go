package worldgen

import (
	"math"
	"testing"
)

type constPrimitive float64

func (c constPrimitive) Eval2(x, y float64) float64 { return float64(c) }

func constField(v float64) *NoiseField {
	return &NoiseField{params: DefaultNoiseParams(), prim: constPrimitive(v)}
}

func TestNoiseFieldDeterministic(t *testing.T) {
	for _, basis := range []Basis{BasisSimplex, BasisPerlin} {
		a := NewNoiseField(7, DefaultNoiseParams(), basis)
		b := NewNoiseField(7, DefaultNoiseParams(), basis)
		for i := 0; i < 200; i++ {
			x := float64(i)*3.7 - 400
			y := float64(i)*1.3 - 120
			if a.Sample(x, y) != b.Sample(x, y) {
				t.Fatalf("%s: sample at (%f,%f) differs between identical fields", basis, x, y)
			}
			if a.Sample(x, y) != a.Sample(x, y) {
				t.Fatalf("%s: repeated sample at (%f,%f) differs", basis, x, y)
			}
		}
	}
}

func TestNoiseFieldRange(t *testing.T) {
	params := []NoiseParams{
		DefaultNoiseParams(),
		{StartFrequency: 0.3, Persistence: 1.5, FrequencyModifier: 3, Octaves: 6},
		{StartFrequency: 1, Persistence: 0.1, FrequencyModifier: 1, Octaves: 1, Offset: [2]float64{-50, 900}},
	}
	for _, basis := range []Basis{BasisSimplex, BasisPerlin} {
		for pi, p := range params {
			f := NewNoiseField(99, p, basis)
			for i := 0; i < 5000; i++ {
				x := float64(i)*0.77 - 2000
				y := float64(i)*-0.31 + 500
				v := f.Sample(x, y)
				if v < 0 || v > 1 || math.IsNaN(v) {
					t.Fatalf("%s params %d: sample(%f,%f) = %f outside [0,1]", basis, pi, x, y, v)
				}
			}
		}
	}
}

func TestNoiseFieldNormalizesByAmplitudeSum(t *testing.T) {
	for _, octaves := range []int{1, 2, 5, 9} {
		f := constField(0.37)
		f.params.Octaves = octaves
		f.params.Persistence = 0.8
		if got := f.Sample(12, -4); math.Abs(got-0.37) > 1e-12 {
			t.Fatalf("octaves=%d: constant basis should normalize to 0.37, got %f", octaves, got)
		}
	}
}

func TestNoiseFieldSeedsDiffer(t *testing.T) {
	a := NewNoiseField(1, DefaultNoiseParams(), BasisSimplex)
	b := NewNoiseField(2, DefaultNoiseParams(), BasisSimplex)
	same := true
	for i := 0; i < 50 && same; i++ {
		if a.Sample(float64(i)*5.5, 3.25) != b.Sample(float64(i)*5.5, 3.25) {
			same = false
		}
	}
	if same {
		t.Fatal("different seeds should produce different noise")
	}
}

func TestRangeMap(t *testing.T) {
	if got := RangeMap(0.5, 0, 1, 10, 30); got != 20 {
		t.Fatalf("RangeMap(0.5) = %f, want 20", got)
	}
	if got := RangeMap(0, 0, 1, 10, 30); got != 10 {
		t.Fatalf("RangeMap(0) = %f, want 10", got)
	}
}
