package worldgen

import (
	"math"

	"mad-terrain/internal/core"
)

const (
	tunnelNoiseOffset = 1000
	tunnelLengthMin   = 3
	tunnelLengthMax   = 15
	cavityRadiusMin   = 1
	cavityRadiusMax   = 3
)

// Direction is a unit step along a tunnel.
type Direction struct{ DX, DY int }

// TunnelDirections are the four corridor orientations: horizontal, vertical
// and the two diagonals.
var TunnelDirections = [4]Direction{{1, 0}, {0, 1}, {1, 1}, {1, -1}}

// TunnelCarver connects caves with corridors after all chunks are written.
type TunnelCarver struct {
	cfg   Config
	noise *NoiseField
	caves *CaveCarver
}

// NewTunnelCarver binds the tunnel rules to the tunnel noise channel.
func NewTunnelCarver(cfg Config, noise *NoiseField, caves *CaveCarver) *TunnelCarver {
	return &TunnelCarver{cfg: cfg, noise: noise, caves: caves}
}

// Candidate reports whether the tunnel noise at (x, y) clears the
// depth-adjusted threshold. Rows shallower than twice the minimum cave depth
// never qualify.
func (t *TunnelCarver) Candidate(x, y int) bool {
	if y < 2*t.cfg.MinCaveDepth {
		return false
	}
	v := t.noise.Sample(float64(x), float64(y+tunnelNoiseOffset))
	depthFactor := math.Min(1, float64(y)/50)
	return v > t.cfg.TunnelThreshold-0.1*depthFactor
}

// HasCaveNearby reports whether any cell within the search circle around
// (x, y) is a cave. Surface height is unknown at this stage, so the
// configured probe surface stands in for it.
func (t *TunnelCarver) HasCaveNearby(x, y int) bool {
	r := t.cfg.TunnelSearchRadius
	r2 := r * r
	for dx := -r; dx <= r; dx++ {
		for dy := -r; dy <= r; dy++ {
			if dx*dx+dy*dy > r2 {
				continue
			}
			if t.caves.IsShallowCave(x+dx, y+dy, t.cfg.TunnelProbeSurface) {
				return true
			}
		}
	}
	return false
}

// Carve scans the whole map and stamps tunnels. It returns the number of
// tunnels carved.
func (t *TunnelCarver) Carve(sink core.Sink, rng core.Random) int {
	carved := 0
	minX := t.cfg.MinX()
	for x := minX; x < minX+t.cfg.MapWidth; x++ {
		for y := 0; y < t.cfg.MapDepth; y++ {
			if !t.Candidate(x, y) {
				continue
			}
			if rng.Float64() >= t.cfg.CaveConnectivity {
				continue
			}
			if !t.HasCaveNearby(x, y) {
				continue
			}
			length := rng.IntRange(tunnelLengthMin, tunnelLengthMax)
			dir := TunnelDirections[rng.IntRange(0, len(TunnelDirections))]
			Stamp(sink, x, y, length, dir, rng)
			carved++
		}
	}
	return carved
}

// Stamp carves a corridor of length steps from (x, y) along dir. Each step
// clears a disc of random radius: foreground air over a dark stone
// background.
func Stamp(sink core.Sink, x, y, length int, dir Direction, rng core.Random) {
	for i := 0; i < length; i++ {
		px := x + i*dir.DX
		py := y + i*dir.DY
		r := rng.IntRange(cavityRadiusMin, cavityRadiusMax)
		for cx := -r; cx <= r; cx++ {
			for cy := -r; cy <= r; cy++ {
				if cx*cx+cy*cy > r*r {
					continue
				}
				sink.SetForeground(px+cx, py+cy, core.None)
				sink.SetBackground(px+cx, py+cy, StoneDark)
			}
		}
	}
}
