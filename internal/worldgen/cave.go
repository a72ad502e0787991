package worldgen

import "math"

// deepCaveOffset shifts base-layer cave sampling away from the shallow caves.
const deepCaveOffset = 5000

// CaveCarver decides cave membership analytically from coordinates, so it can
// be queried in any order without reading the written grid.
type CaveCarver struct {
	threshold    float64
	minCaveDepth int
	noise        *NoiseField
}

// NewCaveCarver binds the cave rules of cfg to the cave noise channel.
func NewCaveCarver(cfg Config, noise *NoiseField) *CaveCarver {
	return &CaveCarver{threshold: cfg.CaveThreshold, minCaveDepth: cfg.MinCaveDepth, noise: noise}
}

// IsShallowCave reports whether (x, y) is inside a cave of a column whose
// surface is at surface. Nothing within minCaveDepth of the surface is a cave.
func (c *CaveCarver) IsShallowCave(x, y, surface int) bool {
	if y > surface-c.minCaveDepth {
		return false
	}
	v := c.noise.Sample(float64(x), float64(y))
	depthFactor := math.Min(1, float64(y)/30)
	return v > c.threshold+0.1*depthFactor
}

// IsDeepCave reports whether base-layer cell (x, y) is a cave. Caves get more
// likely the deeper y goes.
func (c *CaveCarver) IsDeepCave(x, y int) bool {
	v := c.noise.Sample(float64(x), float64(y+deepCaveOffset))
	depthFactor := math.Abs(float64(y)) / 50
	return v > c.threshold-0.1*depthFactor
}
