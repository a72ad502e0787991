package worldgen

import (
	"image/color"

	"mad-terrain/internal/core"
)

var tilePalette = buildTilePalette()

// Palette exposes foreground colors indexed by tile. Index 0 is transparent.
func Palette() []color.RGBA { return tilePalette }

// BackgroundPalette exposes the darkened colors used for background tiles.
func BackgroundPalette() []color.RGBA { return backgroundPalette }

var backgroundPalette = func() []color.RGBA {
	out := make([]color.RGBA, len(tilePalette))
	shade := color.NRGBA{R: 8, G: 8, B: 12, A: 255}
	for i, c := range tilePalette {
		if i == int(core.None) {
			continue
		}
		out[i] = toRGBA(blendColors(color.NRGBA(c), shade, 0.55))
	}
	return out
}()

func buildTilePalette() []color.RGBA {
	palette := make([]color.RGBA, TileCount)
	for i := 1; i < TileCount; i++ {
		palette[i] = toRGBA(tileColor(core.Tile(i)))
	}
	return palette
}

func toRGBA(c color.NRGBA) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

func tileColor(t core.Tile) color.NRGBA {
	stone := color.NRGBA{R: 120, G: 120, B: 125, A: 255}
	dirt := color.NRGBA{R: 110, G: 78, B: 48, A: 255}
	sand := color.NRGBA{R: 222, G: 200, B: 140, A: 255}
	snow := color.NRGBA{R: 240, G: 244, B: 250, A: 255}
	grass := color.NRGBA{R: 70, G: 160, B: 80, A: 255}

	switch t {
	case Stone:
		return stone
	case StoneGrass:
		return blendColors(stone, grass, 0.25)
	case StoneSand:
		return blendColors(stone, sand, 0.3)
	case StoneSnow:
		return blendColors(stone, snow, 0.3)
	case Dirt:
		return dirt
	case DirtGrass:
		return blendColors(dirt, grass, 0.7)
	case DirtSand:
		return blendColors(dirt, sand, 0.7)
	case DirtSnow:
		return blendColors(dirt, snow, 0.8)
	case Sand:
		return sand
	case SandDark:
		return blendColors(sand, color.NRGBA{A: 255}, 0.4)
	case SnowBlock:
		return snow
	case Ice:
		return color.NRGBA{R: 170, G: 210, B: 240, A: 255}
	case Lava:
		return color.NRGBA{R: 255, G: 90, B: 40, A: 255}
	case Water:
		return color.NRGBA{R: 50, G: 110, B: 220, A: 255}
	case TrunkBottom, TrunkMid:
		return color.NRGBA{R: 90, G: 60, B: 30, A: 255}
	case Leaves:
		return color.NRGBA{R: 40, G: 120, B: 55, A: 255}
	case Rock:
		return color.NRGBA{R: 150, G: 150, B: 150, A: 255}
	case Grass1, Grass2, Grass3, Grass4:
		return grass
	case StoneDark:
		return color.NRGBA{R: 60, G: 60, B: 66, A: 255}
	case DirtDark:
		return color.NRGBA{R: 62, G: 44, B: 28, A: 255}
	}
	if IsOre(t) {
		return blendColors(stone, oreColor(t), 0.6)
	}
	return color.NRGBA{R: 255, G: 0, B: 255, A: 255}
}

func oreColor(t core.Tile) color.NRGBA {
	switch t {
	case StoneCoal, StoneCoalAlt:
		return color.NRGBA{R: 20, G: 20, B: 20, A: 255}
	case StoneIron, StoneIronAlt:
		return color.NRGBA{R: 200, G: 140, B: 100, A: 255}
	case StoneSilver, StoneSilverAlt:
		return color.NRGBA{R: 220, G: 220, B: 235, A: 255}
	case StoneGold, StoneGoldAlt:
		return color.NRGBA{R: 250, G: 200, B: 40, A: 255}
	case StoneDiamond, StoneDiamondAlt:
		return color.NRGBA{R: 90, G: 230, B: 230, A: 255}
	default:
		return color.NRGBA{R: 210, G: 30, B: 60, A: 255}
	}
}

func blendColors(base, overlay color.NRGBA, overlayWeight float64) color.NRGBA {
	if overlayWeight <= 0 {
		return base
	}
	if overlayWeight >= 1 {
		return overlay
	}
	br, bg, bb, ba := float64(base.R), float64(base.G), float64(base.B), float64(base.A)
	or, og, ob, oa := float64(overlay.R), float64(overlay.G), float64(overlay.B), float64(overlay.A)
	w := overlayWeight
	inv := 1 - w
	return color.NRGBA{
		R: uint8(br*inv + or*w + 0.5),
		G: uint8(bg*inv + og*w + 0.5),
		B: uint8(bb*inv + ob*w + 0.5),
		A: uint8(ba*inv + oa*w + 0.5),
	}
}

// BiomeColor is used by overlays to tint chunk bands.
func BiomeColor(b Biome) color.RGBA {
	switch b {
	case Desert:
		return color.RGBA{R: 230, G: 190, B: 90, A: 255}
	case Snow:
		return color.RGBA{R: 235, G: 240, B: 255, A: 255}
	case Ocean:
		return color.RGBA{R: 40, G: 90, B: 200, A: 255}
	default:
		return color.RGBA{R: 80, G: 170, B: 80, A: 255}
	}
}
