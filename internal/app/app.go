//go:build ebiten

package app

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"mad-terrain/internal/core"
	"mad-terrain/internal/render"
	"mad-terrain/internal/ui"
	"mad-terrain/internal/worldgen"
)

// Game adapts the terrain generator to the ebiten.Game interface. Keys:
// R regenerates, S picks a random seed, N and P step the seed, B toggles the
// background layer, C toggles seed cycling, Q or Esc quits.
type Game struct {
	tuner   *worldgen.Tuner
	world   *worldgen.World
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD
	layers  render.Layers

	scale   int
	hudW    int
	cycle   *core.Cadence
	cycling bool
	err     error
}

// New constructs a Game and generates the first world.
func New(tuner *worldgen.Tuner, cfg *Config) (*Game, error) {
	scale := cfg.Scale
	if scale <= 0 {
		scale = 1
	}
	g := &Game{
		tuner:   tuner,
		overlay: ui.NewOverlay(scale),
		hud:     ui.NewHUD(tuner, cfg.HUDWidth),
		layers:  render.DefaultLayers(),
		scale:   scale,
		hudW:    max(cfg.HUDWidth, 0),
	}
	if cfg.Cycle > 0 {
		g.cycle = core.NewCadence(cfg.Cycle)
		g.cycling = true
	}
	if err := g.regenerate(); err != nil {
		return nil, err
	}
	return g, nil
}

// Reset regenerates the world with the provided seed.
func (g *Game) Reset(seed int64) {
	g.tuner.Reseed(seed)
	g.err = g.regenerate()
}

func (g *Game) regenerate() error {
	w, err := g.tuner.Generate()
	if err != nil {
		g.hud.SetStatus(err.Error())
		return err
	}
	g.world = w
	size := w.Grid.Size()
	if g.painter == nil {
		g.painter = render.NewGridPainter(size.W, size.H)
	} else if pw, ph := g.painter.Size(); pw != size.W || ph != size.H {
		g.painter = render.NewGridPainter(size.W, size.H)
	}
	g.painter.Update(w.Grid, g.layers)
	g.overlay.SetWorld(w)
	g.hud.SetStatus(fmt.Sprintf("seed %d  tunnels %d", w.Seed, w.Tunnels))
	return nil
}

// Update handles input and regenerates when a parameter changed.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.tuner.Seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.Reset(g.tuner.Seed + 1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.Reset(g.tuner.Seed - 1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyB) {
		g.layers.HideBackground = !g.layers.HideBackground
		g.painter.Update(g.world.Grid, g.layers)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) && g.cycle != nil {
		g.cycling = !g.cycling
		g.cycle.Reset()
	}
	if g.cycling && g.cycle.Due() {
		g.Reset(g.tuner.Seed + 1)
	}

	g.overlay.Update()
	g.hud.Update(g.viewWidth())
	// A failed regeneration waits for R or a new seed before retrying.
	if g.tuner.Dirty() && g.err == nil {
		g.err = g.regenerate()
	}
	return nil
}

// Draw renders the current world, the overlay and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Draw(screen, g.scale)
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.viewWidth(), g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.tuner.Size()
	return g.viewWidth() + g.hudW, s.H * g.scale
}

func (g *Game) viewWidth() int { return g.tuner.Size().W * g.scale }
