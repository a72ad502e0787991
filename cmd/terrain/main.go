//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"mad-terrain/internal/app"
	"mad-terrain/internal/config"
	"mad-terrain/internal/worldgen"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	doc := config.Default()
	if cfg.WorldFile != "" {
		var err error
		if doc, err = config.Load(cfg.WorldFile); err != nil {
			log.Fatal(err)
		}
	}
	seed := doc.Seed
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			seed = cfg.Seed
		}
	})

	tuner := worldgen.NewTuner(doc.World, doc.Noise, doc.Ores, seed)
	game, err := app.New(tuner, cfg)
	if err != nil {
		log.Fatal(err)
	}
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("mad-terrain")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
