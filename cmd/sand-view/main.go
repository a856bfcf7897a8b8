//go:build ebiten

package main

import (
	"errors"
	"flag"
	"io/fs"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"sandfall/internal/app"
	"sandfall/internal/core"
	_ "sandfall/internal/sand"
)

func main() {
	log := logrus.New()
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.WithError(err).Fatal("load .env")
	}

	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	cfg.BindViewer(flag.CommandLine)
	flag.Parse()

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		log.Fatalf("unknown sim %q", cfg.Sim)
	}
	sim, err := factory(cfg.Overrides())
	if err != nil {
		log.WithError(err).Fatal("create sim")
	}

	game := app.New(sim, cfg.Scale)
	size := sim.Size()

	ebiten.SetWindowTitle("sandfall: " + sim.Name() + " " + cfg.Part)
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale+app.HUDWidth, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
