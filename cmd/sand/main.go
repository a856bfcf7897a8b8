package main

import (
	"errors"
	"flag"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/pkg/profile"
	"github.com/sirupsen/logrus"

	"sandfall/internal/app"
)

func main() {
	log := logrus.New()
	log.SetOutput(os.Stderr)

	// .env may set the part variable read by NewConfig.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.WithError(err).Fatal("load .env")
	}

	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.WithError(err).Fatal("bad -log-level")
	}
	log.SetLevel(level)

	if cfg.Profile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.Quiet).Stop()
	}

	if _, err := app.Run(cfg, os.Stdout, log); err != nil {
		log.WithError(err).Fatal("sand")
	}
}
