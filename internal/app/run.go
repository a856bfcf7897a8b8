package app

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"sandfall/internal/core"
	"sandfall/internal/render"
	"sandfall/internal/sand"
)

// Run simulates the configured scan and prints the resting count to out.
// When cfg.Render is set, each tick is drawn to out before the count.
func Run(cfg *Config, out io.Writer, log logrus.FieldLogger) (sand.Result, error) {
	sim, err := sand.Open(cfg.Overrides())
	if err != nil {
		return sand.Result{}, err
	}
	simCfg := sim.Config()

	lo, hi := sim.Grid().Bounds()
	log.WithFields(logrus.Fields{
		"input":    cfg.Input,
		"rock":     sim.Grid().Count(sand.Rock),
		"part":     simCfg.Mode,
		"schedule": simCfg.Schedule,
		"bounds":   lo.String() + " " + hi.String(),
	}).Debug("grid built")

	var res sand.Result
	if cfg.Render {
		res, err = animate(sim, cfg.TPS, out)
		if err != nil {
			return res, fmt.Errorf("render: %w", err)
		}
	} else {
		res = sim.Run()
	}

	log.WithFields(logrus.Fields{
		"resting": res.Resting,
		"spawned": res.Spawned,
		"ticks":   res.Ticks,
		"outcome": res.Outcome,
	}).Info("simulation halted")

	if _, err := fmt.Fprintln(out, res.Resting); err != nil {
		return res, err
	}
	return res, nil
}

// animate draws every tick. A non-positive tps draws as fast as possible.
func animate(sim *sand.Sim, tps int, out io.Writer) (sand.Result, error) {
	term := render.NewTerminal(out, sand.Glyphs)
	var pace *core.FixedStep
	if tps > 0 {
		pace = core.NewFixedStep(tps)
	}
	for {
		running := sim.Tick()
		if err := term.Frame(sim.Size(), sim.Cells()); err != nil {
			return sim.Result(), err
		}
		if !running {
			return sim.Result(), nil
		}
		if pace != nil {
			pace.Wait()
		}
	}
}
