package app

import (
	"flag"
	"os"
)

// ModeEnv names the environment variable that selects the puzzle part.
const ModeEnv = "part"

// Config represents the command-line parameters for the application.
type Config struct {
	Sim        string
	Input      string
	Part       string
	Schedule   string
	ConfigFile string

	Render bool
	TPS    int
	Scale  int

	Profile  bool
	LogLevel string
}

// NewConfig returns a Config populated with sensible defaults. The part
// defaults to the value of the part environment variable.
func NewConfig() *Config {
	return &Config{
		Sim:      "sand",
		Input:    "input.txt",
		Part:     os.Getenv(ModeEnv),
		TPS:      60,
		Scale:    4,
		LogLevel: "info",
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Input, "input", c.Input, "rock scan to simulate")
	fs.StringVar(&c.Part, "part", c.Part, "part1 (bounded) or part2 (floor); defaults to $part")
	fs.StringVar(&c.Schedule, "schedule", c.Schedule, "serial (one unit at a time) or tick (one spawn per tick)")
	fs.StringVar(&c.ConfigFile, "config", c.ConfigFile, "optional YAML config file")
	fs.BoolVar(&c.Render, "render", c.Render, "animate the simulation in the terminal")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second while animating")
	fs.BoolVar(&c.Profile, "profile", c.Profile, "write a CPU profile to the working directory")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "logrus level (debug, info, warn, error)")
}

// BindViewer attaches the options only the ebiten viewer understands.
func (c *Config) BindViewer(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
}

// Overrides returns the settings that take precedence over a config file.
func (c *Config) Overrides() map[string]string {
	return map[string]string{
		"input":    c.Input,
		"part":     c.Part,
		"schedule": c.Schedule,
		"config":   c.ConfigFile,
	}
}
