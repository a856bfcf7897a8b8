package sand

import (
	"fmt"
	"os"

	"sandfall/internal/core"
)

// DefaultInput is the scan file read when no path is configured.
const DefaultInput = "input.txt"

// ReadScan parses the scan stored at path.
func ReadScan(path string) (Scan, error) {
	f, err := os.Open(path)
	if err != nil {
		return Scan{}, err
	}
	defer f.Close()
	scan, err := ParseScan(f)
	if err != nil {
		return Scan{}, fmt.Errorf("%s: %w", path, err)
	}
	return scan, nil
}

// Open builds a simulation from flag-style settings: "config" names an
// optional YAML file, "input" the scan (input.txt by default), and the keys
// understood by Config.Apply override the file.
func Open(settings map[string]string) (*Sim, error) {
	c := DefaultConfig()
	if path := settings["config"]; path != "" {
		loaded, err := Load(path)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		c = loaded
	}
	if err := c.Apply(settings); err != nil {
		return nil, err
	}
	input := settings["input"]
	if input == "" {
		input = DefaultInput
	}
	scan, err := ReadScan(input)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	sim, err := New(scan, c)
	if err != nil {
		return nil, fmt.Errorf("build grid: %w", err)
	}
	return sim, nil
}

func init() {
	core.Register("sand", func(cfg map[string]string) (core.Sim, error) {
		return Open(cfg)
	})
}
