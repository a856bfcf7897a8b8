package sand

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"sandfall/internal/core"
)

var (
	// ErrUnknownMode is returned for a mode name other than part1/part2.
	ErrUnknownMode = errors.New("unknown mode")
	// ErrUnknownSchedule is returned for a schedule name other than serial/tick.
	ErrUnknownSchedule = errors.New("unknown schedule")
)

// Mode selects how the simulation ends.
type Mode uint8

const (
	// ModeBounded ends the run when a unit leaves the scanned area.
	ModeBounded Mode = iota
	// ModeFloor adds a floor two rows below the lowest rock and ends the run
	// when the source is blocked.
	ModeFloor
)

// ParseMode accepts the puzzle part names as well as descriptive aliases.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "part1", "1", "bounded":
		return ModeBounded, nil
	case "part2", "2", "floor":
		return ModeFloor, nil
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownMode, s)
}

func (m Mode) String() string {
	if m == ModeFloor {
		return "part2"
	}
	return "part1"
}

// UnmarshalYAML decodes a mode name.
func (m *Mode) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := ParseMode(value.Value)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// Schedule selects how units are released.
type Schedule uint8

const (
	// ScheduleSerial lets each unit come to rest before spawning the next.
	ScheduleSerial Schedule = iota
	// SchedulePerTick spawns a unit every tick and advances all in-flight
	// units by one step per tick.
	SchedulePerTick
)

// ParseSchedule accepts "serial" or "tick".
func ParseSchedule(s string) (Schedule, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "serial", "rest":
		return ScheduleSerial, nil
	case "tick", "pertick":
		return SchedulePerTick, nil
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownSchedule, s)
}

func (s Schedule) String() string {
	if s == SchedulePerTick {
		return "tick"
	}
	return "serial"
}

// UnmarshalYAML decodes a schedule name.
func (s *Schedule) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := ParseSchedule(value.Value)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Config controls a sand run.
type Config struct {
	Mode     Mode     `yaml:"part"`
	Schedule Schedule `yaml:"schedule"`
	SourceX  int      `yaml:"source_x"`
	SourceY  int      `yaml:"source_y"`
}

// DefaultConfig returns the puzzle's standard configuration.
func DefaultConfig() Config {
	return Config{
		Mode:     ModeBounded,
		Schedule: ScheduleSerial,
		SourceX:  500,
		SourceY:  0,
	}
}

// Source returns the spawn position.
func (c Config) Source() core.Pt { return core.Pt{X: c.SourceX, Y: c.SourceY} }

// Apply overrides fields from flag-style key/value pairs. Empty values are
// ignored.
func (c *Config) Apply(cfg map[string]string) error {
	if v := cfg["part"]; v != "" {
		m, err := ParseMode(v)
		if err != nil {
			return err
		}
		c.Mode = m
	}
	if v := cfg["schedule"]; v != "" {
		s, err := ParseSchedule(v)
		if err != nil {
			return err
		}
		c.Schedule = s
	}
	if v := cfg["source"]; v != "" {
		pt, err := parseWaypoint(v)
		if err != nil {
			return fmt.Errorf("source: %w", err)
		}
		c.SourceX, c.SourceY = pt.X, pt.Y
	}
	if v := cfg["source_x"]; v != "" {
		x, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("source_x: %w", err)
		}
		c.SourceX = x
	}
	if v := cfg["source_y"]; v != "" {
		y, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("source_y: %w", err)
		}
		c.SourceY = y
	}
	return nil
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) (Config, error) {
	c := DefaultConfig()
	if cfg == nil {
		return c, nil
	}
	err := c.Apply(cfg)
	return c, err
}

// Load reads a YAML config file on top of the defaults.
func Load(path string) (Config, error) {
	c := DefaultConfig()
	raw, err := os.ReadFile(path)
	if err != nil {
		return c, err
	}
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return c, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}
