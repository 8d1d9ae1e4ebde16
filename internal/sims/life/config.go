package life

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the startup constants of the simulation.
type Config struct {
	// Columns is the grid width in cells.
	Columns int `yaml:"columns"`
	// Rows is the grid height in cells.
	Rows int `yaml:"rows"`
	// AliveRatio is the probability that a cell starts alive.
	AliveRatio float64 `yaml:"alive_ratio"`
	// StepInterval is the minimum wall-clock time between generations.
	StepInterval time.Duration `yaml:"step_interval"`
	// Seed drives population and colour assignment.
	Seed int64 `yaml:"seed"`
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Columns:      128,
		Rows:         72,
		AliveRatio:   0.25,
		StepInterval: 100 * time.Millisecond,
		Seed:         42,
	}
}

// Normalize clamps out-of-range values to the nearest valid setting.
func (c Config) Normalize() Config {
	if c.Columns < 0 {
		c.Columns = 0
	}
	if c.Rows < 0 {
		c.Rows = 0
	}
	if c.AliveRatio < 0 {
		c.AliveRatio = 0
	}
	if c.AliveRatio > 1 {
		c.AliveRatio = 1
	}
	if c.StepInterval < 0 {
		c.StepInterval = 0
	}
	return c
}

// FromMap overlays key/value pairs (as given with --set) onto base.
// Malformed values are ignored.
func FromMap(base Config, cfg map[string]string) Config {
	c := base
	if cfg == nil {
		return c
	}
	if v, ok := cfg["columns"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Columns = parsed
		}
	}
	if v, ok := cfg["rows"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Rows = parsed
		}
	}
	if v, ok := cfg["alive_ratio"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.AliveRatio = parsed
		}
	}
	if v, ok := cfg["step_interval"]; ok {
		if parsed, err := time.ParseDuration(v); err == nil && parsed >= 0 {
			c.StepInterval = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	return c
}

// LoadFile reads a YAML configuration file on top of base. Keys absent from
// the file keep their base values.
func LoadFile(base Config, path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("read config %s: %w", path, err)
	}
	c := base
	if err := yaml.Unmarshal(data, &c); err != nil {
		return base, fmt.Errorf("parse config %s: %w", path, err)
	}
	return c.Normalize(), nil
}

// Marshal renders the configuration as YAML.
func (c Config) Marshal() ([]byte, error) {
	out := struct {
		Columns      int     `yaml:"columns"`
		Rows         int     `yaml:"rows"`
		AliveRatio   float64 `yaml:"alive_ratio"`
		StepInterval string  `yaml:"step_interval"`
		Seed         int64   `yaml:"seed"`
	}{c.Columns, c.Rows, c.AliveRatio, c.StepInterval.String(), c.Seed}
	data, err := yaml.Marshal(out)
	if err != nil {
		return nil, fmt.Errorf("marshal config: %w", err)
	}
	return data, nil
}
