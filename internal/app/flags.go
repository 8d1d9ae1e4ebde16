package app

import (
	"fmt"

	"colorlife/internal/sims/life"

	"github.com/spf13/pflag"
)

// Config represents the command-line parameters for the application.
type Config struct {
	ConfigPath string
	Overrides  map[string]string
	Scale      int
	TPS        int
	LogLevel   string
	HUD        bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Scale: 8, TPS: 60, LogLevel: "info", HUD: true}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *pflag.FlagSet) {
	fs.StringVarP(&c.ConfigPath, "config", "c", c.ConfigPath, "YAML file with simulation settings")
	fs.StringToStringVar(&c.Overrides, "set", c.Overrides, "simulation setting override in key=value form (repeatable)")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixels per cell")
	fs.IntVar(&c.TPS, "tps", c.TPS, "frames per second")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log verbosity: trace, debug, info, warn, error")
	fs.BoolVar(&c.HUD, "hud", c.HUD, "show the parameter panel on start")
}

// Simulation resolves the simulation settings: defaults, then the YAML
// file if one was given, then --set overrides.
func (c *Config) Simulation() (life.Config, error) {
	cfg := life.DefaultConfig()
	if c.ConfigPath != "" {
		loaded, err := life.LoadFile(cfg, c.ConfigPath)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}
	return life.FromMap(cfg, c.Overrides).Normalize(), nil
}

// Validate checks the display settings.
func (c *Config) Validate() error {
	if c.Scale <= 0 {
		return fmt.Errorf("scale must be positive, got %d", c.Scale)
	}
	if c.TPS <= 0 {
		return fmt.Errorf("tps must be positive, got %d", c.TPS)
	}
	return nil
}
