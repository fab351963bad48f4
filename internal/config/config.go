package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Interaction InteractionConfig `toml:"interaction"`
	Sandbox     SandboxConfig     `toml:"sandbox"`
	Logging     LoggingConfig     `toml:"logging"`
}

type InteractionConfig struct {
	SightDistance     float32 `toml:"sight_distance"`     // max visibility cast length in world units
	SightRadius       float32 `toml:"sight_radius"`       // visibility probe radius
	VisibilityEnabled bool    `toml:"visibility_enabled"` // gate gated entries on line of sight
	TickIntervalMS    int     `toml:"tick_interval_ms"`   // visibility re-evaluation period
	ManualFinish      bool    `toml:"manual_finish"`      // timed interactions wait for an explicit finish
}

// TickInterval returns TickIntervalMS as a duration.
func (c InteractionConfig) TickInterval() time.Duration {
	return time.Duration(c.TickIntervalMS) * time.Millisecond
}

type SandboxConfig struct {
	Scene      string  `toml:"scene"`       // scene file loaded when no -scene flag is given
	StepMS     int     `toml:"step_ms"`     // fixed simulation step
	MaxSeconds float64 `toml:"max_seconds"` // stop after this much simulated time
}

// Step returns StepMS as a duration.
func (c SandboxConfig) Step() time.Duration {
	return time.Duration(c.StepMS) * time.Millisecond
}

type LoggingConfig struct {
	Level       string `toml:"level"`
	Format      string `toml:"format"` // "json" or "console"
	Development bool   `toml:"development"`
}

// Load reads a TOML file over the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes TOML data over the defaults.
func Parse(data []byte) (*Config, error) {
	cfg := Defaults()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Defaults() *Config {
	return &Config{
		Interaction: InteractionConfig{
			SightDistance:     512,
			SightRadius:       32,
			VisibilityEnabled: false,
			TickIntervalMS:    100,
		},
		Sandbox: SandboxConfig{
			Scene:      "assets/scenes/sandbox.yaml",
			StepMS:     20,
			MaxSeconds: 30,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

func (c *Config) validate() error {
	switch {
	case c.Interaction.SightDistance <= 0:
		return fmt.Errorf("interaction.sight_distance must be positive, got %v", c.Interaction.SightDistance)
	case c.Interaction.SightRadius < 0:
		return fmt.Errorf("interaction.sight_radius must not be negative, got %v", c.Interaction.SightRadius)
	case c.Interaction.TickIntervalMS <= 0:
		return fmt.Errorf("interaction.tick_interval_ms must be positive, got %d", c.Interaction.TickIntervalMS)
	case c.Sandbox.StepMS <= 0:
		return fmt.Errorf("sandbox.step_ms must be positive, got %d", c.Sandbox.StepMS)
	}
	return nil
}
