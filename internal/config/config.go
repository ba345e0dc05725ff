package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"tpshooter/internal/components"
	"tpshooter/internal/engine"
	"tpshooter/internal/weapon"

	"gopkg.in/yaml.v3"
)

// Config is the root of assets/config/game.yaml.
type Config struct {
	LogLevel   string                        `yaml:"log_level"`
	TickRate   int                           `yaml:"tick_rate"` // simulation steps per second
	Loadouts   map[string]weapon.Loadout     `yaml:"-"`
	Player     PlayerConfig                  `yaml:"player"`
	Locomotion components.LocomotionSettings `yaml:"locomotion"`
	Look       components.LookSettings       `yaml:"look"`
	Layers     Layers                        `yaml:"layers"`
}

type PlayerConfig struct {
	Weapon   string     `yaml:"weapon"`
	FireMode string     `yaml:"fire_mode"`
	Health   int        `yaml:"health"`
	Spawn    [3]float32 `yaml:"spawn"`
}

// Layers names the collision layer indices scenes refer to.
type Layers struct {
	Default int `yaml:"default"`
	Ground  int `yaml:"ground"`
	Player  int `yaml:"player"`
	Target  int `yaml:"target"`
}

// document mirrors Config but keeps loadouts undecoded so each one can
// start from the stock values.
type document struct {
	Config   `yaml:",inline"`
	Loadouts map[string]yaml.Node `yaml:"loadouts"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	rifle := weapon.DefaultLoadout()
	return &Config{
		LogLevel:   "info",
		TickRate:   60,
		Loadouts:   map[string]weapon.Loadout{rifle.Name: rifle},
		Player:     PlayerConfig{Weapon: rifle.Name, FireMode: "auto", Health: 100},
		Locomotion: components.DefaultLocomotionSettings(),
		Look:       components.DefaultLookSettings(),
		Layers:     Layers{Default: 0, Ground: 1, Player: 2, Target: 3},
	}
}

// Load reads a YAML config. Keys missing from the file keep their
// defaults, including fields missing from individual loadouts.
func Load(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", filename, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", filename, err)
	}
	return cfg, nil
}

// MustLoad loads config or panics.
func MustLoad(filename string) *Config {
	cfg, err := Load(filename)
	if err != nil {
		panic(err)
	}
	return cfg
}

// Parse decodes and validates a YAML document.
func Parse(data []byte) (*Config, error) {
	doc := document{Config: *Default()}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}

	cfg := doc.Config
	if len(doc.Loadouts) > 0 {
		cfg.Loadouts = make(map[string]weapon.Loadout, len(doc.Loadouts))
		for name, node := range doc.Loadouts {
			l := weapon.DefaultLoadout()
			if err := node.Decode(&l); err != nil {
				return nil, fmt.Errorf("loadout %q: %w", name, err)
			}
			l.Name = name
			cfg.Loadouts[name] = l
		}
	}
	cfg.Locomotion.GroundMask = cfg.GroundMask()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate reports every problem at once.
func (c *Config) Validate() error {
	var errs []error
	if _, err := c.SlogLevel(); err != nil {
		errs = append(errs, err)
	}
	if c.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("tick_rate %d must be positive", c.TickRate))
	}
	for name, l := range c.Loadouts {
		if err := l.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("loadout %q: %w", name, err))
		}
	}
	if _, ok := c.Loadouts[c.Player.Weapon]; !ok {
		errs = append(errs, fmt.Errorf("player weapon %q: %w", c.Player.Weapon, weapon.ErrMissingLoadout))
	}
	if c.Player.Health < 1 {
		errs = append(errs, fmt.Errorf("player health %d must be at least 1", c.Player.Health))
	}
	if c.Locomotion.TimeToApex <= 0 {
		errs = append(errs, fmt.Errorf("locomotion time_to_apex %v must be positive", c.Locomotion.TimeToApex))
	}
	if c.Look.MinPitch > c.Look.MaxPitch {
		errs = append(errs, fmt.Errorf("look min_pitch %v above max_pitch %v", c.Look.MinPitch, c.Look.MaxPitch))
	}
	for name, layer := range map[string]int{
		"default": c.Layers.Default, "ground": c.Layers.Ground,
		"player": c.Layers.Player, "target": c.Layers.Target,
	} {
		if layer < 0 || layer > 31 {
			errs = append(errs, fmt.Errorf("layer %s index %d out of range", name, layer))
		}
	}
	return errors.Join(errs...)
}

// SlogLevel parses LogLevel ("debug", "info", "warn", "error").
func (c *Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("log_level: %w", err)
	}
	return level, nil
}

// PlayerLoadout returns the loadout the player spawns with.
func (c *Config) PlayerLoadout() (*weapon.Loadout, error) {
	l, ok := c.Loadouts[c.Player.Weapon]
	if !ok {
		return nil, fmt.Errorf("player weapon %q: %w", c.Player.Weapon, weapon.ErrMissingLoadout)
	}
	return &l, nil
}

// GroundMask selects what the player can stand on.
func (c *Config) GroundMask() engine.LayerMask {
	return engine.MaskOf(c.Layers.Default, c.Layers.Ground, c.Layers.Target)
}

// HitMask selects what shots can hit: everything but the player.
func (c *Config) HitMask() engine.LayerMask {
	return engine.AllLayers &^ engine.MaskOf(c.Layers.Player)
}

// CollisionMask selects what blocks the player's movement.
func (c *Config) CollisionMask() engine.LayerMask {
	return c.GroundMask()
}
