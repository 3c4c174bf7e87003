package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
)

// SeedEnv overrides [sim] seed when set to an unsigned integer.
const SeedEnv = "PLAYGROUND_SEED"

type Config struct {
	Window   WindowConfig   `toml:"window"`
	Sim      SimConfig      `toml:"sim"`
	Audio    AudioConfig    `toml:"audio"`
	Terminal TerminalConfig `toml:"terminal"`
	Logging  LoggingConfig  `toml:"logging"`
}

type WindowConfig struct {
	Title string  `toml:"title"`
	Scale float64 `toml:"scale"` // window size relative to the 1000x900 arena
	VSync bool    `toml:"vsync"`
}

type SimConfig struct {
	Seed         uint64  `toml:"seed"` // 0 = clock
	MaxFrameTime float64 `toml:"max_frame_time"`
}

type AudioConfig struct {
	Enabled bool    `toml:"enabled"`
	Backend string  `toml:"backend"` // "oto" or "beep"
	Volume  float64 `toml:"volume"`  // 0.0-1.0
}

type TerminalConfig struct {
	FPS     int     `toml:"fps"`
	KeyHold float64 `toml:"key_hold"` // seconds a key counts as held after its last repeat
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

// Load reads a TOML file over the defaults. An empty path yields defaults.
// The seed environment override is applied last.
func Load(path string) (*Config, error) {
	cfg := Defaults()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	if s := os.Getenv(SeedEnv); s != "" {
		v, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%s=%q: %w", SeedEnv, s, err)
		}
		cfg.Sim.Seed = v
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Defaults() *Config {
	return &Config{
		Window: WindowConfig{
			Title: "Physics Playground",
			Scale: 1.0,
			VSync: true,
		},
		Sim: SimConfig{
			MaxFrameTime: 0.1,
		},
		Audio: AudioConfig{
			Enabled: true,
			Backend: "oto",
			Volume:  0.6,
		},
		Terminal: TerminalConfig{
			FPS:     30,
			KeyHold: 0.12,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Validate rejects values no frontend can run with and clamps volume.
func (c *Config) Validate() error {
	var errs []error
	if c.Window.Scale <= 0 {
		errs = append(errs, fmt.Errorf("window.scale must be positive, got %v", c.Window.Scale))
	}
	if c.Sim.MaxFrameTime <= 0 {
		errs = append(errs, fmt.Errorf("sim.max_frame_time must be positive, got %v", c.Sim.MaxFrameTime))
	}
	switch c.Audio.Backend {
	case "oto", "beep":
	default:
		errs = append(errs, fmt.Errorf("audio.backend %q: want oto or beep", c.Audio.Backend))
	}
	if c.Terminal.FPS <= 0 || c.Terminal.FPS > 240 {
		errs = append(errs, fmt.Errorf("terminal.fps out of range (1-240): %d", c.Terminal.FPS))
	}
	if c.Terminal.KeyHold < 0 {
		errs = append(errs, fmt.Errorf("terminal.key_hold must not be negative, got %v", c.Terminal.KeyHold))
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		errs = append(errs, fmt.Errorf("logging.format %q: want console or json", c.Logging.Format))
	}
	c.Audio.Volume = min(max(c.Audio.Volume, 0), 1)
	return errors.Join(errs...)
}
