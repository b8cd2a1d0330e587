package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Frontends the binary can run
const (
	FrontendWindow   = "window"
	FrontendTerminal = "terminal"
	FrontendTrain    = "train"
)

// Config is the top-level runtime configuration. Gameplay constants are
// fixed and intentionally absent.
type Config struct {
	Frontend  string         `yaml:"frontend"`
	Seed      uint64         `yaml:"seed"`      // 0 = seed from the clock
	Autopilot bool           `yaml:"autopilot"` // Let the Q-learning agent steer
	Window    WindowConfig   `yaml:"window"`
	Log       LogConfig      `yaml:"log"`
	Training  TrainingConfig `yaml:"training"`
}

// WindowConfig holds raylib window settings.
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	FPS    int    `yaml:"fps"`
	Title  string `yaml:"title"`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text or json
	File   string `yaml:"file"`   // Empty = stderr (discarded by the terminal frontend)
}

// TrainingConfig bounds the headless autopilot trainer.
type TrainingConfig struct {
	Episodes int `yaml:"episodes"`
	MaxSteps int `yaml:"max_steps"` // Per episode
	Workers  int `yaml:"workers"`   // Engines playing in parallel
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Frontend: FrontendWindow,
		Window: WindowConfig{
			Width:  600,
			Height: 800,
			FPS:    60,
			Title:  "Flower Snake",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Training: TrainingConfig{
			Episodes: 500,
			MaxSteps: 5000,
			Workers:  1,
		},
	}
}

// Load reads a YAML file over the defaults. An empty path returns the
// defaults; a path that cannot be read is an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path) //nolint:gosec // path is caller-provided configuration
	if err != nil {
		return Config{}, fmt.Errorf("config: load %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	switch c.Frontend {
	case FrontendWindow, FrontendTerminal, FrontendTrain:
	default:
		return fmt.Errorf("config: unknown frontend %q", c.Frontend)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("config: window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Window.FPS <= 0 {
		return fmt.Errorf("config: window fps must be positive, got %d", c.Window.FPS)
	}
	if _, err := c.Log.SlogLevel(); err != nil {
		return err
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("config: unknown log format %q", c.Log.Format)
	}
	if c.Training.Episodes < 0 || c.Training.MaxSteps <= 0 {
		return fmt.Errorf("config: training needs episodes >= 0 and max_steps > 0")
	}
	if c.Training.Workers < 1 {
		return fmt.Errorf("config: training needs at least one worker, got %d", c.Training.Workers)
	}
	return nil
}

// SlogLevel parses the configured level name.
func (l LogConfig) SlogLevel() (slog.Level, error) {
	switch strings.ToLower(l.Level) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("config: unknown log level %q", l.Level)
	}
}
