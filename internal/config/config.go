package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	astar "github.com/pdrpinto/gridastar"
)

// Config holds all settings for a visualizer session.
type Config struct {
	LogLevel string `yaml:"log_level"` // debug, info, warn, error

	// Grid
	CellSize int `yaml:"cell_size"` // pixels
	Width    int `yaml:"width"`     // pixels; ignored when a layout is given
	Height   int `yaml:"height"`    // pixels; ignored when a layout is given

	// Search
	Diagonal  bool   `yaml:"diagonal"`
	Euclidean bool   `yaml:"euclidean"`
	Heuristic string `yaml:"heuristic"` // auto, manhattan, octile, euclidean

	// Animation
	ShowSteps bool `yaml:"show_steps"`
	Speed     int  `yaml:"speed"` // 0 pauses, 1..100

	Zoom   ZoomConfig   `yaml:"zoom"`
	Layout Layout       `yaml:"layout"`
	Random RandomConfig `yaml:"random"`
}

// ZoomConfig bounds cell size changes.
type ZoomConfig struct {
	Step int `yaml:"step"`
	Min  int `yaml:"min"` // exclusive
	Max  int `yaml:"max"` // exclusive
}

// RandomConfig controls wall generation when no layout is given.
type RandomConfig struct {
	Seed     int64   `yaml:"seed"` // 0 picks a time-based seed
	Clusters int     `yaml:"clusters"`
	Steps    int     `yaml:"steps"`
	Density  float64 `yaml:"density"`
}

// Default returns Config with the classic 700x600 panel, 25px cells,
// diagonal movement and stepwise animation at speed 50.
func Default() Config {
	return Config{
		LogLevel:  "info",
		CellSize:  25,
		Width:     700,
		Height:    600,
		Diagonal:  true,
		Heuristic: "auto",
		ShowSteps: true,
		Speed:     50,
		Zoom: ZoomConfig{
			Step: 3,
			Min:  2,
			Max:  200,
		},
		Random: RandomConfig{
			Clusters: 8,
			Steps:    200,
			Density:  0.25,
		},
	}
}

// Load loads config from a YAML file.
// If the file doesn't exist, returns defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("validating config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if c.CellSize <= 0 {
		return fmt.Errorf("cell_size must be positive, got %d", c.CellSize)
	}
	if len(c.Layout.Rows) == 0 && (c.Width <= 0 || c.Height <= 0) {
		return fmt.Errorf("width and height must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.Speed < 0 || c.Speed > 100 {
		return fmt.Errorf("speed must be within [0, 100], got %d", c.Speed)
	}
	if c.Zoom.Step < 0 || c.Zoom.Min > c.Zoom.Max {
		return fmt.Errorf("invalid zoom step %d within (%d, %d)", c.Zoom.Step, c.Zoom.Min, c.Zoom.Max)
	}
	if c.Random.Density < 0 || c.Random.Density > 1 {
		return fmt.Errorf("random.density must be within [0, 1], got %g", c.Random.Density)
	}
	if _, err := astar.ParseHeuristic(c.Heuristic); err != nil {
		return err
	}
	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// Bounds returns the panel size in pixels, taken from the layout when one
// is present.
func (c Config) Bounds() astar.Bounds {
	if cols, rows := c.Layout.Size(); rows > 0 {
		return astar.Bounds{Width: cols * c.CellSize, Height: rows * c.CellSize}
	}
	return astar.Bounds{Width: c.Width, Height: c.Height}
}

// EngineOptions maps the config onto engine options.
func (c Config) EngineOptions(logger *slog.Logger) ([]astar.Option, error) {
	kind, err := astar.ParseHeuristic(c.Heuristic)
	if err != nil {
		return nil, err
	}
	bounds := c.Bounds()
	return []astar.Option{
		astar.WithCellSize(c.CellSize),
		astar.WithBounds(bounds.Width, bounds.Height),
		astar.WithDiagonal(c.Diagonal),
		astar.WithEuclidean(c.Euclidean),
		astar.WithHeuristic(kind),
		astar.WithZoom(c.Zoom.Step, c.Zoom.Min, c.Zoom.Max),
		astar.WithLogger(logger),
	}, nil
}

// ParseLogLevel maps a config string to a slog level. Empty means info.
func ParseLogLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("unknown log level %q", level)
}
