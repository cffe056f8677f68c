// Package config provides the display configuration for the game window.
package config

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds window and drawing parameters. Gameplay constants live in
// game/types and are not configurable.
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Board   BoardConfig   `yaml:"board"`
	Palette PaletteConfig `yaml:"palette"`
	HUD     HUDConfig     `yaml:"hud"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Title     string `yaml:"title"`
	TargetFPS int    `yaml:"target_fps"` // draw rate, independent of the game speed
}

// BoardConfig holds the board layout in pixels.
type BoardConfig struct {
	TileSize  int  `yaml:"tile_size"`
	Padding   int  `yaml:"padding"`
	HUDHeight int  `yaml:"hud_height"`
	GridLines bool `yaml:"grid_lines"`
}

// RGBA is a color as [r, g, b, a].
type RGBA [4]uint8

// PaletteConfig holds the colors used by the renderer.
type PaletteConfig struct {
	Background RGBA `yaml:"background"`
	GridLine   RGBA `yaml:"grid_line"`
	Food       RGBA `yaml:"food"`
	SnakeHead  RGBA `yaml:"snake_head"`
	SnakeBody  RGBA `yaml:"snake_body"`
	Text       RGBA `yaml:"text"`
	Overlay    RGBA `yaml:"overlay"`
}

// HUDConfig holds text settings.
type HUDConfig struct {
	FontSize      int    `yaml:"font_size"`
	ScoreLabel    string `yaml:"score_label"`
	SpeedLabel    string `yaml:"speed_label"`
	GameOverLabel string `yaml:"game_over_label"`
	RestartLabel  string `yaml:"restart_label"`
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	BoardPixels  int // side of the square board in pixels
	WindowWidth  int
	WindowHeight int
}

// Load decodes the embedded defaults for a board of gridSize cells per side.
func Load(gridSize int) (*Config, error) {
	return parse(defaultsYAML, gridSize)
}

func parse(data []byte, gridSize int) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg.computeDerived(gridSize)
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Board.TileSize <= 0 {
		return fmt.Errorf("config: board.tile_size must be positive, got %d", c.Board.TileSize)
	}
	if c.Board.Padding < 0 || c.Board.HUDHeight < 0 {
		return fmt.Errorf("config: board.padding and board.hud_height must not be negative")
	}
	if c.HUD.FontSize <= 0 {
		return fmt.Errorf("config: hud.font_size must be positive, got %d", c.HUD.FontSize)
	}
	if c.Window.TargetFPS <= 0 {
		return fmt.Errorf("config: window.target_fps must be positive, got %d", c.Window.TargetFPS)
	}
	return nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived(gridSize int) {
	c.Derived.BoardPixels = gridSize * c.Board.TileSize
	c.Derived.WindowWidth = c.Derived.BoardPixels + 2*c.Board.Padding
	c.Derived.WindowHeight = c.Derived.BoardPixels + 2*c.Board.Padding + c.Board.HUDHeight
}
