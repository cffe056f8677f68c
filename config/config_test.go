package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(20)
	require.NoError(t, err)

	assert.Equal(t, "Snake", cfg.Window.Title)
	assert.Equal(t, 20, cfg.Board.TileSize)
	assert.Equal(t, 400, cfg.Derived.BoardPixels)
	assert.Equal(t, 400+2*cfg.Board.Padding, cfg.Derived.WindowWidth)
	assert.Equal(t, 400+2*cfg.Board.Padding+cfg.Board.HUDHeight, cfg.Derived.WindowHeight)
	assert.Equal(t, RGBA{230, 57, 70, 255}, cfg.Palette.Food)
	assert.Equal(t, "Score: %d", cfg.HUD.ScoreLabel)
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"malformed", "window: [unclosed"},
		{"zero tile size", "window: {target_fps: 60}\nboard: {tile_size: 0}\nhud: {font_size: 20}\n"},
		{"zero font size", "window: {target_fps: 60}\nboard: {tile_size: 20}\nhud: {font_size: 0}\n"},
		{"zero target fps", "window: {target_fps: 0}\nboard: {tile_size: 20}\nhud: {font_size: 20}\n"},
		{"negative padding", "window: {target_fps: 60}\nboard: {tile_size: 20, padding: -1}\nhud: {font_size: 20}\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parse([]byte(tt.yaml), 20)
			assert.Error(t, err)
		})
	}
}
