package main

import (
	"log/slog"
	"os"

	"gridsnake/config"
	"gridsnake/game"
	"gridsnake/game/types"
	"gridsnake/ui"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func main() {
	// Set up slog (JSON to stdout for structured logging)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.Load(types.GridSize)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	rl.InitWindow(int32(cfg.Derived.WindowWidth), int32(cfg.Derived.WindowHeight), cfg.Window.Title)
	defer rl.CloseWindow()

	rl.SetTargetFPS(int32(cfg.Window.TargetFPS))

	g := game.New(game.WithLogger(logger))
	app := ui.NewApp(g, cfg, logger)
	app.Run()
}
