package ui

import (
	"log/slog"
	"time"

	"gridsnake/config"
	"gridsnake/game"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// App owns the window loop: it drives the game from a Timer, feeds it
// keyboard input and draws a snapshot every frame.
type App struct {
	game     *game.GameState
	timer    *game.Timer
	renderer *Renderer
	logger   *slog.Logger
}

func NewApp(g *game.GameState, cfg *config.Config, logger *slog.Logger) *App {
	return &App{
		game:     g,
		timer:    game.NewTimer(g.Interval()),
		renderer: NewRenderer(cfg),
		logger:   logger,
	}
}

// Run blocks until the window is closed. The window must already be open.
func (a *App) Run() {
	a.timer.Start(time.Now())

	for !rl.WindowShouldClose() {
		for _, cmd := range pollCommands() {
			if a.game.Apply(cmd) {
				a.restart()
			}
		}

		now := time.Now()
		if a.timer.Due(now) {
			a.step()
		}

		if a.renderer.Draw(a.game.Snapshot()) {
			a.game.Reset()
			a.restart()
		}
	}
}

func (a *App) step() {
	switch a.game.Tick() {
	case game.Ate:
		if d := a.game.Interval(); d != a.timer.Interval() {
			a.timer.SetInterval(d)
			a.logger.Debug("tick interval changed", "interval", d.String())
		}
	case game.Died:
		a.timer.Stop()
	}
}

func (a *App) restart() {
	a.timer.SetInterval(a.game.Interval())
	a.timer.Start(time.Now())
}
