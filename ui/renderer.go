package ui

import (
	"fmt"

	"gridsnake/config"
	"gridsnake/game"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	restartButtonWidth  = 120
	restartButtonHeight = 32
)

type Renderer struct {
	cfg      *config.Config
	cellSize int32
	offsetX  int32
	offsetY  int32
	hudY     int32
}

func NewRenderer(cfg *config.Config) *Renderer {
	r := &Renderer{cfg: cfg}
	r.UpdateDimensions()
	return r
}

// UpdateDimensions recomputes the board layout from the config.
func (r *Renderer) UpdateDimensions() {
	r.cellSize = int32(r.cfg.Board.TileSize)
	r.offsetX = int32(r.cfg.Board.Padding)
	r.offsetY = int32(r.cfg.Board.Padding)
	r.hudY = r.offsetY + int32(r.cfg.Derived.BoardPixels) + int32(r.cfg.Board.Padding)
}

func color(c config.RGBA) rl.Color {
	return rl.Color{R: c[0], G: c[1], B: c[2], A: c[3]}
}

// Draw renders one frame and reports whether the restart button was clicked.
func (r *Renderer) Draw(snap game.Snapshot) bool {
	rl.BeginDrawing()
	defer rl.EndDrawing()

	palette := r.cfg.Palette
	rl.ClearBackground(color(palette.Background))

	boardW := r.cellSize * int32(snap.Grid.Width)
	boardH := r.cellSize * int32(snap.Grid.Height)

	if r.cfg.Board.GridLines {
		lineColor := color(palette.GridLine)
		for i := int32(1); i < int32(snap.Grid.Width); i++ {
			x := r.offsetX + i*r.cellSize
			rl.DrawLine(x, r.offsetY, x, r.offsetY+boardH, lineColor)
		}
		for i := int32(1); i < int32(snap.Grid.Height); i++ {
			y := r.offsetY + i*r.cellSize
			rl.DrawLine(r.offsetX, y, r.offsetX+boardW, y, lineColor)
		}
	}
	rl.DrawRectangleLines(r.offsetX-1, r.offsetY-1, boardW+2, boardH+2, color(palette.GridLine))

	if snap.HasFood {
		rl.DrawRectangle(
			r.offsetX+int32(snap.Food.X)*r.cellSize,
			r.offsetY+int32(snap.Food.Y)*r.cellSize,
			r.cellSize, r.cellSize, color(palette.Food))
	}

	headColor := color(palette.SnakeHead)
	bodyColor := color(palette.SnakeBody)
	// Tail first so the head is painted on top.
	for i := len(snap.Snake) - 1; i >= 0; i-- {
		p := snap.Snake[i]
		c := bodyColor
		if i == 0 {
			c = headColor
		}
		rl.DrawRectangle(
			r.offsetX+int32(p.X)*r.cellSize,
			r.offsetY+int32(p.Y)*r.cellSize,
			r.cellSize, r.cellSize, c)
	}

	r.drawHUD(snap)

	if snap.Alive {
		return false
	}
	return r.drawGameOver(boardW, boardH)
}

func (r *Renderer) drawHUD(snap game.Snapshot) {
	hud := r.cfg.HUD
	fontSize := int32(hud.FontSize)
	textColor := color(r.cfg.Palette.Text)

	rl.DrawText(fmt.Sprintf(hud.ScoreLabel, snap.Score), r.offsetX, r.hudY, fontSize, textColor)

	speed := fmt.Sprintf(hud.SpeedLabel, snap.FPS)
	speedWidth := rl.MeasureText(speed, fontSize)
	rl.DrawText(speed,
		r.offsetX+int32(r.cfg.Derived.BoardPixels)-speedWidth,
		r.hudY, fontSize, textColor)
}

func (r *Renderer) drawGameOver(boardW, boardH int32) bool {
	hud := r.cfg.HUD
	fontSize := int32(hud.FontSize) * 2

	rl.DrawRectangle(r.offsetX, r.offsetY, boardW, boardH, color(r.cfg.Palette.Overlay))

	textWidth := rl.MeasureText(hud.GameOverLabel, fontSize)
	textY := r.offsetY + boardH/2 - fontSize
	rl.DrawText(hud.GameOverLabel,
		r.offsetX+(boardW-textWidth)/2,
		textY,
		fontSize, color(r.cfg.Palette.Text))

	bounds := rl.Rectangle{
		X:      float32(r.offsetX + (boardW-restartButtonWidth)/2),
		Y:      float32(textY + fontSize + int32(r.cfg.Board.Padding)),
		Width:  restartButtonWidth,
		Height: restartButtonHeight,
	}
	return gui.Button(bounds, hud.RestartLabel)
}
