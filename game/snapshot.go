package game

import "gridsnake/game/types"

// Snapshot is a copy of everything a renderer needs for one frame.
type Snapshot struct {
	Grid          types.Grid
	Snake         []types.Point // head first
	Direction     types.Point
	Food          types.Point
	HasFood       bool
	Score         int
	FPS           int
	Alive         bool
	LastCollision types.CollisionType
}

// Snapshot returns the current state. The snake slice is not shared with the game.
func (g *GameState) Snapshot() Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()

	return Snapshot{
		Grid:          g.Grid,
		Snake:         g.snake.Cells(),
		Direction:     g.direction,
		Food:          g.food,
		HasFood:       g.hasFood,
		Score:         g.speedMgr.GetScore(),
		FPS:           g.speedMgr.GetFPS(),
		Alive:         g.alive,
		LastCollision: g.lastCollision,
	}
}
