package game

import "gridsnake/game/types"

// Command is an input event accepted by the game.
type Command int

const (
	CommandNone Command = iota
	CommandUp
	CommandDown
	CommandLeft
	CommandRight
	CommandRestart
)

var commandDirections = map[Command]types.Point{
	CommandUp:    types.Up,
	CommandDown:  types.Down,
	CommandLeft:  types.Left,
	CommandRight: types.Right,
}

// Apply routes an input command. Direction commands only count while the
// snake is alive and restart only counts once the game is over.
// It reports whether the command started a new round.
func (g *GameState) Apply(cmd Command) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if cmd == CommandRestart {
		if g.alive {
			return false
		}
		g.reset()
		return true
	}

	dir, ok := commandDirections[cmd]
	if !ok || !g.alive {
		return false
	}
	g.setDirection(dir)
	return false
}
