package ui

import (
	"gridsnake/game"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var keyCommands = []struct {
	key int32
	cmd game.Command
}{
	{rl.KeyUp, game.CommandUp},
	{rl.KeyDown, game.CommandDown},
	{rl.KeyLeft, game.CommandLeft},
	{rl.KeyRight, game.CommandRight},
	{rl.KeyEnter, game.CommandRestart},
}

// pollCommands returns the commands for keys pressed since the last frame,
// in press order as far as raylib reports it.
func pollCommands() []game.Command {
	var cmds []game.Command
	for _, kc := range keyCommands {
		if rl.IsKeyPressed(kc.key) {
			cmds = append(cmds, kc.cmd)
		}
	}
	return cmds
}
