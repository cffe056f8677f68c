package game

import (
	"testing"

	"gridsnake/game/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDirections(t *testing.T) {
	tests := []struct {
		cmd  Command
		want types.Point
	}{
		{CommandUp, types.Up},
		{CommandDown, types.Down},
		{CommandLeft, types.Left},
		{CommandRight, types.Right},
	}

	for _, tt := range tests {
		g := newTestGame(t, 20)
		assert.False(t, g.Apply(tt.cmd))
		assert.Equal(t, tt.want, g.Snapshot().Direction)
	}
}

func TestApplyRespectsAntiReversal(t *testing.T) {
	g := newTestGame(t, 21)
	place(g, []types.Point{{X: 10, Y: 10}, {X: 9, Y: 10}}, types.Right, types.Point{X: 0, Y: 0})

	g.Apply(CommandLeft)
	assert.Equal(t, types.Right, g.Snapshot().Direction)
}

func TestApplyRestartOnlyWhenDead(t *testing.T) {
	g := newTestGame(t, 22)
	place(g, []types.Point{{X: 0, Y: 0}}, types.Up, types.Point{X: 5, Y: 5})
	round := g.RoundID

	assert.False(t, g.Apply(CommandRestart))
	assert.Equal(t, round, g.RoundID)
	assert.True(t, g.Alive())

	require.Equal(t, Died, g.Tick())

	// Direction input is ignored on the game-over screen.
	g.Apply(CommandDown)
	assert.Equal(t, types.Up, g.Snapshot().Direction)

	assert.True(t, g.Apply(CommandRestart))
	assert.True(t, g.Alive())
	assert.NotEqual(t, round, g.RoundID)
	assert.Equal(t, []types.Point{types.StartPosition}, g.Snapshot().Snake)
}

func TestApplyNoneIsIgnored(t *testing.T) {
	g := newTestGame(t, 23)
	before := g.Snapshot()

	assert.False(t, g.Apply(CommandNone))
	assert.Equal(t, before, g.Snapshot())
}
