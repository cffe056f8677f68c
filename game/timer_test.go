package game

import (
	"testing"
	"time"

	"gridsnake/game/types"

	"github.com/stretchr/testify/assert"
)

func TestTimerFiresOncePerInterval(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	timer := NewTimer(100 * time.Millisecond)
	timer.Start(start)

	assert.False(t, timer.Due(start.Add(50*time.Millisecond)))
	assert.True(t, timer.Due(start.Add(100*time.Millisecond)))
	assert.False(t, timer.Due(start.Add(150*time.Millisecond)))
	assert.True(t, timer.Due(start.Add(200*time.Millisecond)))
}

func TestTimerNoBurstAfterSlowFrame(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	timer := NewTimer(100 * time.Millisecond)
	timer.Start(start)

	late := start.Add(time.Second)
	assert.True(t, timer.Due(late))
	assert.False(t, timer.Due(late))
}

func TestTimerStopAndRestart(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	timer := NewTimer(100 * time.Millisecond)

	assert.False(t, timer.Running())
	assert.False(t, timer.Due(start.Add(time.Hour)))

	timer.Start(start)
	timer.Stop()
	assert.False(t, timer.Running())
	assert.False(t, timer.Due(start.Add(time.Second)))

	restart := start.Add(2 * time.Second)
	timer.Start(restart)
	assert.True(t, timer.Running())
	assert.False(t, timer.Due(restart))
	assert.True(t, timer.Due(restart.Add(100*time.Millisecond)))
}

func TestTimerSetInterval(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	timer := NewTimer(200 * time.Millisecond)
	timer.Start(start)

	timer.SetInterval(50 * time.Millisecond)
	assert.Equal(t, 50*time.Millisecond, timer.Interval())
	assert.True(t, timer.Due(start.Add(50*time.Millisecond)))
}

// TestTimerDrivesGame exercises the scheduling contract: re-read the speed
// after a meal and stop once the snake dies.
func TestTimerDrivesGame(t *testing.T) {
	g := newTestGame(t, 30)
	place(g, []types.Point{{X: 17, Y: 3}}, types.Right, types.Point{X: 18, Y: 3})

	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	timer := NewTimer(g.Interval())
	timer.Start(now)

	results := []TickResult{}
	for i := 0; i < 10 && timer.Running(); i++ {
		now = now.Add(timer.Interval())
		if !timer.Due(now) {
			continue
		}
		res := g.Tick()
		results = append(results, res)
		switch res {
		case Ate:
			g.food = types.Point{X: 0, Y: 0}
			timer.SetInterval(g.Interval())
		case Died:
			timer.Stop()
		}
	}

	assert.Equal(t, []TickResult{Ate, Moved, Died}, results)
	assert.Equal(t, g.Interval(), timer.Interval())
	assert.False(t, timer.Running())
}
