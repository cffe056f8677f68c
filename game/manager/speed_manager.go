package manager

import (
	"time"

	"gridsnake/game/types"
)

// SpeedManager tracks the score and the speed ramp of one round.
type SpeedManager struct {
	score int
	fps   int
}

func NewSpeedManager() *SpeedManager {
	sm := &SpeedManager{}
	sm.Reset()
	return sm
}

func (sm *SpeedManager) Reset() {
	sm.score = 0
	sm.fps = types.FpsStart
}

// FoodEaten awards the score increment and raises the speed by one step
// until FpsMax. It reports whether the speed changed.
func (sm *SpeedManager) FoodEaten() bool {
	sm.score += types.ScoreIncrement
	if sm.fps < types.FpsMax {
		sm.fps++
		return true
	}
	return false
}

func (sm *SpeedManager) GetScore() int {
	return sm.score
}

func (sm *SpeedManager) GetFPS() int {
	return sm.fps
}

// Interval is the tick period for the current speed.
func (sm *SpeedManager) Interval() time.Duration {
	return types.TickInterval(sm.fps)
}
