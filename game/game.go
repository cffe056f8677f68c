package game

import (
	"log/slog"
	"sync"
	"time"

	"gridsnake/game/entity"
	"gridsnake/game/manager"
	"gridsnake/game/types"

	"github.com/google/uuid"
	"golang.org/x/exp/rand"
)

// TickResult describes what a single tick did.
type TickResult int

const (
	// Idle means the game was already over and nothing changed.
	Idle TickResult = iota
	Moved
	Ate
	Died
)

func (r TickResult) String() string {
	switch r {
	case Moved:
		return "moved"
	case Ate:
		return "ate"
	case Died:
		return "died"
	default:
		return "idle"
	}
}

// GameState is the whole simulation: one snake, one food cell and the
// score/speed counters. All methods are safe for concurrent use.
type GameState struct {
	mu sync.Mutex

	RoundID       string
	Grid          types.Grid
	snake         *entity.Snake
	direction     types.Point
	food          types.Point
	hasFood       bool
	alive         bool
	lastCollision types.CollisionType
	steps         int
	startTime     time.Time

	collisionMgr *manager.CollisionManager
	foodMgr      *manager.FoodManager
	speedMgr     *manager.SpeedManager
	logger       *slog.Logger
}

// Option configures a GameState.
type Option func(*options)

type options struct {
	src    rand.Source
	logger *slog.Logger
}

// WithRand sets the random source used for food placement.
func WithRand(src rand.Source) Option {
	return func(o *options) { o.src = src }
}

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// New creates a game that is ready to play.
func New(opts ...Option) *GameState {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.src == nil {
		o.src = rand.NewSource(uint64(time.Now().UnixNano()))
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}

	grid := types.Board
	collisionMgr := manager.NewCollisionManager(grid)
	g := &GameState{
		Grid:         grid,
		collisionMgr: collisionMgr,
		foodMgr:      manager.NewFoodManager(grid, collisionMgr, o.src),
		speedMgr:     manager.NewSpeedManager(),
		logger:       o.logger,
	}
	g.Reset()
	return g
}

// Reset starts a new round, discarding all previous state.
func (g *GameState) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.reset()
}

func (g *GameState) reset() {
	g.RoundID = uuid.New().String()
	g.snake = entity.NewSnake(types.StartPosition)
	g.direction = types.Right
	g.food, g.hasFood = g.foodMgr.GenerateFood(g.snake)
	g.speedMgr.Reset()
	g.alive = true
	g.lastCollision = types.NoCollision
	g.steps = 0
	g.startTime = time.Now()

	g.logger.Info("round started",
		"round", g.RoundID,
		"food", g.food,
		"fps", g.speedMgr.GetFPS(),
	)
}

// SetDirection changes the direction applied by the next tick. A request that
// would put the head onto the segment right behind it is ignored.
func (g *GameState) SetDirection(dx, dy int) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.setDirection(types.Point{X: dx, Y: dy})
}

func (g *GameState) setDirection(dir types.Point) {
	if neck, ok := g.snake.Neck(); ok && g.snake.GetHead().Add(dir) == neck {
		return
	}
	g.direction = dir
}

// Tick advances the simulation by one cell. It does nothing once the game
// is over.
func (g *GameState) Tick() TickResult {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.alive {
		return Idle
	}
	g.steps++

	newHead := g.snake.GetHead().Add(g.direction)

	if collision := g.collisionMgr.CheckCollision(newHead, g.snake); collision != types.NoCollision {
		g.alive = false
		g.lastCollision = collision
		g.logger.Info("game over",
			"round", g.RoundID,
			"cause", collision.String(),
			"score", g.speedMgr.GetScore(),
			"fps", g.speedMgr.GetFPS(),
			"length", g.snake.Len(),
			"steps", g.steps,
			"duration", time.Since(g.startTime).Round(time.Millisecond).String(),
		)
		return Died
	}

	g.snake.PushFront(newHead)

	if g.hasFood && g.collisionMgr.IsFoodCollision(newHead, g.food) {
		fpsChanged := g.speedMgr.FoodEaten()
		g.food, g.hasFood = g.foodMgr.GenerateFood(g.snake)
		g.logger.Debug("food eaten",
			"round", g.RoundID,
			"score", g.speedMgr.GetScore(),
			"fps", g.speedMgr.GetFPS(),
			"fps_changed", fpsChanged,
			"next_food", g.food,
		)
		return Ate
	}

	g.snake.PopBack()
	return Moved
}

// Alive reports whether the round is still running.
func (g *GameState) Alive() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.alive
}

func (g *GameState) Score() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.speedMgr.GetScore()
}

func (g *GameState) FPS() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.speedMgr.GetFPS()
}

// Interval is the period the scheduler should tick at for the current speed.
func (g *GameState) Interval() time.Duration {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.speedMgr.Interval()
}
