package game

import (
	"log/slog"
	"sync"
	"time"

	"flower-snake/game/entity"
	"flower-snake/game/manager"
	"flower-snake/game/types"

	"github.com/google/uuid"
	"golang.org/x/exp/rand"
)

// Engine owns the state of one game and advances it one tick per Step.
// It is meant to be driven from a single goroutine; the mutex only makes
// Snapshot safe to call from others.
type Engine struct {
	mu sync.Mutex

	sessionID uuid.UUID
	grid      types.Grid
	snake     *entity.Snake
	food      types.Food
	hasFood   bool
	current   types.Direction
	pending   types.Direction
	over      bool
	started   bool

	collisionMgr *manager.CollisionManager
	foodMgr      *manager.FoodManager
	stateMgr     *manager.StateManager

	scheduler Scheduler
	log       *slog.Logger
}

// Option configures an Engine
type Option func(*engineOptions)

type engineOptions struct {
	scheduler Scheduler
	rng       *rand.Rand
	log       *slog.Logger
}

// WithScheduler sets the timer the engine arms on init and level-up and
// stops on game over
func WithScheduler(s Scheduler) Option {
	return func(o *engineOptions) {
		o.scheduler = s
	}
}

// WithRand sets the random source for food placement
func WithRand(rng *rand.Rand) Option {
	return func(o *engineOptions) {
		o.rng = rng
	}
}

// WithSeed seeds food placement deterministically
func WithSeed(seed uint64) Option {
	return func(o *engineOptions) {
		o.rng = rand.New(rand.NewSource(seed))
	}
}

// WithLogger sets the logger for game lifecycle events
func WithLogger(log *slog.Logger) Option {
	return func(o *engineOptions) {
		o.log = log
	}
}

// NewEngine creates an idle engine; call Init to start a game
func NewEngine(opts ...Option) *Engine {
	o := engineOptions{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.scheduler == nil {
		o.scheduler = noopScheduler{}
	}
	if o.rng == nil {
		o.rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	if o.log == nil {
		o.log = slog.Default()
	}

	grid := types.DefaultGrid()
	return &Engine{
		grid:         grid,
		current:      types.Right,
		pending:      types.Right,
		collisionMgr: manager.NewCollisionManager(grid),
		foodMgr:      manager.NewFoodManager(grid, o.rng),
		stateMgr:     manager.NewStateManager(),
		scheduler:    o.scheduler,
		log:          o.log,
	}
}

// Init resets the engine to a fresh game and arms the scheduler
func (e *Engine) Init() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.reset()
	return e.snapshot()
}

func (e *Engine) reset() {
	e.sessionID = uuid.New()
	e.snake = entity.NewSnake(types.InitialSnakeLength, 0)
	e.current = types.Right
	e.pending = types.Right
	e.stateMgr.Reset()
	e.over = false
	e.started = true

	e.placeFood()

	e.scheduler.Schedule(e.stateMgr.GetSpeed())
	e.log.Info("game started", "session", e.sessionID.String(), "speed", e.stateMgr.GetSpeed())
}

// SetDirection requests the direction applied on the next Step. The exact
// reverse of the current direction is ignored. When the game is over the
// request restarts it instead.
func (e *Engine) SetDirection(d types.Direction) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.over || !e.started {
		e.reset()
		return
	}
	if !d.Valid() || d == e.current.Opposite() {
		return
	}
	e.pending = d
}

// Restart starts a new game if the current one is over, reporting whether
// it did so
func (e *Engine) Restart() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.started && !e.over {
		return false
	}
	e.reset()
	return true
}

// Step advances the snake one cell. It is a no-op once the game is over.
func (e *Engine) Step() StepResult {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.over || !e.started {
		return StepResult{Snapshot: e.snapshot()}
	}

	e.current = e.pending
	newHead := e.snake.GetHead().Add(e.current.Delta())

	if collision := e.collisionMgr.Check(newHead, e.snake); collision != types.NoCollision {
		e.endGame(collision)
		return StepResult{Snapshot: e.snapshot(), Collision: collision}
	}

	e.snake.Move(newHead)
	result := StepResult{Moved: true}

	if e.hasFood && e.collisionMgr.IsFoodCollision(newHead, e.food) {
		result.Ate = true
		if e.stateMgr.RecordFruit() {
			result.LeveledUp = true
			e.scheduler.Schedule(e.stateMgr.GetSpeed())
			e.log.Debug("level up",
				"session", e.sessionID.String(),
				"level", e.stateMgr.GetLevel(),
				"speed", e.stateMgr.GetSpeed(),
			)
		}
		e.placeFood()
	} else {
		e.snake.RemoveTail()
	}

	result.Snapshot = e.snapshot()
	return result
}

func (e *Engine) placeFood() {
	food, ok := e.foodMgr.GenerateFood(e.snake)
	if !ok {
		// The snake fills the board; nothing is left to eat or move into.
		e.food, e.hasFood = types.Food{}, false
		e.endGame(types.NoCollision)
		return
	}
	e.food, e.hasFood = food, true
}

func (e *Engine) endGame(collision types.CollisionType) {
	e.over = true
	e.scheduler.Stop()
	e.log.Info("game over",
		"session", e.sessionID.String(),
		"score", e.stateMgr.GetScore(),
		"level", e.stateMgr.GetLevel(),
		"collision", collision.String(),
	)
}

// Snapshot returns a copy of the current state
func (e *Engine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.snapshot()
}

// State reports Running or Over; an engine that was never initialised is Over
func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.over || !e.started {
		return Over
	}
	return Running
}

func (e *Engine) snapshot() Snapshot {
	s := Snapshot{
		Grid:          e.grid,
		Food:          e.food,
		HasFood:       e.hasFood,
		Direction:     e.current,
		Score:         e.stateMgr.GetScore(),
		Level:         e.stateMgr.GetLevel(),
		FruitsInLevel: e.stateMgr.GetFruitsInLevel(),
		Speed:         e.stateMgr.GetSpeed(),
		Over:          e.over || !e.started,
	}
	if e.started {
		s.SessionID = e.sessionID.String()
		s.Snake = e.snake.Positions()
	}
	return s
}
