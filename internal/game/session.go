package game

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/mikenye/gridsnake/internal/domain"
)

// Session is the process-wide game object. It is built by the entry point,
// handed to a render/input adapter, and driven one frame at a time.
type Session struct {
	ID string

	cfg  *domain.GameConfig
	grid domain.Grid
	ctrl *Controller

	// movement trigger, slower than the render trigger
	move *Ticker
}

// NewSession validates cfg before constructing any game state.
func NewSession(cfg *domain.GameConfig, seed int64, logger *log.Logger) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.Default()
	}

	id := uuid.New().String()
	sessionLogger := log.New(logger.Writer(), fmt.Sprintf("%ssession %s: ", logger.Prefix(), id[:8]), logger.Flags())

	cfg = cfg.Copy()
	grid := domain.NewGrid(cfg)
	return &Session{
		ID:   id,
		cfg:  cfg,
		grid: grid,
		ctrl: NewController(grid, rand.New(rand.NewSource(seed)), sessionLogger),
		move: NewTicker(cfg.MoveInterval),
	}, nil
}

func (s *Session) Config() *domain.GameConfig {
	return s.cfg
}

func (s *Session) Grid() domain.Grid {
	return s.grid
}

func (s *Session) Controller() *Controller {
	return s.ctrl
}

// Frame is the single dispatch point of the loop. One call covers one render
// tick of the configured frame interval.
func (s *Session) Frame(intents []Intent) Snapshot {
	return s.Step(s.cfg.FrameInterval(), intents)
}

// Step is Frame with a measured elapsed time: pending movement first, then
// the intents in arrival order, then the collision/food update whose snapshot
// is returned. Elapsed is capped at one move interval so a stalled caller
// never moves the snake more than one tile between collision checks.
func (s *Session) Step(elapsed time.Duration, intents []Intent) Snapshot {
	if elapsed < 0 {
		elapsed = 0
	}
	if elapsed > s.cfg.MoveInterval {
		elapsed = s.cfg.MoveInterval
	}
	for n := s.move.Advance(elapsed); n > 0; n-- {
		s.ctrl.MoveTick()
	}
	for _, i := range intents {
		s.ctrl.Handle(i)
	}
	return s.ctrl.RenderTick()
}
