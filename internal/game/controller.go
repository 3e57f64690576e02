package game

import (
	"log"
	"math/rand"

	"github.com/mikenye/gridsnake/internal/domain"
)

// Controller owns the running Game and is the only thing that mutates it.
type Controller struct {
	grid   domain.Grid
	rng    *rand.Rand
	logger *log.Logger

	game  *Game
	games int
}

func NewController(grid domain.Grid, rng *rand.Rand, logger *log.Logger) *Controller {
	if logger == nil {
		logger = log.Default()
	}
	c := &Controller{
		grid:   grid,
		rng:    rng,
		logger: logger,
	}
	c.newGame()
	return c
}

func (c *Controller) Game() *Game {
	return c.game
}

// Handle applies one input intent: directions turn the snake while playing,
// reset starts a new game once the current one is over.
func (c *Controller) Handle(i Intent) {
	switch i {
	case IntentReset:
		if c.game.State() == StateGameOver {
			c.Reset()
		}
	default:
		if d, ok := i.Direction(); ok {
			c.game.Turn(d)
		}
	}
}

// MoveTick is the movement trigger.
func (c *Controller) MoveTick() {
	c.game.Advance()
}

// RenderTick is the render trigger: collision check, food check, then the
// snapshot for the adapter to draw.
func (c *Controller) RenderTick() Snapshot {
	died, ate := c.game.Update()
	switch {
	case died:
		c.logger.Printf("game %d over: score %d, length %d, head %v",
			c.game.Num(), c.game.Score(), c.game.Snake().Len(), c.game.Snake().Head())
	case ate:
		if c.game.Saturated() {
			c.logger.Printf("game %d: board saturated, food may overlap the snake", c.game.Num())
		}
	}
	return c.game.Snapshot()
}

// Reset discards the current game and starts a new one.
func (c *Controller) Reset() {
	c.logger.Printf("game %d reset after score %d", c.game.Num(), c.game.Score())
	c.newGame()
}

func (c *Controller) newGame() {
	c.games++
	c.game = NewGame(c.grid, c.rng, c.games)
	c.logger.Printf("game %d started: %dx%d playable tiles, max score %d",
		c.games, c.grid.Cols, c.grid.PlayableRows(), c.grid.MaxScore())
}
