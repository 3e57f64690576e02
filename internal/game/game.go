package game

import (
	"math/rand"

	"github.com/mikenye/gridsnake/internal/domain"
)

// Game is one life of the snake: created on session start and replaced
// wholesale on every reset.
type Game struct {
	grid domain.Grid
	rng  *rand.Rand

	// entities
	snake *domain.Snake
	food  *domain.Food

	// score stuff
	score int
	state State

	// set once food placement can no longer avoid the snake
	saturated bool

	// sequence number within the session, starting at 1
	num int
}

// create a new game with a freshly spawned snake and food placed off its body
func NewGame(grid domain.Grid, rng *rand.Rand, num int) *Game {
	g := &Game{
		grid:  grid,
		rng:   rng,
		snake: domain.NewSnake(grid),
		food:  domain.NewFood(grid, rng),
		state: StatePlaying,
		num:   num,
	}
	g.placeFood()
	return g
}

func (g *Game) Snake() *domain.Snake {
	return g.snake
}

func (g *Game) Food() *domain.Food {
	return g.food
}

func (g *Game) Score() int {
	return g.score
}

func (g *Game) State() State {
	return g.state
}

func (g *Game) Num() int {
	return g.num
}

// Saturated reports whether the last food placement had no free tile to
// choose from and may overlap the snake.
func (g *Game) Saturated() bool {
	return g.saturated
}

// move the snake one tile, called by the movement trigger
func (g *Game) Advance() {
	g.snake.Advance()
}

// Turn is ignored unless the game is running.
func (g *Game) Turn(d domain.Direction) bool {
	if g.state != StatePlaying {
		return false
	}
	return g.snake.Turn(d)
}

// Update runs the collision check followed by the food check. It reports
// whether the snake died or ate during this tick.
func (g *Game) Update() (died, ate bool) {
	if g.state != StatePlaying {
		return false, false
	}
	if g.checkCollision() {
		return true, false
	}
	return false, g.checkFood()
}

// check the head against the walls and the rest of the body
func (g *Game) checkCollision() bool {
	if !g.grid.InPlay(g.snake.Head()) || g.snake.HitsItself() {
		g.snake.Kill()
		g.state = StateGameOver
		return true
	}
	return false
}

// check to see if the head of the snake is on the food tile
func (g *Game) checkFood() bool {
	if g.food.Pos != g.snake.Head() {
		return false
	}
	g.snake.MarkGrowth()
	g.score++
	g.placeFood()
	return true
}

// placeFood keeps the food off the body and off the tile the head moves into
// next, since that tile joins the body on the next advance.
func (g *Game) placeFood() {
	excluded := g.snake.Body()
	next := g.snake.Head().Add(g.snake.Direction().Delta())
	if g.grid.InPlay(next) && !g.snake.Occupies(next) {
		excluded = append(excluded, next)
	}
	g.saturated = len(excluded) >= g.grid.MaxScore()
	g.food.Randomize(g.grid, g.rng, excluded, g.grid.MaxScore())
}

func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Grid:      g.grid,
		Body:      g.snake.Body(),
		Direction: g.snake.Direction(),
		Food:      g.food.Pos,
		Score:     g.score,
		State:     g.state,
		GameNum:   g.num,
	}
}
