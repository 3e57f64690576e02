package game

// the state of the game
type State uint8

const (
	// snake is moving, input turns it
	StatePlaying State = iota + 1

	// snake hit a wall or itself, waiting for reset
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "game over"
	}
	return "unknown"
}
