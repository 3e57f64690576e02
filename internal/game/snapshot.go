package game

import "github.com/mikenye/gridsnake/internal/domain"

// Snapshot is the read-only view handed to the render adapter each frame.
type Snapshot struct {
	Grid      domain.Grid
	Body      []domain.Position
	Direction domain.Direction
	Food      domain.Position
	Score     int
	State     State
	GameNum   int
}

func (s Snapshot) GameOver() bool {
	return s.State == StateGameOver
}
