package domain

const SpawnLength = 3

type Snake struct {
	body          []Position
	direction     Direction
	alive         bool
	pendingGrowth bool
}

// SpawnBody returns the initial body: a vertical column just below the board
// centre, head first, tail at the bottom.
func SpawnBody(g Grid) []Position {
	head := Position{Col: g.Cols / 2, Row: g.Rows/2 + 1}
	body := make([]Position, 0, SpawnLength)
	for i := 0; i < SpawnLength; i++ {
		body = append(body, Position{Col: head.Col, Row: head.Row + i})
	}
	return body
}

func NewSnake(g Grid) *Snake {
	return &Snake{
		body:      SpawnBody(g),
		direction: DirectionUp,
		alive:     true,
	}
}

func (s *Snake) Head() Position {
	return s.body[0]
}

// Body returns a copy of the segments, head first.
func (s *Snake) Body() []Position {
	out := make([]Position, len(s.body))
	copy(out, s.body)
	return out
}

func (s *Snake) Len() int {
	return len(s.body)
}

func (s *Snake) Direction() Direction {
	return s.direction
}

func (s *Snake) Alive() bool {
	return s.alive
}

func (s *Snake) GrowthPending() bool {
	return s.pendingGrowth
}

// Turn only accepts directions perpendicular to the current one.
func (s *Snake) Turn(d Direction) bool {
	if !s.alive || !s.direction.Perpendicular(d) {
		return false
	}
	s.direction = d
	return true
}

func (s *Snake) Advance() {
	if !s.alive {
		return
	}

	newHead := s.body[0].Add(s.direction.Delta())

	var kept []Position
	if s.pendingGrowth {
		kept = s.body
		s.pendingGrowth = false
	} else {
		kept = s.body[:len(s.body)-1]
	}

	body := make([]Position, 0, len(kept)+1)
	body = append(body, newHead)
	body = append(body, kept...)
	s.body = body
}

func (s *Snake) MarkGrowth() {
	s.pendingGrowth = true
}

func (s *Snake) Kill() {
	s.alive = false
}

func (s *Snake) Occupies(p Position) bool {
	for _, seg := range s.body {
		if seg == p {
			return true
		}
	}
	return false
}

// HitsItself reports whether the head shares a tile with any other segment.
func (s *Snake) HitsItself() bool {
	head := s.body[0]
	for _, seg := range s.body[1:] {
		if seg == head {
			return true
		}
	}
	return false
}
