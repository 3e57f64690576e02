package domain

// Position is a tile coordinate. Rows are counted from the top of the board,
// header strip included.
type Position struct {
	Col int
	Row int
}

func (p Position) Add(other Position) Position {
	return Position{
		Col: p.Col + other.Col,
		Row: p.Row + other.Row,
	}
}
