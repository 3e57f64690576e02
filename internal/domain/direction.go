package domain

type Direction int

const (
	DirectionUp Direction = iota + 1
	DirectionDown
	DirectionLeft
	DirectionRight
)

func (d Direction) Delta() Position {
	switch d {
	case DirectionUp:
		return Position{Col: 0, Row: -1}
	case DirectionDown:
		return Position{Col: 0, Row: 1}
	case DirectionLeft:
		return Position{Col: -1, Row: 0}
	case DirectionRight:
		return Position{Col: 1, Row: 0}
	}
	return Position{}
}

func (d Direction) Vertical() bool {
	return d == DirectionUp || d == DirectionDown
}

// Perpendicular reports whether other turns off d's axis of motion.
func (d Direction) Perpendicular(other Direction) bool {
	if d.Delta() == (Position{}) || other.Delta() == (Position{}) {
		return false
	}
	return d.Vertical() != other.Vertical()
}

func (d Direction) String() string {
	switch d {
	case DirectionUp:
		return "up"
	case DirectionDown:
		return "down"
	case DirectionLeft:
		return "left"
	case DirectionRight:
		return "right"
	}
	return "none"
}
