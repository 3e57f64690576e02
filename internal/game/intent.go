package game

import "github.com/mikenye/gridsnake/internal/domain"

// Intent is a discrete player command reported by an input adapter.
type Intent uint8

const (
	IntentNone Intent = iota
	IntentUp
	IntentDown
	IntentLeft
	IntentRight
	IntentReset
)

// Direction maps a directional intent to a snake direction.
func (i Intent) Direction() (domain.Direction, bool) {
	switch i {
	case IntentUp:
		return domain.DirectionUp, true
	case IntentDown:
		return domain.DirectionDown, true
	case IntentLeft:
		return domain.DirectionLeft, true
	case IntentRight:
		return domain.DirectionRight, true
	}
	return 0, false
}
