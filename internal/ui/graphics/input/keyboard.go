package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/mikenye/gridsnake/internal/game"
)

type Binding struct {
	Key    ebiten.Key
	Intent game.Intent
}

// Bindings lists every key the window adapter listens to, two per direction.
var Bindings = []Binding{
	{ebiten.KeyW, game.IntentUp},
	{ebiten.KeyArrowUp, game.IntentUp},
	{ebiten.KeyS, game.IntentDown},
	{ebiten.KeyArrowDown, game.IntentDown},
	{ebiten.KeyA, game.IntentLeft},
	{ebiten.KeyArrowLeft, game.IntentLeft},
	{ebiten.KeyD, game.IntentRight},
	{ebiten.KeyArrowRight, game.IntentRight},
	{ebiten.KeyR, game.IntentReset},
}

type KeyboardHandler struct {
	buf []game.Intent
}

func NewKeyboardHandler() *KeyboardHandler {
	return &KeyboardHandler{}
}

// Update returns the intents whose keys went down this tick, in binding
// order. The slice is reused on the next call.
func (kh *KeyboardHandler) Update() []game.Intent {
	kh.buf = kh.buf[:0]
	for _, b := range Bindings {
		if inpututil.IsKeyJustPressed(b.Key) {
			kh.buf = append(kh.buf, b.Intent)
		}
	}
	return kh.buf
}
