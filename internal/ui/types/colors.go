package types

import (
	"fmt"
	"image/color"

	"github.com/mikenye/gridsnake/internal/domain"
	"github.com/mikenye/gridsnake/internal/game"
)

// Lerp returns the colour of segment index in a body of total segments,
// stepping linearly from head toward tail. Index 0 is exactly head; the last
// segment stops one step short of tail.
func Lerp(head, tail color.RGBA, index, total int) color.RGBA {
	if total <= 0 {
		return head
	}
	t := float64(index) / float64(total)
	return color.RGBA{
		R: lerpComponent(head.R, tail.R, t),
		G: lerpComponent(head.G, tail.G, t),
		B: lerpComponent(head.B, tail.B, t),
		A: lerpComponent(head.A, tail.A, t),
	}
}

func lerpComponent(a, b uint8, t float64) uint8 {
	v := float64(a) + (float64(b)-float64(a))*t
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// Scene is the set of colours for one frame, which differ once the game is
// over.
type Scene struct {
	Background color.RGBA
	HeaderBg   color.RGBA
	HeaderFg   color.RGBA
	Head       color.RGBA
	Tail       color.RGBA
	Food       color.RGBA
}

func SceneFor(p domain.Palette, snap game.Snapshot) Scene {
	sc := Scene{
		Background: p.Background,
		HeaderBg:   p.HeaderBg,
		HeaderFg:   p.HeaderFg,
		Head:       p.SnakeHead,
		Tail:       p.SnakeTail,
		Food:       p.Food,
	}
	if snap.GameOver() {
		sc.Background = p.HeaderBg
		sc.Head = p.DeadHead
		sc.Tail = p.DeadTail
	}
	return sc
}

// SegmentColor is the colour of body segment i in snap.
func (sc Scene) SegmentColor(i, total int) color.RGBA {
	return Lerp(sc.Head, sc.Tail, i, total)
}

func Hex(c color.RGBA) string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}
