package components

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"github.com/mikenye/gridsnake/internal/domain"
	"github.com/mikenye/gridsnake/internal/game"
	"github.com/mikenye/gridsnake/internal/ui/types"
)

// basicfont glyphs are tiny next to a 30px tile, so text is scaled up
const (
	headerTextScale = 4
	bannerTextScale = 3
)

// Header draws the score strip across the top and, once the game is over,
// the reset banner in the middle of the board.
type Header struct {
	grid domain.Grid
	face font.Face
}

// NewHeader draws both the score and the banner with face.
func NewHeader(grid domain.Grid, face font.Face) *Header {
	return &Header{grid: grid, face: face}
}

func (h *Header) Draw(screen *ebiten.Image, snap game.Snapshot, scene types.Scene) {
	w := float32(h.grid.PixelWidth())
	hh := h.grid.HeaderHeight()
	vector.DrawFilledRect(screen, 0, 0, w, float32(hh), scene.HeaderBg, false)

	// score centred in the strip
	h.drawCentred(screen, types.ScoreLine(snap.Score), h.face, headerTextScale,
		h.grid.PixelWidth()/2, hh/2, true, scene.HeaderFg)

	// banner hangs from the board centre
	if snap.GameOver() {
		h.drawCentred(screen, types.DeathBanner, h.face, bannerTextScale,
			h.grid.PixelWidth()/2, h.grid.PixelHeight()/2, false, scene.HeaderFg)
	}
}

// drawCentred draws s horizontally centred on cx. With middle set it is also
// vertically centred on cy, otherwise its top edge sits on cy.
func (h *Header) drawCentred(screen *ebiten.Image, s string, face font.Face, scale, cx, cy int, middle bool, clr color.Color) {
	b := text.BoundString(face, s)
	tw := b.Dx() * scale
	th := b.Dy() * scale

	x := cx - tw/2
	y := cy
	if middle {
		y -= th / 2
	}

	op := &ebiten.DrawImageOptions{}
	// text.DrawWithOptions places the dot at the origin; shift by the ascent
	// so the bounding box starts at (0,0) before scaling
	op.GeoM.Translate(float64(-b.Min.X), float64(-b.Min.Y))
	op.GeoM.Scale(float64(scale), float64(scale))
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(clr)
	text.DrawWithOptions(screen, s, face, op)
}
