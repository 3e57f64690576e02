package components

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/mikenye/gridsnake/internal/domain"
	"github.com/mikenye/gridsnake/internal/game"
	"github.com/mikenye/gridsnake/internal/ui/types"
)

// BoardRenderer paints the playfield: background, food and snake.
type BoardRenderer struct {
	grid domain.Grid
}

func NewBoardRenderer(grid domain.Grid) *BoardRenderer {
	return &BoardRenderer{grid: grid}
}

func (br *BoardRenderer) Draw(screen *ebiten.Image, snap game.Snapshot, scene types.Scene) {
	screen.Fill(scene.Background)

	br.drawTile(screen, snap.Food, scene.Food)

	for i, seg := range snap.Body {
		br.drawTile(screen, seg, scene.SegmentColor(i, len(snap.Body)))
	}
}

func (br *BoardRenderer) drawTile(screen *ebiten.Image, p domain.Position, c color.Color) {
	x, y := br.grid.Pixel(p)
	size := float32(br.grid.TileSize)
	vector.DrawFilledRect(screen, float32(x), float32(y), size, size, c, false)
}
