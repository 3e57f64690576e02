package domain

import "math/rand"

// Grid is the board measured in tiles. The first HeaderRows rows belong to
// the header strip and are never playable.
type Grid struct {
	Cols       int
	Rows       int
	HeaderRows int
	TileSize   int
}

func NewGrid(c *GameConfig) Grid {
	return Grid{
		Cols:       c.BoardWidth / c.TileSize,
		Rows:       c.BoardHeight / c.TileSize,
		HeaderRows: c.HeaderHeight / c.TileSize,
		TileSize:   c.TileSize,
	}
}

func (g Grid) InPlay(p Position) bool {
	return p.Col >= 0 && p.Col < g.Cols && p.Row >= g.HeaderRows && p.Row < g.Rows
}

func (g Grid) PlayableRows() int {
	return g.Rows - g.HeaderRows
}

// MaxScore is the saturation bound: the number of playable tiles.
func (g Grid) MaxScore() int {
	return g.Cols * g.PlayableRows()
}

// RandomTile draws a uniformly distributed playable tile.
func (g Grid) RandomTile(rng *rand.Rand) Position {
	return Position{
		Col: rng.Intn(g.Cols),
		Row: g.HeaderRows + rng.Intn(g.PlayableRows()),
	}
}

// Pixel returns the top-left pixel of the tile at p.
func (g Grid) Pixel(p Position) (x, y int) {
	return p.Col * g.TileSize, p.Row * g.TileSize
}

func (g Grid) PixelWidth() int {
	return g.Cols * g.TileSize
}

func (g Grid) PixelHeight() int {
	return g.Rows * g.TileSize
}

func (g Grid) HeaderHeight() int {
	return g.HeaderRows * g.TileSize
}
