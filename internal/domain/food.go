package domain

import "math/rand"

type Food struct {
	Pos Position
}

func NewFood(g Grid, rng *rand.Rand) *Food {
	return &Food{Pos: g.RandomTile(rng)}
}

// Randomize moves the food to a random playable tile, drawing again while the
// tile is in excluded and fewer than maxScore cells are occupied. Once the
// board is saturated an overlapping tile is accepted so the loop terminates.
func (f *Food) Randomize(g Grid, rng *rand.Rand, excluded []Position, maxScore int) {
	taken := make(map[Position]bool, len(excluded))
	for _, p := range excluded {
		taken[p] = true
	}

	for {
		f.Pos = g.RandomTile(rng)
		if !taken[f.Pos] || len(excluded) >= maxScore {
			return
		}
	}
}
