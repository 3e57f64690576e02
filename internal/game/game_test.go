package game

import (
	"io"
	"log"
	"math/rand"
	"strings"
	"testing"

	"github.com/mikenye/gridsnake/internal/domain"
)

func testGrid() domain.Grid {
	return domain.NewGrid(domain.DefaultGameConfig())
}

func quietLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

// dumpBoard is a test helper to visualize a snapshot.
func dumpBoard(s Snapshot) string {
	g := s.Grid
	rows := make([][]byte, g.Rows)
	for y := range rows {
		rows[y] = make([]byte, g.Cols)
		for x := range rows[y] {
			if y < g.HeaderRows {
				rows[y][x] = '='
			} else {
				rows[y][x] = '.'
			}
		}
	}
	put := func(p domain.Position, c byte) {
		if p.Row >= 0 && p.Row < g.Rows && p.Col >= 0 && p.Col < g.Cols {
			rows[p.Row][p.Col] = c
		}
	}
	put(s.Food, '*')
	for i := len(s.Body) - 1; i >= 0; i-- {
		if i == 0 {
			put(s.Body[i], 'H')
		} else {
			put(s.Body[i], 's')
		}
	}
	var sb strings.Builder
	for _, r := range rows {
		sb.Write(r)
		sb.WriteByte('\n')
	}
	return sb.String()
}

func newTestGame(seed int64) *Game {
	return NewGame(testGrid(), rand.New(rand.NewSource(seed)), 1)
}

func TestNewGameFoodOffSnake(t *testing.T) {
	for seed := int64(0); seed < 50; seed++ {
		g := newTestGame(seed)
		if g.Snake().Occupies(g.Food().Pos) {
			t.Fatalf("seed %d: food spawned on the snake\n%s", seed, dumpBoard(g.Snapshot()))
		}
		if g.State() != StatePlaying || g.Score() != 0 {
			t.Fatalf("seed %d: state=%v score=%d, want playing/0", seed, g.State(), g.Score())
		}
	}
}

func TestWallCollisionEndsGame(t *testing.T) {
	tests := []struct {
		name  string
		turn  domain.Direction
		steps int
	}{
		// head starts at (10,11), header occupies rows 0-3
		{name: "into header", turn: domain.DirectionUp, steps: 8},
		{name: "left wall", turn: domain.DirectionLeft, steps: 11},
		{name: "right wall", turn: domain.DirectionRight, steps: 10},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newTestGame(1)
			g.food.Pos = domain.Position{Col: 0, Row: 19}
			g.Turn(tc.turn)
			for i := 0; i < tc.steps-1; i++ {
				g.Advance()
				if died, _ := g.Update(); died {
					t.Fatalf("died early after %d steps\n%s", i+1, dumpBoard(g.Snapshot()))
				}
			}
			g.Advance()
			died, _ := g.Update()
			if !died || g.State() != StateGameOver || g.Snake().Alive() {
				t.Fatalf("expected game over at %v\n%s", g.Snake().Head(), dumpBoard(g.Snapshot()))
			}
		})
	}
}

func TestSelfCollisionEndsGame(t *testing.T) {
	g := newTestGame(1)
	g.food.Pos = domain.Position{Col: 0, Row: 19}
	for i := 0; i < 3; i++ {
		g.Snake().MarkGrowth()
		g.Advance()
	}
	for _, d := range []domain.Direction{domain.DirectionRight, domain.DirectionDown, domain.DirectionLeft} {
		if died, _ := g.Update(); died {
			t.Fatalf("died too early\n%s", dumpBoard(g.Snapshot()))
		}
		g.Turn(d)
		g.Advance()
	}
	if died, _ := g.Update(); !died {
		t.Fatalf("expected self collision\n%s", dumpBoard(g.Snapshot()))
	}
	if g.State() != StateGameOver {
		t.Fatalf("state=%v want game over", g.State())
	}
}

func TestEatingFood(t *testing.T) {
	g := newTestGame(5)
	head := g.Snake().Head()
	g.food.Pos = head

	died, ate := g.Update()
	if died || !ate {
		t.Fatalf("Update() = (%v,%v), want (false,true)", died, ate)
	}
	if g.Score() != 1 {
		t.Fatalf("score=%d want=1", g.Score())
	}
	if !g.Snake().GrowthPending() {
		t.Fatal("growth should be pending after eating")
	}
	if g.Snake().Occupies(g.Food().Pos) {
		t.Fatalf("new food on the body\n%s", dumpBoard(g.Snapshot()))
	}

	before := g.Snake().Len()
	g.Advance()
	if g.Snake().Len() != before+1 {
		t.Fatalf("len=%d want=%d", g.Snake().Len(), before+1)
	}
}

func TestNoUpdatesAfterGameOver(t *testing.T) {
	g := newTestGame(2)
	g.Snake().Kill()
	g.state = StateGameOver
	g.food.Pos = g.Snake().Head()

	if died, ate := g.Update(); died || ate {
		t.Fatalf("Update() after game over = (%v,%v), want (false,false)", died, ate)
	}
	if g.Score() != 0 {
		t.Fatalf("score changed after game over: %d", g.Score())
	}
	if g.Turn(domain.DirectionLeft) {
		t.Fatal("turn accepted after game over")
	}
}

func TestFirstAdvanceScenario(t *testing.T) {
	g := newTestGame(9)
	g.food.Pos = domain.Position{Col: 0, Row: 19}
	g.Advance()
	g.Update()

	want := []domain.Position{{Col: 10, Row: 10}, {Col: 10, Row: 11}, {Col: 10, Row: 12}}
	got := g.Snapshot().Body
	if len(got) != len(want) {
		t.Fatalf("body len=%d want=%d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("body[%d]=%v want=%v\n%s", i, got[i], want[i], dumpBoard(g.Snapshot()))
		}
	}
}

// a single column of seven tiles; the spawn body fills rows 4-6
func columnGrid() domain.Grid {
	return domain.Grid{Cols: 1, Rows: 7, HeaderRows: 0, TileSize: 30}
}

func TestFoodAvoidsNextHeadTile(t *testing.T) {
	for seed := int64(0); seed < 50; seed++ {
		g := NewGame(columnGrid(), rand.New(rand.NewSource(seed)), 1)
		if g.Food().Pos.Row > 2 {
			t.Fatalf("seed %d: initial food at %v\n%s", seed, g.Food().Pos, dumpBoard(g.Snapshot()))
		}

		g.food.Pos = g.Snake().Head()
		if _, ate := g.Update(); !ate {
			t.Fatalf("seed %d: food not eaten", seed)
		}
		// head (0,4) heading up: (0,3) is the next head once growth lands
		if g.Food().Pos.Row > 2 {
			t.Fatalf("seed %d: food at %v is on the post-growth body\n%s", seed, g.Food().Pos, dumpBoard(g.Snapshot()))
		}
		if g.Saturated() {
			t.Fatalf("seed %d: saturated with free tiles left", seed)
		}
	}
}

func TestSaturation(t *testing.T) {
	tests := []struct {
		name    string
		growths int
		want    bool
	}{
		// length 5, head (0,2): rows 0 and 1 stay free, row 1 is next
		{name: "one free tile left", growths: 2, want: false},
		// length 6, head (0,1): only row 0 is free and it is next
		{name: "board full", growths: 3, want: true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := NewGame(columnGrid(), rand.New(rand.NewSource(1)), 1)
			for i := 0; i < tc.growths; i++ {
				g.Snake().MarkGrowth()
				g.Advance()
			}
			g.food.Pos = g.Snake().Head()
			if _, ate := g.Update(); !ate {
				t.Fatalf("food not eaten\n%s", dumpBoard(g.Snapshot()))
			}
			if g.Saturated() != tc.want {
				t.Fatalf("Saturated() = %v, want %v\n%s", g.Saturated(), tc.want, dumpBoard(g.Snapshot()))
			}
			if !tc.want && g.Food().Pos != (domain.Position{Col: 0, Row: 0}) {
				t.Fatalf("food at %v, want the only free tile (0,0)", g.Food().Pos)
			}
		})
	}
}
