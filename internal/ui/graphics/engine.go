package graphics

import (
	"context"
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/mikenye/gridsnake/internal/game"
	"github.com/mikenye/gridsnake/internal/ui/graphics/components"
	"github.com/mikenye/gridsnake/internal/ui/graphics/input"
	"github.com/mikenye/gridsnake/internal/ui/types"
)

// Engine adapts a game.Session to ebiten's fixed-rate Update/Draw loop.
type Engine struct {
	ctx     context.Context
	session *game.Session
	scale   int

	keyboard *input.KeyboardHandler
	board    *components.BoardRenderer
	header   *components.Header

	// last snapshot produced by Update, drawn by Draw
	snap game.Snapshot
}

func NewEngine(ctx context.Context, session *game.Session, scale int) *Engine {
	if scale < 1 {
		scale = 1
	}

	grid := session.Grid()
	return &Engine{
		ctx:      ctx,
		session:  session,
		scale:    scale,
		keyboard: input.NewKeyboardHandler(),
		board:    components.NewBoardRenderer(grid),
		header:   components.NewHeader(grid, basicfont.Face7x13),
		snap:     session.Controller().Game().Snapshot(),
	}
}

// Run blocks until the window is closed or ctx is cancelled.
func (e *Engine) Run() error {
	w, h := e.ScreenSize()
	ebiten.SetWindowSize(w*e.scale, h*e.scale)
	ebiten.SetWindowTitle("Snake " + e.session.ID[:8])
	ebiten.SetTPS(e.session.Config().TickRate)

	err := ebiten.RunGame(e)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

// update function, ebiten calls this every tick (TickRate times per second)
func (e *Engine) Update() error {
	if e.ctx.Err() != nil {
		return ebiten.Termination
	}
	e.snap = e.session.Frame(e.keyboard.Update())
	return nil
}

// draw function, ebiten calls this every frame to render the screen
func (e *Engine) Draw(screen *ebiten.Image) {
	scene := types.SceneFor(e.session.Config().Palette, e.snap)
	e.board.Draw(screen, e.snap, scene)
	e.header.Draw(screen, e.snap, scene)
}

// layout function, called by ebiten to size window & content
func (e *Engine) Layout(outsideWidth, outsideHeight int) (int, int) {
	return e.ScreenSize()
}

// ScreenSize is the board size in pixels, header included.
func (e *Engine) ScreenSize() (w, h int) {
	grid := e.session.Grid()
	return grid.PixelWidth(), grid.PixelHeight()
}
