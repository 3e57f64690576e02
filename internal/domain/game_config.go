package domain

import (
	"errors"
	"fmt"
	"image/color"
	"time"
)

var ErrInvalidConfig = errors.New("invalid game config")

// Palette holds every colour the adapters paint with.
type Palette struct {
	Background color.RGBA
	HeaderBg   color.RGBA
	HeaderFg   color.RGBA
	SnakeHead  color.RGBA
	SnakeTail  color.RGBA
	Food       color.RGBA
	DeadHead   color.RGBA
	DeadTail   color.RGBA
}

// GameConfig sizes are in pixels.
type GameConfig struct {
	BoardWidth   int
	BoardHeight  int
	TileSize     int
	HeaderHeight int
	TickRate     int
	MoveInterval time.Duration
	Palette      Palette
}

func DefaultGameConfig() *GameConfig {
	return &GameConfig{
		BoardWidth:   600,
		BoardHeight:  600,
		TileSize:     30,
		HeaderHeight: 120,
		TickRate:     60,
		MoveInterval: 110 * time.Millisecond,
		Palette: Palette{
			Background: color.RGBA{0xF6, 0xF4, 0xEB, 0xFF},
			HeaderBg:   color.RGBA{0x46, 0x82, 0xA9, 0xFF},
			HeaderFg:   color.RGBA{0xF6, 0xF4, 0xEB, 0xFF},
			SnakeHead:  color.RGBA{40, 112, 181, 255},
			SnakeTail:  color.RGBA{129, 186, 240, 255},
			Food:       color.RGBA{0x28, 0xB6, 0x4E, 0xFF},
			DeadHead:   color.RGBA{230, 44, 59, 255},
			DeadTail:   color.RGBA{237, 135, 143, 255},
		},
	}
}

// Validate rejects configurations for which the playable area or the
// saturation bound would be ill-defined.
func (c *GameConfig) Validate() error {
	if c.TileSize <= 0 {
		return fmt.Errorf("%w: tile size %d must be positive", ErrInvalidConfig, c.TileSize)
	}
	if c.BoardWidth <= 0 || c.BoardHeight <= 0 {
		return fmt.Errorf("%w: board %dx%d must be positive", ErrInvalidConfig, c.BoardWidth, c.BoardHeight)
	}
	if c.BoardWidth%c.TileSize != 0 || c.BoardHeight%c.TileSize != 0 {
		return fmt.Errorf("%w: tile size %d does not divide board %dx%d",
			ErrInvalidConfig, c.TileSize, c.BoardWidth, c.BoardHeight)
	}
	if c.HeaderHeight < 0 || c.HeaderHeight%c.TileSize != 0 {
		return fmt.Errorf("%w: header height %d is not a multiple of tile size %d",
			ErrInvalidConfig, c.HeaderHeight, c.TileSize)
	}
	if c.HeaderHeight >= c.BoardHeight {
		return fmt.Errorf("%w: header height %d leaves no playable rows in board height %d",
			ErrInvalidConfig, c.HeaderHeight, c.BoardHeight)
	}
	if c.TickRate <= 0 {
		return fmt.Errorf("%w: tick rate %d must be positive", ErrInvalidConfig, c.TickRate)
	}
	if c.MoveInterval <= 0 {
		return fmt.Errorf("%w: move interval %s must be positive", ErrInvalidConfig, c.MoveInterval)
	}
	// at most one move per frame, so every move is collision checked
	if c.MoveInterval < c.FrameInterval() {
		return fmt.Errorf("%w: move interval %s is shorter than the frame interval %s",
			ErrInvalidConfig, c.MoveInterval, c.FrameInterval())
	}

	grid := NewGrid(c)
	for _, p := range SpawnBody(grid) {
		if !grid.InPlay(p) {
			return fmt.Errorf("%w: spawn segment %v falls outside the playable area", ErrInvalidConfig, p)
		}
	}
	return nil
}

func (c *GameConfig) Copy() *GameConfig {
	cp := *c
	return &cp
}

// FrameInterval is the duration of one render tick.
func (c *GameConfig) FrameInterval() time.Duration {
	return time.Second / time.Duration(c.TickRate)
}
