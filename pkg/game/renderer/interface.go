package renderer

import (
	"context"
	"image/color"

	"glueboy/pkg/engine/input"
	"glueboy/pkg/engine/world"
	"glueboy/pkg/game/state"
)

// Game is what a renderer drives. Tick runs one frame at the given timestamp
// in seconds and reports whether the game should keep running.
type Game interface {
	Tick(timestamp float64) (state.Snapshot, bool)
	Push(ev input.Event)
}

// Renderer defines the interface for game rendering backends
// Implementations can include TUI (terminal) and Ebiten.
type Renderer interface {
	// Init prepares the backend (window, terminal mode, fonts)
	Init() error

	// RenderFrame draws a snapshot
	RenderFrame(snap state.Snapshot)

	// Run owns the frame loop until ctx is cancelled or the game stops
	Run(ctx context.Context, g Game) error
}

// Palette
var (
	ColorLogical   = color.RGBA{0, 0, 255, 255}
	ColorVisual    = color.RGBA{255, 255, 0, 255}
	ColorGridLine  = color.RGBA{255, 255, 255, 255}
	ColorUnknown   = color.RGBA{255, 0, 0, 255}
	ColorHUD       = color.RGBA{200, 210, 245, 255}
	ColorHUDShadow = color.RGBA{0, 0, 0, 180}
)

var blockColors = map[world.BlockType]color.RGBA{
	world.Empty: {0, 0, 0, 255},
	world.Box:   {127, 63, 0, 255},
}

// BlockColor returns the fill colour of a block type, or ColorUnknown
func BlockColor(b world.BlockType) color.RGBA {
	if c, ok := blockColors[b]; ok {
		return c
	}
	return ColorUnknown
}

// TileColor returns the fill of cell c. The logical cell wins over the hovered
// cell, which previews the selected tool.
func TileColor(snap state.Snapshot, c world.Coord) color.RGBA {
	switch c {
	case snap.Logical:
		return ColorLogical
	case snap.Hovered:
		return BlockColor(snap.Tool)
	default:
		return BlockColor(snap.Block(c))
	}
}

// Hex formats a colour as #rrggbb
func Hex(c color.RGBA) string {
	const digits = "0123456789abcdef"
	b := []byte{'#', 0, 0, 0, 0, 0, 0}
	for i, v := range []uint8{c.R, c.G, c.B} {
		b[1+2*i] = digits[v>>4]
		b[2+2*i] = digits[v&0x0f]
	}
	return string(b)
}
