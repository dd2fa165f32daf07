package ebiten

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"glueboy/pkg/engine/world"
	"glueboy/pkg/game/i18n"
	"glueboy/pkg/game/renderer"
	"glueboy/pkg/game/state"
)

// Draw renders the latest snapshot (Ebiten interface)
func (e *EbitenRenderer) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	if !e.hasSnapshot {
		return
	}
	snap := e.snapshot

	e.drawGrid(screen, snap)
	e.drawCharacter(screen, snap)
	e.drawHUD(screen, snap)
}

// drawGrid fills every tile and outlines it
func (e *EbitenRenderer) drawGrid(screen *ebiten.Image, snap state.Snapshot) {
	size := float32(e.tileSize)
	snap.ForEachCell(func(c world.Coord, _ world.BlockType) {
		x := float32(c.Col) * size
		y := float32(c.Row) * size

		vector.DrawFilledRect(screen, x, y, size, size, renderer.TileColor(snap, c), false)
		if a := e.flashes.Alpha(c); a > 0 {
			vector.DrawFilledRect(screen, x, y, size, size, color.NRGBA{255, 255, 255, uint8(a * 160)}, false)
		}
		vector.StrokeRect(screen, x, y, size, size, gridLineWidth, renderer.ColorGridLine, false)
	})
}

// drawCharacter draws glue boy at the interpolated position
func (e *EbitenRenderer) drawCharacter(screen *ebiten.Image, snap state.Snapshot) {
	size := float32(e.tileSize)
	x := float32(snap.Visual.Col) * size
	y := float32(snap.Visual.Row) * size
	vector.DrawFilledRect(screen, x, y, size, size, renderer.ColorVisual, false)
}

// drawHUD prints the tool and recent messages in the bottom-left corner
func (e *EbitenRenderer) drawHUD(screen *ebiten.Image, snap state.Snapshot) {
	face := e.getFontFace()
	if face.Source == nil {
		return
	}

	lines := append([]string{i18n.Get("HUD_TOOL", i18n.BlockName(snap.Tool))}, snap.Messages...)
	lineHeight := face.Size * 1.3
	y := float64(e.surface) - hudMargin - lineHeight*float64(len(lines))

	for _, line := range lines {
		e.drawText(screen, line, face, hudMargin+1, y+1, renderer.ColorHUDShadow)
		e.drawText(screen, line, face, hudMargin, y, renderer.ColorHUD)
		y += lineHeight
	}
}

func (e *EbitenRenderer) drawText(screen *ebiten.Image, s string, face *text.GoTextFace, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, face, op)
}
