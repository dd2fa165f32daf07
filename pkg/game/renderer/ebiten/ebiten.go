package ebiten

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"glueboy/pkg/game/i18n"
	"glueboy/pkg/game/renderer"
	"glueboy/pkg/game/state"
)

// Init loads fonts and sizes the window
func (e *EbitenRenderer) Init() error {
	src, err := loadFontSource()
	if err != nil {
		return err
	}
	e.fontSource = src

	ebiten.SetWindowSize(e.surface, e.surface)
	ebiten.SetWindowTitle(i18n.Get("WINDOW_TITLE"))
	return nil
}

// RenderFrame stores the snapshot for the next Draw call. Call it from Update.
func (e *EbitenRenderer) RenderFrame(snap state.Snapshot) {
	e.flashes.Observe(snap)
	e.snapshot = snap
	e.hasSnapshot = true
}

// Run starts the Ebiten game loop. It returns when the window closes, the
// game quits or ctx is cancelled.
func (e *EbitenRenderer) Run(ctx context.Context, g renderer.Game) error {
	e.game = g
	e.ctx = ctx
	e.start = time.Now()

	err := ebiten.RunGame(e)
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("running ebiten game: %w", err)
	}
	return nil
}

// Layout returns the game's logical screen size (Ebiten interface)
func (e *EbitenRenderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return e.surface, e.surface
}
