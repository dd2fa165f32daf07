// Package ebiten provides an Ebiten-based 2D graphical renderer for Glue Boy.
package ebiten

import (
	"context"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"glueboy/pkg/game/renderer"
	"glueboy/pkg/game/state"
)

// EbitenRenderer is the Ebiten-based graphical renderer
type EbitenRenderer struct {
	// Square drawing surface in pixels
	surface  int
	tileSize float64

	// Font source for HUD text
	fontSource *text.GoTextFaceSource

	// Cached font face (recreated when tile size changes)
	cachedFontSize float64
	cachedFace     *text.GoTextFace

	// Game driven by Update
	game renderer.Game
	ctx  context.Context

	// Latest snapshot, drawn by Draw. Update and Draw share one goroutine.
	snapshot    state.Snapshot
	hasSnapshot bool

	// Paint flashes
	flashes *renderer.FlashTracker

	// Frame timing
	start     time.Time
	lastFrame float64

	// Last reported cursor position, to queue moves only on change
	cursorX, cursorY int
	cursorKnown      bool

	// Scratch buffers for inpututil
	keyBuf []ebiten.Key

	// Flag to track if we've logged window opening
	windowOpenedLogged bool
}

// New creates a new Ebiten renderer for a gridSize x gridSize board drawn on
// a square surface of the given pixel size
func New(surface, gridSize int) *EbitenRenderer {
	return &EbitenRenderer{
		surface:  surface,
		tileSize: float64(surface) / float64(gridSize),
		flashes:  renderer.NewFlashTracker(renderer.DefaultFlashDuration),
	}
}
