package renderer

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"glueboy/pkg/engine/world"
	"glueboy/pkg/game/state"
)

// DefaultFlashDuration is how long a freshly painted cell glows, in seconds
const DefaultFlashDuration = 0.35

// FlashTracker notices painted cells between snapshots and fades a highlight
// over each one.
type FlashTracker struct {
	duration float32
	prev     [][]world.BlockType
	tweens   map[world.Coord]*gween.Tween
	alpha    map[world.Coord]float32
}

// NewFlashTracker creates a tracker whose flashes last duration seconds
func NewFlashTracker(duration float32) *FlashTracker {
	if duration <= 0 {
		duration = DefaultFlashDuration
	}
	return &FlashTracker{
		duration: duration,
		tweens:   make(map[world.Coord]*gween.Tween),
		alpha:    make(map[world.Coord]float32),
	}
}

// Observe compares snap with the previous snapshot and starts a flash on every
// cell whose block type changed. The first snapshot only sets the baseline.
func (f *FlashTracker) Observe(snap state.Snapshot) {
	if f.prev != nil && len(f.prev) == snap.Size() {
		snap.ForEachCell(func(c world.Coord, b world.BlockType) {
			if f.prev[c.Row][c.Col] != b {
				f.tweens[c] = gween.New(1, 0, f.duration, ease.OutQuad)
				f.alpha[c] = 1
			}
		})
	}
	f.prev = snap.Cells
}

// Update advances every flash by dt seconds and drops finished ones
func (f *FlashTracker) Update(dt float32) {
	for c, tw := range f.tweens {
		a, done := tw.Update(dt)
		if done {
			delete(f.tweens, c)
			delete(f.alpha, c)
			continue
		}
		f.alpha[c] = a
	}
}

// Alpha returns the flash strength at c, 0 when nothing is flashing
func (f *FlashTracker) Alpha(c world.Coord) float32 {
	return f.alpha[c]
}

// Active returns the number of cells currently flashing
func (f *FlashTracker) Active() int {
	return len(f.tweens)
}
