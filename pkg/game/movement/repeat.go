package movement

import (
	"glueboy/pkg/engine/world"
)

// DefaultCadence is the minimum time in seconds between auto-repeated moves
// while a direction key stays held.
const DefaultCadence = 1.0 / 7.0

// Priority is the order in which simultaneously held directions are considered.
var Priority = []world.Direction{world.West, world.East, world.North, world.South}

// Repeater remembers the last direction that fired and when, giving an
// immediate move on press followed by fixed-rate repeats while held.
type Repeater struct {
	cadence  float64
	fired    bool
	lastDir  world.Direction
	lastTime float64
}

// NewRepeater creates a repeater with the given cadence in seconds
func NewRepeater(cadence float64) *Repeater {
	if cadence <= 0 {
		cadence = DefaultCadence
	}
	return &Repeater{cadence: cadence}
}

// Ready reports whether dir may fire at time now.
func (r *Repeater) Ready(dir world.Direction, justPressed bool, now float64) bool {
	return justPressed || !r.fired || r.lastDir != dir || r.lastTime+r.cadence < now
}

// Record remembers that dir fired at time now
func (r *Repeater) Record(dir world.Direction, now float64) {
	r.fired = true
	r.lastDir = dir
	r.lastTime = now
}

// KeyState reports held and just-pressed for a direction.
type KeyState func(dir world.Direction) (held, justPressed bool)

// Resolve picks the highest-priority held direction and reports whether it
// fires this frame. Lower-priority directions are never considered while a
// higher one is held.
func (r *Repeater) Resolve(keys KeyState, now float64) (world.Direction, bool) {
	for _, dir := range Priority {
		held, just := keys(dir)
		if !held {
			continue
		}
		return dir, r.Ready(dir, just, now)
	}
	return 0, false
}
