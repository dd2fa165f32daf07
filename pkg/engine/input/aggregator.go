package input

import (
	"math"

	"glueboy/pkg/engine/assert"
	"glueboy/pkg/engine/world"
)

// metaActions are reported once per press rather than while held.
var metaActions = []Action{ActionScreenshot, ActionMapDump, ActionQuit}

// toolBindings lists tool-select actions in priority order.
var toolBindings = []struct {
	action Action
	tool   world.BlockType
}{
	{ActionSelectEmpty, world.Empty},
	{ActionSelectBox, world.Box},
}

// Frame is the per-frame result of draining the event queue.
type Frame struct {
	// Clicked is set when a primary-button click was queued this frame.
	Clicked bool
	// Hovered is the grid cell under the most recent pointer event.
	Hovered world.Coord
	// Commands holds meta actions whose key went down this frame.
	Commands []Action
}

// Aggregator turns raw events into held-key state, hover and click intent.
type Aggregator struct {
	keys     *KeyTable
	gridSize int
	tileSize float64
	hovered  world.Coord
}

// NewAggregator creates an aggregator for a gridSize x gridSize board drawn
// with square tiles of tileSize pixels.
func NewAggregator(gridSize int, tileSize float64) *Aggregator {
	assert.That(gridSize > 0, "grid size %d must be positive", gridSize)
	assert.That(tileSize > 0, "tile size %v must be positive", tileSize)
	return &Aggregator{
		keys:     NewKeyTable(),
		gridSize: gridSize,
		tileSize: tileSize,
	}
}

// Keys exposes the key table
func (a *Aggregator) Keys() *KeyTable {
	return a.keys
}

// Hovered returns the last hovered cell
func (a *Aggregator) Hovered() world.Coord {
	return a.hovered
}

// Drain consumes events in order and returns what happened this frame.
func (a *Aggregator) Drain(events []Event) Frame {
	var f Frame
	for _, ev := range events {
		switch ev.Kind {
		case KindKey:
			if MapToIntent(ev.Code).Action == ActionNone {
				continue
			}
			a.keys.Apply(ev.Code, ev.Transition)
		case KindPointer:
			if ev.Pointer == PointerClick && ev.Button == ButtonPrimary {
				f.Clicked = true
			}
			a.hovered = a.cellAt(ev.X, ev.Y)
		default:
			assert.Fail("unhandled event kind %d", ev.Kind)
		}
	}
	f.Hovered = a.hovered

	for _, act := range metaActions {
		if a.JustPressed(act) {
			f.Commands = append(f.Commands, act)
		}
	}
	return f
}

// cellAt maps a pixel offset to a grid cell, clipped to the board.
func (a *Aggregator) cellAt(x, y float64) world.Coord {
	row := int(math.Floor(y / a.tileSize))
	col := int(math.Floor(x / a.tileSize))
	return world.ClipTo(world.Coord{Row: row, Col: col}, a.gridSize)
}

// Held reports whether any key bound to the action is down.
func (a *Aggregator) Held(act Action) bool {
	for _, code := range CodesFor(act) {
		if a.keys.Held(code) {
			return true
		}
	}
	return false
}

// JustPressed reports whether a key bound to the action went down this frame.
func (a *Aggregator) JustPressed(act Action) bool {
	for _, code := range CodesFor(act) {
		if a.keys.JustPressed(code) {
			return true
		}
	}
	return false
}

// SelectTool returns the tool for the first held tool-select key, or current
// if none is held.
func (a *Aggregator) SelectTool(current world.BlockType) world.BlockType {
	for _, tb := range toolBindings {
		if a.Held(tb.action) {
			return tb.tool
		}
	}
	return current
}

// EndFrame clears just-pressed state. Call once after the frame has used it.
func (a *Aggregator) EndFrame() {
	a.keys.EndFrame()
}
