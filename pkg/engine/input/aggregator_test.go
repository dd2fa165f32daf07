package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	contract "glueboy/pkg/engine/assert"
	"glueboy/pkg/engine/world"
)

// newTestAggregator returns an aggregator for a 10x10 board on a 600px surface.
func newTestAggregator(t *testing.T) *Aggregator {
	t.Helper()
	return NewAggregator(10, 60)
}

func TestDrain_HoverFromLastPointerEvent(t *testing.T) {
	a := newTestAggregator(t)
	f := a.Drain([]Event{
		NewPointerEvent(PointerMove, ButtonPrimary, 5, 5),
		NewPointerEvent(PointerMove, ButtonPrimary, 200, 190),
	})
	assert.Equal(t, world.Coord{Row: 3, Col: 3}, f.Hovered)
	assert.False(t, f.Clicked)

	// Hover persists across frames without pointer events.
	f = a.Drain(nil)
	assert.Equal(t, world.Coord{Row: 3, Col: 3}, f.Hovered)
}

func TestDrain_HoverIsClippedToBoard(t *testing.T) {
	a := newTestAggregator(t)
	tests := []struct {
		name string
		x, y float64
		want world.Coord
	}{
		{"left of surface", -15, 100, world.Coord{Row: 1, Col: 0}},
		{"below surface", 100, 900, world.Coord{Row: 9, Col: 1}},
		{"exact right edge", 600, 0, world.Coord{Row: 0, Col: 9}},
		{"tile boundary", 59.999, 60, world.Coord{Row: 1, Col: 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := a.Drain([]Event{NewPointerEvent(PointerMove, ButtonPrimary, tt.x, tt.y)})
			assert.Equal(t, tt.want, f.Hovered)
		})
	}
}

func TestDrain_ClickSetsFlagOnlyForPrimaryButton(t *testing.T) {
	a := newTestAggregator(t)

	f := a.Drain([]Event{NewPointerEvent(PointerClick, ButtonSecondary, 10, 10)})
	assert.False(t, f.Clicked, "secondary click must not paint")

	f = a.Drain([]Event{NewPointerEvent(PointerClick, ButtonPrimary, 130, 70)})
	assert.True(t, f.Clicked)
	assert.Equal(t, world.Coord{Row: 1, Col: 2}, f.Hovered)

	f = a.Drain(nil)
	assert.False(t, f.Clicked, "click flag leaked into the next frame")
}

func TestDrain_UnknownKindIsContractViolation(t *testing.T) {
	a := newTestAggregator(t)
	defer func() {
		r := recover()
		require.NotNil(t, r)
		_, ok := r.(*contract.Violation)
		assert.True(t, ok, "panic value = %T, want *assert.Violation", r)
	}()
	a.Drain([]Event{{Kind: KindUnknown}})
}

func TestHeldAndJustPressed_AcrossBoundCodes(t *testing.T) {
	a := newTestAggregator(t)
	a.Drain([]Event{NewKeyEvent("KeyA", KeyDown)})
	assert.True(t, a.Held(ActionMoveWest))
	assert.True(t, a.JustPressed(ActionMoveWest))
	assert.False(t, a.Held(ActionMoveEast))

	a.EndFrame()
	a.Drain(nil)
	assert.True(t, a.Held(ActionMoveWest))
	assert.False(t, a.JustPressed(ActionMoveWest))
}

func TestDrain_UnboundKeysAreIgnored(t *testing.T) {
	a := newTestAggregator(t)
	a.Drain([]Event{NewKeyEvent("KeyZ", KeyDown), NewKeyEvent("KeyW", KeyDown)})
	assert.False(t, a.Keys().Held("KeyZ"))
	assert.True(t, a.Keys().Held("KeyW"))
}

func TestSelectTool(t *testing.T) {
	a := newTestAggregator(t)
	assert.Equal(t, world.Empty, a.SelectTool(world.Empty), "no key held keeps current tool")

	a.Drain([]Event{NewKeyEvent("Digit2", KeyDown)})
	assert.Equal(t, world.Box, a.SelectTool(world.Empty))

	a.Drain([]Event{NewKeyEvent("Digit2", KeyUp)})
	assert.Equal(t, world.Box, a.SelectTool(world.Box), "releasing the key keeps the selection")

	// Digit1 wins when both are held.
	a.Drain([]Event{
		NewKeyEvent("Digit2", KeyDown),
		NewKeyEvent("Digit1", KeyDown),
	})
	assert.Equal(t, world.Empty, a.SelectTool(world.Box))
}

func TestDrain_MetaCommandsFireOncePerPress(t *testing.T) {
	a := newTestAggregator(t)
	f := a.Drain([]Event{NewKeyEvent("F12", KeyDown)})
	assert.Equal(t, []Action{ActionScreenshot}, f.Commands)
	a.EndFrame()

	f = a.Drain(nil)
	assert.Empty(t, f.Commands)
}

func TestMapToIntent(t *testing.T) {
	assert.Equal(t, ActionMoveWest, MapToIntent("ArrowLeft").Action)
	assert.Equal(t, ActionSelectBox, MapToIntent("Digit2").Action)
	assert.Equal(t, ActionNone, MapToIntent("KeyZ").Action)
	assert.Equal(t, []string{"ArrowUp", "KeyW"}, CodesFor(ActionMoveNorth))
	assert.Equal(t, "Move West", ActionName(ActionMoveWest))
}
