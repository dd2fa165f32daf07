package gameplay

import (
	"glueboy/pkg/engine/input"
	"glueboy/pkg/engine/world"
	"glueboy/pkg/game/movement"
	"glueboy/pkg/game/state"
)

// directionActions maps each direction to the action its keys are bound to
var directionActions = map[world.Direction]input.Action{
	world.North: input.ActionMoveNorth,
	world.South: input.ActionMoveSouth,
	world.West:  input.ActionMoveWest,
	world.East:  input.ActionMoveEast,
}

// keyState adapts the aggregator's key table to the repeater
func keyState(a *input.Aggregator) movement.KeyState {
	return func(dir world.Direction) (bool, bool) {
		act := directionActions[dir]
		return a.Held(act), a.JustPressed(act)
	}
}

// MoveCharacter applies this frame's movement intent. It returns true when
// the character stepped.
func MoveCharacter(g *state.Game, now float64) bool {
	dir, fire := g.Repeat.Resolve(keyState(g.Input), now)
	if !fire {
		return false
	}
	return MoveCell(g, dir, now)
}

// MoveCell steps the character one cell in dir. The logical position moves at
// once and the visual position follows through the animator. Steps off the
// grid are refused and not remembered for repeat timing.
func MoveCell(g *state.Game, dir world.Direction, now float64) bool {
	target := dir.Step(g.Character.Logical)
	if !g.Grid.InBounds(target) {
		return false
	}

	g.Character.Logical = target
	g.Character.Anim.Enqueue(dir.Vec())
	g.Repeat.Record(dir, now)
	return true
}

// Paint stores the selected tool in the hovered cell
func Paint(g *state.Game, at world.Coord) {
	if !g.Grid.InBounds(at) {
		return
	}
	g.Grid.Paint(at, g.Tool)
}
