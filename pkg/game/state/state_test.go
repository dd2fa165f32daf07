package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"glueboy/pkg/engine/input"
	"glueboy/pkg/engine/world"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	grid := world.NewGrid(10)
	grid.Paint(world.Coord{Row: 3, Col: 3}, world.Box)
	return NewGame(grid, Options{TileSize: 60, Speed: 10, Cadence: 1.0 / 7.0})
}

func TestNewGame_Defaults(t *testing.T) {
	g := newTestGame(t)
	assert.Equal(t, world.Coord{}, g.Character.Logical)
	assert.Equal(t, world.Vec2{}, g.Character.Visual())
	assert.Equal(t, world.Empty, g.Tool)
	assert.False(t, g.Started)
}

func TestNewGame_StartIsClipped(t *testing.T) {
	grid := world.NewGrid(4)
	g := NewGame(grid, Options{TileSize: 10, Start: world.Coord{Row: 9, Col: -2}})
	assert.Equal(t, world.Coord{Row: 3, Col: 0}, g.Character.Logical)
}

func TestSnapshot_IsIndependentCopy(t *testing.T) {
	g := newTestGame(t)
	g.AddMessage("hello")
	cmds := []input.Action{input.ActionScreenshot}
	snap := g.Snapshot(1.5, cmds)

	g.Grid.Paint(world.Coord{Row: 3, Col: 3}, world.Empty)
	g.AddMessage("later")
	cmds[0] = input.ActionQuit

	assert.Equal(t, world.Box, snap.Block(world.Coord{Row: 3, Col: 3}))
	assert.Equal(t, []string{"hello"}, snap.Messages)
	assert.True(t, snap.HasCommand(input.ActionScreenshot))
	assert.False(t, snap.HasCommand(input.ActionQuit))
	assert.Equal(t, 1.5, snap.Timestamp)
	assert.Equal(t, 10, snap.Size())
}

func TestSnapshot_BlockOutsideGridIsEmpty(t *testing.T) {
	snap := newTestGame(t).Snapshot(0, nil)
	assert.Equal(t, world.Empty, snap.Block(world.Coord{Row: -1, Col: 0}))
	assert.Equal(t, world.Empty, snap.Block(world.Coord{Row: 0, Col: 10}))
}

func TestSnapshot_ForEachCell(t *testing.T) {
	snap := newTestGame(t).Snapshot(0, nil)
	boxes := 0
	visited := 0
	snap.ForEachCell(func(c world.Coord, b world.BlockType) {
		visited++
		if b == world.Box {
			boxes++
			require.Equal(t, world.Coord{Row: 3, Col: 3}, c)
		}
	})
	assert.Equal(t, 100, visited)
	assert.Equal(t, 1, boxes)
}

func TestAddMessage_KeepsLastFive(t *testing.T) {
	g := newTestGame(t)
	for _, m := range []string{"a", "b", "c", "d", "e", "f", "g"} {
		g.AddMessage(m)
	}
	assert.Equal(t, []string{"c", "d", "e", "f", "g"}, g.Messages)
	g.ClearMessages()
	assert.Empty(t, g.Messages)
}
