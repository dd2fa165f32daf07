package state

import (
	"glueboy/pkg/engine/input"
	"glueboy/pkg/engine/world"
)

// Snapshot is a read-only copy of one frame's game state. It shares no
// memory with the live Game.
type Snapshot struct {
	Cells     [][]world.BlockType
	Logical   world.Coord
	Visual    world.Vec2
	Hovered   world.Coord
	Tool      world.BlockType
	Pending   int
	Timestamp float64
	Frame     int
	Commands  []input.Action
	Messages  []string
}

// Size returns the grid dimension
func (s Snapshot) Size() int {
	return len(s.Cells)
}

// Block returns the block type at c, or Empty outside the grid
func (s Snapshot) Block(c world.Coord) world.BlockType {
	if c.Row < 0 || c.Row >= len(s.Cells) || c.Col < 0 || c.Col >= len(s.Cells[c.Row]) {
		return world.Empty
	}
	return s.Cells[c.Row][c.Col]
}

// HasCommand reports whether a meta action was raised this frame
func (s Snapshot) HasCommand(a input.Action) bool {
	for _, c := range s.Commands {
		if c == a {
			return true
		}
	}
	return false
}

// ForEachCell iterates over the copied cells in row-major order
func (s Snapshot) ForEachCell(fn func(c world.Coord, t world.BlockType)) {
	for row := range s.Cells {
		for col, t := range s.Cells[row] {
			fn(world.Coord{Row: row, Col: col}, t)
		}
	}
}
