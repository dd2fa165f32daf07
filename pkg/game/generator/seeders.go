package generator

import (
	"glueboy/pkg/engine/world"
)

// DemoSeeder places a single box on an otherwise empty grid.
type DemoSeeder struct{}

// demoBox is where the demo layout puts its box
var demoBox = world.Coord{Row: 3, Col: 3}

// Name returns the name of this seeder
func (s *DemoSeeder) Name() string {
	return "Demo"
}

// Seed creates the demo grid. Grids too small to hold the box stay empty.
func (s *DemoSeeder) Seed(size int) *world.Grid {
	grid := world.NewGrid(size)
	if grid.InBounds(demoBox) {
		grid.Paint(demoBox, world.Box)
	}
	return grid
}

// EmptySeeder leaves every cell Empty.
type EmptySeeder struct{}

// Name returns the name of this seeder
func (s *EmptySeeder) Name() string {
	return "Empty"
}

// Seed creates an empty grid
func (s *EmptySeeder) Seed(size int) *world.Grid {
	return world.NewGrid(size)
}

// BorderSeeder rings the grid with boxes, leaving the interior empty.
type BorderSeeder struct{}

// Name returns the name of this seeder
func (s *BorderSeeder) Name() string {
	return "Border"
}

// Seed creates a grid whose outermost cells are boxes
func (s *BorderSeeder) Seed(size int) *world.Grid {
	grid := world.NewGrid(size)
	last := size - 1
	grid.ForEachCell(func(c world.Coord, _ world.BlockType) {
		if c.Row == 0 || c.Col == 0 || c.Row == last || c.Col == last {
			grid.Paint(c, world.Box)
		}
	})
	return grid
}
