package world

// Grid is a square map of block types. It never changes size after Build.
type Grid struct {
	cells [][]BlockType
	size  int
}

// NewGrid creates a new size x size grid with every cell Empty
func NewGrid(size int) *Grid {
	g := &Grid{}
	g.Build(size)
	return g
}

// Build initializes the grid with the given dimension
func (g *Grid) Build(size int) {
	if size <= 0 {
		panic("Grid dimensions must be positive")
	}

	g.size = size
	g.cells = make([][]BlockType, size)
	for row := 0; row < size; row++ {
		g.cells[row] = make([]BlockType, size)
	}
}

// Size returns the number of rows (and columns) in the grid
func (g *Grid) Size() int {
	return g.size
}

// InBounds checks if a coordinate is within grid bounds
func (g *Grid) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.size && c.Col >= 0 && c.Col < g.size
}

// Clip clamps a coordinate into the grid
func (g *Grid) Clip(c Coord) Coord {
	return ClipTo(c, g.size)
}

// Paint stores t at c. Callers are responsible for bounds.
func (g *Grid) Paint(c Coord, t BlockType) {
	g.cells[c.Row][c.Col] = t
}

// Read returns the block type stored at c. Callers are responsible for bounds.
func (g *Grid) Read(c Coord) BlockType {
	return g.cells[c.Row][c.Col]
}

// ForEachCell iterates over all cells in row-major order
func (g *Grid) ForEachCell(fn func(c Coord, t BlockType)) {
	for row := 0; row < g.size; row++ {
		for col := 0; col < g.size; col++ {
			fn(Coord{Row: row, Col: col}, g.cells[row][col])
		}
	}
}

// Count returns how many cells hold t
func (g *Grid) Count(t BlockType) int {
	n := 0
	g.ForEachCell(func(_ Coord, b BlockType) {
		if b == t {
			n++
		}
	})
	return n
}

// Cells returns a deep copy of the cell contents, indexed [row][col]
func (g *Grid) Cells() [][]BlockType {
	out := make([][]BlockType, g.size)
	for row := range g.cells {
		out[row] = append([]BlockType(nil), g.cells[row]...)
	}
	return out
}
