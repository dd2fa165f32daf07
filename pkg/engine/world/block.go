// Package world provides generic 2D grid-based world primitives.
// These are engine-level constructs usable by any tile-based game.
package world

// BlockType tags the contents of a single grid cell.
type BlockType int

// Block types. New kinds are appended before numBlockTypes.
const (
	Empty BlockType = iota
	Box

	numBlockTypes
)

// AllBlockTypes returns every block type in declaration order
func AllBlockTypes() []BlockType {
	types := make([]BlockType, 0, numBlockTypes)
	for b := Empty; b < numBlockTypes; b++ {
		types = append(types, b)
	}
	return types
}

// IsValid returns true if b is a known block type
func (b BlockType) IsValid() bool {
	return b >= Empty && b < numBlockTypes
}

// String returns the identifier of a block type
func (b BlockType) String() string {
	switch b {
	case Empty:
		return "Empty"
	case Box:
		return "Box"
	default:
		return "Unknown"
	}
}
