package generator

import (
	"testing"

	"glueboy/pkg/engine/world"
)

func TestDemoSeed_BoxAtThreeThree(t *testing.T) {
	grid := Demo.Seed(10)
	if got := grid.Read(world.Coord{Row: 3, Col: 3}); got != world.Box {
		t.Errorf("Read(3:3) = %v, want Box", got)
	}
	if n := grid.Count(world.Box); n != 1 {
		t.Errorf("Count(Box) = %d, want 1", n)
	}
}

func TestDemoSeed_SmallGridStaysEmpty(t *testing.T) {
	grid := Demo.Seed(3)
	if n := grid.Count(world.Box); n != 0 {
		t.Errorf("Count(Box) = %d on a 3x3 grid, want 0", n)
	}
}

func TestBorderSeed(t *testing.T) {
	tests := []struct {
		size  int
		boxes int
	}{
		{1, 1},
		{2, 4},
		{5, 16},
		{10, 36},
	}
	for _, tt := range tests {
		grid := Border.Seed(tt.size)
		if n := grid.Count(world.Box); n != tt.boxes {
			t.Errorf("size %d: Count(Box) = %d, want %d", tt.size, n, tt.boxes)
		}
	}
	grid := Border.Seed(5)
	if got := grid.Read(world.Coord{Row: 2, Col: 2}); got != world.Empty {
		t.Errorf("interior cell = %v, want Empty", got)
	}
}

func TestEmptySeed(t *testing.T) {
	grid := Blank.Seed(7)
	if grid.Size() != 7 {
		t.Errorf("Size() = %d, want 7", grid.Size())
	}
	if n := grid.Count(world.Empty); n != 49 {
		t.Errorf("Count(Empty) = %d, want 49", n)
	}
}

func TestLookup(t *testing.T) {
	for _, key := range Keys() {
		s, err := Lookup(key)
		if err != nil {
			t.Fatalf("Lookup(%q) error: %v", key, err)
		}
		if s.Name() == "" {
			t.Errorf("seeder %q has empty Name", key)
		}
	}
	if _, err := Lookup("maze"); err == nil {
		t.Error("Lookup(\"maze\") returned nil error")
	}
	if DefaultSeeder != Demo {
		t.Error("DefaultSeeder is not the demo layout")
	}
}
