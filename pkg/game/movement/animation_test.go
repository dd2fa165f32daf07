package movement

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"glueboy/pkg/engine/world"
)

const eps = 1e-9

// step enqueues a move in dir and returns the new logical position.
func step(a *Animator, logical world.Coord, dir world.Direction) world.Coord {
	a.Enqueue(dir.Vec())
	return dir.Step(logical)
}

func TestAdvance_HalfStep(t *testing.T) {
	a := NewAnimator(world.Coord{}, 10)
	logical := step(a, world.Coord{}, world.East)

	a.Advance(0.05, logical)

	head, ok := a.Head()
	require.True(t, ok)
	assert.Equal(t, 1, a.Pending())
	assert.InDelta(t, 0.5, head.T, eps)
	assert.InDelta(t, 1.0, head.Distance, eps)
	assert.InDelta(t, 0.5, a.Visual().Col, eps)
	assert.InDelta(t, 0.0, a.Visual().Row, eps)
}

func TestAdvance_ChunkingDoesNotDrift(t *testing.T) {
	chunkings := map[string][]float64{
		"single":  {0.1},
		"halves":  {0.05, 0.05},
		"uneven":  {0.03, 0.03, 0.04},
		"tenths":  {0.01, 0.01, 0.01, 0.01, 0.01, 0.01, 0.01, 0.01, 0.01, 0.01},
		"thirds":  {0.1 / 3, 0.1 / 3, 0.1 / 3},
		"sixty":   {1.0 / 60, 1.0 / 60, 1.0 / 60, 1.0 / 60, 1.0 / 60, 1.0 / 60},
		"zeroes":  {0, 0.04, 0, 0.06},
		"oneshot": {0.1, 0},
	}
	for name, dts := range chunkings {
		t.Run(name, func(t *testing.T) {
			a := NewAnimator(world.Coord{Row: 2, Col: 2}, 10)
			logical := step(a, world.Coord{Row: 2, Col: 2}, world.South)
			for _, dt := range dts {
				a.Advance(dt, logical)
			}
			assert.Equal(t, 0, a.Pending())
			assert.Equal(t, logical.Vec(), a.Visual())
		})
	}
}

func TestAdvance_OppositeStepsNetZero(t *testing.T) {
	start := world.Coord{Row: 4, Col: 4}
	a := NewAnimator(start, 10)
	logical := step(a, start, world.East)
	logical = step(a, logical, world.West)
	require.Equal(t, start, logical)
	require.Equal(t, 2, a.Pending())

	// First step completes and the second begins.
	a.Advance(0.15, logical)
	assert.Equal(t, 1, a.Pending())
	assert.InDelta(t, 4.5, a.Visual().Col, eps)

	a.Advance(0.05, logical)
	assert.Equal(t, 0, a.Pending())
	assert.Equal(t, start.Vec(), a.Visual())
}

func TestAdvance_LargeDtDrainsWithoutOvershoot(t *testing.T) {
	a := NewAnimator(world.Coord{}, 10)
	logical := step(a, world.Coord{}, world.East)
	logical = step(a, logical, world.East)
	logical = step(a, logical, world.East)
	logical = step(a, logical, world.East)

	a.Advance(0.3, logical)
	assert.Equal(t, 1, a.Pending(), "three steps fit in 0.3s, the fourth waits")
	assert.InDelta(t, 3.0, a.Visual().Col, eps)
	head, _ := a.Head()
	assert.InDelta(t, 0.0, head.T, eps)

	a.Advance(5, logical)
	assert.Equal(t, 0, a.Pending())
	assert.Equal(t, logical.Vec(), a.Visual())
}

func TestAdvance_SingleStepLargeDt(t *testing.T) {
	a := NewAnimator(world.Coord{Row: 1, Col: 1}, 10)
	logical := step(a, world.Coord{Row: 1, Col: 1}, world.North)
	a.Advance(0.3, logical)
	assert.Equal(t, 0, a.Pending())
	assert.Equal(t, world.Vec2{Row: 0, Col: 1}, a.Visual())
}

func TestAdvance_EmptyQueueIsIdempotent(t *testing.T) {
	at := world.Coord{Row: 7, Col: 2}
	a := NewAnimator(at, 10)
	for _, dt := range []float64{0, 0.016, 3} {
		a.Advance(dt, at)
		assert.Equal(t, at.Vec(), a.Visual())
		assert.Equal(t, 0, a.Pending())
	}
}

func TestEnqueue_StartsFromCurrentVisual(t *testing.T) {
	a := NewAnimator(world.Coord{}, 10)
	logical := step(a, world.Coord{}, world.East)
	a.Advance(0.025, logical)

	step(a, logical, world.South)
	require.Equal(t, 2, a.Pending())
	second := a.queue[1]
	assert.InDelta(t, 0.25, second.Start.Col, eps)
	assert.Equal(t, world.Vec2{Row: 1, Col: 0}, second.Delta)
	assert.Equal(t, 10.0, second.Speed)
	assert.Equal(t, 0.0, second.T)
}

func TestAdvance_ZeroDistanceStepIsDropped(t *testing.T) {
	a := NewAnimator(world.Coord{}, 10)
	a.Enqueue(world.Vec2{})
	a.Advance(0.01, world.Coord{})
	assert.Equal(t, 0, a.Pending())
	assert.Equal(t, world.Vec2{}, a.Visual())
}

func TestNewAnimator_DefaultsSpeed(t *testing.T) {
	a := NewAnimator(world.Coord{}, 0)
	a.Enqueue(world.East.Vec())
	head, _ := a.Head()
	assert.Equal(t, DefaultSpeed, head.Speed)
}
