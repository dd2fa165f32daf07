// Package movement animates the character between grid cells.
package movement

import (
	"glueboy/pkg/engine/world"
)

// DefaultSpeed is the animation speed in cells per second.
const DefaultSpeed = 10.0

// completionEpsilon is the time in seconds under which a step counts as
// finished, so float residue from chunked frame times never strands a step.
const completionEpsilon = 1e-9

// MoveAnimation is one queued unit step of visual movement.
type MoveAnimation struct {
	Start    world.Vec2
	Delta    world.Vec2
	Distance float64
	Speed    float64 // cells per second
	T        float64 // completed fraction, 0..1
}

// Animator owns a character's visual position and the FIFO of steps that
// carries it towards the logical position.
type Animator struct {
	visual world.Vec2
	queue  []*MoveAnimation
	speed  float64
}

// NewAnimator creates an animator resting at start
func NewAnimator(start world.Coord, speed float64) *Animator {
	if speed <= 0 {
		speed = DefaultSpeed
	}
	return &Animator{visual: start.Vec(), speed: speed}
}

// Visual returns the current visual position
func (a *Animator) Visual() world.Vec2 {
	return a.visual
}

// Pending returns the number of queued steps
func (a *Animator) Pending() int {
	return len(a.queue)
}

// Head returns a copy of the step currently playing
func (a *Animator) Head() (MoveAnimation, bool) {
	if len(a.queue) == 0 {
		return MoveAnimation{}, false
	}
	return *a.queue[0], true
}

// Enqueue appends a step with the given delta. The step starts from the
// visual position at the time of the call.
func (a *Animator) Enqueue(delta world.Vec2) {
	a.queue = append(a.queue, &MoveAnimation{
		Start:    a.visual,
		Delta:    delta,
		Distance: delta.Len(),
		Speed:    a.speed,
	})
}

// Advance consumes dt seconds of animation. logical is the position the
// visual position converges to once the queue is empty.
func (a *Animator) Advance(dt float64, logical world.Coord) {
	if len(a.queue) == 0 {
		a.visual = logical.Vec()
		return
	}

	timeLeft := dt
	for timeLeft > 0 && len(a.queue) > 0 {
		anim := a.queue[0]
		remaining := anim.Distance * (1 - anim.T)
		need := remaining / anim.Speed
		animTime := min(need, timeLeft)
		tick := animTime * anim.Speed

		a.visual = a.visual.Add(anim.Delta.Scale(tick))
		if need-animTime <= completionEpsilon {
			anim.T = 1
		} else {
			anim.T += tick / anim.Distance
		}

		if anim.T >= 1 {
			a.queue[0] = nil
			a.queue = a.queue[1:]
		}
		timeLeft -= animTime
	}

	if len(a.queue) == 0 {
		a.visual = logical.Vec()
	}
}
