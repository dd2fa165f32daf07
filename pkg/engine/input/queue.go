package input

import (
	"sync"

	"github.com/zyedidia/generic/queue"
)

// Queue holds raw events between frames. Producers may push from any
// goroutine; the frame drains everything at once.
type Queue struct {
	mu     sync.Mutex
	events *queue.Queue[Event]
	n      int
}

// NewQueue creates an empty event queue
func NewQueue() *Queue {
	return &Queue{events: queue.New[Event]()}
}

// Push appends an event to the tail of the queue
func (q *Queue) Push(ev Event) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.events.Enqueue(ev)
	q.n++
}

// Drain removes and returns every queued event in arrival order
func (q *Queue) Drain() []Event {
	q.mu.Lock()
	defer q.mu.Unlock()

	out := make([]Event, 0, q.n)
	for !q.events.Empty() {
		out = append(out, q.events.Dequeue())
	}
	q.n = 0
	return out
}

// Len returns the number of pending events
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.n
}
