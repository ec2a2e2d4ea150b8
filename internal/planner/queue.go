package planner

import "github.com/vvvvv1v/carla/internal/geom"

// locationQueue is a FIFO ring buffer of target locations with an
// explicit capacity. It grows on demand (see Grow) and never shrinks,
// so an arbitrarily long plan never silently drops tail waypoints.
type locationQueue struct {
	buf  []geom.Vector
	head int
	size int
}

func newLocationQueue(capacity int) *locationQueue {
	if capacity < 1 {
		capacity = 1
	}
	return &locationQueue{buf: make([]geom.Vector, capacity)}
}

func (q *locationQueue) Len() int { return q.size }

func (q *locationQueue) Cap() int { return len(q.buf) }

// PushBack appends a location, growing the buffer if full.
func (q *locationQueue) PushBack(loc geom.Vector) {
	if q.size == len(q.buf) {
		q.Grow(q.size + 1)
	}
	q.buf[(q.head+q.size)%len(q.buf)] = loc
	q.size++
}

// PopFront removes and returns the oldest location. Callers check Len
// first; popping an empty queue returns the zero vector.
func (q *locationQueue) PopFront() geom.Vector {
	if q.size == 0 {
		return geom.Vector{}
	}
	loc := q.buf[q.head]
	q.head = (q.head + 1) % len(q.buf)
	q.size--
	return loc
}

// At returns the i-th location from the front without removing it.
func (q *locationQueue) At(i int) geom.Vector {
	return q.buf[(q.head+i)%len(q.buf)]
}

func (q *locationQueue) Front() geom.Vector {
	return q.buf[q.head]
}

func (q *locationQueue) Clear() {
	q.head = 0
	q.size = 0
}

// Grow rebuilds the buffer with at least the requested capacity,
// preserving all queued entries in order. A no-op when already large
// enough.
func (q *locationQueue) Grow(capacity int) {
	if capacity <= len(q.buf) {
		return
	}
	buf := make([]geom.Vector, capacity)
	for i := 0; i < q.size; i++ {
		buf[i] = q.At(i)
	}
	q.buf = buf
	q.head = 0
}

// Snapshot copies the queued locations front to back.
func (q *locationQueue) Snapshot() []geom.Vector {
	out := make([]geom.Vector, q.size)
	for i := 0; i < q.size; i++ {
		out[i] = q.At(i)
	}
	return out
}
