// Package planner implements low-level location following for a
// pedestrian actor: a FIFO queue of target locations is drained as the
// actor gets close enough to each one, and every tick the planner emits
// a direction plus cruise speed toward the current front of the queue.
package planner

import (
	"github.com/vvvvv1v/carla/internal/geom"
	"github.com/vvvvv1v/carla/internal/walker"
)

// LocalPlanner follows a trajectory of locations generated externally.
// It holds exactly one walker handle and is driven strictly
// sequentially by the host tick loop; it is not safe for concurrent
// use and does not need to be.
type LocalPlanner struct {
	walker walker.Walker
	opts   Opts
	queue  *locationQueue
	target geom.Vector
}

// New builds a planner for the given walker. Start from DefaultOpts and
// override fields as needed; the value is copied, never shared. The
// queue is seeded with the walker's current location so the planner
// never starts without a target.
func New(w walker.Walker, opts Opts) *LocalPlanner {
	p := &LocalPlanner{
		walker: w,
		opts:   opts,
		queue:  newLocationQueue(initialQueueCap),
	}
	p.target = w.Location()
	p.queue.PushBack(p.target)
	return p
}

// SetSpeed overwrites the cruise speed. No validation; takes effect on
// the next RunStep.
func (p *LocalPlanner) SetSpeed(speed float64) {
	p.opts.TargetSpeed = speed
}

// SetPlan appends a sequence of locations to the queue, or replaces the
// queue with it when cleanQueue is set. The queue capacity grows to the
// combined length when the plan would not fit, without losing any
// unconsumed entries.
func (p *LocalPlanner) SetPlan(plan []geom.Vector, cleanQueue bool) {
	if cleanQueue {
		p.queue.Clear()
	}

	if need := len(plan) + p.queue.Len(); need > p.queue.Cap() {
		p.queue.Grow(need)
	}

	for _, loc := range plan {
		p.queue.PushBack(loc)
	}
}

// RunStep executes one tick of location following: prune the waypoints
// the walker has already reached, then steer toward the new front of
// the queue. An exhausted queue yields a stop command.
func (p *LocalPlanner) RunStep() walker.Control {
	loc := p.walker.Location()
	speed := p.walker.Speed() * kmhToMs

	// Faster walkers consume waypoints from farther away so they do
	// not overshoot and loop back.
	minDistance := p.opts.BaseMinDistance + p.opts.DistanceRatio*speed

	removed := 0
	for i := 0; i < p.queue.Len(); i++ {
		radius := minDistance
		if p.queue.Len()-removed == 1 {
			radius = terminalMinDistance
		}
		if loc.Distance(p.queue.At(i)) < radius {
			removed++
		} else {
			break
		}
	}
	for i := 0; i < removed; i++ {
		p.queue.PopFront()
	}

	if p.queue.Len() == 0 {
		return walker.Stop()
	}

	p.target = p.queue.Front()
	return walker.Control{
		Direction: p.target.Sub(loc).Unit(),
		Speed:     p.opts.TargetSpeed,
	}
}

// Done reports whether the plan is exhausted.
func (p *LocalPlanner) Done() bool {
	return p.queue.Len() == 0
}

// TargetLocation returns the waypoint currently steered toward, with
// false when the queue is empty.
func (p *LocalPlanner) TargetLocation() (geom.Vector, bool) {
	if p.queue.Len() == 0 {
		return geom.Vector{}, false
	}
	return p.queue.Front(), true
}

// Remaining returns the unconsumed waypoints front to back, for
// observers and visualization.
func (p *LocalPlanner) Remaining() []geom.Vector {
	return p.queue.Snapshot()
}

// Opts returns the planner tunables, including the pass-through
// controller gains.
func (p *LocalPlanner) Opts() Opts {
	return p.opts
}
