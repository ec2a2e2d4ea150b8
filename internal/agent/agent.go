// Package agent wraps the local planner in the walker-facing control
// surface the host tick loop drives.
package agent

import (
	"github.com/vvvvv1v/carla/internal/geom"
	"github.com/vvvvv1v/carla/internal/planner"
	"github.com/vvvvv1v/carla/internal/walker"
)

// WalkerAgent automatically follows an externally supplied plan. It is
// a thin facade over planner.LocalPlanner; all movement decisions live
// there.
type WalkerAgent struct {
	walker      walker.Walker
	targetSpeed float64
	planner     *planner.LocalPlanner
}

// New builds an agent for the walker. targetSpeed overrides the
// planner's cruise speed from the start.
func New(w walker.Walker, targetSpeed float64, opts planner.Opts) *WalkerAgent {
	a := &WalkerAgent{
		walker:      w,
		targetSpeed: targetSpeed,
		planner:     planner.New(w, opts),
	}
	a.planner.SetSpeed(targetSpeed)
	return a
}

// SetTargetSpeed changes the cruise speed of the agent.
func (a *WalkerAgent) SetTargetSpeed(speed float64) {
	a.targetSpeed = speed
	a.planner.SetSpeed(speed)
}

// SetPlan hands a route to the agent. cleanQueue discards whatever
// remains of the current plan first.
func (a *WalkerAgent) SetPlan(plan []geom.Vector, cleanQueue bool) {
	a.planner.SetPlan(plan, cleanQueue)
}

// RunStep executes one step of navigation.
func (a *WalkerAgent) RunStep() walker.Control {
	return a.planner.RunStep()
}

// Done reports whether the agent has reached its destination.
func (a *WalkerAgent) Done() bool {
	return a.planner.Done()
}

// Planner exposes the underlying planner for observers and UI.
func (a *WalkerAgent) Planner() *planner.LocalPlanner {
	return a.planner
}
