package metrics

import (
	"github.com/vvvvv1v/carla/internal/geom"
	"github.com/vvvvv1v/carla/internal/planner"
	"github.com/vvvvv1v/carla/internal/walker"
)

// WaypointsReached counts queue consumption by watching the planner's
// remaining-waypoint count shrink between ticks. Reset snapshots the
// current count, so construct and Reset after the plan is set.
type WaypointsReached struct {
	name    string
	planner *planner.LocalPlanner
	last    int
	reached int
}

func NewWaypointsReached(p *planner.LocalPlanner) *WaypointsReached {
	return &WaypointsReached{
		name:    "waypoints_reached",
		planner: p,
		last:    len(p.Remaining()),
	}
}

func (w *WaypointsReached) Name() string { return w.name }

func (w *WaypointsReached) Observe(loc geom.Vector, u walker.Control, t float64) {
	cur := len(w.planner.Remaining())
	if cur < w.last {
		w.reached += w.last - cur
	}
	w.last = cur
}

func (w *WaypointsReached) Value() float64 {
	return float64(w.reached)
}

func (w *WaypointsReached) Reset() {
	w.reached = 0
	w.last = len(w.planner.Remaining())
}
