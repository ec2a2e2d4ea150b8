// Package walker defines the boundary between the trajectory controller
// and the simulation host that owns the pedestrian actor.
//
// The controller only ever reads the actor's state through [Walker] and
// hands back a [Control] for the host to apply each tick. Spawning,
// physics and rendering all live on the host side.
package walker

import "github.com/vvvvv1v/carla/internal/geom"

// Walker is the host-side actor handle. Speed is reported in km/h,
// matching the host API; consumers convert as needed.
type Walker interface {
	Location() geom.Vector
	Speed() float64
}

// Control is the movement command applied by the host for one tick.
// Direction is a unit vector in world space; a stop command carries
// speed 0 and the zero direction.
type Control struct {
	Direction geom.Vector
	Speed     float64
	Jump      bool
}

// Stop returns the command that halts the actor in place.
func Stop() Control {
	return Control{}
}
