package sim

import (
	"github.com/vvvvv1v/carla/internal/control"
	"github.com/vvvvv1v/carla/internal/geom"
	"github.com/vvvvv1v/carla/internal/planner"
	"github.com/vvvvv1v/carla/internal/walker"
)

// Kinematic is the host-side pedestrian body: it implements
// walker.Walker and integrates the commands the agent emits. Commanded
// speed is in m/s; the Walker interface reports km/h, matching the
// host API the planner was written against.
type Kinematic struct {
	pos      geom.Vector
	velocity geom.Vector // m/s
	actuator *control.PID
}

// NewKinematic places a body at start with zero velocity.
func NewKinematic(start geom.Vector) *Kinematic {
	return &Kinematic{pos: start}
}

// NewKinematicWithActuator adds a longitudinal PID between commanded
// and actual speed, configured from the planner's pass-through gains.
func NewKinematicWithActuator(start geom.Vector, gains planner.PIDOpts) *Kinematic {
	return &Kinematic{
		pos:      start,
		actuator: control.NewPID(gains.KP, gains.KI, gains.KD),
	}
}

func (k *Kinematic) Location() geom.Vector { return k.pos }

// Speed reports the current speed in km/h.
func (k *Kinematic) Speed() float64 {
	return k.velocity.Length() * 3.6
}

// Apply moves the body for one tick under the given command.
func (k *Kinematic) Apply(u walker.Control, dt float64) {
	speed := u.Speed
	if k.actuator != nil {
		current := k.velocity.Length()
		accel := k.actuator.Step(u.Speed-current, dt)
		speed = current + accel*dt
		if speed < 0 {
			speed = 0
		}
	}

	k.velocity = u.Direction.Unit().Scale(speed)
	k.pos = k.pos.Add(k.velocity.Scale(dt))
}
