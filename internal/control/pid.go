// Package control provides the feedback controllers the simulation
// host runs between a planner command and the actor's actual motion.
//
// The planner itself steers geometrically; these controllers model the
// actuator side, driven by the gain sets the planner carries as
// pass-through configuration.
package control

// PID is a scalar proportional-integral-derivative controller.
type PID struct {
	Kp float64
	Ki float64
	Kd float64

	integral float64
	prevErr  float64
	first    bool
}

func NewPID(kp, ki, kd float64) *PID {
	return &PID{
		Kp:    kp,
		Ki:    ki,
		Kd:    kd,
		first: true,
	}
}

// Step advances the controller by dt with the given error and returns
// the control output. The first call skips the derivative term.
func (p *PID) Step(err, dt float64) float64 {
	if dt <= 0 {
		return p.Kp * err
	}

	if p.first {
		p.prevErr = err
		p.first = false
		return p.Kp * err
	}

	p.integral += err * dt
	derivative := (err - p.prevErr) / dt
	p.prevErr = err

	return p.Kp*err + p.Ki*p.integral + p.Kd*derivative
}

// Reset clears integral and derivative state.
func (p *PID) Reset() {
	p.integral = 0
	p.prevErr = 0
	p.first = true
}

// GetParams returns tunable parameters for live adjustment.
func (p *PID) GetParams() map[string]float64 {
	return map[string]float64{
		"Kp": p.Kp,
		"Ki": p.Ki,
		"Kd": p.Kd,
	}
}

// SetParam adjusts a PID parameter.
func (p *PID) SetParam(name string, value float64) {
	switch name {
	case "Kp":
		p.Kp = value
	case "Ki":
		p.Ki = value
	case "Kd":
		p.Kd = value
	}
}
