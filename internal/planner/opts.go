package planner

const (
	// DefaultDt is the assumed simulation tick length in seconds.
	DefaultDt = 0.05

	// DefaultTargetSpeed is the cruise speed handed to the host.
	DefaultTargetSpeed = 1.0

	// DefaultBaseMinDistance is the pruning radius at standstill.
	DefaultBaseMinDistance = 1.0

	// DefaultDistanceRatio scales the pruning radius with speed, so a
	// faster walker drops waypoints from farther away instead of
	// oscillating around them.
	DefaultDistanceRatio = 0.5

	// terminalMinDistance is the fixed radius for the last remaining
	// waypoint: the final target must be nearly reached before the
	// plan counts as done, whatever the current speed.
	terminalMinDistance = 1.0

	// initialQueueCap matches the host's usual route segment length;
	// SetPlan grows past it when needed.
	initialQueueCap = 100

	// kmhToMs converts the host's km/h speed readings to m/s.
	kmhToMs = 1.0 / 3.6
)

// PIDOpts carries gains for a lateral or longitudinal controller.
// The planner itself steers geometrically and never evaluates these;
// they pass through to whatever actuator model the host runs.
type PIDOpts struct {
	KP float64
	KI float64
	KD float64
	Dt float64
}

// Opts are the planner tunables. Construct with DefaultOpts and adjust
// fields before handing the value to New; the planner copies it and
// never mutates it afterwards.
type Opts struct {
	Dt              float64
	TargetSpeed     float64
	Lateral         PIDOpts
	Longitudinal    PIDOpts
	BaseMinDistance float64
	DistanceRatio   float64
}

func DefaultOpts() Opts {
	return Opts{
		Dt:              DefaultDt,
		TargetSpeed:     DefaultTargetSpeed,
		Lateral:         PIDOpts{KP: 1.95, KI: 0.05, KD: 0.2, Dt: DefaultDt},
		Longitudinal:    PIDOpts{KP: 1.0, KI: 0.05, KD: 0, Dt: DefaultDt},
		BaseMinDistance: DefaultBaseMinDistance,
		DistanceRatio:   DefaultDistanceRatio,
	}
}
