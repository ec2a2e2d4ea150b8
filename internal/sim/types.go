package sim

import (
	"github.com/vvvvv1v/carla/internal/geom"
	"github.com/vvvvv1v/carla/internal/walker"
)

// Config drives one runner invocation.
type Config struct {
	Dt       float64
	Duration float64

	// LogEvery emits a debug log line every N ticks; 0 disables.
	LogEvery int
}

// Observer is notified after every tick with the walker's location and
// the command that was just applied.
type Observer interface {
	OnStep(loc geom.Vector, u walker.Control, t float64)
}

// Metric accumulates a scalar over a run.
type Metric interface {
	Name() string
	Observe(loc geom.Vector, u walker.Control, t float64)
	Value() float64
	Reset()
}

// Result collects the trajectory of a run.
type Result struct {
	Locations []geom.Vector
	Controls  []walker.Control
	Times     []float64
	Metrics   map[string]float64
	Steps     int

	// Completed is true when the plan drained before the duration
	// elapsed.
	Completed bool
}
