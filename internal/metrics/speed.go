package metrics

import (
	"github.com/vvvvv1v/carla/internal/geom"
	"github.com/vvvvv1v/carla/internal/walker"
)

// AverageSpeed averages the commanded speed over the run, stop ticks
// included.
type AverageSpeed struct {
	name    string
	sum     float64
	samples int
}

func NewAverageSpeed() *AverageSpeed {
	return &AverageSpeed{name: "avg_speed"}
}

func (a *AverageSpeed) Name() string { return a.name }

func (a *AverageSpeed) Observe(loc geom.Vector, u walker.Control, t float64) {
	a.sum += u.Speed
	a.samples++
}

func (a *AverageSpeed) Value() float64 {
	if a.samples == 0 {
		return 0
	}
	return a.sum / float64(a.samples)
}

func (a *AverageSpeed) Reset() {
	a.sum = 0
	a.samples = 0
}
