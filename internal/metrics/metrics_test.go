package metrics

import (
	"math"
	"testing"

	"github.com/vvvvv1v/carla/internal/geom"
	"github.com/vvvvv1v/carla/internal/planner"
	"github.com/vvvvv1v/carla/internal/walker"
)

func TestPathLength(t *testing.T) {
	m := NewPathLength()

	m.Observe(geom.New(0, 0, 0), walker.Control{}, 0)
	m.Observe(geom.New(3, 0, 0), walker.Control{}, 1)
	m.Observe(geom.New(3, 4, 0), walker.Control{}, 2)

	if got := m.Value(); math.Abs(got-7) > 1e-12 {
		t.Errorf("expected path length 7, got %f", got)
	}

	m.Reset()
	if m.Value() != 0 {
		t.Error("expected 0 after reset")
	}

	// first observation after reset contributes no distance
	m.Observe(geom.New(100, 0, 0), walker.Control{}, 3)
	if m.Value() != 0 {
		t.Error("first sample should not add distance")
	}
}

func TestAverageSpeed(t *testing.T) {
	m := NewAverageSpeed()

	if m.Value() != 0 {
		t.Error("expected 0 with no samples")
	}

	m.Observe(geom.Vector{}, walker.Control{Speed: 2}, 0)
	m.Observe(geom.Vector{}, walker.Control{Speed: 0}, 1)

	if got := m.Value(); got != 1 {
		t.Errorf("expected average 1, got %f", got)
	}
}

type stubWalker struct{ loc geom.Vector }

func (s *stubWalker) Location() geom.Vector { return s.loc }
func (s *stubWalker) Speed() float64        { return 0 }

func TestWaypointsReached(t *testing.T) {
	w := &stubWalker{loc: geom.New(0, 0, 0)}
	p := planner.New(w, planner.DefaultOpts())
	p.SetPlan([]geom.Vector{
		geom.New(0.1, 0, 0),
		geom.New(0.2, 0, 0),
		geom.New(50, 0, 0),
	}, true)

	m := NewWaypointsReached(p)
	m.Reset()

	u := p.RunStep() // prunes the two near waypoints
	m.Observe(w.loc, u, 0)

	if got := m.Value(); got != 2 {
		t.Errorf("expected 2 waypoints reached, got %f", got)
	}

	u = p.RunStep() // nothing else in range
	m.Observe(w.loc, u, 1)
	if got := m.Value(); got != 2 {
		t.Errorf("expected count to stay 2, got %f", got)
	}
}
