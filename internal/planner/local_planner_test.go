package planner

import (
	"math"
	"testing"

	"github.com/vvvvv1v/carla/internal/geom"
)

// fakeWalker is a hand-positioned actor for planner tests.
type fakeWalker struct {
	loc   geom.Vector
	speed float64 // km/h, as the host reports it
}

func (f *fakeWalker) Location() geom.Vector { return f.loc }
func (f *fakeWalker) Speed() float64        { return f.speed }

func TestNewSeedsQueueWithCurrentLocation(t *testing.T) {
	w := &fakeWalker{loc: geom.New(3, 4, 0)}
	p := New(w, DefaultOpts())

	if p.Done() {
		t.Fatal("fresh planner should not be done")
	}
	target, ok := p.TargetLocation()
	if !ok || target != w.loc {
		t.Errorf("expected seed target %+v, got %+v (ok=%v)", w.loc, target, ok)
	}
}

func TestSetPlanCleanReplacesQueue(t *testing.T) {
	w := &fakeWalker{}
	p := New(w, DefaultOpts())

	plan := []geom.Vector{
		geom.New(10, 0, 0),
		geom.New(20, 0, 0),
		geom.New(30, 0, 0),
	}
	p.SetPlan(plan, true)

	got := p.Remaining()
	if len(got) != len(plan) {
		t.Fatalf("expected %d waypoints, got %d", len(plan), len(got))
	}
	for i := range plan {
		if got[i] != plan[i] {
			t.Errorf("waypoint %d: expected %+v, got %+v", i, plan[i], got[i])
		}
	}
}

func TestSetPlanAppendGrowsCapacity(t *testing.T) {
	w := &fakeWalker{}
	p := New(w, DefaultOpts())

	first := make([]geom.Vector, 80)
	for i := range first {
		first[i] = geom.New(float64(i), 0, 0)
	}
	second := make([]geom.Vector, 80)
	for i := range second {
		second[i] = geom.New(float64(i), 100, 0)
	}

	p.SetPlan(first, true)
	p.SetPlan(second, false)

	got := p.Remaining()
	if len(got) != 160 {
		t.Fatalf("expected 160 waypoints, got %d", len(got))
	}
	if got[0] != first[0] || got[79] != first[79] {
		t.Error("first segment lost during resize")
	}
	if got[80] != second[0] || got[159] != second[79] {
		t.Error("second segment not appended in order")
	}
}

func TestRunStepPrunesReachedWaypoints(t *testing.T) {
	w := &fakeWalker{loc: geom.New(0, 0, 0), speed: 0}
	p := New(w, DefaultOpts())

	a := geom.New(0, 0, 0) // exactly at the walker
	b := geom.New(10, 0, 0)
	c := geom.New(10, 10, 0)
	p.SetPlan([]geom.Vector{a, b, c}, true)

	ctl := p.RunStep()

	target, _ := p.TargetLocation()
	if target != b {
		t.Fatalf("expected target %+v after pruning, got %+v", b, target)
	}
	if ctl.Speed != DefaultTargetSpeed {
		t.Errorf("expected cruise speed %f, got %f", DefaultTargetSpeed, ctl.Speed)
	}
	want := b.Sub(w.loc).Unit()
	if ctl.Direction != want {
		t.Errorf("expected direction %+v, got %+v", want, ctl.Direction)
	}
}

func TestRunStepPruningIsMonotonic(t *testing.T) {
	w := &fakeWalker{loc: geom.New(0, 0, 0)}
	p := New(w, DefaultOpts())
	p.SetPlan([]geom.Vector{
		geom.New(5, 0, 0),
		geom.New(10, 0, 0),
	}, true)

	prev := len(p.Remaining())
	for i := 0; i < 20; i++ {
		p.RunStep()
		cur := len(p.Remaining())
		if cur > prev {
			t.Fatalf("queue grew during RunStep: %d -> %d", prev, cur)
		}
		prev = cur
	}
}

func TestTerminalWaypointUsesFixedRadius(t *testing.T) {
	// Walker moving fast enough for a dynamic radius of 5.0, sitting
	// 2.0 away from the sole remaining waypoint: must NOT prune.
	opts := DefaultOpts()
	opts.BaseMinDistance = 1.0
	opts.DistanceRatio = 0.5

	w := &fakeWalker{loc: geom.New(0, 0, 0), speed: 8 * 3.6} // 8 m/s
	p := New(w, opts)
	p.SetPlan([]geom.Vector{geom.New(2, 0, 0)}, true)

	p.RunStep()
	if p.Done() {
		t.Fatal("terminal waypoint pruned by dynamic radius")
	}

	// At 0.9 away it is inside the fixed 1.0 radius and gets pruned,
	// regardless of speed.
	w.loc = geom.New(1.1, 0, 0)
	ctl := p.RunStep()
	if !p.Done() {
		t.Fatal("terminal waypoint not pruned inside fixed radius")
	}
	if ctl.Speed != 0 {
		t.Errorf("expected stop command, got speed %f", ctl.Speed)
	}
}

func TestDynamicRadiusPrunesIntermediateWaypoints(t *testing.T) {
	opts := DefaultOpts()
	w := &fakeWalker{loc: geom.New(0, 0, 0), speed: 8 * 3.6} // radius 1 + 0.5*8 = 5
	p := New(w, opts)
	p.SetPlan([]geom.Vector{
		geom.New(2, 0, 0),  // within 5
		geom.New(4, 0, 0),  // within 5
		geom.New(20, 0, 0), // beyond
	}, true)

	p.RunStep()

	target, _ := p.TargetLocation()
	if target.X != 20 {
		t.Errorf("expected both near waypoints pruned, target %+v", target)
	}
}

func TestPruningStopsAtFirstUnreachedWaypoint(t *testing.T) {
	w := &fakeWalker{loc: geom.New(0, 0, 0), speed: 0}
	p := New(w, DefaultOpts())
	p.SetPlan([]geom.Vector{
		geom.New(0.5, 0, 0), // within base radius
		geom.New(10, 0, 0),  // not reached
		geom.New(0.2, 0, 0), // near, but behind an unreached one
	}, true)

	p.RunStep()

	if got := len(p.Remaining()); got != 2 {
		t.Errorf("expected 2 waypoints left, got %d", got)
	}
	target, _ := p.TargetLocation()
	if target.X != 10 {
		t.Errorf("expected target x=10, got %+v", target)
	}
}

func TestDoneAndRepeatedStop(t *testing.T) {
	w := &fakeWalker{loc: geom.New(0, 0, 0)}
	p := New(w, DefaultOpts())
	p.SetPlan(nil, true) // empty plan is valid and immediately done

	if !p.Done() {
		t.Fatal("empty plan should be done")
	}

	for i := 0; i < 3; i++ {
		ctl := p.RunStep()
		if ctl.Speed != 0 || !ctl.Direction.IsZero() {
			t.Fatalf("step %d: expected stop command, got %+v", i, ctl)
		}
	}

	// A new plan revives the planner.
	p.SetPlan([]geom.Vector{geom.New(5, 0, 0)}, true)
	if p.Done() {
		t.Fatal("planner should not be done after new plan")
	}
}

func TestDirectionIsUnitLength(t *testing.T) {
	w := &fakeWalker{loc: geom.New(1, 2, 3)}
	p := New(w, DefaultOpts())
	p.SetPlan([]geom.Vector{
		geom.New(-4, 7, 0),
		geom.New(13, -2, 5),
	}, true)

	for !p.Done() {
		ctl := p.RunStep()
		if p.Done() {
			break
		}
		if mag := ctl.Direction.Length(); math.Abs(mag-1) > 1e-9 {
			t.Fatalf("direction magnitude %f, want 1", mag)
		}
		// walk toward the target so the loop terminates
		w.loc = w.loc.Add(ctl.Direction.Scale(2))
		w.speed = ctl.Speed
	}
}

func TestSetSpeedTakesEffectNextStep(t *testing.T) {
	w := &fakeWalker{loc: geom.New(0, 0, 0)}
	p := New(w, DefaultOpts())
	p.SetPlan([]geom.Vector{geom.New(50, 0, 0)}, true)

	p.SetSpeed(4.2)
	ctl := p.RunStep()
	if ctl.Speed != 4.2 {
		t.Errorf("expected speed 4.2, got %f", ctl.Speed)
	}
}
