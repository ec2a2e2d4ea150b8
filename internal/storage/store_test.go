package storage

import (
	"testing"

	"github.com/vvvvv1v/carla/internal/geom"
	"github.com/vvvvv1v/carla/internal/sim"
	"github.com/vvvvv1v/carla/internal/walker"
)

func sampleResult() *sim.Result {
	return &sim.Result{
		Locations: []geom.Vector{
			geom.New(0, 0, 0),
			geom.New(0.1, 0, 0),
			geom.New(0.2, 0, 0),
		},
		Controls: []walker.Control{
			{Direction: geom.New(1, 0, 0), Speed: 2},
			{Direction: geom.New(1, 0, 0), Speed: 2},
		},
		Times:     []float64{0, 0.05, 0.1},
		Metrics:   map[string]float64{"path_length": 0.2},
		Steps:     2,
		Completed: true,
	}
}

func TestSaveAndLoad(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatal(err)
	}

	runID, err := st.Save("stroll", 0.05, 60, 2.0, []geom.Vector{geom.New(0.2, 0, 0)}, sampleResult())
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	meta, err := st.Load(runID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if meta.Scenario != "stroll" || !meta.Completed || meta.Steps != 2 {
		t.Errorf("unexpected metadata: %+v", meta)
	}
	if meta.Metrics["path_length"] != 0.2 {
		t.Errorf("metrics not persisted: %+v", meta.Metrics)
	}
	if len(meta.Route) != 1 || meta.Route[0].X != 0.2 {
		t.Errorf("route not persisted: %+v", meta.Route)
	}
}

func TestLoadTrajectory(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatal(err)
	}

	runID, err := st.Save("stroll", 0.05, 60, 2.0, []geom.Vector{geom.New(0.2, 0, 0)}, sampleResult())
	if err != nil {
		t.Fatal(err)
	}

	tr, err := st.LoadTrajectory(runID)
	if err != nil {
		t.Fatalf("load trajectory failed: %v", err)
	}

	if len(tr.Locations) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(tr.Locations))
	}
	if tr.Locations[2].X != 0.2 {
		t.Errorf("expected final x 0.2, got %f", tr.Locations[2].X)
	}
	// initial pose has no command yet
	if tr.Speeds[0] != 0 || tr.Speeds[1] != 2 {
		t.Errorf("unexpected speeds: %v", tr.Speeds)
	}
}

func TestListEmptyAndPopulated(t *testing.T) {
	st := New(t.TempDir())

	runs, err := st.List()
	if err != nil {
		t.Fatalf("list on missing dir failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected no runs, got %d", len(runs))
	}

	if err := st.Init(); err != nil {
		t.Fatal(err)
	}
	if _, err := st.Save("loop", 0.05, 60, 1.4, nil, sampleResult()); err != nil {
		t.Fatal(err)
	}

	runs, err = st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 1 || runs[0].Scenario != "loop" {
		t.Errorf("unexpected runs: %+v", runs)
	}
}
