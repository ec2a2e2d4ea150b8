// Package storage persists walker runs as one directory per run:
// metadata.json with the scenario and metrics, trajectory.csv with the
// tick-by-tick locations.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/vvvvv1v/carla/internal/geom"
	"github.com/vvvvv1v/carla/internal/sim"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID          string             `json:"id"`
	Scenario    string             `json:"scenario"`
	Timestamp   time.Time          `json:"timestamp"`
	Dt          float64            `json:"dt"`
	Duration    float64            `json:"duration"`
	TargetSpeed float64            `json:"target_speed"`
	Steps       int                `json:"steps"`
	Completed   bool               `json:"completed"`
	Route       []geom.Vector      `json:"route,omitempty"`
	Metrics     map[string]float64 `json:"metrics"`
}

// Save writes a run directory and returns its id.
func (s *Store) Save(scenario string, dt, duration, targetSpeed float64, route []geom.Vector, result *sim.Result) (string, error) {
	runID := fmt.Sprintf("%s_%d", scenario, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:          runID,
		Scenario:    scenario,
		Timestamp:   time.Now(),
		Dt:          dt,
		Duration:    duration,
		TargetSpeed: targetSpeed,
		Steps:       result.Steps,
		Completed:   result.Completed,
		Route:       route,
		Metrics:     result.Metrics,
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "trajectory.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := w.Write([]string{"time", "x", "y", "z", "speed"}); err != nil {
		return "", err
	}

	for i, loc := range result.Locations {
		speed := 0.0
		// Locations has one more entry than Controls (initial pose).
		if i > 0 && i-1 < len(result.Controls) {
			speed = result.Controls[i-1].Speed
		}
		row := []string{
			strconv.FormatFloat(result.Times[i], 'f', 6, 64),
			strconv.FormatFloat(loc.X, 'f', 6, 64),
			strconv.FormatFloat(loc.Y, 'f', 6, 64),
			strconv.FormatFloat(loc.Z, 'f', 6, 64),
			strconv.FormatFloat(speed, 'f', 6, 64),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return runID, nil
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name(), "metadata.json"))
		if err != nil {
			continue
		}

		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}
		runs = append(runs, meta)
	}

	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// Trajectory is a loaded trajectory.csv.
type Trajectory struct {
	Times     []float64
	Locations []geom.Vector
	Speeds    []float64
}

func (s *Store) LoadTrajectory(runID string) (*Trajectory, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "trajectory.csv"))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	tr := &Trajectory{}
	for i := 1; i < len(records); i++ {
		rec := records[i]
		if len(rec) < 5 {
			continue
		}

		vals := make([]float64, 5)
		ok := true
		for j := 0; j < 5; j++ {
			v, err := strconv.ParseFloat(rec[j], 64)
			if err != nil {
				ok = false
				break
			}
			vals[j] = v
		}
		if !ok {
			continue
		}

		tr.Times = append(tr.Times, vals[0])
		tr.Locations = append(tr.Locations, geom.New(vals[1], vals[2], vals[3]))
		tr.Speeds = append(tr.Speeds, vals[4])
	}

	return tr, nil
}

// Dir returns the directory of a run, for exports placed next to it.
func (s *Store) Dir(runID string) string {
	return filepath.Join(s.baseDir, runID)
}
