package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vvvvv1v/carla/internal/geom"
	"github.com/vvvvv1v/carla/internal/planner"
)

const (
	DefaultDt          = 0.05
	DefaultDuration    = 120.0
	DefaultTargetSpeed = 1.4 // typical pedestrian pace, m/s
)

// Point is a yaml-friendly world coordinate.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

func (p Point) Vector() geom.Vector {
	return geom.New(p.X, p.Y, p.Z)
}

type GainsConfig struct {
	Kp float64 `yaml:"kp"`
	Ki float64 `yaml:"ki"`
	Kd float64 `yaml:"kd"`
}

// Scenario describes one walker run: where the actor starts, the route
// it follows, and the planner tunables.
type Scenario struct {
	Name            string      `yaml:"name"`
	Dt              float64     `yaml:"dt"`
	Duration        float64     `yaml:"duration"`
	TargetSpeed     float64     `yaml:"target_speed"`
	BaseMinDistance float64     `yaml:"base_min_distance"`
	DistanceRatio   float64     `yaml:"distance_ratio"`
	Lateral         GainsConfig `yaml:"lateral"`
	Longitudinal    GainsConfig `yaml:"longitudinal"`
	UseActuator     bool        `yaml:"use_actuator"`
	Start           Point       `yaml:"start"`
	Route           []Point     `yaml:"route"`
}

func DefaultScenario() *Scenario {
	opts := planner.DefaultOpts()
	return &Scenario{
		Name:            "walk",
		Dt:              DefaultDt,
		Duration:        DefaultDuration,
		TargetSpeed:     DefaultTargetSpeed,
		BaseMinDistance: opts.BaseMinDistance,
		DistanceRatio:   opts.DistanceRatio,
		Lateral:         GainsConfig{Kp: opts.Lateral.KP, Ki: opts.Lateral.KI, Kd: opts.Lateral.KD},
		Longitudinal:    GainsConfig{Kp: opts.Longitudinal.KP, Ki: opts.Longitudinal.KI, Kd: opts.Longitudinal.KD},
	}
}

// Load reads a scenario file on top of the defaults, so files only
// mention what they change. Unrecognized keys are ignored.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	s := DefaultScenario()
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("parse scenario %s: %w", path, err)
	}
	return s, nil
}

func Save(path string, s *Scenario) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// PlannerOpts converts the scenario tunables into planner options.
func (s *Scenario) PlannerOpts() planner.Opts {
	return planner.Opts{
		Dt:              s.Dt,
		TargetSpeed:     s.TargetSpeed,
		Lateral:         planner.PIDOpts{KP: s.Lateral.Kp, KI: s.Lateral.Ki, KD: s.Lateral.Kd, Dt: s.Dt},
		Longitudinal:    planner.PIDOpts{KP: s.Longitudinal.Kp, KI: s.Longitudinal.Ki, KD: s.Longitudinal.Kd, Dt: s.Dt},
		BaseMinDistance: s.BaseMinDistance,
		DistanceRatio:   s.DistanceRatio,
	}
}

// RouteVectors converts the route into world-space locations.
func (s *Scenario) RouteVectors() []geom.Vector {
	route := make([]geom.Vector, len(s.Route))
	for i, p := range s.Route {
		route[i] = p.Vector()
	}
	return route
}
