// Package sim hosts the walker agent the way the external simulation
// engine would: a kinematic body, a synchronous tick loop, and hooks
// for metrics and live observers.
package sim

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/vvvvv1v/carla/internal/agent"
	"github.com/vvvvv1v/carla/internal/geom"
	"github.com/vvvvv1v/carla/internal/walker"
)

// Runner drives an agent against a kinematic body once per tick until
// the plan drains or the configured duration elapses.
type Runner struct {
	agent     *agent.WalkerAgent
	body      *Kinematic
	metrics   []Metric
	observers []Observer
}

func New(a *agent.WalkerAgent, body *Kinematic) *Runner {
	return &Runner{
		agent:     a,
		body:      body,
		metrics:   make([]Metric, 0),
		observers: make([]Observer, 0),
	}
}

func (r *Runner) AddMetric(m Metric)     { r.metrics = append(r.metrics, m) }
func (r *Runner) AddObserver(o Observer) { r.observers = append(r.observers, o) }

func (r *Runner) validateConfig(cfg Config) error {
	if cfg.Dt <= 0 {
		return fmt.Errorf("dt must be positive, got %f", cfg.Dt)
	}
	if cfg.Duration <= 0 {
		return fmt.Errorf("duration must be positive, got %f", cfg.Duration)
	}
	return nil
}

// Run executes the tick loop. The returned result holds the trajectory
// up to the point of completion, timeout or cancellation.
func (r *Runner) Run(ctx context.Context, cfg Config) (*Result, error) {
	if err := r.validateConfig(cfg); err != nil {
		return nil, err
	}

	steps := int(cfg.Duration / cfg.Dt)
	result := &Result{
		Locations: make([]geom.Vector, 0, steps+1),
		Controls:  make([]walker.Control, 0, steps),
		Times:     make([]float64, 0, steps+1),
		Metrics:   make(map[string]float64),
	}

	for _, m := range r.metrics {
		m.Reset()
	}

	t := 0.0
	result.Locations = append(result.Locations, r.body.Location())
	result.Times = append(result.Times, t)

	for i := 0; i < steps; i++ {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		u := r.agent.RunStep()
		r.body.Apply(u, cfg.Dt)
		t += cfg.Dt
		result.Steps++

		loc := r.body.Location()
		for _, m := range r.metrics {
			m.Observe(loc, u, t)
		}
		for _, obs := range r.observers {
			obs.OnStep(loc, u, t)
		}

		result.Locations = append(result.Locations, loc)
		result.Controls = append(result.Controls, u)
		result.Times = append(result.Times, t)

		if cfg.LogEvery > 0 && result.Steps%cfg.LogEvery == 0 {
			slog.Debug("walker tick",
				"step", result.Steps,
				"t", t,
				"x", loc.X,
				"y", loc.Y,
				"speed", u.Speed)
		}

		if r.agent.Done() {
			result.Completed = true
			break
		}
	}

	for _, m := range r.metrics {
		result.Metrics[m.Name()] = m.Value()
	}

	return result, nil
}
