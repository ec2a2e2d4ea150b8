package config

// Presets are ready-made scenarios for the CLI. Values not set here
// fall back to the defaults when fetched through GetPreset.
var Presets = map[string]*Scenario{
	"stroll": {
		Name:        "stroll",
		Duration:    60,
		TargetSpeed: 1.0,
		Start:       Point{X: 0, Y: 0},
		Route: []Point{
			{X: 10, Y: 0},
			{X: 20, Y: 5},
			{X: 30, Y: 5},
		},
	},
	"commute": {
		Name:          "commute",
		Duration:      90,
		TargetSpeed:   2.2,
		DistanceRatio: 0.8,
		Start:         Point{X: 0, Y: 0},
		Route: []Point{
			{X: 15, Y: 0},
			{X: 15, Y: 20},
			{X: 40, Y: 20},
			{X: 40, Y: 35},
			{X: 60, Y: 35},
		},
	},
	"loop": {
		Name:        "loop",
		Duration:    180,
		TargetSpeed: 1.4,
		Start:       Point{X: 0, Y: 0},
		Route: []Point{
			{X: 20, Y: 0},
			{X: 20, Y: 20},
			{X: 0, Y: 20},
			{X: 0, Y: 1},
		},
	},
	"crossing": {
		Name:        "crossing",
		Duration:    45,
		TargetSpeed: 1.8,
		UseActuator: true,
		Start:       Point{X: -12, Y: 3},
		Route: []Point{
			{X: -6, Y: 3},
			{X: 0, Y: 3},
			{X: 6, Y: 3},
			{X: 12, Y: 3},
		},
	},
}

// GetPreset returns a preset layered over the defaults, or nil when
// the name is unknown.
func GetPreset(name string) *Scenario {
	p, ok := Presets[name]
	if !ok {
		return nil
	}

	s := DefaultScenario()
	s.Name = p.Name
	if p.Dt != 0 {
		s.Dt = p.Dt
	}
	if p.Duration != 0 {
		s.Duration = p.Duration
	}
	if p.TargetSpeed != 0 {
		s.TargetSpeed = p.TargetSpeed
	}
	if p.BaseMinDistance != 0 {
		s.BaseMinDistance = p.BaseMinDistance
	}
	if p.DistanceRatio != 0 {
		s.DistanceRatio = p.DistanceRatio
	}
	s.UseActuator = p.UseActuator
	s.Start = p.Start
	s.Route = append([]Point(nil), p.Route...)
	return s
}

// ListPresets returns the preset names in no particular order.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
