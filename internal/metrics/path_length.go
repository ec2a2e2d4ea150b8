package metrics

import (
	"github.com/vvvvv1v/carla/internal/geom"
	"github.com/vvvvv1v/carla/internal/walker"
)

// PathLength accumulates the distance the walker actually traveled.
type PathLength struct {
	name   string
	prev   geom.Vector
	total  float64
	primed bool
}

func NewPathLength() *PathLength {
	return &PathLength{name: "path_length"}
}

func (p *PathLength) Name() string { return p.name }

func (p *PathLength) Observe(loc geom.Vector, u walker.Control, t float64) {
	if p.primed {
		p.total += loc.Distance(p.prev)
	}
	p.prev = loc
	p.primed = true
}

func (p *PathLength) Value() float64 {
	return p.total
}

func (p *PathLength) Reset() {
	p.total = 0
	p.primed = false
}
