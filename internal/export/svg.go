// Package export renders walker trajectories to standalone SVG files.
package export

import (
	"fmt"
	"math"
	"strings"

	"github.com/vvvvv1v/carla/internal/geom"
)

const svgMargin = 20.0

// TrajectorySVG draws the traveled path as a polyline with the route
// waypoints as circles. scale is pixels per world meter.
func TrajectorySVG(trajectory, route []geom.Vector, scale float64) string {
	if scale <= 0 {
		scale = 10
	}

	minX, maxX := math.Inf(1), math.Inf(-1)
	minY, maxY := math.Inf(1), math.Inf(-1)
	expand := func(pts []geom.Vector) {
		for _, p := range pts {
			minX = math.Min(minX, p.X)
			maxX = math.Max(maxX, p.X)
			minY = math.Min(minY, p.Y)
			maxY = math.Max(maxY, p.Y)
		}
	}
	expand(trajectory)
	expand(route)

	if math.IsInf(minX, 1) {
		minX, maxX, minY, maxY = 0, 1, 0, 1
	}

	width := (maxX-minX)*scale + 2*svgMargin
	height := (maxY-minY)*scale + 2*svgMargin

	// SVG y grows downward; world y grows up
	px := func(p geom.Vector) (float64, float64) {
		return (p.X-minX)*scale + svgMargin, (maxY-p.Y)*scale + svgMargin
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height))

	if len(trajectory) > 1 {
		sb.WriteString(`<polyline fill="none" stroke="#00ff88" stroke-width="2" points="`)
		for i, p := range trajectory {
			x, y := px(p)
			if i > 0 {
				sb.WriteString(" ")
			}
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
		}
		sb.WriteString("\"/>\n")
	}

	for i, wp := range route {
		x, y := px(wp)
		sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="4" fill="none" stroke="#00ccff" stroke-width="1.5"/>
`, x, y))
		sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" fill="#666688" font-size="10">%d</text>
`, x+6, y-6, i+1))
	}

	if len(trajectory) > 0 {
		x, y := px(trajectory[0])
		sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="3" fill="#ffaa00"/>
`, x, y))
	}

	sb.WriteString("</svg>\n")
	return sb.String()
}
