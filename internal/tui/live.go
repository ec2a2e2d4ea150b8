// Package tui renders walker runs in the terminal: a frame-throttled
// ANSI live view and an interactive bubbletea watch mode.
package tui

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/vvvvv1v/carla/internal/geom"
	"github.com/vvvvv1v/carla/internal/planner"
	"github.com/vvvvv1v/carla/internal/walker"
)

const (
	width       = 70
	height      = 20
	clearScreen = "\033[2J\033[H"
	hideCursor  = "\033[?25l"
	showCursor  = "\033[?25h"
)

// LiveRenderer draws a top-down view of the walker: remaining
// waypoints as 'x', the walker as 'O', and a fading trail behind it.
// It implements sim.Observer.
type LiveRenderer struct {
	planner   *planner.LocalPlanner
	frameRate int
	lastFrame time.Time
	canvas    [][]rune
	trail     []struct{ x, y int }

	minX, maxX float64
	minY, maxY float64
}

// NewLiveRenderer sizes the view to fit the start location and the
// whole route with a margin.
func NewLiveRenderer(p *planner.LocalPlanner, start geom.Vector, route []geom.Vector, frameRate int) *LiveRenderer {
	canvas := make([][]rune, height)
	for i := range canvas {
		canvas[i] = make([]rune, width)
	}

	r := &LiveRenderer{
		planner:   p,
		frameRate: frameRate,
		canvas:    canvas,
		trail:     make([]struct{ x, y int }, 0, 60),
		minX:      start.X,
		maxX:      start.X,
		minY:      start.Y,
		maxY:      start.Y,
	}
	for _, wp := range route {
		r.minX = math.Min(r.minX, wp.X)
		r.maxX = math.Max(r.maxX, wp.X)
		r.minY = math.Min(r.minY, wp.Y)
		r.maxY = math.Max(r.maxY, wp.Y)
	}

	// margin so the walker never sits on the border
	r.minX -= 2
	r.maxX += 2
	r.minY -= 2
	r.maxY += 2
	return r
}

func (r *LiveRenderer) OnStep(loc geom.Vector, u walker.Control, t float64) {
	if r.frameRate > 0 {
		if time.Since(r.lastFrame) < time.Second/time.Duration(r.frameRate) {
			return
		}
		r.lastFrame = time.Now()
	}

	fmt.Print(r.Frame(loc, u, t))
}

// Frame renders one frame to a string; the bubbletea watch model uses
// this directly.
func (r *LiveRenderer) Frame(loc geom.Vector, u walker.Control, t float64) string {
	r.clear()

	for _, wp := range r.planner.Remaining() {
		cx, cy := r.project(wp)
		r.set(cx, cy, 'x')
	}

	px, py := r.project(loc)
	r.trail = append(r.trail, struct{ x, y int }{px, py})
	if len(r.trail) > 60 {
		r.trail = r.trail[1:]
	}
	for _, pt := range r.trail {
		r.set(pt.x, pt.y, '.')
	}
	r.set(px, py, 'O')

	var b strings.Builder
	b.WriteString(clearScreen)
	b.WriteString(fmt.Sprintf("  walker  t=%.2fs  speed=%.2f  waypoints=%d\n",
		t, u.Speed, len(r.planner.Remaining())))
	b.WriteString("  " + strings.Repeat("-", width) + "\n")

	for _, row := range r.canvas {
		b.WriteString("  ")
		b.WriteString(string(row))
		b.WriteString("\n")
	}

	b.WriteString("  " + strings.Repeat("-", width) + "\n")
	if target, ok := r.planner.TargetLocation(); ok {
		b.WriteString(fmt.Sprintf("  pos=(%.1f, %.1f)  target=(%.1f, %.1f)  dist=%.2f\n",
			loc.X, loc.Y, target.X, target.Y, loc.Distance(target)))
	} else {
		b.WriteString(fmt.Sprintf("  pos=(%.1f, %.1f)  done\n", loc.X, loc.Y))
	}

	return b.String()
}

func (r *LiveRenderer) project(p geom.Vector) (int, int) {
	spanX := r.maxX - r.minX
	spanY := r.maxY - r.minY
	if spanX <= 0 {
		spanX = 1
	}
	if spanY <= 0 {
		spanY = 1
	}

	cx := int((p.X - r.minX) / spanX * float64(width-1))
	// terminal rows grow downward
	cy := int((r.maxY - p.Y) / spanY * float64(height-1))
	return cx, cy
}

func (r *LiveRenderer) clear() {
	for y := range r.canvas {
		for x := range r.canvas[y] {
			r.canvas[y][x] = ' '
		}
	}
}

func (r *LiveRenderer) set(x, y int, c rune) {
	if x >= 0 && x < width && y >= 0 && y < height {
		r.canvas[y][x] = c
	}
}

func (r *LiveRenderer) Start() { fmt.Print(hideCursor) }
func (r *LiveRenderer) Stop()  { fmt.Print(showCursor) }
