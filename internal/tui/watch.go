package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vvvvv1v/carla/internal/agent"
	"github.com/vvvvv1v/carla/internal/config"
	"github.com/vvvvv1v/carla/internal/sim"
	"github.com/vvvvv1v/carla/internal/walker"
)

var (
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	greenStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	yellowStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	cyanStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
)

type tickMsg time.Time

// WatchModel is the interactive bubbletea run view: space pauses,
// +/- changes playback speed, q quits.
type WatchModel struct {
	scenario *config.Scenario
	agent    *agent.WalkerAgent
	body     *sim.Kinematic
	renderer *LiveRenderer

	lastCtl walker.Control
	simTime float64
	speedup int
	paused  bool
	done    bool
}

func NewWatch(s *config.Scenario) *WatchModel {
	opts := s.PlannerOpts()

	var body *sim.Kinematic
	if s.UseActuator {
		body = sim.NewKinematicWithActuator(s.Start.Vector(), opts.Longitudinal)
	} else {
		body = sim.NewKinematic(s.Start.Vector())
	}

	a := agent.New(body, s.TargetSpeed, opts)
	a.SetPlan(s.RouteVectors(), true)

	return &WatchModel{
		scenario: s,
		agent:    a,
		body:     body,
		renderer: NewLiveRenderer(a.Planner(), s.Start.Vector(), s.RouteVectors(), 0),
		speedup:  1,
	}
}

func (m *WatchModel) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(time.Second/30, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *WatchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.paused = !m.paused
		case "+", "=":
			if m.speedup < 16 {
				m.speedup *= 2
			}
		case "-":
			if m.speedup > 1 {
				m.speedup /= 2
			}
		}
	case tickMsg:
		if !m.paused && !m.done {
			for i := 0; i < m.speedup && !m.done; i++ {
				m.lastCtl = m.agent.RunStep()
				m.body.Apply(m.lastCtl, m.scenario.Dt)
				m.simTime += m.scenario.Dt
				m.done = m.agent.Done()
			}
		}
		return m, tick()
	}
	return m, nil
}

func (m *WatchModel) View() string {
	frame := m.renderer.Frame(m.body.Location(), m.lastCtl, m.simTime)
	frame = strings.TrimPrefix(frame, clearScreen)

	status := greenStyle.Render("running")
	if m.done {
		status = cyanStyle.Render("done")
	} else if m.paused {
		status = yellowStyle.Render("paused")
	}

	var b strings.Builder
	b.WriteString(frame)
	b.WriteString(fmt.Sprintf("  %s  %s  %s\n",
		status,
		dimStyle.Render(fmt.Sprintf("x%d", m.speedup)),
		dimStyle.Render("space pause  +/- speed  q quit")))
	return b.String()
}

// RunWatch starts the interactive view for a scenario.
func RunWatch(s *config.Scenario) error {
	p := tea.NewProgram(NewWatch(s))
	_, err := p.Run()
	return err
}
