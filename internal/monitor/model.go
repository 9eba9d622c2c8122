// Package monitor is a terminal front end for the simulation core. It runs
// the same clock, ephemeris, flow layers and coupling as the GL client, with
// the readouts rendered as text instead of a globe.
package monitor

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/greaterbit/globesim/internal/sim"
)

// tickInterval drives the headless simulation at roughly 30 updates/second.
const tickInterval = time.Second / 30

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Model is the bubbletea model wrapping a Simulation.
type Model struct {
	sim      *sim.Simulation
	lastTick time.Time
	width    int
}

// NewModel creates a monitor around an already-configured simulation.
func NewModel(s *sim.Simulation) Model {
	return Model{sim: s, lastTick: time.Now()}
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tickMsg:
		now := time.Time(msg)
		dt := now.Sub(m.lastTick).Seconds()
		m.lastTick = now
		m.sim.Step(dt)
		return m, tick()

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "1":
			m.sim.Toggles.Solar = !m.sim.Toggles.Solar
		case "2":
			m.sim.Toggles.Wind = !m.sim.Toggles.Wind
		case "3":
			m.sim.Toggles.Current = !m.sim.Toggles.Current
		case "4":
			m.sim.Toggles.Coupling = !m.sim.Toggles.Coupling
		case "]":
			m.sim.CycleTimeScale(true)
		case "[":
			m.sim.CycleTimeScale(false)
		}
		return m, nil
	}
	return m, nil
}

func (m Model) View() string {
	clock, flow := m.sim.StatusLines()

	clockPane := paneStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		labelStyle.Render("Simulated clock"),
		valueStyle.Render(clock),
		labelStyle.Render(fmt.Sprintf("Time scale %gx", m.sim.Clock.TimeScale())),
	))

	flowPane := paneStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		labelStyle.Render("Flow statistics"),
		valueStyle.Render(flow),
		labelStyle.Render(fmt.Sprintf("Wind zonal %+.3f | Current zonal %+.3f",
			m.sim.Wind.MeanZonal, m.sim.Current.MeanZonal)),
	))

	visualsPane := paneStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		labelStyle.Render("Derived visuals"),
		valueStyle.Render(fmt.Sprintf("Cloud speed %.4f rad/s", m.sim.Visuals.CloudAngularSpeed)),
		valueStyle.Render(fmt.Sprintf("Ocean shininess %.1f | Specular %.2f %.2f %.2f",
			m.sim.Visuals.OceanShininess,
			m.sim.Visuals.OceanSpecular[0],
			m.sim.Visuals.OceanSpecular[1],
			m.sim.Visuals.OceanSpecular[2])),
	))

	toggles := lipgloss.JoinHorizontal(lipgloss.Top,
		toggleBadge("1 Solar", m.sim.Toggles.Solar),
		toggleBadge("2 Wind", m.sim.Toggles.Wind),
		toggleBadge("3 Current", m.sim.Toggles.Current),
		toggleBadge("4 Coupling", m.sim.Toggles.Coupling),
	)

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("GlobeSim monitor"),
		clockPane,
		flowPane,
		visualsPane,
		paneStyle.Render(toggles),
		helpStyle.Render("1-4 toggle subsystems · [ ] cycle time scale · q quit"),
	)
}

func toggleBadge(label string, on bool) string {
	if on {
		return onStyle.Render(" " + label + ": ON  ")
	}
	return offStyle.Render(" " + label + ": OFF  ")
}
