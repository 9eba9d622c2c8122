// Package main is a terminal monitor that runs the simulation core headless.
package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/greaterbit/globesim/internal/monitor"
	"github.com/greaterbit/globesim/internal/sim"
)

func main() {
	timeScale := flag.Float64("timescale", 60, "wall-to-simulated time multiplier (> 0)")
	density := flag.String("density", "low", "particle density tier: low, medium, high")
	seed := flag.Int64("seed", 0, "particle placement seed, 0 = default")
	flag.Parse()

	if *timeScale <= 0 {
		fmt.Fprintln(os.Stderr, "Error: -timescale must be > 0")
		os.Exit(1)
	}

	s := sim.New(sim.Options{
		TimeScale: *timeScale,
		Density:   sim.DensityTier(*density),
		Toggles:   sim.Toggles{Solar: true, Wind: true, Current: true, Coupling: true},
		Seed:      *seed,
	})

	p := tea.NewProgram(monitor.NewModel(s), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running monitor: %v\n", err)
		os.Exit(1)
	}
}
