package sim

import (
	"strings"
	"testing"
	"time"
)

func testSim() *Simulation {
	return New(Options{
		StartTime: time.Date(2024, 6, 21, 12, 0, 0, 0, time.UTC),
		TimeScale: 1,
		Density:   DensityLow,
		Toggles:   Toggles{Solar: true, Wind: true, Current: true, Coupling: true},
		Seed:      11,
	})
}

func TestStepPipeline(t *testing.T) {
	s := testSim()
	s.Step(0.016)

	if s.Wind.MeanSpeed == 0 {
		t.Error("wind layer did not aggregate after step")
	}
	if s.Current.MeanSpeed == 0 {
		t.Error("current layer did not aggregate after step")
	}
	if s.Visuals.CloudAngularSpeed <= 0 {
		t.Errorf("cloud angular speed = %v, want positive", s.Visuals.CloudAngularSpeed)
	}
	if s.CloudAngle <= 0 {
		t.Error("cloud angle did not accumulate")
	}
}

func TestSolarToggleSelectsSunDirection(t *testing.T) {
	s := testSim()
	s.Step(0.016)

	dynamic := s.SunDirection()
	s.Toggles.Solar = false
	fixed := s.SunDirection()

	if fixed != fixedSunDir {
		t.Errorf("solar off sun direction = %v, want fixed %v", fixed, fixedSunDir)
	}
	if dynamic == fixed {
		t.Error("solar on returned the fixed direction")
	}
}

func TestWindToggleFreezesLayer(t *testing.T) {
	s := testSim()
	s.Step(0.016)

	s.Toggles.Wind = false
	before := make([]FlowParticle, len(s.Wind.Particles))
	copy(before, s.Wind.Particles)

	for i := 0; i < 100; i++ {
		s.Step(0.016)
	}
	if s.Wind.MeanSpeed != 0 {
		t.Errorf("disabled wind layer mean speed = %v, want 0", s.Wind.MeanSpeed)
	}
	for i := range before {
		if before[i] != s.Wind.Particles[i] {
			t.Fatalf("wind particle %d moved while toggled off", i)
		}
	}
	// The current layer kept advecting.
	if s.Current.MeanSpeed == 0 {
		t.Error("current layer froze along with wind")
	}
}

func TestStatusReadoutFormat(t *testing.T) {
	s := testSim()
	clock, flow := s.StatusLines()

	if !strings.HasPrefix(clock, "UTC 2024-06-21 12:00:00 | Subsolar ") {
		t.Errorf("unexpected clock line %q", clock)
	}
	if !strings.Contains(clock, "°") {
		t.Errorf("clock line missing degree marks: %q", clock)
	}
	if !strings.HasPrefix(flow, "Wind ") || !strings.HasSuffix(flow, "(relative)") {
		t.Errorf("unexpected flow line %q", flow)
	}

	s.Toggles.Wind = false
	s.Toggles.Current = false
	// Run past the readout throttle so the lines refresh.
	for i := 0; i < 20; i++ {
		s.Step(0.05)
	}
	_, flow = s.StatusLines()
	if flow != "Wind OFF | Current OFF (relative)" {
		t.Errorf("flow line with overlays off = %q", flow)
	}
}

func TestStatusReadoutThrottled(t *testing.T) {
	s := testSim()
	clock0, _ := s.StatusLines()
	s.Step(0.016) // under the 0.2s throttle
	clock1, _ := s.StatusLines()
	if clock0 != clock1 {
		t.Error("status readout refreshed before the throttle interval")
	}
}

func TestCycleTimeScale(t *testing.T) {
	s := testSim()
	if s.Clock.TimeScale() != 1 {
		t.Fatalf("initial time scale %v", s.Clock.TimeScale())
	}
	s.CycleTimeScale(true)
	if s.Clock.TimeScale() != 60 {
		t.Errorf("after forward cycle: %v, want 60", s.Clock.TimeScale())
	}
	s.CycleTimeScale(false)
	s.CycleTimeScale(false)
	if s.Clock.TimeScale() != 86400 {
		t.Errorf("backward wrap gave %v, want 86400", s.Clock.TimeScale())
	}
}

func TestDensityTiers(t *testing.T) {
	cases := []struct {
		tier          DensityTier
		wind, current int
	}{
		{DensityLow, 900, 600},
		{DensityMedium, 1800, 1200},
		{DensityHigh, 3600, 2400},
		{DensityTier("unknown"), 1800, 1200},
	}
	for _, c := range cases {
		w, cur := c.tier.counts()
		if w != c.wind || cur != c.current {
			t.Errorf("%s tier counts = (%d, %d), want (%d, %d)", c.tier, w, cur, c.wind, c.current)
		}
	}
}
