package sim

import (
	"fmt"
	"math/rand"
	"time"
)

// GlobeRadius is the world-space radius of the globe mesh; overlay layers
// sit slightly above it.
const GlobeRadius = 100.0

// statusInterval throttles status readout rebuilds independently of the
// frame rate.
const statusInterval = 0.2

// fixedSunDir is used while solar-driven lighting is toggled off, chosen to
// keep the default camera view lit. Unit vector of (-0.8, 0.5, 0.6).
var fixedSunDir = [3]float64{-0.71554, 0.44721, 0.53666}

// Toggles are the four independent subsystem switches exposed to the UI.
type Toggles struct {
	Solar    bool
	Wind     bool
	Current  bool
	Coupling bool
}

// DensityTier selects per-layer particle counts by device capability.
type DensityTier string

const (
	DensityLow    DensityTier = "low"
	DensityMedium DensityTier = "medium"
	DensityHigh   DensityTier = "high"
)

func (d DensityTier) counts() (wind, current int) {
	switch d {
	case DensityLow:
		return 900, 600
	case DensityHigh:
		return 3600, 2400
	default:
		return 1800, 1200
	}
}

// Options configure a new Simulation.
type Options struct {
	StartTime time.Time
	TimeScale float64
	Density   DensityTier
	Toggles   Toggles
	Seed      int64 // particle placement seed; 0 means a fixed default
}

// Simulation composes the clock, ephemeris, both flow layers and the
// coupling controller, and runs them in strict order each tick. All state
// lives here; the tick body is the only writer, so no locking is needed.
type Simulation struct {
	Clock   *Clock
	Wind    *FlowLayer
	Current *FlowLayer

	Toggles Toggles
	Solar   SolarContext
	Visuals VisualParams

	// CloudAngle is the accumulated cloud layer rotation in radians.
	CloudAngle float64

	statusElapsed float64
	statusClock   string
	statusFlow    string
}

// New builds a simulation with both overlay layers populated.
func New(opts Options) *Simulation {
	if opts.StartTime.IsZero() {
		opts.StartTime = time.Now().UTC()
	}
	if opts.TimeScale <= 0 {
		opts.TimeScale = 1
	}
	seed := opts.Seed
	if seed == 0 {
		seed = 1
	}
	rng := rand.New(rand.NewSource(seed))
	windCount, currentCount := opts.Density.counts()

	s := &Simulation{
		Clock:   NewClock(opts.StartTime, opts.TimeScale),
		Toggles: opts.Toggles,
		Wind: NewFlowLayer(LayerConfig{
			ParticleCount:  windCount,
			Radius:         GlobeRadius * 1.018,
			SpeedToDegrees: 9.0,
			LineLength:     2.2,
			SpeedRange:     1.1,
			ColorLow:       [3]float32{0.55, 0.75, 0.95},
			ColorHigh:      [3]float32{1.0, 1.0, 1.0},
			Sampler:        WindField{},
		}, rng),
		Current: NewFlowLayer(LayerConfig{
			ParticleCount:  currentCount,
			Radius:         GlobeRadius * 1.006,
			SpeedToDegrees: 4.0,
			LineLength:     1.6,
			SpeedRange:     0.8,
			ColorLow:       [3]float32{0.05, 0.35, 0.55},
			ColorHigh:      [3]float32{0.35, 0.95, 0.85},
			Sampler:        CurrentField{},
		}, rng),
	}
	s.Wind.Enabled = opts.Toggles.Wind
	s.Current.Enabled = opts.Toggles.Current

	// Prime the outputs so consumers see valid values before the first tick.
	s.Solar = ComputeSolarContext(s.Clock.VirtualTimeMs())
	s.Visuals = DeriveVisuals(s.Toggles.Coupling, s.Clock.TimeScale(), s.Wind, s.Current)
	s.rebuildStatus()

	return s
}

// Step runs one tick: clock advance, solar context, both layer updates,
// coupling, throttled readout. wallDt is the elapsed wall-clock time in
// seconds since the previous tick.
func (s *Simulation) Step(wallDt float64) {
	dt := s.Clock.Advance(wallDt)

	s.Solar = ComputeSolarContext(s.Clock.VirtualTimeMs())

	s.Wind.Enabled = s.Toggles.Wind
	s.Current.Enabled = s.Toggles.Current
	s.Wind.Update(dt, s.Solar)
	s.Current.Update(dt, s.Solar)

	s.Visuals = DeriveVisuals(s.Toggles.Coupling, s.Clock.TimeScale(), s.Wind, s.Current)
	s.CloudAngle += s.Visuals.CloudAngularSpeed * dt

	s.statusElapsed += dt
	if s.statusElapsed >= statusInterval {
		s.statusElapsed = 0
		s.rebuildStatus()
	}
}

// SunDirection returns the lighting direction: the ephemeris output when
// solar-driven lighting is on, a fixed direction otherwise.
func (s *Simulation) SunDirection() [3]float64 {
	if s.Toggles.Solar {
		return s.Solar.SunDir
	}
	return fixedSunDir
}

// CycleTimeScale moves to the next (or previous) entry of TimeScales.
func (s *Simulation) CycleTimeScale(forward bool) {
	cur := s.Clock.TimeScale()
	idx := 0
	for i, ts := range TimeScales {
		if ts == cur {
			idx = i
			break
		}
	}
	if forward {
		idx = (idx + 1) % len(TimeScales)
	} else {
		idx = (idx - 1 + len(TimeScales)) % len(TimeScales)
	}
	s.Clock.SetTimeScale(TimeScales[idx])
}

// StatusLines returns the throttled human-readable readout: the simulated
// clock line and the flow statistics line.
func (s *Simulation) StatusLines() (clock, flow string) {
	return s.statusClock, s.statusFlow
}

func (s *Simulation) rebuildStatus() {
	t := s.Clock.Now()
	s.statusClock = fmt.Sprintf("UTC %s | Subsolar %+.1f°, %+.1f°",
		t.Format("2006-01-02 15:04:05"), s.Solar.SubsolarLat, s.Solar.SubsolarLon)

	windPart := "OFF"
	if s.Toggles.Wind {
		windPart = fmt.Sprintf("%.2f", s.Wind.SpeedFactor())
	}
	currentPart := "OFF"
	if s.Toggles.Current {
		currentPart = fmt.Sprintf("%.2f", s.Current.SpeedFactor())
	}
	s.statusFlow = fmt.Sprintf("Wind %s | Current %s (relative)", windPart, currentPart)
}
