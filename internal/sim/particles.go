package sim

import (
	"math"
	"math/rand"
)

// FlowParticle is one advected tracer. Latitude/longitude are mutated in
// place every tick; the seed is fixed at creation and decorrelates the
// samplers' periodic terms between particles.
type FlowParticle struct {
	Lat  float64
	Lon  float64
	Seed float64
}

// LayerConfig holds the construction-time parameters of a flow layer.
type LayerConfig struct {
	ParticleCount  int
	Radius         float64 // sphere radius the segments are projected onto
	SpeedToDegrees float64 // degrees of drift per speed unit per second
	LineLength     float64 // base streak length, degrees
	SpeedRange     float64 // normalization divisor for color and coupling, > 0
	ColorLow       [3]float32
	ColorHigh      [3]float32
	Sampler        FieldSampler
}

// FlowLayer owns a fixed set of particles and the GPU-ready line-segment
// buffers rebuilt from them each tick. Buffers are allocated once at
// construction and reused; Positions/Colors expose read-only views.
type FlowLayer struct {
	cfg       LayerConfig
	Particles []FlowParticle
	Enabled   bool

	// Per-tick aggregates, overwritten by Update. Frozen at their last
	// value while the layer is disabled.
	MeanSpeed float64
	MeanZonal float64

	positions []float32 // 2 endpoints x 3 components per particle
	colors    []float32
}

// NewFlowLayer creates a layer with particles spread uniformly over the
// sphere (cosine-weighted latitude, clamped to the particle band).
func NewFlowLayer(cfg LayerConfig, rng *rand.Rand) *FlowLayer {
	if cfg.SpeedRange <= 0 {
		cfg.SpeedRange = 1
	}
	l := &FlowLayer{
		cfg:       cfg,
		Particles: make([]FlowParticle, cfg.ParticleCount),
		Enabled:   true,
		positions: make([]float32, 2*cfg.ParticleCount*3),
		colors:    make([]float32, 2*cfg.ParticleCount*3),
	}
	for i := range l.Particles {
		lat := math.Asin(2.0*rng.Float64()-1.0) * radToDeg
		l.Particles[i] = FlowParticle{
			Lat:  clamp(lat, -maxParticleLat, maxParticleLat),
			Lon:  NormalizeLongitude(rng.Float64()*360.0 - 180.0),
			Seed: rng.Float64(),
		}
	}
	return l
}

// Config returns the layer's construction parameters.
func (l *FlowLayer) Config() LayerConfig { return l.cfg }

// Positions returns the interleaved segment endpoint positions. The slice
// is owned by the layer; callers must treat it as read-only.
func (l *FlowLayer) Positions() []float32 { return l.positions }

// Colors returns the interleaved per-endpoint colors, same ownership rules
// as Positions.
func (l *FlowLayer) Colors() []float32 { return l.colors }

// SpeedFactor is the layer's mean speed normalized into [0,1] against its
// configured range, the quantity the coupling controller consumes.
func (l *FlowLayer) SpeedFactor() float64 {
	return clamp(l.MeanSpeed/l.cfg.SpeedRange, 0, 1)
}

// Update samples the flow field at every particle, advects it, and rebuilds
// the position and color buffers. dt is the clamped wall-clock delta in
// seconds. A disabled layer performs no advection and reports zero
// aggregates while keeping particle positions frozen.
func (l *FlowLayer) Update(dt float64, ctx SolarContext) {
	if !l.Enabled {
		l.MeanSpeed = 0
		l.MeanZonal = 0
		return
	}

	sumSpeed := 0.0
	sumZonal := 0.0
	drift := l.cfg.SpeedToDegrees * dt

	for i := range l.Particles {
		p := &l.Particles[i]

		u, v := l.cfg.Sampler.Sample(p.Lat, p.Lon, ctx, p.Seed)
		speed := math.Hypot(u, v)
		sumSpeed += speed
		sumZonal += u

		// Longitude advection shrinks with cos(lat); the floor keeps the
		// division sane near the poles.
		cosLat := math.Cos(p.Lat * degToRad)
		if cosLat < 0.2 {
			cosLat = 0.2
		}

		p.Lat += v * drift
		p.Lon += u * drift / cosLat

		// Reflect off the poles with an antipodal wrap so particles
		// neither stick at a pole nor cross it discontinuously.
		if p.Lat > 84.0 {
			p.Lat = 84.0 - (p.Lat - 84.0)
			p.Lon += 180.0
		} else if p.Lat < -84.0 {
			p.Lat = -84.0 - (p.Lat + 84.0)
			p.Lon += 180.0
		}
		p.Lat = clamp(p.Lat, -maxParticleLat, maxParticleLat)
		p.Lon = NormalizeLongitude(p.Lon)

		// Streak endpoint further along the instantaneous velocity;
		// faster particles draw longer segments.
		streak := l.cfg.LineLength * (0.45 + speed*0.7)
		endLat := clamp(p.Lat+v*streak, -maxParticleLat, maxParticleLat)
		endLon := NormalizeLongitude(p.Lon + u*streak/cosLat)

		x0, y0, z0 := ProjectToSphere(p.Lat, p.Lon, l.cfg.Radius)
		x1, y1, z1 := ProjectToSphere(endLat, endLon, l.cfg.Radius)

		pi := i * 6
		l.positions[pi+0] = float32(x0)
		l.positions[pi+1] = float32(y0)
		l.positions[pi+2] = float32(z0)
		l.positions[pi+3] = float32(x1)
		l.positions[pi+4] = float32(y1)
		l.positions[pi+5] = float32(z1)

		f := float32(clamp(speed/l.cfg.SpeedRange, 0, 1))
		r := l.cfg.ColorLow[0] + (l.cfg.ColorHigh[0]-l.cfg.ColorLow[0])*f
		g := l.cfg.ColorLow[1] + (l.cfg.ColorHigh[1]-l.cfg.ColorLow[1])*f
		b := l.cfg.ColorLow[2] + (l.cfg.ColorHigh[2]-l.cfg.ColorLow[2])*f
		l.colors[pi+0] = r
		l.colors[pi+1] = g
		l.colors[pi+2] = b
		l.colors[pi+3] = r
		l.colors[pi+4] = g
		l.colors[pi+5] = b
	}

	n := float64(len(l.Particles))
	if n > 0 {
		l.MeanSpeed = sumSpeed / n
		l.MeanZonal = sumZonal / n
	}
}
