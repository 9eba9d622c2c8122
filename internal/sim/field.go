package sim

import "math"

// FieldSampler produces a flow velocity at a point on the globe.
// u is the zonal (east-positive) component, v the meridional
// (north-positive) component, in abstract speed units. Samplers are pure:
// identical inputs always return identical outputs.
type FieldSampler interface {
	Sample(latDeg, lonDeg float64, ctx SolarContext, seed float64) (u, v float64)
}

// WindField models a stylized global atmospheric circulation: easterly
// trade-wind bands, westerly jet streams, and polar easterlies, with the
// whole cell pattern migrating seasonally with the subsolar latitude.
//
// All band centers, widths and amplitudes are hand-tuned for visual
// plausibility, not taken from any physical dataset.
type WindField struct{}

func (WindField) Sample(latDeg, lonDeg float64, ctx SolarContext, seed float64) (u, v float64) {
	shift := ctx.SubsolarLat * 0.42
	lonRad := lonDeg * degToRad

	// Trade winds: easterly bands straddling the thermal equator.
	u = -0.52 * (gaussian(latDeg, shift+12.0, 13.0) + gaussian(latDeg, shift-12.0, 13.0))

	// Jet streams: westerly bands at +/-34 degrees (shifted), with a
	// longitude/time sinusoid giving the look of eastward-moving waves.
	jetMod := 1.0 + 0.22*math.Sin(3.0*lonRad+2.0*math.Pi*(2.0*ctx.DayProgress+seed))
	u += 0.74 * jetMod * (gaussian(latDeg, 34.0+shift, 11.0) + gaussian(latDeg, -34.0+shift, 11.0))

	// Polar easterlies.
	u -= 0.30 * (gaussian(latDeg, 68.0, 12.0) + gaussian(latDeg, -68.0, 12.0))

	// Two phase perturbations decorrelated per particle by seed.
	v = 0.18 * math.Sin(4.0*lonRad-2.0*math.Pi*(3.0*ctx.DayProgress+seed)) *
		gaussian(latDeg, shift, 30.0)
	v += 0.12 * math.Cos(2.0*lonRad+2.0*math.Pi*(ctx.DayProgress+1.7*seed)) *
		(gaussian(latDeg, 46.0, 18.0) + gaussian(latDeg, -46.0, 18.0))

	return u, v
}

// currentGyre is a localized rotational feature anchored at a fixed
// lat/lon, a western-boundary-current analogue.
type currentGyre struct {
	lonDeg   float64
	latDeg   float64
	lonWidth float64
	latWidth float64
	strength float64
}

// Fixed gyre anchors. The longitude gaussian is periodic so the features
// wrap cleanly across the antimeridian.
var currentGyres = [...]currentGyre{
	{lonDeg: -70.0, latDeg: 32.0, lonWidth: 18.0, latWidth: 12.0, strength: 0.55},
	{lonDeg: 145.0, latDeg: 30.0, lonWidth: 20.0, latWidth: 12.0, strength: 0.50},
	{lonDeg: 20.0, latDeg: -35.0, lonWidth: 16.0, latWidth: 11.0, strength: 0.45},
}

// CurrentField models a stylized surface-ocean circulation: zonal bands
// (equatorial counter-current, subtropical and subpolar flows), three fixed
// gyres, and a broad rotational band whose sign flips between hemispheres.
type CurrentField struct{}

func (CurrentField) Sample(latDeg, lonDeg float64, ctx SolarContext, seed float64) (u, v float64) {
	// Zonal bands.
	u = -0.34 * gaussian(latDeg, 0.0, 7.0)    // equatorial westward drift
	u += 0.30 * gaussian(latDeg, 6.0, 3.0)    // narrow eastward counter-current
	u += 0.46 * (gaussian(latDeg, 40.0, 9.0) + gaussian(latDeg, -42.0, 9.0))
	u -= 0.18 * (gaussian(latDeg, 62.0, 8.0) + gaussian(latDeg, -62.0, 8.0))

	// Localized gyres: a curl pattern around each anchor, weighted by a
	// periodic-longitude gaussian times a latitude gaussian.
	for _, g := range currentGyres {
		w := periodicLonGaussian(lonDeg, g.lonDeg, g.lonWidth) *
			gaussian(latDeg, g.latDeg, g.latWidth)
		if w < 1e-4 {
			continue
		}
		u -= g.strength * w * (latDeg - g.latDeg) / g.latWidth
		v += g.strength * w * lonDistance(g.lonDeg, lonDeg) / g.lonWidth
	}

	// Broad gyre band centered on |lat| = 27; rotation sense flips across
	// the equator.
	band := gaussian(math.Abs(latDeg), 27.0, 14.0)
	sign := 1.0
	if latDeg < 0 {
		sign = -1.0
	}
	v += sign * 0.22 * band *
		math.Sin(2.0*(lonDeg+40.0*ctx.DayProgress)*degToRad+2.0*math.Pi*seed)

	return u, v
}
