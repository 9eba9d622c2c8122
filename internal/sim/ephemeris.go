package sim

import (
	"math"
	"time"
)

// SolarContext is an immutable per-tick snapshot of where the sun is.
type SolarContext struct {
	DayOfYear   int     // 1-366 within the UTC calendar year
	DayProgress float64 // fraction of the UTC day, [0,1)
	SubsolarLat float64 // solar declination, degrees
	SubsolarLon float64 // degrees, (-180, 180]
	SunDir      [3]float64
}

// ComputeSolarContext derives the solar context for a simulated UTC instant
// given as epoch milliseconds. Non-finite input is clamped to the epoch;
// the result is deterministic for any finite input.
//
// Declination and equation of time use the NOAA truncated Fourier series in
// the fractional-year angle gamma.
func ComputeSolarContext(virtualTimeMs float64) SolarContext {
	if !isFinite(virtualTimeMs) {
		virtualTimeMs = 0
	}

	t := time.UnixMilli(int64(virtualTimeMs)).UTC()
	dayOfYear := t.YearDay()
	if dayOfYear < 1 {
		dayOfYear = 1
	}

	utcHours := float64(t.Hour()) +
		float64(t.Minute())/60.0 +
		float64(t.Second())/3600.0 +
		float64(t.Nanosecond())/3.6e12

	gamma := 2.0 * math.Pi / 365.0 * (float64(dayOfYear-1) + (utcHours-12.0)/24.0)

	sin1, cos1 := math.Sincos(gamma)
	sin2, cos2 := math.Sincos(2 * gamma)
	sin3, cos3 := math.Sincos(3 * gamma)

	declRad := 0.006918 -
		0.399912*cos1 + 0.070257*sin1 -
		0.006758*cos2 + 0.000907*sin2 -
		0.002697*cos3 + 0.00148*sin3

	eqTimeMin := 229.18 * (0.000075 +
		0.001868*cos1 - 0.032077*sin1 -
		0.014615*cos2 - 0.040849*sin2)

	subsolarLat := declRad * radToDeg
	subsolarLon := NormalizeLongitude(180.0 - (utcHours*15.0 + eqTimeMin*0.25))

	x, y, z := ProjectToSphere(subsolarLat, subsolarLon, 1.0)
	n := math.Sqrt(x*x + y*y + z*z)
	if n == 0 {
		n = 1
	}

	return SolarContext{
		DayOfYear:   dayOfYear,
		DayProgress: utcHours / 24.0,
		SubsolarLat: subsolarLat,
		SubsolarLon: subsolarLon,
		SunDir:      [3]float64{x / n, y / n, z / n},
	}
}
