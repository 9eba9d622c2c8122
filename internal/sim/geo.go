// Package sim implements the procedural geophysical simulation driving the
// globe: a solar ephemeris, wind and ocean-current flow fields, particle
// advection layers, and the coupling that derives visual parameters from
// aggregated flow statistics. The package is purely numeric and has no
// rendering imports; the render bridge consumes its outputs.
package sim

import "math"

const degToRad = math.Pi / 180.0
const radToDeg = 180.0 / math.Pi

// maxParticleLat bounds particle latitude; the pole reflection in the
// advection step keeps particles below it.
const maxParticleLat = 85.0

// NormalizeLongitude wraps any longitude into (-180, 180].
func NormalizeLongitude(lonDeg float64) float64 {
	lon := math.Mod(lonDeg, 360.0)
	if lon <= -180.0 {
		lon += 360.0
	} else if lon > 180.0 {
		lon -= 360.0
	}
	return lon
}

// lonDistance returns the shortest signed angular distance from a to b in
// degrees, in (-180, 180].
func lonDistance(a, b float64) float64 {
	return NormalizeLongitude(b - a)
}

// gaussian is a bell weighting centered on center with the given width.
func gaussian(x, center, width float64) float64 {
	d := (x - center) / width
	return math.Exp(-d * d)
}

// periodicLonGaussian is gaussian evaluated on the shortest angular distance
// around the 360-degree longitude axis, so features near the antimeridian
// stay continuous.
func periodicLonGaussian(lonDeg, centerDeg, width float64) float64 {
	d := lonDistance(centerDeg, lonDeg) / width
	return math.Exp(-d * d)
}

// ProjectToSphere maps latitude/longitude in degrees to a point on a sphere
// of the given radius, using the same axis convention as the globe mesh:
// +Y through the north pole, lon 0 on the -X side, lon 90E toward +Z.
func ProjectToSphere(latDeg, lonDeg, radius float64) (x, y, z float64) {
	lat := latDeg * degToRad
	lon := lonDeg * degToRad
	cosLat := math.Cos(lat)
	x = -radius * cosLat * math.Cos(lon)
	y = radius * math.Sin(lat)
	z = radius * cosLat * math.Sin(lon)
	return x, y, z
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
