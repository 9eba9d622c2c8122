package assets

import (
	"fmt"

	"github.com/jonas-p/go-shp"

	"github.com/greaterbit/globesim/internal/sim"
)

// LoadCoastline reads a polyline/polygon shapefile and flattens it into
// line-segment vertices projected onto a sphere of the given radius,
// interleaved x,y,z per endpoint, two endpoints per segment. Suitable for a
// static GL_LINES upload.
func LoadCoastline(path string, radius float64) ([]float32, error) {
	reader, err := shp.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening shapefile %s: %w", path, err)
	}
	defer reader.Close()

	var verts []float32

	appendRing := func(points []shp.Point, closed bool) {
		for i := 0; i+1 < len(points); i++ {
			verts = appendSegment(verts, points[i], points[i+1], radius)
		}
		if closed && len(points) > 2 {
			verts = appendSegment(verts, points[len(points)-1], points[0], radius)
		}
	}

	for reader.Next() {
		_, s := reader.Shape()
		switch geom := s.(type) {
		case *shp.PolyLine:
			for _, pts := range splitParts(geom.Parts, geom.Points) {
				appendRing(pts, false)
			}
		case *shp.Polygon:
			for _, pts := range splitParts(geom.Parts, geom.Points) {
				appendRing(pts, true)
			}
		}
	}

	if len(verts) == 0 {
		return nil, fmt.Errorf("shapefile %s contains no polyline or polygon shapes", path)
	}
	return verts, nil
}

// splitParts slices the flat point array into per-part runs.
func splitParts(parts []int32, points []shp.Point) [][]shp.Point {
	if len(parts) == 0 {
		return [][]shp.Point{points}
	}
	out := make([][]shp.Point, 0, len(parts))
	for i, start := range parts {
		end := len(points)
		if i+1 < len(parts) {
			end = int(parts[i+1])
		}
		if int(start) < end {
			out = append(out, points[start:end])
		}
	}
	return out
}

func appendSegment(verts []float32, a, b shp.Point, radius float64) []float32 {
	// Shapefile points are X=longitude, Y=latitude in degrees. Skip
	// segments that span the antimeridian; drawing them would slash
	// straight through the globe.
	if d := sim.NormalizeLongitude(b.X - a.X); d > 90 || d < -90 {
		return verts
	}
	x0, y0, z0 := sim.ProjectToSphere(a.Y, sim.NormalizeLongitude(a.X), radius)
	x1, y1, z1 := sim.ProjectToSphere(b.Y, sim.NormalizeLongitude(b.X), radius)
	return append(verts,
		float32(x0), float32(y0), float32(z0),
		float32(x1), float32(y1), float32(z1),
	)
}
