package sim

import (
	"math"
	"testing"
)

func TestNormalizeLongitudeRange(t *testing.T) {
	inputs := []float64{-720, -540, -360, -180.0001, -180, -90, 0, 90, 179.9, 180, 180.0001, 270, 359, 360, 720, 1234.5, -987.6}
	for _, in := range inputs {
		got := NormalizeLongitude(in)
		if got <= -180 || got > 180 {
			t.Errorf("NormalizeLongitude(%v) = %v, outside (-180, 180]", in, got)
		}
	}
}

func TestNormalizeLongitudeIdempotent(t *testing.T) {
	for lon := -720.0; lon <= 720.0; lon += 7.3 {
		once := NormalizeLongitude(lon)
		twice := NormalizeLongitude(once)
		if once != twice {
			t.Errorf("normalize not idempotent for %v: %v != %v", lon, once, twice)
		}
	}
}

func TestNormalizeLongitudeSeam(t *testing.T) {
	if got := NormalizeLongitude(180); got != 180 {
		t.Errorf("expected 180 to map to 180, got %v", got)
	}
	if got := NormalizeLongitude(-180); got != 180 {
		t.Errorf("expected -180 to map to 180, got %v", got)
	}
	if got := NormalizeLongitude(181); math.Abs(got+179) > 1e-9 {
		t.Errorf("expected 181 to map to -179, got %v", got)
	}
}

func TestProjectToSphereNorm(t *testing.T) {
	const radius = 100.0
	for lat := -90.0; lat <= 90.0; lat += 5.0 {
		for lon := -175.0; lon <= 180.0; lon += 5.0 {
			x, y, z := ProjectToSphere(lat, lon, radius)
			norm := math.Sqrt(x*x + y*y + z*z)
			if math.Abs(norm-radius) > 1e-9 {
				t.Fatalf("projection of (%v, %v) has norm %v, want %v", lat, lon, norm, radius)
			}
		}
	}
}

func TestProjectToSphereConvention(t *testing.T) {
	// lat 0, lon 0 lands on the -X axis; the north pole on +Y; lon 90E on +Z.
	x, y, z := ProjectToSphere(0, 0, 1)
	if math.Abs(x+1) > 1e-12 || math.Abs(y) > 1e-12 || math.Abs(z) > 1e-12 {
		t.Errorf("(0,0) projected to (%v,%v,%v), want (-1,0,0)", x, y, z)
	}
	_, y, _ = ProjectToSphere(90, 0, 1)
	if math.Abs(y-1) > 1e-12 {
		t.Errorf("north pole y = %v, want 1", y)
	}
	_, _, z = ProjectToSphere(0, 90, 1)
	if math.Abs(z-1) > 1e-12 {
		t.Errorf("(0,90E) z = %v, want 1", z)
	}
}

func TestPeriodicLonGaussianSeamContinuity(t *testing.T) {
	// A feature centered on the antimeridian must read nearly the same just
	// either side of the seam.
	a := periodicLonGaussian(179.9, 180, 15)
	b := periodicLonGaussian(-179.9, 180, 15)
	if math.Abs(a-b) > 1e-3 {
		t.Errorf("gaussian discontinuous across seam: %v vs %v", a, b)
	}
	if a < 0.99 {
		t.Errorf("expected near-peak value at seam, got %v", a)
	}
}

func TestGaussian(t *testing.T) {
	if got := gaussian(30, 30, 10); got != 1 {
		t.Errorf("gaussian at center = %v, want 1", got)
	}
	if got := gaussian(40, 30, 10); math.Abs(got-math.Exp(-1)) > 1e-12 {
		t.Errorf("gaussian one width out = %v, want e^-1", got)
	}
}
