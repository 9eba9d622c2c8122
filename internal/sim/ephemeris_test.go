package sim

import (
	"math"
	"testing"
	"time"
)

func msAt(t time.Time) float64 {
	return float64(t.UnixMilli())
}

func TestDeclinationBoundedOverYear(t *testing.T) {
	start := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	for day := 0; day < 366; day++ {
		ctx := ComputeSolarContext(msAt(start.AddDate(0, 0, day)))
		if ctx.SubsolarLat < -23.5 || ctx.SubsolarLat > 23.5 {
			t.Fatalf("day %d: subsolar latitude %v outside [-23.5, 23.5]", day, ctx.SubsolarLat)
		}
	}
}

func TestJuneSolstice(t *testing.T) {
	ctx := ComputeSolarContext(msAt(time.Date(2024, 6, 21, 12, 0, 0, 0, time.UTC)))
	if math.Abs(ctx.SubsolarLat-23.4) > 0.5 {
		t.Errorf("solstice declination = %v, want 23.4 +/- 0.5", ctx.SubsolarLat)
	}
	// At 12:00 UTC the subsolar longitude sits near Greenwich, offset only
	// by the equation of time (a couple of degrees at most in June).
	if math.Abs(ctx.SubsolarLon) > 3.0 {
		t.Errorf("solstice subsolar longitude = %v, want near 0", ctx.SubsolarLon)
	}
}

func TestDecemberSolstice(t *testing.T) {
	ctx := ComputeSolarContext(msAt(time.Date(2024, 12, 21, 12, 0, 0, 0, time.UTC)))
	if math.Abs(ctx.SubsolarLat+23.4) > 0.5 {
		t.Errorf("december declination = %v, want -23.4 +/- 0.5", ctx.SubsolarLat)
	}
}

func TestSubsolarLonFollowsTimeOfDay(t *testing.T) {
	// Six hours after solar noon at Greenwich the subsolar point has moved
	// about 90 degrees west.
	noon := ComputeSolarContext(msAt(time.Date(2024, 3, 20, 12, 0, 0, 0, time.UTC)))
	evening := ComputeSolarContext(msAt(time.Date(2024, 3, 20, 18, 0, 0, 0, time.UTC)))
	delta := lonDistance(evening.SubsolarLon, noon.SubsolarLon)
	if math.Abs(delta-90) > 2 {
		t.Errorf("6h subsolar drift = %v degrees, want ~90", delta)
	}
}

func TestSunDirUnit(t *testing.T) {
	times := []time.Time{
		time.Date(2024, 1, 15, 3, 30, 12, 0, time.UTC),
		time.Date(2024, 6, 21, 12, 0, 0, 0, time.UTC),
		time.Date(2024, 9, 23, 23, 59, 59, 0, time.UTC),
	}
	for _, tt := range times {
		ctx := ComputeSolarContext(msAt(tt))
		n := math.Sqrt(ctx.SunDir[0]*ctx.SunDir[0] + ctx.SunDir[1]*ctx.SunDir[1] + ctx.SunDir[2]*ctx.SunDir[2])
		if math.Abs(n-1) > 1e-9 {
			t.Errorf("%v: sun direction norm = %v, want 1", tt, n)
		}
	}
}

func TestSunDirMatchesSubsolarProjection(t *testing.T) {
	ctx := ComputeSolarContext(msAt(time.Date(2024, 4, 2, 9, 15, 0, 0, time.UTC)))
	x, y, z := ProjectToSphere(ctx.SubsolarLat, ctx.SubsolarLon, 1)
	if math.Abs(x-ctx.SunDir[0]) > 1e-9 || math.Abs(y-ctx.SunDir[1]) > 1e-9 || math.Abs(z-ctx.SunDir[2]) > 1e-9 {
		t.Errorf("sun direction %v does not match subsolar projection (%v,%v,%v)", ctx.SunDir, x, y, z)
	}
}

func TestDayProgress(t *testing.T) {
	ctx := ComputeSolarContext(msAt(time.Date(2024, 7, 1, 6, 0, 0, 0, time.UTC)))
	if math.Abs(ctx.DayProgress-0.25) > 1e-9 {
		t.Errorf("06:00 UTC day progress = %v, want 0.25", ctx.DayProgress)
	}
	if ctx.DayOfYear != 183 {
		t.Errorf("2024-07-01 day of year = %d, want 183", ctx.DayOfYear)
	}
}

func TestNonFiniteInputClamped(t *testing.T) {
	for _, bad := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		ctx := ComputeSolarContext(bad)
		if ctx.DayOfYear < 1 {
			t.Errorf("non-finite input produced day of year %d", ctx.DayOfYear)
		}
		if !isFinite(ctx.SubsolarLat) || !isFinite(ctx.SubsolarLon) {
			t.Errorf("non-finite input leaked into outputs: %+v", ctx)
		}
	}
}

func TestDeterministic(t *testing.T) {
	ms := msAt(time.Date(2024, 8, 8, 16, 45, 30, 0, time.UTC))
	a := ComputeSolarContext(ms)
	b := ComputeSolarContext(ms)
	if a != b {
		t.Errorf("same instant produced different contexts: %+v vs %+v", a, b)
	}
}
