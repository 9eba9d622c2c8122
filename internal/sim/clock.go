package sim

import "time"

// MaxTickDelta caps the wall-clock delta fed into one tick, so a suspended
// window does not produce one giant unstable step on resume.
const MaxTickDelta = 0.05

// TimeScales is the recognized set of wall-to-simulated time multipliers.
var TimeScales = []float64{1, 60, 600, 3600, 86400}

// Clock advances virtual UTC time from wall-clock deltas scaled by a
// positive multiplier. It owns no other state.
type Clock struct {
	virtualTimeMs float64
	timeScale     float64
}

// NewClock starts the virtual clock at the given instant.
func NewClock(start time.Time, timeScale float64) *Clock {
	c := &Clock{virtualTimeMs: float64(start.UnixMilli()), timeScale: 1}
	c.SetTimeScale(timeScale)
	return c
}

// Advance applies a wall-clock delta in seconds and returns the clamped
// delta actually used. Negative or non-finite deltas advance nothing.
func (c *Clock) Advance(wallDt float64) float64 {
	if !isFinite(wallDt) || wallDt < 0 {
		return 0
	}
	if wallDt > MaxTickDelta {
		wallDt = MaxTickDelta
	}
	c.virtualTimeMs += wallDt * 1000.0 * c.timeScale
	return wallDt
}

// VirtualTimeMs returns the simulated UTC epoch in milliseconds.
func (c *Clock) VirtualTimeMs() float64 { return c.virtualTimeMs }

// Now returns the simulated instant as a UTC time.
func (c *Clock) Now() time.Time {
	return time.UnixMilli(int64(c.virtualTimeMs)).UTC()
}

// TimeScale returns the current multiplier.
func (c *Clock) TimeScale() float64 { return c.timeScale }

// SetTimeScale changes the multiplier. Values that are not positive finite
// numbers are ignored; the change takes effect on the next Advance with no
// discontinuity because advancement is delta-based.
func (c *Clock) SetTimeScale(s float64) {
	if isFinite(s) && s > 0 {
		c.timeScale = s
	}
}
