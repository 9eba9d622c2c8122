package sim

import "math"

// Baseline visual parameters used while the coupling feedback is disabled.
const (
	cloudSpeedFixed    = 0.062 // rad/s
	cloudSpeedBase     = 0.038
	cloudWindGain      = 0.037
	cloudTimeScaleGain = 0.006

	oceanShininessBase = 24.0
)

var oceanSpecularBase = [3]float32{0.50, 0.55, 0.60}

// VisualParams are the render-facing parameters the coupling controller
// derives from flow statistics each tick.
type VisualParams struct {
	CloudAngularSpeed float64 // rad/s of cloud layer rotation
	OceanShininess    float32
	OceanSpecular     [3]float32
}

// DeriveVisuals computes cloud and ocean parameters from the two layers'
// aggregates. With coupling disabled everything falls back to fixed
// baselines. It keeps no state of its own.
func DeriveVisuals(enabled bool, timeScale float64, wind, current *FlowLayer) VisualParams {
	if !enabled {
		return VisualParams{
			CloudAngularSpeed: cloudSpeedFixed,
			OceanShininess:    oceanShininessBase,
			OceanSpecular:     oceanSpecularBase,
		}
	}

	wf := wind.SpeedFactor()
	cf := current.SpeedFactor()

	cloud := cloudSpeedBase + wf*cloudWindGain
	if timeScale > 1 {
		// Accelerated simulated time visibly speeds up cloud drift.
		cloud += math.Log10(timeScale+1) * cloudTimeScaleGain
	}

	// Stronger simulated flow gives a tighter, brighter, bluer highlight.
	return VisualParams{
		CloudAngularSpeed: cloud,
		OceanShininess:    float32(20.0 + cf*16.0 + wf*6.0),
		OceanSpecular: [3]float32{
			oceanSpecularBase[0] + float32(wf)*0.10,
			oceanSpecularBase[1] + float32(cf)*0.18,
			oceanSpecularBase[2] + float32(cf)*0.30,
		},
	}
}
