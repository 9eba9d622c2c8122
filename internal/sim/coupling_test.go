package sim

import (
	"math"
	"math/rand"
	"testing"
)

func couplingLayers() (*FlowLayer, *FlowLayer) {
	rng := rand.New(rand.NewSource(3))
	wind := NewFlowLayer(LayerConfig{
		ParticleCount: 10, Radius: 101.8, SpeedToDegrees: 9, LineLength: 2.2,
		SpeedRange: 1.1, Sampler: WindField{},
	}, rng)
	current := NewFlowLayer(LayerConfig{
		ParticleCount: 10, Radius: 100.6, SpeedToDegrees: 4, LineLength: 1.6,
		SpeedRange: 0.8, Sampler: CurrentField{},
	}, rng)
	return wind, current
}

func TestCouplingDisabledBaselines(t *testing.T) {
	wind, current := couplingLayers()
	wind.MeanSpeed = 0.9
	current.MeanSpeed = 0.7

	p := DeriveVisuals(false, 3600, wind, current)
	if p.CloudAngularSpeed != cloudSpeedFixed {
		t.Errorf("cloud speed = %v, want fixed baseline %v", p.CloudAngularSpeed, cloudSpeedFixed)
	}
	if p.OceanShininess != oceanShininessBase {
		t.Errorf("shininess = %v, want baseline %v", p.OceanShininess, oceanShininessBase)
	}
	if p.OceanSpecular != oceanSpecularBase {
		t.Errorf("specular = %v, want baseline %v", p.OceanSpecular, oceanSpecularBase)
	}
}

func TestCouplingWindSpeedsClouds(t *testing.T) {
	wind, current := couplingLayers()
	wind.MeanSpeed = 0
	calm := DeriveVisuals(true, 1, wind, current)
	wind.MeanSpeed = 1.1 // factor 1.0
	windy := DeriveVisuals(true, 1, wind, current)

	if math.Abs(calm.CloudAngularSpeed-cloudSpeedBase) > 1e-12 {
		t.Errorf("calm cloud speed = %v, want %v", calm.CloudAngularSpeed, cloudSpeedBase)
	}
	if math.Abs(windy.CloudAngularSpeed-(cloudSpeedBase+cloudWindGain)) > 1e-12 {
		t.Errorf("windy cloud speed = %v, want %v", windy.CloudAngularSpeed, cloudSpeedBase+cloudWindGain)
	}
}

func TestCouplingWindFactorClamped(t *testing.T) {
	wind, current := couplingLayers()
	wind.MeanSpeed = 50 // way past range
	p := DeriveVisuals(true, 1, wind, current)
	if math.Abs(p.CloudAngularSpeed-(cloudSpeedBase+cloudWindGain)) > 1e-12 {
		t.Errorf("cloud speed = %v, factor not clamped to 1", p.CloudAngularSpeed)
	}
}

func TestCouplingTimeScaleBoost(t *testing.T) {
	wind, current := couplingLayers()
	wind.MeanSpeed = 0

	at1 := DeriveVisuals(true, 1, wind, current)
	at600 := DeriveVisuals(true, 600, wind, current)

	wantBoost := math.Log10(601) * cloudTimeScaleGain
	if got := at600.CloudAngularSpeed - at1.CloudAngularSpeed; math.Abs(got-wantBoost) > 1e-12 {
		t.Errorf("time-scale boost = %v, want %v", got, wantBoost)
	}
}

func TestCouplingOceanResponse(t *testing.T) {
	wind, current := couplingLayers()
	wind.MeanSpeed = 1.1    // factor 1
	current.MeanSpeed = 0.8 // factor 1

	p := DeriveVisuals(true, 1, wind, current)
	if math.Abs(float64(p.OceanShininess)-42.0) > 1e-6 {
		t.Errorf("shininess = %v, want 20 + 16 + 6 = 42", p.OceanShininess)
	}
	for i := 0; i < 3; i++ {
		if p.OceanSpecular[i] <= oceanSpecularBase[i] {
			t.Errorf("specular channel %d = %v did not rise above baseline %v",
				i, p.OceanSpecular[i], oceanSpecularBase[i])
		}
	}
}

func TestCouplingStateless(t *testing.T) {
	wind, current := couplingLayers()
	wind.MeanSpeed = 0.42
	current.MeanSpeed = 0.31
	a := DeriveVisuals(true, 60, wind, current)
	b := DeriveVisuals(true, 60, wind, current)
	if a != b {
		t.Errorf("repeated derivation differs: %+v vs %+v", a, b)
	}
}
