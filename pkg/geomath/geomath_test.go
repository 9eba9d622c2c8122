package geomath

import (
	"testing"
)

func TestVec3Cross(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}
	got := x.Cross(y)
	want := Vec3{0, 0, 1}
	if got != want {
		t.Errorf("Vec3.Cross() = %v, want %v", got, want)
	}
}

func TestVec3Length(t *testing.T) {
	v := Vec3{3, 4, 0}
	if got := v.Length(); got != 5 {
		t.Errorf("Vec3.Length() = %v, want 5", got)
	}
}

func TestVec3Normalize(t *testing.T) {
	v := Vec3{3, 4, 12}
	l := v.Normalize().Length()
	if l < 0.999 || l > 1.001 {
		t.Errorf("Vec3.Normalize().Length() = %v, want ~1", l)
	}
}

func TestVec3NormalizeZero(t *testing.T) {
	if got := (Vec3{}).Normalize(); got != (Vec3{}) {
		t.Errorf("zero Normalize() = %v, want zero vector", got)
	}
}

func TestMulIdentity(t *testing.T) {
	m := RotateY(0.7)
	got := m.Mul(Identity())
	if got != m {
		t.Errorf("m * I = %v, want %v", got, m)
	}
}

func TestRotateY90(t *testing.T) {
	m := RotateY(3.14159265 / 2)
	v := m.TransformVec3(Vec3{1, 0, 0})
	// +X rotates toward -Z under a quarter turn
	if v.Z > -0.999 || v.X > 0.001 || v.X < -0.001 {
		t.Errorf("RotateY(90).TransformVec3(+X) = %v, want ~(0,0,-1)", v)
	}
}

func TestLookAt(t *testing.T) {
	eye := Vec3{0, 0, 10}
	center := Vec3{0, 0, 0}
	up := Vec3{0, 1, 0}
	m := LookAt(eye, center, up)

	// The center should land on the -Z axis in view space.
	v := m.TransformVec3(center)
	if v.Z > -9.999 || v.Z < -10.001 {
		t.Errorf("LookAt center z = %v, want -10", v.Z)
	}
}

func TestPerspectiveFinite(t *testing.T) {
	m := Perspective(1.0, 16.0/9.0, 0.1, 1000)
	for i, e := range m {
		if e != e { // NaN check
			t.Fatalf("perspective element %d is NaN", i)
		}
	}
	if m[11] != -1 {
		t.Errorf("perspective m[11] = %v, want -1", m[11])
	}
}

func TestFromFloat64(t *testing.T) {
	v := FromFloat64([3]float64{0.25, -0.5, 1})
	want := Vec3{0.25, -0.5, 1}
	if v != want {
		t.Errorf("FromFloat64() = %v, want %v", v, want)
	}
}
