package vmath

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestLerp(t *testing.T) {
	tests := []struct {
		a, b, t, want float64
	}{
		{0, 10, 0, 0},
		{0, 10, 1, 10},
		{0, 10, 0.2, 2},
		{-4, 4, 0.5, 0},
	}
	for _, tt := range tests {
		if got := Lerp(tt.a, tt.b, tt.t); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("Lerp(%v, %v, %v) = %v, want %v", tt.a, tt.b, tt.t, got, tt.want)
		}
	}
}

func TestClampSymmetric(t *testing.T) {
	if got := ClampSymmetric(12, 10); got != 10 {
		t.Errorf("got %v, want 10", got)
	}
	if got := ClampSymmetric(-12, 10); got != -10 {
		t.Errorf("got %v, want -10", got)
	}
	if got := ClampSymmetric(3, 10); got != 3 {
		t.Errorf("got %v, want 3", got)
	}
}

func TestHeading(t *testing.T) {
	if got := Heading(0, 1); got != 0 {
		t.Errorf("heading +Z = %v, want 0", got)
	}
	if got := Heading(1, 0); math.Abs(got-math.Pi/2) > 1e-12 {
		t.Errorf("heading +X = %v, want pi/2", got)
	}
	if got := Heading(0, -1); math.Abs(got-math.Pi) > 1e-12 {
		t.Errorf("heading -Z = %v, want pi", got)
	}
}

func TestClampMagnitude2(t *testing.T) {
	v := ClampMagnitude2(mgl64.Vec2{30, 40}, 10)
	if math.Abs(v.Len()-10) > 1e-9 {
		t.Errorf("len = %v, want 10", v.Len())
	}
	if math.Abs(v.X()-6) > 1e-9 || math.Abs(v.Y()-8) > 1e-9 {
		t.Errorf("direction not preserved: %v", v)
	}

	short := mgl64.Vec2{1, 1}
	if got := ClampMagnitude2(short, 10); got != short {
		t.Errorf("short vector changed: %v", got)
	}
}

func TestClampMagnitude2NonFinite(t *testing.T) {
	tests := []mgl64.Vec2{
		{math.Inf(1), 0},
		{1e308, 1e308},
		{math.NaN(), 1},
	}
	for _, v := range tests {
		if got := ClampMagnitude2(v, 10); got != (mgl64.Vec2{}) {
			t.Errorf("ClampMagnitude2(%v) = %v, want zero", v, got)
		}
	}
}

func TestFinite(t *testing.T) {
	if !Finite(0) || !Finite(-1e308) {
		t.Error("finite values rejected")
	}
	if Finite(math.NaN()) || Finite(math.Inf(-1)) {
		t.Error("non-finite values accepted")
	}
}

func TestV3NormalizeSafe(t *testing.T) {
	if got := V3NormalizeSafe(mgl64.Vec3{}); got != (mgl64.Vec3{}) {
		t.Errorf("zero vector normalized to %v", got)
	}
	n := V3NormalizeSafe(mgl64.Vec3{1, 0, 1})
	if math.Abs(n.Len()-1) > 1e-12 {
		t.Errorf("len = %v, want 1", n.Len())
	}
}

func TestV3Distance(t *testing.T) {
	a := mgl64.Vec3{0, 1, 0}
	b := mgl64.Vec3{0, 0, -8}
	if got := V3Distance(a, b); math.Abs(got-math.Sqrt(65)) > 1e-12 {
		t.Errorf("distance = %v", got)
	}
}

func TestV3Lerp(t *testing.T) {
	got := V3Lerp(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{10, -10, 5}, 0.1)
	want := mgl64.Vec3{1, -1, 0.5}
	if !got.ApproxEqualThreshold(want, 1e-12) {
		t.Errorf("got %v, want %v", got, want)
	}
}
