package math

import (
	"testing"

	"github.com/chewxy/math32"
)

func TestIdentity(t *testing.T) {
	m := Identity()
	if m[0] != 1 || m[5] != 1 || m[10] != 1 || m[15] != 1 {
		t.Error("Identity diagonal should be 1")
	}
	if m[1] != 0 || m[4] != 0 {
		t.Error("Identity off-diagonal should be 0")
	}
}

func TestMulIdentity(t *testing.T) {
	m := Translate(1, 2, 3)
	result := m.Mul(Identity())

	for i := 0; i < 16; i++ {
		if result[i] != m[i] {
			t.Errorf("M * I should equal M, element %d: got %f, want %f", i, result[i], m[i])
		}
	}
}

func TestTranslate(t *testing.T) {
	got := Translate(10, 20, 30).TransformVec3(Vec3{1, 2, 3})
	want := Vec3{11, 22, 33}
	if got != want {
		t.Errorf("TransformVec3: got %v, want %v", got, want)
	}
}

func TestRotateY90(t *testing.T) {
	p := RotateY(math32.Pi / 2).TransformVec3(Vec3{1, 0, 0})

	// (1,0,0) turns to (0,0,-1) under a right-handed Y rotation
	if !near(p, Vec3{0, 0, -1}) {
		t.Errorf("RotateY 90: got %v, want (0, 0, -1)", p)
	}
}

func TestRotateX90(t *testing.T) {
	p := RotateX(math32.Pi / 2).TransformVec3(Vec3{0, 1, 0})
	if !near(p, Vec3{0, 0, 1}) {
		t.Errorf("RotateX 90: got %v, want (0, 0, 1)", p)
	}
}

func TestEulerXYOrder(t *testing.T) {
	// Y is applied to the vertex first, then X.
	x, y := float32(0.4), float32(1.1)
	p := Vec3{0.3, -0.2, 0.9}

	got := EulerXY(x, y).TransformVec3(p)
	want := RotateX(x).TransformVec3(RotateY(y).TransformVec3(p))
	if !near(got, want) {
		t.Errorf("EulerXY: got %v, want %v", got, want)
	}
}

func TestPerspective(t *testing.T) {
	m := Perspective(DegToRad(45), 1, 0.1, 100)

	if m[0] == 0 || m[5] == 0 {
		t.Error("Perspective should have non-zero elements")
	}
	if m[15] != 0 {
		t.Errorf("Perspective [15] should be 0, got %f", m[15])
	}
	if m[11] != -1 {
		t.Errorf("Perspective [11] should be -1, got %f", m[11])
	}
}

func TestLookAtMovesEyeToOrigin(t *testing.T) {
	eye := Vec3{0, 0, 5}
	m := LookAt(eye, Vec3{}, Vec3{0, 1, 0})

	if got := m.TransformVec3(eye); !near(got, Vec3{}) {
		t.Errorf("LookAt eye: got %v, want origin", got)
	}
	if got := m.TransformVec3(Vec3{}); !near(got, Vec3{0, 0, -5}) {
		t.Errorf("LookAt center: got %v, want (0, 0, -5)", got)
	}
}

func near(a, b Vec3) bool {
	const eps = 1e-5
	d := a.Sub(b)
	return math32.Abs(d.X) < eps && math32.Abs(d.Y) < eps && math32.Abs(d.Z) < eps
}
