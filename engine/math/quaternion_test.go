package math

import (
	m "math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

const testTolerance float32 = 1e-5

func toMgl(q Quaternion) mgl32.Quat {
	return mgl32.Quat{W: q.W, V: mgl32.Vec3{q.X, q.Y, q.Z}}
}

func TestRotateVec3MatchesMathgl(t *testing.T) {
	axes := []Vec3{
		NewVec3Right(),
		NewVec3Up(),
		NewVec3Back(),
		NewVec3(1, 2, 3).Normalize(),
	}
	angles := []float32{0, 0.3, K_HALF_PI, K_PI, -1.2}
	v := NewVec3(0.5, -2, 7)

	for _, axis := range axes {
		for _, angle := range angles {
			q := NewQuatFromAxisAngle(axis, angle, true)
			got := q.RotateVec3(v)
			want := toMgl(q).Rotate(mgl32.Vec3{v.X, v.Y, v.Z})
			if !got.Compare(NewVec3(want[0], want[1], want[2]), 1e-4) {
				t.Fatalf("axis %v angle %v: got %v want %v", axis, angle, got, want)
			}
		}
	}
}

func TestRotationAboutPrincipalAxes(t *testing.T) {
	tests := []struct {
		name string
		q    Quaternion
		in   Vec3
		want Vec3
	}{
		{"x", NewQuatFromRotationX(K_HALF_PI), NewVec3Up(), NewVec3Back()},
		{"y", NewQuatFromRotationY(K_HALF_PI), NewVec3Right(), NewVec3(0, 0, -1)},
		{"z", NewQuatFromRotationZ(K_HALF_PI), NewVec3Right(), NewVec3Up()},
		{"y half turn", NewQuatFromRotationY(K_PI), NewVec3Right(), NewVec3Left()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.q.RotateVec3(tt.in)
			if !got.Compare(tt.want, testTolerance) {
				t.Fatalf("got %v want %v", got, tt.want)
			}
		})
	}
}

func TestIsNearIdentity(t *testing.T) {
	tests := []struct {
		name string
		q    Quaternion
		want bool
	}{
		{"identity", NewQuatIdentity(), true},
		{"negated identity", Quaternion{0, 0, 0, -1}, true},
		{"tiny", NewQuatFromRotationY(0.001), true},
		{"small", NewQuatFromRotationY(0.01), false},
		{"quarter turn", NewQuatFromRotationX(K_HALF_PI), false},
		{"half turn", NewQuatFromRotationY(K_PI), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.q.IsNearIdentity(); got != tt.want {
				t.Fatalf("IsNearIdentity(%v) = %v, want %v", tt.q, got, tt.want)
			}
		})
	}
}

func TestMulComposesRotations(t *testing.T) {
	a := NewQuatFromRotationX(0.4)
	b := NewQuatFromRotationY(-1.1)
	v := NewVec3(1, 2, 3)

	got := a.Mul(b).RotateVec3(v)
	want := a.RotateVec3(b.RotateVec3(v))
	if !got.Compare(want, 1e-4) {
		t.Fatalf("got %v want %v", got, want)
	}

	mq := toMgl(a).Mul(toMgl(b))
	if !a.Mul(b).Compare(Quaternion{mq.V[0], mq.V[1], mq.V[2], mq.W}, testTolerance) {
		t.Fatalf("product differs from mathgl: %v vs %v", a.Mul(b), mq)
	}
}

func TestNewQuatFromBasisRoundTrip(t *testing.T) {
	for _, q := range []Quaternion{
		NewQuatIdentity(),
		NewQuatFromRotationY(K_PI),
		NewQuatFromRotationX(-K_HALF_PI),
		NewQuatFromEulerXYZ(0.3, 2.5, -0.7),
	} {
		right := q.RotateVec3(NewVec3Right())
		up := q.RotateVec3(NewVec3Up())
		back := q.RotateVec3(NewVec3Back())

		got := NewQuatFromBasis(right, up, back)
		if m.Abs(float64(got.Dot(q))) < 1-1e-4 {
			t.Fatalf("basis round trip: got %v want ±%v", got, q)
		}
	}
}

func TestToMat4AgreesWithRotateVec3(t *testing.T) {
	q := NewQuatFromEulerXYZ(0.2, -0.9, 1.4)
	v := NewVec3(-3, 0.5, 2)
	got := v.Transform(q.ToMat4())
	want := q.RotateVec3(v)
	if !got.Compare(want, 1e-4) {
		t.Fatalf("got %v want %v", got, want)
	}
}
