package fixed

import (
	"math"
	"runtime"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestIsqrt(t *testing.T) {
	inputs := []uint32{
		0, 1, 2, 3, 4, 5, 8, 9, 15, 16, 17, 24, 25, 99, 100, 101,
		255, 256, 65024, 65025, 65535, 65536, 65537,
		1 << 20, 1<<30 - 1, 1 << 30, 1<<31 + 12345, math.MaxUint32,
	}
	for n := uint32(0); n < 5000; n++ {
		inputs = append(inputs, n)
	}

	for _, n := range inputs {
		r := Isqrt(n)
		if r < 0 {
			t.Fatalf("Isqrt(%d) = %d, expected non-negative", n, r)
		}
		low := uint64(r) * uint64(r)
		high := uint64(r+1) * uint64(r+1)
		if low > uint64(n) || uint64(n) >= high {
			t.Errorf("Isqrt(%d) = %d, want r*r <= n < (r+1)*(r+1)", n, r)
		}
	}
}

func TestIsqrt_Zero(t *testing.T) {
	if got := Isqrt(0); got != 0 {
		t.Errorf("Isqrt(0) = %d, want 0", got)
	}
}

func TestMul(t *testing.T) {
	tests := []struct {
		name     string
		a, b     int32
		expected int32
	}{
		{"one times one", One, One, One},
		{"two times one and a half", 512, 384, 768},
		{"positive truncates down", 1, 1, 0},
		{"negative rounds toward negative infinity", -1, 1, -1},
		{"negative product", -512, 128, -256},
		{"zero", 0, 12345, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Mul(tt.a, tt.b); got != tt.expected {
				t.Errorf("Mul(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.expected)
			}
		})
	}
}

func TestDiv(t *testing.T) {
	tests := []struct {
		name     string
		a, b     int32
		expected int32
	}{
		{"one half", 1, 2, 128},
		{"negative half truncates toward zero", -1, 2, -128},
		{"divide by one in fixed point", 150, One, 150},
		{"ground projection", 150, 128, 300},
		{"negative divisor", 150, -300, -128},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Div(tt.a, tt.b); got != tt.expected {
				t.Errorf("Div(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.expected)
			}
		})
	}
}

func TestDiv_ByZeroPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected Div by zero to panic")
		}
	}()
	Div(1, 0)
}

func TestDot(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(-4, 5, 6)
	if got := Dot(a, b); got != 24 {
		t.Errorf("Dot(%v, %v) = %d, want 24", a, b, got)
	}

	unit := NewVec3(0, One, 0)
	if got := Dot(unit, unit); got != One*One {
		t.Errorf("Dot of unit vector with itself = %d, want %d", got, One*One)
	}
}

func TestNorm(t *testing.T) {
	tests := []struct {
		v        Vec3
		expected int32
	}{
		{NewVec3(0, 0, 0), 0},
		{NewVec3(3, 4, 0), 5},
		{NewVec3(0, -100, 0), 100},
		{NewVec3(1, 1, 1), 1},
		{NewVec3(2, 3, 6), 7},
	}

	for _, tt := range tests {
		if got := Norm(tt.v); got != tt.expected {
			t.Errorf("Norm(%v) = %d, want %d", tt.v, got, tt.expected)
		}
	}
}

func TestNormalize(t *testing.T) {
	vectors := []Vec3{
		NewVec3(0, -100, 0),
		NewVec3(3, 4, 0),
		NewVec3(100, 200, 300),
		NewVec3(-50, 120, 7),
		NewVec3(1000, -1000, 1000),
		NewVec3(320, 128, 127),
		NewVec3(0, 0, 127),
	}

	for _, v := range vectors {
		t.Run(v.String(), func(t *testing.T) {
			u := Normalize(v)

			length := Norm(u)
			if length < One-2 || length > One+2 {
				t.Errorf("Normalize(%v) = %v with length %d, want %d±2", v, u, length, One)
			}

			// Compare against a floating-point reference
			ref := mgl64.Vec3{float64(v.X), float64(v.Y), float64(v.Z)}.Normalize().Mul(float64(One))
			got := mgl64.Vec3{float64(u.X), float64(u.Y), float64(u.Z)}
			for i := 0; i < 3; i++ {
				if math.Abs(got[i]-ref[i]) > 4 {
					t.Errorf("component %d: got %v, float reference %.2f", i, got[i], ref[i])
				}
			}
		})
	}
}

func TestNormalize_ExactAxis(t *testing.T) {
	u := Normalize(NewVec3(0, -100, 0))
	if u != NewVec3(0, -One, 0) {
		t.Errorf("Expected (0, -256, 0), got %v", u)
	}
}

func TestNormalize_ZeroVectorPanics(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("Expected Normalize of zero vector to panic")
		}
		if _, ok := r.(runtime.Error); !ok {
			t.Errorf("Expected a runtime arithmetic error, got %T: %v", r, r)
		}
	}()
	Normalize(Vec3{})
}

func TestVec3_AddScale(t *testing.T) {
	v := NewVec3(1, -2, 3)
	if got := v.Add(NewVec3(10, 20, 30)); got != NewVec3(11, 18, 33) {
		t.Errorf("Add: got %v", got)
	}
	if got := v.Scale(300); got != NewVec3(300, -600, 900) {
		t.Errorf("Scale: got %v", got)
	}
	if !(Vec3{}).IsZero() || v.IsZero() {
		t.Error("IsZero returned the wrong answer")
	}
}
