package core

import (
	"math"
	"math/rand"
	"testing"
)

const tolerance = 1e-9

func vecsClose(a, b Vec3) bool {
	return a.Subtract(b).Length() < tolerance
}

func TestVec3_Arithmetic(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(4, -5, 0.5)

	tests := []struct {
		name     string
		result   Vec3
		expected Vec3
	}{
		{"Add", a.Add(b), NewVec3(5, -3, 3.5)},
		{"Subtract", a.Subtract(b), NewVec3(-3, 7, 2.5)},
		{"Multiply", a.Multiply(2), NewVec3(2, 4, 6)},
		{"Divide", a.Divide(2), NewVec3(0.5, 1, 1.5)},
		{"MultiplyVec", a.MultiplyVec(b), NewVec3(4, -10, 1.5)},
		{"DivideVec", a.DivideVec(NewVec3(2, 4, 3)), NewVec3(0.5, 0.5, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !vecsClose(tt.result, tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, tt.result)
			}
		})
	}
}

func TestVec3_Dot(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(4, -5, 6)

	if got := a.Dot(b); math.Abs(got-12) > tolerance {
		t.Errorf("Expected dot product 12, got %f", got)
	}
}

func TestVec3_Normalize_UnitLength(t *testing.T) {
	tests := []struct {
		name   string
		vector Vec3
	}{
		{"axis aligned", NewVec3(5, 0, 0)},
		{"negative components", NewVec3(-1, -2, -3)},
		{"tiny", NewVec3(1e-8, 2e-8, -1e-8)},
		{"large", NewVec3(1e8, -3e8, 7e8)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			length := tt.vector.Normalize().Length()
			if math.Abs(length-1) > tolerance {
				t.Errorf("Expected unit length, got %f", length)
			}
		})
	}
}

func TestVec3_Normalize_ZeroPropagatesNonFinite(t *testing.T) {
	normalized := Vec3{}.Normalize()

	if !math.IsNaN(normalized.X) {
		t.Errorf("Expected non-finite component from zero vector, got %v", normalized)
	}
}

func TestVec3_Reflect(t *testing.T) {
	normal := NewVec3(0, 1, 0)

	t.Run("known reflection", func(t *testing.T) {
		reflected := NewVec3(1, -1, 0).Reflect(normal)
		if !vecsClose(reflected, NewVec3(1, 1, 0)) {
			t.Errorf("Expected (1,1,0), got %v", reflected)
		}
	})

	t.Run("preserves length", func(t *testing.T) {
		vectors := []Vec3{
			NewVec3(1, -2, 3),
			NewVec3(-0.3, -0.4, 0),
			NewVec3(0, -5, 0),
		}
		for _, v := range vectors {
			reflected := v.Reflect(normal)
			if math.Abs(reflected.Length()-v.Length()) > tolerance {
				t.Errorf("Reflection of %v changed length from %f to %f",
					v, v.Length(), reflected.Length())
			}
		}
	})
}

func TestVec3_Lerp(t *testing.T) {
	start := NewVec3(0, 0, 0)
	end := NewVec3(2, 4, -2)

	tests := []struct {
		name     string
		t        float64
		expected Vec3
	}{
		{"at start", 0, NewVec3(0, 0, 0)},
		{"at end", 1, NewVec3(2, 4, -2)},
		{"midpoint", 0.5, NewVec3(1, 2, -1)},
		{"extrapolates past end", 1.5, NewVec3(3, 6, -3)},
		{"extrapolates before start", -0.5, NewVec3(-1, -2, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := start.Lerp(end, tt.t)
			if !vecsClose(result, tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, result)
			}
		})
	}
}

func TestVec3_Clamp_UpperBoundOnly(t *testing.T) {
	tests := []struct {
		name     string
		vector   Vec3
		expected Vec3
	}{
		{"all below bound", NewVec3(0.2, 0.5, 0.9), NewVec3(0.2, 0.5, 0.9)},
		{"all above bound", NewVec3(2, 3, 1.5), NewVec3(1, 1, 1)},
		{"mixed", NewVec3(0.5, 7, 1), NewVec3(0.5, 1, 1)},
		{"negative passes through", NewVec3(-2, -0.5, 3), NewVec3(-2, -0.5, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.vector.Clamp(1.0)
			if !vecsClose(result, tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, result)
			}
		})
	}
}

func TestRandomUnit_UnitLength(t *testing.T) {
	random := rand.New(rand.NewSource(7))

	for i := 0; i < 100; i++ {
		v := RandomUnit(random)
		if math.Abs(v.Length()-1) > tolerance {
			t.Fatalf("Expected unit length, got %f for %v", v.Length(), v)
		}
	}
}
