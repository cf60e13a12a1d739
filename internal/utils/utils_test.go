package utils

import (
	"math"
	"testing"
)

func TestClamp(t *testing.T) {
	cases := []struct {
		name      string
		v, lo, hi float64
		want      float64
	}{
		{"inside", 5, 0, 10, 5},
		{"below", -5, 0, 10, 0},
		{"above", 15, 0, 10, 10},
		{"at max", 752, 0, 752, 752},
		{"inverted range", 5, 3, 1, 3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Clamp(tc.v, tc.lo, tc.hi); got != tc.want {
				t.Errorf("Clamp(%v, %v, %v) = %v, want %v", tc.v, tc.lo, tc.hi, got, tc.want)
			}
		})
	}
}

func TestDegToRad(t *testing.T) {
	if got := DegToRad(180); math.Abs(got-math.Pi) > 1e-12 {
		t.Errorf("DegToRad(180) = %v", got)
	}
	if got := DegToRad(-10); math.Abs(got+math.Pi/18) > 1e-12 {
		t.Errorf("DegToRad(-10) = %v", got)
	}
}

func TestPRNGDeterministic(t *testing.T) {
	a := NewPRNGService(7)
	b := NewPRNGService(7)
	for i := 0; i < 100; i++ {
		if a.Float64() != b.Float64() {
			t.Fatalf("sequences diverged at %d", i)
		}
	}
	if a.Seed() != 7 {
		t.Errorf("Seed() = %d", a.Seed())
	}
}

func TestPRNGRangeAndSign(t *testing.T) {
	r := NewPRNGService(99)
	sawNeg, sawPos := false, false
	for i := 0; i < 1000; i++ {
		v := r.Range(2, 3.5)
		if v < 2 || v >= 3.5 {
			t.Fatalf("Range out of bounds: %v", v)
		}
		switch r.Sign() {
		case -1:
			sawNeg = true
		case 1:
			sawPos = true
		default:
			t.Fatal("Sign returned neither -1 nor 1")
		}
	}
	if !sawNeg || !sawPos {
		t.Fatal("Sign never produced both directions")
	}
	if got := r.Range(4, 4); got != 4 {
		t.Errorf("Range(4, 4) = %v", got)
	}
	if r.Chance(0) {
		t.Error("Chance(0) returned true")
	}
	if !r.Chance(1) {
		t.Error("Chance(1) returned false")
	}
}

func TestNewPRNGServiceZeroSeed(t *testing.T) {
	if NewPRNGService(0).Seed() == 0 {
		t.Fatal("zero seed must be replaced by a time-based seed")
	}
}
