package score

import (
	"math"
	"testing"
)

func TestRoundHalfUp(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{2.5, 3},
		{2.49, 2},
		{-2.5, -2},
		{-2.51, -3},
		{0, 0},
	}
	for _, tt := range tests {
		if got := Round(tt.in); got != tt.want {
			t.Errorf("Round(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestRoundTo(t *testing.T) {
	if got := RoundTo(13.3333, 1); got != 13.3 {
		t.Errorf("RoundTo(13.3333, 1) = %v, want 13.3", got)
	}
	if got := RoundTo(0.125, 2); got != 0.13 {
		t.Errorf("RoundTo(0.125, 2) = %v, want 0.13", got)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		in   float64
		want int
	}{
		{-10, 0},
		{150, 100},
		{49.5, 50},
		{math.NaN(), 0},
		{math.Inf(1), 100},
		{math.Inf(-1), 0},
	}
	for _, tt := range tests {
		if got := Clamp(tt.in); got != tt.want {
			t.Errorf("Clamp(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestClampRange(t *testing.T) {
	if got := ClampRange(2, 5, 95); got != 5 {
		t.Errorf("expected floor 5, got %d", got)
	}
	if got := ClampRange(120, 5, 95); got != 95 {
		t.Errorf("expected ceiling 95, got %d", got)
	}
}

func TestSanitize(t *testing.T) {
	if Sanitize(math.NaN()) != 0 || Sanitize(math.Inf(-1)) != 0 {
		t.Fatal("non-finite values should sanitize to 0")
	}
	if Sanitize(-4.5) != -4.5 {
		t.Fatal("finite values should pass through")
	}
}

func TestMean(t *testing.T) {
	if Mean() != 0 {
		t.Fatal("empty mean should be 0")
	}
	if got := Mean(10, 20, 30, 40); got != 25 {
		t.Fatalf("expected 25, got %v", got)
	}
}

func TestRoundToKeepsHugeValuesFinite(t *testing.T) {
	if got := RoundTo(math.MaxFloat64, 2); got != math.MaxFloat64 {
		t.Errorf("RoundTo(MaxFloat64, 2) = %v, want MaxFloat64", got)
	}
}

func TestFiniteAndBound(t *testing.T) {
	if got := Finite(math.Inf(1), 99); got != 99 {
		t.Errorf("Finite(+Inf) = %v, want 99", got)
	}
	if got := Finite(math.NaN(), 7); got != 7 {
		t.Errorf("Finite(NaN) = %v, want 7", got)
	}
	if got := Finite(3.5, 99); got != 3.5 {
		t.Errorf("Finite(3.5) = %v, want 3.5", got)
	}
	if got := Bound(math.Inf(1)); got != math.MaxFloat64 {
		t.Errorf("Bound(+Inf) = %v", got)
	}
	if got := Bound(math.Inf(-1)); got != -math.MaxFloat64 {
		t.Errorf("Bound(-Inf) = %v", got)
	}
	if got := Bound(math.NaN()); got != 0 {
		t.Errorf("Bound(NaN) = %v, want 0", got)
	}
}

func TestClampRangeSaturatesInfinity(t *testing.T) {
	if got := ClampRange(math.Inf(1), 5, 95); got != 95 {
		t.Errorf("ClampRange(+Inf) = %d, want 95", got)
	}
	if got := ClampRange(math.Inf(-1), 5, 95); got != 5 {
		t.Errorf("ClampRange(-Inf) = %d, want 5", got)
	}
}
