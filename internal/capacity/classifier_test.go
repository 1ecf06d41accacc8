package capacity

import (
	"strings"
	"testing"

	"github.com/lifeos/governance/internal/constitution"
)

var (
	strong = Assessment{Energy: 80, Clarity: 85, Stress: 20, Confidence: 80, Load: 20}
	weak   = Assessment{Energy: 15, Clarity: 10, Stress: 90, Confidence: 10, Load: 95}
	medium = Assessment{Energy: 50, Clarity: 55, Stress: 50, Confidence: 50, Load: 50}
)

func TestClassifyStrong(t *testing.T) {
	c := Classify(strong)
	if c.Score < 66 {
		t.Fatalf("expected score >= 66, got %d", c.Score)
	}
	if c.State.ID != constitution.StateStable && c.State.ID != constitution.StateControlledExpansion {
		t.Fatalf("expected stable or controlled_expansion, got %s", c.State.ID)
	}
}

func TestClassifyWeak(t *testing.T) {
	c := Classify(weak)
	if c.Score > 25 {
		t.Fatalf("expected score <= 25, got %d", c.Score)
	}
	if c.State.ID != constitution.StateActiveFailure && c.State.ID != constitution.StateInsufficient {
		t.Fatalf("expected active_failure or insufficient, got %s", c.State.ID)
	}
}

func TestClassifyMedium(t *testing.T) {
	c := Classify(medium)
	if c.Score < 26 || c.Score > 65 {
		t.Fatalf("expected mid-range score, got %d", c.Score)
	}
}

func TestClassifyExactScores(t *testing.T) {
	tests := []struct {
		name      string
		a         Assessment
		wantScore int
		wantState constitution.StateID
	}{
		{"strong", strong, 81, constitution.StateControlledExpansion},
		{"weak", weak, 10, constitution.StateActiveFailure},
		{"all-zero", Assessment{}, 42, constitution.StateUnderTension},
		{"best", Assessment{Energy: 100, Clarity: 100, Confidence: 100}, 100, constitution.StateControlledExpansion},
		{"worst", Assessment{Stress: 100, Load: 100}, 0, constitution.StateActiveFailure},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Classify(tt.a)
			if c.Score != tt.wantScore {
				t.Errorf("score: got %d, want %d", c.Score, tt.wantScore)
			}
			if c.State.ID != tt.wantState {
				t.Errorf("state: got %s, want %s", c.State.ID, tt.wantState)
			}
		})
	}
}

func TestClassifyOverlapFirstMatchWins(t *testing.T) {
	// 25 sits in insufficient (16-30), failure_risk (20-35) and recovery (20-40).
	// Ascending-Min order puts insufficient first.
	if got := lookupState(25); got.ID != constitution.StateInsufficient {
		t.Fatalf("score 25: expected insufficient, got %s", got.ID)
	}
	// 33 is past insufficient; failure_risk precedes recovery on the Min=20 tie.
	if got := lookupState(33); got.ID != constitution.StateFailureRisk {
		t.Fatalf("score 33: expected failure_risk, got %s", got.ID)
	}
	// 50 is in under_tension (36-50) and building (40-60).
	if got := lookupState(50); got.ID != constitution.StateUnderTension {
		t.Fatalf("score 50: expected under_tension, got %s", got.ID)
	}
}

func TestClassifyStressAndLoadMonotonic(t *testing.T) {
	base := Assessment{Energy: 50, Clarity: 50, Stress: 0, Confidence: 50, Load: 50}
	prev := Classify(base).Score
	for s := 5.0; s <= 100; s += 5 {
		base.Stress = s
		got := Classify(base).Score
		if got > prev {
			t.Fatalf("raising stress to %v increased score %d -> %d", s, prev, got)
		}
		prev = got
	}

	base = Assessment{Energy: 50, Clarity: 50, Stress: 50, Confidence: 50, Load: 0}
	prev = Classify(base).Score
	for l := 5.0; l <= 100; l += 5 {
		base.Load = l
		got := Classify(base).Score
		if got > prev {
			t.Fatalf("raising load to %v increased score %d -> %d", l, prev, got)
		}
		prev = got
	}
}

func TestClassifyConfidenceBounds(t *testing.T) {
	for e := 0.0; e <= 100; e += 10 {
		for s := 0.0; s <= 100; s += 10 {
			c := Classify(Assessment{Energy: e, Clarity: e, Stress: s, Confidence: e, Load: s})
			if c.Confidence < 0.5 || c.Confidence > 1.0 {
				t.Fatalf("confidence %v out of [0.5,1] for e=%v s=%v", c.Confidence, e, s)
			}
			if c.Score < 0 || c.Score > 100 {
				t.Fatalf("score %d out of bounds", c.Score)
			}
		}
	}
}

func TestClassifyConfidenceValue(t *testing.T) {
	// strong: score 81 in 76-100, nearest edge 5 away -> 0.5 + 5/50 = 0.6
	if c := Classify(strong); c.Confidence != 0.6 {
		t.Fatalf("expected confidence 0.6, got %v", c.Confidence)
	}
}

func TestCheckTransition(t *testing.T) {
	if w, ok := CheckTransition("", constitution.StateStable); !ok || w != "" {
		t.Fatal("empty previous should be ok")
	}
	if w, ok := CheckTransition(constitution.StateStable, constitution.StateStable); !ok || w != "" {
		t.Fatal("unchanged state should be ok")
	}
	if _, ok := CheckTransition(constitution.StateStable, constitution.StateControlledExpansion); !ok {
		t.Fatal("stable -> controlled_expansion should be valid")
	}
	w, ok := CheckTransition(constitution.StateActiveFailure, constitution.StateControlledExpansion)
	if ok {
		t.Fatal("active_failure -> controlled_expansion should be invalid")
	}
	if !strings.Contains(w, "active_failure → controlled_expansion") || !strings.Contains(w, "recovery") {
		t.Fatalf("warning should name the jump and allowed targets: %q", w)
	}
}
