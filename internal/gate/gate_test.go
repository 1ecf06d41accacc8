package gate

import (
	"testing"

	"github.com/lifeos/governance/internal/capacity"
	"github.com/lifeos/governance/internal/constitution"
	"github.com/lifeos/governance/internal/layers"
)

func uniform(v int) DomainScores {
	return DomainScores{Financial: v, Emotional: v, Decisional: v, Operational: v, Relational: v, Energetic: v}
}

func mustState(t *testing.T, id constitution.StateID) constitution.StateInfo {
	t.Helper()
	s, ok := constitution.StateByID(id)
	if !ok {
		t.Fatalf("unknown state %s", id)
	}
	return s
}

func TestComputeDomainScores(t *testing.T) {
	l := layers.Set{
		Business:   layers.Business{Score: 61},
		Financial:  layers.Financial{Score: 72},
		Relational: layers.Relational{Score: 43},
	}
	a := capacity.Assessment{Energy: 50, Clarity: 50, Stress: 50, Confidence: 50, Load: 50}
	d := ComputeDomainScores(l, a)

	if d.Financial != 72 || d.Operational != 61 || d.Relational != 43 {
		t.Fatalf("layer-mapped domains wrong: %+v", d)
	}
	// 25 + 15 + 10
	if d.Emotional != 50 {
		t.Errorf("emotional: got %d, want 50", d.Emotional)
	}
	// 20 + 15 + 15
	if d.Decisional != 50 {
		t.Errorf("decisional: got %d, want 50", d.Decisional)
	}
	// 30 + 20
	if d.Energetic != 50 {
		t.Errorf("energetic: got %d, want 50", d.Energetic)
	}
}

func TestGatePassesStrongTactical(t *testing.T) {
	g := NewGate(DefaultGateConfig())
	dec := g.Evaluate(uniform(80), constitution.DecisionTypeFor(constitution.DecisionTactical), mustState(t, constitution.StateStable))

	if dec.Blocked {
		t.Fatalf("should not block: %v", dec.Reasons)
	}
	if len(dec.Violations) != 0 {
		t.Fatalf("expected no violations, got %d", len(dec.Violations))
	}
	if dec.AlertLevel != constitution.AlertOK {
		t.Fatalf("expected ok, got %s", dec.AlertLevel)
	}
}

func TestGateBlocksOnStateSeverityAlone(t *testing.T) {
	g := NewGate(DefaultGateConfig())
	// Every domain clears every minimum, but under_tension has severity 5.
	dec := g.Evaluate(uniform(95), constitution.DecisionTypeFor(constitution.DecisionTactical), mustState(t, constitution.StateUnderTension))

	if !dec.Blocked {
		t.Fatal("severity >= 5 should block on its own")
	}
	if len(dec.Violations) != 0 {
		t.Fatalf("expected no violations, got %d", len(dec.Violations))
	}
	if len(dec.Reasons) != 1 || dec.Reasons[0] != BlockStateSeverity {
		t.Fatalf("expected only state_severity, got %v", dec.Reasons)
	}
}

func TestGateBlocksOnCriticalViolation(t *testing.T) {
	g := NewGate(DefaultGateConfig())
	scores := uniform(80)
	scores.Relational = 10

	dec := g.Evaluate(scores, constitution.DecisionTypeFor(constitution.DecisionTactical), mustState(t, constitution.StateStable))

	if !dec.Blocked {
		t.Fatal("critical violation should block")
	}
	if dec.AlertLevel != constitution.AlertCritical {
		t.Fatalf("expected critical, got %s", dec.AlertLevel)
	}
	if len(dec.Violations) != 1 || dec.Violations[0].Domain != constitution.DomainRelational {
		t.Fatalf("expected one relational violation, got %+v", dec.Violations)
	}
	if dec.Violations[0].Required != 25 {
		t.Fatalf("required should echo tactical minDomain 25, got %d", dec.Violations[0].Required)
	}
}

func TestGateBlocksOnOverallAverage(t *testing.T) {
	g := NewGate(DefaultGateConfig())
	// 60 everywhere: no alert band, but below existential minOverall 85.
	dec := g.Evaluate(uniform(60), constitution.DecisionTypeFor(constitution.DecisionExistential), mustState(t, constitution.StateStable))

	if !dec.Blocked {
		t.Fatal("average below minOverall should block")
	}
	if len(dec.Violations) != 0 {
		t.Fatalf("scores above the preventive band are never violations, got %d", len(dec.Violations))
	}
	if len(dec.Reasons) != 1 || dec.Reasons[0] != BlockOverallTooLow {
		t.Fatalf("expected only overall_below_minimum, got %v", dec.Reasons)
	}
}

func TestGateAttentionWithoutBlock(t *testing.T) {
	g := NewGate(DefaultGateConfig())
	scores := uniform(70)
	scores.Financial = 30 // attention band, below strategic minDomain 40

	dec := g.Evaluate(scores, constitution.DecisionTypeFor(constitution.DecisionStrategic), mustState(t, constitution.StateStable))

	if dec.Blocked {
		t.Fatalf("attention violation alone should not block: %v", dec.Reasons)
	}
	if dec.AlertLevel != constitution.AlertAttention {
		t.Fatalf("expected attention, got %s", dec.AlertLevel)
	}
}

func TestGateAlertBandAboveMinimumIsNotViolation(t *testing.T) {
	g := NewGate(DefaultGateConfig())
	scores := uniform(80)
	scores.Energetic = 45 // preventive band, but above tactical minDomain 25

	dec := g.Evaluate(scores, constitution.DecisionTypeFor(constitution.DecisionTactical), mustState(t, constitution.StateStable))
	if len(dec.Violations) != 0 {
		t.Fatalf("expected no violations, got %+v", dec.Violations)
	}
}

func TestGateCustomBlockSeverity(t *testing.T) {
	g := NewGate(GateConfig{BlockSeverity: 9})
	dec := g.Evaluate(uniform(95), constitution.DecisionTypeFor(constitution.DecisionTactical), mustState(t, constitution.StateUnderTension))
	if dec.Blocked {
		t.Fatal("severity 5 should pass when the block level is 9")
	}
}

func TestCheckThresholdsUnknownTypeFallsBack(t *testing.T) {
	dec := CheckThresholds(uniform(36), "unknown", mustState(t, constitution.StateStable))
	// Tactical: 36 is in the attention band but above minDomain 25, and the
	// average clears minOverall 35. Strategic would flag all six domains.
	if len(dec.Violations) != 0 {
		t.Fatalf("expected tactical fallback with no violations, got %+v", dec.Violations)
	}
	if dec.Blocked {
		t.Fatalf("expected no block, got reasons %v", dec.Reasons)
	}
}

func TestDetails(t *testing.T) {
	scores := DomainScores{Financial: 10, Emotional: 30, Decisional: 50, Operational: 70, Relational: 24, Energetic: 56}
	det := Details(scores)
	if len(det) != 6 {
		t.Fatalf("expected 6 details, got %d", len(det))
	}
	want := map[constitution.DomainID]constitution.AlertLevel{
		constitution.DomainFinancial:   constitution.AlertCritical,
		constitution.DomainEmotional:   constitution.AlertAttention,
		constitution.DomainDecisional:  constitution.AlertPreventive,
		constitution.DomainOperational: constitution.AlertOK,
		constitution.DomainRelational:  constitution.AlertCritical,
		constitution.DomainEnergetic:   constitution.AlertOK,
	}
	for _, d := range det {
		if d.AlertLevel != want[d.ID] {
			t.Errorf("%s: got %s, want %s", d.ID, d.AlertLevel, want[d.ID])
		}
	}
}
