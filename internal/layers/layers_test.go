package layers

import (
	"math"
	"testing"

	"github.com/lifeos/governance/internal/capacity"
)

var (
	strongBusiness  = BusinessInput{Revenue: 50000, Costs: 20000, FounderDependence: 20, ActiveFronts: 2, ProcessMaturity: 80, DelegationCapacity: 75}
	weakBusiness    = BusinessInput{Revenue: 5000, Costs: 8000, FounderDependence: 90, ActiveFronts: 8, ProcessMaturity: 10, DelegationCapacity: 10}
	strongFinancial = FinancialInput{Revenue: 50000, Cash: 200000, Debt: 10000, FixedCosts: 15000}
	weakFinancial   = FinancialInput{Revenue: 5000, Cash: 2000, Debt: 100000, FixedCosts: 8000, IntendedLeverage: 50000}
	weakRelational  = RelationalInput{ActiveConflicts: 8, CriticalDependencies: 7, PartnerAlignment: 15, TeamStability: 10, EcosystemHealth: 10}
)

// #region human-tests

func TestAnalyzeHumanScoreIsClassifierScore(t *testing.T) {
	a := capacity.Assessment{Energy: 80, Clarity: 85, Stress: 20, Confidence: 80, Load: 20}
	c := capacity.Classify(a)
	h := AnalyzeHuman(a, c.Score)
	if h.Score != c.Score {
		t.Fatalf("human score %d should equal classifier score %d", h.Score, c.Score)
	}
	// 80*0.3 + 80*0.4 + 80*0.3
	if h.PressureCapacity != 80 {
		t.Errorf("pressure capacity: got %d, want 80", h.PressureCapacity)
	}
	// 20*0.4 + 15*0.3 + 20*0.3 = 18.5
	if h.ImpulsivityRisk != 19 {
		t.Errorf("impulsivity risk: got %d, want 19", h.ImpulsivityRisk)
	}
}

// #endregion human-tests

// #region business-tests

func TestAnalyzeBusinessStrong(t *testing.T) {
	b := AnalyzeBusiness(strongBusiness)
	if b.Margin != 60 {
		t.Errorf("margin: got %d, want 60", b.Margin)
	}
	if b.Score != 75 {
		t.Errorf("score: got %d, want 75", b.Score)
	}
	if b.Complexity != 32 {
		t.Errorf("complexity: got %d, want 32", b.Complexity)
	}
}

func TestAnalyzeBusinessWeak(t *testing.T) {
	b := AnalyzeBusiness(weakBusiness)
	if b.Margin != 0 {
		t.Errorf("negative margin should clamp to 0, got %d", b.Margin)
	}
	if b.Complexity != 100 {
		t.Errorf("complexity should clamp to 100, got %d", b.Complexity)
	}
	if b.Score > 20 {
		t.Errorf("weak business should score low, got %d", b.Score)
	}
}

func TestAnalyzeBusinessZeroRevenue(t *testing.T) {
	in := strongBusiness
	in.Revenue = 0
	b := AnalyzeBusiness(in)
	if b.Margin != 0 {
		t.Fatalf("zero revenue margin: got %d, want 0", b.Margin)
	}
}

// #endregion business-tests

// #region financial-tests

func TestAnalyzeFinancialRunway(t *testing.T) {
	f := AnalyzeFinancial(strongFinancial)
	if math.Abs(f.Runway-13.3) > 0.05 {
		t.Fatalf("runway: got %v, want ~13.3", f.Runway)
	}
	if f.Score != 92 {
		t.Errorf("score: got %d, want 92", f.Score)
	}
	if f.Leverage != 0.02 {
		t.Errorf("leverage: got %v, want 0.02", f.Leverage)
	}
	if f.TensionProbability != 5 {
		t.Errorf("tension probability should floor at 5, got %d", f.TensionProbability)
	}
}

func TestAnalyzeFinancialRunwaySentinel(t *testing.T) {
	for _, fixed := range []float64{0, -100} {
		in := strongFinancial
		in.FixedCosts = fixed
		f := AnalyzeFinancial(in)
		if f.Runway != RunwaySentinel {
			t.Errorf("fixedCosts=%v: runway got %v, want %v", fixed, f.Runway, RunwaySentinel)
		}
	}
}

func TestAnalyzeFinancialExtremeRatiosStayFinite(t *testing.T) {
	tiny := strongFinancial
	tiny.FixedCosts = 1e-300
	tiny.Cash = 1e10
	f := AnalyzeFinancial(tiny)
	if f.Runway != RunwaySentinel {
		t.Errorf("tiny fixed costs: runway got %v, want %v", f.Runway, RunwaySentinel)
	}

	overdrawn := tiny
	overdrawn.Cash = -1e10
	f = AnalyzeFinancial(overdrawn)
	if math.IsInf(f.Runway, 0) || f.Runway >= 0 {
		t.Errorf("negative cash: runway should be finite and negative, got %v", f.Runway)
	}

	huge := strongFinancial
	huge.Revenue = 0
	huge.Debt = math.MaxFloat64
	huge.IntendedLeverage = math.MaxFloat64
	f = AnalyzeFinancial(huge)
	for name, v := range map[string]float64{"leverage": f.Leverage, "intended": f.IntendedLeverage, "runway": f.Runway} {
		if math.IsInf(v, 0) || math.IsNaN(v) {
			t.Errorf("%s: expected finite, got %v", name, v)
		}
	}
	if f.TensionProbability != 95 {
		t.Errorf("tension probability should cap at 95, got %d", f.TensionProbability)
	}
}

func TestAnalyzeFinancialWeak(t *testing.T) {
	f := AnalyzeFinancial(weakFinancial)
	if f.Leverage != 1.67 {
		t.Errorf("leverage: got %v, want 1.67", f.Leverage)
	}
	if f.IntendedLeverage != 2.5 {
		t.Errorf("intended leverage: got %v, want 2.5", f.IntendedLeverage)
	}
	if f.TensionProbability != 71 {
		t.Errorf("tension probability: got %d, want 71", f.TensionProbability)
	}
	if f.Score > 15 {
		t.Errorf("weak financial should score low, got %d", f.Score)
	}
}

func TestAnalyzeFinancialPenalizesLeverage(t *testing.T) {
	low, high := strongFinancial, strongFinancial
	low.Debt = 0
	high.Debt = 500000
	if AnalyzeFinancial(low).Score <= AnalyzeFinancial(high).Score {
		t.Fatal("higher debt should lower the financial score")
	}
}

func TestAnalyzeFinancialTensionCeiling(t *testing.T) {
	in := weakFinancial
	in.IntendedLeverage = 10_000_000
	if got := AnalyzeFinancial(in).TensionProbability; got != 95 {
		t.Fatalf("tension probability should cap at 95, got %d", got)
	}
}

func TestAnalyzeFinancialNaNInput(t *testing.T) {
	in := strongFinancial
	in.Cash = math.NaN()
	in.Revenue = math.Inf(1)
	f := AnalyzeFinancial(in)
	if f.Score < 0 || f.Score > 100 {
		t.Fatalf("score out of bounds: %d", f.Score)
	}
	if math.IsNaN(f.Runway) || math.IsNaN(f.Leverage) {
		t.Fatal("ratios must stay finite")
	}
}

// #endregion financial-tests

// #region relational-tests

func TestAnalyzeRelational(t *testing.T) {
	r := AnalyzeRelational(RelationalInput{PartnerAlignment: 50, TeamStability: 50, EcosystemHealth: 50, ActiveConflicts: 1, CriticalDependencies: 2})
	// 15 + 15 + 10 - 8 - 10 + 20
	if r.Score != 42 {
		t.Errorf("score: got %d, want 42", r.Score)
	}
	// 12 + 16
	if r.ConflictRisk != 28 {
		t.Errorf("conflict risk: got %d, want 28", r.ConflictRisk)
	}
}

func TestAnalyzeRelationalWeakClamps(t *testing.T) {
	r := AnalyzeRelational(weakRelational)
	if r.Score != 0 {
		t.Errorf("score should clamp to 0, got %d", r.Score)
	}
	if r.ConflictRisk != 100 {
		t.Errorf("conflict risk should clamp to 100, got %d", r.ConflictRisk)
	}
}

// #endregion relational-tests

func TestSetMean(t *testing.T) {
	s := Set{
		Human:      Human{Score: 80},
		Business:   Business{Score: 60},
		Financial:  Financial{Score: 40},
		Relational: Relational{Score: 20},
	}
	if s.Mean() != 50 {
		t.Fatalf("mean: got %v, want 50", s.Mean())
	}
}
