package scenario

import (
	"math"
	"testing"
)

func healthyInputs() Inputs {
	return Inputs{
		HumanScore:         80,
		BusinessComplexity: 32,
		ConflictRisk:       28,
		FinancialScore:     92,
		Revenue:            50000,
		FixedCosts:         15000,
		Cash:               200000,
	}
}

func TestSimulateReturnsFourInOrder(t *testing.T) {
	out := Simulate(healthyInputs(), 0)
	want := []string{"optimistic", "realistic", "stress", "hfailure"}
	if len(out) != len(want) {
		t.Fatalf("expected %d scenarios, got %d", len(want), len(out))
	}
	for i, id := range want {
		if out[i].ID != id {
			t.Fatalf("scenario %d: expected %s, got %s", i, id, out[i].ID)
		}
		if len(out[i].CashProjection) != HorizonMonths+1 {
			t.Fatalf("%s: expected %d cash points, got %d", id, HorizonMonths+1, len(out[i].CashProjection))
		}
	}
}

func TestComputeBase(t *testing.T) {
	b := ComputeBase(healthyInputs())
	if b.LeaderLoad != 20 {
		t.Fatalf("expected leader load 20, got %d", b.LeaderLoad)
	}
	if b.SystemicRisk != 24 {
		t.Fatalf("expected systemic risk 24, got %d", b.SystemicRisk)
	}
	if b.MonthlyCashFlow != 35000 {
		t.Fatalf("expected cash flow 35000, got %v", b.MonthlyCashFlow)
	}
}

func TestSimulateHealthyValues(t *testing.T) {
	out := Simulate(healthyInputs(), 0)

	opt := out[0]
	if opt.LeaderLoad != 14 || opt.SystemicRisk != 17 || opt.FailureProbability != 16 {
		t.Fatalf("optimistic: got load=%d risk=%d fail=%d", opt.LeaderLoad, opt.SystemicRisk, opt.FailureProbability)
	}
	if opt.MonthsToTension != 17 || opt.ComplexityAdded != 11 {
		t.Fatalf("optimistic: got tension=%d complexity=%d", opt.MonthsToTension, opt.ComplexityAdded)
	}

	hf := out[3]
	if hf.LeaderLoad != 36 || hf.SystemicRisk != 43 || hf.FailureProbability != 40 {
		t.Fatalf("hfailure: got load=%d risk=%d fail=%d", hf.LeaderLoad, hf.SystemicRisk, hf.FailureProbability)
	}
	if hf.MonthsToTension != 7 || hf.ComplexityAdded != 29 {
		t.Fatalf("hfailure: got tension=%d complexity=%d", hf.MonthsToTension, hf.ComplexityAdded)
	}

	if out[1].MonthsToTension != 12 || out[2].MonthsToTension != 9 {
		t.Fatalf("expected tension 12 and 9, got %d and %d", out[1].MonthsToTension, out[2].MonthsToTension)
	}
	if got := out[1].CashProjection[12].Cash; got != 620000 {
		t.Fatalf("realistic month 12: expected 620000, got %v", got)
	}
	for _, s := range out {
		if s.Breaks() {
			t.Fatalf("%s: expected no break, got month %d", s.ID, s.BreakMonth)
		}
	}
}

func TestSimulateBreakMonth(t *testing.T) {
	in := Inputs{HumanScore: 50, BusinessComplexity: 50, ConflictRisk: 50, FinancialScore: 50,
		Revenue: 1000, FixedCosts: 5000, Cash: 10000}
	out := Simulate(in, 0)

	want := map[string]int{"optimistic": 3, "realistic": 3, "stress": 4, "hfailure": 7}
	for _, s := range out {
		if s.BreakMonth != want[s.ID] {
			t.Fatalf("%s: expected break month %d, got %d", s.ID, want[s.ID], s.BreakMonth)
		}
		if s.MonthsToTension != s.BreakMonth {
			t.Fatalf("%s: expected tension to equal break month, got %d", s.ID, s.MonthsToTension)
		}
	}
}

func TestSimulateNegativeStartingCash(t *testing.T) {
	in := healthyInputs()
	in.Cash = -100
	in.Revenue = 0
	out := Simulate(in, 0)
	for _, s := range out {
		if s.BreakMonth != 0 {
			t.Fatalf("%s: expected break month 0, got %d", s.ID, s.BreakMonth)
		}
		if s.MonthsToTension < 1 {
			t.Fatalf("%s: months to tension must be at least 1, got %d", s.ID, s.MonthsToTension)
		}
	}
}

func TestSimulateGapRaisesLoad(t *testing.T) {
	low := Simulate(healthyInputs(), 0)
	high := Simulate(healthyInputs(), 40)
	for i := range low {
		if high[i].LeaderLoad < low[i].LeaderLoad {
			t.Fatalf("%s: gap lowered leader load %d -> %d", low[i].ID, low[i].LeaderLoad, high[i].LeaderLoad)
		}
	}
	if high[1].LeaderLoad != 32 {
		t.Fatalf("realistic with gap 40: expected load 32, got %d", high[1].LeaderLoad)
	}
}

func TestSimulateFailureCappedAt95(t *testing.T) {
	in := Inputs{HumanScore: 0, BusinessComplexity: 100, ConflictRisk: 100, FinancialScore: 0}
	out := Simulate(in, 100)
	for _, s := range out {
		if s.FailureProbability > 95 {
			t.Fatalf("%s: failure probability %d above 95", s.ID, s.FailureProbability)
		}
		if s.LeaderLoad > 100 || s.SystemicRisk > 100 || s.ComplexityAdded > 100 {
			t.Fatalf("%s: value out of range: %+v", s.ID, s)
		}
	}
	if out[3].FailureProbability != 95 {
		t.Fatalf("hfailure: expected 95, got %d", out[3].FailureProbability)
	}
}

func TestConfigsIsCopy(t *testing.T) {
	c := Configs()
	c[0].Name = "mutated"
	if Configs()[0].Name != "Otimista" {
		t.Fatal("Configs must return a copy")
	}
}

func TestSimulateHugeCashFlowStaysFinite(t *testing.T) {
	in := healthyInputs()
	in.Revenue = math.MaxFloat64
	in.FixedCosts = -math.MaxFloat64
	in.Cash = math.MaxFloat64
	for _, s := range Simulate(in, 0) {
		for _, p := range s.CashProjection {
			if math.IsInf(p.Cash, 0) || math.IsNaN(p.Cash) {
				t.Fatalf("%s month %d: non-finite cash %v", s.ID, p.Month, p.Cash)
			}
		}
	}
}
