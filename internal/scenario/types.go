package scenario

// HorizonMonths is the last projected month; projections hold HorizonMonths+1 points.
const HorizonMonths = 12

// #region config
// Config is one fixed stress projection.
type Config struct {
	ID             string
	Name           string
	Color          string
	LoadMultiplier float64 // applied to leader load and systemic risk
	CashMultiplier float64 // applied to monthly cash flow
}

// #endregion config

// #region inputs
// Inputs carries the layer outputs and raw cash figures the simulator reads.
type Inputs struct {
	HumanScore         int
	BusinessComplexity int
	ConflictRisk       int
	FinancialScore     int
	Revenue            float64
	FixedCosts         float64
	Cash               float64
}

// Base is the unstressed starting point shared by every scenario.
type Base struct {
	LeaderLoad      int     `json:"leader_load"`
	SystemicRisk    int     `json:"systemic_risk"`
	MonthlyCashFlow float64 `json:"monthly_cash_flow"`
}

// #endregion inputs

// #region scenario
// CashPoint is the projected cash at the start of a month.
type CashPoint struct {
	Month int     `json:"month"`
	Cash  float64 `json:"cash"`
}

// Scenario is one projected outcome.
type Scenario struct {
	ID                 string      `json:"id"`
	Name               string      `json:"name"`
	Color              string      `json:"color"`
	LeaderLoad         int         `json:"leader_load"`
	SystemicRisk       int         `json:"systemic_risk"`
	FailureProbability int         `json:"failure_probability"`
	MonthsToTension    int         `json:"months_to_tension"`
	ComplexityAdded    int         `json:"complexity_added"`
	CashProjection     []CashPoint `json:"cash_projection"`
	BreakMonth         int         `json:"break_month"` // -1: cash stays non-negative through the horizon
}

// Breaks reports whether cash goes negative within the horizon.
func (s Scenario) Breaks() bool {
	return s.BreakMonth >= 0
}

// #endregion scenario
