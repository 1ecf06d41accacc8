package layers

// #region inputs

// BusinessInput describes the operating business. Money is per month.
type BusinessInput struct {
	Revenue            float64 `json:"revenue" yaml:"revenue"`
	Costs              float64 `json:"costs" yaml:"costs"`
	FounderDependence  float64 `json:"founder_dependence" yaml:"founder_dependence"`   // 0-100
	ActiveFronts       float64 `json:"active_fronts" yaml:"active_fronts"`             // 1-10
	ProcessMaturity    float64 `json:"process_maturity" yaml:"process_maturity"`       // 0-100
	DelegationCapacity float64 `json:"delegation_capacity" yaml:"delegation_capacity"` // 0-100
}

// FinancialInput describes the financial position. Revenue and FixedCosts
// are per month; Cash, Debt and IntendedLeverage are totals.
type FinancialInput struct {
	Revenue          float64 `json:"revenue" yaml:"revenue"`
	Cash             float64 `json:"cash" yaml:"cash"`
	Debt             float64 `json:"debt" yaml:"debt"`
	FixedCosts       float64 `json:"fixed_costs" yaml:"fixed_costs"`
	IntendedLeverage float64 `json:"intended_leverage" yaml:"intended_leverage"`
}

// RelationalInput describes partners, team and ecosystem.
type RelationalInput struct {
	ActiveConflicts      float64 `json:"active_conflicts" yaml:"active_conflicts"`           // 0-10
	CriticalDependencies float64 `json:"critical_dependencies" yaml:"critical_dependencies"` // 0-10
	PartnerAlignment     float64 `json:"partner_alignment" yaml:"partner_alignment"`         // 0-100
	TeamStability        float64 `json:"team_stability" yaml:"team_stability"`               // 0-100
	EcosystemHealth      float64 `json:"ecosystem_health" yaml:"ecosystem_health"`           // 0-100
}

// #endregion inputs

// #region results

// Human is the human layer output. Score is the classifier score.
type Human struct {
	Score            int `json:"score"`
	PressureCapacity int `json:"pressure_capacity"`
	ImpulsivityRisk  int `json:"impulsivity_risk"`
}

// Business is the business layer output.
type Business struct {
	Score      int `json:"score"`
	Margin     int `json:"margin"`
	Complexity int `json:"complexity"`
}

// Financial is the financial layer output. Leverage and runway ratios are
// unbounded.
type Financial struct {
	Score              int     `json:"score"`
	Leverage           float64 `json:"leverage"`
	IntendedLeverage   float64 `json:"intended_leverage"`
	Runway             float64 `json:"runway"`
	TensionProbability int     `json:"tension_probability"`
}

// Relational is the relational layer output.
type Relational struct {
	Score        int `json:"score"`
	ConflictRisk int `json:"conflict_risk"`
}

// Set bundles the four layer outputs.
type Set struct {
	Human      Human      `json:"human"`
	Business   Business   `json:"business"`
	Financial  Financial  `json:"financial"`
	Relational Relational `json:"relational"`
}

// Mean is the average of the four layer scores.
func (s Set) Mean() float64 {
	return float64(s.Human.Score+s.Business.Score+s.Financial.Score+s.Relational.Score) / 4
}

// #endregion results
