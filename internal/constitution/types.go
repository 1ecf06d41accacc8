package constitution

// #region state-id
// StateID identifies a capacity state.
type StateID string

const (
	StateActiveFailure       StateID = "active_failure"
	StateInsufficient        StateID = "insufficient"
	StateFailureRisk         StateID = "failure_risk"
	StateUnderTension        StateID = "under_tension"
	StateRecovery            StateID = "recovery"
	StateBuilding            StateID = "building"
	StateStable              StateID = "stable"
	StateControlledExpansion StateID = "controlled_expansion"
)

// #endregion state-id

// #region state-info
// StateInfo is one qualitative band of the [0,100] capacity axis.
// Severity runs inversely to capacity: 9 is worst, 1 is best.
type StateInfo struct {
	ID       StateID `json:"id"`
	Label    string  `json:"label"`
	Severity int     `json:"severity"`
	Color    string  `json:"color"`
	Min      int     `json:"min"`
	Max      int     `json:"max"`
}

// Contains reports whether score falls inside [Min, Max].
func (s StateInfo) Contains(score int) bool {
	return score >= s.Min && score <= s.Max
}

// #endregion state-info

// #region domain
// DomainID names one of the six weighted evaluation axes.
type DomainID string

const (
	DomainFinancial   DomainID = "financial"
	DomainEmotional   DomainID = "emotional"
	DomainDecisional  DomainID = "decisional"
	DomainOperational DomainID = "operational"
	DomainRelational  DomainID = "relational"
	DomainEnergetic   DomainID = "energetic"
)

// Domain is a named, weighted evaluation axis.
type Domain struct {
	ID     DomainID `json:"id"`
	Label  string   `json:"label"`
	Weight float64  `json:"weight"`
}

// #endregion domain

// #region decision-type
// DecisionTypeID is the declared class of a decision. It alone drives the
// required capacity; impact, urgency and the rest are audit-only.
type DecisionTypeID string

const (
	DecisionExistential DecisionTypeID = "existential"
	DecisionStructural  DecisionTypeID = "structural"
	DecisionStrategic   DecisionTypeID = "strategic"
	DecisionTactical    DecisionTypeID = "tactical"
)

// DecisionType holds the minimum capacity required to approve a decision class.
type DecisionType struct {
	ID         DecisionTypeID `json:"id"`
	Label      string         `json:"label"`
	Level      int            `json:"level"`
	MinOverall int            `json:"min_overall"`
	MinDomain  int            `json:"min_domain"`
}

// #endregion decision-type

// #region alert-level
// AlertLevel is the static band a domain score falls into.
type AlertLevel string

const (
	AlertOK         AlertLevel = "ok"
	AlertPreventive AlertLevel = "preventive"
	AlertAttention  AlertLevel = "attention"
	AlertCritical   AlertLevel = "critical"
)

// Band is an inclusive [Min, Max] score range.
type Band struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// ThresholdBands are the alert cutoffs. They are independent of, and may
// overlap with, decision-type minimums.
type ThresholdBands struct {
	Preventive Band `json:"preventive"`
	Attention  Band `json:"attention"`
	Critical   Band `json:"critical"`
}

// #endregion alert-level
