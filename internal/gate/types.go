package gate

import "github.com/lifeos/governance/internal/constitution"

// #region block-reason
// BlockReason enumerates the independent sufficient conditions for a block.
type BlockReason string

const (
	BlockCriticalViolation BlockReason = "critical_violation"
	BlockStateSeverity     BlockReason = "state_severity"
	BlockOverallTooLow     BlockReason = "overall_below_minimum"
)

// #endregion block-reason

// #region domain-scores
// DomainScores are the six threshold-checked domain scores, each 0-100.
type DomainScores struct {
	Financial   int `json:"financial"`
	Emotional   int `json:"emotional"`
	Decisional  int `json:"decisional"`
	Operational int `json:"operational"`
	Relational  int `json:"relational"`
	Energetic   int `json:"energetic"`
}

// Get returns the score for a domain id, or 0 for unknown ids.
func (d DomainScores) Get(id constitution.DomainID) int {
	switch id {
	case constitution.DomainFinancial:
		return d.Financial
	case constitution.DomainEmotional:
		return d.Emotional
	case constitution.DomainDecisional:
		return d.Decisional
	case constitution.DomainOperational:
		return d.Operational
	case constitution.DomainRelational:
		return d.Relational
	case constitution.DomainEnergetic:
		return d.Energetic
	}
	return 0
}

// Average is the unweighted mean of the six scores. This is the blocking
// aggregate, distinct from the verdict's overall score.
func (d DomainScores) Average() float64 {
	return float64(d.Financial+d.Emotional+d.Decisional+d.Operational+d.Relational+d.Energetic) / 6
}

// #endregion domain-scores

// #region domain-detail
// DomainDetail pairs a domain score with its alert band for display.
type DomainDetail struct {
	ID         constitution.DomainID   `json:"id"`
	Label      string                  `json:"label"`
	Score      int                     `json:"score"`
	AlertLevel constitution.AlertLevel `json:"alert_level"`
}

// #endregion domain-detail

// #region violation
// Violation is a domain that is both inside an alert band and below the
// decision type's per-domain minimum.
type Violation struct {
	Domain   constitution.DomainID   `json:"domain"`
	Label    string                  `json:"label"`
	Score    int                     `json:"score"`
	Required int                     `json:"required"`
	Level    constitution.AlertLevel `json:"level"`
}

// #endregion violation

// #region gate-config
// GateConfig holds the block policy knobs.
type GateConfig struct {
	BlockSeverity int // state severity at or above this blocks on its own
}

// DefaultGateConfig returns the constitutional block policy.
func DefaultGateConfig() GateConfig {
	return GateConfig{BlockSeverity: 5}
}

// #endregion gate-config

// #region gate-decision
// GateDecision is the output of the threshold check.
type GateDecision struct {
	Blocked       bool                    `json:"blocked"`
	Violations    []Violation             `json:"violations"`
	AlertLevel    constitution.AlertLevel `json:"alert_level"` // ok | attention | critical
	Reasons       []BlockReason           `json:"reasons,omitempty"`
	DomainAverage float64                 `json:"domain_average"`
}

// #endregion gate-decision
