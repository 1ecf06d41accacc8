// Package gate aggregates layer outputs into domain scores and decides
// whether a decision is blocked.
package gate

import (
	"github.com/lifeos/governance/internal/capacity"
	"github.com/lifeos/governance/internal/constitution"
	"github.com/lifeos/governance/internal/layers"
	"github.com/lifeos/governance/internal/score"
)

// #region aggregate

// ComputeDomainScores remaps the layer scores and recomputes the emotional,
// decisional and energetic domains straight from the raw assessment.
func ComputeDomainScores(l layers.Set, a capacity.Assessment) DomainScores {
	energy := score.Sanitize(a.Energy)
	clarity := score.Sanitize(a.Clarity)
	stress := score.Sanitize(a.Stress)
	confidence := score.Sanitize(a.Confidence)
	load := score.Sanitize(a.Load)

	return DomainScores{
		Financial:   score.Clamp(float64(l.Financial.Score)),
		Emotional:   score.Clamp((100-stress)*0.5 + confidence*0.3 + energy*0.2),
		Decisional:  score.Clamp(clarity*0.4 + confidence*0.3 + (100-load)*0.3),
		Operational: score.Clamp(float64(l.Business.Score)),
		Relational:  score.Clamp(float64(l.Relational.Score)),
		Energetic:   score.Clamp(energy*0.6 + (100-load)*0.4),
	}
}

// Details lists every domain with its alert band, in canonical order.
func Details(scores DomainScores) []DomainDetail {
	doms := constitution.Domains()
	out := make([]DomainDetail, len(doms))
	for i, d := range doms {
		s := scores.Get(d.ID)
		out[i] = DomainDetail{
			ID:         d.ID,
			Label:      d.Label,
			Score:      s,
			AlertLevel: constitution.AlertLevelFor(s),
		}
	}
	return out
}

// #endregion aggregate

// #region gate

// Gate resolves thresholds and the block decision.
type Gate struct {
	config GateConfig
}

// NewGate creates a gate with the given configuration.
func NewGate(config GateConfig) *Gate {
	return &Gate{config: config}
}

// Evaluate checks each domain against the decision type, then applies the
// three block conditions. Each condition is sufficient on its own: a state
// severity at or above the configured level blocks even when every domain
// clears its minimum.
func (g *Gate) Evaluate(scores DomainScores, dt constitution.DecisionType, state constitution.StateInfo) GateDecision {
	violations := []Violation{}
	hasCritical := false

	for _, d := range constitution.Domains() {
		s := scores.Get(d.ID)
		level := constitution.AlertLevelFor(s)
		if level == constitution.AlertOK || s >= dt.MinDomain {
			continue
		}
		violations = append(violations, Violation{
			Domain:   d.ID,
			Label:    d.Label,
			Score:    s,
			Required: dt.MinDomain,
			Level:    level,
		})
		if level == constitution.AlertCritical {
			hasCritical = true
		}
	}

	avg := scores.Average()

	var reasons []BlockReason
	if hasCritical {
		reasons = append(reasons, BlockCriticalViolation)
	}
	if state.Severity >= g.config.BlockSeverity {
		reasons = append(reasons, BlockStateSeverity)
	}
	if avg < float64(dt.MinOverall) {
		reasons = append(reasons, BlockOverallTooLow)
	}

	alert := constitution.AlertOK
	switch {
	case hasCritical:
		alert = constitution.AlertCritical
	case len(violations) > 0:
		alert = constitution.AlertAttention
	}

	return GateDecision{
		Blocked:       len(reasons) > 0,
		Violations:    violations,
		AlertLevel:    alert,
		Reasons:       reasons,
		DomainAverage: avg,
	}
}

// CheckThresholds evaluates with the default gate. Unknown decision type
// ids fall back to tactical.
func CheckThresholds(scores DomainScores, decisionType constitution.DecisionTypeID, state constitution.StateInfo) GateDecision {
	return NewGate(DefaultGateConfig()).Evaluate(scores, constitution.DecisionTypeFor(decisionType), state)
}

// #endregion gate
