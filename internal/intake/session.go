// Package intake collects engine input from people: a sequential Q&A
// session for chat bots and terminal wizards, and YAML/JSON documents.
package intake

import (
	"fmt"
	"strings"

	"github.com/lifeos/governance/internal/capacity"
	"github.com/lifeos/governance/internal/constitution"
	"github.com/lifeos/governance/internal/engine"
	"github.com/lifeos/governance/internal/layers"
)

// #region session

// Session walks the intake steps one answer at a time. It is not safe for
// concurrent use; chat front ends keep one per conversation.
type Session struct {
	channel string
	steps   []Step
	pos     int
	answers map[string]string
}

// NewSession starts a session. channel names the front end and appears in
// the default decision description.
func NewSession(channel string) *Session {
	return &Session{
		channel: channel,
		steps:   Steps(),
		answers: map[string]string{},
	}
}

// Current returns the step awaiting an answer.
func (s *Session) Current() (Step, bool) {
	if s.Done() {
		return Step{}, false
	}
	return s.steps[s.pos], true
}

// Answer records text for the current step and advances. A choice outside
// the step's options is rejected and the step stays current.
func (s *Session) Answer(text string) error {
	step, ok := s.Current()
	if !ok {
		return ErrSessionDone
	}
	value := strings.TrimSpace(text)
	if step.Kind == KindChoice {
		v, ok := normalizeChoice(step, value)
		if !ok {
			return fmt.Errorf("%q is not one of %s", value, strings.Join(step.Choices, ", "))
		}
		value = v
	}
	s.answers[step.Key] = value
	s.pos++
	return nil
}

// Back steps back to the previous question. It reports false at the start.
func (s *Session) Back() bool {
	if s.pos == 0 {
		return false
	}
	s.pos--
	return true
}

// Done reports whether every step has an answer.
func (s *Session) Done() bool {
	return s.pos >= len(s.steps)
}

// Progress returns answered and total step counts.
func (s *Session) Progress() (int, int) {
	return s.pos, len(s.steps)
}

// Input builds the engine input from the answers.
func (s *Session) Input() (engine.Input, error) {
	if !s.Done() {
		return engine.Input{}, fmt.Errorf("%w: %d of %d answered", ErrIncomplete, s.pos, len(s.steps))
	}
	n := func(key string) float64 { return ParseNumber(s.answers[key]) }

	description := s.answers["description"]
	if description == "" {
		description = fmt.Sprintf("Decisão via %s", s.channel)
	}

	return engine.Input{
		Assessment: capacity.Assessment{
			Energy:     n("energy"),
			Clarity:    n("clarity"),
			Stress:     n("stress"),
			Confidence: n("confidence"),
			Load:       n("load"),
		},
		Business: layers.BusinessInput{
			Revenue:            n("revenue"),
			Costs:              n("costs"),
			FounderDependence:  n("founder_dependence"),
			ActiveFronts:       n("active_fronts"),
			ProcessMaturity:    n("process_maturity"),
			DelegationCapacity: n("delegation_capacity"),
		},
		Financial: layers.FinancialInput{
			Revenue:          n("fin_revenue"),
			Cash:             n("cash"),
			Debt:             n("debt"),
			FixedCosts:       n("fixed_costs"),
			IntendedLeverage: n("intended_leverage"),
		},
		Relational: layers.RelationalInput{
			ActiveConflicts:      n("active_conflicts"),
			CriticalDependencies: n("critical_dependencies"),
			PartnerAlignment:     n("partner_alignment"),
			TeamStability:        n("team_stability"),
			EcosystemHealth:      n("ecosystem_health"),
		},
		Decision: engine.Decision{
			Description:       description,
			Type:              constitution.DecisionTypeID(s.answers["type"]),
			Impact:            engine.Impact(s.answers["impact"]),
			Reversibility:     engine.ReversibilityModerate,
			Urgency:           engine.UrgencyModerate,
			ResourcesRequired: engine.ResourcesModerate,
		},
	}, nil
}

// #endregion session
