// Package constitution holds the static governance tables: capacity states,
// valid transitions, decision types, domains and alert thresholds.
//
// The tables are package-level values initialized once; accessors return
// copies so no caller can mutate them at runtime.
package constitution

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// Version stamps every result and audit row produced against these tables.
const Version = "0.4.0"

// #region tables

// states keep their declaration order; classification sorts by Min.
// Ranges overlap (failure_risk 20-35 vs insufficient 16-30 vs recovery 20-40)
// and the first match in ascending-Min order wins.
var states = []StateInfo{
	{ID: StateActiveFailure, Label: "Falha Estrutural Ativa", Severity: 9, Color: "#E03131", Min: 0, Max: 15},
	{ID: StateInsufficient, Label: "Capacidade Insuficiente", Severity: 8, Color: "#E8590C", Min: 16, Max: 30},
	{ID: StateFailureRisk, Label: "Risco de Falha", Severity: 7, Color: "#D9780F", Min: 20, Max: 35},
	{ID: StateUnderTension, Label: "Sob Tensão", Severity: 5, Color: "#C09A1F", Min: 36, Max: 50},
	{ID: StateRecovery, Label: "Recuperação Estrutural", Severity: 4, Color: "#7C8A30", Min: 20, Max: 40},
	{ID: StateBuilding, Label: "Em Construção", Severity: 3, Color: "#6B9E3A", Min: 40, Max: 60},
	{ID: StateStable, Label: "Capacidade Estável", Severity: 2, Color: "#2B9348", Min: 55, Max: 75},
	{ID: StateControlledExpansion, Label: "Expansão Controlada", Severity: 1, Color: "#0B7A4C", Min: 76, Max: 100},
}

var transitions = map[StateID][]StateID{
	StateActiveFailure:       {StateRecovery},
	StateInsufficient:        {StateBuilding, StateRecovery},
	StateFailureRisk:         {StateActiveFailure, StateRecovery, StateUnderTension},
	StateUnderTension:        {StateStable, StateFailureRisk, StateRecovery},
	StateRecovery:            {StateBuilding, StateStable, StateInsufficient},
	StateBuilding:            {StateStable, StateInsufficient, StateUnderTension},
	StateStable:              {StateControlledExpansion, StateUnderTension, StateBuilding},
	StateControlledExpansion: {StateStable, StateUnderTension},
}

// decisionTypes are ordered by descending required capacity.
var decisionTypes = []DecisionType{
	{ID: DecisionExistential, Label: "Existencial", Level: 1, MinOverall: 85, MinDomain: 70},
	{ID: DecisionStructural, Label: "Estrutural", Level: 2, MinOverall: 70, MinDomain: 55},
	{ID: DecisionStrategic, Label: "Estratégica", Level: 3, MinOverall: 55, MinDomain: 40},
	{ID: DecisionTactical, Label: "Tática", Level: 4, MinOverall: 35, MinDomain: 25},
}

var domains = []Domain{
	{ID: DomainFinancial, Label: "Financeira", Weight: 0.20},
	{ID: DomainEmotional, Label: "Emocional", Weight: 0.18},
	{ID: DomainDecisional, Label: "Decisória", Weight: 0.17},
	{ID: DomainOperational, Label: "Operacional", Weight: 0.18},
	{ID: DomainRelational, Label: "Relacional", Weight: 0.13},
	{ID: DomainEnergetic, Label: "Energética", Weight: 0.14},
}

var thresholds = ThresholdBands{
	Preventive: Band{Min: 40, Max: 55},
	Attention:  Band{Min: 25, Max: 39},
	Critical:   Band{Min: 0, Max: 24},
}

// statesByMin is the classification iteration order, computed once.
var statesByMin = func() []StateInfo {
	sorted := make([]StateInfo, len(states))
	copy(sorted, states)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Min < sorted[j].Min })
	return sorted
}()

// #endregion tables

// #region accessors

// States returns the capacity states in declaration order.
func States() []StateInfo {
	out := make([]StateInfo, len(states))
	copy(out, states)
	return out
}

// StatesByMin returns the capacity states sorted by ascending Min, the
// order classification walks them in. Ties keep declaration order.
func StatesByMin() []StateInfo {
	out := make([]StateInfo, len(statesByMin))
	copy(out, statesByMin)
	return out
}

// DefaultState is the fallback when no band contains a score.
func DefaultState() StateInfo {
	return states[0]
}

// StateByID looks up a state by id.
func StateByID(id StateID) (StateInfo, bool) {
	for _, s := range states {
		if s.ID == id {
			return s, true
		}
	}
	return StateInfo{}, false
}

// Transitions returns a copy of the valid transition map.
func Transitions() map[StateID][]StateID {
	out := make(map[StateID][]StateID, len(transitions))
	for from, to := range transitions {
		out[from] = append([]StateID(nil), to...)
	}
	return out
}

// AllowedTransitions returns the states reachable from `from` in one cycle.
// Unknown ids have none.
func AllowedTransitions(from StateID) []StateID {
	return append([]StateID(nil), transitions[from]...)
}

// IsValidTransition reports whether from -> to is an allowed one-cycle jump.
// Staying in the same state is always valid.
func IsValidTransition(from, to StateID) bool {
	if from == to {
		return true
	}
	for _, t := range transitions[from] {
		if t == to {
			return true
		}
	}
	return false
}

// DecisionTypes returns the decision types, existential first.
func DecisionTypes() []DecisionType {
	out := make([]DecisionType, len(decisionTypes))
	copy(out, decisionTypes)
	return out
}

// LookupDecisionType returns the config for id and whether it exists.
func LookupDecisionType(id DecisionTypeID) (DecisionType, bool) {
	for _, dt := range decisionTypes {
		if dt.ID == id {
			return dt, true
		}
	}
	return DecisionType{}, false
}

// DecisionTypeFor returns the config for id, falling back to tactical for
// unknown ids.
func DecisionTypeFor(id DecisionTypeID) DecisionType {
	if dt, ok := LookupDecisionType(id); ok {
		return dt
	}
	dt, _ := LookupDecisionType(DecisionTactical)
	return dt
}

// Domains returns the six domains in their canonical order.
func Domains() []Domain {
	out := make([]Domain, len(domains))
	copy(out, domains)
	return out
}

// DomainByID looks up a domain by id.
func DomainByID(id DomainID) (Domain, bool) {
	for _, d := range domains {
		if d.ID == id {
			return d, true
		}
	}
	return Domain{}, false
}

// Thresholds returns the alert bands.
func Thresholds() ThresholdBands {
	return thresholds
}

// AlertLevelFor maps a domain score to its alert band. Scores above the
// preventive ceiling are ok.
func AlertLevelFor(score int) AlertLevel {
	switch {
	case score <= thresholds.Critical.Max:
		return AlertCritical
	case score <= thresholds.Attention.Max:
		return AlertAttention
	case score <= thresholds.Preventive.Max:
		return AlertPreventive
	default:
		return AlertOK
	}
}

// #endregion accessors

// #region validate

// Validate checks the invariants the tables must hold. Binaries call it once
// at startup.
func Validate() error {
	var errs []error

	var weightSum float64
	for _, d := range domains {
		weightSum += d.Weight
	}
	if math.Abs(weightSum-1.0) > 0.01 {
		errs = append(errs, fmt.Errorf("domain weights sum to %.4f, want 1.0", weightSum))
	}

	for s := 0; s <= 100; s++ {
		covered := false
		for _, st := range states {
			if st.Contains(s) {
				covered = true
				break
			}
		}
		if !covered {
			errs = append(errs, fmt.Errorf("score %d is not covered by any state", s))
		}
	}

	for _, st := range states {
		targets, ok := transitions[st.ID]
		if !ok {
			errs = append(errs, fmt.Errorf("state %s has no transitions entry", st.ID))
			continue
		}
		for _, t := range targets {
			if _, ok := StateByID(t); !ok {
				errs = append(errs, fmt.Errorf("transition %s -> %s targets unknown state", st.ID, t))
			}
		}
	}

	// decisionTypes is declared strongest first, so minimums must strictly decrease.
	for i := 1; i < len(decisionTypes); i++ {
		prev, cur := decisionTypes[i-1], decisionTypes[i]
		if cur.MinOverall >= prev.MinOverall || cur.MinDomain >= prev.MinDomain {
			errs = append(errs, fmt.Errorf("decision type %s minimums must be below %s", cur.ID, prev.ID))
		}
	}

	return errors.Join(errs...)
}

// #endregion validate
