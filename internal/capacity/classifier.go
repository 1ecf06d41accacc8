// Package capacity classifies a capacity assessment into a discrete state.
package capacity

import (
	"fmt"
	"math"
	"strings"

	"github.com/lifeos/governance/internal/constitution"
	"github.com/lifeos/governance/internal/score"
)

// #region classify

// Classify maps an assessment to a capacity state, its 0-100 score and a
// confidence in [0.5, 1.0].
func Classify(a Assessment) Classification {
	return ClassifyWith(a, DefaultWeights())
}

// ClassifyWith is Classify with explicit weights.
func ClassifyWith(a Assessment, w Weights) Classification {
	a = a.sanitized()

	s := score.Clamp(
		a.Energy*w.Energy +
			a.Clarity*w.Clarity +
			(100-a.Stress)*w.Stress +
			a.Confidence*w.Confidence +
			(100-a.Load)*w.Load,
	)

	state := lookupState(s)

	// Distance to the nearest edge of the band models certainty.
	dist := math.Min(math.Abs(float64(s-state.Min)), math.Abs(float64(s-state.Max)))
	conf := math.Min(1.0, 0.5+dist/50)

	return Classification{
		State:      state,
		Score:      s,
		Confidence: score.RoundTo(conf, 2),
	}
}

// lookupState returns the first band, in ascending-Min order, containing s.
func lookupState(s int) constitution.StateInfo {
	for _, st := range constitution.StatesByMin() {
		if st.Contains(s) {
			return st
		}
	}
	return constitution.DefaultState()
}

func (a Assessment) sanitized() Assessment {
	return Assessment{
		Energy:     score.Sanitize(a.Energy),
		Clarity:    score.Sanitize(a.Clarity),
		Stress:     score.Sanitize(a.Stress),
		Confidence: score.Sanitize(a.Confidence),
		Load:       score.Sanitize(a.Load),
	}
}

// #endregion classify

// #region transition

// CheckTransition validates previous -> current against the constitution.
// It never blocks: an invalid jump only yields an advisory warning.
// An empty previous id or an unchanged state is always ok.
func CheckTransition(previous, current constitution.StateID) (string, bool) {
	if previous == "" || previous == current {
		return "", true
	}
	if constitution.IsValidTransition(previous, current) {
		return "", true
	}

	allowed := constitution.AllowedTransitions(previous)
	names := make([]string, len(allowed))
	for i, id := range allowed {
		names[i] = string(id)
	}
	return fmt.Sprintf(
		"Art. II: Transição %s → %s não é válida. Transições permitidas: %s. Pode indicar mudança abrupta.",
		previous, current, strings.Join(names, ", "),
	), false
}

// #endregion transition
