package eval

import (
	"fmt"

	"github.com/lifeos/governance/internal/engine"
)

// #region eval-harness
// EvalHarness validates a finished result against the engine's invariants.
// It never changes a verdict; callers log failures.
type EvalHarness struct {
	config EvalConfig
}

// NewEvalHarness creates an eval harness with the given configuration.
func NewEvalHarness(config EvalConfig) *EvalHarness {
	return &EvalHarness{config: config}
}

// Run checks score bounds, gap, confidence, plan presence, verdict agreement
// and scenario shape. The transition metric is informational only.
func (h *EvalHarness) Run(r engine.Result) EvalResult {
	var metrics []EvalMetric
	var failReasons []string

	check := func(name string, value float64, pass bool, reason string) {
		metrics = append(metrics, EvalMetric{Name: name, Value: value, Pass: pass})
		if !pass {
			failReasons = append(failReasons, reason)
		}
	}

	// 1. Score bounds
	bounded := func(name string, v int) {
		check(name, float64(v), v >= 0 && v <= 100, fmt.Sprintf("%s %d outside [0,100]", name, v))
	}
	bounded("overall_score", r.OverallScore)
	bounded("layer_human", r.Layers.Human.Score)
	bounded("layer_business", r.Layers.Business.Score)
	bounded("layer_financial", r.Layers.Financial.Score)
	bounded("layer_relational", r.Layers.Relational.Score)
	for _, d := range r.DomainDetails {
		bounded("domain_"+string(d.ID), d.Score)
	}

	// 2. Gap
	wantGap := max(0, r.DecisionType.MinRequired-r.OverallScore)
	check("gap", float64(r.Gap), r.Gap == wantGap,
		fmt.Sprintf("gap %d, expected %d", r.Gap, wantGap))

	// 3. Confidence
	conf := r.StateConfidence
	check("state_confidence", conf, conf >= h.config.MinConfidence && conf <= h.config.MaxConfidence,
		fmt.Sprintf("state confidence %.2f outside [%.2f,%.2f]", conf, h.config.MinConfidence, h.config.MaxConfidence))

	// 4. Plan presence and verdict agreement
	hasPlan := r.ReadinessPlan != nil
	check("plan_presence", boolValue(hasPlan), hasPlan == r.Blocked,
		fmt.Sprintf("plan present=%v but blocked=%v", hasPlan, r.Blocked))
	check("verdict", boolValue(r.Blocked), r.Approved() != r.Blocked,
		fmt.Sprintf("verdict %q disagrees with blocked=%v", r.Verdict, r.Blocked))
	if hasPlan {
		n := len(r.ReadinessPlan.Actions)
		check("plan_actions", float64(n), n >= h.config.MinPlanActions,
			fmt.Sprintf("plan has %d actions, expected at least %d", n, h.config.MinPlanActions))
	}

	// 5. Scenario shape
	check("scenario_count", float64(len(r.Scenarios)), len(r.Scenarios) == h.config.ScenarioCount,
		fmt.Sprintf("%d scenarios, expected %d", len(r.Scenarios), h.config.ScenarioCount))
	for _, s := range r.Scenarios {
		n := len(s.CashProjection)
		check("scenario_"+s.ID+"_points", float64(n), n == h.config.HorizonPoints,
			fmt.Sprintf("scenario %s has %d cash points, expected %d", s.ID, n, h.config.HorizonPoints))
	}

	// 6. Transition: informational, does not fail
	metrics = append(metrics, EvalMetric{
		Name:  "transition_valid",
		Value: boolValue(r.TransitionWarning == nil),
		Pass:  r.TransitionWarning == nil,
	})

	passed := len(failReasons) == 0
	reason := "all checks passed"
	if !passed {
		reason = fmt.Sprintf("eval failed: %s", failReasons[0])
		if len(failReasons) > 1 {
			reason = fmt.Sprintf("eval failed: %d checks: %s", len(failReasons), failReasons[0])
		}
	}

	return EvalResult{
		Passed:  passed,
		Metrics: metrics,
		Reason:  reason,
	}
}

// #endregion eval-harness

// #region helpers
func boolValue(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

// Metric returns the named metric, if present.
func (r EvalResult) Metric(name string) (EvalMetric, bool) {
	for _, m := range r.Metrics {
		if m.Name == name {
			return m, true
		}
	}
	return EvalMetric{}, false
}

// #endregion helpers
