package replay

import (
	"fmt"
	"strings"

	"github.com/lifeos/governance/internal/constitution"
	"github.com/lifeos/governance/internal/engine"
	"github.com/lifeos/governance/internal/eval"
	"github.com/lifeos/governance/internal/gate"
)

// #region types

// Action values of a ReplayResult.
const (
	ActionMatch    = "match"
	ActionDiverge  = "diverge"
	ActionEvalFail = "eval_fail"
)

// Expected is the recorded outcome of a case.
type Expected struct {
	Verdict      engine.Verdict
	OverallScore int
	StateID      constitution.StateID
}

// Case is one evaluation to re-run.
type Case struct {
	ID        string
	SubjectID string
	Input     engine.Input
	Expected  Expected
}

// ReplayConfig bundles gate and eval configs for a replay run.
// ChainStates feeds each subject's replayed state into its next case when
// the case carries no previous state of its own.
type ReplayConfig struct {
	GateConfig  gate.GateConfig
	EvalConfig  eval.EvalConfig
	ChainStates bool
}

// DefaultReplayConfig returns the constitutional gate and eval configs.
func DefaultReplayConfig() ReplayConfig {
	return ReplayConfig{
		GateConfig: gate.DefaultGateConfig(),
		EvalConfig: eval.DefaultEvalConfig(),
	}
}

// ReplayResult captures the outcome of replaying one case.
type ReplayResult struct {
	CaseID     string
	Action     string // "match" | "diverge" | "eval_fail"
	Reason     string
	Diffs      []string
	Result     engine.Result
	EvalResult eval.EvalResult
}

// ReplaySummary provides aggregate stats from a replay run.
type ReplaySummary struct {
	TotalCases         int
	Matches            int
	Divergences        int
	EvalFailures       int
	Approved           int
	Deferred           int
	TransitionWarnings int
}

// #endregion types

// #region replay

// Replay re-runs every case through the engine and the eval harness and
// compares verdict, overall score and state with the recorded outcome.
func Replay(cases []Case, config ReplayConfig) []ReplayResult {
	eng := engine.New(engine.WithGateConfig(config.GateConfig))
	evalInst := eval.NewEvalHarness(config.EvalConfig)
	lastState := map[string]constitution.StateID{}

	results := make([]ReplayResult, 0, len(cases))
	for _, c := range cases {
		in := c.Input
		if config.ChainStates && in.PreviousStateID == "" {
			in.PreviousStateID = lastState[c.SubjectID]
		}

		// 1. Govern
		r := eng.Govern(in)
		lastState[c.SubjectID] = r.State.ID

		// 2. Eval
		evalResult := evalInst.Run(r)
		if !evalResult.Passed {
			results = append(results, ReplayResult{
				CaseID:     c.ID,
				Action:     ActionEvalFail,
				Reason:     evalResult.Reason,
				Result:     r,
				EvalResult: evalResult,
			})
			continue
		}

		// 3. Compare
		diffs := compare(c.Expected, r)
		action, reason := ActionMatch, "reproduced"
		if len(diffs) > 0 {
			action, reason = ActionDiverge, strings.Join(diffs, "; ")
		}
		results = append(results, ReplayResult{
			CaseID:     c.ID,
			Action:     action,
			Reason:     reason,
			Diffs:      diffs,
			Result:     r,
			EvalResult: evalResult,
		})
	}

	return results
}

func compare(want Expected, r engine.Result) []string {
	var diffs []string
	if want.Verdict != "" && want.Verdict != r.Verdict {
		diffs = append(diffs, fmt.Sprintf("verdict %q != %q", r.Verdict, want.Verdict))
	}
	if want.OverallScore != r.OverallScore {
		diffs = append(diffs, fmt.Sprintf("overall %d != %d", r.OverallScore, want.OverallScore))
	}
	if want.StateID != "" && want.StateID != r.State.ID {
		diffs = append(diffs, fmt.Sprintf("state %s != %s", r.State.ID, want.StateID))
	}
	return diffs
}

// Summarize computes aggregate stats from replay results.
func Summarize(results []ReplayResult) ReplaySummary {
	s := ReplaySummary{TotalCases: len(results)}
	for _, r := range results {
		switch r.Action {
		case ActionMatch:
			s.Matches++
		case ActionDiverge:
			s.Divergences++
		case ActionEvalFail:
			s.EvalFailures++
		}
		if r.Result.Approved() {
			s.Approved++
		} else {
			s.Deferred++
		}
		if r.Result.TransitionWarning != nil {
			s.TransitionWarnings++
		}
	}
	return s
}

// #endregion replay
