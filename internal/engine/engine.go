// Package engine runs the governance pipeline: classify, analyze layers,
// aggregate domains, resolve thresholds, simulate scenarios and, when
// blocked, plan readiness. It performs no I/O.
package engine

import (
	"time"

	"github.com/google/uuid"

	"github.com/lifeos/governance/internal/capacity"
	"github.com/lifeos/governance/internal/constitution"
	"github.com/lifeos/governance/internal/gate"
	"github.com/lifeos/governance/internal/layers"
	"github.com/lifeos/governance/internal/readiness"
	"github.com/lifeos/governance/internal/scenario"
	"github.com/lifeos/governance/internal/score"
)

// #region engine

// Engine evaluates decisions. The zero value is not usable; call New.
// An Engine holds no mutable state and is safe for concurrent use.
type Engine struct {
	now   func() time.Time
	newID func() string
	gate  *gate.Gate
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock overrides the timestamp source.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithIDGenerator overrides the pipeline id source.
func WithIDGenerator(newID func() string) Option {
	return func(e *Engine) { e.newID = newID }
}

// WithGateConfig overrides the block policy.
func WithGateConfig(cfg gate.GateConfig) Option {
	return func(e *Engine) { e.gate = gate.NewGate(cfg) }
}

// New creates an Engine with a UTC wall clock and random UUID pipeline ids.
func New(opts ...Option) *Engine {
	e := &Engine{
		now:   func() time.Time { return time.Now().UTC() },
		newID: uuid.NewString,
		gate:  gate.NewGate(gate.DefaultGateConfig()),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

var defaultEngine = New()

// Govern evaluates in with the default engine.
func Govern(in Input) Result {
	return defaultEngine.Govern(in)
}

// #endregion engine

// #region govern

// Govern runs the full pipeline. Stage order is fixed.
func (e *Engine) Govern(in Input) Result {
	pipelineID := e.newID()
	timestamp := e.now()

	// classification
	cls := capacity.Classify(in.Assessment)

	var transitionWarning *string
	if warning, ok := capacity.CheckTransition(in.PreviousStateID, cls.State.ID); !ok {
		transitionWarning = &warning
	}

	// layers
	set := layers.Set{
		Human:      layers.AnalyzeHuman(in.Assessment, cls.Score),
		Business:   layers.AnalyzeBusiness(in.Business),
		Financial:  layers.AnalyzeFinancial(in.Financial),
		Relational: layers.AnalyzeRelational(in.Relational),
	}

	// domains and thresholds
	domainScores := gate.ComputeDomainScores(set, in.Assessment)
	dt := constitution.DecisionTypeFor(in.Decision.Type)
	decision := e.gate.Evaluate(domainScores, dt, cls.State)

	// overall score is the layer mean, not the domain average the gate blocks on
	overall := score.Clamp(set.Mean())
	gap := max(0, dt.MinOverall-overall)

	scenarios := scenario.Simulate(scenario.Inputs{
		HumanScore:         set.Human.Score,
		BusinessComplexity: set.Business.Complexity,
		ConflictRisk:       set.Relational.ConflictRisk,
		FinancialScore:     set.Financial.Score,
		Revenue:            in.Financial.Revenue,
		FixedCosts:         in.Financial.FixedCosts,
		Cash:               in.Financial.Cash,
	}, gap)

	verdict := VerdictApproved
	var plan *readiness.Plan
	if decision.Blocked {
		verdict = VerdictDeferred
		plan = readiness.Generate(domainScores, dt, overall, gap)
	}

	return Result{
		PipelineID:          pipelineID,
		Timestamp:           timestamp,
		ConstitutionVersion: constitution.Version,
		Verdict:             verdict,
		OverallScore:        overall,
		Gap:                 gap,
		Blocked:             decision.Blocked,
		State:               cls.State,
		StateConfidence:     cls.Confidence,
		Layers:              set,
		DomainScores:        domainScores,
		DomainDetails:       gate.Details(domainScores),
		Violations:          decision.Violations,
		AlertLevel:          decision.AlertLevel,
		BlockReasons:        decision.Reasons,
		Scenarios:           scenarios,
		ReadinessPlan:       plan,
		DecisionType: DecisionTypeEcho{
			ID:          dt.ID,
			Label:       dt.Label,
			Level:       dt.Level,
			MinRequired: dt.MinOverall,
		},
		TransitionWarning: transitionWarning,
	}
}

// #endregion govern
