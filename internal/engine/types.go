package engine

import (
	"time"

	"github.com/lifeos/governance/internal/capacity"
	"github.com/lifeos/governance/internal/constitution"
	"github.com/lifeos/governance/internal/gate"
	"github.com/lifeos/governance/internal/layers"
	"github.com/lifeos/governance/internal/readiness"
	"github.com/lifeos/governance/internal/scenario"
)

// #region decision

// Impact, Reversibility, Urgency and Resources describe a decision for
// display and audit only. Scoring reads Decision.Type alone.
type (
	Impact        string
	Reversibility string
	Urgency       string
	Resources     string
)

const (
	ImpactTransformational Impact = "transformational"
	ImpactHigh             Impact = "high"
	ImpactMedium           Impact = "medium"
	ImpactLow              Impact = "low"

	ReversibilityIrreversible Reversibility = "irreversible"
	ReversibilityDifficult    Reversibility = "difficult"
	ReversibilityModerate     Reversibility = "moderate"
	ReversibilityEasy         Reversibility = "easy"

	UrgencyCritical Urgency = "critical"
	UrgencyHigh     Urgency = "high"
	UrgencyModerate Urgency = "moderate"
	UrgencyLow      Urgency = "low"

	ResourcesMassive     Resources = "massive"
	ResourcesSignificant Resources = "significant"
	ResourcesModerate    Resources = "moderate"
	ResourcesMinimal     Resources = "minimal"
)

// Decision is the choice under evaluation.
type Decision struct {
	Description       string                      `json:"description" yaml:"description"`
	Type              constitution.DecisionTypeID `json:"type" yaml:"type"`
	Impact            Impact                      `json:"impact,omitempty" yaml:"impact,omitempty"`
	Reversibility     Reversibility               `json:"reversibility,omitempty" yaml:"reversibility,omitempty"`
	Urgency           Urgency                     `json:"urgency,omitempty" yaml:"urgency,omitempty"`
	ResourcesRequired Resources                   `json:"resources_required,omitempty" yaml:"resources_required,omitempty"`
}

// #endregion decision

// #region input

// Input bundles everything one evaluation reads. PreviousStateID is
// optional; when set, an invalid transition yields a warning.
type Input struct {
	Assessment      capacity.Assessment    `json:"assessment" yaml:"assessment"`
	Business        layers.BusinessInput   `json:"business" yaml:"business"`
	Financial       layers.FinancialInput  `json:"financial" yaml:"financial"`
	Relational      layers.RelationalInput `json:"relational" yaml:"relational"`
	Decision        Decision               `json:"decision" yaml:"decision"`
	PreviousStateID constitution.StateID   `json:"previous_state_id,omitempty" yaml:"previous_state_id,omitempty"`
}

// #endregion input

// #region result

// Verdict is the binary outcome.
type Verdict string

const (
	VerdictApproved Verdict = "SIM"
	VerdictDeferred Verdict = "NÃO AGORA"
)

// Slug is an ASCII token for the verdict, safe for metric labels and
// message subjects.
func (v Verdict) Slug() string {
	if v == VerdictApproved {
		return "approved"
	}
	return "deferred"
}

// DecisionTypeEcho records the decision-type config the verdict was
// computed against.
type DecisionTypeEcho struct {
	ID          constitution.DecisionTypeID `json:"id"`
	Label       string                      `json:"label"`
	Level       int                         `json:"level"`
	MinRequired int                         `json:"min_required"`
}

// Result is one evaluation. It is built once and never mutated.
type Result struct {
	PipelineID          string    `json:"pipeline_id"`
	Timestamp           time.Time `json:"timestamp"`
	ConstitutionVersion string    `json:"constitution_version"`

	Verdict      Verdict `json:"verdict"`
	OverallScore int     `json:"overall_score"`
	Gap          int     `json:"gap"`
	Blocked      bool    `json:"blocked"`

	State           constitution.StateInfo `json:"state"`
	StateConfidence float64                `json:"state_confidence"`

	Layers        layers.Set              `json:"layers"`
	DomainScores  gate.DomainScores       `json:"domain_scores"`
	DomainDetails []gate.DomainDetail     `json:"domain_details"`
	Violations    []gate.Violation        `json:"violations"`
	AlertLevel    constitution.AlertLevel `json:"alert_level"`
	BlockReasons  []gate.BlockReason      `json:"block_reasons,omitempty"`

	Scenarios     []scenario.Scenario `json:"scenarios"`
	ReadinessPlan *readiness.Plan     `json:"readiness_plan"`

	DecisionType      DecisionTypeEcho `json:"decision_type"`
	TransitionWarning *string          `json:"transition_warning"`
}

// Approved reports whether the verdict is SIM.
func (r Result) Approved() bool {
	return r.Verdict == VerdictApproved
}

// #endregion result
