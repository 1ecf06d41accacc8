package logging

import (
	"time"

	"github.com/lifeos/governance/internal/capacity"
	"github.com/lifeos/governance/internal/constitution"
	"github.com/lifeos/governance/internal/engine"
	"github.com/lifeos/governance/internal/gate"
	"github.com/lifeos/governance/internal/layers"
	"github.com/lifeos/governance/internal/readiness"
)

// #region event-type
// EventType names one pipeline stage in the audit log.
type EventType string

const (
	EventIntake              EventType = "intake"
	EventStateClassification EventType = "state_classification"
	EventLayerAnalysis       EventType = "layer_analysis"
	EventThresholdCheck      EventType = "threshold_check"
	EventScenarioSimulation  EventType = "scenario_simulation"
	EventVerdict             EventType = "verdict"
	EventReadinessPlan       EventType = "readiness_plan"
)

// #endregion event-type

// #region audit-entry
// AuditEntry is a single row in the governance_audit_log table.
// Rows are append-only; Seq orders the events of one pipeline.
type AuditEntry struct {
	ID                  string
	PipelineID          string
	SubjectID           string
	Seq                 int
	EventType           EventType
	EventData           string // JSON
	ConstitutionVersion string
	CreatedAt           time.Time
}

// #endregion audit-entry

// #region event-records
// Event payloads serialized into event_data. Each mirrors one stage output.

type IntakeRecord struct {
	Assessment      capacity.Assessment    `json:"assessment"`
	Business        layers.BusinessInput   `json:"business"`
	Financial       layers.FinancialInput  `json:"financial"`
	Relational      layers.RelationalInput `json:"relational"`
	Decision        engine.Decision        `json:"decision"`
	PreviousStateID constitution.StateID   `json:"previous_state_id,omitempty"`
}

type ClassificationRecord struct {
	StateID           constitution.StateID `json:"state_id"`
	StateLabel        string               `json:"state_label"`
	Severity          int                  `json:"severity"`
	Score             int                  `json:"score"`
	Confidence        float64              `json:"confidence"`
	TransitionWarning *string              `json:"transition_warning"`
}

type ThresholdRecord struct {
	DomainScores gate.DomainScores       `json:"domain_scores"`
	Violations   []gate.Violation        `json:"violations"`
	AlertLevel   constitution.AlertLevel `json:"alert_level"`
	Blocked      bool                    `json:"blocked"`
	BlockReasons []gate.BlockReason      `json:"block_reasons,omitempty"`
	DecisionType engine.DecisionTypeEcho `json:"decision_type"`
	Gap          int                     `json:"gap"`
}

type ScenarioSummary struct {
	ID                 string `json:"id"`
	Name               string `json:"name"`
	LeaderLoad         int    `json:"leader_load"`
	SystemicRisk       int    `json:"systemic_risk"`
	FailureProbability int    `json:"failure_probability"`
	MonthsToTension    int    `json:"months_to_tension"`
	BreakMonth         int    `json:"break_month"`
}

type ScenarioRecord struct {
	Scenarios []ScenarioSummary `json:"scenarios"`
}

type VerdictRecord struct {
	Verdict      engine.Verdict `json:"verdict"`
	OverallScore int            `json:"overall_score"`
	Blocked      bool           `json:"blocked"`
}

type PlanRecord struct {
	StructuralReason    string                `json:"structural_reason"`
	PrimaryBottleneck   readiness.Bottleneck  `json:"primary_bottleneck"`
	SecondaryBottleneck *readiness.Bottleneck `json:"secondary_bottleneck"`
	ActionsCount        int                   `json:"actions_count"`
	Timeline            string                `json:"timeline"`
}

// #endregion event-records
