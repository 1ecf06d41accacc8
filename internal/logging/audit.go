// Package logging records every governance pipeline stage in an
// append-only audit log.
package logging

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/lifeos/governance/internal/engine"
)

// #region build-entries

type stageEvent struct {
	kind EventType
	data any
}

// BuildAuditEntries turns one evaluation into its ordered audit events:
// intake, classification, layers, thresholds, scenarios, verdict and, when
// a plan exists, the readiness plan.
func BuildAuditEntries(subjectID string, in engine.Input, r engine.Result) ([]AuditEntry, error) {
	scenarios := make([]ScenarioSummary, len(r.Scenarios))
	for i, s := range r.Scenarios {
		scenarios[i] = ScenarioSummary{
			ID:                 s.ID,
			Name:               s.Name,
			LeaderLoad:         s.LeaderLoad,
			SystemicRisk:       s.SystemicRisk,
			FailureProbability: s.FailureProbability,
			MonthsToTension:    s.MonthsToTension,
			BreakMonth:         s.BreakMonth,
		}
	}

	events := []stageEvent{
		{EventIntake, IntakeRecord{
			Assessment:      in.Assessment,
			Business:        in.Business,
			Financial:       in.Financial,
			Relational:      in.Relational,
			Decision:        in.Decision,
			PreviousStateID: in.PreviousStateID,
		}},
		{EventStateClassification, ClassificationRecord{
			StateID:           r.State.ID,
			StateLabel:        r.State.Label,
			Severity:          r.State.Severity,
			Score:             r.Layers.Human.Score,
			Confidence:        r.StateConfidence,
			TransitionWarning: r.TransitionWarning,
		}},
		{EventLayerAnalysis, r.Layers},
		{EventThresholdCheck, ThresholdRecord{
			DomainScores: r.DomainScores,
			Violations:   r.Violations,
			AlertLevel:   r.AlertLevel,
			Blocked:      r.Blocked,
			BlockReasons: r.BlockReasons,
			DecisionType: r.DecisionType,
			Gap:          r.Gap,
		}},
		{EventScenarioSimulation, ScenarioRecord{Scenarios: scenarios}},
		{EventVerdict, VerdictRecord{
			Verdict:      r.Verdict,
			OverallScore: r.OverallScore,
			Blocked:      r.Blocked,
		}},
	}
	if p := r.ReadinessPlan; p != nil {
		events = append(events, stageEvent{EventReadinessPlan, PlanRecord{
			StructuralReason:    p.StructuralReason,
			PrimaryBottleneck:   p.PrimaryBottleneck,
			SecondaryBottleneck: p.SecondaryBottleneck,
			ActionsCount:        len(p.Actions),
			Timeline:            p.Timeline,
		}})
	}

	entries := make([]AuditEntry, 0, len(events))
	for i, ev := range events {
		data, err := json.Marshal(ev.data)
		if err != nil {
			return nil, fmt.Errorf("marshal %s event: %w", ev.kind, err)
		}
		entries = append(entries, AuditEntry{
			ID:                  uuid.NewString(),
			PipelineID:          r.PipelineID,
			SubjectID:           subjectID,
			Seq:                 i,
			EventType:           ev.kind,
			EventData:           string(data),
			ConstitutionVersion: r.ConstitutionVersion,
			CreatedAt:           r.Timestamp,
		})
	}
	return entries, nil
}

// #endregion build-entries

// #region log-entries

// LogEntries appends entries to governance_audit_log in one transaction.
// A zero CreatedAt is stamped with the current time.
func LogEntries(db *sql.DB, entries []AuditEntry) error {
	if len(entries) == 0 {
		return nil
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	now := time.Now().UTC()
	for _, e := range entries {
		if e.CreatedAt.IsZero() {
			e.CreatedAt = now
		}
		if e.ID == "" {
			e.ID = uuid.NewString()
		}
		_, err := tx.Exec(
			`INSERT INTO governance_audit_log (id, pipeline_id, subject_id, seq, event_type, event_data, constitution_version, created_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			e.ID,
			e.PipelineID,
			nullIfEmpty(e.SubjectID),
			e.Seq,
			string(e.EventType),
			e.EventData,
			e.ConstitutionVersion,
			e.CreatedAt.Format(time.RFC3339Nano),
		)
		if err != nil {
			return fmt.Errorf("log %s: %w", e.EventType, err)
		}
	}
	return tx.Commit()
}

// RecordPipeline builds and appends the audit trail of one evaluation.
func RecordPipeline(db *sql.DB, subjectID string, in engine.Input, r engine.Result) error {
	entries, err := BuildAuditEntries(subjectID, in, r)
	if err != nil {
		return err
	}
	return LogEntries(db, entries)
}

// #endregion log-entries

// #region list-entries

// ListEntries returns the audit trail of one pipeline in stage order.
func ListEntries(db *sql.DB, pipelineID string) ([]AuditEntry, error) {
	rows, err := db.Query(
		`SELECT id, pipeline_id, subject_id, seq, event_type, event_data, constitution_version, created_at
		 FROM governance_audit_log WHERE pipeline_id = ? ORDER BY seq`, pipelineID,
	)
	if err != nil {
		return nil, fmt.Errorf("list audit entries: %w", err)
	}
	defer rows.Close()

	var entries []AuditEntry
	for rows.Next() {
		var e AuditEntry
		var subjectID sql.NullString
		var eventType, createdStr string
		if err := rows.Scan(&e.ID, &e.PipelineID, &subjectID, &e.Seq, &eventType, &e.EventData, &e.ConstitutionVersion, &createdStr); err != nil {
			return nil, fmt.Errorf("scan audit entry: %w", err)
		}
		if subjectID.Valid {
			e.SubjectID = subjectID.String
		}
		e.EventType = EventType(eventType)
		e.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// #endregion list-entries

// #region helpers
func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

// #endregion helpers
