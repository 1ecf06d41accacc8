package state

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/lifeos/governance/internal/constitution"
	"github.com/lifeos/governance/internal/engine"
)

// ErrNotFound is returned when an evaluation or subject pointer is missing.
var ErrNotFound = errors.New("evaluation not found")

// #region evaluation-record
// EvaluationRecord is one stored evaluation. ParentID links to the
// subject's previous evaluation, forming a per-subject history chain.
type EvaluationRecord struct {
	PipelineID   string
	SubjectID    string
	ParentID     string
	StateID      constitution.StateID
	Verdict      engine.Verdict
	OverallScore int
	Blocked      bool
	DecisionType constitution.DecisionTypeID
	InputJSON    string
	ResultJSON   string
	CreatedAt    time.Time
}

// NewEvaluationRecord snapshots an input and its result for storage.
func NewEvaluationRecord(subjectID, parentID string, in engine.Input, r engine.Result) (EvaluationRecord, error) {
	inJSON, err := json.Marshal(in)
	if err != nil {
		return EvaluationRecord{}, fmt.Errorf("marshal input: %w", err)
	}
	resJSON, err := json.Marshal(r)
	if err != nil {
		return EvaluationRecord{}, fmt.Errorf("marshal result: %w", err)
	}
	return EvaluationRecord{
		PipelineID:   r.PipelineID,
		SubjectID:    subjectID,
		ParentID:     parentID,
		StateID:      r.State.ID,
		Verdict:      r.Verdict,
		OverallScore: r.OverallScore,
		Blocked:      r.Blocked,
		DecisionType: r.DecisionType.ID,
		InputJSON:    string(inJSON),
		ResultJSON:   string(resJSON),
		CreatedAt:    r.Timestamp,
	}, nil
}

// Input decodes the stored input.
func (rec EvaluationRecord) Input() (engine.Input, error) {
	var in engine.Input
	if err := json.Unmarshal([]byte(rec.InputJSON), &in); err != nil {
		return engine.Input{}, fmt.Errorf("unmarshal input %s: %w", rec.PipelineID, err)
	}
	return in, nil
}

// Result decodes the stored result.
func (rec EvaluationRecord) Result() (engine.Result, error) {
	var r engine.Result
	if err := json.Unmarshal([]byte(rec.ResultJSON), &r); err != nil {
		return engine.Result{}, fmt.Errorf("unmarshal result %s: %w", rec.PipelineID, err)
	}
	return r, nil
}

// #endregion evaluation-record
