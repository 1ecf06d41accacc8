package state

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/lifeos/governance/internal/constitution"
	"github.com/lifeos/governance/internal/engine"
)

// #region schema
const schema = `
CREATE TABLE IF NOT EXISTS evaluations (
	pipeline_id    TEXT PRIMARY KEY,
	subject_id     TEXT NOT NULL,
	parent_id      TEXT,
	state_id       TEXT NOT NULL,
	verdict        TEXT NOT NULL,
	overall_score  INTEGER NOT NULL,
	blocked        INTEGER NOT NULL,
	decision_type  TEXT NOT NULL,
	input_json     TEXT NOT NULL,
	result_json    TEXT NOT NULL,
	created_at     TEXT NOT NULL,
	FOREIGN KEY (parent_id) REFERENCES evaluations(pipeline_id)
);

CREATE INDEX IF NOT EXISTS idx_evaluations_subject ON evaluations(subject_id, created_at);

CREATE TABLE IF NOT EXISTS governance_audit_log (
	id                   TEXT PRIMARY KEY,
	pipeline_id          TEXT NOT NULL,
	subject_id           TEXT,
	seq                  INTEGER NOT NULL,
	event_type           TEXT NOT NULL,
	event_data           TEXT NOT NULL,
	constitution_version TEXT NOT NULL,
	created_at           TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_audit_pipeline ON governance_audit_log(pipeline_id, seq);

CREATE TABLE IF NOT EXISTS active_evaluation (
	subject_id     TEXT PRIMARY KEY,
	pipeline_id    TEXT NOT NULL,
	FOREIGN KEY (pipeline_id) REFERENCES evaluations(pipeline_id)
);
`

const selectColumns = `pipeline_id, subject_id, parent_id, state_id, verdict, overall_score, blocked,
	decision_type, input_json, result_json, created_at`

// #endregion schema

// #region store-struct
// Store keeps evaluation history and the per-subject latest pointer in SQLite.
type Store struct {
	db *sql.DB
}

// #endregion store-struct

// #region constructor
// dsnParams applies the pragmas on every pooled connection. Immediate
// transactions take the write lock up front so concurrent writers wait on
// the busy timeout instead of failing mid-transaction.
const dsnParams = "?_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)" +
	"&_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)&_txlock=immediate"

// NewStore opens a SQLite database and runs migrations.
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath+dsnParams)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if dbPath == ":memory:" {
		db.SetMaxOpenConns(1)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// DB returns the underlying *sql.DB for use by other packages (e.g. logging).
func (s *Store) DB() *sql.DB {
	return s.db
}

// #endregion constructor

// #region commit
// CommitEvaluation inserts an evaluation and advances the subject's latest
// pointer atomically.
func (s *Store) CommitEvaluation(rec EvaluationRecord) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if err := insertEvaluation(tx, rec); err != nil {
		return err
	}
	return tx.Commit()
}

// Record stores an engine result for a subject, chaining it to the
// subject's current latest evaluation. The parent lookup and the insert
// share one transaction so concurrent records form a single chain.
func (s *Store) Record(subjectID string, in engine.Input, r engine.Result) (EvaluationRecord, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return EvaluationRecord{}, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var parentID string
	err = tx.QueryRow(
		`SELECT pipeline_id FROM active_evaluation WHERE subject_id = ?`, subjectID,
	).Scan(&parentID)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return EvaluationRecord{}, fmt.Errorf("latest for %s: %w", subjectID, err)
	}

	rec, err := NewEvaluationRecord(subjectID, parentID, in, r)
	if err != nil {
		return EvaluationRecord{}, err
	}
	if err := insertEvaluation(tx, rec); err != nil {
		return EvaluationRecord{}, err
	}
	if err := tx.Commit(); err != nil {
		return EvaluationRecord{}, fmt.Errorf("commit: %w", err)
	}
	return rec, nil
}

func insertEvaluation(tx *sql.Tx, rec EvaluationRecord) error {
	var parentPtr interface{}
	if rec.ParentID != "" {
		parentPtr = rec.ParentID
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}

	_, err := tx.Exec(
		`INSERT INTO evaluations (`+selectColumns+`)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.PipelineID, rec.SubjectID, parentPtr, string(rec.StateID), string(rec.Verdict),
		rec.OverallScore, rec.Blocked, string(rec.DecisionType), rec.InputJSON, rec.ResultJSON,
		rec.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("insert evaluation: %w", err)
	}

	_, err = tx.Exec(
		`INSERT INTO active_evaluation (subject_id, pipeline_id) VALUES (?, ?)
		 ON CONFLICT(subject_id) DO UPDATE SET pipeline_id = excluded.pipeline_id`,
		rec.SubjectID, rec.PipelineID,
	)
	if err != nil {
		return fmt.Errorf("update latest: %w", err)
	}
	return nil
}

// #endregion commit

// #region latest
// Latest returns the subject's most recent evaluation.
func (s *Store) Latest(subjectID string) (EvaluationRecord, error) {
	var pipelineID string
	err := s.db.QueryRow(
		`SELECT pipeline_id FROM active_evaluation WHERE subject_id = ?`, subjectID,
	).Scan(&pipelineID)
	if errors.Is(err, sql.ErrNoRows) {
		return EvaluationRecord{}, fmt.Errorf("latest for %s: %w", subjectID, ErrNotFound)
	}
	if err != nil {
		return EvaluationRecord{}, fmt.Errorf("latest for %s: %w", subjectID, err)
	}
	return s.Get(pipelineID)
}

// PreviousState returns the state id of the subject's latest evaluation,
// or "" when the subject has none.
func (s *Store) PreviousState(subjectID string) (constitution.StateID, error) {
	rec, err := s.Latest(subjectID)
	if errors.Is(err, ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return rec.StateID, nil
}

// #endregion latest

// #region get
// Get retrieves a specific evaluation by pipeline id.
func (s *Store) Get(pipelineID string) (EvaluationRecord, error) {
	row := s.db.QueryRow(`SELECT `+selectColumns+` FROM evaluations WHERE pipeline_id = ?`, pipelineID)
	rec, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return EvaluationRecord{}, fmt.Errorf("get evaluation %s: %w", pipelineID, ErrNotFound)
	}
	if err != nil {
		return EvaluationRecord{}, fmt.Errorf("get evaluation %s: %w", pipelineID, err)
	}
	return rec, nil
}

// #endregion get

// #region rollback
// Rollback points the subject's latest evaluation back at an earlier one,
// discarding later evaluations from transition checks without deleting them.
func (s *Store) Rollback(subjectID, pipelineID string) error {
	rec, err := s.Get(pipelineID)
	if err != nil {
		return err
	}
	if rec.SubjectID != subjectID {
		return fmt.Errorf("evaluation %s belongs to %s, not %s", pipelineID, rec.SubjectID, subjectID)
	}

	_, err = s.db.Exec(
		`INSERT INTO active_evaluation (subject_id, pipeline_id) VALUES (?, ?)
		 ON CONFLICT(subject_id) DO UPDATE SET pipeline_id = excluded.pipeline_id`,
		subjectID, pipelineID,
	)
	if err != nil {
		return fmt.Errorf("rollback: %w", err)
	}
	return nil
}

// #endregion rollback

// #region list
// List returns the most recent evaluations across all subjects.
func (s *Store) List(limit int) ([]EvaluationRecord, error) {
	rows, err := s.db.Query(
		`SELECT `+selectColumns+` FROM evaluations ORDER BY created_at DESC, rowid DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list evaluations: %w", err)
	}
	return collect(rows)
}

// ListBySubject returns a subject's most recent evaluations.
func (s *Store) ListBySubject(subjectID string, limit int) ([]EvaluationRecord, error) {
	rows, err := s.db.Query(
		`SELECT `+selectColumns+` FROM evaluations WHERE subject_id = ?
		 ORDER BY created_at DESC, rowid DESC LIMIT ?`, subjectID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list evaluations for %s: %w", subjectID, err)
	}
	return collect(rows)
}

// #endregion list

// #region scanning
type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(row scanner) (EvaluationRecord, error) {
	var rec EvaluationRecord
	var parentID sql.NullString
	var stateID, verdict, decisionType, createdStr string

	err := row.Scan(&rec.PipelineID, &rec.SubjectID, &parentID, &stateID, &verdict, &rec.OverallScore,
		&rec.Blocked, &decisionType, &rec.InputJSON, &rec.ResultJSON, &createdStr)
	if err != nil {
		return EvaluationRecord{}, err
	}

	if parentID.Valid {
		rec.ParentID = parentID.String
	}
	rec.StateID = constitution.StateID(stateID)
	rec.Verdict = engine.Verdict(verdict)
	rec.DecisionType = constitution.DecisionTypeID(decisionType)
	rec.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
	return rec, nil
}

func collect(rows *sql.Rows) ([]EvaluationRecord, error) {
	defer rows.Close()

	var records []EvaluationRecord
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// #endregion scanning
