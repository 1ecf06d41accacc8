package replay

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/lifeos/governance/internal/constitution"
	"github.com/lifeos/governance/internal/engine"
	"github.com/lifeos/governance/internal/gate"
	"github.com/lifeos/governance/internal/state"
)

// #region fixture-types

// Fixture is the top-level JSON structure for a replay fixture.
type Fixture struct {
	Description string        `json:"description"`
	Config      FixtureConfig `json:"config"`
	Cases       []FixtureCase `json:"cases"`
}

// FixtureCase is one recorded evaluation and the outcome it produced.
type FixtureCase struct {
	ID        string          `json:"id"`
	SubjectID string          `json:"subject_id,omitempty"`
	Input     engine.Input    `json:"input"`
	Expected  FixtureExpected `json:"expected"`
}

// FixtureExpected is the outcome a case must reproduce.
type FixtureExpected struct {
	Verdict      engine.Verdict       `json:"verdict"`
	OverallScore int                  `json:"overall_score"`
	StateID      constitution.StateID `json:"state_id"`
}

// FixtureConfig bundles the sub-configs for a replay run.
type FixtureConfig struct {
	GateConfig  FixtureGateConfig `json:"gate_config"`
	ChainStates bool              `json:"chain_states"`
}

// FixtureGateConfig mirrors gate.GateConfig with JSON tags.
type FixtureGateConfig struct {
	BlockSeverity int `json:"block_severity"`
}

// #endregion fixture-types

// #region fixture-loader

// LoadFixture reads and parses a JSON fixture file.
func LoadFixture(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture %s: %w", path, err)
	}
	var f Fixture
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse fixture %s: %w", path, err)
	}
	return &f, nil
}

// WriteFixture writes f as indented JSON.
func WriteFixture(f Fixture, path string) error {
	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal fixture: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// ToCase converts a FixtureCase to a replay Case.
func (fc *FixtureCase) ToCase() Case {
	return Case{
		ID:        fc.ID,
		SubjectID: fc.SubjectID,
		Input:     fc.Input,
		Expected: Expected{
			Verdict:      fc.Expected.Verdict,
			OverallScore: fc.Expected.OverallScore,
			StateID:      fc.Expected.StateID,
		},
	}
}

// ToReplayConfig converts a FixtureConfig to a ReplayConfig. A zero block
// severity keeps the default.
func (fc *FixtureConfig) ToReplayConfig() ReplayConfig {
	cfg := DefaultReplayConfig()
	if fc.GateConfig.BlockSeverity > 0 {
		cfg.GateConfig = gate.GateConfig{BlockSeverity: fc.GateConfig.BlockSeverity}
	}
	cfg.ChainStates = fc.ChainStates
	return cfg
}

// ToCases converts every fixture case.
func (f *Fixture) ToCases() []Case {
	cases := make([]Case, len(f.Cases))
	for i := range f.Cases {
		cases[i] = f.Cases[i].ToCase()
	}
	return cases
}

// #endregion fixture-loader

// #region from-records

// CaseFromRecord rebuilds a replay case from a stored evaluation.
func CaseFromRecord(rec state.EvaluationRecord) (Case, error) {
	in, err := rec.Input()
	if err != nil {
		return Case{}, err
	}
	return Case{
		ID:        rec.PipelineID,
		SubjectID: rec.SubjectID,
		Input:     in,
		Expected: Expected{
			Verdict:      rec.Verdict,
			OverallScore: rec.OverallScore,
			StateID:      rec.StateID,
		},
	}, nil
}

// FixtureFromRecords exports stored evaluations, oldest first, as a fixture.
// Stored inputs already carry the previous state the server resolved, so
// chaining stays off.
func FixtureFromRecords(description string, records []state.EvaluationRecord) (Fixture, error) {
	f := Fixture{
		Description: description,
		Config: FixtureConfig{
			GateConfig: FixtureGateConfig{BlockSeverity: gate.DefaultGateConfig().BlockSeverity},
		},
		Cases: make([]FixtureCase, 0, len(records)),
	}
	for _, rec := range records {
		c, err := CaseFromRecord(rec)
		if err != nil {
			return Fixture{}, err
		}
		f.Cases = append(f.Cases, FixtureCase{
			ID:        c.ID,
			SubjectID: c.SubjectID,
			Input:     c.Input,
			Expected: FixtureExpected{
				Verdict:      c.Expected.Verdict,
				OverallScore: c.Expected.OverallScore,
				StateID:      c.Expected.StateID,
			},
		})
	}
	return f, nil
}

// #endregion from-records
