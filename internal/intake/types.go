package intake

import (
	"errors"

	"github.com/lifeos/governance/internal/engine"
)

// ErrSessionDone is returned when answering a finished session.
var ErrSessionDone = errors.New("intake session already complete")

// ErrIncomplete is returned when building input before every step is answered.
var ErrIncomplete = errors.New("intake session incomplete")

// #region step
// Group names the input record a step feeds.
type Group string

const (
	GroupAssessment Group = "assessment"
	GroupBusiness   Group = "business"
	GroupFinancial  Group = "financial"
	GroupRelational Group = "relational"
	GroupDecision   Group = "decision"
)

// Kind says how an answer is coerced.
type Kind int

const (
	KindNumber Kind = iota
	KindText
	KindChoice
)

// Step is one question of the sequential intake.
type Step struct {
	Key     string
	Prompt  string
	Group   Group
	Kind    Kind
	Choices []string // KindChoice only
	Default string   // used for an empty answer
}

// #endregion step

// #region document
// Document is an input file: an engine input plus the subject it belongs to.
type Document struct {
	SubjectID    string `json:"subject_id,omitempty" yaml:"subject_id,omitempty"`
	engine.Input `yaml:",inline"`
}

// #endregion document
