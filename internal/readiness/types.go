package readiness

import "github.com/lifeos/governance/internal/constitution"

// Bottleneck is a weak domain named in a plan.
type Bottleneck struct {
	Domain constitution.DomainID `json:"domain"`
	Label  string                `json:"label"`
	Score  int                   `json:"score"`
}

// Action is one remediation step.
type Action struct {
	Action    string `json:"action"`
	Horizon   string `json:"horizon"`
	Indicator string `json:"indicator"`
}

// Plan is the remediation output attached to a blocked result.
type Plan struct {
	StructuralReason     string      `json:"structural_reason"`
	PrimaryBottleneck    Bottleneck  `json:"primary_bottleneck"`
	SecondaryBottleneck  *Bottleneck `json:"secondary_bottleneck"`
	Actions              []Action    `json:"actions"`
	ReevaluationTriggers []string    `json:"reevaluation_triggers"`
	Timeline             string      `json:"timeline"`
}

// MinActions is the floor on plan actions.
const MinActions = 3

// maxWeakDomains caps how many weak domains contribute actions.
const maxWeakDomains = 3

// actionsPerDomain caps template actions taken per weak domain.
const actionsPerDomain = 2

type template struct {
	action    string
	indicator string
}
