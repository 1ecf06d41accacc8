// Package events publishes verdicts for messaging collaborators such as
// chat bots and dashboards.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/lifeos/governance/internal/constitution"
	"github.com/lifeos/governance/internal/engine"
)

// VerdictEvent is the compact payload published per evaluation.
type VerdictEvent struct {
	PipelineID   string                      `json:"pipeline_id"`
	SubjectID    string                      `json:"subject_id,omitempty"`
	Verdict      engine.Verdict              `json:"verdict"`
	Outcome      string                      `json:"outcome"`
	DecisionType constitution.DecisionTypeID `json:"decision_type"`
	OverallScore int                         `json:"overall_score"`
	Gap          int                         `json:"gap"`
	Blocked      bool                        `json:"blocked"`
	StateID      constitution.StateID        `json:"state_id"`
	Violations   int                         `json:"violations"`
	Timestamp    time.Time                   `json:"timestamp"`
}

// NewVerdictEvent summarizes a result.
func NewVerdictEvent(subjectID string, r engine.Result) VerdictEvent {
	return VerdictEvent{
		PipelineID:   r.PipelineID,
		SubjectID:    subjectID,
		Verdict:      r.Verdict,
		Outcome:      r.Verdict.Slug(),
		DecisionType: r.DecisionType.ID,
		OverallScore: r.OverallScore,
		Gap:          r.Gap,
		Blocked:      r.Blocked,
		StateID:      r.State.ID,
		Violations:   len(r.Violations),
		Timestamp:    r.Timestamp,
	}
}

// Publisher delivers verdict events.
type Publisher interface {
	PublishVerdict(ctx context.Context, ev VerdictEvent) error
	Close() error
}

// NopPublisher discards events.
type NopPublisher struct{}

func (NopPublisher) PublishVerdict(context.Context, VerdictEvent) error { return nil }
func (NopPublisher) Close() error                                      { return nil }

// conn is the part of *nats.Conn the publisher uses.
type conn interface {
	Publish(subject string, data []byte) error
	Drain() error
}

// NATSPublisher publishes to "<subject>.<outcome>", e.g.
// "lifeos.governance.verdict.deferred".
type NATSPublisher struct {
	conn    conn
	subject string
}

// ConnectNATS dials url and returns a publisher rooted at subject.
func ConnectNATS(url, subject string, opts ...nats.Option) (*NATSPublisher, error) {
	opts = append([]nats.Option{nats.Name("governd"), nats.MaxReconnects(-1)}, opts...)
	nc, err := nats.Connect(url, opts...)
	if err != nil {
		return nil, fmt.Errorf("connect nats %s: %w", url, err)
	}
	return &NATSPublisher{conn: nc, subject: subject}, nil
}

// Subject is the subject an event is published on.
func (p *NATSPublisher) Subject(ev VerdictEvent) string {
	return p.subject + "." + ev.Outcome
}

// PublishVerdict encodes ev as JSON and publishes it. NATS publish does not
// take a context, so cancellation is only checked before sending.
func (p *NATSPublisher) PublishVerdict(ctx context.Context, ev VerdictEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal verdict event: %w", err)
	}
	if err := p.conn.Publish(p.Subject(ev), data); err != nil {
		return fmt.Errorf("publish verdict event: %w", err)
	}
	return nil
}

// Close drains pending messages and closes the connection.
func (p *NATSPublisher) Close() error {
	return p.conn.Drain()
}
