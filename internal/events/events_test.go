package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lifeos/governance/internal/capacity"
	"github.com/lifeos/governance/internal/constitution"
	"github.com/lifeos/governance/internal/engine"
	"github.com/lifeos/governance/internal/layers"
)

type published struct {
	subject string
	data    []byte
}

type fakeConn struct {
	msgs    []published
	err     error
	drained bool
}

func (f *fakeConn) Publish(subject string, data []byte) error {
	if f.err != nil {
		return f.err
	}
	f.msgs = append(f.msgs, published{subject, data})
	return nil
}

func (f *fakeConn) Drain() error {
	f.drained = true
	return nil
}

func result(t *testing.T) engine.Result {
	t.Helper()
	e := engine.New(
		engine.WithClock(func() time.Time { return time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC) }),
		engine.WithIDGenerator(func() string { return "pipe-1" }),
	)
	return e.Govern(engine.Input{
		Assessment: capacity.Assessment{Energy: 15, Clarity: 10, Stress: 90, Confidence: 10, Load: 95},
		Business:   layers.BusinessInput{Revenue: 5000, Costs: 9000, FounderDependence: 95, ActiveFronts: 8},
		Financial:  layers.FinancialInput{Revenue: 5000, Cash: 1000, Debt: 150000, FixedCosts: 20000},
		Relational: layers.RelationalInput{ActiveConflicts: 6, CriticalDependencies: 5},
		Decision:   engine.Decision{Type: constitution.DecisionExistential},
	})
}

func TestNATSPublisher_PublishVerdict(t *testing.T) {
	fc := &fakeConn{}
	p := &NATSPublisher{conn: fc, subject: "lifeos.governance.verdict"}
	r := result(t)

	require.NoError(t, p.PublishVerdict(context.Background(), NewVerdictEvent("ana", r)))
	require.Len(t, fc.msgs, 1)
	assert.Equal(t, "lifeos.governance.verdict.deferred", fc.msgs[0].subject)

	var ev VerdictEvent
	require.NoError(t, json.Unmarshal(fc.msgs[0].data, &ev))
	assert.Equal(t, "pipe-1", ev.PipelineID)
	assert.Equal(t, "ana", ev.SubjectID)
	assert.Equal(t, engine.VerdictDeferred, ev.Verdict)
	assert.Equal(t, constitution.DecisionExistential, ev.DecisionType)
	assert.True(t, ev.Blocked)
	assert.Equal(t, len(r.Violations), ev.Violations)

	require.NoError(t, p.Close())
	assert.True(t, fc.drained)
}

func TestNATSPublisher_Errors(t *testing.T) {
	fc := &fakeConn{err: errors.New("connection closed")}
	p := &NATSPublisher{conn: fc, subject: "s"}
	ev := NewVerdictEvent("", result(t))

	err := p.PublishVerdict(context.Background(), ev)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "publish verdict event")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, p.PublishVerdict(ctx, ev), context.Canceled)
}

func TestConnectNATS_Unreachable(t *testing.T) {
	_, err := ConnectNATS("nats://127.0.0.1:1", "s")
	assert.Error(t, err)
}

func TestNopPublisher(t *testing.T) {
	var p Publisher = NopPublisher{}
	assert.NoError(t, p.PublishVerdict(context.Background(), VerdictEvent{}))
	assert.NoError(t, p.Close())
}
