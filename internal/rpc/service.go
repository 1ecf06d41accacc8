// Package rpc serves the governance engine over gRPC and wires the
// per-evaluation side effects: history, audit, events, metrics.
package rpc

import (
	"context"
	"log"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/lifeos/governance/internal/capacity"
	"github.com/lifeos/governance/internal/engine"
	"github.com/lifeos/governance/internal/eval"
	"github.com/lifeos/governance/internal/events"
	"github.com/lifeos/governance/internal/intake"
	"github.com/lifeos/governance/internal/logging"
	"github.com/lifeos/governance/internal/state"
	"github.com/lifeos/governance/internal/telemetry"
)

// DefaultSubject is used when a request names no subject.
const DefaultSubject = "default"

// #region service

// Service runs evaluations and their side effects. Side-effect failures
// are logged and counted, never returned: the verdict stands on its own.
type Service struct {
	engine    *engine.Engine
	harness   *eval.EvalHarness
	store     *state.Store
	audit     bool
	publisher events.Publisher
	metrics   *telemetry.Metrics
	tracer    trace.Tracer
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithStore persists evaluations and, when audit is true, their audit trail.
func WithStore(st *state.Store, audit bool) ServiceOption {
	return func(s *Service) { s.store, s.audit = st, audit }
}

// WithPublisher sets the verdict event publisher.
func WithPublisher(p events.Publisher) ServiceOption {
	return func(s *Service) { s.publisher = p }
}

// WithMetrics records evaluations on m.
func WithMetrics(m *telemetry.Metrics) ServiceOption {
	return func(s *Service) { s.metrics = m }
}

// WithEvalHarness replaces the default post-evaluation checks.
func WithEvalHarness(h *eval.EvalHarness) ServiceOption {
	return func(s *Service) { s.harness = h }
}

// NewService wraps an engine.
func NewService(eng *engine.Engine, opts ...ServiceOption) *Service {
	s := &Service{
		engine:    eng,
		harness:   eval.NewEvalHarness(eval.DefaultEvalConfig()),
		publisher: events.NopPublisher{},
		tracer:    telemetry.Tracer(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// #endregion service

// #region govern

// Govern evaluates one document. When the document carries no previous
// state and a store is configured, the subject's latest stored state is
// used so transition warnings span sessions.
func (s *Service) Govern(ctx context.Context, doc intake.Document) (engine.Result, error) {
	if err := ctx.Err(); err != nil {
		return engine.Result{}, err
	}
	ctx, span := s.tracer.Start(ctx, "governance.Govern")
	defer span.End()

	subject := doc.SubjectID
	if subject == "" {
		subject = DefaultSubject
	}
	in := doc.Input
	if in.PreviousStateID == "" && s.store != nil {
		prev, err := s.store.PreviousState(subject)
		if err != nil {
			log.Printf("[GOV] previous state lookup for %s failed: %v", subject, err)
		}
		in.PreviousStateID = prev
	}

	r := s.engine.Govern(in)
	span.SetAttributes(
		attribute.String("governance.pipeline_id", r.PipelineID),
		attribute.String("governance.verdict", r.Verdict.Slug()),
		attribute.String("governance.decision_type", string(r.DecisionType.ID)),
		attribute.String("governance.state", string(r.State.ID)),
		attribute.Int("governance.overall_score", r.OverallScore),
		attribute.Int("governance.gap", r.Gap),
	)
	log.Printf("[GOV] pipeline=%s subject=%s type=%s verdict=%s overall=%d gap=%d state=%s",
		r.PipelineID, subject, r.DecisionType.ID, r.Verdict.Slug(), r.OverallScore, r.Gap, r.State.ID)

	s.afterEvaluation(ctx, span, subject, in, r)
	return r, nil
}

func (s *Service) afterEvaluation(ctx context.Context, span trace.Span, subject string, in engine.Input, r engine.Result) {
	if s.metrics != nil {
		s.metrics.Observe(r)
	}

	if er := s.harness.Run(r); !er.Passed {
		log.Printf("[EVAL] pipeline=%s %s", r.PipelineID, er.Reason)
		span.SetStatus(codes.Error, er.Reason)
		s.failed("eval")
	}

	if s.store != nil {
		if _, err := s.store.Record(subject, in, r); err != nil {
			log.Printf("[GOV] record pipeline=%s: %v", r.PipelineID, err)
			s.failed("store")
		}
		if s.audit {
			if err := logging.RecordPipeline(s.store.DB(), subject, in, r); err != nil {
				log.Printf("[AUDIT] pipeline=%s: %v", r.PipelineID, err)
				s.failed("audit")
			}
		}
	}

	if err := s.publisher.PublishVerdict(ctx, events.NewVerdictEvent(subject, r)); err != nil {
		log.Printf("[EVENTS] pipeline=%s: %v", r.PipelineID, err)
		s.failed("publish")
	}
}

func (s *Service) failed(stage string) {
	if s.metrics != nil {
		s.metrics.SideEffectFailed(stage)
	}
}

// #endregion govern

// Classify runs the capacity classifier alone.
func (s *Service) Classify(ctx context.Context, a capacity.Assessment) (capacity.Classification, error) {
	if err := ctx.Err(); err != nil {
		return capacity.Classification{}, err
	}
	_, span := s.tracer.Start(ctx, "governance.Classify")
	defer span.End()
	return capacity.Classify(a), nil
}
