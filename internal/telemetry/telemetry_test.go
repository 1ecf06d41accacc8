package telemetry

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lifeos/governance/internal/capacity"
	"github.com/lifeos/governance/internal/constitution"
	"github.com/lifeos/governance/internal/engine"
	"github.com/lifeos/governance/internal/layers"
)

func weakInput() engine.Input {
	return engine.Input{
		Assessment: capacity.Assessment{Energy: 15, Clarity: 10, Stress: 90, Confidence: 10, Load: 95},
		Business: layers.BusinessInput{
			Revenue: 5000, Costs: 9000, FounderDependence: 95,
			ActiveFronts: 8, ProcessMaturity: 10, DelegationCapacity: 10,
		},
		Financial: layers.FinancialInput{Revenue: 5000, Cash: 1000, Debt: 150000, FixedCosts: 20000, IntendedLeverage: 100000},
		Relational: layers.RelationalInput{
			ActiveConflicts: 6, CriticalDependencies: 5,
			PartnerAlignment: 20, TeamStability: 20, EcosystemHealth: 20,
		},
		Decision:        engine.Decision{Type: constitution.DecisionExistential},
		PreviousStateID: constitution.StateControlledExpansion,
	}
}

func TestSetupTracing_NoopWithoutEndpoint(t *testing.T) {
	shutdown, err := SetupTracing(context.Background(), "", "test")
	require.NoError(t, err)
	require.NoError(t, shutdown(context.Background()))
	assert.NotNil(t, Tracer())
}

func TestSetupTracing_WithEndpoint(t *testing.T) {
	shutdown, err := SetupTracing(context.Background(), "http://192.0.2.1:4318", "test")
	require.NoError(t, err)
	require.NoError(t, shutdown(context.Background()))
}

func TestMetrics_Observe(t *testing.T) {
	m := NewMetrics()
	r := engine.Govern(weakInput())
	require.Len(t, r.Violations, 6)
	require.NotNil(t, r.TransitionWarning)

	m.Observe(r)
	m.Observe(r)
	m.SideEffectFailed("audit")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.evaluations.WithLabelValues("deferred", "existential")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.transitionWarnings))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.violations.WithLabelValues("financial", "critical")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.sideEffectFailures.WithLabelValues("audit")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.overallScore))
}

func TestMetrics_Handler(t *testing.T) {
	m := NewMetrics()
	m.Observe(engine.Govern(weakInput()))

	srv := httptest.NewServer(m.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Contains(t, string(body), "governance_evaluations_total")
	assert.Contains(t, string(body), "governance_overall_score_bucket")
}
