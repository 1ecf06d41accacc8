// Package layers reduces each input domain to a score plus secondary metrics.
// The four analyzers share no state and may run in any order.
package layers

import (
	"math"

	"github.com/lifeos/governance/internal/capacity"
	"github.com/lifeos/governance/internal/score"
)

// RunwaySentinel is the runway reported when there are no fixed costs.
const RunwaySentinel = 99.0

// #region human

// AnalyzeHuman derives pressure capacity and impulsivity risk. The layer
// score is the classifier score passed in, not recomputed.
func AnalyzeHuman(a capacity.Assessment, stateScore int) Human {
	energy := score.Sanitize(a.Energy)
	clarity := score.Sanitize(a.Clarity)
	stress := score.Sanitize(a.Stress)
	confidence := score.Sanitize(a.Confidence)
	load := score.Sanitize(a.Load)

	return Human{
		Score:            stateScore,
		PressureCapacity: score.Clamp(confidence*0.3 + (100-stress)*0.4 + energy*0.3),
		ImpulsivityRisk:  score.Clamp(stress*0.4 + (100-clarity)*0.3 + load*0.3),
	}
}

// #endregion human

// #region business

// AnalyzeBusiness scores margin, founder independence, focus, process
// maturity and delegation.
func AnalyzeBusiness(b BusinessInput) Business {
	revenue := score.Sanitize(b.Revenue)
	costs := score.Sanitize(b.Costs)
	founderDep := score.Sanitize(b.FounderDependence)
	fronts := score.Sanitize(b.ActiveFronts)
	maturity := score.Sanitize(b.ProcessMaturity)
	delegation := score.Sanitize(b.DelegationCapacity)

	margin := 0
	if revenue > 0 {
		margin = score.Clamp((revenue - costs) / revenue * 100)
	}
	independence := 100 - founderDep
	// Each front beyond the first costs 12 points.
	frontLoad := score.Clamp(100 - (fronts-1)*12)

	return Business{
		Score: score.Clamp(
			float64(margin)*0.25 +
				independence*0.20 +
				float64(frontLoad)*0.15 +
				maturity*0.20 +
				delegation*0.20,
		),
		Margin:     margin,
		Complexity: score.Clamp(fronts*10 + founderDep*0.3 + (100-maturity)*0.3),
	}
}

// #endregion business

// #region financial

// AnalyzeFinancial scores leverage, runway, cash cover and operating margin.
func AnalyzeFinancial(f FinancialInput) Financial {
	revenue := score.Sanitize(f.Revenue)
	cash := score.Sanitize(f.Cash)
	debt := score.Sanitize(f.Debt)
	fixed := score.Sanitize(f.FixedCosts)
	intended := score.Sanitize(f.IntendedLeverage)

	annualRevenue := math.Max(revenue*12, 1)
	leverage := score.Bound(debt / annualRevenue)
	intendedLeverage := score.Bound((debt + intended) / annualRevenue)

	// Vanishing fixed costs read the same as none at all.
	runway := RunwaySentinel
	if fixed > 0 {
		runway = score.Bound(cash / fixed)
		if cash > 0 {
			runway = score.Finite(cash/fixed, RunwaySentinel)
		}
	}

	leverageScore := score.Clamp(100 - leverage*50)
	runwayScore := score.Clamp(math.Min(100, runway*15))
	cashScore, marginScore := 0, 0
	if revenue > 0 {
		cashScore = score.Clamp(cash / revenue * 30)
		marginScore = score.Clamp((revenue - fixed) / revenue * 100)
	}

	return Financial{
		Score: score.Clamp(
			float64(leverageScore)*0.30 +
				float64(runwayScore)*0.25 +
				float64(cashScore)*0.20 +
				float64(marginScore)*0.25,
		),
		Leverage:           score.RoundTo(leverage, 2),
		IntendedLeverage:   score.RoundTo(intendedLeverage, 2),
		Runway:             score.RoundTo(runway, 1),
		TensionProbability: score.ClampRange(intendedLeverage/1.4*40, 5, 95),
	}
}

// #endregion financial

// #region relational

// AnalyzeRelational scores alignment, stability and ecosystem health net of
// conflict and dependency penalties.
func AnalyzeRelational(r RelationalInput) Relational {
	conflicts := score.Sanitize(r.ActiveConflicts)
	deps := score.Sanitize(r.CriticalDependencies)
	alignment := score.Sanitize(r.PartnerAlignment)
	stability := score.Sanitize(r.TeamStability)
	ecosystem := score.Sanitize(r.EcosystemHealth)

	return Relational{
		Score: score.Clamp(
			alignment*0.30 + stability*0.30 + ecosystem*0.20 -
				conflicts*8 - deps*5 + 20,
		),
		ConflictRisk: score.Clamp(conflicts*12 + deps*8),
	}
}

// #endregion relational
