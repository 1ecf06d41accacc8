// Package scenario projects fixed stress scenarios over a 13-month horizon.
package scenario

import (
	"math"

	"github.com/lifeos/governance/internal/score"
)

// #region configs

var configs = []Config{
	{ID: "optimistic", Name: "Otimista", Color: "#0B7A4C", LoadMultiplier: 0.7, CashMultiplier: 1.15},
	{ID: "realistic", Name: "Realista", Color: "#2563EB", LoadMultiplier: 1.0, CashMultiplier: 1.0},
	{ID: "stress", Name: "Estresse", Color: "#E8590C", LoadMultiplier: 1.4, CashMultiplier: 0.7},
	{ID: "hfailure", Name: "Falha Humana", Color: "#E03131", LoadMultiplier: 1.8, CashMultiplier: 0.4},
}

// Configs returns the four scenario configs in their fixed order.
func Configs() []Config {
	out := make([]Config, len(configs))
	copy(out, configs)
	return out
}

// #endregion configs

// #region simulate

// ComputeBase derives the unstressed leader load, systemic risk and cash flow.
func ComputeBase(in Inputs) Base {
	return Base{
		LeaderLoad: score.Clamp(float64(100 - in.HumanScore)),
		SystemicRisk: score.Clamp(
			float64(in.BusinessComplexity)*0.4 +
				float64(in.ConflictRisk)*0.3 +
				float64(100-in.FinancialScore)*0.3,
		),
		MonthlyCashFlow: score.Bound(score.Sanitize(in.Revenue) - score.Sanitize(in.FixedCosts)),
	}
}

// Simulate returns exactly four scenarios, optimistic to human failure.
// gap pushes leader load up in every scenario.
func Simulate(in Inputs, gap int) []Scenario {
	base := ComputeBase(in)
	cash := score.Sanitize(in.Cash)

	out := make([]Scenario, 0, len(configs))
	for _, cfg := range configs {
		load := score.Clamp(float64(base.LeaderLoad)*cfg.LoadMultiplier + float64(gap)*0.3)
		risk := score.Clamp(float64(base.SystemicRisk) * cfg.LoadMultiplier)
		fail := score.Clamp(math.Min(95, float64(risk)*0.6+float64(load)*0.4))
		flow := score.Bound(base.MonthlyCashFlow * cfg.CashMultiplier)

		projection := project(cash, flow)
		breakMonth := firstNegative(projection)

		tension := breakMonth
		if breakMonth <= 0 {
			tension = int(math.Max(1, score.Round(12/cfg.LoadMultiplier)))
		}

		out = append(out, Scenario{
			ID:                 cfg.ID,
			Name:               cfg.Name,
			Color:              cfg.Color,
			LeaderLoad:         load,
			SystemicRisk:       risk,
			FailureProbability: fail,
			MonthsToTension:    tension,
			ComplexityAdded:    score.Clamp(float64(in.BusinessComplexity) * cfg.LoadMultiplier * 0.5),
			CashProjection:     projection,
			BreakMonth:         breakMonth,
		})
	}
	return out
}

// project is linear: cash[m] = start + flow*m, rounded to whole units.
func project(start, flow float64) []CashPoint {
	points := make([]CashPoint, HorizonMonths+1)
	for m := range points {
		points[m] = CashPoint{Month: m, Cash: score.Round(score.Bound(start + flow*float64(m)))}
	}
	return points
}

func firstNegative(points []CashPoint) int {
	for _, p := range points {
		if p.Cash < 0 {
			return p.Month
		}
	}
	return -1
}

// #endregion simulate
