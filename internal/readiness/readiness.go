// Package readiness turns a blocked evaluation into a remediation plan.
package readiness

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/lifeos/governance/internal/constitution"
	"github.com/lifeos/governance/internal/gate"
	"github.com/lifeos/governance/internal/score"
)

// #region catalog

var catalog = map[constitution.DomainID][]template{
	constitution.DomainFinancial: {
		{"Reduzir alavancagem para nível seguro", "Alavancagem < 1.4x"},
		{"Estabilizar fluxo de caixa por 2 ciclos", "2 meses positivos consecutivos"},
		{"Criar reserva de emergência de 3 meses", "Caixa ≥ 3x custos fixos"},
	},
	constitution.DomainEmotional: {
		{"Reduzir fontes de estresse ativas", "Estresse auto-reportado < 50"},
		{"Recuperar rotina de descanso cognitivo", "Energia auto-reportada > 60"},
	},
	constitution.DomainDecisional: {
		{"Reduzir decisões paralelas por 30 dias", "Carga decisória < 40"},
		{"Implementar processo de decisão estruturado", "Clareza > 65"},
	},
	constitution.DomainOperational: {
		{"Reduzir frentes ativas simultâneas", "Frentes ativas ≤ 3"},
		{"Aumentar maturidade de processos", "Processos > 60"},
		{"Fortalecer capacidade de delegação", "Delegação > 60"},
	},
	constitution.DomainRelational: {
		{"Resolver conflito ativo mais crítico", "Conflitos ativos ≤ 1"},
		{"Alinhar expectativas com parceiros-chave", "Alinhamento > 65"},
	},
	constitution.DomainEnergetic: {
		{"Recuperar margem de energia e ritmo", "Energia > 60"},
		{"Reduzir carga decisória excessiva", "Carga < 50"},
	},
}

const (
	fallbackAction  = "Fortalecer capacidade geral antes de avançar"
	fallbackHorizon = "4–8 semanas"
)

// #endregion catalog

// #region generate

// Generate builds the plan for a blocked decision. Domains are ranked
// worst first; ties keep constitutional domain order.
func Generate(scores gate.DomainScores, dt constitution.DecisionType, overallScore, gap int) *Plan {
	ranked := rank(scores)
	primary := ranked[0]
	var secondary *Bottleneck
	if len(ranked) > 1 {
		s := ranked[1]
		secondary = &s
	}

	overallTarget := fmt.Sprintf("Score geral ≥ %d%%", dt.MinOverall)
	horizon := weeks(gap, 5, 3)

	var actions []Action
	weak := 0
	for _, b := range ranked {
		if weak == maxWeakDomains {
			break
		}
		if b.Score >= dt.MinDomain {
			continue
		}
		weak++
		templates := catalog[b.Domain]
		if len(templates) > actionsPerDomain {
			templates = templates[:actionsPerDomain]
		}
		for _, t := range templates {
			actions = append(actions, Action{Action: t.action, Horizon: horizon, Indicator: t.indicator})
		}
	}
	for len(actions) < MinActions {
		actions = append(actions, Action{Action: fallbackAction, Horizon: fallbackHorizon, Indicator: overallTarget})
	}

	triggers := []string{overallTarget, domainTrigger(primary, dt.MinDomain)}
	if secondary != nil && secondary.Score < dt.MinDomain {
		triggers = append(triggers, domainTrigger(*secondary, dt.MinDomain))
	}

	return &Plan{
		StructuralReason: fmt.Sprintf(
			"Esta decisão %s exige capacidade mínima de %d%%. Seu score atual é %d%%, gerando um gap de %d%%. O sistema identifica incompatibilidade estrutural, não opinião.",
			strings.ToLower(dt.Label), dt.MinOverall, overallScore, gap,
		),
		PrimaryBottleneck:    primary,
		SecondaryBottleneck:  secondary,
		Actions:              actions,
		ReevaluationTriggers: triggers,
		Timeline:             weeks(gap, 4, 2),
	}
}

func rank(scores gate.DomainScores) []Bottleneck {
	ds := constitution.Domains()
	out := make([]Bottleneck, 0, len(ds))
	for _, d := range ds {
		out = append(out, Bottleneck{Domain: d.ID, Label: d.Label, Score: scores.Get(d.ID)})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score < out[j].Score })
	return out
}

func domainTrigger(b Bottleneck, minDomain int) string {
	return fmt.Sprintf("%s ≥ %d%% (atual: %d%%)", b.Label, minDomain, b.Score)
}

// weeks renders "lo–hi semanas" with lo = max(2, gap/loDiv) and hi = max(4, gap/hiDiv).
func weeks(gap int, loDiv, hiDiv float64) string {
	lo := math.Max(2, score.Round(float64(gap)/loDiv))
	hi := math.Max(4, score.Round(float64(gap)/hiDiv))
	return fmt.Sprintf("%d–%d semanas", int(lo), int(hi))
}

// #endregion generate
