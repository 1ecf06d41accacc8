package report

import (
	"fmt"
	"strings"

	"github.com/lifeos/governance/internal/engine"
	"github.com/lifeos/governance/internal/layers"
)

// Markdown renders a verdict summary in chat markdown (single asterisk
// bold, underscore italics).
func Markdown(d engine.Decision, r engine.Result) string {
	var b strings.Builder

	emoji := "🔴"
	if r.Approved() {
		emoji = "🟢"
	}
	fmt.Fprintf(&b, "%s *Veredito: %s*\n\n", emoji, r.Verdict)

	fmt.Fprintf(&b, "📊 *Score Geral:* %s\n", Percent(r.OverallScore))
	fmt.Fprintf(&b, "👤 *Score Humano:* %s\n", Percent(r.Layers.Human.Score))
	fmt.Fprintf(&b, "🏢 *Score Negócio:* %s\n", Percent(r.Layers.Business.Score))
	fmt.Fprintf(&b, "💰 *Score Financeiro:* %s\n", Percent(r.Layers.Financial.Score))
	fmt.Fprintf(&b, "🤝 *Score Relacional:* %s\n\n", Percent(r.Layers.Relational.Score))

	fmt.Fprintf(&b, "🧭 *Estado:* %s (confiança %s)\n", r.State.Label, Percent(int(r.StateConfidence*100+0.5)))
	if r.Layers.Financial.Runway < layers.RunwaySentinel {
		fmt.Fprintf(&b, "⏳ *Runway:* %s meses\n", Ratio(r.Layers.Financial.Runway))
	}
	b.WriteString("\n")

	if r.Blocked {
		b.WriteString("⚠️ *Decisão BLOQUEADA*: sua capacidade atual não comporta.\n")
	} else {
		b.WriteString("✅ Decisão liberada pelo protocolo.\n")
	}
	if r.Gap > 0 {
		fmt.Fprintf(&b, "📏 *Gap:* %d pontos (mínimo %s para decisão %s)\n",
			r.Gap, Percent(r.DecisionType.MinRequired), strings.ToLower(r.DecisionType.Label))
	}

	if len(r.Violations) > 0 {
		b.WriteString("\n🚨 *Violações:*\n")
		for _, v := range r.Violations {
			fmt.Fprintf(&b, "• %s: %s (exigido %s, %s)\n", v.Label, Percent(v.Score), Percent(v.Required), AlertLabel(v.Level))
		}
	}

	if r.TransitionWarning != nil {
		fmt.Fprintf(&b, "\n⚠️ _%s_\n", *r.TransitionWarning)
	}

	if p := r.ReadinessPlan; p != nil {
		fmt.Fprintf(&b, "\n🛠️ *Plano de Prontidão* (%s)\n_%s_\n", p.Timeline, p.StructuralReason)
		for i, a := range p.Actions {
			fmt.Fprintf(&b, "%d. %s · %s · _%s_\n", i+1, a.Action, a.Horizon, a.Indicator)
		}
		if len(p.ReevaluationTriggers) > 0 {
			b.WriteString("\n🔁 *Reavaliar quando:*\n")
			for _, t := range p.ReevaluationTriggers {
				fmt.Fprintf(&b, "• %s\n", t)
			}
		}
	}

	if d.Description != "" {
		fmt.Fprintf(&b, "\n📝 _%s_", d.Description)
	}
	return strings.TrimRight(b.String(), "\n")
}
