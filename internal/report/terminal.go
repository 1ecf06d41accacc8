package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lifeos/governance/internal/constitution"
	"github.com/lifeos/governance/internal/engine"
)

var (
	approvedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#6BCB77"))
	deferredStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF6B6B"))
	headStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#5B8DEF"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
	panelStyle    = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#444444")).
			Padding(0, 1)
)

var levelColors = map[constitution.AlertLevel]lipgloss.Color{
	constitution.AlertOK:         "#6BCB77",
	constitution.AlertPreventive: "#C09A1F",
	constitution.AlertAttention:  "#E8590C",
	constitution.AlertCritical:   "#E03131",
}

// Terminal renders a result as styled panels for a terminal.
func Terminal(d engine.Decision, r engine.Result) string {
	verdict := deferredStyle.Render("🔴 " + string(r.Verdict))
	if r.Approved() {
		verdict = approvedStyle.Render("🟢 " + string(r.Verdict))
	}
	header := lipgloss.JoinVertical(lipgloss.Left,
		verdict,
		dimStyle.Render(d.Description),
		fmt.Sprintf("%s · %s · gap %d", r.DecisionType.Label, Percent(r.OverallScore), r.Gap),
	)

	stateColor := lipgloss.Color(r.State.Color)
	state := lipgloss.NewStyle().Foreground(stateColor).Bold(true).Render(r.State.Label)

	layersPanel := panelStyle.Render(strings.Join([]string{
		headStyle.Render("Camadas"),
		row("Humana", Percent(r.Layers.Human.Score)),
		row("Negócio", Percent(r.Layers.Business.Score)),
		row("Financeira", Percent(r.Layers.Financial.Score)),
		row("Relacional", Percent(r.Layers.Relational.Score)),
		row("Estado", state),
	}, "\n"))

	domainLines := []string{headStyle.Render("Domínios")}
	for _, dd := range r.DomainDetails {
		score := lipgloss.NewStyle().Foreground(levelColors[dd.AlertLevel]).Render(Percent(dd.Score))
		domainLines = append(domainLines, row(dd.Label, score))
	}
	domainsPanel := panelStyle.Render(strings.Join(domainLines, "\n"))

	scenarioLines := []string{headStyle.Render("Cenários")}
	for _, s := range r.Scenarios {
		name := lipgloss.NewStyle().Foreground(lipgloss.Color(s.Color)).Render(s.Name)
		brk := "sem ruptura"
		if s.Breaks() {
			brk = fmt.Sprintf("ruptura no mês %d", s.BreakMonth)
		}
		scenarioLines = append(scenarioLines, fmt.Sprintf("%-14s falha %s · %s", name, Percent(s.FailureProbability), brk))
	}
	scenariosPanel := panelStyle.Render(strings.Join(scenarioLines, "\n"))

	parts := []string{
		header,
		lipgloss.JoinHorizontal(lipgloss.Top, layersPanel, domainsPanel),
		scenariosPanel,
	}

	if r.TransitionWarning != nil {
		parts = append(parts, deferredStyle.Render("⚠ "+*r.TransitionWarning))
	}

	if p := r.ReadinessPlan; p != nil {
		lines := []string{headStyle.Render("Plano de prontidão · " + p.Timeline), dimStyle.Render(p.StructuralReason)}
		for i, a := range p.Actions {
			lines = append(lines, fmt.Sprintf("%d. %s (%s)", i+1, a.Action, a.Horizon))
		}
		parts = append(parts, panelStyle.Render(strings.Join(lines, "\n")))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func row(label, value string) string {
	return fmt.Sprintf("%-12s %s", label, value)
}
