// Package report renders governance results for people: chat-style
// markdown for messaging front ends and a styled terminal view.
package report

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/lifeos/governance/internal/constitution"
)

var printer = message.NewPrinter(language.BrazilianPortuguese)

// Percent formats a 0–100 score.
func Percent(v int) string {
	return printer.Sprintf("%d%%", v)
}

// Money formats an amount in reais with pt-BR grouping.
func Money(v float64) string {
	return printer.Sprintf("R$ %.2f", v)
}

// Ratio formats an unbounded ratio with one decimal.
func Ratio(v float64) string {
	return printer.Sprintf("%.1f", v)
}

var alertLabels = map[constitution.AlertLevel]string{
	constitution.AlertOK:         "ok",
	constitution.AlertPreventive: "preventivo",
	constitution.AlertAttention:  "atenção",
	constitution.AlertCritical:   "crítico",
}

// AlertLabel is the Portuguese label of an alert level.
func AlertLabel(l constitution.AlertLevel) string {
	if s, ok := alertLabels[l]; ok {
		return s
	}
	return string(l)
}
