package intake

import (
	"math"
	"strconv"
	"strings"

	"github.com/lifeos/governance/internal/constitution"
)

// #region numbers

// ParseNumber coerces a free-text answer to a number. It accepts currency
// prefixes, percent signs, pt-BR and en-US grouping, and "k"/"mil"
// suffixes. Anything unparseable is 0.
func ParseNumber(s string) float64 {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.TrimPrefix(s, "r$")
	s = strings.TrimSuffix(s, "%")
	s = strings.Map(func(r rune) rune {
		if r == ' ' || r == '\u00a0' || r == '_' {
			return -1
		}
		return r
	}, s)

	mult := 1.0
	switch {
	case strings.HasSuffix(s, "mil"):
		s, mult = strings.TrimSuffix(s, "mil"), 1000
	case strings.HasSuffix(s, "k"):
		s, mult = strings.TrimSuffix(s, "k"), 1000
	}
	if s == "" {
		return 0
	}

	hasDot, hasComma := strings.Contains(s, "."), strings.Contains(s, ",")
	switch {
	case hasDot && hasComma:
		if strings.LastIndex(s, ",") > strings.LastIndex(s, ".") {
			// 1.234,56
			s = strings.ReplaceAll(s, ".", "")
			s = strings.Replace(s, ",", ".", 1)
		} else {
			// 1,234.56
			s = strings.ReplaceAll(s, ",", "")
		}
	case hasComma:
		if strings.Count(s, ",") > 1 {
			s = strings.ReplaceAll(s, ",", "")
		} else {
			s = strings.Replace(s, ",", ".", 1)
		}
	case hasDot:
		if strings.Count(s, ".") > 1 || isThousandsGroup(s) {
			s = strings.ReplaceAll(s, ".", "")
		}
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v * mult
}

// isThousandsGroup reports whether a single-dot number reads as pt-BR
// grouping ("50.000") rather than a decimal ("13.5", "0.125").
func isThousandsGroup(s string) bool {
	before, after, _ := strings.Cut(s, ".")
	before = strings.TrimPrefix(before, "-")
	return len(after) == 3 && before != "" && before != "0"
}

// #endregion numbers

// #region choices

// decisionAliases maps Portuguese labels to decision type ids.
var decisionAliases = func() map[string]string {
	m := map[string]string{}
	for _, dt := range constitution.DecisionTypes() {
		m[strings.ToLower(dt.Label)] = string(dt.ID)
	}
	m["estrategica"] = string(constitution.DecisionStrategic)
	m["tatica"] = string(constitution.DecisionTactical)
	return m
}()

// normalizeChoice lower-cases an answer and resolves aliases. ok is false
// when the answer is not one of the step's choices.
func normalizeChoice(step Step, answer string) (string, bool) {
	a := strings.ToLower(strings.TrimSpace(answer))
	if a == "" {
		return step.Default, true
	}
	if step.Key == "type" {
		if id, ok := decisionAliases[a]; ok {
			a = id
		}
	}
	for _, c := range step.Choices {
		if a == c {
			return a, true
		}
	}
	return "", false
}

// #endregion choices
