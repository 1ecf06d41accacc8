package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lifeos/governance/internal/constitution"
	"github.com/lifeos/governance/internal/report"
)

type constitutionDoc struct {
	Version       string                                          `json:"version"`
	States        []constitution.StateInfo                        `json:"states"`
	DecisionTypes []constitution.DecisionType                     `json:"decision_types"`
	Domains       []constitution.Domain                           `json:"domains"`
	Transitions   map[constitution.StateID][]constitution.StateID `json:"transitions"`
}

func constitutionCmd() *cobra.Command {
	var jsonOut bool
	cmd := &cobra.Command{
		Use:   "constitution",
		Short: "Print the static constitution tables",
		RunE: func(cmd *cobra.Command, args []string) error {
			doc := constitutionDoc{
				Version:       constitution.Version,
				States:        constitution.States(),
				DecisionTypes: constitution.DecisionTypes(),
				Domains:       constitution.Domains(),
				Transitions:   constitution.Transitions(),
			}
			if jsonOut {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(doc)
			}
			printConstitution(cmd.OutOrStdout(), doc)
			return nil
		},
	}
	cmd.Flags().BoolVar(&jsonOut, "json", false, "output as JSON")
	return cmd
}

func printConstitution(w io.Writer, doc constitutionDoc) {
	fmt.Fprintf(w, "Constitution %s\n\nStates:\n", doc.Version)
	for _, s := range doc.States {
		next := make([]string, 0, len(doc.Transitions[s.ID]))
		for _, n := range doc.Transitions[s.ID] {
			next = append(next, string(n))
		}
		fmt.Fprintf(w, "  %-22s %-24s sev %d  %3d-%-3d  → %s\n",
			s.ID, s.Label, s.Severity, s.Min, s.Max, strings.Join(next, ", "))
	}

	fmt.Fprintf(w, "\nDecision types:\n")
	for _, dt := range doc.DecisionTypes {
		fmt.Fprintf(w, "  %-12s %-12s overall ≥ %-4s domain ≥ %s\n",
			dt.ID, dt.Label, report.Percent(dt.MinOverall), report.Percent(dt.MinDomain))
	}

	fmt.Fprintf(w, "\nDomains:\n")
	for _, d := range doc.Domains {
		fmt.Fprintf(w, "  %-12s %-12s weight %.2f\n", d.ID, d.Label, d.Weight)
	}
}
