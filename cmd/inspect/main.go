package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/lifeos/governance/internal/logging"
	"github.com/lifeos/governance/internal/report"
	"github.com/lifeos/governance/internal/state"
	_ "modernc.org/sqlite"
)

// #region main

func main() {
	dbPath := flag.String("db", "", "path to governance.db")
	last := flag.Int("last", 20, "show N most recent evaluations")
	subject := flag.String("subject", "", "restrict the list to one subject")
	pipeline := flag.String("pipeline", "", "show one evaluation with its audit trail")
	rollback := flag.String("rollback", "", "point --subject's latest evaluation back at this pipeline id")
	jsonOut := flag.Bool("json", false, "output as JSON instead of table")
	flag.Parse()

	if *dbPath == "" {
		fmt.Fprintln(os.Stderr, "usage: inspect --db path/to/governance.db [--last N] [--subject id] [--pipeline id] [--rollback id --subject id] [--json]")
		os.Exit(2)
	}

	store, err := state.NewStore(*dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open db: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	switch {
	case *rollback != "":
		if *subject == "" {
			fmt.Fprintln(os.Stderr, "--rollback requires --subject")
			os.Exit(2)
		}
		err = store.Rollback(*subject, *rollback)
		if err == nil {
			fmt.Printf("subject %s now points at %s\n", *subject, *rollback)
		}
	case *pipeline != "":
		err = runDetailMode(store, *pipeline, *jsonOut)
	default:
		err = runListMode(store, *subject, *last, *jsonOut)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// #endregion main

// #region list-mode

type listRow struct {
	PipelineID   string `json:"pipeline_id"`
	SubjectID    string `json:"subject_id"`
	DecisionType string `json:"decision_type"`
	Verdict      string `json:"verdict"`
	OverallScore int    `json:"overall_score"`
	StateID      string `json:"state_id"`
	CreatedAt    string `json:"created_at"`
}

func runListMode(store *state.Store, subject string, last int, jsonOut bool) error {
	var (
		records []state.EvaluationRecord
		err     error
	)
	if subject != "" {
		records, err = store.ListBySubject(subject, last)
	} else {
		records, err = store.List(last)
	}
	if err != nil {
		return err
	}
	if len(records) == 0 {
		fmt.Fprintln(os.Stderr, "no evaluations found")
		return nil
	}

	// store returns DESC, reverse for chronological
	rows := make([]listRow, len(records))
	for i, rec := range records {
		rows[len(records)-1-i] = listRow{
			PipelineID:   rec.PipelineID,
			SubjectID:    rec.SubjectID,
			DecisionType: string(rec.DecisionType),
			Verdict:      string(rec.Verdict),
			OverallScore: rec.OverallScore,
			StateID:      string(rec.StateID),
			CreatedAt:    rec.CreatedAt.Format("2006-01-02T15:04:05Z"),
		}
	}

	if jsonOut {
		return printJSON(rows)
	}

	fmt.Printf("%-10s  %-12s  %-11s  %-9s  %7s  %-20s  %s\n",
		"Pipeline", "Subject", "Type", "Verdict", "Overall", "State", "Time")
	fmt.Printf("%-10s+-%-12s+-%-11s+-%-9s+-%7s+-%-20s+-%s\n",
		"----------", "------------", "-----------", "---------", "-------", "--------------------", "--------------------")
	for _, r := range rows {
		fmt.Printf("%-10s  %-12s  %-11s  %-9s  %7s  %-20s  %s\n",
			shortID(r.PipelineID), r.SubjectID, r.DecisionType, r.Verdict,
			report.Percent(r.OverallScore), r.StateID, r.CreatedAt)
	}
	return nil
}

// #endregion list-mode

// #region detail-mode

type auditRow struct {
	Seq       int             `json:"seq"`
	EventType string          `json:"event_type"`
	Data      json.RawMessage `json:"data"`
}

type detailOutput struct {
	PipelineID string         `json:"pipeline_id"`
	ParentID   string         `json:"parent_id"`
	SubjectID  string         `json:"subject_id"`
	CreatedAt  string         `json:"created_at"`
	Verdict    string         `json:"verdict"`
	Overall    int            `json:"overall_score"`
	Gap        int            `json:"gap"`
	StateID    string         `json:"state_id"`
	Domains    map[string]int `json:"domains"`
	Audit      []auditRow     `json:"audit"`
}

func runDetailMode(store *state.Store, pipelineID string, jsonOut bool) error {
	rec, err := store.Get(pipelineID)
	if err != nil {
		return err
	}
	r, err := rec.Result()
	if err != nil {
		return err
	}
	entries, err := logging.ListEntries(store.DB(), pipelineID)
	if err != nil {
		return err
	}

	out := detailOutput{
		PipelineID: rec.PipelineID,
		ParentID:   rec.ParentID,
		SubjectID:  rec.SubjectID,
		CreatedAt:  rec.CreatedAt.Format("2006-01-02T15:04:05Z"),
		Verdict:    string(rec.Verdict),
		Overall:    rec.OverallScore,
		Gap:        r.Gap,
		StateID:    string(rec.StateID),
		Domains:    map[string]int{},
	}
	for _, d := range r.DomainDetails {
		out.Domains[string(d.ID)] = d.Score
	}
	for _, e := range entries {
		out.Audit = append(out.Audit, auditRow{Seq: e.Seq, EventType: string(e.EventType), Data: json.RawMessage(e.EventData)})
	}

	if jsonOut {
		return printJSON(out)
	}

	fmt.Printf("Pipeline:   %s\n", out.PipelineID)
	fmt.Printf("Parent:     %s\n", out.ParentID)
	fmt.Printf("Subject:    %s\n", out.SubjectID)
	fmt.Printf("Created:    %s\n", out.CreatedAt)
	fmt.Printf("Verdict:    %s\n", out.Verdict)
	fmt.Printf("Overall:    %s (gap %d)\n", report.Percent(out.Overall), out.Gap)
	fmt.Printf("State:      %s\n", out.StateID)

	fmt.Printf("\nDomains:\n")
	for _, d := range r.DomainDetails {
		fmt.Printf("  %-12s %5s  %s\n", d.Label, report.Percent(d.Score), report.AlertLabel(d.AlertLevel))
	}

	if len(out.Audit) > 0 {
		fmt.Printf("\nAudit trail:\n")
		for _, a := range out.Audit {
			fmt.Printf("  %2d  %-20s %s\n", a.Seq, a.EventType, string(a.Data))
		}
	}
	return nil
}

// #endregion detail-mode

// #region output

func printJSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// #endregion output
