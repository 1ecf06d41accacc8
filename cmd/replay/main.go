package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lifeos/governance/internal/replay"
	"github.com/lifeos/governance/internal/state"
	_ "modernc.org/sqlite"
)

// #region main

func main() {
	dbPath := flag.String("db", "", "path to governance.db (DB mode)")
	fixturePath := flag.String("fixture", "", "path to fixture JSON (fixture mode)")
	last := flag.Int("last", 1000, "DB mode: replay the N most recent evaluations")
	flag.Parse()

	if (*dbPath == "" && *fixturePath == "") || (*dbPath != "" && *fixturePath != "") {
		fmt.Fprintln(os.Stderr, "usage: replay --db path/to/governance.db [--last N]")
		fmt.Fprintln(os.Stderr, "       replay --fixture path/to/fixture.json")
		os.Exit(2)
	}

	var exitCode int
	if *fixturePath != "" {
		exitCode = runFixtureMode(*fixturePath)
	} else {
		exitCode = runDBMode(*dbPath, *last)
	}
	os.Exit(exitCode)
}

// #endregion main

// #region db-extract

func runDBMode(dbPath string, last int) int {
	store, err := state.NewStore(dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open db: %v\n", err)
		return 2
	}
	defer store.Close()

	records, err := store.List(last)
	if err != nil {
		fmt.Fprintf(os.Stderr, "list evaluations: %v\n", err)
		return 2
	}
	if len(records) == 0 {
		fmt.Fprintln(os.Stderr, "no evaluations found")
		return 2
	}

	// store returns DESC, replay oldest first
	cases := make([]replay.Case, len(records))
	for i, rec := range records {
		c, err := replay.CaseFromRecord(rec)
		if err != nil {
			fmt.Fprintf(os.Stderr, "decode %s: %v\n", rec.PipelineID, err)
			return 2
		}
		cases[len(records)-1-i] = c
	}

	results := replay.Replay(cases, replay.DefaultReplayConfig())
	return printComparison(cases, results)
}

// #endregion db-extract

// #region output

func runFixtureMode(path string) int {
	f, err := replay.LoadFixture(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load fixture: %v\n", err)
		return 2
	}
	if f.Description != "" {
		fmt.Printf("%s\n\n", f.Description)
	}

	cases := f.ToCases()
	results := replay.Replay(cases, f.Config.ToReplayConfig())
	return printComparison(cases, results)
}

// printComparison outputs a comparison table and returns the exit code.
func printComparison(cases []replay.Case, results []replay.ReplayResult) int {
	fmt.Printf("%-10s| %-16s| %-16s| %s\n", "Case", "Expected", "Replayed", "Match")
	fmt.Printf("%-10s+%-17s+%-17s+%s\n",
		"----------", "-----------------", "-----------------", "------")

	for i, res := range results {
		exp := cases[i].Expected
		match := "OK"
		switch res.Action {
		case replay.ActionDiverge:
			match = "DIFF"
		case replay.ActionEvalFail:
			match = "EVAL"
		}
		fmt.Printf("%-10s| %-16s| %-16s| %s\n",
			shortID(res.CaseID),
			fmt.Sprintf("%s %d", exp.Verdict, exp.OverallScore),
			fmt.Sprintf("%s %d", res.Result.Verdict, res.Result.OverallScore),
			match)
		if res.Reason != "" {
			fmt.Printf("%-10s  %s\n", "", res.Reason)
		}
	}

	s := replay.Summarize(results)
	fmt.Printf("\nSummary: %d total, %d match, %d diverge, %d eval failures (%d SIM, %d NÃO AGORA, %d transition warnings)\n",
		s.TotalCases, s.Matches, s.Divergences, s.EvalFailures, s.Approved, s.Deferred, s.TransitionWarnings)

	if s.Divergences > 0 || s.EvalFailures > 0 {
		return 1
	}
	return 0
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// #endregion output
