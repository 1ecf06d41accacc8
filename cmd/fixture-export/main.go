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
	dbPath := flag.String("db", "", "path to governance.db")
	last := flag.Int("last", 4, "number of most recent evaluations to export")
	subject := flag.String("subject", "", "export only this subject's evaluations")
	outPath := flag.String("out", "", "output fixture JSON path")
	description := flag.String("description", "", "fixture description")
	flag.Parse()

	if *dbPath == "" || *outPath == "" {
		fmt.Fprintln(os.Stderr, "usage: fixture-export --db path/to/db --out path/to/fixture.json [--last N] [--subject id]")
		os.Exit(2)
	}

	if err := run(*dbPath, *subject, *last, *outPath, *description); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// #endregion main

// #region extract

func run(dbPath, subject string, last int, outPath, description string) error {
	store, err := state.NewStore(dbPath)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer store.Close()

	var records []state.EvaluationRecord
	if subject != "" {
		records, err = store.ListBySubject(subject, last)
	} else {
		records, err = store.List(last)
	}
	if err != nil {
		return fmt.Errorf("list evaluations: %w", err)
	}
	if len(records) == 0 {
		return fmt.Errorf("no evaluations found")
	}

	// DESC from the store, fixtures are chronological
	for i, j := 0, len(records)-1; i < j; i, j = i+1, j-1 {
		records[i], records[j] = records[j], records[i]
	}

	if description == "" {
		description = fmt.Sprintf("exported %d evaluations from %s", len(records), dbPath)
	}
	f, err := replay.FixtureFromRecords(description, records)
	if err != nil {
		return fmt.Errorf("build fixture: %w", err)
	}
	if err := replay.WriteFixture(f, outPath); err != nil {
		return err
	}

	fmt.Printf("wrote %d cases to %s\n", len(f.Cases), outPath)
	return nil
}

// #endregion extract
