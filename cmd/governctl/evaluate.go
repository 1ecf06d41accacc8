package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/lifeos/governance/internal/engine"
	"github.com/lifeos/governance/internal/intake"
	"github.com/lifeos/governance/internal/report"
	"github.com/lifeos/governance/internal/rpc"
	"github.com/lifeos/governance/internal/state"
)

// evalTarget says where an evaluation runs.
type evalTarget struct {
	remote  string
	dbPath  string
	timeout time.Duration
}

func (t *evalTarget) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&t.remote, "remote", "", "governd address; evaluate locally when empty")
	cmd.Flags().StringVar(&t.dbPath, "db", "", "local mode: record the evaluation and audit trail in this database")
	cmd.Flags().DurationVar(&t.timeout, "timeout", 10*time.Second, "remote call timeout")
}

// govern runs doc remotely or through a local service.
func (t *evalTarget) govern(ctx context.Context, doc intake.Document) (engine.Result, error) {
	if t.remote != "" {
		slog.Debug("evaluating remotely", "addr", t.remote)
		client, err := rpc.NewClient(t.remote)
		if err != nil {
			return engine.Result{}, err
		}
		defer client.Close()
		ctx, cancel := context.WithTimeout(ctx, t.timeout)
		defer cancel()
		return client.Govern(ctx, doc)
	}

	var opts []rpc.ServiceOption
	if t.dbPath != "" {
		store, err := state.NewStore(t.dbPath)
		if err != nil {
			return engine.Result{}, fmt.Errorf("open db: %w", err)
		}
		defer store.Close()
		opts = append(opts, rpc.WithStore(store, true))
	}
	slog.Debug("evaluating locally", "db", t.dbPath)
	return rpc.NewService(engine.New(), opts...).Govern(ctx, doc)
}

func evaluateCmd() *cobra.Command {
	var (
		file    string
		subject string
		format  string
		target  evalTarget
	)
	cmd := &cobra.Command{
		Use:   "evaluate -f input.yaml",
		Short: "Evaluate a decision from a YAML or JSON document",
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := intake.LoadFile(file)
			if err != nil {
				return err
			}
			if subject != "" {
				doc.SubjectID = subject
			}
			r, err := target.govern(cmd.Context(), doc)
			if err != nil {
				return err
			}
			slog.Info("evaluated", "pipeline", r.PipelineID, "verdict", r.Verdict.Slug(), "overall", r.OverallScore)
			return render(cmd.OutOrStdout(), format, doc.Decision, r)
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "input document (.yaml, .yml or .json)")
	cmd.Flags().StringVar(&subject, "subject", "", "subject id, overrides the document's subject_id")
	cmd.Flags().StringVar(&format, "format", "term", "output format (md, json, term)")
	target.bind(cmd)
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

// render writes a result in the requested format.
func render(w io.Writer, format string, d engine.Decision, r engine.Result) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case "md", "markdown":
		_, err := fmt.Fprintln(w, report.Markdown(d, r))
		return err
	case "term", "":
		_, err := fmt.Fprintln(w, report.Terminal(d, r))
		return err
	default:
		return fmt.Errorf("unknown format %q (want md, json or term)", format)
	}
}
