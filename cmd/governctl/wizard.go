package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lifeos/governance/internal/intake"
	"github.com/lifeos/governance/internal/intake/wizard"
)

func wizardCmd() *cobra.Command {
	var (
		subject string
		format  string
		target  evalTarget
	)
	cmd := &cobra.Command{
		Use:   "wizard",
		Short: "Answer the intake questions interactively and evaluate",
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := wizard.Run(intake.NewSession("CLI"))
			if errors.Is(err, wizard.ErrAborted) {
				fmt.Fprintln(cmd.ErrOrStderr(), "aborted")
				return nil
			}
			if err != nil {
				return err
			}
			doc := intake.Document{SubjectID: subject, Input: in}
			r, err := target.govern(cmd.Context(), doc)
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), format, in.Decision, r)
		},
	}
	cmd.Flags().StringVar(&subject, "subject", "", "subject id")
	cmd.Flags().StringVar(&format, "format", "term", "output format (md, json, term)")
	target.bind(cmd)
	return cmd
}
