package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/lifeos/governance/internal/capacity"
	"github.com/lifeos/governance/internal/rpc"
)

func classifyCmd() *cobra.Command {
	var (
		a      capacity.Assessment
		remote string
	)
	cmd := &cobra.Command{
		Use:   "classify",
		Short: "Classify structural capacity from a self-assessment",
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				c   capacity.Classification
				err error
			)
			if remote != "" {
				client, cerr := rpc.NewClient(remote)
				if cerr != nil {
					return cerr
				}
				defer client.Close()
				c, err = client.Classify(cmd.Context(), a)
			} else {
				c = capacity.Classify(a)
			}
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(c)
		},
	}
	cmd.Flags().Float64Var(&a.Energy, "energy", 50, "energy (0-100)")
	cmd.Flags().Float64Var(&a.Clarity, "clarity", 50, "mental clarity (0-100)")
	cmd.Flags().Float64Var(&a.Stress, "stress", 50, "stress (0-100, high is bad)")
	cmd.Flags().Float64Var(&a.Confidence, "confidence", 50, "confidence (0-100)")
	cmd.Flags().Float64Var(&a.Load, "load", 50, "decision load (0-100, high is bad)")
	cmd.Flags().StringVar(&remote, "remote", "", "governd address; classify locally when empty")
	return cmd
}
