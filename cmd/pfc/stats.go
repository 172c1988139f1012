package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/discochess/pfc"
	"github.com/discochess/pfc/internal/stream"
)

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats <plainfile>",
		Short: "Show how well a word list front-codes",
		Long: `Front-code a word list without writing it and display:
- Number of words and input/output size
- Distribution of shared prefix lengths`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(cmd, func(ctx context.Context, client *pfc.Client, log *zap.Logger) error {
				report, err := client.Analyze(ctx, args[0])
				if err != nil {
					return err
				}

				p := report.Prefix
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Words:        %d\n", report.Lines)
				fmt.Fprintf(out, "Input:        %s\n", stream.FormatBytes(report.BytesIn))
				fmt.Fprintf(out, "Output:       %s (%s)\n", stream.FormatBytes(report.BytesOut), report.Change())
				fmt.Fprintf(out, "Shared:       %d words (%.1f%%)\n", p.Shared, p.SharedFraction()*100)
				fmt.Fprintf(out, "Saved chars:  %d\n", p.SavedChars)
				fmt.Fprintf(out, "Prefix mean:  %.2f (stddev %.2f)\n", p.Mean, p.StdDev)
				fmt.Fprintf(out, "Prefix p50:   %.0f\n", p.Median)
				fmt.Fprintf(out, "Prefix p90:   %.0f\n", p.P90)
				fmt.Fprintf(out, "Prefix max:   %d\n", p.Max)
				return nil
			})
		},
	}
}
