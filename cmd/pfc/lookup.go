package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/discochess/pfc"
)

func newLookupCmd() *cobra.Command {
	var showTiming bool

	cmd := &cobra.Command{
		Use:   "lookup <compressedfile> <word>",
		Short: "Find the line of a word in a front-coded list",
		Long: `Look up a word in a front-coded list and print its line number.

Records are expanded from the start of the list; the scan stops at the
first word that sorts after the one requested.

Examples:
  pfc lookup words.pfc application
  pfc lookup --cache-size 4 s3://lists/en/words.pfc.zst apply`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(cmd, func(ctx context.Context, client *pfc.Client, log *zap.Logger) error {
				start := time.Now()
				line, err := client.Lookup(ctx, args[0], args[1])
				if err != nil {
					if errors.Is(err, pfc.ErrNotFound) {
						return fmt.Errorf("%q not found in %s", args[1], args[0])
					}
					return fmt.Errorf("lookup failed: %w", err)
				}

				out := cmd.OutOrStdout()
				fmt.Fprintln(out, line)
				if showTiming {
					fmt.Fprintf(out, "Time: %s\n", time.Since(start))
				}
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&showTiming, "timing", false, "show lookup timing")
	return cmd
}
