package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/discochess/pfc"
)

func newVerifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify <plainfile> [compressedfile]",
		Short: "Verify a word list and its compressed form",
		Long: `Verify that a word list can be front-coded faithfully.

This command checks:
- Every word sorts at or after the previous one
- Compressing and expanding the list reproduces it
- The compressed file, if given, expands to the list`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var compressed string
			if len(args) > 1 {
				compressed = args[1]
			}

			return withClient(cmd, func(ctx context.Context, client *pfc.Client, log *zap.Logger) error {
				res, err := client.Verify(ctx, args[0], compressed)
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Lines:      %d\n", res.Lines)
				if res.Sorted {
					fmt.Fprintln(out, "Sorted:     yes")
				} else {
					fmt.Fprintf(out, "Sorted:     no, line %d %q sorts before line %d %q\n",
						res.Unsorted.Line, res.Unsorted.Word, res.Unsorted.Line-1, res.Unsorted.Prev)
				}
				fmt.Fprintf(out, "Round trip: %s\n", yesNo(res.RoundTrip))
				if res.Checked {
					fmt.Fprintf(out, "Matches:    %s (%016x, %016x)\n", yesNo(res.Match), res.PlainDigest, res.ExpandedDigest)
				}

				if !res.OK() {
					return errors.New("verification failed")
				}
				return nil
			})
		},
	}
}

func yesNo(ok bool) string {
	if ok {
		return "yes"
	}
	return "no"
}
