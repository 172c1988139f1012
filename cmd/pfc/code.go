package main

import (
	"context"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/discochess/pfc"
	"github.com/discochess/pfc/internal/stream"
)

// newCodeCmd returns the compress or expand command.
func newCodeCmd(mode pfc.Mode) *cobra.Command {
	short := "Front-code a sorted word list"
	long := `Compress a sorted word list, one word per line, into front-coded records.

Surrounding whitespace is stripped from every line. The list should be
sorted; unsorted input still round-trips but compresses poorly.`
	if mode == pfc.ModeExpand {
		short = "Restore a word list from front-coded records"
		long = `Expand front-coded records back into the word list.

Expansion stops at the first malformed record and reports its line number.`
	}

	return &cobra.Command{
		Use:   mode.String() + " [infile] [outfile]",
		Short: short,
		Long:  long + "\n\nBoth locations default to \"-\" (stdin and stdout).",
		Args:  cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, dst := "-", "-"
			if len(args) > 0 {
				src = args[0]
			}
			if len(args) > 1 {
				dst = args[1]
			}

			return withClient(cmd, func(ctx context.Context, client *pfc.Client, log *zap.Logger) error {
				report, err := client.Run(ctx, mode, src, dst)
				if err != nil {
					return err
				}
				log.Debug(mode.String()+" complete",
					zap.Int64("lines", report.Lines),
					zap.String("in", stream.FormatBytes(report.BytesIn)),
					zap.String("out", stream.FormatBytes(report.BytesOut)),
					zap.String("change", report.Change()),
					zap.Duration("duration", report.Duration),
				)
				return nil
			})
		},
	}
}
