package main

import (
	"context"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/discochess/pfc"
	"github.com/discochess/pfc/fx/pfcfx"
	"github.com/discochess/pfc/internal/config"
	"github.com/discochess/pfc/internal/container"
	"github.com/discochess/pfc/internal/logging"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "pfc",
		Short: "Prefix compression for sorted word lists",
		Long: `pfc front-codes sorted word lists: each word is written as one marker
character, giving how many leading characters it shares with the previous
word, followed by the rest of the word.

Locations are local paths, "-" for stdin/stdout, s3://bucket/key,
gs://bucket/key, or http(s):// URLs (read only).

Examples:
  # Compress a word list
  pfc compress words.txt words.pfc

  # Expand it again, as a filter
  pfc expand < words.pfc > words.txt

  # Compress into zstd on S3
  pfc compress words.txt s3://lists/en/words.pfc.zst

  # Check that a list is sorted and matches its compressed form
  pfc verify words.txt words.pfc`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "config file (yaml, toml or json)")
	flags.BoolP("verbose", "v", false, "enable verbose output")
	flags.String("format", container.Auto, "container format: auto, "+strings.Join(container.Names(), ", "))
	flags.String("encoding", "utf-8", "text encoding of word lists and records")
	flags.String("log-format", logging.FormatConsole, "log format: console or json")
	flags.String("metrics-file", "", "write Prometheus metrics to this textfile on exit")
	flags.Bool("progress", false, "print progress to stderr")
	flags.Int("cache-size", 0, "number of lists lookup keeps in memory")
	flags.String("s3-region", "", "AWS region for s3:// locations")
	flags.String("s3-endpoint", "", "custom endpoint for S3-compatible services")

	rootCmd.AddCommand(
		newCodeCmd(pfc.ModeCompress),
		newCodeCmd(pfc.ModeExpand),
		newVerifyCmd(),
		newStatsCmd(),
		newLookupCmd(),
	)
	return rootCmd
}

// runFunc is the body of a command that needs a client.
type runFunc func(ctx context.Context, client *pfc.Client, log *zap.Logger) error

// withClient loads the configuration, starts the pfc fx module and runs fn
// with its client. Stopping the module closes the client and writes the
// metrics file.
func withClient(cmd *cobra.Command, fn runFunc) error {
	configFile, err := cmd.Flags().GetString("config")
	if err != nil {
		return err
	}
	cfg, err := config.Load(cmd.Flags(), configFile)
	if err != nil {
		return err
	}
	log, err := logging.New(cfg.LogLevel(), cfg.LogFormat)
	if err != nil {
		return err
	}
	defer log.Sync()

	var client *pfc.Client
	app := fx.New(
		fx.NopLogger,
		fx.Supply(log, cfg),
		pfcfx.Module,
		fx.Populate(&client),
	)
	if err := app.Err(); err != nil {
		return err
	}

	ctx := cmd.Context()
	if err := app.Start(ctx); err != nil {
		return err
	}
	runErr := fn(ctx, client, log)
	stopErr := app.Stop(context.Background())
	if runErr != nil {
		return runErr
	}
	return stopErr
}
