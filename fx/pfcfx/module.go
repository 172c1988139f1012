// Package pfcfx provides an fx module for a pfc client configured from
// internal/config.
package pfcfx

import (
	"context"
	"os"

	promclient "github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/discochess/pfc"
	"github.com/discochess/pfc/internal/config"
	"github.com/discochess/pfc/internal/stats"
	"github.com/discochess/pfc/internal/stats/logger"
	"github.com/discochess/pfc/internal/stats/prometheus"
	"github.com/discochess/pfc/internal/store/router"
	"github.com/discochess/pfc/internal/store/s3store"
	"github.com/discochess/pfc/internal/stream"
)

// Module provides a *pfc.Client routing locations to stdio, disk, S3, GCS
// and HTTP.
// Requires a *zap.Logger and a *config.Config to be provided.
var Module = fx.Module("pfc",
	fx.Provide(
		newStatsCollector,
		newClient,
	),
)

// StatsParams holds dependencies for creating the stats collector.
type StatsParams struct {
	fx.In

	Config    *config.Config
	Logger    *zap.Logger
	Lifecycle fx.Lifecycle
}

// newStatsCollector returns a Prometheus collector when a metrics file is
// configured, flushing it to the file on stop. Otherwise stats are logged
// at debug level.
func newStatsCollector(p StatsParams) stats.Collector {
	if p.Config.MetricsFile == "" {
		return logger.New(p.Logger.Named("pfc.stats"))
	}

	c := prometheus.New(promclient.NewRegistry())
	p.Lifecycle.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return c.WriteTextfile(p.Config.MetricsFile)
		},
	})
	return c
}

// Params holds dependencies for creating the client.
type Params struct {
	fx.In

	Config    *config.Config
	Logger    *zap.Logger
	Collector stats.Collector
	Lifecycle fx.Lifecycle
}

// Result holds the provided client.
type Result struct {
	fx.Out

	Client *pfc.Client
}

func newClient(p Params) (Result, error) {
	var s3Opts []s3store.Option
	switch {
	case p.Config.S3.Endpoint != "":
		s3Opts = append(s3Opts, s3store.WithEndpoint(p.Config.S3.Endpoint, p.Config.S3.Region))
	case p.Config.S3.Region != "":
		s3Opts = append(s3Opts, s3store.WithRegion(p.Config.S3.Region))
	}

	st, err := router.New(router.WithS3Options(s3Opts...))
	if err != nil {
		return Result{}, err
	}

	opts := []pfc.Option{
		pfc.WithStore(st),
		pfc.WithStats(p.Collector),
		pfc.WithLogger(p.Logger.Named("pfc")),
		pfc.WithContainer(p.Config.Format),
		pfc.WithCharset(p.Config.Encoding),
		pfc.WithCacheSize(p.Config.CacheSize),
	}
	if p.Config.Progress {
		opts = append(opts, pfc.WithProgress(stream.ProgressPrinter(os.Stderr, "pfc"), 0))
	}

	client, err := pfc.New(opts...)
	if err != nil {
		st.Close()
		return Result{}, err
	}

	p.Lifecycle.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return client.Close()
		},
	})

	return Result{Client: client}, nil
}
