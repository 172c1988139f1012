// Package memorypfcfx provides an fx module for an in-memory pfc client.
// Useful for testing.
package memorypfcfx

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/discochess/pfc"
	"github.com/discochess/pfc/internal/stats"
	"github.com/discochess/pfc/internal/stats/logger"
	"github.com/discochess/pfc/internal/store/memstore"
)

// Module provides an in-memory pfc client and its *memstore.Store.
// Requires a *zap.Logger to be provided.
var Module = fx.Module("memorypfc",
	fx.Provide(
		newStatsCollector,
		newMemStore,
		newClient,
	),
)

func newStatsCollector(log *zap.Logger) stats.Collector {
	return logger.New(log.Named("pfc.stats"))
}

func newMemStore() *memstore.Store {
	return memstore.New()
}

// Params holds dependencies for creating the client.
type Params struct {
	fx.In

	Logger    *zap.Logger
	Collector stats.Collector
	Store     *memstore.Store
	Lifecycle fx.Lifecycle
}

// Result holds the provided client.
type Result struct {
	fx.Out

	Client *pfc.Client
}

func newClient(p Params) (Result, error) {
	client, err := pfc.New(
		pfc.WithStore(p.Store),
		pfc.WithStats(p.Collector),
		pfc.WithLogger(p.Logger.Named("pfc")),
	)
	if err != nil {
		return Result{}, err
	}

	p.Lifecycle.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return client.Close()
		},
	})

	return Result{Client: client}, nil
}
