package orchestrator

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/thirdweb-dev/watcher/internal/metrics"
	"github.com/thirdweb-dev/watcher/internal/rpc"
)

const DEFAULT_CHAIN_TRACKER_POLL_INTERVAL = 5000

type ChainTracker struct {
	rpc               rpc.IRPCClient
	triggerIntervalMs int
}

type ChainTrackerOption func(*ChainTracker)

func WithChainTrackerInterval(intervalMs int) ChainTrackerOption {
	return func(ct *ChainTracker) {
		if intervalMs > 0 {
			ct.triggerIntervalMs = intervalMs
		}
	}
}

func NewChainTracker(rpc rpc.IRPCClient, opts ...ChainTrackerOption) *ChainTracker {
	ct := &ChainTracker{
		rpc:               rpc,
		triggerIntervalMs: DEFAULT_CHAIN_TRACKER_POLL_INTERVAL,
	}
	for _, opt := range opts {
		opt(ct)
	}
	return ct
}

// Start keeps the chain head gauge current until ctx is done. Errors are
// logged and never end the session.
func (ct *ChainTracker) Start(ctx context.Context) {
	interval := time.Duration(ct.triggerIntervalMs) * time.Millisecond
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	log.Debug().Msgf("Chain tracker running")
	for {
		ct.track(ctx)
		select {
		case <-ctx.Done():
			log.Debug().Msg("Chain tracker shutting down")
			return
		case <-ticker.C:
		}
	}
}

func (ct *ChainTracker) track(ctx context.Context) {
	latestBlockNumber, err := ct.rpc.BlockNumber(ctx)
	if err != nil {
		if ctx.Err() == nil {
			log.Error().Err(err).Msg("Error getting latest block number")
		}
		return
	}
	metrics.ChainHead.Set(float64(latestBlockNumber))
}
