package stream

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/thirdweb-dev/watcher/internal/common"
	"github.com/thirdweb-dev/watcher/internal/filter"
	"github.com/thirdweb-dev/watcher/internal/metrics"
	"github.com/thirdweb-dev/watcher/internal/rpc"
)

// FilterHandle identifies a filter installed on the node. It stays valid for
// the lifetime of the watch session; it is never uninstalled explicitly.
type FilterHandle struct {
	ID     string
	Filter filter.Filter
}

type FilterInstallError struct {
	Filter filter.Filter
	Err    error
}

func (e *FilterInstallError) Error() string {
	return fmt.Sprintf("failed to install filter (%s): %v", e.Filter, e.Err)
}

func (e *FilterInstallError) Unwrap() error {
	return e.Err
}

type StreamError struct {
	FilterID string
	Err      error
}

func (e *StreamError) Error() string {
	return fmt.Sprintf("log stream for filter %s failed: %v", e.FilterID, e.Err)
}

func (e *StreamError) Unwrap() error {
	return e.Err
}

// LogHandler is invoked once per delivered log, in node order. Returning an
// error ends the stream.
type LogHandler func(common.Log) error

type Adapter struct {
	rpc     rpc.IRPCClient
	chainId *big.Int
}

type AdapterOption func(*Adapter)

func WithChainID(chainId *big.Int) AdapterOption {
	return func(a *Adapter) {
		a.chainId = chainId
	}
}

func NewAdapter(rpc rpc.IRPCClient, opts ...AdapterOption) *Adapter {
	adapter := &Adapter{rpc: rpc}
	for _, opt := range opts {
		opt(adapter)
	}
	if adapter.chainId == nil {
		adapter.chainId = rpc.GetChainID()
	}
	return adapter
}

func (a *Adapter) Install(ctx context.Context, f filter.Filter) (FilterHandle, error) {
	filterID, err := a.rpc.NewFilter(ctx, f.Query())
	if err != nil {
		return FilterHandle{}, &FilterInstallError{Filter: f, Err: err}
	}
	metrics.FilterInstalls.Inc()
	log.Debug().Str("filter_id", filterID).Msgf("Installed log filter %s", f)
	return FilterHandle{ID: filterID, Filter: f}, nil
}

// Poll queries the node for new entries every interval and hands each one to
// fn. An interval of zero polls back to back without any delay. Poll only
// returns on cancellation, a transport failure or a handler error.
func (a *Adapter) Poll(ctx context.Context, handle FilterHandle, interval time.Duration, fn LogHandler) error {
	log.Debug().Str("filter_id", handle.ID).Dur("interval", interval).Msg("Log stream running")

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		logs, err := a.rpc.GetFilterChanges(ctx, handle.ID)
		metrics.FilterPolls.Inc()
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			metrics.StreamErrors.Inc()
			return &StreamError{FilterID: handle.ID, Err: err}
		}

		for _, rawLog := range logs {
			entry := common.SerializeLog(a.chainId, rawLog)
			if err := fn(entry); err != nil {
				if ctx.Err() != nil && errors.Is(err, ctx.Err()) {
					return ctx.Err()
				}
				metrics.StreamErrors.Inc()
				return &StreamError{FilterID: handle.ID, Err: fmt.Errorf("log handler: %w", err)}
			}
			metrics.LogsDelivered.Inc()
			metrics.LastDeliveredBlock.Set(float64(entry.BlockNumber))
		}

		if interval <= 0 {
			continue
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(interval):
		}
	}
}

// Watch installs f and polls it until the stream ends.
func (a *Adapter) Watch(ctx context.Context, f filter.Filter, interval time.Duration, fn LogHandler) error {
	handle, err := a.Install(ctx, f)
	if err != nil {
		return err
	}
	return a.Poll(ctx, handle, interval, fn)
}

// Stream exposes Poll as a channel of logs. The log channel is closed when the
// stream ends and the terminal error, if any, is sent on the error channel.
func (a *Adapter) Stream(ctx context.Context, handle FilterHandle, interval time.Duration) (<-chan common.Log, <-chan error) {
	logs := make(chan common.Log)
	errs := make(chan error, 1)

	go func() {
		defer close(errs)
		defer close(logs)
		err := a.Poll(ctx, handle, interval, func(entry common.Log) error {
			select {
			case logs <- entry:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		})
		errs <- err
	}()

	return logs, errs
}
