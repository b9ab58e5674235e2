package orchestrator

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/thirdweb-dev/watcher/internal/metrics"
	"github.com/thirdweb-dev/watcher/test/mocks"
)

func TestChainTracker_UpdatesChainHead(t *testing.T) {
	mockRPC := mocks.NewMockIRPCClient(t)
	ctx, cancel := context.WithCancel(context.Background())

	mockRPC.EXPECT().BlockNumber(mock.Anything).Return(0, errors.New("connection refused")).Once()
	mockRPC.EXPECT().BlockNumber(mock.Anything).RunAndReturn(func(context.Context) (uint64, error) {
		cancel()
		return 4242, nil
	}).Once()

	done := make(chan struct{})
	go func() {
		NewChainTracker(mockRPC, WithChainTrackerInterval(1)).Start(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("chain tracker did not stop")
	}
	assert.Equal(t, float64(4242), testutil.ToFloat64(metrics.ChainHead))
}

func TestNewChainTracker_IgnoresNonPositiveInterval(t *testing.T) {
	ct := NewChainTracker(mocks.NewMockIRPCClient(t), WithChainTrackerInterval(0))
	assert.Equal(t, DEFAULT_CHAIN_TRACKER_POLL_INTERVAL, ct.triggerIntervalMs)
}
