package contract

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	gethCommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/rs/zerolog/log"
	"github.com/thirdweb-dev/watcher/internal/common"
	"github.com/thirdweb-dev/watcher/internal/metrics"
	"github.com/thirdweb-dev/watcher/internal/rpc"
)

const DEFAULT_RECEIPT_POLL_INTERVAL = 1000 * time.Millisecond

// Handle is a deployed contract. It is shared read-only between the filter
// builder and the call task.
type Handle struct {
	Address     gethCommon.Address
	ABI         abi.ABI
	TxHash      gethCommon.Hash
	BlockNumber uint64
}

type CallError struct {
	Method string
	TxHash gethCommon.Hash
	Err    error
}

func (e *CallError) Error() string {
	if e.TxHash != (gethCommon.Hash{}) {
		return fmt.Sprintf("call %s (tx %s) failed: %v", e.Method, e.TxHash.Hex(), e.Err)
	}
	return fmt.Sprintf("call %s failed: %v", e.Method, e.Err)
}

func (e *CallError) Unwrap() error {
	return e.Err
}

var ErrReverted = errors.New("execution reverted")

type Options struct {
	GasLimit     uint64
	GasPrice     *big.Int
	Value        *big.Int
	WaitReceipt  bool
	PollInterval time.Duration
}

type TransactResult struct {
	TxHash  gethCommon.Hash
	Receipt *types.Receipt
}

// Pack encodes a call to method. method is either a name from the handle's
// ABI or a full signature such as "hello(uint256)".
func (h *Handle) Pack(method string, args ...interface{}) ([]byte, error) {
	if strings.Contains(method, "(") {
		fn, err := common.ConstructFunctionABI(method)
		if err != nil {
			return nil, err
		}
		input, err := fn.Inputs.Pack(args...)
		if err != nil {
			return nil, fmt.Errorf("failed to pack arguments for %s: %w", fn.Sig, err)
		}
		return append(append([]byte{}, fn.ID...), input...), nil
	}
	return h.ABI.Pack(method, args...)
}

type Invoker struct {
	rpc rpc.IRPCClient
}

func NewInvoker(rpc rpc.IRPCClient) *Invoker {
	return &Invoker{rpc: rpc}
}

// Transact submits a state-changing call from the node-managed account from.
// It is never retried.
func (i *Invoker) Transact(ctx context.Context, h *Handle, from gethCommon.Address, method string, args []interface{}, opts Options) (*TransactResult, error) {
	data, err := h.Pack(method, args...)
	if err != nil {
		metrics.CallsFailed.Inc()
		return nil, &CallError{Method: method, Err: err}
	}

	to := h.Address
	txHash, err := i.rpc.SendTransaction(ctx, ethereum.CallMsg{
		From:     from,
		To:       &to,
		Gas:      opts.GasLimit,
		GasPrice: opts.GasPrice,
		Value:    opts.Value,
		Data:     data,
	})
	if err != nil {
		metrics.CallsFailed.Inc()
		return nil, &CallError{Method: method, Err: err}
	}
	log.Debug().Str("method", method).Str("tx", txHash.Hex()).Msg("Submitted contract call")

	result := &TransactResult{TxHash: txHash}
	if !opts.WaitReceipt {
		metrics.CallsSucceeded.Inc()
		return result, nil
	}

	receipt, err := WaitReceipt(ctx, i.rpc, txHash, opts.PollInterval)
	if err != nil {
		metrics.CallsFailed.Inc()
		return nil, &CallError{Method: method, TxHash: txHash, Err: err}
	}
	result.Receipt = receipt
	if receipt.Status == types.ReceiptStatusFailed {
		metrics.CallsFailed.Inc()
		return result, &CallError{Method: method, TxHash: txHash, Err: ErrReverted}
	}
	metrics.CallsSucceeded.Inc()
	return result, nil
}

// Call executes method read-only against the latest state and decodes the
// outputs declared in the ABI. Methods given by signature return the raw
// output as a single hexutil.Bytes value.
func (i *Invoker) Call(ctx context.Context, h *Handle, from gethCommon.Address, method string, args ...interface{}) ([]interface{}, error) {
	data, err := h.Pack(method, args...)
	if err != nil {
		return nil, &CallError{Method: method, Err: err}
	}

	to := h.Address
	output, err := i.rpc.CallContract(ctx, ethereum.CallMsg{From: from, To: &to, Data: data})
	if err != nil {
		return nil, &CallError{Method: method, Err: err}
	}

	if _, ok := h.ABI.Methods[method]; !ok {
		return []interface{}{hexutil.Bytes(output)}, nil
	}
	values, err := h.ABI.Unpack(method, output)
	if err != nil {
		return nil, &CallError{Method: method, Err: err}
	}
	return values, nil
}

// WaitReceipt polls for the receipt of txHash until it is mined. A zero
// interval falls back to DEFAULT_RECEIPT_POLL_INTERVAL.
func WaitReceipt(ctx context.Context, client rpc.IRPCClient, txHash gethCommon.Hash, interval time.Duration) (*types.Receipt, error) {
	if interval <= 0 {
		interval = DEFAULT_RECEIPT_POLL_INTERVAL
	}
	for {
		receipt, err := client.TransactionReceipt(ctx, txHash)
		if err == nil {
			return receipt, nil
		}
		if !errors.Is(err, ethereum.NotFound) {
			return nil, err
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(interval):
		}
	}
}
