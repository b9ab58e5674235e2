package deployer

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum"
	gethCommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/rs/zerolog/log"
	"github.com/thirdweb-dev/watcher/internal/contract"
	"github.com/thirdweb-dev/watcher/internal/metrics"
	"github.com/thirdweb-dev/watcher/internal/rpc"
)

const DEFAULT_POLL_INTERVAL = 1000 * time.Millisecond

type State int

const (
	Unsubmitted State = iota
	Submitted
	ConfirmationsPending
	Confirmed
	Ready
	Failed
)

func (s State) String() string {
	switch s {
	case Unsubmitted:
		return "unsubmitted"
	case Submitted:
		return "submitted"
	case ConfirmationsPending:
		return "confirmations_pending"
	case Confirmed:
		return "confirmed"
	case Ready:
		return "ready"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

var (
	ErrInvalidSender     = errors.New("invalid sender account")
	ErrReverted          = errors.New("deployment reverted")
	ErrNoContractAddress = errors.New("receipt carries no contract address")
	ErrAlreadySubmitted  = errors.New("deployment already submitted")
)

// DeploymentError carries the state the deployment was in when it failed.
// TxHash is set once the transaction was accepted by the node; a failure
// after that point is ambiguous and the caller decides what to do with it.
type DeploymentError struct {
	State  State
	TxHash gethCommon.Hash
	Err    error
}

func (e *DeploymentError) Error() string {
	if e.TxHash != (gethCommon.Hash{}) {
		return fmt.Sprintf("deployment failed in state %s (tx %s): %v", e.State, e.TxHash.Hex(), e.Err)
	}
	return fmt.Sprintf("deployment failed in state %s: %v", e.State, e.Err)
}

func (e *DeploymentError) Unwrap() error {
	return e.Err
}

// Options are consumed once per deployment. Confirmations of zero accepts the
// contract on first inclusion. A zero Timeout waits indefinitely.
type Options struct {
	GasLimit      uint64
	Confirmations uint64
	PollInterval  time.Duration
	Timeout       time.Duration
}

type StateHook func(from State, to State)

type Deployer struct {
	rpc           rpc.IRPCClient
	mu            sync.RWMutex
	state         State
	onStateChange StateHook
}

type DeployerOption func(*Deployer)

func WithStateHook(hook StateHook) DeployerOption {
	return func(d *Deployer) {
		d.onStateChange = hook
	}
}

// NewDeployer returns a deployer for a single deployment.
func NewDeployer(rpc rpc.IRPCClient, opts ...DeployerOption) *Deployer {
	d := &Deployer{rpc: rpc, state: Unsubmitted}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func (d *Deployer) State() State {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.state
}

func (d *Deployer) transition(to State) {
	d.mu.Lock()
	from := d.state
	d.state = to
	d.mu.Unlock()

	metrics.DeploymentState.Set(float64(to))
	log.Debug().Str("from", from.String()).Str("to", to.String()).Msg("Deployment state changed")
	if d.onStateChange != nil {
		d.onStateChange(from, to)
	}
}

func (d *Deployer) fail(txHash gethCommon.Hash, err error) error {
	state := d.State()
	d.transition(Failed)
	metrics.DeploymentsFailed.Inc()
	return &DeploymentError{State: state, TxHash: txHash, Err: err}
}

// Deploy submits artifact with the packed constructor arguments from the
// node-managed sender account and blocks until the contract is ready. The
// submission is never retried.
func (d *Deployer) Deploy(ctx context.Context, artifact *Artifact, constructorArgs []interface{}, sender gethCommon.Address, opts Options) (*contract.Handle, error) {
	if d.State() != Unsubmitted {
		return nil, &DeploymentError{State: d.State(), Err: ErrAlreadySubmitted}
	}

	if err := d.checkSender(ctx, sender); err != nil {
		return nil, &DeploymentError{State: Unsubmitted, Err: err}
	}

	data, err := artifact.DeployData(constructorArgs...)
	if err != nil {
		return nil, &DeploymentError{State: Unsubmitted, Err: err}
	}

	d.transition(Submitted)
	txHash, err := d.rpc.SendTransaction(ctx, ethereum.CallMsg{
		From: sender,
		Gas:  opts.GasLimit,
		Data: data,
	})
	if err != nil {
		return nil, d.fail(gethCommon.Hash{}, err)
	}
	metrics.DeploymentsSubmitted.Inc()
	log.Info().Str("tx", txHash.Hex()).Str("sender", sender.Hex()).Msg("Submitted deployment transaction")

	waitCtx := ctx
	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		waitCtx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	d.transition(ConfirmationsPending)
	receipt, err := d.awaitConfirmations(waitCtx, txHash, opts)
	if err != nil {
		return nil, d.fail(txHash, err)
	}
	if receipt.Status == types.ReceiptStatusFailed {
		return nil, d.fail(txHash, ErrReverted)
	}
	if receipt.ContractAddress == (gethCommon.Address{}) {
		return nil, d.fail(txHash, ErrNoContractAddress)
	}
	d.transition(Confirmed)

	handle := &contract.Handle{
		Address:     receipt.ContractAddress,
		ABI:         artifact.ABI,
		TxHash:      txHash,
		BlockNumber: receipt.BlockNumber.Uint64(),
	}
	d.transition(Ready)
	log.Info().Str("address", handle.Address.Hex()).Uint64("block", handle.BlockNumber).Msg("Contract deployed")
	return handle, nil
}

// awaitConfirmations polls until the transaction is included and, for
// Confirmations k > 0, until k polls have each observed it included under a
// new chain head. A reverted receipt is returned as soon as it is seen.
func (d *Deployer) awaitConfirmations(ctx context.Context, txHash gethCommon.Hash, opts Options) (*types.Receipt, error) {
	interval := opts.PollInterval
	if interval <= 0 {
		interval = DEFAULT_POLL_INTERVAL
	}

	var included *types.Receipt
	var head uint64
	var confirmations uint64

	for {
		receipt, err := d.rpc.TransactionReceipt(ctx, txHash)
		switch {
		case errors.Is(err, ethereum.NotFound):
			if included != nil {
				log.Warn().Str("tx", txHash.Hex()).Msg("Deployment transaction no longer included, waiting for re-inclusion")
				included, confirmations = nil, 0
			}
		case err != nil:
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			return nil, fmt.Errorf("failed to fetch receipt: %w", err)
		default:
			if receipt.Status == types.ReceiptStatusFailed || opts.Confirmations == 0 {
				return receipt, nil
			}
			if included == nil || included.BlockHash != receipt.BlockHash {
				included, confirmations = receipt, 0
				head = receipt.BlockNumber.Uint64()
			}

			latest, err := d.rpc.BlockNumber(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return nil, ctx.Err()
				}
				return nil, fmt.Errorf("failed to fetch block number: %w", err)
			}
			if latest > head {
				head = latest
				confirmations++
			}
			depth := head - included.BlockNumber.Uint64()
			metrics.DeploymentConfirmations.Set(float64(confirmations))
			log.Debug().Uint64("confirmations", confirmations).Uint64("depth", depth).Msgf("Waiting for %d confirmations", opts.Confirmations)
			if confirmations >= opts.Confirmations && depth >= opts.Confirmations {
				return included, nil
			}
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(interval):
		}
	}
}

func (d *Deployer) checkSender(ctx context.Context, sender gethCommon.Address) error {
	if sender == (gethCommon.Address{}) {
		return ErrInvalidSender
	}
	accounts, err := d.rpc.Accounts(ctx)
	if err != nil {
		return err
	}
	for _, account := range accounts {
		if account == sender {
			return nil
		}
	}
	return fmt.Errorf("%w: %s is not managed by the node", ErrInvalidSender, sender.Hex())
}

// ResolveSender maps sender to one of the node-managed accounts. sender is
// either an account index or a hex address; an empty string picks the first
// account.
func ResolveSender(ctx context.Context, client rpc.IRPCClient, sender string) (gethCommon.Address, error) {
	accounts, err := client.Accounts(ctx)
	if err != nil {
		return gethCommon.Address{}, err
	}
	if len(accounts) == 0 {
		return gethCommon.Address{}, fmt.Errorf("%w: node manages no accounts", ErrInvalidSender)
	}

	sender = strings.TrimSpace(sender)
	if sender == "" {
		return accounts[0], nil
	}
	if gethCommon.IsHexAddress(sender) {
		address := gethCommon.HexToAddress(sender)
		for _, account := range accounts {
			if account == address {
				return account, nil
			}
		}
		return gethCommon.Address{}, fmt.Errorf("%w: %s is not managed by the node", ErrInvalidSender, address.Hex())
	}
	index, err := strconv.Atoi(sender)
	if err != nil || index < 0 || index >= len(accounts) {
		return gethCommon.Address{}, fmt.Errorf("%w: %q is neither an address nor an account index below %d", ErrInvalidSender, sender, len(accounts))
	}
	return accounts[index], nil
}
