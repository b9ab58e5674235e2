package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi"
	gethCommon "github.com/ethereum/go-ethereum/common"
	"github.com/rs/zerolog/log"
	config "github.com/thirdweb-dev/watcher/configs"
	"github.com/thirdweb-dev/watcher/internal/common"
	"github.com/thirdweb-dev/watcher/internal/contract"
	"github.com/thirdweb-dev/watcher/internal/deployer"
	"github.com/thirdweb-dev/watcher/internal/filter"
	"github.com/thirdweb-dev/watcher/internal/rpc"
	"github.com/thirdweb-dev/watcher/internal/stream"
)

// Orchestrator drives a watch session: deploy the contract, install a filter
// for the watched event on it, then poll the filter while invoking the
// configured method.
type Orchestrator struct {
	rpc             rpc.IRPCClient
	artifact        *deployer.Artifact
	constructorArgs []interface{}
	methodArgs      []interface{}
	signature       gethCommon.Hash
	eventABI        *abi.Event
	sender          string
	method          string
	deployOptions   deployer.Options
	callOptions     contract.Options
	pollInterval    time.Duration
	handlers        []stream.LogHandler
	mu              sync.Mutex
	cancel          context.CancelFunc
}

type OrchestratorOption func(*Orchestrator)

func WithArtifact(artifact *deployer.Artifact) OrchestratorOption {
	return func(o *Orchestrator) {
		o.artifact = artifact
	}
}

func WithConstructorArgs(args ...interface{}) OrchestratorOption {
	return func(o *Orchestrator) {
		o.constructorArgs = args
	}
}

func WithMethodArgs(args ...interface{}) OrchestratorOption {
	return func(o *Orchestrator) {
		o.methodArgs = args
	}
}

// WithLogHandler adds a consumer that sees every delivered log after it was
// logged. A handler error ends the stream.
func WithLogHandler(handler stream.LogHandler) OrchestratorOption {
	return func(o *Orchestrator) {
		o.handlers = append(o.handlers, handler)
	}
}

func NewOrchestrator(rpc rpc.IRPCClient, opts ...OrchestratorOption) (*Orchestrator, error) {
	signature, err := watchedSignature()
	if err != nil {
		return nil, err
	}

	o := &Orchestrator{
		rpc:       rpc,
		signature: signature,
		sender:    config.Cfg.Contract.Sender,
		method:    config.Cfg.Contract.Method,
		deployOptions: deployer.Options{
			GasLimit:      config.Cfg.Deploy.GasLimit,
			Confirmations: config.Cfg.Deploy.Confirmations,
			PollInterval:  time.Duration(config.Cfg.Deploy.PollInterval) * time.Millisecond,
			Timeout:       time.Duration(config.Cfg.Deploy.Timeout) * time.Millisecond,
		},
		callOptions: contract.Options{
			GasLimit:     config.Cfg.Call.GasLimit,
			WaitReceipt:  config.Cfg.Call.WaitReceipt,
			PollInterval: time.Duration(config.Cfg.Deploy.PollInterval) * time.Millisecond,
		},
		pollInterval: time.Duration(config.Cfg.Watcher.PollInterval) * time.Millisecond,
	}
	if config.Cfg.Watcher.Event != "" {
		if event, err := common.ConstructEventABI(config.Cfg.Watcher.Event); err == nil && event.ID == signature {
			o.eventABI = event
		}
	}
	for _, opt := range opts {
		opt(o)
	}
	return o, nil
}

// watchedSignature prefers the raw topic hash and falls back to hashing the
// textual event declaration.
func watchedSignature() (gethCommon.Hash, error) {
	if config.Cfg.Watcher.Signature != "" {
		return filter.ParseSignature(config.Cfg.Watcher.Signature)
	}
	if config.Cfg.Watcher.Event != "" {
		return filter.EventSignatureFromText(config.Cfg.Watcher.Event)
	}
	return gethCommon.Hash{}, fmt.Errorf("%w: neither watcher.signature nor watcher.event is configured", filter.ErrInvalidSignature)
}

// Start runs the full session and returns once both the stream and the call
// are terminal, or on SIGINT/SIGTERM. Cancellation is not an error.
func (o *Orchestrator) Start(parent context.Context) error {
	ctx, stop := o.withShutdown(parent)
	defer stop()

	handle, sender, err := o.Deploy(ctx)
	if err != nil {
		return err
	}

	adapter := stream.NewAdapter(o.rpc)
	filterHandle, err := adapter.Install(ctx, filter.BuildWithHash(handle.Address, o.signature))
	if err != nil {
		return err
	}

	if config.Cfg.Metrics.Enabled {
		go NewChainTracker(o.rpc).Start(ctx)
	}

	invoker := contract.NewInvoker(o.rpc)
	session := Compose(ctx,
		Task{Name: TaskStream, Run: func(ctx context.Context) error {
			return adapter.Poll(ctx, filterHandle, o.pollInterval, o.deliver)
		}},
		Task{Name: TaskCall, Run: func(ctx context.Context) error {
			result, err := invoker.Transact(ctx, handle, sender, o.method, o.methodArgs, o.callOptions)
			if err != nil {
				return err
			}
			event := log.Info().Str("method", o.method).Str("tx", result.TxHash.Hex())
			if result.Receipt != nil {
				event = event.Uint64("block", result.Receipt.BlockNumber.Uint64()).Uint64("gas_used", result.Receipt.GasUsed)
			}
			event.Msg("Contract call succeeded")
			return nil
		}},
	)
	return collect(session)
}

// Deploy resolves the sender account and deploys the configured artifact.
func (o *Orchestrator) Deploy(ctx context.Context) (*contract.Handle, gethCommon.Address, error) {
	if o.artifact == nil {
		artifact, err := deployer.LoadArtifact(config.Cfg.Contract.Bin, config.Cfg.Contract.ABI)
		if err != nil {
			return nil, gethCommon.Address{}, err
		}
		o.artifact = artifact
	}
	if o.eventABI == nil {
		if event, err := o.artifact.ABI.EventByID(o.signature); err == nil {
			o.eventABI = event
		}
	}

	sender, err := deployer.ResolveSender(ctx, o.rpc, o.sender)
	if err != nil {
		return nil, gethCommon.Address{}, &deployer.DeploymentError{State: deployer.Unsubmitted, Err: err}
	}
	log.Info().Str("sender", sender.Hex()).Msg("Deploying contract")

	handle, err := deployer.NewDeployer(o.rpc).Deploy(ctx, o.artifact, o.constructorArgs, sender, o.deployOptions)
	if err != nil {
		return nil, gethCommon.Address{}, err
	}
	return handle, sender, nil
}

// Watch streams the watched event of an already deployed contract. No
// deployment or call takes place.
func (o *Orchestrator) Watch(parent context.Context, address gethCommon.Address) error {
	ctx, stop := o.withShutdown(parent)
	defer stop()

	adapter := stream.NewAdapter(o.rpc)
	filterHandle, err := adapter.Install(ctx, filter.BuildWithHash(address, o.signature))
	if err != nil {
		return err
	}

	if config.Cfg.Metrics.Enabled {
		go NewChainTracker(o.rpc).Start(ctx)
	}

	session := Compose(ctx, Task{Name: TaskStream, Run: func(ctx context.Context) error {
		return adapter.Poll(ctx, filterHandle, o.pollInterval, o.deliver)
	}})
	return collect(session)
}

func (o *Orchestrator) Shutdown() {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.cancel != nil {
		o.cancel()
	}
}

func (o *Orchestrator) withShutdown(parent context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)
	o.mu.Lock()
	o.cancel = cancel
	o.mu.Unlock()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	go func() {
		select {
		case sig := <-sigChan:
			log.Info().Msgf("Received signal %v, initiating graceful shutdown", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	return ctx, func() {
		signal.Stop(sigChan)
		cancel()
	}
}

func (o *Orchestrator) deliver(entry common.Log) error {
	event := log.Info().
		Uint64("block", entry.BlockNumber).
		Str("tx", entry.TransactionHash).
		Uint64("log_index", entry.LogIndex).
		Str("address", entry.Address).
		Strs("topics", entry.Topics).
		Str("data", entry.Data)
	if o.eventABI != nil {
		decoded := entry.Decode(o.eventABI)
		event = event.Str("event", decoded.Decoded.Signature).
			Interface("indexed_params", decoded.Decoded.IndexedParams).
			Interface("params", decoded.Decoded.NonIndexedParams)
	}
	event.Msg("Received log")
	for _, handler := range o.handlers {
		if err := handler(entry); err != nil {
			return err
		}
	}
	return nil
}

// collect logs each task outcome tagged with the task name and joins the
// failures. Cancelled tasks are not failures.
func collect(session *Session) error {
	var errs []error
	for result := range session.Results() {
		switch {
		case result.Err == nil:
			log.Info().Str("task", string(result.Task)).Msg("Task completed")
		case errors.Is(result.Err, context.Canceled):
			log.Info().Str("task", string(result.Task)).Msg("Task cancelled")
		default:
			log.Error().Err(result.Err).Str("task", string(result.Task)).Msg("Task failed")
			errs = append(errs, fmt.Errorf("%s task: %w", result.Task, result.Err))
		}
	}
	return errors.Join(errs...)
}
