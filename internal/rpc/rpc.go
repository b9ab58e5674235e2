package rpc

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum"
	gethCommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	gethRpc "github.com/ethereum/go-ethereum/rpc"
	"github.com/rs/zerolog/log"
	config "github.com/thirdweb-dev/watcher/configs"
)

// IRPCClient is the node surface the watcher depends on. Implementations must
// tolerate concurrent outstanding requests.
type IRPCClient interface {
	Accounts(ctx context.Context) ([]gethCommon.Address, error)
	SendTransaction(ctx context.Context, msg ethereum.CallMsg) (gethCommon.Hash, error)
	CallContract(ctx context.Context, msg ethereum.CallMsg) ([]byte, error)
	NewFilter(ctx context.Context, query ethereum.FilterQuery) (string, error)
	GetFilterChanges(ctx context.Context, filterID string) ([]types.Log, error)
	TransactionReceipt(ctx context.Context, txHash gethCommon.Hash) (*types.Receipt, error)
	BlockNumber(ctx context.Context) (uint64, error)
	GetChainID() *big.Int
	GetURL() string
	Close()
}

type Client struct {
	RPCClient *gethRpc.Client
	EthClient *ethclient.Client
	url       string
	chainID   *big.Int
}

func Initialize() (IRPCClient, error) {
	rpcUrl := config.Cfg.RPC.URL
	if rpcUrl == "" {
		return nil, fmt.Errorf("RPC_URL environment variable is not set")
	}
	return InitializeWithUrl(context.Background(), rpcUrl)
}

func InitializeWithUrl(ctx context.Context, url string) (IRPCClient, error) {
	log.Debug().Str("url", url).Msg("Initializing RPC")
	rpcClient, dialErr := gethRpc.DialContext(ctx, url)
	if dialErr != nil {
		return nil, dialErr
	}

	return NewClient(ctx, rpcClient, url)
}

// NewClient wraps an established connection and resolves the chain ID.
func NewClient(ctx context.Context, rpcClient *gethRpc.Client, url string) (IRPCClient, error) {
	rpc := &Client{
		RPCClient: rpcClient,
		EthClient: ethclient.NewClient(rpcClient),
		url:       url,
	}

	if err := rpc.setChainID(ctx); err != nil {
		rpc.Close()
		return nil, err
	}
	return IRPCClient(rpc), nil
}

func (rpc *Client) GetChainID() *big.Int {
	return rpc.chainID
}

func (rpc *Client) GetURL() string {
	return rpc.url
}

func (rpc *Client) Close() {
	rpc.EthClient.Close()
}

func (rpc *Client) setChainID(ctx context.Context) error {
	chainID, err := rpc.EthClient.ChainID(ctx)
	if err != nil {
		return fmt.Errorf("failed to get chain ID: %w", err)
	}
	rpc.chainID = chainID
	config.Cfg.RPC.ChainID = chainID.String()
	return nil
}

func (rpc *Client) Accounts(ctx context.Context) ([]gethCommon.Address, error) {
	var accounts []gethCommon.Address
	if err := rpc.RPCClient.CallContext(ctx, &accounts, "eth_accounts"); err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	return accounts, nil
}

func (rpc *Client) SendTransaction(ctx context.Context, msg ethereum.CallMsg) (gethCommon.Hash, error) {
	var txHash gethCommon.Hash
	if err := rpc.RPCClient.CallContext(ctx, &txHash, "eth_sendTransaction", TransactionParams(msg)); err != nil {
		return gethCommon.Hash{}, fmt.Errorf("failed to send transaction: %w", err)
	}
	return txHash, nil
}

func (rpc *Client) CallContract(ctx context.Context, msg ethereum.CallMsg) ([]byte, error) {
	output, err := rpc.EthClient.CallContract(ctx, msg, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to call contract: %w", err)
	}
	return output, nil
}

func (rpc *Client) NewFilter(ctx context.Context, query ethereum.FilterQuery) (string, error) {
	var filterID string
	if err := rpc.RPCClient.CallContext(ctx, &filterID, "eth_newFilter", FilterParams(query)); err != nil {
		return "", fmt.Errorf("failed to install filter: %w", err)
	}
	return filterID, nil
}

func (rpc *Client) GetFilterChanges(ctx context.Context, filterID string) ([]types.Log, error) {
	var logs []types.Log
	if err := rpc.RPCClient.CallContext(ctx, &logs, "eth_getFilterChanges", filterID); err != nil {
		return nil, fmt.Errorf("failed to get filter changes for %s: %w", filterID, err)
	}
	return logs, nil
}

// TransactionReceipt returns ethereum.NotFound while the transaction is pending.
func (rpc *Client) TransactionReceipt(ctx context.Context, txHash gethCommon.Hash) (*types.Receipt, error) {
	return rpc.EthClient.TransactionReceipt(ctx, txHash)
}

func (rpc *Client) BlockNumber(ctx context.Context) (uint64, error) {
	blockNumber, err := rpc.EthClient.BlockNumber(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to get latest block number: %w", err)
	}
	return blockNumber, nil
}
