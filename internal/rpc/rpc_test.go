package rpc

import (
	"context"
	"errors"
	"math/big"
	"strings"
	"sync"
	"testing"

	"github.com/ethereum/go-ethereum"
	gethCommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	gethRpc "github.com/ethereum/go-ethereum/rpc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	account         = gethCommon.HexToAddress("0xf39fd6e51aad88f6f4ce6ab8827279cfffb92266")
	contractAddress = gethCommon.HexToAddress("0x5fbdb2315678afecb367f032d93f642f64180aa3")
	helloTopic      = gethCommon.HexToHash("0xd282f389399565f3671145f5916e51652b60eee8e5c759293a2f5771b8ddfd2e")
	minedTx         = gethCommon.HexToHash("0x01")
)

// fakeNode serves the eth namespace methods the client uses.
type fakeNode struct {
	mu           sync.Mutex
	transactions []map[string]interface{}
	filters      []map[string]interface{}
	polls        int
}

func (n *fakeNode) ChainId() *hexutil.Big {
	return (*hexutil.Big)(big.NewInt(1337))
}

func (n *fakeNode) Accounts() []gethCommon.Address {
	return []gethCommon.Address{account}
}

func (n *fakeNode) SendTransaction(args map[string]interface{}) (gethCommon.Hash, error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if from, _ := args["from"].(string); !strings.EqualFold(from, account.Hex()) {
		return gethCommon.Hash{}, errors.New("unknown account")
	}
	n.transactions = append(n.transactions, args)
	return minedTx, nil
}

func (n *fakeNode) Call(args map[string]interface{}, block string) (hexutil.Bytes, error) {
	if block != "latest" {
		return nil, errors.New("unexpected block tag")
	}
	return hexutil.Bytes{0x2a}, nil
}

func (n *fakeNode) NewFilter(args map[string]interface{}) string {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.filters = append(n.filters, args)
	return "0x1"
}

func (n *fakeNode) GetFilterChanges(id string) ([]*types.Log, error) {
	if id != "0x1" {
		return nil, errors.New("filter not found")
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	n.polls++
	if n.polls > 1 {
		return []*types.Log{}, nil
	}
	return []*types.Log{{
		Address:     contractAddress,
		Topics:      []gethCommon.Hash{helloTopic},
		Data:        []byte{0x01},
		BlockNumber: 5,
		TxHash:      minedTx,
		BlockHash:   gethCommon.HexToHash("0x05"),
	}}, nil
}

func (n *fakeNode) GetTransactionReceipt(hash gethCommon.Hash) *types.Receipt {
	if hash != minedTx {
		return nil
	}
	return &types.Receipt{
		Status:          types.ReceiptStatusSuccessful,
		TxHash:          minedTx,
		ContractAddress: contractAddress,
		BlockNumber:     big.NewInt(5),
		BlockHash:       gethCommon.HexToHash("0x05"),
		Logs:            []*types.Log{},
	}
}

func (n *fakeNode) BlockNumber() hexutil.Uint64 {
	return 7
}

func newTestClient(t *testing.T) (IRPCClient, *fakeNode) {
	node := &fakeNode{}
	server := gethRpc.NewServer()
	require.NoError(t, server.RegisterName("eth", node))
	t.Cleanup(server.Stop)

	client, err := NewClient(context.Background(), gethRpc.DialInProc(server), "inproc")
	require.NoError(t, err)
	t.Cleanup(client.Close)
	return client, node
}

func TestNewClient_ResolvesChainID(t *testing.T) {
	client, _ := newTestClient(t)
	assert.Equal(t, big.NewInt(1337), client.GetChainID())
	assert.Equal(t, "inproc", client.GetURL())
}

func TestClient_Accounts(t *testing.T) {
	client, _ := newTestClient(t)

	accounts, err := client.Accounts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []gethCommon.Address{account}, accounts)
}

func TestClient_SendTransaction(t *testing.T) {
	client, node := newTestClient(t)
	to := contractAddress

	hash, err := client.SendTransaction(context.Background(), ethereum.CallMsg{From: account, Data: []byte{0x60, 0x80}, Gas: 21000})
	require.NoError(t, err)
	assert.Equal(t, minedTx, hash)

	_, err = client.SendTransaction(context.Background(), ethereum.CallMsg{From: account, To: &to})
	require.NoError(t, err)

	_, err = client.SendTransaction(context.Background(), ethereum.CallMsg{From: contractAddress})
	assert.ErrorContains(t, err, "unknown account")

	require.Len(t, node.transactions, 2)
	deployment := node.transactions[0]
	assert.NotContains(t, deployment, "to")
	assert.Equal(t, "0x6080", deployment["data"])
	assert.Equal(t, "0x5208", deployment["gas"])
	call := node.transactions[1]
	assert.Contains(t, call, "to")
	assert.NotContains(t, call, "data")
}

func TestClient_CallContract(t *testing.T) {
	client, _ := newTestClient(t)
	to := contractAddress

	output, err := client.CallContract(context.Background(), ethereum.CallMsg{From: account, To: &to, Data: []byte{0x19, 0xff, 0x1d, 0x21}})
	require.NoError(t, err)
	assert.Equal(t, []byte{0x2a}, output)
}

func TestClient_Filters(t *testing.T) {
	client, node := newTestClient(t)

	filterID, err := client.NewFilter(context.Background(), ethereum.FilterQuery{
		Addresses: []gethCommon.Address{contractAddress},
		Topics:    [][]gethCommon.Hash{{helloTopic}, nil, nil, nil},
	})
	require.NoError(t, err)
	assert.Equal(t, "0x1", filterID)

	require.Len(t, node.filters, 1)
	assert.NotContains(t, node.filters[0], "fromBlock")
	assert.NotContains(t, node.filters[0], "toBlock")
	assert.Equal(t, []interface{}{helloTopic.Hex()}, node.filters[0]["topics"].([]interface{})[0])

	logs, err := client.GetFilterChanges(context.Background(), filterID)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, contractAddress, logs[0].Address)
	assert.Equal(t, []gethCommon.Hash{helloTopic}, logs[0].Topics)
	assert.Equal(t, uint64(5), logs[0].BlockNumber)

	logs, err = client.GetFilterChanges(context.Background(), filterID)
	require.NoError(t, err)
	assert.Empty(t, logs)

	_, err = client.GetFilterChanges(context.Background(), "0x2")
	assert.ErrorContains(t, err, "filter not found")
}

func TestClient_TransactionReceipt(t *testing.T) {
	client, _ := newTestClient(t)

	receipt, err := client.TransactionReceipt(context.Background(), minedTx)
	require.NoError(t, err)
	assert.Equal(t, contractAddress, receipt.ContractAddress)
	assert.Equal(t, uint64(5), receipt.BlockNumber.Uint64())

	_, err = client.TransactionReceipt(context.Background(), gethCommon.HexToHash("0x02"))
	assert.ErrorIs(t, err, ethereum.NotFound)
}

func TestClient_BlockNumber(t *testing.T) {
	client, _ := newTestClient(t)

	number, err := client.BlockNumber(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint64(7), number)
}
