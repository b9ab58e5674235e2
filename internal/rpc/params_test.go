package rpc

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum"
	gethCommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	gethRpc "github.com/ethereum/go-ethereum/rpc"
	"github.com/stretchr/testify/assert"
)

func TestTransactionParams(t *testing.T) {
	from := gethCommon.HexToAddress("0x01")
	to := gethCommon.HexToAddress("0x02")

	creation := TransactionParams(ethereum.CallMsg{From: from, Data: []byte{0x60}})
	assert.Equal(t, map[string]interface{}{
		"from": from,
		"data": hexutil.Bytes{0x60},
	}, creation)

	call := TransactionParams(ethereum.CallMsg{
		From:     from,
		To:       &to,
		Gas:      100,
		GasPrice: big.NewInt(2),
		Value:    big.NewInt(3),
	})
	assert.Equal(t, &to, call["to"])
	assert.Equal(t, hexutil.Uint64(100), call["gas"])
	assert.Equal(t, (*hexutil.Big)(big.NewInt(2)), call["gasPrice"])
	assert.Equal(t, (*hexutil.Big)(big.NewInt(3)), call["value"])
	assert.NotContains(t, call, "data")
}

func TestFilterParams(t *testing.T) {
	address := gethCommon.HexToAddress("0x03")
	topics := [][]gethCommon.Hash{{gethCommon.HexToHash("0x04")}}

	open := FilterParams(ethereum.FilterQuery{Addresses: []gethCommon.Address{address}, Topics: topics})
	assert.Equal(t, map[string]interface{}{
		"address": []gethCommon.Address{address},
		"topics":  topics,
	}, open)

	bounded := FilterParams(ethereum.FilterQuery{FromBlock: big.NewInt(16), ToBlock: big.NewInt(gethRpc.LatestBlockNumber.Int64())})
	assert.Equal(t, "0x10", bounded["fromBlock"])
	assert.Equal(t, "latest", bounded["toBlock"])

	blockHash := gethCommon.HexToHash("0x05")
	byHash := FilterParams(ethereum.FilterQuery{BlockHash: &blockHash, FromBlock: big.NewInt(1)})
	assert.Equal(t, blockHash, byHash["blockHash"])
	assert.NotContains(t, byHash, "fromBlock")
}
