package rpc

import (
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common/hexutil"
	gethRpc "github.com/ethereum/go-ethereum/rpc"
)

// TransactionParams renders a call message as eth_sendTransaction arguments.
// A nil To submits a contract creation.
func TransactionParams(msg ethereum.CallMsg) map[string]interface{} {
	arg := map[string]interface{}{
		"from": msg.From,
	}
	if msg.To != nil {
		arg["to"] = msg.To
	}
	if len(msg.Data) > 0 {
		arg["data"] = hexutil.Bytes(msg.Data)
	}
	if msg.Value != nil {
		arg["value"] = (*hexutil.Big)(msg.Value)
	}
	if msg.Gas != 0 {
		arg["gas"] = hexutil.Uint64(msg.Gas)
	}
	if msg.GasPrice != nil {
		arg["gasPrice"] = (*hexutil.Big)(msg.GasPrice)
	}
	return arg
}

// FilterParams renders a filter query as eth_newFilter arguments. Unset block
// bounds are left out so the node applies its own "latest" default.
func FilterParams(q ethereum.FilterQuery) map[string]interface{} {
	arg := map[string]interface{}{
		"address": q.Addresses,
		"topics":  q.Topics,
	}
	if q.BlockHash != nil {
		arg["blockHash"] = *q.BlockHash
		return arg
	}
	if q.FromBlock != nil {
		arg["fromBlock"] = blockNumberParam(q.FromBlock)
	}
	if q.ToBlock != nil {
		arg["toBlock"] = blockNumberParam(q.ToBlock)
	}
	return arg
}

func blockNumberParam(number *big.Int) string {
	if number.Sign() >= 0 {
		return hexutil.EncodeBig(number)
	}
	if number.IsInt64() {
		return gethRpc.BlockNumber(number.Int64()).String()
	}
	return "latest"
}
