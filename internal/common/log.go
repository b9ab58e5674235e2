package common

import (
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	gethCommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/rs/zerolog/log"
)

// Log is a delivered log entry. It keeps every field the node reported so the
// consumer can log or route it without going back to the node.
type Log struct {
	ChainId          *big.Int `json:"chain_id"`
	BlockNumber      uint64   `json:"block_number"`
	BlockHash        string   `json:"block_hash"`
	TransactionHash  string   `json:"transaction_hash"`
	TransactionIndex uint64   `json:"transaction_index"`
	LogIndex         uint64   `json:"log_index"`
	Address          string   `json:"address"`
	Data             string   `json:"data"`
	Topics           []string `json:"topics"`
	Removed          bool     `json:"removed"`
}

func SerializeLog(chainId *big.Int, rawLog types.Log) Log {
	topics := make([]string, 0, len(rawLog.Topics))
	for _, topic := range rawLog.Topics {
		topics = append(topics, topic.Hex())
	}
	return Log{
		ChainId:          chainId,
		BlockNumber:      rawLog.BlockNumber,
		BlockHash:        rawLog.BlockHash.Hex(),
		TransactionHash:  rawLog.TxHash.Hex(),
		TransactionIndex: uint64(rawLog.TxIndex),
		LogIndex:         uint64(rawLog.Index),
		Address:          rawLog.Address.Hex(),
		Data:             hexutil.Encode(rawLog.Data),
		Topics:           topics,
		Removed:          rawLog.Removed,
	}
}

// Topic0 returns the event signature topic, or an empty string for anonymous events.
func (l Log) Topic0() string {
	if len(l.Topics) == 0 {
		return ""
	}
	return l.Topics[0]
}

type DecodedLogData struct {
	Name             string                 `json:"name"`
	Signature        string                 `json:"signature"`
	IndexedParams    map[string]interface{} `json:"indexed_params"`
	NonIndexedParams map[string]interface{} `json:"non_indexed_params"`
}

type DecodedLog struct {
	Log
	Decoded DecodedLogData `json:"decoded"`
}

// Decode unpacks topics and data with eventABI. Values that cannot be decoded
// are left out; the raw log is always kept.
func (l *Log) Decode(eventABI *abi.Event) *DecodedLog {
	decodedIndexed := make(map[string]interface{})
	var indexedArgs abi.Arguments
	for _, arg := range eventABI.Inputs {
		if arg.Indexed {
			indexedArgs = append(indexedArgs, arg)
		}
	}

	var topics []gethCommon.Hash
	if len(l.Topics) > 1 {
		for _, topic := range l.Topics[1:] {
			topics = append(topics, gethCommon.HexToHash(topic))
		}
	}
	if len(topics) != len(indexedArgs) {
		log.Debug().Msgf("log has %d indexed topics, event %s expects %d", len(topics), eventABI.Sig, len(indexedArgs))
		return &DecodedLog{Log: *l}
	}
	if err := abi.ParseTopicsIntoMap(decodedIndexed, indexedArgs, topics); err != nil {
		log.Warn().Msgf("failed to decode indexed parameters: %v, signature: %s", err, eventABI.Sig)
	}

	decodedNonIndexed := make(map[string]interface{})
	data, err := hexutil.Decode(l.Data)
	if err != nil {
		log.Debug().Msgf("failed to decode log data: %v", err)
	} else if err := eventABI.Inputs.NonIndexed().UnpackIntoMap(decodedNonIndexed, data); err != nil {
		log.Warn().Msgf("failed to decode non indexed parameters: %v, signature: %s", err, eventABI.Sig)
	}

	return &DecodedLog{
		Log: *l,
		Decoded: DecodedLogData{
			Name:             eventABI.RawName,
			Signature:        eventABI.Sig,
			IndexedParams:    decodedIndexed,
			NonIndexedParams: decodedNonIndexed,
		},
	}
}
