package common

import (
	"math/big"
	"testing"

	gethCommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSerializeLog(t *testing.T) {
	raw := types.Log{
		Address:     gethCommon.HexToAddress("0x5fbdb2315678afecb367f032d93f642f64180aa3"),
		Topics:      []gethCommon.Hash{gethCommon.HexToHash("0xd282f389399565f3671145f5916e51652b60eee8e5c759293a2f5771b8ddfd2e")},
		Data:        []byte{0xca, 0xfe},
		BlockNumber: 12,
		TxHash:      gethCommon.HexToHash("0x01"),
		TxIndex:     3,
		BlockHash:   gethCommon.HexToHash("0x02"),
		Index:       9,
	}

	entry := SerializeLog(big.NewInt(1337), raw)

	assert.Equal(t, big.NewInt(1337), entry.ChainId)
	assert.Equal(t, uint64(12), entry.BlockNumber)
	assert.Equal(t, raw.BlockHash.Hex(), entry.BlockHash)
	assert.Equal(t, raw.TxHash.Hex(), entry.TransactionHash)
	assert.Equal(t, uint64(3), entry.TransactionIndex)
	assert.Equal(t, uint64(9), entry.LogIndex)
	assert.Equal(t, "0x5FbDB2315678afecb367f032d93F642f64180aa3", entry.Address)
	assert.Equal(t, "0xcafe", entry.Data)
	assert.Equal(t, "0xd282f389399565f3671145f5916e51652b60eee8e5c759293a2f5771b8ddfd2e", entry.Topic0())
	assert.False(t, entry.Removed)
}

func TestTopic0_Anonymous(t *testing.T) {
	entry := SerializeLog(big.NewInt(1), types.Log{})
	assert.Equal(t, "", entry.Topic0())
	assert.Equal(t, "0x", entry.Data)
}

func TestDecodeLog(t *testing.T) {
	event := Log{
		Data: "0x000000000000000000000000000000000000000000000000b2da0f6658944b0600000000000000000000000000000000000000000000000000000000000000003492dc030870ae719a0babc07807601edd3fc7e150a6b4878d1c5571bd9995c00000000000000000000000000000000000000000000000e076c8d70085af000000000000000000000000000000000000000000000000000000469c6478f693140000000000000000000000000000000000000000000000000000000000000000",
		Topics: []string{
			"0x7be266734f0c132a415c32a35b76cbf3d8a02fa3d88628b286dcf713f53f1e2d",
			"0xc148159472ef0bbd3a304d3d3637b8deeda456572700669fda4f8d0fad814402",
			"0x000000000000000000000000ff0cb0351a356ad16987e5809a8daaaf34f5adbe",
		},
	}

	eventABI, err := ConstructEventABI("LogCanonicalOrderFilled(bytes32 indexed orderHash,address indexed orderMaker,uint256 fillAmount,uint256 triggerPrice,bytes32 orderFlags,(uint256 price,uint128 fee,bool isNegativeFee) fill)")
	require.NoError(t, err)
	decodedEvent := event.Decode(eventABI)

	assert.Equal(t, "LogCanonicalOrderFilled", decodedEvent.Decoded.Name)
	assert.Equal(t, [32]byte(gethCommon.HexToHash("0xc148159472ef0bbd3a304d3d3637b8deeda456572700669fda4f8d0fad814402")), decodedEvent.Decoded.IndexedParams["orderHash"])
	assert.Equal(t, gethCommon.HexToAddress("0xff0cb0351a356ad16987e5809a8daaaf34f5adbe"), decodedEvent.Decoded.IndexedParams["orderMaker"])

	expectedFillAmountValue := big.NewInt(0)
	expectedFillAmountValue.SetString("12887630215921289990", 10)
	assert.Equal(t, expectedFillAmountValue.String(), decodedEvent.Decoded.NonIndexedParams["fillAmount"].(*big.Int).String())
	assert.Equal(t, "0", decodedEvent.Decoded.NonIndexedParams["triggerPrice"].(*big.Int).String())

	fillTuple := decodedEvent.Decoded.NonIndexedParams["fill"].(struct {
		Price         *big.Int `json:"price"`
		Fee           *big.Int `json:"fee"`
		IsNegativeFee bool     `json:"isNegativeFee"`
	})

	assert.Equal(t, "4140630000000000000000", fillTuple.Price.String())
	assert.Equal(t, "19875203709834004", fillTuple.Fee.String())
	assert.Equal(t, false, fillTuple.IsNegativeFee)
}

func TestDecodeLog_TopicCountMismatch(t *testing.T) {
	eventABI, err := ConstructEventABI("Transfer(address indexed from, address indexed to, uint256 value)")
	require.NoError(t, err)

	event := Log{Topics: []string{eventABI.ID.Hex()}, Data: "0x"}
	decoded := event.Decode(eventABI)

	assert.Equal(t, event, decoded.Log)
	assert.Empty(t, decoded.Decoded.Name)
}
