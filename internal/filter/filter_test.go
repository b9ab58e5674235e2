package filter

import (
	"strings"
	"testing"

	gethCommon "github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const helloSignature = "0xd282f389399565f3671145f5916e51652b60eee8e5c759293a2f5771b8ddfd2e"

func TestBuild(t *testing.T) {
	address := gethCommon.HexToAddress("0x5fbdb2315678afecb367f032d93f642f64180aa3")

	f, err := Build(address, helloSignature)
	require.NoError(t, err)

	assert.Equal(t, []gethCommon.Address{address}, f.Addresses())
	assert.Equal(t, gethCommon.HexToHash(helloSignature), f.Signature())

	topics := f.Topics()
	require.Len(t, topics, TopicPositions)
	assert.Equal(t, []gethCommon.Hash{gethCommon.HexToHash(helloSignature)}, topics[0])
	for i := 1; i < TopicPositions; i++ {
		assert.Nil(t, topics[i], "topic %d should be unconstrained", i)
	}
}

func TestBuild_Query(t *testing.T) {
	address := gethCommon.HexToAddress("0x00000000000000000000000000000000000000aa")
	f, err := Build(address, helloSignature)
	require.NoError(t, err)

	query := f.Query()
	assert.Equal(t, []gethCommon.Address{address}, query.Addresses)
	assert.Equal(t, f.Topics(), query.Topics)
	assert.Nil(t, query.FromBlock)
	assert.Nil(t, query.ToBlock)
}

func TestBuild_IsImmutable(t *testing.T) {
	address := gethCommon.HexToAddress("0x00000000000000000000000000000000000000aa")
	f := BuildWithHash(address, gethCommon.HexToHash(helloSignature))

	topics := f.Topics()
	topics[0][0] = gethCommon.Hash{}
	topics[1] = []gethCommon.Hash{{0x1}}
	addresses := f.Addresses()
	addresses[0] = gethCommon.Address{}

	assert.Equal(t, gethCommon.HexToHash(helloSignature), f.Topics()[0][0])
	assert.Nil(t, f.Topics()[1])
	assert.Equal(t, address, f.Addresses()[0])
}

func TestParseSignature(t *testing.T) {
	hash, err := ParseSignature(helloSignature)
	require.NoError(t, err)
	assert.Equal(t, gethCommon.HexToHash(helloSignature), hash)

	withoutPrefix, err := ParseSignature(strings.TrimPrefix(helloSignature, "0x"))
	require.NoError(t, err)
	assert.Equal(t, hash, withoutPrefix)

	upper, err := ParseSignature("0X" + strings.ToUpper(strings.TrimPrefix(helloSignature, "0x")))
	require.NoError(t, err)
	assert.Equal(t, hash, upper)
}

func TestParseSignature_RejectsMalformed(t *testing.T) {
	tests := []struct {
		name      string
		signature string
	}{
		{"empty", ""},
		{"prefix only", "0x"},
		{"too short", helloSignature[:len(helloSignature)-2]},
		{"one nibble short", helloSignature[:len(helloSignature)-1]},
		{"too long", helloSignature + "00"},
		{"one nibble long", helloSignature + "0"},
		{"non hex", "0x" + strings.Repeat("zz", 32)},
		{"address sized", "0x5fbdb2315678afecb367f032d93f642f64180aa3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSignature(tt.signature)
			assert.ErrorIs(t, err, ErrInvalidSignature)

			_, err = Build(gethCommon.Address{}, tt.signature)
			assert.ErrorIs(t, err, ErrInvalidSignature)
		})
	}
}

func TestSignatureFromBytes(t *testing.T) {
	for _, size := range []int{0, 1, 20, 31, 33, 64} {
		_, err := SignatureFromBytes(make([]byte, size))
		assert.ErrorIs(t, err, ErrInvalidSignature, "size %d", size)
	}

	b := gethCommon.HexToHash(helloSignature).Bytes()
	hash, err := SignatureFromBytes(b)
	require.NoError(t, err)
	assert.Equal(t, helloSignature, hash.Hex())
}

func TestEventSignatureFromText(t *testing.T) {
	hash, err := EventSignatureFromText("Transfer(address indexed from, address indexed to, uint256 value)")
	require.NoError(t, err)
	assert.Equal(t, "0xddf252ad1be2c89b69c2b068fc378daa952ba7f163c4a11628f55a4df523b3ef", hash.Hex())

	_, err = EventSignatureFromText("not a signature")
	assert.ErrorIs(t, err, ErrInvalidSignature)
}
