package filter

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum"
	gethCommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/thirdweb-dev/watcher/internal/common"
)

// TopicPositions is the number of topic slots a log can carry: the event
// signature followed by up to three indexed arguments.
const TopicPositions = 4

var ErrInvalidSignature = errors.New("invalid event signature")

// Filter selects the logs of one event emitted by one contract. Position 0 of
// the topic predicate holds the event signature; the indexed argument
// positions are left unconstrained. It is immutable once built.
type Filter struct {
	address   gethCommon.Address
	signature gethCommon.Hash
}

// Build parses signature as a 32-byte hex hash and returns the filter for it.
func Build(address gethCommon.Address, signature string) (Filter, error) {
	sig, err := ParseSignature(signature)
	if err != nil {
		return Filter{}, err
	}
	return BuildWithHash(address, sig), nil
}

func BuildWithHash(address gethCommon.Address, signature gethCommon.Hash) Filter {
	return Filter{address: address, signature: signature}
}

// ParseSignature accepts exactly 32 bytes of hex, with or without the 0x prefix.
// Shorter or longer input is rejected instead of being padded or truncated.
func ParseSignature(s string) (gethCommon.Hash, error) {
	raw := strings.TrimSpace(s)
	if !strings.HasPrefix(raw, "0x") && !strings.HasPrefix(raw, "0X") {
		raw = "0x" + raw
	}
	if len(raw) != 2+2*gethCommon.HashLength {
		return gethCommon.Hash{}, fmt.Errorf("%w: %q is not %d bytes", ErrInvalidSignature, s, gethCommon.HashLength)
	}
	b, err := hexutil.Decode("0x" + raw[2:])
	if err != nil {
		return gethCommon.Hash{}, fmt.Errorf("%w: %q: %v", ErrInvalidSignature, s, err)
	}
	return SignatureFromBytes(b)
}

func SignatureFromBytes(b []byte) (gethCommon.Hash, error) {
	if len(b) != gethCommon.HashLength {
		return gethCommon.Hash{}, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidSignature, len(b), gethCommon.HashLength)
	}
	return gethCommon.BytesToHash(b), nil
}

// EventSignatureFromText derives the signature topic from a canonical event
// declaration such as "Hello(address indexed sender)".
func EventSignatureFromText(text string) (gethCommon.Hash, error) {
	event, err := common.ConstructEventABI(text)
	if err != nil {
		return gethCommon.Hash{}, fmt.Errorf("%w: %v", ErrInvalidSignature, err)
	}
	return event.ID, nil
}

func (f Filter) Address() gethCommon.Address {
	return f.address
}

func (f Filter) Addresses() []gethCommon.Address {
	return []gethCommon.Address{f.address}
}

func (f Filter) Signature() gethCommon.Hash {
	return f.signature
}

// Topics returns the topic predicate: [{signature}, nil, nil, nil]. A nil
// position matches any value.
func (f Filter) Topics() [][]gethCommon.Hash {
	topics := make([][]gethCommon.Hash, TopicPositions)
	topics[0] = []gethCommon.Hash{f.signature}
	return topics
}

func (f Filter) Query() ethereum.FilterQuery {
	return ethereum.FilterQuery{
		Addresses: f.Addresses(),
		Topics:    f.Topics(),
	}
}

func (f Filter) String() string {
	return fmt.Sprintf("address=%s topic0=%s", f.address.Hex(), f.signature.Hex())
}
