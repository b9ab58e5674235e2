package deployer

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// Artifact is compiled contract output: creation bytecode plus its ABI.
type Artifact struct {
	Bytecode []byte
	ABI      abi.ABI
}

// LoadArtifact reads a hex encoded .bin file and the matching ABI JSON, as
// written by solc --bin --abi.
func LoadArtifact(binPath string, abiPath string) (*Artifact, error) {
	bin, err := os.ReadFile(binPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read bytecode: %w", err)
	}
	abiFile, err := os.Open(abiPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read abi: %w", err)
	}
	defer abiFile.Close()
	return ParseArtifact(bin, abiFile)
}

func ParseArtifact(bin []byte, abiJSON io.Reader) (*Artifact, error) {
	hexCode := strings.TrimSpace(string(bin))
	if !strings.HasPrefix(hexCode, "0x") && !strings.HasPrefix(hexCode, "0X") {
		hexCode = "0x" + hexCode
	}
	bytecode, err := hexutil.Decode(hexCode)
	if err != nil {
		return nil, fmt.Errorf("failed to decode bytecode: %w", err)
	}
	if len(bytecode) == 0 {
		return nil, fmt.Errorf("empty bytecode")
	}

	parsed, err := abi.JSON(abiJSON)
	if err != nil {
		return nil, fmt.Errorf("failed to parse abi: %w", err)
	}
	return &Artifact{Bytecode: bytecode, ABI: parsed}, nil
}

// DeployData is the creation payload: bytecode followed by the ABI encoded
// constructor arguments.
func (a *Artifact) DeployData(constructorArgs ...interface{}) ([]byte, error) {
	input, err := a.ABI.Pack("", constructorArgs...)
	if err != nil {
		return nil, fmt.Errorf("failed to pack constructor arguments: %w", err)
	}
	return append(bytes.Clone(a.Bytecode), input...), nil
}
