package transactions

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
)

var (
	ErrEmptyBytecode   = errors.New("artifact has no bytecode")
	ErrArtifactMissing = errors.New("artifact ABI is missing ledger method")
)

// Artifact is a compiled contract as emitted by Hardhat or Foundry.
type Artifact struct {
	ContractName string
	ABI          json.RawMessage
	Bytecode     []byte
}

type rawArtifact struct {
	ContractName string          `json:"contractName"`
	ABI          json.RawMessage `json:"abi"`
	Bytecode     json.RawMessage `json:"bytecode"`
}

// LoadArtifact reads a compiled artifact from disk. Hardhat stores bytecode as a hex
// string, Foundry as {"object": "0x..."}; both are accepted.
func LoadArtifact(path string) (*Artifact, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read artifact: %w", err)
	}
	return ParseArtifact(data)
}

// ParseArtifact decodes artifact JSON and checks it carries the ledger's ABI.
func ParseArtifact(data []byte) (*Artifact, error) {
	var raw rawArtifact
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode artifact: %w", err)
	}

	code, err := decodeBytecode(raw.Bytecode)
	if err != nil {
		return nil, err
	}

	art := &Artifact{ContractName: raw.ContractName, ABI: raw.ABI, Bytecode: code}
	if err := art.checkABI(); err != nil {
		return nil, err
	}
	return art, nil
}

func decodeBytecode(raw json.RawMessage) ([]byte, error) {
	var hexCode string
	if err := json.Unmarshal(raw, &hexCode); err != nil {
		var foundry struct {
			Object string `json:"object"`
		}
		if err := json.Unmarshal(raw, &foundry); err != nil {
			return nil, fmt.Errorf("failed to decode artifact bytecode: %w", err)
		}
		hexCode = foundry.Object
	}

	hexCode = strings.TrimSpace(hexCode)
	if hexCode == "" || hexCode == "0x" {
		return nil, ErrEmptyBytecode
	}
	if !strings.HasPrefix(hexCode, "0x") {
		hexCode = "0x" + hexCode
	}
	code, err := hexutil.Decode(hexCode)
	if err != nil {
		return nil, fmt.Errorf("failed to decode artifact bytecode: %w", err)
	}
	return code, nil
}

func (a *Artifact) checkABI() error {
	if len(a.ABI) == 0 {
		return nil
	}
	var entries []struct {
		Name string `json:"name"`
		Type string `json:"type"`
	}
	if err := json.Unmarshal(a.ABI, &entries); err != nil {
		return fmt.Errorf("failed to decode artifact ABI: %w", err)
	}
	have := make(map[string]bool, len(entries))
	for _, e := range entries {
		if e.Type == "function" {
			have[e.Name] = true
		}
	}
	for _, m := range []string{"addToBlockchain", "getAllTransactions", "getTransactionCount"} {
		if !have[m] {
			return fmt.Errorf("%w: %s", ErrArtifactMissing, m)
		}
	}
	return nil
}

// DeployTransactions deploys a new ledger contract, returning a handle bound to it.
// The returned address is known before the transaction is mined.
func DeployTransactions(opts *bind.TransactOpts, backend bind.ContractBackend, bytecode []byte) (common.Address, *types.Transaction, *Transactions, error) {
	if len(bytecode) == 0 {
		return common.Address{}, nil, nil, ErrEmptyBytecode
	}
	parsed, err := ParsedABI()
	if err != nil {
		return common.Address{}, nil, nil, err
	}

	address, tx, contract, err := bind.DeployContract(opts, parsed, bytecode, backend)
	if err != nil {
		return common.Address{}, nil, nil, err
	}
	return address, tx, &Transactions{
		TransactionsCaller:     TransactionsCaller{contract: contract},
		TransactionsTransactor: TransactionsTransactor{contract: contract},
		address:                address,
	}, nil
}
