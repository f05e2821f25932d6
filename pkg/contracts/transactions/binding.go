// Package transactions contains the Go binding for the Transactions ledger contract.
// The contract appends {sender, receiver, amount, message, timestamp, keyword} records
// and exposes the full list and its length.
package transactions

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// TransactionsTransferStruct is an auto generated low-level Go binding around an user-defined struct.
type TransactionsTransferStruct struct {
	Sender    common.Address
	Receiver  common.Address
	Amount    *big.Int
	Message   string
	Timestamp *big.Int
	Keyword   string
}

// Transactions is a binding around the ledger contract, exposing both reads and writes.
type Transactions struct {
	TransactionsCaller
	TransactionsTransactor
	address common.Address
}

// TransactionsCaller is a read-only binding around the ledger contract.
type TransactionsCaller struct {
	contract *bind.BoundContract
}

// TransactionsTransactor is a write-only binding around the ledger contract.
type TransactionsTransactor struct {
	contract *bind.BoundContract
}

// ParsedABI parses TransactionsABI.
func ParsedABI() (abi.ABI, error) {
	parsed, err := abi.JSON(strings.NewReader(TransactionsABI))
	if err != nil {
		return abi.ABI{}, fmt.Errorf("failed to parse Transactions ABI: %w", err)
	}
	return parsed, nil
}

// NewTransactions creates a new handle bound to a deployed contract. A new handle is
// cheap; callers construct one wherever they need it.
func NewTransactions(address common.Address, backend bind.ContractBackend) (*Transactions, error) {
	contract, err := bindTransactions(address, backend, backend, backend)
	if err != nil {
		return nil, err
	}
	return &Transactions{
		TransactionsCaller:     TransactionsCaller{contract: contract},
		TransactionsTransactor: TransactionsTransactor{contract: contract},
		address:                address,
	}, nil
}

// NewTransactionsCaller creates a new read-only handle bound to a deployed contract.
func NewTransactionsCaller(address common.Address, caller bind.ContractCaller) (*TransactionsCaller, error) {
	contract, err := bindTransactions(address, caller, nil, nil)
	if err != nil {
		return nil, err
	}
	return &TransactionsCaller{contract: contract}, nil
}

// NewTransactionsTransactor creates a new write-only handle bound to a deployed contract.
func NewTransactionsTransactor(address common.Address, transactor bind.ContractTransactor) (*TransactionsTransactor, error) {
	contract, err := bindTransactions(address, nil, transactor, nil)
	if err != nil {
		return nil, err
	}
	return &TransactionsTransactor{contract: contract}, nil
}

// Address returns the contract address the handle is bound to.
func (t *Transactions) Address() common.Address {
	return t.address
}

func bindTransactions(address common.Address, caller bind.ContractCaller, transactor bind.ContractTransactor, filterer bind.ContractFilterer) (*bind.BoundContract, error) {
	parsed, err := ParsedABI()
	if err != nil {
		return nil, err
	}
	return bind.NewBoundContract(address, parsed, caller, transactor, filterer), nil
}

// GetAllTransactions is a free data retrieval call binding the contract method getAllTransactions.
//
// Solidity: function getAllTransactions() view returns((address,address,uint256,string,uint256,string)[])
func (c *TransactionsCaller) GetAllTransactions(opts *bind.CallOpts) ([]TransactionsTransferStruct, error) {
	var out []interface{}
	err := c.contract.Call(opts, &out, "getAllTransactions")
	if err != nil {
		return *new([]TransactionsTransferStruct), err
	}

	out0 := *abi.ConvertType(out[0], new([]TransactionsTransferStruct)).(*[]TransactionsTransferStruct)
	return out0, nil
}

// GetTransactionCount is a free data retrieval call binding the contract method getTransactionCount.
//
// Solidity: function getTransactionCount() view returns(uint256)
func (c *TransactionsCaller) GetTransactionCount(opts *bind.CallOpts) (*big.Int, error) {
	var out []interface{}
	err := c.contract.Call(opts, &out, "getTransactionCount")
	if err != nil {
		return *new(*big.Int), err
	}

	out0 := *abi.ConvertType(out[0], new(*big.Int)).(**big.Int)
	return out0, nil
}

// AddToBlockchain is a paid mutator transaction binding the contract method addToBlockchain.
//
// Solidity: function addToBlockchain(address receiver, uint256 amount, string message, string keyword) returns()
func (t *TransactionsTransactor) AddToBlockchain(opts *bind.TransactOpts, receiver common.Address, amount *big.Int, message string, keyword string) (*types.Transaction, error) {
	return t.contract.Transact(opts, "addToBlockchain", receiver, amount, message, keyword)
}
