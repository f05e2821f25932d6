// Package txSigner provides Ethereum transaction signing for ledger writes and contract deployment.
// This package defines the signer interface consumed by go-ethereum contract bindings and
// implementations backed by a raw private key or an AWS KMS key.
package txSigner

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
)

// ITransactionSigner defines the interface for signing Ethereum transactions.
// Implementations create transaction options for go-ethereum contract bindings,
// supporting different signing backends like private keys and hardware security modules.
type ITransactionSigner interface {
	// GetTransactOpts returns bind.TransactOpts configured for the signer.
	//
	// Parameters:
	//   - ctx: Context for the operation
	//   - chainID: The chain ID for the target blockchain
	//
	// Returns:
	//   - *bind.TransactOpts: Configured transaction options for the signer
	//   - error: An error if transaction options cannot be created
	GetTransactOpts(ctx context.Context, chainID *big.Int) (*bind.TransactOpts, error)

	// GetAddress returns the Ethereum address associated with this signer.
	// This address will be used as the 'from' field in transactions.
	GetAddress() (common.Address, error)
}
