package provider

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/core/types"
)

// EthClientInterface defines the network methods the ledger needs.
// This interface allows for mocking and testing while maintaining compatibility
// with ethclient.Client and the go-ethereum bind package.
type EthClientInterface interface {
	ChainID(ctx context.Context) (*big.Int, error)
	BlockNumber(ctx context.Context) (uint64, error)
	HeaderByNumber(ctx context.Context, number *big.Int) (*types.Header, error)

	// Contract binding support (required for go-ethereum's bind package)
	bind.ContractBackend
	bind.DeployBackend
}
