package ledger

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/Layr-Labs/txledger-go/pkg/contracts/transactions"
	"github.com/Layr-Labs/txledger-go/pkg/provider"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/zap"
)

var (
	// ErrTransactionFailed is returned when a mined transaction reverted
	ErrTransactionFailed = errors.New("transaction failed")
)

// LedgerReader reads the on-chain ledger.
type LedgerReader interface {
	GetAllTransactions(opts *bind.CallOpts) ([]transactions.TransactionsTransferStruct, error)
	GetTransactionCount(opts *bind.CallOpts) (*big.Int, error)
}

// LedgerWriter appends records to the on-chain ledger.
type LedgerWriter interface {
	AddToBlockchain(opts *bind.TransactOpts, receiver common.Address, amount *big.Int, message string, keyword string) (*types.Transaction, error)
}

// Contracts hands out contract handles. Handles are built per call, never cached.
type Contracts interface {
	// Reader returns a handle bound to the read-only provider
	Reader() (LedgerReader, error)
	// Writer returns a handle bound to the signer, with options to sign with
	Writer(ctx context.Context) (LedgerWriter, *bind.TransactOpts, error)
	// WaitMined blocks until tx is mined and succeeded
	WaitMined(ctx context.Context, tx *types.Transaction) (*types.Receipt, error)
}

// ProviderContracts implements Contracts for a deployed ledger reached through a Provider.
type ProviderContracts struct {
	address  common.Address
	provider *provider.Provider
	logger   *zap.Logger
}

var _ Contracts = (*ProviderContracts)(nil)

func NewProviderContracts(address common.Address, p *provider.Provider, l *zap.Logger) *ProviderContracts {
	return &ProviderContracts{address: address, provider: p, logger: l}
}

func (c *ProviderContracts) Reader() (LedgerReader, error) {
	caller, err := transactions.NewTransactionsCaller(c.address, c.provider.Client)
	if err != nil {
		return nil, fmt.Errorf("failed to bind Transactions caller: %w", err)
	}
	return caller, nil
}

func (c *ProviderContracts) Writer(ctx context.Context) (LedgerWriter, *bind.TransactOpts, error) {
	opts, err := c.provider.TransactOpts(ctx)
	if err != nil {
		return nil, nil, err
	}
	transactor, err := transactions.NewTransactionsTransactor(c.address, c.provider.Client)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to bind Transactions transactor: %w", err)
	}
	return transactor, opts, nil
}

func (c *ProviderContracts) WaitMined(ctx context.Context, tx *types.Transaction) (*types.Receipt, error) {
	return ensureTransactionEvaled(ctx, c.provider.Client, tx, c.logger)
}

func ensureTransactionEvaled(ctx context.Context, backend bind.DeployBackend, tx *types.Transaction, l *zap.Logger) (*types.Receipt, error) {
	receipt, err := bind.WaitMined(ctx, backend, tx)
	if err != nil {
		return nil, fmt.Errorf("failed to wait for transaction %s to mine: %w", tx.Hash().Hex(), err)
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		l.Sugar().Errorw("Transaction reverted",
			zap.String("transactionHash", receipt.TxHash.Hex()),
			zap.Stringer("blockNumber", receipt.BlockNumber),
		)
		return nil, fmt.Errorf("%w: %s", ErrTransactionFailed, receipt.TxHash.Hex())
	}
	return receipt, nil
}
