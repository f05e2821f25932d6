package ledger

import (
	"context"
	"math/big"
	"testing"
	"time"

	"github.com/Layr-Labs/txledger-go/pkg/contracts/transactions"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type receiptBackend struct {
	receipt *types.Receipt
}

func (b *receiptBackend) TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error) {
	return b.receipt, nil
}

func (b *receiptBackend) CodeAt(ctx context.Context, account common.Address, blockNumber *big.Int) ([]byte, error) {
	return nil, nil
}

func TestEnsureTransactionEvaled(t *testing.T) {
	tx := types.NewTx(&types.LegacyTx{Nonce: 3})

	t.Run("successful receipt", func(t *testing.T) {
		backend := &receiptBackend{receipt: &types.Receipt{
			Status:      types.ReceiptStatusSuccessful,
			TxHash:      tx.Hash(),
			BlockNumber: big.NewInt(10),
		}}
		receipt, err := ensureTransactionEvaled(context.Background(), backend, tx, zap.NewNop())
		require.NoError(t, err)
		assert.Equal(t, tx.Hash(), receipt.TxHash)
	})
	t.Run("reverted receipt", func(t *testing.T) {
		backend := &receiptBackend{receipt: &types.Receipt{
			Status:      types.ReceiptStatusFailed,
			TxHash:      tx.Hash(),
			BlockNumber: big.NewInt(10),
		}}
		_, err := ensureTransactionEvaled(context.Background(), backend, tx, zap.NewNop())
		assert.ErrorIs(t, err, ErrTransactionFailed)
	})
}

func TestProjectTransaction(t *testing.T) {
	raw := transactions.TransactionsTransferStruct{
		Sender:    common.HexToAddress(testAccount),
		Receiver:  common.HexToAddress(testReceiver),
		Amount:    big.NewInt(500000000000000000),
		Timestamp: big.NewInt(1700000000),
	}

	est := time.FixedZone("EST", -5*60*60)
	got := ProjectTransaction(raw, est)
	assert.Equal(t, "11/14/2023, 5:13:20 PM", got.Timestamp)
	assert.Equal(t, 0.5, got.Amount)

	zero := ProjectTransaction(transactions.TransactionsTransferStruct{}, time.UTC)
	assert.Equal(t, "1/1/1970, 12:00:00 AM", zero.Timestamp)
	assert.Equal(t, float64(0), zero.Amount)
}

func TestProjectTransactions_NilIsEmpty(t *testing.T) {
	got := ProjectTransactions(nil, time.UTC)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestShortAddress(t *testing.T) {
	assert.Equal(t, "0x7099...79C8", ShortAddress(testReceiver))
	assert.Equal(t, "0x01", ShortAddress("0x01"))
}
