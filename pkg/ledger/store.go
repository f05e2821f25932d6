// Package ledger holds the client-side state of the transaction ledger dApp: the
// connected account, the pending transfer form, the projected list of on-chain
// records and the cached record count. It is the single shared store every surface
// of the client reads from.
package ledger

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"sync"
	"time"

	"github.com/Layr-Labs/txledger-go/pkg/provider"
	"github.com/Layr-Labs/txledger-go/pkg/storage"
	"github.com/Layr-Labs/txledger-go/pkg/units"
	"github.com/Layr-Labs/txledger-go/pkg/wallet"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"go.uber.org/zap"
)

// TransferGas is the gas limit sent with plain value transfers
const TransferGas = "0x5208"

var (
	// ErrNoWallet is returned by operations that need a wallet when none was detected
	ErrNoWallet = errors.New("ethereum is not present")
	// ErrNoSigner is returned when a ledger write is attempted without a signer
	ErrNoSigner = provider.ErrNoSigner
	// ErrInvalidReceiver is returned when the form's receiver is not a hex address
	ErrInvalidReceiver = errors.New("invalid receiver address")
)

// Control is the UI element an operation disables while it runs.
type Control interface {
	SetDisabled(disabled bool)
}

// Alerter shows a blocking message to the user.
type Alerter interface {
	Alert(message string)
}

// AlerterFunc adapts a function to Alerter.
type AlerterFunc func(message string)

func (f AlerterFunc) Alert(message string) { f(message) }

type Config struct {
	// Location renders record timestamps; defaults to time.Local
	Location *time.Location
}

type Dependencies struct {
	// Wallet may be nil when no wallet was detected
	Wallet    *wallet.Wallet
	Contracts Contracts
	Storage   storage.KV
	// Alerter may be nil
	Alerter Alerter
}

type Store struct {
	wallet    *wallet.Wallet
	contracts Contracts
	storage   storage.KV
	alerter   Alerter
	location  *time.Location
	logger    *zap.Logger

	mu    sync.Mutex
	state State

	countChanged chan struct{}
}

func NewStore(cfg *Config, deps Dependencies, l *zap.Logger) (*Store, error) {
	if deps.Contracts == nil {
		return nil, fmt.Errorf("contracts are required")
	}
	if deps.Storage == nil {
		return nil, fmt.Errorf("storage is required")
	}
	if l == nil {
		l = zap.NewNop()
	}
	loc := time.Local
	if cfg != nil && cfg.Location != nil {
		loc = cfg.Location
	}

	s := &Store{
		wallet:       deps.Wallet,
		contracts:    deps.Contracts,
		storage:      deps.Storage,
		alerter:      deps.Alerter,
		location:     loc,
		logger:       l,
		countChanged: make(chan struct{}, 1),
		state: State{
			CurrentAccount: PlaceholderAccount,
			Transactions:   []Transaction{},
		},
	}
	if count, ok := storage.LoadTransactionCount(deps.Storage); ok {
		s.state.TransactionCount = count
		s.state.TransactionCountKnown = true
	}
	return s, nil
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := s.state
	snap.Transactions = append([]Transaction{}, s.state.Transactions...)
	return snap
}

// HandleChange merges one form field. Unknown fields are ignored.
func (s *Store) HandleChange(field, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch field {
	case FieldAddressTo:
		s.state.FormData.AddressTo = value
	case FieldAmount:
		s.state.FormData.Amount = value
	case FieldKeyword:
		s.state.FormData.Keyword = value
	case FieldMessage:
		s.state.FormData.Message = value
	default:
		s.logger.Sugar().Debugw("Ignoring unknown form field", zap.String("field", field))
	}
}

// CheckIfWalletIsConnect re-derives the current account from the wallet.
func (s *Store) CheckIfWalletIsConnect() {
	if !s.wallet.IsExpectedBrand() {
		return
	}
	account, ok := s.wallet.Account()
	if !ok {
		return
	}
	s.mu.Lock()
	s.state.CurrentAccount = account
	s.mu.Unlock()
}

// ConnectWallet asks the wallet for account access and adopts the first account.
func (s *Store) ConnectWallet(ctx context.Context, ctrl Control) {
	if !s.wallet.IsExpectedBrand() {
		s.alert(fmt.Sprintf("Please install %s.", s.wallet.TargetBrand()))
		return
	}

	setDisabled(ctrl, true)
	defer setDisabled(ctrl, false)

	accounts, err := s.wallet.RequestAccounts(ctx)
	if err != nil {
		s.logRequestError(err, "Failed to connect wallet")
		return
	}
	if len(accounts) == 0 {
		s.logger.Sugar().Warnw("Wallet returned no accounts")
		return
	}

	s.mu.Lock()
	s.state.CurrentAccount = accounts[0]
	s.mu.Unlock()
	s.logger.Sugar().Infow("Wallet connected", zap.String("account", accounts[0]))
}

// SendTransaction transfers FormData.Amount to FormData.AddressTo through the wallet
// and appends a ledger record with the form's message and keyword. The two calls are
// independent: a failed transfer is logged and the record is still written.
func (s *Store) SendTransaction(ctx context.Context, ctrl Control) error {
	if s.wallet == nil {
		s.logger.Sugar().Infow("Ethereum is not present")
		return ErrNoWallet
	}

	s.mu.Lock()
	form := s.state.FormData
	from := s.state.CurrentAccount
	s.mu.Unlock()

	amount, err := units.ToBaseUnits(form.Amount)
	if err != nil {
		s.logger.Sugar().Errorw("Invalid amount", zap.String("amount", form.Amount), zap.Error(err))
		setDisabled(ctrl, false)
		return err
	}

	hash, err := s.wallet.SendTransaction(ctx, wallet.TransactionArgs{
		From:  from,
		To:    form.AddressTo,
		Gas:   TransferGas,
		Value: hexutil.EncodeBig(amount),
	})
	if err != nil {
		s.logRequestError(err, "Value transfer failed")
		setDisabled(ctrl, false)
	} else {
		s.logger.Sugar().Infow("Value transfer submitted", zap.String("transactionHash", hash))
	}

	if err := s.addToBlockchain(ctx, ctrl, form, amount); err != nil {
		s.setLoading(false)
		setDisabled(ctrl, false)
		s.logger.Sugar().Errorw("Failed to record transaction", zap.Error(err))
		return err
	}
	return nil
}

func (s *Store) addToBlockchain(ctx context.Context, ctrl Control, form FormData, amount *big.Int) error {
	if !common.IsHexAddress(form.AddressTo) {
		return fmt.Errorf("%w: %q", ErrInvalidReceiver, form.AddressTo)
	}
	writer, opts, err := s.contracts.Writer(ctx)
	if err != nil {
		return err
	}

	s.setLoading(true)
	tx, err := writer.AddToBlockchain(opts, common.HexToAddress(form.AddressTo), amount, form.Message, form.Keyword)
	if err != nil {
		return fmt.Errorf("failed to add transaction to blockchain: %w", err)
	}
	s.logger.Sugar().Infof("Loading - %s", tx.Hash().Hex())

	if _, err := s.contracts.WaitMined(ctx, tx); err != nil {
		return err
	}
	s.logger.Sugar().Infof("Success - %s", tx.Hash().Hex())
	setDisabled(ctrl, false)
	s.setLoading(false)

	count, err := s.readCount(ctx)
	if err != nil {
		return err
	}
	s.setCount(count)
	return nil
}

// GetAllTransactions replaces the projected record list with the ledger's contents.
func (s *Store) GetAllTransactions(ctx context.Context) {
	if s.wallet == nil {
		s.logger.Sugar().Infow("Ethereum is not present")
		return
	}
	reader, err := s.contracts.Reader()
	if err != nil {
		s.logger.Sugar().Errorw("Failed to bind ledger", zap.Error(err))
		return
	}
	raw, err := reader.GetAllTransactions(&bind.CallOpts{Context: ctx})
	if err != nil {
		s.logRequestError(err, "Failed to get transactions")
		return
	}
	projected := ProjectTransactions(raw, s.location)

	s.mu.Lock()
	s.state.Transactions = projected
	s.mu.Unlock()
	s.logger.Sugar().Debugw("Loaded transactions", zap.Int("count", len(projected)))
}

// CheckIfTransactionsExists reads the record count and persists it locally. Only
// local storage is written; the in-memory count changes after a send.
func (s *Store) CheckIfTransactionsExists(ctx context.Context) {
	if s.wallet == nil {
		return
	}
	count, err := s.readCount(ctx)
	if err != nil {
		s.logRequestError(err, "Failed to get transaction count")
		return
	}
	s.persistCount(count)
}

// CachedTransactionCount returns the count held in local storage.
func (s *Store) CachedTransactionCount() (uint64, bool) {
	return storage.LoadTransactionCount(s.storage)
}

// Run performs the initial sync and resyncs whenever a send changes the record count,
// until ctx is done. afterSync, when set, receives the state after each sync.
func (s *Store) Run(ctx context.Context, afterSync func(State)) error {
	for {
		s.sync(ctx)
		if afterSync != nil {
			afterSync(s.Snapshot())
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-s.countChanged:
		}
	}
}

// Sync runs one pass of the effect Run performs.
func (s *Store) Sync(ctx context.Context) {
	s.sync(ctx)
}

func (s *Store) sync(ctx context.Context) {
	s.CheckIfWalletIsConnect()
	s.CheckIfTransactionsExists(ctx)
	s.GetAllTransactions(ctx)
}

func (s *Store) readCount(ctx context.Context) (uint64, error) {
	reader, err := s.contracts.Reader()
	if err != nil {
		return 0, err
	}
	count, err := reader.GetTransactionCount(&bind.CallOpts{Context: ctx})
	if err != nil {
		return 0, err
	}
	if !count.IsUint64() {
		return 0, fmt.Errorf("transaction count %s out of range", count)
	}
	return count.Uint64(), nil
}

func (s *Store) persistCount(count uint64) {
	if err := storage.SaveTransactionCount(s.storage, count); err != nil {
		s.logger.Sugar().Warnw("Failed to persist transaction count", zap.Error(err))
	}
}

func (s *Store) setCount(count uint64) {
	s.persistCount(count)

	s.mu.Lock()
	changed := !s.state.TransactionCountKnown || s.state.TransactionCount != count
	s.state.TransactionCount = count
	s.state.TransactionCountKnown = true
	s.mu.Unlock()

	if changed {
		select {
		case s.countChanged <- struct{}{}:
		default:
		}
	}
}

func (s *Store) setLoading(loading bool) {
	s.mu.Lock()
	s.state.IsLoading = loading
	s.mu.Unlock()
}

func (s *Store) alert(message string) {
	s.logger.Sugar().Warnw(message)
	if s.alerter != nil {
		s.alerter.Alert(message)
	}
}

func (s *Store) logRequestError(err error, msg string) {
	if wallet.IsUserRejected(err) {
		s.logger.Sugar().Infof("Please connect to %s.", s.wallet.TargetBrand())
		return
	}
	s.logger.Sugar().Errorw(msg, zap.Error(err))
}

func setDisabled(ctrl Control, disabled bool) {
	if ctrl != nil {
		ctrl.SetDisabled(disabled)
	}
}

// ShortAddress abbreviates an address for display as 0x1234...abcd.
func ShortAddress(addr string) string {
	if len(addr) <= 10 {
		return addr
	}
	return addr[:6] + "..." + addr[len(addr)-4:]
}
