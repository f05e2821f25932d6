package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Layr-Labs/txledger-go/pkg/config"
	"github.com/Layr-Labs/txledger-go/pkg/ledger"
	"github.com/Layr-Labs/txledger-go/pkg/logger"
	"github.com/Layr-Labs/txledger-go/pkg/provider"
	"github.com/Layr-Labs/txledger-go/pkg/storage"
	"github.com/Layr-Labs/txledger-go/pkg/wallet"
	cli "github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

func main() {
	app := &cli.App{
		Name:  "ledger",
		Usage: "Send ETH and browse the on-chain transaction ledger",
		Description: `The ledger CLI connects to a wallet, transfers ETH while recording a message
and keyword on the Transactions contract, and lists the recorded transfers.
It is configured through the environment (CONTRACT_ADDRESS, INFURA_API,
WALLET_PROVIDERS, SIGNER_PRIVATE_KEY, ...).`,
		Version: "1.0.0",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "debug",
				Aliases: []string{"d"},
				Usage:   "Enable debug logging",
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "connect",
				Usage:  "Request account access from the wallet",
				Action: connectAction,
			},
			{
				Name:  "send",
				Usage: "Transfer ETH and record it on the ledger",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "to", Usage: "Receiver address", Required: true},
					&cli.StringFlag{Name: "amount", Usage: "Amount in ETH, e.g. 0.01", Required: true},
					&cli.StringFlag{Name: "keyword", Usage: "Keyword stored with the record"},
					&cli.StringFlag{Name: "message", Usage: "Message stored with the record"},
				},
				Action: sendAction,
			},
			{
				Name:    "list",
				Aliases: []string{"ls"},
				Usage:   "List every recorded transaction",
				Action:  listAction,
			},
			{
				Name:   "count",
				Usage:  "Print the number of recorded transactions",
				Action: countAction,
			},
			{
				Name:   "watch",
				Usage:  "Keep the local state in sync until interrupted",
				Action: watchAction,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// session is everything a command needs; close releases it in reverse order.
type session struct {
	cfg     *config.Config
	logger  *zap.Logger
	store   *ledger.Store
	closers []func()
}

func (s *session) close() {
	for i := len(s.closers) - 1; i >= 0; i-- {
		s.closers[i]()
	}
	_ = s.logger.Sync()
}

func setupSession(ctx context.Context, c *cli.Context) (*session, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	l, err := logger.NewLogger(&logger.LoggerConfig{
		Debug:   cfg.Debug || c.Bool("debug"),
		Console: logger.IsTerminal(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}
	s := &session{cfg: cfg, logger: l}

	endpoints, err := cfg.WalletEndpoints()
	if err != nil {
		return nil, err
	}
	injected, closeWallets, err := wallet.DialFromConfig(ctx, endpoints, l)
	if err != nil {
		return nil, fmt.Errorf("failed to connect wallet: %w", err)
	}
	s.closers = append(s.closers, closeWallets)

	w := wallet.Detect(injected)

	p, err := provider.Resolve(ctx, cfg, w, l)
	if err != nil {
		s.close()
		return nil, fmt.Errorf("failed to resolve provider: %w", err)
	}
	s.closers = append(s.closers, p.Close)

	kv, err := storage.NewLevelDB(cfg.StoragePath)
	if err != nil {
		s.close()
		return nil, err
	}
	s.closers = append(s.closers, func() { _ = kv.Close() })

	store, err := ledger.NewStore(&ledger.Config{}, ledger.Dependencies{
		Wallet:    w,
		Contracts: ledger.NewProviderContracts(cfg.Contract(), p, l),
		Storage:   kv,
		Alerter: ledger.AlerterFunc(func(message string) {
			fmt.Fprintln(os.Stderr, message)
		}),
	}, l)
	if err != nil {
		s.close()
		return nil, err
	}
	s.store = store
	return s, nil
}

func connectAction(c *cli.Context) error {
	s, err := setupSession(c.Context, c)
	if err != nil {
		return err
	}
	defer s.close()

	s.store.ConnectWallet(c.Context, nil)
	snap := s.store.Snapshot()
	if !snap.HasAccount() {
		return errors.New("wallet not connected")
	}
	fmt.Printf("Connected account: %s\n", snap.CurrentAccount)
	return nil
}

func sendAction(c *cli.Context) error {
	s, err := setupSession(c.Context, c)
	if err != nil {
		return err
	}
	defer s.close()

	s.store.CheckIfWalletIsConnect()
	if !s.store.Snapshot().HasAccount() {
		s.store.ConnectWallet(c.Context, nil)
	}

	s.store.HandleChange(ledger.FieldAddressTo, c.String("to"))
	s.store.HandleChange(ledger.FieldAmount, c.String("amount"))
	s.store.HandleChange(ledger.FieldKeyword, c.String("keyword"))
	s.store.HandleChange(ledger.FieldMessage, c.String("message"))

	if err := s.store.SendTransaction(c.Context, nil); err != nil {
		return err
	}
	fmt.Printf("Transaction count: %d\n", s.store.Snapshot().TransactionCount)
	return nil
}

func listAction(c *cli.Context) error {
	s, err := setupSession(c.Context, c)
	if err != nil {
		return err
	}
	defer s.close()

	s.store.Sync(c.Context)
	printTransactions(s.store.Snapshot())
	return nil
}

func countAction(c *cli.Context) error {
	s, err := setupSession(c.Context, c)
	if err != nil {
		return err
	}
	defer s.close()

	s.store.CheckIfTransactionsExists(c.Context)
	count, ok := s.store.CachedTransactionCount()
	if !ok {
		return errors.New("transaction count unavailable")
	}
	fmt.Println(count)
	return nil
}

func watchAction(c *cli.Context) error {
	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	s, err := setupSession(ctx, c)
	if err != nil {
		return err
	}
	defer s.close()

	err = s.store.Run(ctx, func(state ledger.State) {
		s.logger.Sugar().Infow("Ledger synced",
			zap.String("account", state.CurrentAccount),
			zap.Uint64("transactionCount", state.TransactionCount),
			zap.Int("loaded", len(state.Transactions)),
		)
	})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func printTransactions(state ledger.State) {
	if state.HasAccount() {
		fmt.Printf("Account: %s\n", ledger.ShortAddress(state.CurrentAccount))
	}
	if len(state.Transactions) == 0 {
		fmt.Println("No transactions recorded")
		return
	}
	for i := len(state.Transactions) - 1; i >= 0; i-- {
		tx := state.Transactions[i]
		fmt.Printf("%s  %s -> %s  %g ETH  [%s] %s\n",
			tx.Timestamp,
			ledger.ShortAddress(tx.AddressFrom),
			ledger.ShortAddress(tx.AddressTo),
			tx.Amount,
			tx.Keyword,
			tx.Message,
		)
	}
}
