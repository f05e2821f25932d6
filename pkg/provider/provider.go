// Package provider resolves the network access the ledger client uses: a read-only
// JSON-RPC client and, when a signing key is configured, a signer bound to it.
// A Provider is built once at startup and passed to every component that talks to
// the network.
package provider

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"sync"

	"github.com/Layr-Labs/txledger-go/pkg/config"
	"github.com/Layr-Labs/txledger-go/pkg/txSigner"
	"github.com/Layr-Labs/txledger-go/pkg/wallet"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/ethclient"
	"go.uber.org/zap"
)

var (
	// ErrNoSigner is returned when a write is attempted on a read-only provider
	ErrNoSigner = errors.New("no signer configured")
)

// Dialer opens a client for an RPC URL. The returned func releases it.
type Dialer func(ctx context.Context, url string) (EthClientInterface, func(), error)

// DialEthClient is the default Dialer, backed by ethclient.
func DialEthClient(ctx context.Context, url string) (EthClientInterface, func(), error) {
	client, err := ethclient.DialContext(ctx, url)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to RPC URL %s: %w", url, err)
	}
	return client, client.Close, nil
}

// Provider is the resolved network access.
type Provider struct {
	// Client serves read-only queries and contract calls
	Client EthClientInterface
	// Signer is nil for read-only providers
	Signer txSigner.ITransactionSigner
	// RPCUrl is the endpoint Client is connected to
	RPCUrl string

	closer  func()
	mu      sync.Mutex
	chainID *big.Int
}

// Resolve builds the Provider for the detected wallet using the default dialer.
func Resolve(ctx context.Context, cfg *config.Config, w *wallet.Wallet, l *zap.Logger) (*Provider, error) {
	return ResolveWithDialer(ctx, cfg, w, DialEthClient, l)
}

// ResolveWithDialer builds the Provider for the detected wallet.
//
// Without a wallet the public default endpoint is used read-only. With a wallet the
// API-keyed endpoint is used, and a private key signer is bound to it when
// SignerPrivateKey is configured.
func ResolveWithDialer(ctx context.Context, cfg *config.Config, w *wallet.Wallet, dial Dialer, l *zap.Logger) (*Provider, error) {
	if w == nil {
		l.Sugar().Infow("No wallet detected; using read-only default provider",
			zap.String("rpcUrl", cfg.DefaultRPCURL),
		)
		client, closer, err := dial(ctx, cfg.DefaultRPCURL)
		if err != nil {
			return nil, err
		}
		return &Provider{Client: client, RPCUrl: cfg.DefaultRPCURL, closer: closer}, nil
	}

	url := cfg.KeyedRPCURL()
	client, closer, err := dial(ctx, url)
	if err != nil {
		return nil, err
	}
	p := &Provider{Client: client, RPCUrl: url, closer: closer}

	if cfg.SignerPrivateKey != "" {
		signer, err := txSigner.NewPrivateKeySigner(cfg.SignerPrivateKey)
		if err != nil {
			p.Close()
			return nil, fmt.Errorf("failed to create signer: %w", err)
		}
		p.Signer = signer

		addr, _ := signer.GetAddress()
		l.Sugar().Infow("Using local signer for ledger writes",
			zap.String("signer", addr.String()),
		)
	}

	l.Sugar().Infow("Resolved keyed provider",
		zap.String("network", cfg.Network),
		zap.String("wallet", w.Brand()),
		zap.Bool("signer", p.Signer != nil),
	)
	return p, nil
}

// ChainID returns the connected chain's ID, fetched once.
func (p *Provider) ChainID(ctx context.Context) (*big.Int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.chainID != nil {
		return p.chainID, nil
	}
	id, err := p.Client.ChainID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get chain ID: %w", err)
	}
	p.chainID = id
	return id, nil
}

// TransactOpts returns signing options for the connected chain.
func (p *Provider) TransactOpts(ctx context.Context) (*bind.TransactOpts, error) {
	if p.Signer == nil {
		return nil, ErrNoSigner
	}
	chainID, err := p.ChainID(ctx)
	if err != nil {
		return nil, err
	}
	return p.Signer.GetTransactOpts(ctx, chainID)
}

// Close releases the underlying client.
func (p *Provider) Close() {
	if p.closer != nil {
		p.closer()
	}
}
