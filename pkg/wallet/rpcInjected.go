package wallet

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/Layr-Labs/txledger-go/pkg/config"
	"github.com/ethereum/go-ethereum/rpc"
	"go.uber.org/zap"
)

// RPCInjected is an Injected wallet reached over JSON-RPC, such as a wallet bridge or a
// node holding managed accounts. It tracks the selected address from account responses.
type RPCInjected struct {
	client *rpc.Client
	flags  map[string]bool

	mu       sync.RWMutex
	selected string
	closed   bool
}

var _ Injected = (*RPCInjected)(nil)

// NewRPCInjected wraps an rpc.Client carrying the given brand flags.
func NewRPCInjected(client *rpc.Client, flags ...string) *RPCInjected {
	set := make(map[string]bool, len(flags))
	for _, f := range flags {
		set[f] = true
	}
	return &RPCInjected{client: client, flags: set}
}

// DialInjected connects to a wallet endpoint.
func DialInjected(ctx context.Context, url string, flags ...string) (*RPCInjected, error) {
	client, err := rpc.DialContext(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to wallet at %s: %w", url, err)
	}
	return NewRPCInjected(client, flags...), nil
}

func (r *RPCInjected) Request(ctx context.Context, result interface{}, method string, params ...interface{}) error {
	var raw json.RawMessage
	if err := r.client.CallContext(ctx, &raw, method, params...); err != nil {
		return err
	}

	switch method {
	case "eth_requestAccounts", "eth_accounts":
		var accounts []string
		if err := json.Unmarshal(raw, &accounts); err != nil {
			return fmt.Errorf("failed to decode %s response: %w", method, err)
		}
		r.mu.Lock()
		if len(accounts) > 0 {
			r.selected = accounts[0]
		} else {
			r.selected = ""
		}
		r.mu.Unlock()
	}

	if result == nil {
		return nil
	}
	return json.Unmarshal(raw, result)
}

// IsConnected reports whether the endpoint is open and has exposed an account.
func (r *RPCInjected) IsConnected() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return !r.closed && r.selected != ""
}

func (r *RPCInjected) SelectedAddress() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.selected
}

func (r *RPCInjected) Flag(name string) bool {
	return r.flags[name]
}

func (r *RPCInjected) Providers() []Injected {
	return nil
}

// Refresh re-reads the exposed accounts without prompting (eth_accounts).
func (r *RPCInjected) Refresh(ctx context.Context) error {
	return r.Request(ctx, nil, "eth_accounts")
}

func (r *RPCInjected) Close() {
	r.mu.Lock()
	r.closed = true
	r.mu.Unlock()
	r.client.Close()
}

// MultiInjected is the root object when several wallets are installed. It behaves as
// its primary wallet and lists every wallet through Providers.
type MultiInjected struct {
	Injected
	providers []Injected
}

// NewMultiInjected returns a root over providers; the first one is primary.
func NewMultiInjected(providers ...Injected) *MultiInjected {
	return &MultiInjected{Injected: providers[0], providers: providers}
}

func (m *MultiInjected) Providers() []Injected {
	return m.providers
}

// DialFromConfig connects to every configured wallet endpoint and refreshes their
// accounts. It returns a nil Injected when no endpoint is configured. An endpoint
// whose eth_accounts call fails stays dialed but disconnected.
func DialFromConfig(ctx context.Context, endpoints []config.WalletEndpoint, l *zap.Logger) (Injected, func(), error) {
	if l == nil {
		l = zap.NewNop()
	}
	if len(endpoints) == 0 {
		return nil, func() {}, nil
	}

	dialed := make([]*RPCInjected, 0, len(endpoints))
	closeAll := func() {
		for _, d := range dialed {
			d.Close()
		}
	}

	providers := make([]Injected, 0, len(endpoints))
	for _, ep := range endpoints {
		inj, err := DialInjected(ctx, ep.URL, ep.Flags...)
		if err != nil {
			closeAll()
			return nil, func() {}, err
		}
		dialed = append(dialed, inj)
		// auto-connect: an endpoint that already exposes accounts counts as connected
		if err := inj.Refresh(ctx); err != nil {
			l.Sugar().Debugw("Wallet auto-connect failed",
				zap.String("url", ep.URL),
				zap.Strings("flags", ep.Flags),
				zap.Error(err),
			)
		}
		providers = append(providers, inj)
	}

	if len(providers) == 1 {
		return providers[0], closeAll, nil
	}
	return NewMultiInjected(providers...), closeAll, nil
}
