package wallet

import (
	"context"
	"strings"

	"github.com/Layr-Labs/txledger-go/pkg/util"
)

// Wallet is the injected object Detect selected, paired with the brand it was expected to be.
type Wallet struct {
	injected Injected
	target   BrandProbe
	brand    string
}

// Detect selects the wallet to use from the host's injected root object.
// A nil root yields a nil Wallet, which callers treat as a valid read-only state.
//
// When root lists sub-providers, probes are evaluated in order and the first candidate
// matching the highest priority probe wins; root itself is used if nothing matches.
// The first probe is the target brand checked by IsExpectedBrand. With no probes
// DefaultProbes is used.
func Detect(root Injected, probes ...BrandProbe) *Wallet {
	if root == nil {
		return nil
	}
	if len(probes) == 0 {
		probes = DefaultProbes
	}

	selected := root
	if candidates := root.Providers(); len(candidates) > 0 {
		for _, probe := range probes {
			if match, ok := util.Find(candidates, probe.Match); ok {
				selected = match
				break
			}
		}
	}

	w := &Wallet{injected: selected, target: probes[0]}
	if probe, ok := util.Find(probes, func(p BrandProbe) bool { return p.Match(selected) }); ok {
		w.brand = probe.Name
	}
	return w
}

// Injected returns the selected wallet object.
func (w *Wallet) Injected() Injected {
	return w.injected
}

// Brand is the name of the first probe the selected wallet matches, empty if none.
func (w *Wallet) Brand() string {
	return w.brand
}

// TargetBrand is the name of the brand the wallet is expected to be.
func (w *Wallet) TargetBrand() string {
	if w == nil {
		return DefaultProbes[0].Name
	}
	return w.target.Name
}

// IsExpectedBrand reports whether the selected wallet carries the target brand flag.
func (w *Wallet) IsExpectedBrand() bool {
	return w != nil && w.target.Match(w.injected)
}

// Connected reports whether the wallet is the expected brand and connected.
func (w *Wallet) Connected() bool {
	return w.IsExpectedBrand() && w.injected.IsConnected()
}

// Account returns the wallet's selected address, lowercased, when connected.
func (w *Wallet) Account() (string, bool) {
	if !w.Connected() {
		return "", false
	}
	addr := w.injected.SelectedAddress()
	if addr == "" {
		return "", false
	}
	return strings.ToLower(addr), true
}

// RequestAccounts asks the wallet for account access (eth_requestAccounts).
func (w *Wallet) RequestAccounts(ctx context.Context) ([]string, error) {
	var accounts []string
	if err := w.injected.Request(ctx, &accounts, "eth_requestAccounts"); err != nil {
		return nil, err
	}
	return util.Map(accounts, func(a string, _ uint64) string { return strings.ToLower(a) }), nil
}

// TransactionArgs are the eth_sendTransaction parameters the ledger uses.
type TransactionArgs struct {
	From  string `json:"from"`
	To    string `json:"to"`
	Gas   string `json:"gas,omitempty"`
	Value string `json:"value,omitempty"`
	Data  string `json:"data,omitempty"`
}

// SendTransaction submits a transaction for the wallet to sign and broadcast and returns its hash.
func (w *Wallet) SendTransaction(ctx context.Context, args TransactionArgs) (string, error) {
	var hash string
	if err := w.injected.Request(ctx, &hash, "eth_sendTransaction", args); err != nil {
		return "", err
	}
	return hash, nil
}
