// Package wallet detects and talks to an injected EIP-1193 style wallet.
// A wallet is anything exposing the capability set {Request, IsConnected, SelectedAddress}
// together with brand flags such as "isMetaMask". When several wallets are installed the
// root object lists them through Providers and Detect picks one by brand priority.
package wallet

import (
	"context"
	"errors"

	"github.com/ethereum/go-ethereum/rpc"
)

const (
	// UserRejectedRequestCode is the EIP-1193 code for a prompt the user declined
	UserRejectedRequestCode = 4001

	MetaMaskFlag       = "isMetaMask"
	CoinbaseWalletFlag = "isCoinbaseWallet"
)

// Injected is the wallet object a host environment exposes.
type Injected interface {
	// Request performs a JSON-RPC request through the wallet and decodes the response into result
	Request(ctx context.Context, result interface{}, method string, params ...interface{}) error
	IsConnected() bool
	// SelectedAddress is the account the wallet currently exposes, empty if none
	SelectedAddress() string
	// Flag reports a brand flag, e.g. Flag("isMetaMask")
	Flag(name string) bool
	// Providers lists sub-providers when several wallets coexist, nil otherwise
	Providers() []Injected
}

// BrandProbe recognises one wallet brand.
type BrandProbe struct {
	Name  string
	Match func(Injected) bool
}

// FlagProbe builds a probe that matches on a single brand flag.
func FlagProbe(name, flag string) BrandProbe {
	return BrandProbe{
		Name:  name,
		Match: func(i Injected) bool { return i.Flag(flag) },
	}
}

var (
	MetaMask       = FlagProbe("MetaMask", MetaMaskFlag)
	CoinbaseWallet = FlagProbe("CoinbaseWallet", CoinbaseWalletFlag)

	// DefaultProbes is ordered by priority; the first entry is the target brand
	DefaultProbes = []BrandProbe{MetaMask, CoinbaseWallet}
)

// RequestError is an EIP-1193 provider error. It satisfies rpc.Error so it is
// indistinguishable from an error returned over JSON-RPC.
type RequestError struct {
	Code    int
	Message string
}

func (e *RequestError) Error() string  { return e.Message }
func (e *RequestError) ErrorCode() int { return e.Code }

var _ rpc.Error = (*RequestError)(nil)

// ErrorCode extracts the JSON-RPC / EIP-1193 code from err.
func ErrorCode(err error) (int, bool) {
	var rpcErr rpc.Error
	if errors.As(err, &rpcErr) {
		return rpcErr.ErrorCode(), true
	}
	return 0, false
}

// IsUserRejected reports whether err is the wallet's user rejection error.
func IsUserRejected(err error) bool {
	code, ok := ErrorCode(err)
	return ok && code == UserRejectedRequestCode
}
