package wallet

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var _ Injected = (*MockInjected)(nil)

// newBrandedMock returns a mock carrying the given flags and no sub-providers.
func newBrandedMock(t *testing.T, flags ...string) *MockInjected {
	m := NewMockInjected(t)
	set := map[string]bool{}
	for _, f := range flags {
		set[f] = true
	}
	m.On("Flag", mock.AnythingOfType("string")).Return(func(name string) bool { return set[name] }).Maybe()
	m.On("Providers").Return(nil).Maybe()
	return m
}

func TestDetect_NoWallet(t *testing.T) {
	w := Detect(nil)
	assert.Nil(t, w)
	assert.False(t, w.IsExpectedBrand())
	assert.False(t, w.Connected())

	_, ok := w.Account()
	assert.False(t, ok)
}

func TestDetect_SingleInjected(t *testing.T) {
	mm := newBrandedMock(t, MetaMaskFlag)
	mm.On("IsConnected").Return(true)
	mm.On("SelectedAddress").Return("0xABCDEF0000000000000000000000000000000001")

	w := Detect(mm)
	require.NotNil(t, w)
	assert.Same(t, mm, w.Injected())
	assert.Equal(t, "MetaMask", w.Brand())
	assert.True(t, w.IsExpectedBrand())

	account, ok := w.Account()
	assert.True(t, ok)
	assert.Equal(t, "0xabcdef0000000000000000000000000000000001", account)
}

func TestDetect_WrongBrandIsNotConnected(t *testing.T) {
	cb := newBrandedMock(t, CoinbaseWalletFlag)

	w := Detect(cb)
	require.NotNil(t, w)
	assert.Equal(t, "CoinbaseWallet", w.Brand())
	assert.False(t, w.IsExpectedBrand())
	assert.False(t, w.Connected())
}

func TestDetect_MultiProviderPicksTargetBrand(t *testing.T) {
	cb := newBrandedMock(t, CoinbaseWalletFlag)
	mm := newBrandedMock(t, MetaMaskFlag)

	root := NewMultiInjected(cb, mm)
	w := Detect(root)

	require.NotNil(t, w)
	assert.Same(t, mm, w.Injected())
	assert.True(t, w.IsExpectedBrand())
}

func TestDetect_MultiProviderFallsBackByPriority(t *testing.T) {
	other := newBrandedMock(t, "isRabby")
	cb := newBrandedMock(t, CoinbaseWalletFlag)

	w := Detect(NewMultiInjected(other, cb))
	require.NotNil(t, w)
	assert.Same(t, cb, w.Injected())
	assert.False(t, w.IsExpectedBrand())
}

func TestDetect_MultiProviderNoMatchUsesRoot(t *testing.T) {
	a := newBrandedMock(t, "isRabby")
	b := newBrandedMock(t, "isPhantom")

	root := NewMultiInjected(a, b)
	w := Detect(root)
	require.NotNil(t, w)
	assert.Same(t, root, w.Injected())
	assert.Equal(t, "", w.Brand())
}

func TestDetect_CustomProbes(t *testing.T) {
	rabby := newBrandedMock(t, "isRabby")
	mm := newBrandedMock(t, MetaMaskFlag)

	w := Detect(NewMultiInjected(mm, rabby), FlagProbe("Rabby", "isRabby"), MetaMask)
	require.NotNil(t, w)
	assert.Same(t, rabby, w.Injected())
	assert.True(t, w.IsExpectedBrand())
}

func TestWallet_RequestAccounts(t *testing.T) {
	mm := newBrandedMock(t, MetaMaskFlag)
	mm.On("Request", mock.Anything, mock.AnythingOfType("*[]string"), "eth_requestAccounts").
		Run(func(args mock.Arguments) {
			out := args.Get(1).(*[]string)
			*out = []string{"0xAA00000000000000000000000000000000000001"}
		}).
		Return(nil)

	accounts, err := Detect(mm).RequestAccounts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"0xaa00000000000000000000000000000000000001"}, accounts)
}

func TestWallet_SendTransaction(t *testing.T) {
	mm := newBrandedMock(t, MetaMaskFlag)
	args := TransactionArgs{From: "0x01", To: "0x02", Gas: "0x5208", Value: "0x0"}
	mm.On("Request", mock.Anything, mock.AnythingOfType("*string"), "eth_sendTransaction", args).
		Run(func(a mock.Arguments) {
			*a.Get(1).(*string) = "0xhash"
		}).
		Return(nil)

	hash, err := Detect(mm).SendTransaction(context.Background(), args)
	require.NoError(t, err)
	assert.Equal(t, "0xhash", hash)
}

func TestIsUserRejected(t *testing.T) {
	rejected := &RequestError{Code: UserRejectedRequestCode, Message: "User rejected the request."}

	assert.True(t, IsUserRejected(rejected))
	assert.True(t, IsUserRejected(fmt.Errorf("wrapped: %w", rejected)))
	assert.False(t, IsUserRejected(&RequestError{Code: -32603, Message: "internal"}))
	assert.False(t, IsUserRejected(errors.New("plain")))
	assert.False(t, IsUserRejected(nil))

	code, ok := ErrorCode(rejected)
	assert.True(t, ok)
	assert.Equal(t, 4001, code)
}

func TestWallet_TargetBrand(t *testing.T) {
	var none *Wallet
	assert.Equal(t, "MetaMask", none.TargetBrand())

	w := Detect(newBrandedMock(t), FlagProbe("Rabby", "isRabby"))
	assert.Equal(t, "Rabby", w.TargetBrand())
}
