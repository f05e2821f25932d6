package provider

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/Layr-Labs/txledger-go/pkg/config"
	"github.com/Layr-Labs/txledger-go/pkg/wallet"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeClient struct {
	EthClientInterface
	chainIDCalls int
}

func (f *fakeClient) ChainID(context.Context) (*big.Int, error) {
	f.chainIDCalls++
	return big.NewInt(11155111), nil
}

type recordingDialer struct {
	urls   []string
	closed int
	client *fakeClient
	err    error
}

func (d *recordingDialer) dial(_ context.Context, url string) (EthClientInterface, func(), error) {
	d.urls = append(d.urls, url)
	if d.err != nil {
		return nil, nil, d.err
	}
	return d.client, func() { d.closed++ }, nil
}

func testConfig() *config.Config {
	return &config.Config{
		InfuraAPIKey:    "key123",
		Network:         "sepolia",
		DefaultRPCURL:   "https://ethereum-rpc.publicnode.com",
		ContractAddress: "0x1234567890123456789012345678901234567890",
	}
}

func metaMaskWallet(t *testing.T) *wallet.Wallet {
	m := wallet.NewMockInjected(t)
	m.On("Providers").Return(nil).Maybe()
	m.On("Flag", mock.AnythingOfType("string")).Return(func(name string) bool { return name == wallet.MetaMaskFlag }).Maybe()
	return wallet.Detect(m)
}

func TestResolve_NoWalletUsesDefaultProvider(t *testing.T) {
	d := &recordingDialer{client: &fakeClient{}}
	cfg := testConfig()
	cfg.SignerPrivateKey = "0xac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"

	p, err := ResolveWithDialer(context.Background(), cfg, nil, d.dial, zap.NewNop())
	require.NoError(t, err)

	assert.Equal(t, []string{"https://ethereum-rpc.publicnode.com"}, d.urls)
	assert.Nil(t, p.Signer)
	assert.Equal(t, cfg.DefaultRPCURL, p.RPCUrl)

	_, err = p.TransactOpts(context.Background())
	assert.ErrorIs(t, err, ErrNoSigner)

	p.Close()
	assert.Equal(t, 1, d.closed)
}

func TestResolve_WalletUsesKeyedProviderWithoutSigner(t *testing.T) {
	d := &recordingDialer{client: &fakeClient{}}

	p, err := ResolveWithDialer(context.Background(), testConfig(), metaMaskWallet(t), d.dial, zap.NewNop())
	require.NoError(t, err)

	assert.Equal(t, []string{"https://sepolia.infura.io/v3/key123"}, d.urls)
	assert.Nil(t, p.Signer)
}

func TestResolve_WalletWithSigningKey(t *testing.T) {
	d := &recordingDialer{client: &fakeClient{}}
	cfg := testConfig()
	cfg.SignerPrivateKey = "ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"

	p, err := ResolveWithDialer(context.Background(), cfg, metaMaskWallet(t), d.dial, zap.NewNop())
	require.NoError(t, err)
	require.NotNil(t, p.Signer)

	opts, err := p.TransactOpts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, common.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"), opts.From)

	// chain ID is cached after the first lookup
	_, err = p.TransactOpts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, d.client.chainIDCalls)
}

func TestResolve_InvalidSigningKeyClosesClient(t *testing.T) {
	d := &recordingDialer{client: &fakeClient{}}
	cfg := testConfig()
	cfg.SignerPrivateKey = "nothex"

	_, err := ResolveWithDialer(context.Background(), cfg, metaMaskWallet(t), d.dial, zap.NewNop())
	assert.ErrorContains(t, err, "failed to create signer")
	assert.Equal(t, 1, d.closed)
}

func TestResolve_DialError(t *testing.T) {
	d := &recordingDialer{err: errors.New("connection refused")}

	_, err := ResolveWithDialer(context.Background(), testConfig(), nil, d.dial, zap.NewNop())
	assert.ErrorContains(t, err, "connection refused")
}
