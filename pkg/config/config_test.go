package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testContract = "0x1234567890123456789012345678901234567890"

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("CONTRACT_ADDRESS", testContract)
	t.Setenv("INFURA_API", "abc123")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "sepolia", cfg.Network)
	assert.Equal(t, "https://ethereum-rpc.publicnode.com", cfg.DefaultRPCURL)
	assert.Equal(t, ".txledger", cfg.StoragePath)
	assert.Equal(t, "https://sepolia.infura.io/v3/abc123", cfg.KeyedRPCURL())
	assert.Equal(t, testContract, cfg.Contract().Hex())
	assert.Empty(t, cfg.SignerPrivateKey)
}

func TestLoad_MissingContract(t *testing.T) {
	t.Setenv("CONTRACT_ADDRESS", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_InvalidContract(t *testing.T) {
	t.Setenv("CONTRACT_ADDRESS", "0xnothex")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid CONTRACT_ADDRESS")
}

func TestWalletEndpoints(t *testing.T) {
	cfg := &Config{
		ContractAddress: testContract,
		WalletProviders: []string{
			"isCoinbaseWallet=http://127.0.0.1:9545",
			" isMetaMask+isBraveWallet=http://127.0.0.1:8545 ",
		},
	}

	endpoints, err := cfg.WalletEndpoints()
	require.NoError(t, err)
	require.Len(t, endpoints, 2)

	assert.Equal(t, []string{"isCoinbaseWallet"}, endpoints[0].Flags)
	assert.Equal(t, "http://127.0.0.1:9545", endpoints[0].URL)
	assert.Equal(t, []string{"isMetaMask", "isBraveWallet"}, endpoints[1].Flags)
	assert.Equal(t, "http://127.0.0.1:8545", endpoints[1].URL)
}

func TestWalletEndpoints_Invalid(t *testing.T) {
	cfg := &Config{ContractAddress: testContract, WalletProviders: []string{"http://no-flag"}}

	_, err := cfg.WalletEndpoints()
	assert.Error(t, err)
	assert.Error(t, cfg.Validate())
}
