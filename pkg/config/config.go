// Package config loads the ledger client's configuration from the process environment.
package config

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/kelseyhightower/envconfig"
)

// Config contains all configuration parameters for the ledger client.
type Config struct {
	// InfuraAPIKey selects the keyed JSON-RPC endpoint used whenever a wallet is present
	InfuraAPIKey string `envconfig:"INFURA_API"`
	// SignerPrivateKey is optional; when set, ledger writes are signed locally with it
	SignerPrivateKey string `envconfig:"SIGNER_PRIVATE_KEY"`
	Network          string `envconfig:"NETWORK" default:"sepolia"`
	DefaultRPCURL    string `envconfig:"DEFAULT_RPC_URL" default:"https://ethereum-rpc.publicnode.com"`
	ContractAddress  string `envconfig:"CONTRACT_ADDRESS" required:"true"`
	// WalletProviders lists injected wallet endpoints as "flag=url", e.g. "isMetaMask=http://127.0.0.1:8545"
	WalletProviders []string `envconfig:"WALLET_PROVIDERS"`
	StoragePath     string   `envconfig:"STORAGE_PATH" default:".txledger"`
	Debug           bool     `envconfig:"DEBUG"`
}

// WalletEndpoint is one parsed WALLET_PROVIDERS entry.
type WalletEndpoint struct {
	Flags []string
	URL   string
}

// Load processes environment variables into a Config and validates it.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := envconfig.Process("", cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks field formats that envconfig cannot express.
func (c *Config) Validate() error {
	if !common.IsHexAddress(c.ContractAddress) {
		return fmt.Errorf("invalid CONTRACT_ADDRESS %q", c.ContractAddress)
	}
	if _, err := c.WalletEndpoints(); err != nil {
		return err
	}
	return nil
}

// Contract returns the configured ledger contract address.
func (c *Config) Contract() common.Address {
	return common.HexToAddress(c.ContractAddress)
}

// KeyedRPCURL returns the API-keyed endpoint for the configured network.
func (c *Config) KeyedRPCURL() string {
	return fmt.Sprintf("https://%s.infura.io/v3/%s", c.Network, c.InfuraAPIKey)
}

// WalletEndpoints parses WalletProviders. A single entry may carry several brand
// flags separated by '+', e.g. "isMetaMask+isBraveWallet=http://...".
func (c *Config) WalletEndpoints() ([]WalletEndpoint, error) {
	endpoints := make([]WalletEndpoint, 0, len(c.WalletProviders))
	for _, entry := range c.WalletProviders {
		flags, url, ok := strings.Cut(strings.TrimSpace(entry), "=")
		if !ok || flags == "" || url == "" {
			return nil, fmt.Errorf("invalid wallet provider %q (expected format: 'flag=url')", entry)
		}
		endpoints = append(endpoints, WalletEndpoint{
			Flags: strings.Split(flags, "+"),
			URL:   url,
		})
	}
	return endpoints, nil
}
