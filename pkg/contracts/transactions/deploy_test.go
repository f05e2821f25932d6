package transactions

import (
	"context"
	"math/big"
	"os"
	"path/filepath"
	"testing"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseArtifact_Hardhat(t *testing.T) {
	data := []byte(`{"contractName":"Transactions","abi":` + TransactionsABI + `,"bytecode":"0x6080604052"}`)

	art, err := ParseArtifact(data)
	require.NoError(t, err)
	assert.Equal(t, "Transactions", art.ContractName)
	assert.Equal(t, []byte{0x60, 0x80, 0x60, 0x40, 0x52}, art.Bytecode)
}

func TestParseArtifact_Foundry(t *testing.T) {
	data := []byte(`{"abi":` + TransactionsABI + `,"bytecode":{"object":"6080"}}`)

	art, err := ParseArtifact(data)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x60, 0x80}, art.Bytecode)
}

func TestParseArtifact_Errors(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr error
	}{
		{name: "empty bytecode", data: `{"bytecode":"0x"}`, wantErr: ErrEmptyBytecode},
		{name: "missing methods", data: `{"abi":[{"type":"function","name":"greet"}],"bytecode":"0x60"}`, wantErr: ErrArtifactMissing},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseArtifact([]byte(tt.data))
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	_, err := ParseArtifact([]byte(`not json`))
	assert.Error(t, err)
	_, err = ParseArtifact([]byte(`{"bytecode":"0xzz"}`))
	assert.Error(t, err)
}

func TestLoadArtifact(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Transactions.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"bytecode":"0x6080"}`), 0o600))

	art, err := LoadArtifact(path)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x60, 0x80}, art.Bytecode)

	_, err = LoadArtifact(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestDeployTransactions(t *testing.T) {
	backend := newFakeBackend(t)
	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	opts, err := bind.NewKeyedTransactorWithChainID(key, big.NewInt(31337))
	require.NoError(t, err)
	opts.Context = context.Background()

	address, tx, contract, err := DeployTransactions(opts, backend, []byte{0x60, 0x80})
	require.NoError(t, err)
	require.Len(t, backend.sent, 1)
	assert.Nil(t, tx.To())
	assert.Equal(t, crypto.CreateAddress(opts.From, tx.Nonce()), address)
	assert.Equal(t, address, contract.Address())

	_, _, _, err = DeployTransactions(opts, backend, nil)
	assert.ErrorIs(t, err, ErrEmptyBytecode)
}
