package main

import (
	"context"
	"fmt"
	"os"

	"github.com/Layr-Labs/txledger-go/pkg/contracts/transactions"
	"github.com/Layr-Labs/txledger-go/pkg/logger"
	"github.com/Layr-Labs/txledger-go/pkg/txSigner"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/ethclient"
	cli "github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

func main() {
	app := &cli.App{
		Name:  "deploy",
		Usage: "Deploy the Transactions ledger contract",
		Description: `Deploys the Transactions contract from a compiled Hardhat or Foundry artifact
and prints the address it was deployed to.`,
		Version: "1.0.0",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "debug",
				Aliases: []string{"d"},
				Usage:   "Enable debug logging",
				EnvVars: []string{"DEBUG"},
			},
			&cli.StringFlag{
				Name:     "rpc-url",
				Usage:    "JSON-RPC endpoint of the target network",
				Required: true,
				EnvVars:  []string{"RPC_URL"},
			},
			&cli.StringFlag{
				Name:    "artifact",
				Aliases: []string{"a"},
				Usage:   "Path to the compiled Transactions artifact",
				Value:   "artifacts/contracts/Transactions.sol/Transactions.json",
				EnvVars: []string{"ARTIFACT_PATH"},
			},
			// Transaction signing options
			&cli.StringFlag{
				Name:    "tx-private-key",
				Usage:   "Private key for transaction signing (hex format, with or without 0x prefix)",
				EnvVars: []string{"TX_PRIVATE_KEY", "SIGNER_PRIVATE_KEY"},
			},
			&cli.StringFlag{
				Name:    "tx-aws-kms-key-id",
				Usage:   "AWS KMS key ID for transaction signing",
				EnvVars: []string{"TX_AWS_KMS_KEY_ID"},
			},
			&cli.StringFlag{
				Name:    "tx-aws-secret-name",
				Usage:   "AWS Secrets Manager secret name containing the transaction signing key",
				EnvVars: []string{"TX_AWS_SECRET_NAME"},
			},
			&cli.StringFlag{
				Name:    "tx-aws-region",
				Usage:   "AWS region for the transaction signing KMS key or secret",
				Value:   "us-east-1",
				EnvVars: []string{"TX_AWS_REGION"},
			},
		},
		Before: validateFlags,
		Action: deployAction,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func validateFlags(c *cli.Context) error {
	txOptions := 0
	for _, name := range []string{"tx-private-key", "tx-aws-kms-key-id", "tx-aws-secret-name"} {
		if c.String(name) != "" {
			txOptions++
		}
	}

	if txOptions == 0 {
		return fmt.Errorf("must specify one of: --tx-private-key, --tx-aws-kms-key-id, or --tx-aws-secret-name for transaction signing")
	}
	if txOptions > 1 {
		return fmt.Errorf("can only specify one transaction signing option")
	}
	return nil
}

func setupLogger(c *cli.Context) (*zap.Logger, error) {
	return logger.NewLogger(&logger.LoggerConfig{
		Debug: c.Bool("debug"),
	})
}

func setupTransactionSigner(ctx context.Context, c *cli.Context) (txSigner.ITransactionSigner, error) {
	if privateKey := c.String("tx-private-key"); privateKey != "" {
		return txSigner.NewPrivateKeySigner(privateKey)
	}

	if kmsKeyID := c.String("tx-aws-kms-key-id"); kmsKeyID != "" {
		return txSigner.NewAWSKMSSigner(ctx, kmsKeyID, c.String("tx-aws-region"))
	}

	if secretName := c.String("tx-aws-secret-name"); secretName != "" {
		return txSigner.NewAWSSecretsManagerSigner(ctx, &txSigner.AWSSecretsManagerConfig{
			Region:     c.String("tx-aws-region"),
			SecretName: secretName,
		})
	}

	return nil, fmt.Errorf("no transaction signing method configured")
}

func deployAction(c *cli.Context) error {
	l, err := setupLogger(c)
	if err != nil {
		return fmt.Errorf("failed to setup logger: %w", err)
	}
	defer func() { _ = l.Sync() }()

	ctx := c.Context

	artifact, err := transactions.LoadArtifact(c.String("artifact"))
	if err != nil {
		return err
	}

	signer, err := setupTransactionSigner(ctx, c)
	if err != nil {
		return fmt.Errorf("failed to setup transaction signer: %w", err)
	}

	client, err := ethclient.DialContext(ctx, c.String("rpc-url"))
	if err != nil {
		return fmt.Errorf("failed to connect to RPC URL %s: %w", c.String("rpc-url"), err)
	}
	defer client.Close()

	chainID, err := client.ChainID(ctx)
	if err != nil {
		return fmt.Errorf("failed to get chain ID: %w", err)
	}

	opts, err := signer.GetTransactOpts(ctx, chainID)
	if err != nil {
		return fmt.Errorf("failed to get transaction options: %w", err)
	}

	l.Sugar().Infow("Deploying Transactions contract",
		zap.String("artifact", artifact.ContractName),
		zap.String("deployer", opts.From.Hex()),
		zap.Uint64("chainId", chainID.Uint64()),
	)

	address, tx, _, err := transactions.DeployTransactions(opts, client, artifact.Bytecode)
	if err != nil {
		return err
	}
	l.Sugar().Infow("Deployment transaction sent", zap.String("transactionHash", tx.Hash().Hex()))

	if _, err := bind.WaitDeployed(ctx, client, tx); err != nil {
		return fmt.Errorf("failed waiting for deployment %s: %w", tx.Hash().Hex(), err)
	}

	fmt.Printf("Transactions contract address: %s\n", address.Hex())
	return nil
}
