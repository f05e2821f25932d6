package txSigner

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/secretsmanager"
	"github.com/aws/aws-sdk-go/service/secretsmanager/secretsmanageriface"
)

// AWSSecretsManagerConfig identifies the secret holding a transaction signing key.
type AWSSecretsManagerConfig struct {
	// Region specifies the AWS region where the secret is stored
	Region string
	// SecretName is the name or ARN of the secret
	SecretName string
}

type privateKeySecret struct {
	PrivateKey string `json:"privateKey"`
}

// NewAWSSecretsManagerSigner loads an ECDSA private key from AWS Secrets Manager and
// returns a PrivateKeySigner for it. The secret string is either the hex key itself or
// a JSON object of the form {"privateKey": "0x..."}.
func NewAWSSecretsManagerSigner(ctx context.Context, cfg *AWSSecretsManagerConfig) (*PrivateKeySigner, error) {
	sess, err := session.NewSession(&aws.Config{
		Region: aws.String(cfg.Region),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS session: %w", err)
	}
	return NewAWSSecretsManagerSignerWithClient(ctx, secretsmanager.New(sess), cfg.SecretName)
}

// NewAWSSecretsManagerSignerWithClient is NewAWSSecretsManagerSigner over an existing client.
func NewAWSSecretsManagerSignerWithClient(ctx context.Context, client secretsmanageriface.SecretsManagerAPI, secretName string) (*PrivateKeySigner, error) {
	result, err := client.GetSecretValueWithContext(ctx, &secretsmanager.GetSecretValueInput{
		SecretId:     aws.String(secretName),
		VersionStage: aws.String("AWSCURRENT"),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get secret %s: %w", secretName, err)
	}
	if result.SecretString == nil {
		return nil, fmt.Errorf("secret string is nil")
	}

	key := strings.TrimSpace(*result.SecretString)
	if strings.HasPrefix(key, "{") {
		var secret privateKeySecret
		if err := json.Unmarshal([]byte(key), &secret); err != nil {
			return nil, fmt.Errorf("failed to parse secret JSON: %w", err)
		}
		key = secret.PrivateKey
	}
	return NewPrivateKeySigner(key)
}
