package dynamostore

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

const defaultRegion = "us-east-1"

// ClientConfig holds the connection settings. Static credentials are optional;
// without them the default AWS credential chain is used.
type ClientConfig struct {
	Region          string
	Endpoint        string // e.g. http://localhost:8000 for DynamoDB Local
	AccessKeyID     string
	SecretAccessKey string
}

// NewClient creates a DynamoDB client
func NewClient(ctx context.Context, cfg ClientConfig) (*dynamodb.Client, error) {
	region := cfg.Region
	if region == "" {
		region = defaultRegion
	}

	loadOpts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(region),
	}
	if cfg.AccessKeyID != "" && cfg.SecretAccessKey != "" {
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	return dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	}), nil
}
