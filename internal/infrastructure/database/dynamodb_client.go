package database

import (
	"context"
	"errors"
	"fmt"

	"shiv_accounts/internal/infrastructure/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/sirupsen/logrus"
)

// TableAPI is the subset of *dynamodb.Client needed to provision tables.
type TableAPI interface {
	DescribeTable(ctx context.Context, params *dynamodb.DescribeTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error)
	CreateTable(ctx context.Context, params *dynamodb.CreateTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error)
}

// ConnectDynamoDB creates a DynamoDB client from the aws section of the config.
//
// Local DynamoDB does not validate credentials, but the AWS SDK requires them,
// so static keys (default "local") are always supplied. When an endpoint is
// configured (e.g. http://dynamodb:8000) it replaces the regional one.
func ConnectDynamoDB(ctx context.Context, cfg *config.Config) (*dynamodb.Client, error) {
	awsCfg, err := NewAWSConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create dynamodb config: %w", err)
	}
	return dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		if cfg.AWS.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.AWS.Endpoint)
		}
	}), nil
}

func NewAWSConfig(ctx context.Context, cfg *config.Config) (aws.Config, error) {
	creds := credentials.NewStaticCredentialsProvider(cfg.AWS.AccessKeyID, cfg.AWS.SecretAccessKey, "")
	return awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.AWS.Region),
		awsconfig.WithCredentialsProvider(creds),
	)
}

// TableNames lists every table the service reads and writes.
func TableNames(cfg *config.Config) []string {
	return []string{
		cfg.Tables.Contacts,
		cfg.Tables.Products,
		cfg.Tables.Taxes,
		cfg.Tables.Accounts,
		cfg.Tables.PurchaseOrders,
	}
}

// EnsureTables creates any missing table with a string "id" hash key and
// on-demand billing. It returns the names of the tables it created.
func EnsureTables(ctx context.Context, api TableAPI, names []string) ([]string, error) {
	var created []string
	for _, name := range names {
		_, err := api.DescribeTable(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(name)})
		if err == nil {
			continue
		}
		var nf *types.ResourceNotFoundException
		if !errors.As(err, &nf) {
			return created, fmt.Errorf("describe table %s: %w", name, err)
		}

		_, err = api.CreateTable(ctx, &dynamodb.CreateTableInput{
			TableName: aws.String(name),
			AttributeDefinitions: []types.AttributeDefinition{
				{AttributeName: aws.String("id"), AttributeType: types.ScalarAttributeTypeS},
			},
			KeySchema: []types.KeySchemaElement{
				{AttributeName: aws.String("id"), KeyType: types.KeyTypeHash},
			},
			BillingMode: types.BillingModePayPerRequest,
		})
		if err != nil {
			return created, fmt.Errorf("create table %s: %w", name, err)
		}
		logrus.WithFields(logrus.Fields{"component": "database", "table": name}).Info("table created")
		created = append(created, name)
	}
	return created, nil
}
