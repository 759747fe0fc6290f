package repository

import (
	"context"
	"errors"
	"sort"

	"shiv_accounts/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// DynamoAPI is the subset of *dynamodb.Client the repositories use.
type DynamoAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	dynamodb.ScanAPIClient
}

var _ DynamoAPI = (*dynamodb.Client)(nil)

// dynamoRepository stores one entity type per table.
//
// Table requirements:
//   - PK: id (string)
//
// I is the attribute layout of a row; encode/decode convert between the
// entity and its row.
type dynamoRepository[T entities.Identifiable, I any] struct {
	ddb       DynamoAPI
	tableName string
	encode    func(T) I
	decode    func(I) (T, error)
}

func (r *dynamoRepository[T, I]) Create(ctx context.Context, e T) (T, error) {
	if err := r.put(ctx, e, "attribute_not_exists(#id)"); err != nil {
		var zero T
		return zero, err
	}
	return e, nil
}

// Update replaces the whole row. A missing row yields the zero value.
func (r *dynamoRepository[T, I]) Update(ctx context.Context, e T) (T, error) {
	var zero T
	if err := r.put(ctx, e, "attribute_exists(#id)"); err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return zero, nil
		}
		return zero, err
	}
	return e, nil
}

func (r *dynamoRepository[T, I]) put(ctx context.Context, e T, condition string) error {
	av, err := attributevalue.MarshalMap(r.encode(e))
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String(condition),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	return err
}

func (r *dynamoRepository[T, I]) Delete(ctx context.Context, id string) (bool, error) {
	out, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:    aws.String(r.tableName),
		Key:          key(id),
		ReturnValues: types.ReturnValueAllOld,
	})
	if err != nil {
		return false, err
	}
	return len(out.Attributes) > 0, nil
}

func (r *dynamoRepository[T, I]) GetByID(ctx context.Context, id string) (T, error) {
	var zero T
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            key(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return zero, err
	}
	if len(out.Item) == 0 {
		return zero, nil
	}

	var it I
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return zero, err
	}
	return r.decode(it)
}

// List scans the table and returns the rows newest first.
func (r *dynamoRepository[T, I]) List(ctx context.Context) ([]T, error) {
	var rows []I
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName:      aws.String(r.tableName),
		ConsistentRead: aws.Bool(true),
	})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var batch []I
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &batch); err != nil {
			return nil, err
		}
		rows = append(rows, batch...)
	}

	out := make([]T, 0, len(rows))
	for _, it := range rows {
		e, err := r.decode(it)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Meta().CreatedAt.After(out[j].Meta().CreatedAt)
	})
	return out, nil
}

func key(id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"id": &types.AttributeValueMemberS{Value: id},
	}
}
