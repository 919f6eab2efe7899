// Package dynamo implements the document store on a DynamoDB table keyed by
// documentId.
package dynamo

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"docflow/internal/config"
	"docflow/internal/domain"
	"docflow/internal/port"
)

const keyAttribute = "documentId"

type dynamoStore struct {
	client *dynamodb.Client
	table  string
}

// NewDynamoStore creates the DynamoDB-backed DocumentStore implementation.
func NewDynamoStore(awsCfg aws.Config, cfg *config.Config) port.DocumentStore {
	var ddbOpts []func(*dynamodb.Options)
	if cfg.AWS.Endpoint != "" {
		ddbOpts = append(ddbOpts, func(o *dynamodb.Options) {
			o.BaseEndpoint = aws.String(cfg.AWS.Endpoint)
		})
	}
	return &dynamoStore{
		client: dynamodb.NewFromConfig(awsCfg, ddbOpts...),
		table:  cfg.Table.Name,
	}
}

// marshalOpts makes struct fields persist under their json names, so the
// stored shape matches the record shapes the parsers document.
func marshalOpts(o *attributevalue.EncoderOptions) {
	o.TagKey = "json"
}

func (s *dynamoStore) Insert(ctx context.Context, docID string, fields map[string]any) error {
	item, err := attributevalue.MarshalMapWithOptions(fields, marshalOpts)
	if err != nil {
		return fmt.Errorf("dynamo marshal: %w", err)
	}
	item[keyAttribute] = &types.AttributeValueMemberS{Value: docID}

	_, err = s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.table),
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("dynamo insert: %w", err)
	}
	return nil
}

// Update sets each named attribute individually, leaving every other
// attribute on the record untouched. Creates the record if it is absent.
func (s *dynamoStore) Update(ctx context.Context, docID string, fields map[string]any) error {
	updates := make(map[string]types.AttributeValueUpdate, len(fields))
	for name, value := range fields {
		av, err := attributevalue.MarshalWithOptions(value, marshalOpts)
		if err != nil {
			return fmt.Errorf("dynamo marshal %s: %w", name, err)
		}
		updates[name] = types.AttributeValueUpdate{
			Action: types.AttributeActionPut,
			Value:  av,
		}
	}

	_, err := s.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(s.table),
		Key: map[string]types.AttributeValue{
			keyAttribute: &types.AttributeValueMemberS{Value: docID},
		},
		AttributeUpdates: updates,
	})
	if err != nil {
		return fmt.Errorf("dynamo update: %w", err)
	}
	return nil
}

func (s *dynamoStore) Get(ctx context.Context, docID string) (map[string]any, error) {
	result, err := s.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.table),
		Key: map[string]types.AttributeValue{
			keyAttribute: &types.AttributeValueMemberS{Value: docID},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("dynamo get: %w", err)
	}
	if len(result.Item) == 0 {
		return nil, domain.ErrDocumentNotFound
	}

	var record map[string]any
	if err := attributevalue.UnmarshalMap(result.Item, &record); err != nil {
		return nil, fmt.Errorf("dynamo unmarshal: %w", err)
	}
	return record, nil
}
