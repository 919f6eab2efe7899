// Package textract implements the OCR job client on Amazon Textract's
// asynchronous APIs.
package textract

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/textract"
	"github.com/aws/aws-sdk-go-v2/service/textract/types"

	"docflow/internal/config"
	"docflow/internal/domain"
	"docflow/internal/port"
)

type textractClient struct {
	client  *textract.Client
	channel *types.NotificationChannel
}

// NewTextractClient creates the Textract-backed JobClient. Completion
// notifications are routed to the configured job topic so the completion
// worker can pick them up.
func NewTextractClient(awsCfg aws.Config, cfg *config.Config) port.JobClient {
	var channel *types.NotificationChannel
	if cfg.Notify.JobTopicARN != "" {
		channel = &types.NotificationChannel{
			RoleArn:     aws.String(cfg.Notify.JobRoleARN),
			SNSTopicArn: aws.String(cfg.Notify.JobTopicARN),
		}
	}
	return &textractClient{
		client:  textract.NewFromConfig(awsCfg),
		channel: channel,
	}
}

func documentLocation(bucket, key string) *types.DocumentLocation {
	return &types.DocumentLocation{
		S3Object: &types.S3Object{
			Bucket: aws.String(bucket),
			Name:   aws.String(key),
		},
	}
}

func jobID(id *string) (string, error) {
	if id == nil || *id == "" {
		return "", domain.ErrMissingJobID
	}
	return *id, nil
}

func (c *textractClient) StartTextDetection(ctx context.Context, bucket, key, jobTag string) (string, error) {
	result, err := c.client.StartDocumentTextDetection(ctx, &textract.StartDocumentTextDetectionInput{
		DocumentLocation:    documentLocation(bucket, key),
		JobTag:              aws.String(jobTag),
		NotificationChannel: c.channel,
	})
	if err != nil {
		return "", fmt.Errorf("start text detection: %w", err)
	}
	return jobID(result.JobId)
}

func (c *textractClient) StartExpenseAnalysis(ctx context.Context, bucket, key, jobTag string) (string, error) {
	result, err := c.client.StartExpenseAnalysis(ctx, &textract.StartExpenseAnalysisInput{
		DocumentLocation:    documentLocation(bucket, key),
		JobTag:              aws.String(jobTag),
		NotificationChannel: c.channel,
	})
	if err != nil {
		return "", fmt.Errorf("start expense analysis: %w", err)
	}
	return jobID(result.JobId)
}

func (c *textractClient) StartDocumentAnalysis(ctx context.Context, bucket, key, jobTag string, queries []domain.Query) (string, error) {
	sdkQueries := make([]types.Query, 0, len(queries))
	for _, q := range queries {
		sdkQueries = append(sdkQueries, types.Query{
			Text:  aws.String(q.Text),
			Alias: aws.String(q.Alias),
			Pages: q.Pages,
		})
	}

	result, err := c.client.StartDocumentAnalysis(ctx, &textract.StartDocumentAnalysisInput{
		DocumentLocation:    documentLocation(bucket, key),
		FeatureTypes:        []types.FeatureType{types.FeatureTypeQueries},
		QueriesConfig:       &types.QueriesConfig{Queries: sdkQueries},
		JobTag:              aws.String(jobTag),
		NotificationChannel: c.channel,
	})
	if err != nil {
		return "", fmt.Errorf("start document analysis: %w", err)
	}
	return jobID(result.JobId)
}

func domainBlocks(blocks []types.Block) []domain.Block {
	out := make([]domain.Block, 0, len(blocks))
	for _, b := range blocks {
		block := domain.Block{
			ID:        aws.ToString(b.Id),
			BlockType: string(b.BlockType),
			Text:      aws.ToString(b.Text),
			Page:      aws.ToInt32(b.Page),
		}
		if b.Query != nil {
			block.QueryAlias = aws.ToString(b.Query.Alias)
		}
		for _, rel := range b.Relationships {
			block.Relationships = append(block.Relationships, domain.Relationship{
				Type: string(rel.Type),
				IDs:  rel.Ids,
			})
		}
		out = append(out, block)
	}
	return out
}

func domainExpenseFields(fields []types.ExpenseField) []domain.ExpenseField {
	out := make([]domain.ExpenseField, 0, len(fields))
	for _, f := range fields {
		field := domain.ExpenseField{}
		if f.Type != nil {
			field.Type = aws.ToString(f.Type.Text)
		}
		if f.LabelDetection != nil {
			field.Label = aws.ToString(f.LabelDetection.Text)
		}
		if f.ValueDetection != nil {
			field.Value = aws.ToString(f.ValueDetection.Text)
		}
		out = append(out, field)
	}
	return out
}

func domainExpenseDocs(docs []types.ExpenseDocument) []domain.ExpenseDoc {
	out := make([]domain.ExpenseDoc, 0, len(docs))
	for _, d := range docs {
		doc := domain.ExpenseDoc{
			SummaryFields: domainExpenseFields(d.SummaryFields),
		}
		for _, group := range d.LineItemGroups {
			domainGroup := domain.ExpenseLineItemGroup{}
			for _, item := range group.LineItems {
				domainGroup.LineItems = append(domainGroup.LineItems, domain.ExpenseLineItem{
					Fields: domainExpenseFields(item.LineItemExpenseFields),
				})
			}
			doc.LineItemGroups = append(doc.LineItemGroups, domainGroup)
		}
		out = append(out, doc)
	}
	return out
}

func (c *textractClient) TextDetectionPage(ctx context.Context, jobID string, token *string) ([]domain.Block, *string, error) {
	result, err := c.client.GetDocumentTextDetection(ctx, &textract.GetDocumentTextDetectionInput{
		JobId:     aws.String(jobID),
		NextToken: token,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("get text detection: %w", err)
	}
	return domainBlocks(result.Blocks), result.NextToken, nil
}

func (c *textractClient) ExpenseAnalysisPage(ctx context.Context, jobID string, token *string) ([]domain.ExpenseDoc, *string, error) {
	result, err := c.client.GetExpenseAnalysis(ctx, &textract.GetExpenseAnalysisInput{
		JobId:     aws.String(jobID),
		NextToken: token,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("get expense analysis: %w", err)
	}
	return domainExpenseDocs(result.ExpenseDocuments), result.NextToken, nil
}

func (c *textractClient) DocumentAnalysisPage(ctx context.Context, jobID string, token *string) ([]domain.Block, *string, error) {
	result, err := c.client.GetDocumentAnalysis(ctx, &textract.GetDocumentAnalysisInput{
		JobId:     aws.String(jobID),
		NextToken: token,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("get document analysis: %w", err)
	}
	return domainBlocks(result.Blocks), result.NextToken, nil
}
