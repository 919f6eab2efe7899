// Package nlp implements synchronous free-text analysis on Amazon
// Comprehend.
package nlp

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/comprehend"
	"github.com/aws/aws-sdk-go-v2/service/comprehend/types"

	"docflow/internal/domain"
	"docflow/internal/port"
)

type comprehendClient struct {
	client *comprehend.Client
}

// NewComprehendClient creates the Comprehend-backed NLPClient.
func NewComprehendClient(awsCfg aws.Config) port.NLPClient {
	return &comprehendClient{client: comprehend.NewFromConfig(awsCfg)}
}

func toScore(score *float32) *float64 {
	if score == nil {
		return nil
	}
	s := float64(*score)
	return &s
}

func (c *comprehendClient) DetectEntities(ctx context.Context, text string) ([]domain.NLPEntity, error) {
	result, err := c.client.DetectEntities(ctx, &comprehend.DetectEntitiesInput{
		Text:         aws.String(text),
		LanguageCode: types.LanguageCodeEn,
	})
	if err != nil {
		return nil, fmt.Errorf("detect entities: %w", err)
	}
	entities := make([]domain.NLPEntity, 0, len(result.Entities))
	for _, e := range result.Entities {
		entities = append(entities, domain.NLPEntity{
			Type:  string(e.Type),
			Text:  aws.ToString(e.Text),
			Score: toScore(e.Score),
		})
	}
	return entities, nil
}

func (c *comprehendClient) DetectSentiment(ctx context.Context, text string) (string, error) {
	result, err := c.client.DetectSentiment(ctx, &comprehend.DetectSentimentInput{
		Text:         aws.String(text),
		LanguageCode: types.LanguageCodeEn,
	})
	if err != nil {
		return "", fmt.Errorf("detect sentiment: %w", err)
	}
	return string(result.Sentiment), nil
}

func (c *comprehendClient) DetectKeyPhrases(ctx context.Context, text string) ([]domain.KeyPhrase, error) {
	result, err := c.client.DetectKeyPhrases(ctx, &comprehend.DetectKeyPhrasesInput{
		Text:         aws.String(text),
		LanguageCode: types.LanguageCodeEn,
	})
	if err != nil {
		return nil, fmt.Errorf("detect key phrases: %w", err)
	}
	phrases := make([]domain.KeyPhrase, 0, len(result.KeyPhrases))
	for _, p := range result.KeyPhrases {
		phrases = append(phrases, domain.KeyPhrase{
			Text:  aws.ToString(p.Text),
			Score: toScore(p.Score),
		})
	}
	return phrases, nil
}
