package port

import (
	"context"

	"docflow/internal/domain"
)

// NLPClient runs synchronous entity, sentiment and key-phrase detection
// over short free text.
type NLPClient interface {
	DetectEntities(ctx context.Context, text string) ([]domain.NLPEntity, error)
	DetectSentiment(ctx context.Context, text string) (string, error)
	DetectKeyPhrases(ctx context.Context, text string) ([]domain.KeyPhrase, error)
}
