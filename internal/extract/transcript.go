package extract

import (
	"encoding/json"
	"fmt"
	"strings"

	"docflow/internal/domain"
)

type transcriptFile struct {
	Transcript []domain.TranscriptTurn `json:"Transcript"`
}

// ParseTranscript decodes a call-transcript JSON document into its turns.
func ParseTranscript(raw []byte) ([]domain.TranscriptTurn, error) {
	var file transcriptFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("failed to parse transcript: %w", err)
	}
	return file.Transcript, nil
}

// TranscriptText joins the turns' content into the free text used for
// entity and key-phrase detection.
func TranscriptText(turns []domain.TranscriptTurn) string {
	contents := make([]string, 0, len(turns))
	for _, turn := range turns {
		if turn.Content != "" {
			contents = append(contents, turn.Content)
		}
	}
	return strings.Join(contents, "\n")
}
