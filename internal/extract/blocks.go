// Package extract holds the per-document-type parsers: pure functions over
// raw OCR block/field output and correspondence payloads.
package extract

import (
	"strings"

	"docflow/internal/domain"
)

// LineTexts returns the text of every LINE block, in block order.
func LineTexts(blocks []domain.Block) []string {
	var lines []string
	for _, b := range blocks {
		if strings.EqualFold(b.BlockType, "LINE") && b.Text != "" {
			lines = append(lines, b.Text)
		}
	}
	return lines
}

// PageTexts groups LINE block text by page number, joining each page's
// lines with newlines. Pages are returned in page order.
func PageTexts(blocks []domain.Block) []string {
	byPage := map[int32][]string{}
	var maxPage int32
	for _, b := range blocks {
		if !strings.EqualFold(b.BlockType, "LINE") || b.Text == "" || b.Page <= 0 {
			continue
		}
		byPage[b.Page] = append(byPage[b.Page], b.Text)
		if b.Page > maxPage {
			maxPage = b.Page
		}
	}
	var pages []string
	for p := int32(1); p <= maxPage; p++ {
		if lines, ok := byPage[p]; ok {
			pages = append(pages, strings.Join(lines, "\n"))
		}
	}
	return pages
}

// Chunks re-pages lines into chunks of at most max characters, so inference
// input stays under the service's per-document limit. A single line longer
// than max becomes its own chunk.
func Chunks(lines []string, max int) []string {
	var chunks []string
	current := ""
	for _, line := range lines {
		if current == "" {
			current = line
			continue
		}
		if len(current)+len(line) > max {
			chunks = append(chunks, current)
			current = line
			continue
		}
		current = current + "\n" + line
	}
	if current != "" {
		chunks = append(chunks, current)
	}
	return chunks
}

// QueryAnswers maps each pre-submitted query's alias to the text of its
// answer blocks. Queries without answers map to an empty list.
func QueryAnswers(blocks []domain.Block) map[string][]string {
	results := map[string]domain.Block{}
	for _, b := range blocks {
		if strings.EqualFold(b.BlockType, "QUERY_RESULT") {
			results[b.ID] = b
		}
	}
	answers := map[string][]string{}
	for _, b := range blocks {
		if !strings.EqualFold(b.BlockType, "QUERY") || b.QueryAlias == "" {
			continue
		}
		texts := []string{}
		for _, rel := range b.Relationships {
			if rel.Type != "ANSWER" {
				continue
			}
			for _, id := range rel.IDs {
				if answer, ok := results[id]; ok && answer.Text != "" {
					texts = append(texts, answer.Text)
				}
			}
		}
		answers[b.QueryAlias] = texts
	}
	return answers
}
