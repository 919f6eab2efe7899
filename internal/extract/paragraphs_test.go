package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docflow/internal/domain"
)

func TestNumberedParagraphs(t *testing.T) {
	lines := []string{
		"PETITION",
		"1. First claim",
		"continued on the next line",
		"2. Second claim?",
		"3. Third claim",
		"runs on",
		"and ends here.",
	}
	paragraphs, err := NumberedParagraphs(lines)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"1. First claim continued on the next line",
		"2. Second claim?",
		"3. Third claim runs on and ends here.",
	}, paragraphs)
}

func TestNumberedParagraphsAnswerExtension(t *testing.T) {
	lines := []string{
		"1. State your name.",
		"2. Were you present on the date in question?",
		"ANSWER: I was present",
		"at the scene:",
	}
	paragraphs, err := NumberedParagraphs(lines)
	require.NoError(t, err)
	require.Len(t, paragraphs, 2)
	assert.Equal(t, "2. Were you present on the date in question? ANSWER: I was present at the scene:", paragraphs[1])
}

func TestNumberedParagraphsUnterminated(t *testing.T) {
	lines := []string{"1. An open claim", "that never ends"}
	_, err := NumberedParagraphs(lines)
	assert.ErrorIs(t, err, domain.ErrUnterminatedParagraph)
}

func TestNumberedParagraphsNoMarkers(t *testing.T) {
	paragraphs, err := NumberedParagraphs([]string{"no numbering here."})
	require.NoError(t, err)
	assert.Nil(t, paragraphs)
}

func TestNumberedParagraphsSkippedNumberEndsSequence(t *testing.T) {
	lines := []string{
		"1. First claim.",
		"3. Not in sequence.",
	}
	paragraphs, err := NumberedParagraphs(lines)
	require.NoError(t, err)
	// "3. " is not the next expected marker, so the sequence ends at 1.
	assert.Equal(t, []string{"1. First claim."}, paragraphs)
}
