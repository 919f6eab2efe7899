package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"docflow/internal/config"
	"docflow/internal/domain"
	"docflow/mocks"
)

func pleadingConfig() *config.Config {
	return &config.Config{Storage: config.StorageConfig{Bucket: "out"}}
}

func pleadingNote() domain.JobNotification {
	return domain.JobNotification{
		JobID:  "job-1",
		Status: "SUCCEEDED",
		API:    domain.JobKindDocumentAnalysis,
		JobTag: "doc-1",
	}
}

// captionBlocks is a minimal first page whose caption the heuristics can
// parse: plaintiff name, label, vs., defendants, defendant label.
func captionBlocks() []domain.Block {
	lines := []string{
		"JANE ROE,",
		"Plaintiff,",
		"Cause No. 22-CV-0042",
		"vs.",
		"Division 5",
		"ACME HOSPITAL, LLC,",
		"and,",
		"JOHN DOE, M.D.,",
		"Defendants.",
	}
	blocks := make([]domain.Block, 0, len(lines))
	for _, line := range lines {
		blocks = append(blocks, domain.Block{BlockType: "LINE", Text: line, Page: 1})
	}
	return blocks
}

func queryBlocks() []domain.Block {
	return []domain.Block{
		{
			ID:         "q1",
			BlockType:  "QUERY",
			QueryAlias: "plaintiff",
			Relationships: []domain.Relationship{
				{Type: "ANSWER", IDs: []string{"a1"}},
			},
		},
		{ID: "a1", BlockType: "QUERY_RESULT", Text: "Jane Roe"},
		{ID: "q2", BlockType: "QUERY", QueryAlias: "county"},
	}
}

func TestPleadingSaverMergesHeuristicsAndAnswers(t *testing.T) {
	jobs := new(mocks.MockJobClient)
	objects := new(mocks.MockObjectStorage)
	store := new(mocks.MockDocumentStore)

	blocks := append(captionBlocks(), queryBlocks()...)
	jobs.On("DocumentAnalysisPage", mock.Anything, "job-1", (*string)(nil)).
		Return(blocks, nil, nil)

	var saved map[string]any
	store.On("Update", mock.Anything, "doc-1", mock.Anything).
		Run(func(args mock.Arguments) { saved = args.Get(2).(map[string]any) }).
		Return(nil)
	objects.On("SaveText", mock.Anything, "doc-1/textract/extracted0.txt", mock.Anything).
		Return(domain.Location{}, nil)

	saver := NewPleadingSaver(jobs, objects, store, pleadingConfig())
	require.NoError(t, saver.Save(context.Background(), pleadingNote()))

	header, ok := saved["header"].(map[string]any)
	require.True(t, ok)
	// The query answer supersedes the heuristic plaintiff line.
	assert.Equal(t, []string{"Jane Roe"}, header["plaintiff"])
	assert.Equal(t, "Cause No. 22-CV-0042", header["caseNumber"])
	assert.Equal(t, "Division 5", header["division"])
	assert.Equal(t, []string{"ACME HOSPITAL, LLC,", "JOHN DOE, M.D.,"}, header["defendants"])
	// The unanswered county query stores nothing.
	_, present := header["county"]
	assert.False(t, present)

	assert.Equal(t, domain.Location{Bucket: "out", Prefix: "doc-1/textract/"}, saved["rawText"])
}

func TestPleadingSaverHeaderFailureKeepsAnswers(t *testing.T) {
	jobs := new(mocks.MockJobClient)
	objects := new(mocks.MockObjectStorage)
	store := new(mocks.MockDocumentStore)

	// No "Defendant" line anywhere, so the heuristics fail.
	blocks := append([]domain.Block{
		{BlockType: "LINE", Text: "MOTION FOR LEAVE", Page: 1},
	}, queryBlocks()...)
	jobs.On("DocumentAnalysisPage", mock.Anything, "job-1", (*string)(nil)).
		Return(blocks, nil, nil)

	var saved map[string]any
	store.On("Update", mock.Anything, "doc-1", mock.Anything).
		Run(func(args mock.Arguments) { saved = args.Get(2).(map[string]any) }).
		Return(nil)
	objects.On("SaveText", mock.Anything, mock.Anything, mock.Anything).
		Return(domain.Location{}, nil)

	saver := NewPleadingSaver(jobs, objects, store, pleadingConfig())
	require.NoError(t, saver.Save(context.Background(), pleadingNote()))

	header := saved["header"].(map[string]any)
	assert.Equal(t, []string{"Jane Roe"}, header["plaintiff"])
	_, present := header["caseNumber"]
	assert.False(t, present)
	_, present = saved["paragraphs"]
	assert.False(t, present)
}

func TestPleadingSaverSaveFailure(t *testing.T) {
	jobs := new(mocks.MockJobClient)
	objects := new(mocks.MockObjectStorage)
	store := new(mocks.MockDocumentStore)
	boom := errors.New("denied")

	jobs.On("DocumentAnalysisPage", mock.Anything, "job-1", (*string)(nil)).
		Return(captionBlocks(), nil, nil)
	store.On("Update", mock.Anything, "doc-1", mock.Anything).Return(nil)
	objects.On("SaveText", mock.Anything, mock.Anything, mock.Anything).
		Return(domain.Location{}, boom)

	saver := NewPleadingSaver(jobs, objects, store, pleadingConfig())
	err := saver.Save(context.Background(), pleadingNote())
	require.ErrorIs(t, err, boom)
	store.AssertCalled(t, "Update", mock.Anything, "doc-1", mock.Anything)
}
