package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"docflow/internal/domain"
	"docflow/mocks"
)

func notificationBody(api domain.JobKind) []byte {
	return fmt.Appendf(nil, `{
		"JobId":"job-1","Status":"SUCCEEDED","API":%q,"JobTag":"doc-1","Timestamp":1,
		"DocumentLocation":{"S3ObjectName":"a.pdf","S3Bucket":"in"}
	}`, api)
}

func TestHandleNotificationDispatch(t *testing.T) {
	cases := []struct {
		api   domain.JobKind
		saver string
	}{
		{domain.JobKindTextDetection, "text"},
		{domain.JobKindExpenseAnalysis, "expense"},
		{domain.JobKindDocumentAnalysis, "pleading"},
	}
	for _, tc := range cases {
		t.Run(string(tc.api), func(t *testing.T) {
			text := new(mocks.MockTextSaver)
			expense := new(mocks.MockExpenseSaver)
			pleading := new(mocks.MockPleadingSaver)

			matcher := mock.MatchedBy(func(note domain.JobNotification) bool {
				return note.JobID == "job-1" && note.JobTag == "doc-1" && note.API == tc.api
			})
			switch tc.saver {
			case "text":
				text.On("Save", mock.Anything, matcher).Return(nil)
			case "expense":
				expense.On("Save", mock.Anything, matcher).Return(nil)
			case "pleading":
				pleading.On("Save", mock.Anything, matcher).Return(nil)
			}

			svc := NewCompletionService(text, expense, pleading)
			require.NoError(t, svc.HandleNotification(context.Background(), notificationBody(tc.api)))
			text.AssertExpectations(t)
			expense.AssertExpectations(t)
			pleading.AssertExpectations(t)
		})
	}
}

func TestHandleNotificationParseFailureIsFatal(t *testing.T) {
	svc := NewCompletionService(new(mocks.MockTextSaver), new(mocks.MockExpenseSaver), new(mocks.MockPleadingSaver))

	err := svc.HandleNotification(context.Background(), []byte("not json"))
	require.ErrorIs(t, err, domain.ErrUnknownNotification)
	assert.True(t, domain.IsFatal(err))
}

func TestHandleNotificationSaverErrorPropagates(t *testing.T) {
	text := new(mocks.MockTextSaver)
	boom := errors.New("throttled")
	text.On("Save", mock.Anything, mock.Anything).Return(boom)

	svc := NewCompletionService(text, new(mocks.MockExpenseSaver), new(mocks.MockPleadingSaver))
	err := svc.HandleNotification(context.Background(), notificationBody(domain.JobKindTextDetection))
	require.ErrorIs(t, err, boom)
}
