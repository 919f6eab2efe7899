package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJobNotificationBare(t *testing.T) {
	body := []byte(`{
		"JobId":"job-1","Status":"SUCCEEDED","API":"StartDocumentTextDetection",
		"JobTag":"doc-1","Timestamp":1700000000,
		"DocumentLocation":{"S3ObjectName":"records.pdf","S3Bucket":"incoming"}
	}`)
	note, err := ParseJobNotification(body)
	require.NoError(t, err)
	assert.Equal(t, "job-1", note.JobID)
	assert.Equal(t, "doc-1", note.JobTag)
	assert.Equal(t, JobKindTextDetection, note.API)
	assert.Equal(t, "records.pdf", note.DocumentLocation.S3ObjectName)
}

func TestParseJobNotificationEnvelope(t *testing.T) {
	inner := `{"JobId":"job-2","Status":"SUCCEEDED","API":"StartExpenseAnalysis","JobTag":"doc-2","Timestamp":1,"DocumentLocation":{"S3ObjectName":"a.pdf","S3Bucket":"b"}}`
	envelope, err := json.Marshal(map[string]string{
		"Type":    "Notification",
		"Message": inner,
	})
	require.NoError(t, err)

	note, err := ParseJobNotification(envelope)
	require.NoError(t, err)
	assert.Equal(t, "job-2", note.JobID)
	assert.Equal(t, JobKindExpenseAnalysis, note.API)
}

func TestParseJobNotificationRejectsUnknownShapes(t *testing.T) {
	cases := []struct {
		name    string
		body    string
		wantErr error
	}{
		{"not json", `not json`, ErrUnknownNotification},
		{"missing job id", `{"JobTag":"doc","API":"StartExpenseAnalysis"}`, ErrMissingJobID},
		{"missing job tag", `{"JobId":"job","API":"StartExpenseAnalysis"}`, ErrMissingJobTag},
		{"unknown api", `{"JobId":"job","JobTag":"doc","API":"StartSomethingElse"}`, ErrUnknownJobKind},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseJobNotification([]byte(tc.body))
			assert.ErrorIs(t, err, tc.wantErr)
			assert.True(t, IsFatal(err))
		})
	}
}

func TestParseTriggerEvent(t *testing.T) {
	event, err := ParseTriggerEvent([]byte(`{"bucket":"incoming","key":"expenses/a.pdf"}`))
	require.NoError(t, err)
	assert.Equal(t, "incoming", event.Bucket)
	assert.Equal(t, "expenses/a.pdf", event.Key)

	_, err = ParseTriggerEvent([]byte(`{"bucket":"incoming"}`))
	assert.ErrorIs(t, err, ErrUnknownNotification)
}
