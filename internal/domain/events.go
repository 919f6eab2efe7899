package domain

import (
	"encoding/json"
	"fmt"
)

// TriggerEvent identifies a newly landed document in object storage.
type TriggerEvent struct {
	Bucket string `json:"bucket"`
	Key    string `json:"key"`
}

// JobNotification is the completion notification published by the OCR
// service when an asynchronous job reaches a terminal state. JobTag carries
// the document identifier that correlates the job back to its document.
type JobNotification struct {
	JobID            string           `json:"JobId"`
	Status           JobStatus        `json:"Status"`
	API              JobKind          `json:"API"`
	JobTag           string           `json:"JobTag"`
	Timestamp        int64            `json:"Timestamp"`
	DocumentLocation DocumentLocation `json:"DocumentLocation"`
}

// DocumentLocation names the source object an asynchronous job ran against.
type DocumentLocation struct {
	S3ObjectName string `json:"S3ObjectName"`
	S3Bucket     string `json:"S3Bucket"`
}

// snsEnvelope is the wrapper the notification topic puts around the job
// record when it is delivered through a queue subscription.
type snsEnvelope struct {
	Type    string `json:"Type"`
	Message string `json:"Message"`
}

// ParseTriggerEvent decodes a trigger payload. Both fields are required;
// anything else is an unrecognized shape.
func ParseTriggerEvent(body []byte) (TriggerEvent, error) {
	var event TriggerEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return TriggerEvent{}, fmt.Errorf("%w: %v", ErrUnknownNotification, err)
	}
	if event.Bucket == "" || event.Key == "" {
		return TriggerEvent{}, fmt.Errorf("%w: missing bucket or key", ErrUnknownNotification)
	}
	return event, nil
}

// ParseJobNotification decodes a job-completion payload. It accepts either a
// bare notification or one wrapped in a topic envelope, and fails explicitly
// on anything else: the shape set is closed, unrecognized payloads are an
// error, never a silent coercion.
func ParseJobNotification(body []byte) (JobNotification, error) {
	var env snsEnvelope
	if err := json.Unmarshal(body, &env); err == nil && env.Type == "Notification" && env.Message != "" {
		body = []byte(env.Message)
	}

	var note JobNotification
	if err := json.Unmarshal(body, &note); err != nil {
		return JobNotification{}, fmt.Errorf("%w: %v", ErrUnknownNotification, err)
	}
	if note.JobID == "" {
		return JobNotification{}, ErrMissingJobID
	}
	if note.JobTag == "" {
		return JobNotification{}, ErrMissingJobTag
	}
	switch note.API {
	case JobKindTextDetection, JobKindExpenseAnalysis, JobKindDocumentAnalysis:
	default:
		return JobNotification{}, fmt.Errorf("%w: %q", ErrUnknownJobKind, note.API)
	}
	return note, nil
}
