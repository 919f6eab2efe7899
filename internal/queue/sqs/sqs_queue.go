// Package sqs implements the event queue on Amazon SQS with long polling.
package sqs

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"

	"docflow/internal/port"
)

// maxReceiveBatch is the largest MaxNumberOfMessages SQS accepts per call.
const maxReceiveBatch = 10

type sqsQueue struct {
	client   *sqs.Client
	queueURL string
	waitSecs int32
}

// receiveBatch clamps the requested batch size to the service ceiling. The
// worker's semaphore carries concurrency beyond it across successive polls.
func receiveBatch(max int) int32 {
	if max > maxReceiveBatch {
		return maxReceiveBatch
	}
	if max < 1 {
		return 1
	}
	return int32(max)
}

// NewSQSQueue creates an SQS-backed MessageQueue for one queue URL.
func NewSQSQueue(awsCfg aws.Config, queueURL string, waitSecs int) port.MessageQueue {
	return &sqsQueue{
		client:   sqs.NewFromConfig(awsCfg),
		queueURL: queueURL,
		waitSecs: int32(waitSecs),
	}
}

func (q *sqsQueue) Receive(ctx context.Context, max int) ([]port.QueueMessage, error) {
	result, err := q.client.ReceiveMessage(ctx, &sqs.ReceiveMessageInput{
		QueueUrl:            aws.String(q.queueURL),
		MaxNumberOfMessages: receiveBatch(max),
		WaitTimeSeconds:     q.waitSecs,
	})
	if err != nil {
		return nil, fmt.Errorf("sqs receive: %w", err)
	}

	messages := make([]port.QueueMessage, 0, len(result.Messages))
	for _, m := range result.Messages {
		messages = append(messages, port.QueueMessage{
			ID:            aws.ToString(m.MessageId),
			ReceiptHandle: aws.ToString(m.ReceiptHandle),
			Body:          []byte(aws.ToString(m.Body)),
		})
	}
	return messages, nil
}

func (q *sqsQueue) Delete(ctx context.Context, receiptHandle string) error {
	_, err := q.client.DeleteMessage(ctx, &sqs.DeleteMessageInput{
		QueueUrl:      aws.String(q.queueURL),
		ReceiptHandle: aws.String(receiptHandle),
	})
	if err != nil {
		return fmt.Errorf("sqs delete: %w", err)
	}
	return nil
}
