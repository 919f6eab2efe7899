// Package sns publishes extraction results to an SNS topic.
package sns

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/aws/aws-sdk-go-v2/service/sns/types"

	"docflow/internal/config"
	"docflow/internal/port"
)

type snsNotifier struct {
	client   *sns.Client
	topicARN string
}

// NewSNSNotifier creates the SNS-backed Notifier publishing to the result
// topic.
func NewSNSNotifier(awsCfg aws.Config, cfg *config.Config) port.Notifier {
	return &snsNotifier{
		client:   sns.NewFromConfig(awsCfg),
		topicARN: cfg.Notify.ResultTopicARN,
	}
}

func (n *snsNotifier) Publish(ctx context.Context, msg port.ResultMessage) error {
	_, err := n.client.Publish(ctx, &sns.PublishInput{
		TopicArn: aws.String(n.topicARN),
		Subject:  aws.String(msg.Subject),
		Message:  aws.String(msg.Message),
		MessageAttributes: map[string]types.MessageAttributeValue{
			"documentId": {
				DataType:    aws.String("String"),
				StringValue: aws.String(msg.DocumentID),
			},
			"jobId": {
				DataType:    aws.String("String"),
				StringValue: aws.String(msg.JobID),
			},
		},
	})
	if err != nil {
		return fmt.Errorf("sns publish: %w", err)
	}
	return nil
}
