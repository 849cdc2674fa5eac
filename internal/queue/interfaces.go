package queue

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/sqs"

	"github.com/Mastercard-Code-For-Change-2-0/Team-2/internal/domain"
)

// EngagementPublisher defines the interface for publishing engagement facts
// to a queue
type EngagementPublisher interface {
	PublishEngagement(ctx context.Context, event *domain.EngagementEvent) error
}

// QueueConsumer defines the interface for consuming messages from a queue
type QueueConsumer interface {
	ReceiveMessages(ctx context.Context, input *sqs.ReceiveMessageInput) (*sqs.ReceiveMessageOutput, error)
	DeleteMessage(ctx context.Context, input *sqs.DeleteMessageInput) (*sqs.DeleteMessageOutput, error)
	QueueURL() string
}
