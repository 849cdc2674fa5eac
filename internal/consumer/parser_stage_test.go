package consumer

import (
	"context"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/Mastercard-Code-For-Change-2-0/Team-2/internal/domain"
)

const validEngagementJSON = `{
	"engagement_id": "abc123",
	"event_id": "evt1",
	"user_id": "user123",
	"engagement_type": "view",
	"timestamp": "2025-03-10T12:00:00Z"
}`

func TestParserStage_Start_EmitsEnvelope(t *testing.T) {
	mockConsumer := new(MockQueueConsumer)
	log := zap.NewNop()

	stage := NewParserStage(mockConsumer, NewJSONEngagementParser(), log)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	in := make(chan types.Message, 1)
	out := make(chan *Envelope, 1)
	go stage.Start(ctx, in, out)

	in <- types.Message{
		MessageId:     aws.String("msg-1"),
		ReceiptHandle: aws.String("handle-1"),
		Body:          aws.String(validEngagementJSON),
	}

	select {
	case envelope := <-out:
		assert.Equal(t, "abc123", envelope.Event.EngagementID)
		assert.Equal(t, domain.EngagementView, envelope.Event.Type)
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for envelope")
	}
}

func TestParserStage_Start_DeletesMalformedMessage(t *testing.T) {
	mockConsumer := new(MockQueueConsumer)
	log := zap.NewNop()

	stage := NewParserStage(mockConsumer, NewJSONEngagementParser(), log)

	mockConsumer.On("QueueURL").Return("https://sqs.eu-central-1.amazonaws.com/123/engagements")
	mockConsumer.On("DeleteMessage", mock.Anything, mock.MatchedBy(func(input *sqs.DeleteMessageInput) bool {
		return aws.ToString(input.ReceiptHandle) == "handle-bad"
	})).Return(&sqs.DeleteMessageOutput{}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	in := make(chan types.Message, 1)
	out := make(chan *Envelope, 1)
	go stage.Start(ctx, in, out)

	in <- types.Message{
		MessageId:     aws.String("msg-bad"),
		ReceiptHandle: aws.String("handle-bad"),
		Body:          aws.String("{not json"),
	}

	time.Sleep(100 * time.Millisecond)

	assert.Empty(t, out)
	mockConsumer.AssertExpectations(t)
}

func TestParserStage_EnvelopeAckDeletesMessage(t *testing.T) {
	mockConsumer := new(MockQueueConsumer)
	log := zap.NewNop()

	stage := NewParserStage(mockConsumer, NewJSONEngagementParser(), log)

	mockConsumer.On("QueueURL").Return("https://sqs.eu-central-1.amazonaws.com/123/engagements")
	mockConsumer.On("DeleteMessage", mock.Anything, mock.MatchedBy(func(input *sqs.DeleteMessageInput) bool {
		return aws.ToString(input.ReceiptHandle) == "handle-1"
	})).Return(&sqs.DeleteMessageOutput{}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	in := make(chan types.Message, 1)
	out := make(chan *Envelope, 1)
	go stage.Start(ctx, in, out)

	in <- types.Message{
		MessageId:     aws.String("msg-1"),
		ReceiptHandle: aws.String("handle-1"),
		Body:          aws.String(validEngagementJSON),
	}

	var envelope *Envelope
	select {
	case envelope = <-out:
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for envelope")
	}

	err := envelope.Ack(context.Background())
	assert.NoError(t, err)
	mockConsumer.AssertExpectations(t)

	// Nack leaves the message in the queue
	err = envelope.Nack(context.Background())
	assert.NoError(t, err)
	mockConsumer.AssertNumberOfCalls(t, "DeleteMessage", 1)
}
