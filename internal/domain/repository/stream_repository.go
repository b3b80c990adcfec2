package repository

import (
	"context"

	"github.com/seo-microservice/internal/domain"
)

// StreamRepository publishes and consumes listing-change events over Redis
// Streams.
type StreamRepository interface {
	// CreateConsumerGroup creates the consumer group for a stream if it does
	// not exist yet.
	CreateConsumerGroup(ctx context.Context, stream, group string) error

	// ConsumeStream reads messages from a stream via a consumer group.
	ConsumeStream(ctx context.Context, stream, group, consumer string) (<-chan domain.StreamMessage, error)

	// AckMessage acknowledges one processed message.
	AckMessage(ctx context.Context, stream, group, messageID string) error

	// PublishToStream publishes data as a JSON message.
	PublishToStream(ctx context.Context, stream string, data interface{}) error
}
