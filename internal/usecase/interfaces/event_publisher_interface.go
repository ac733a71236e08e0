package interfaces

import "context"

// IEventPublisher abstracts the order event stream (RabbitMQ in production).
//
// Events are best-effort notifications emitted after the store has been
// updated; a publish failure never fails the originating operation.
type IEventPublisher interface {
	Publish(ctx context.Context, topic string, message interface{}) error
}
