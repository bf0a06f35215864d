package port

import "context"

// NotifierClient delivers the outbound email. Failures are non-fatal to the
// caller; the gateway decides whether body renders as text or markup.
type NotifierClient interface {
	Send(ctx context.Context, to, subject, body string) error
}

// QueuePublisher enqueues a JSON-serialized message onto a named durable
// queue, declaring the queue if absent.
type QueuePublisher interface {
	Publish(ctx context.Context, queueName string, message any) error
}
