package amqp

import (
	"context"
	"errors"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	log "github.com/sirupsen/logrus"
)

const (
	// startupRetryInterval is the fixed backoff between attempts to (re)start
	// consuming when the broker is unreachable. This is the only unbounded
	// retry in the system; individual message failures go through ack/nack.
	startupRetryInterval = 5 * time.Second

	// defaultHandleTimeout bounds one message's normalize/persist/notify
	// pipeline so a stuck downstream call cannot hold the single in-flight
	// slot forever.
	defaultHandleTimeout = 30 * time.Second
)

// MessageHandler processes one delivery and owns its ack/nack.
type MessageHandler interface {
	Handle(ctx context.Context, delivery *amqp.Delivery)
}

// Consumer drains one durable queue with a prefetch of one, handing each
// delivery to its handler strictly sequentially.
type Consumer struct {
	client        *Client
	handler       MessageHandler
	handleTimeout time.Duration
}

func NewConsumer(client *Client, handler MessageHandler) *Consumer {
	return &Consumer{
		client:        client,
		handler:       handler,
		handleTimeout: defaultHandleTimeout,
	}
}

// Run consumes queueName until ctx is cancelled. Start-up failures (broker
// unreachable, queue undeclarable) are logged and retried after a fixed
// backoff indefinitely. Cancellation lets the in-flight delivery finish its
// ack/nack before returning.
func (c *Consumer) Run(ctx context.Context, queueName string) {
	for {
		if err := c.consume(ctx, queueName); err != nil {
			log.WithError(err).WithField("queue", queueName).Error("Consumer stopped, retrying")
		}

		select {
		case <-ctx.Done():
			log.WithField("queue", queueName).Info("Consumer shut down")
			return
		case <-time.After(startupRetryInterval):
		}
	}
}

// dispatch runs one delivery's pipeline. The per-message context is detached
// from the run context's cancellation: shutdown stops the receive loop but
// must let the in-flight message finish its work and reach its ack/nack
// instead of aborting mid-persist and forcing a redelivery. The handle
// timeout is the only deadline.
func (c *Consumer) dispatch(ctx context.Context, delivery *amqp.Delivery) {
	msgCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.handleTimeout)
	defer cancel()
	c.handler.Handle(msgCtx, delivery)
}

func (c *Consumer) consume(ctx context.Context, queueName string) error {
	ch, err := c.client.Channel()
	if err != nil {
		return err
	}

	if _, err := ch.QueueDeclare(queueName, true, false, false, false, nil); err != nil {
		return fmt.Errorf("failed to declare queue '%s': %w", queueName, err)
	}

	// Prefetch one: a message's full pipeline runs before the next receive.
	if err := ch.Qos(1, 0, false); err != nil {
		return fmt.Errorf("failed to set QoS: %w", err)
	}

	msgs, err := ch.Consume(
		queueName,
		"",    // consumer tag (auto-generated)
		false, // auto-ack (we'll manually ack)
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // args
	)
	if err != nil {
		return fmt.Errorf("failed to register consumer: %w", err)
	}

	log.WithField("queue", queueName).Info("Started consuming messages")

	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-msgs:
			if !ok {
				return errors.New("delivery channel closed")
			}
			c.dispatch(ctx, &msg)
		}
	}
}
