package amqp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	log "github.com/sirupsen/logrus"
)

type Publisher struct {
	client *Client
}

func NewPublisher(client *Client) *Publisher {
	return &Publisher{client: client}
}

// Publish serializes message to JSON and enqueues it onto queueName through
// the default exchange, declaring the queue durable if absent. The message is
// marked persistent so it survives a broker restart once enqueued. Failures
// are returned, not swallowed; callers decide whether to log or propagate.
func (p *Publisher) Publish(ctx context.Context, queueName string, message any) error {
	body, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to marshal message for queue '%s': %w", queueName, err)
	}

	ch, err := p.client.Channel()
	if err != nil {
		return err
	}

	if _, err := ch.QueueDeclare(
		queueName,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,   // arguments
	); err != nil {
		return fmt.Errorf("failed to declare queue '%s': %w", queueName, err)
	}

	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
	}

	err = ch.PublishWithContext(
		ctx,
		"",        // default exchange routes on queue name
		queueName, // routing key
		false,     // mandatory
		false,     // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now(),
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish message to queue '%s': %w", queueName, err)
	}

	log.WithField("queue", queueName).Debug("Message published")
	return nil
}
