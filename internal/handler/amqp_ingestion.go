package handler

import (
	"context"
	"encoding/json"

	"github.com/go-playground/validator/v10"
	amqp "github.com/rabbitmq/amqp091-go"
	log "github.com/sirupsen/logrus"

	"github.com/abhayg44/RFP-System/internal/core/domain"
	"github.com/abhayg44/RFP-System/internal/core/port"
)

// IngestionConsumerHandler receives AI responses and owns the delivery's
// acknowledgment.
//
// Ack policy: structural failures (unparseable body, missing or unknown
// origin, handler deadline) nack with requeue on first delivery and without
// requeue once redelivered, bounding retries to one before the message drops
// to a dead-letter exchange if one is bound. Once origin is known the message
// is always acked: persistence and notification errors are logged effects,
// and redelivering them would only hammer a store that keeps failing
// identically.
type IngestionConsumerHandler struct {
	ingestion port.IngestionService
	validate  *validator.Validate
}

func NewIngestionConsumerHandler(ingestion port.IngestionService, validate *validator.Validate) *IngestionConsumerHandler {
	return &IngestionConsumerHandler{
		ingestion: ingestion,
		validate:  validate,
	}
}

func (h *IngestionConsumerHandler) Handle(ctx context.Context, delivery *amqp.Delivery) {
	var msg domain.InboundMessage

	if err := json.Unmarshal(delivery.Body, &msg); err != nil {
		log.WithError(err).WithField("body", truncate(delivery.Body, 1000)).Error("Failed to parse AI response")
		h.reject(delivery)
		return
	}
	msg.Raw = delivery.Body

	if err := h.validate.Struct(&msg); err != nil {
		log.WithError(err).WithField("origin", msg.Origin).Error("AI response failed validation")
		h.reject(delivery)
		return
	}

	if err := h.ingestion.Process(ctx, &msg); err != nil {
		log.WithError(err).WithFields(log.Fields{
			"origin":    msg.Origin,
			"messageId": msg.MessageID,
		}).Error("Failed to process AI response")
		h.reject(delivery)
		return
	}

	if err := delivery.Ack(false); err != nil {
		log.WithError(err).Error("Failed to ack delivery")
	}
}

// reject requeues the delivery once; a redelivered failure is dropped (or
// dead-lettered if the queue is configured with a DLX).
func (h *IngestionConsumerHandler) reject(delivery *amqp.Delivery) {
	if err := delivery.Nack(false, !delivery.Redelivered); err != nil {
		log.WithError(err).Error("Failed to nack delivery")
	}
}

func truncate(b []byte, n int) string {
	if len(b) > n {
		b = b[:n]
	}
	return string(b)
}
