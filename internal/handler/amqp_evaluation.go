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

// EvaluationConsumerHandler receives completed evaluation results. An
// evaluation is a derived, recomputable artifact, so processing failures nack
// without requeue rather than risk a poison-message loop; re-triggering the
// evaluation regenerates the data.
type EvaluationConsumerHandler struct {
	evaluation port.EvaluationService
	validate   *validator.Validate
}

func NewEvaluationConsumerHandler(evaluation port.EvaluationService, validate *validator.Validate) *EvaluationConsumerHandler {
	return &EvaluationConsumerHandler{
		evaluation: evaluation,
		validate:   validate,
	}
}

func (h *EvaluationConsumerHandler) Handle(ctx context.Context, delivery *amqp.Delivery) {
	var msg domain.EvaluationResultMessage

	if err := json.Unmarshal(delivery.Body, &msg); err != nil {
		log.WithError(err).WithField("body", truncate(delivery.Body, 1000)).Error("Failed to parse evaluation result")
		h.drop(delivery)
		return
	}

	if err := h.validate.Struct(&msg); err != nil {
		log.WithError(err).WithField("rfpID", msg.RFPID).Error("Evaluation result failed validation")
		h.drop(delivery)
		return
	}

	log.WithFields(log.Fields{
		"rfpID":       msg.RFPID,
		"clientEmail": msg.ClientEmail,
		"timestamp":   msg.Timestamp,
	}).Info("Received evaluation result")

	if err := h.evaluation.Apply(ctx, &msg); err != nil {
		log.WithError(err).WithField("rfpID", msg.RFPID).Error("Failed to save evaluation result")
		h.drop(delivery)
		return
	}

	if err := delivery.Ack(false); err != nil {
		log.WithError(err).Error("Failed to ack delivery")
	}
}

func (h *EvaluationConsumerHandler) drop(delivery *amqp.Delivery) {
	if err := delivery.Nack(false, false); err != nil {
		log.WithError(err).Error("Failed to nack delivery")
	}
}
