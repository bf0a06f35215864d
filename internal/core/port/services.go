package port

import (
	"context"

	"github.com/abhayg44/RFP-System/internal/core/domain"
)

// IngestionService applies one inbound AI response: dedupe, persist, notify.
// It returns domain.ErrUnknownOrigin for undispatchable messages; errors from
// persistence and notification are absorbed (logged) once origin is known.
type IngestionService interface {
	Process(ctx context.Context, msg *domain.InboundMessage) error
}

// EvaluationService upserts the evaluation record for an RFP.
type EvaluationService interface {
	Apply(ctx context.Context, msg *domain.EvaluationResultMessage) error
}
