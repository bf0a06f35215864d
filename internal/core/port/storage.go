package port

import (
	"context"

	"github.com/abhayg44/RFP-System/internal/core/domain"
)

// IngestionStorage is the document-store surface owned by the ingestion
// consumer. Find methods return (nil, nil) when no record matches; Insert
// methods return domain.ErrDuplicateMessage when a concurrent writer already
// claimed the same messageId.
type IngestionStorage interface {
	FindProposalByMessageID(ctx context.Context, messageID string) (*domain.Proposal, error)
	InsertProposal(ctx context.Context, proposal *domain.Proposal) error
	FindRFPByMessageID(ctx context.Context, messageID string) (*domain.RFP, error)
	InsertRFP(ctx context.Context, rfp *domain.RFP) error
	ListProposalsByRFP(ctx context.Context, rfpID string) ([]domain.Proposal, error)
}

// EvaluationStorage keeps at most one evaluation per RFP. Upsert replaces the
// existing record's fields in place, keyed by rfp_id.
type EvaluationStorage interface {
	GetByRFPID(ctx context.Context, rfpID string) (*domain.Evaluation, error)
	UpsertByRFPID(ctx context.Context, evaluation *domain.Evaluation) error
}
