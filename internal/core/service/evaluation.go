package service

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/abhayg44/RFP-System/internal/core/domain"
	"github.com/abhayg44/RFP-System/internal/core/port"
)

// EvaluationService persists evaluation results coming off
// evaluation_results_queue. The rfp_id is the natural idempotency key: the
// upsert replaces the existing record's ranking lists and timestamps in
// place, so only the latest evaluation survives.
type EvaluationService struct {
	storage port.EvaluationStorage
	now     func() time.Time
}

func NewEvaluationService(storage port.EvaluationStorage) *EvaluationService {
	return &EvaluationService{
		storage: storage,
		now:     time.Now,
	}
}

func (s *EvaluationService) Apply(ctx context.Context, msg *domain.EvaluationResultMessage) error {
	evaluation := &domain.Evaluation{
		RFPID:           msg.RFPID,
		ClientEmail:     msg.ClientEmail,
		Result:          msg.Evaluation,
		SourceTimestamp: msg.Timestamp,
		EvaluatedAt:     s.now(),
	}

	if err := s.storage.UpsertByRFPID(ctx, evaluation); err != nil {
		return err
	}

	log.WithFields(log.Fields{
		"rfpID":          msg.RFPID,
		"totalProposals": msg.Evaluation.TotalProposalsEvaluated,
	}).Info("Evaluation result saved")
	return nil
}
