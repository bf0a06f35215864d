package storage

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/abhayg44/RFP-System/internal/core/domain"
)

// EvaluationsStorage keeps one evaluation row per RFP, replaced in place on
// every later result for the same rfp_id.
type EvaluationsStorage struct {
	db *PostgresDB
}

func NewEvaluationsStorage(db *PostgresDB) *EvaluationsStorage {
	return &EvaluationsStorage{db: db}
}

func (s *EvaluationsStorage) GetByRFPID(ctx context.Context, rfpID string) (*domain.Evaluation, error) {
	var e domain.Evaluation
	err := s.db.QueryRow(ctx,
		`SELECT id, rfp_id, client_email, result, source_timestamp, evaluated_at
		 FROM evaluations WHERE rfp_id = $1`,
		rfpID,
	).Scan(&e.ID, &e.RFPID, &e.ClientEmail, &e.Result, &e.SourceTimestamp, &e.EvaluatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (s *EvaluationsStorage) UpsertByRFPID(ctx context.Context, evaluation *domain.Evaluation) error {
	if evaluation.ID == "" {
		evaluation.ID = newDocumentID()
	}

	_, err := s.db.Exec(ctx,
		`INSERT INTO evaluations (id, rfp_id, client_email, result, source_timestamp, evaluated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 ON CONFLICT (rfp_id)
		 DO UPDATE SET
		     client_email = EXCLUDED.client_email,
		     result = EXCLUDED.result,
		     source_timestamp = EXCLUDED.source_timestamp,
		     evaluated_at = EXCLUDED.evaluated_at`,
		evaluation.ID,
		evaluation.RFPID,
		evaluation.ClientEmail,
		evaluation.Result,
		evaluation.SourceTimestamp,
		evaluation.EvaluatedAt,
	)
	return err
}
