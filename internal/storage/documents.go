package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/abhayg44/RFP-System/internal/core/domain"
)

const pgUniqueViolation = "23505"

// DocumentsStorage persists proposals and RFPs. messageId uniqueness is
// sparse: a partial unique index applies only to rows that carry one, so any
// number of records without a messageId can coexist. An insert that loses
// the race on a messageId returns domain.ErrDuplicateMessage.
type DocumentsStorage struct {
	db *PostgresDB
}

func NewDocumentsStorage(db *PostgresDB) *DocumentsStorage {
	return &DocumentsStorage{db: db}
}

func (s *DocumentsStorage) FindProposalByMessageID(ctx context.Context, messageID string) (*domain.Proposal, error) {
	var (
		p   domain.Proposal
		mid *string
	)
	err := s.db.QueryRow(ctx,
		`SELECT id, message_id, rfp_id, vendor_id, client_email, vendor_email, subject, raw_text, extracted, received_at
		 FROM proposals WHERE message_id = $1`,
		messageID,
	).Scan(&p.ID, &mid, &p.RFPID, &p.VendorID, &p.ClientEmail, &p.VendorEmail, &p.Subject, &p.RawText, &p.Extracted, &p.ReceivedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if mid != nil {
		p.MessageID = *mid
	}
	return &p, nil
}

func (s *DocumentsStorage) InsertProposal(ctx context.Context, proposal *domain.Proposal) error {
	if proposal.ID == "" {
		proposal.ID = newDocumentID()
	}

	_, err := s.db.Exec(ctx,
		`INSERT INTO proposals (id, message_id, rfp_id, vendor_id, client_email, vendor_email, subject, raw_text, extracted, received_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		proposal.ID,
		nullableID(proposal.MessageID),
		proposal.RFPID,
		proposal.VendorID,
		proposal.ClientEmail,
		proposal.VendorEmail,
		proposal.Subject,
		proposal.RawText,
		proposal.Extracted,
		proposal.ReceivedAt,
	)
	return mapDuplicate(err)
}

func (s *DocumentsStorage) FindRFPByMessageID(ctx context.Context, messageID string) (*domain.RFP, error) {
	var (
		r   domain.RFP
		mid *string
	)
	err := s.db.QueryRow(ctx,
		`SELECT id, message_id, title, description, budget, client_email, vendor_email, subject, items, delivery_time, payment_terms, warranty, created_at
		 FROM rfps WHERE message_id = $1`,
		messageID,
	).Scan(&r.ID, &mid, &r.Title, &r.Description, &r.Budget, &r.ClientEmail, &r.VendorEmail, &r.Subject, &r.Items, &r.DeliveryTime, &r.PaymentTerms, &r.Warranty, &r.CreatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if mid != nil {
		r.MessageID = *mid
	}
	return &r, nil
}

func (s *DocumentsStorage) InsertRFP(ctx context.Context, rfp *domain.RFP) error {
	if rfp.ID == "" {
		rfp.ID = newDocumentID()
	}

	_, err := s.db.Exec(ctx,
		`INSERT INTO rfps (id, message_id, title, description, budget, client_email, vendor_email, subject, items, delivery_time, payment_terms, warranty, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		rfp.ID,
		nullableID(rfp.MessageID),
		rfp.Title,
		rfp.Description,
		rfp.Budget,
		rfp.ClientEmail,
		rfp.VendorEmail,
		rfp.Subject,
		rfp.Items,
		rfp.DeliveryTime,
		rfp.PaymentTerms,
		rfp.Warranty,
		rfp.CreatedAt,
	)
	return mapDuplicate(err)
}

func (s *DocumentsStorage) ListProposalsByRFP(ctx context.Context, rfpID string) ([]domain.Proposal, error) {
	rows, err := s.db.Query(ctx,
		`SELECT id, message_id, rfp_id, vendor_id, client_email, vendor_email, subject, raw_text, extracted, received_at
		 FROM proposals WHERE rfp_id = $1 ORDER BY received_at DESC`,
		rfpID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var proposals []domain.Proposal
	for rows.Next() {
		var (
			p   domain.Proposal
			mid *string
		)
		if err := rows.Scan(&p.ID, &mid, &p.RFPID, &p.VendorID, &p.ClientEmail, &p.VendorEmail, &p.Subject, &p.RawText, &p.Extracted, &p.ReceivedAt); err != nil {
			return nil, err
		}
		if mid != nil {
			p.MessageID = *mid
		}
		proposals = append(proposals, p)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return proposals, nil
}

func nullableID(messageID string) *string {
	if messageID == "" {
		return nil
	}
	return &messageID
}

func mapDuplicate(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return fmt.Errorf("%w: %s", domain.ErrDuplicateMessage, pgErr.ConstraintName)
	}
	return err
}
