package service

import (
	"context"
	"errors"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/abhayg44/RFP-System/internal/core/domain"
	"github.com/abhayg44/RFP-System/internal/core/port"
)

// IngestionService applies AI responses from ai_responses_queue: it
// deduplicates by messageId, routes on origin, persists the normalized record
// and notifies the counterpart party. Persistence and notification are
// independent best-effort effects, not a transaction: a persistence failure
// is logged and the notification is still attempted, and notification fires
// again on every redelivery of an already-persisted message.
type IngestionService struct {
	storage  port.IngestionStorage
	notifier port.NotifierClient
	now      func() time.Time
}

func NewIngestionService(storage port.IngestionStorage, notifier port.NotifierClient) *IngestionService {
	return &IngestionService{
		storage:  storage,
		notifier: notifier,
		now:      time.Now,
	}
}

// Process handles one structurally valid inbound message. It returns
// domain.ErrUnknownOrigin when the origin discriminator cannot be dispatched
// and propagates context errors; every other failure is absorbed here so the
// consumer can acknowledge the delivery.
func (s *IngestionService) Process(ctx context.Context, msg *domain.InboundMessage) error {
	switch msg.Origin {
	case domain.OriginVendor:
		return s.processVendor(ctx, msg)
	case domain.OriginClient:
		return s.processClient(ctx, msg)
	default:
		return domain.ErrUnknownOrigin
	}
}

func (s *IngestionService) processVendor(ctx context.Context, msg *domain.InboundMessage) error {
	fields := log.Fields{"origin": msg.Origin, "messageId": msg.MessageID, "rfpID": msg.RFPID}

	exists, err := s.proposalExists(ctx, msg.MessageID)
	if err != nil {
		if ctx.Err() != nil {
			return err
		}
		log.WithError(err).WithFields(fields).Error("Proposal dedupe lookup failed, attempting insert")
	}

	if exists {
		log.WithFields(fields).Info("Proposal already persisted for messageId, skipping insert")
	} else if err := s.persistProposal(ctx, msg); err != nil {
		if ctx.Err() != nil {
			return err
		}
		log.WithError(err).WithFields(fields).WithField("body", string(msg.Raw)).Error("Failed to persist proposal")
	}

	subject := msg.Subject
	if subject == "" {
		subject = defaultProposalSubj
	}
	body := firstNonEmpty(msg.MessageForClient, msg.Text, string(msg.Raw))

	if err := s.notifier.Send(ctx, msg.ClientEmail, subject, body); err != nil {
		if ctx.Err() != nil {
			return err
		}
		log.WithError(err).WithFields(fields).WithField("to", msg.ClientEmail).Error("Failed to notify client")
	} else {
		log.WithFields(fields).Info("Client notified for vendor-origin message")
	}

	return nil
}

func (s *IngestionService) processClient(ctx context.Context, msg *domain.InboundMessage) error {
	fields := log.Fields{"origin": msg.Origin, "messageId": msg.MessageID}

	exists, err := s.rfpExists(ctx, msg.MessageID)
	if err != nil {
		if ctx.Err() != nil {
			return err
		}
		log.WithError(err).WithFields(fields).Error("RFP dedupe lookup failed, attempting insert")
	}

	if exists {
		log.WithFields(fields).Info("RFP already persisted for messageId, skipping insert")
	} else if err := s.persistRFP(ctx, msg); err != nil {
		if ctx.Err() != nil {
			return err
		}
		log.WithError(err).WithFields(fields).WithField("body", string(msg.Raw)).Error("Failed to persist RFP")
	}

	subject := msg.Subject
	if subject == "" {
		subject = defaultRFPSubj
	}
	body := firstNonEmpty(msg.MessageForVendor, msg.Text, string(msg.Raw))

	if err := s.notifier.Send(ctx, msg.VendorEmail, subject, body); err != nil {
		if ctx.Err() != nil {
			return err
		}
		log.WithError(err).WithFields(fields).WithField("to", msg.VendorEmail).Error("Failed to notify vendor")
	} else {
		log.WithFields(fields).Info("Vendor notified for client-origin message")
	}

	return nil
}

// proposalExists reports whether a proposal was already persisted for the
// messageId. Messages without a messageId skip deduplication entirely; the
// store's sparse unique index is then the only guard against retries.
func (s *IngestionService) proposalExists(ctx context.Context, messageID string) (bool, error) {
	if messageID == "" {
		return false, nil
	}
	existing, err := s.storage.FindProposalByMessageID(ctx, messageID)
	if err != nil {
		return false, err
	}
	return existing != nil, nil
}

func (s *IngestionService) rfpExists(ctx context.Context, messageID string) (bool, error) {
	if messageID == "" {
		return false, nil
	}
	existing, err := s.storage.FindRFPByMessageID(ctx, messageID)
	if err != nil {
		return false, err
	}
	return existing != nil, nil
}

func (s *IngestionService) persistProposal(ctx context.Context, msg *domain.InboundMessage) error {
	proposal, err := NormalizeVendorMessage(msg, s.now())
	if err != nil {
		return err
	}

	err = s.storage.InsertProposal(ctx, proposal)
	if errors.Is(err, domain.ErrDuplicateMessage) {
		// Two consumers raced on the same messageId; the index arbitrated.
		log.WithField("messageId", msg.MessageID).Info("Proposal insert lost duplicate race, record already exists")
		return nil
	}
	if err != nil {
		return err
	}

	log.WithFields(log.Fields{"proposalID": proposal.ID, "messageId": proposal.MessageID}).Info("Proposal saved")
	return nil
}

func (s *IngestionService) persistRFP(ctx context.Context, msg *domain.InboundMessage) error {
	rfp := NormalizeClientMessage(msg, s.now())

	err := s.storage.InsertRFP(ctx, rfp)
	if errors.Is(err, domain.ErrDuplicateMessage) {
		log.WithField("messageId", msg.MessageID).Info("RFP insert lost duplicate race, record already exists")
		return nil
	}
	if err != nil {
		return err
	}

	log.WithFields(log.Fields{"rfpID": rfp.ID, "messageId": rfp.MessageID}).Info("RFP saved")
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
