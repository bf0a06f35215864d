package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	log "github.com/sirupsen/logrus"

	"github.com/abhayg44/RFP-System/internal/core/domain"
	"github.com/abhayg44/RFP-System/internal/core/port"
	"github.com/abhayg44/RFP-System/internal/core/service"
)

// ProcurementHTTPHandler queues documents for AI processing. Callers get an
// immediate queuing confirmation; persistence and notification outcomes are
// only observable through the polling endpoints outside this service.
type ProcurementHTTPHandler struct {
	publisher port.QueuePublisher
	storage   port.IngestionStorage
}

// inboundRequest tolerates the mixed field naming the original clients send.
type inboundRequest struct {
	MessageID    string `json:"messageId"`
	Text         string `json:"text"`
	ClientEmail  string `json:"client_email"`
	Email        string `json:"email"`
	VendorEmail  string `json:"vendor_email"`
	VendorEmail2 string `json:"vendorEmail"`
	RFPID        string `json:"rfp_id"`
	VendorID     string `json:"vendor_id"`
}

func NewProcurementHTTPHandler(publisher port.QueuePublisher, storage port.IngestionStorage) *ProcurementHTTPHandler {
	return &ProcurementHTTPHandler{
		publisher: publisher,
		storage:   storage,
	}
}

// CreateClientRequest accepts one or many client requests and queues each for
// AI extraction.
func (h *ProcurementHTTPHandler) CreateClientRequest() echo.HandlerFunc {
	return func(c echo.Context) error {
		requests, err := bindRequests(c)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request format"})
		}

		for _, item := range requests {
			msg := domain.AIRequestMessage{
				Origin:      domain.OriginClient,
				MessageID:   messageID(item),
				Text:        item.Text,
				ClientEmail: firstNonEmpty(item.ClientEmail, item.Email),
				VendorEmail: firstNonEmpty(item.VendorEmail, item.VendorEmail2),
			}
			if err := h.publisher.Publish(c.Request().Context(), domain.AIRequestQueue, msg); err != nil {
				log.WithError(err).Error("Failed to queue client request")
				return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to queue request"})
			}
		}

		return c.JSON(http.StatusCreated, map[string]string{"message": "Client request(s) queued for AI processing"})
	}
}

// CreateVendorProposal accepts one or many vendor proposals and queues each
// for AI extraction.
func (h *ProcurementHTTPHandler) CreateVendorProposal() echo.HandlerFunc {
	return func(c echo.Context) error {
		requests, err := bindRequests(c)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request format"})
		}

		for _, item := range requests {
			msg := domain.AIRequestMessage{
				Origin:      domain.OriginVendor,
				MessageID:   messageID(item),
				Text:        item.Text,
				ClientEmail: firstNonEmpty(item.ClientEmail, item.Email),
				VendorEmail: firstNonEmpty(item.VendorEmail, item.VendorEmail2),
				RFPID:       item.RFPID,
				VendorID:    item.VendorID,
			}
			if err := h.publisher.Publish(c.Request().Context(), domain.AIRequestQueue, msg); err != nil {
				log.WithError(err).Error("Failed to queue vendor proposal")
				return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to queue request"})
			}
		}

		return c.JSON(http.StatusCreated, map[string]string{"message": "Proposal(s) queued for AI processing"})
	}
}

// TriggerEvaluation publishes a batch-evaluation request for all proposals of
// an RFP.
func (h *ProcurementHTTPHandler) TriggerEvaluation() echo.HandlerFunc {
	return func(c echo.Context) error {
		rfpID := c.Param("id")
		if err := service.ValidateDocumentID("rfp_id", rfpID); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}

		ctx := c.Request().Context()
		proposals, err := h.storage.ListProposalsByRFP(ctx, rfpID)
		if err != nil {
			log.WithError(err).WithField("rfpID", rfpID).Error("Failed to load proposals for evaluation")
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to load proposals"})
		}
		if len(proposals) == 0 {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "No proposals found for this RFP"})
		}

		snapshots := make([]domain.ProposalSnapshot, 0, len(proposals))
		for _, p := range proposals {
			snapshots = append(snapshots, domain.ProposalSnapshot{
				ID:          p.ID,
				VendorID:    p.VendorID,
				VendorEmail: p.VendorEmail,
				Extracted:   p.Extracted,
				ReceivedAt:  p.ReceivedAt.UTC().Format(time.RFC3339),
			})
		}

		msg := domain.EvaluationRequestMessage{
			RFPID:       rfpID,
			Proposals:   snapshots,
			ClientEmail: proposals[0].ClientEmail,
			Trigger:     "manual",
			Timestamp:   time.Now().UTC().Format(time.RFC3339),
		}

		if err := h.publisher.Publish(ctx, domain.ProposalsEvaluationQueue, msg); err != nil {
			log.WithError(err).WithField("rfpID", rfpID).Error("Failed to queue evaluation request")
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to queue evaluation"})
		}

		return c.JSON(http.StatusAccepted, map[string]any{
			"message":         "Evaluation triggered successfully",
			"proposals_count": len(proposals),
		})
	}
}

// bindRequests accepts a single object or an array of objects.
func bindRequests(c echo.Context) ([]inboundRequest, error) {
	var many []inboundRequest
	body, err := readBody(c)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(body, &many); err == nil {
		return many, nil
	}

	var one inboundRequest
	if err := json.Unmarshal(body, &one); err != nil {
		return nil, err
	}
	return []inboundRequest{one}, nil
}

func readBody(c echo.Context) ([]byte, error) {
	var raw json.RawMessage
	if err := json.NewDecoder(c.Request().Body).Decode(&raw); err != nil {
		return nil, err
	}
	return raw, nil
}

func messageID(item inboundRequest) string {
	if item.MessageID != "" {
		return item.MessageID
	}
	return uuid.NewString()
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
