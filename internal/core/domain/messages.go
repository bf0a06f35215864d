package domain

import "encoding/json"

// Queue names shared with the external AI worker. All queues are durable and
// carry persistent JSON payloads.
const (
	AIRequestQueue           = "ai_request_queue"
	AIResponsesQueue         = "ai_responses_queue"
	ProposalsEvaluationQueue = "proposals_evaluation_queue"
	EvaluationResultsQueue   = "evaluation_results_queue"
)

type Origin string

const (
	OriginClient Origin = "client"
	OriginVendor Origin = "vendor"
)

// RawExtracted mirrors the extracted block of an inbound AI response before
// normalization. Numeric fields stay raw because the worker sometimes emits
// currency-formatted strings ("$1,234.50") instead of numbers.
type RawExtracted struct {
	PricePerPiece json.RawMessage `json:"price_per_piece,omitempty"`
	TotalPrice    json.RawMessage `json:"total_price,omitempty"`
	Quantity      json.RawMessage `json:"quantity,omitempty"`
	Terms         string          `json:"terms,omitempty"`
	Warranty      string          `json:"warranty,omitempty"`
	DeliveryTime  string          `json:"delivery_time,omitempty"`
}

// InboundMessage is the loose wire shape read off ai_responses_queue. It is
// never persisted as-is; the normalizer turns it into a Proposal or RFP.
type InboundMessage struct {
	Origin           Origin          `json:"origin" validate:"required,oneof=client vendor"`
	MessageID        string          `json:"messageId,omitempty"`
	Text             string          `json:"text,omitempty"`
	Subject          string          `json:"subject,omitempty"`
	Title            string          `json:"title,omitempty"`
	Description      string          `json:"description,omitempty"`
	ClientEmail      string          `json:"client_email,omitempty"`
	VendorEmail      string          `json:"vendor_email,omitempty"`
	RFPID            string          `json:"rfp_id,omitempty"`
	VendorID         string          `json:"vendor_id,omitempty"`
	MessageForClient string          `json:"message_for_client,omitempty"`
	MessageForVendor string          `json:"message_for_vendor,omitempty"`
	Extracted        RawExtracted    `json:"extracted"`
	Items            []Item          `json:"items,omitempty"`
	Budget           json.RawMessage `json:"budget,omitempty"`
	DeliveryTime     string          `json:"delivery_time,omitempty"`
	PaymentTerms     string          `json:"payment_terms,omitempty"`
	Warranty         string          `json:"warranty,omitempty"`

	// Raw is the undecoded delivery body, kept for fallback email bodies and
	// raw-text persistence. Set by the consumer handler, never marshaled.
	Raw json.RawMessage `json:"-"`
}

// AIRequestMessage is what the API publishes to ai_request_queue for the AI
// worker to process.
type AIRequestMessage struct {
	Origin      Origin `json:"origin"`
	MessageID   string `json:"messageId"`
	Text        string `json:"text"`
	ClientEmail string `json:"client_email,omitempty"`
	VendorEmail string `json:"vendor_email,omitempty"`
	RFPID       string `json:"rfp_id,omitempty"`
	VendorID    string `json:"vendor_id,omitempty"`
}

// ProposalSnapshot is the reduced proposal shape sent to the evaluator.
type ProposalSnapshot struct {
	ID          string         `json:"_id"`
	VendorID    string         `json:"vendor_id"`
	VendorEmail string         `json:"vendor_email"`
	Extracted   ExtractedTerms `json:"extracted"`
	ReceivedAt  string         `json:"received_at"`
}

// EvaluationRequestMessage is published to proposals_evaluation_queue when a
// client triggers evaluation of an RFP's proposals.
type EvaluationRequestMessage struct {
	RFPID       string             `json:"rfp_id"`
	Proposals   []ProposalSnapshot `json:"proposals"`
	ClientEmail string             `json:"client_email"`
	Trigger     string             `json:"trigger"`
	Timestamp   string             `json:"timestamp"`
}

// EvaluationResultMessage arrives on evaluation_results_queue once the
// evaluator has ranked an RFP's proposals.
type EvaluationResultMessage struct {
	RFPID       string           `json:"rfp_id" validate:"required,len=24,hexadecimal"`
	ClientEmail string           `json:"client_email"`
	Evaluation  EvaluationResult `json:"evaluation"`
	Timestamp   string           `json:"timestamp,omitempty"`
}
