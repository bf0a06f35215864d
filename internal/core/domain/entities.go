package domain

import (
	"encoding/json"
	"time"
)

// ExtractedTerms holds the structured offer terms the AI worker pulls out of
// a vendor's free-text proposal. Numeric fields are nil when the worker could
// not determine a value.
type ExtractedTerms struct {
	PricePerPiece *float64 `json:"price_per_piece"`
	TotalPrice    *float64 `json:"total_price"`
	Quantity      *int     `json:"quantity"`
	Terms         string   `json:"terms,omitempty"`
	Warranty      string   `json:"warranty,omitempty"`
	DeliveryTime  string   `json:"delivery_time,omitempty"`
}

// Proposal is one vendor response to one RFP. MessageID is empty when the
// inbound message carried none; at most one proposal exists per distinct
// non-empty MessageID.
type Proposal struct {
	ID          string         `json:"_id"`
	MessageID   string         `json:"messageId,omitempty"`
	RFPID       string         `json:"rfp_id"`
	VendorID    string         `json:"vendor_id"`
	ClientEmail string         `json:"client_email"`
	VendorEmail string         `json:"vendor_email"`
	Subject     string         `json:"subject"`
	RawText     string         `json:"raw_email,omitempty"`
	Extracted   ExtractedTerms `json:"extracted"`
	ReceivedAt  time.Time      `json:"received_at"`
}

// Item is one line of an RFP's requested goods. Quantity keeps whatever shape
// the wire carried ("2 boxes", 2, null).
type Item struct {
	Name     string `json:"name"`
	Quantity any    `json:"quantity"`
	Specs    string `json:"specs,omitempty"`
}

type RFP struct {
	ID           string    `json:"_id"`
	MessageID    string    `json:"messageId,omitempty"`
	Title        string    `json:"title"`
	Description  string    `json:"description,omitempty"`
	Budget       *float64  `json:"budget"`
	ClientEmail  *string   `json:"client_email"`
	VendorEmail  *string   `json:"vendor_email"`
	Subject      string    `json:"subject"`
	Items        []Item    `json:"items"`
	DeliveryTime string    `json:"delivery_time,omitempty"`
	PaymentTerms string    `json:"payment_terms,omitempty"`
	Warranty     string    `json:"warranty,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// RankedEntry is one slot of a top-3 ranking list. The proposal snapshot and
// scores are kept opaque; their shape belongs to the evaluator.
type RankedEntry struct {
	Proposal  json.RawMessage `json:"proposal"`
	Reasoning string          `json:"reasoning"`
	Scores    json.RawMessage `json:"scores,omitempty"`
}

// EvaluationResult is the ranking payload produced by the AI evaluator.
type EvaluationResult struct {
	BestPriceTop3           []RankedEntry `json:"best_price_top3"`
	BestWarrantyTop3        []RankedEntry `json:"best_warranty_top3"`
	BestDeliveryTop3        []RankedEntry `json:"best_delivery_top3"`
	BestQuantityTop3        []RankedEntry `json:"best_quantity_top3"`
	OverallBestTop3         []RankedEntry `json:"overall_best_top3"`
	TotalProposalsEvaluated int           `json:"total_proposals_evaluated"`
}

// Evaluation is the single current evaluation record for an RFP. A new result
// for the same RFP replaces Result, SourceTimestamp and EvaluatedAt in place;
// no history is kept.
type Evaluation struct {
	ID              string           `json:"_id"`
	RFPID           string           `json:"rfp_id"`
	ClientEmail     string           `json:"client_email"`
	Result          EvaluationResult `json:"evaluation"`
	SourceTimestamp string           `json:"timestamp,omitempty"`
	EvaluatedAt     time.Time        `json:"evaluated_at"`
}
