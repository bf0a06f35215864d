package service

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/abhayg44/RFP-System/internal/core/domain"
)

const (
	defaultClientTitle  = "Client Request"
	defaultProposalSubj = "New Proposal Received"
	defaultRFPSubj      = "New RFP Received"
)

var hexIDPattern = regexp.MustCompile(`^[0-9a-fA-F]{24}$`)

// ValidateDocumentID checks that value is a 24-character hex identifier, the
// store's id format. Returns a *domain.ValidationError naming the field.
func ValidateDocumentID(field, value string) error {
	if !hexIDPattern.MatchString(value) {
		return &domain.ValidationError{Field: field, Value: value}
	}
	return nil
}

// ParseMoney turns a raw JSON value into a plain number. Strings are accepted
// with currency formatting ("$1,234.50"); anything unparseable or absent
// normalizes to nil, never an error.
func ParseMoney(raw json.RawMessage) *float64 {
	if len(raw) == 0 {
		return nil
	}

	var n float64
	if err := json.Unmarshal(raw, &n); err == nil {
		return &n
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil
	}
	clean := strings.TrimSpace(s)
	clean = strings.NewReplacer("$", "", ",", "").Replace(clean)
	n, err := strconv.ParseFloat(clean, 64)
	if err != nil {
		return nil
	}
	return &n
}

// ParseQuantity parses a raw JSON value as an integer count, tolerating
// numeric strings. Unparseable values normalize to nil.
func ParseQuantity(raw json.RawMessage) *int {
	f := ParseMoney(raw)
	if f == nil {
		return nil
	}
	q := int(*f)
	return &q
}

// NormalizeVendorMessage validates identifiers and coerces the extracted
// numeric fields of a vendor-origin message into a Proposal ready for
// persistence. Identifier failures are hard errors; they must abort
// persistence for the message.
func NormalizeVendorMessage(msg *domain.InboundMessage, now time.Time) (*domain.Proposal, error) {
	if err := ValidateDocumentID("rfp_id", msg.RFPID); err != nil {
		return nil, err
	}
	if err := ValidateDocumentID("vendor_id", msg.VendorID); err != nil {
		return nil, err
	}

	raw := msg.Text
	if raw == "" {
		raw = string(msg.Raw)
	}

	subject := msg.Subject
	if subject == "" {
		subject = defaultProposalSubj
	}

	return &domain.Proposal{
		MessageID:   msg.MessageID,
		RFPID:       msg.RFPID,
		VendorID:    msg.VendorID,
		ClientEmail: msg.ClientEmail,
		VendorEmail: msg.VendorEmail,
		Subject:     subject,
		RawText:     raw,
		Extracted: domain.ExtractedTerms{
			PricePerPiece: ParseMoney(msg.Extracted.PricePerPiece),
			TotalPrice:    ParseMoney(msg.Extracted.TotalPrice),
			Quantity:      ParseQuantity(msg.Extracted.Quantity),
			Terms:         msg.Extracted.Terms,
			Warranty:      msg.Extracted.Warranty,
			DeliveryTime:  msg.Extracted.DeliveryTime,
		},
		ReceivedAt: now,
	}, nil
}

// NormalizeClientMessage builds an RFP from a client-origin message. Client
// messages are not vendor offers, so only defaulting applies: missing title
// falls back to subject, then to a fixed literal. Emails persist best-effort
// as nulls when absent.
func NormalizeClientMessage(msg *domain.InboundMessage, now time.Time) *domain.RFP {
	title := msg.Title
	if title == "" {
		title = msg.Subject
	}
	if title == "" {
		title = defaultClientTitle
	}

	description := msg.Description
	if description == "" {
		description = msg.Text
	}

	subject := msg.Subject
	if subject == "" {
		subject = defaultRFPSubj
	}

	items := msg.Items
	if items == nil {
		items = []domain.Item{}
	}

	return &domain.RFP{
		MessageID:    msg.MessageID,
		Title:        title,
		Description:  description,
		Budget:       ParseMoney(msg.Budget),
		ClientEmail:  optionalString(msg.ClientEmail),
		VendorEmail:  optionalString(msg.VendorEmail),
		Subject:      subject,
		Items:        items,
		DeliveryTime: msg.DeliveryTime,
		PaymentTerms: msg.PaymentTerms,
		Warranty:     msg.Warranty,
		CreatedAt:    now,
	}
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
