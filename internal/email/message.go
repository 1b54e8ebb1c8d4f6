// Package email defines the sent-email record, the helpers that build and
// enrich it, and the outbound envelope handed to providers.
package email

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/shineum/study-mailer/internal/address"
)

// Email is the outbound envelope for a single sent record.
type Email struct {
	From       string
	MaskedFrom string
	To         []string
	Subject    string
	Date       string
	TextBody   string
	MessageID  string
}

// FromRecord builds the outbound envelope for rec. The rendered SentText
// becomes the text body and a fresh Message-Id is assigned.
func FromRecord(rec *Record) *Email {
	return &Email{
		From:       rec.Sender,
		MaskedFrom: rec.MaskedSender,
		To:         []string{rec.Recipient},
		Subject:    rec.Subject,
		Date:       rec.Date,
		TextBody:   rec.SentText,
		MessageID:  newMessageID(rec.Sender),
	}
}

// newMessageID returns an RFC 5322 style message id using the sender's domain.
func newMessageID(sender string) string {
	domain := "localhost"
	if _, d, err := address.Split(sender); err == nil && d != "" {
		domain = d
	}
	return fmt.Sprintf("<%s@%s>", uuid.NewString(), domain)
}
