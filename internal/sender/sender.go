// Package sender validates a batch of recipients and builds one enriched
// email record per recipient.
package sender

import (
	"log/slog"

	"github.com/shineum/study-mailer/internal/address"
	"github.com/shineum/study-mailer/internal/email"
)

// DefaultAddress is the sender used when none is configured.
const DefaultAddress = "default@study.com"

// Sender turns recipients, a subject and a message into sent records.
// It is immutable after New and safe for concurrent use.
type Sender struct {
	address   string
	validator *address.Validator
	clock     email.Clock
}

// Option configures a Sender.
type Option func(*Sender)

// WithAddress sets the sender address.
func WithAddress(addr string) Option {
	return func(s *Sender) {
		s.address = addr
	}
}

// WithValidator sets the validator used to filter addresses.
func WithValidator(v *address.Validator) Option {
	return func(s *Sender) {
		if v != nil {
			s.validator = v
		}
	}
}

// WithClock sets the clock used to date records.
func WithClock(c email.Clock) Option {
	return func(s *Sender) {
		if c != nil {
			s.clock = c
		}
	}
}

// New creates a Sender with the default address, suffix set and system clock,
// modified by opts.
func New(opts ...Option) *Sender {
	s := &Sender{
		address:   DefaultAddress,
		validator: address.NewValidator(),
		clock:     email.SystemClock,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Address returns the configured sender address.
func (s *Sender) Address() string {
	return s.address
}

// Send is shorthand for New(opts...).Send(recipients, subject, message).
func Send(recipients []string, subject, message string, opts ...Option) []*email.Record {
	return New(opts...).Send(recipients, subject, message)
}

// Send builds a completed record for every valid recipient other than the
// sender itself, in input order. Any rejected batch yields an empty slice:
// no recipients, an invalid sender, a blank subject or message, or nothing
// left after dropping self-addressed recipients.
//
// Addresses are matched against the filtered set as given, so a recipient or
// sender padded with whitespace is rejected. A sender that passes the filter
// but holds more than one @ also yields an empty slice; the split error is
// logged, not returned.
func (s *Sender) Send(recipients []string, subject, message string) []*email.Record {
	result := []*email.Record{}

	if len(recipients) == 0 {
		slog.Debug("send rejected: no recipients")
		return result
	}

	candidates := make([]string, 0, len(recipients)+1)
	candidates = append(candidates, recipients...)
	candidates = append(candidates, s.address)

	valid := make(map[string]struct{}, len(candidates))
	for _, a := range s.validator.Filter(candidates) {
		valid[a] = struct{}{}
	}

	if _, ok := valid[s.address]; !ok {
		slog.Debug("send rejected: sender address is not valid",
			"sender", address.MaskAddress(s.address),
		)
		return result
	}

	validRecipients := make([]string, 0, len(recipients))
	for _, r := range recipients {
		if _, ok := valid[r]; ok {
			validRecipients = append(validRecipients, r)
		}
	}

	isSubjectEmpty, isBodyEmpty := email.CheckEmptyFields(subject, message)
	if isSubjectEmpty || isBodyEmpty {
		slog.Debug("send rejected: empty fields",
			"subject_empty", isSubjectEmpty,
			"body_empty", isBodyEmpty,
		)
		return result
	}

	normalizedSender := address.Normalize(s.address)

	finalRecipients := make([]string, 0, len(validRecipients))
	for _, r := range validRecipients {
		if address.Normalize(r) != normalizedSender {
			finalRecipients = append(finalRecipients, r)
		}
	}

	if len(finalRecipients) == 0 {
		slog.Debug("send rejected: no recipients left after filtering",
			"given", len(recipients),
			"valid", len(validRecipients),
		)
		return result
	}

	cleanedSubject := email.CleanText(subject)
	cleanedBody := email.CleanText(message)

	for _, r := range finalRecipients {
		rec, err := s.build(normalizedSender, address.Normalize(r), cleanedSubject, cleanedBody)
		if err != nil {
			// Only reachable when the sender holds more than one @.
			slog.Error("failed to build record",
				"sender", address.MaskAddress(s.address),
				"error", err,
			)
			return []*email.Record{}
		}
		result = append(result, rec)
	}

	slog.Debug("records built",
		"sender", address.MaskAddress(s.address),
		"count", len(result),
	)

	return result
}

// build creates and enriches the record for a single recipient.
func (s *Sender) build(from, to, subject, body string) (*email.Record, error) {
	rec := email.NewRecord(from, to, subject, body)
	rec = email.StampDate(rec, s.clock)

	login, domain, err := address.Split(rec.Sender)
	if err != nil {
		return nil, err
	}
	rec.MaskedSender = address.Mask(login, domain)

	rec = email.AddShortBody(rec)
	rec.SentText = email.RenderSentText(rec)

	return rec, nil
}
