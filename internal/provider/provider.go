// Package provider defines the interface for sent-email output sinks.
package provider

import (
	"context"

	"github.com/shineum/study-mailer/internal/email"
)

// Provider is the interface that output sinks must implement.
// Each provider receives the envelope built from one sent record.
type Provider interface {
	// Deliver hands an email envelope to this provider.
	// It returns an error if the output fails.
	Deliver(ctx context.Context, msg *email.Email) error

	// Name returns the human-readable name of this provider.
	Name() string
}
