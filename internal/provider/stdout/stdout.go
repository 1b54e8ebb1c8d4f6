// Package stdout implements a Provider that prints sent emails to standard output.
package stdout

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/shineum/study-mailer/internal/email"
)

const separator = "========================================\n"

// Provider prints email envelopes in a human-readable format.
type Provider struct {
	// writer is the output destination, defaulting to os.Stdout.
	writer io.Writer
}

// New creates a new stdout Provider that writes to os.Stdout.
func New() *Provider {
	return &Provider{writer: os.Stdout}
}

// NewWithWriter creates a new stdout Provider that writes to the given writer.
func NewWithWriter(w io.Writer) *Provider {
	return &Provider{writer: w}
}

// Deliver prints the envelope: message id, masked sender and date, then
// the rendered text body, framed by separator lines.
func (p *Provider) Deliver(ctx context.Context, msg *email.Email) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var b strings.Builder

	b.WriteString(separator)
	if msg.MessageID != "" {
		fmt.Fprintf(&b, "Message-Id: %s\n", msg.MessageID)
	}
	if msg.MaskedFrom != "" {
		fmt.Fprintf(&b, "Sender: %s\n", msg.MaskedFrom)
	}
	if msg.Date != "" {
		fmt.Fprintf(&b, "Date: %s\n", msg.Date)
	}
	b.WriteString(msg.TextBody + "\n")
	b.WriteString(separator)

	if _, err := io.WriteString(p.writer, b.String()); err != nil {
		return fmt.Errorf("failed to write email: %w", err)
	}
	return nil
}

// Name returns the provider name.
func (p *Provider) Name() string {
	return "stdout"
}
