package stdout

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/shineum/study-mailer/internal/email"
)

func TestDeliver_Record(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	p := NewWithWriter(&buf)

	msg := &email.Email{
		From:       "default@study.com",
		MaskedFrom: "de***@study.com",
		To:         []string{"bob@mail.ru"},
		Subject:    "Hi",
		Date:       "2025-01-31",
		TextBody:   "To: bob@mail.ru, from default@study.com\nSubject: Hi, date 2025-01-31\nHello worl...",
		MessageID:  "<id-1@study.com>",
	}

	if err := p.Deliver(context.Background(), msg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	output := buf.String()

	if !strings.Contains(output, "Message-Id: <id-1@study.com>\n") {
		t.Error("output missing Message-Id line")
	}
	if !strings.Contains(output, "Sender: de***@study.com\n") {
		t.Error("output missing masked sender line")
	}
	if !strings.Contains(output, "Date: 2025-01-31\n") {
		t.Error("output missing Date line")
	}
	if !strings.Contains(output, msg.TextBody+"\n") {
		t.Error("output missing rendered text")
	}
	if !strings.HasPrefix(output, separator) {
		t.Error("output should start with separator line")
	}
	if !strings.HasSuffix(output, separator) {
		t.Error("output should end with separator line")
	}
}

func TestDeliver_OptionalLinesOmitted(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	p := NewWithWriter(&buf)

	if err := p.Deliver(context.Background(), &email.Email{TextBody: "body"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	output := buf.String()
	if strings.Contains(output, "Message-Id:") {
		t.Error("output should not contain Message-Id line when id is empty")
	}
	if strings.Contains(output, "Sender:") {
		t.Error("output should not contain Sender line when masked sender is empty")
	}
	if strings.Contains(output, "Date:") {
		t.Error("output should not contain Date line when date is empty")
	}
	if output != separator+"body\n"+separator {
		t.Errorf("output: got %q", output)
	}
}

func TestDeliver_CancelledContext(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	p := NewWithWriter(&buf)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := p.Deliver(ctx, &email.Email{TextBody: "body"})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("error: got %v, want %v", err, context.Canceled)
	}
	if buf.Len() != 0 {
		t.Errorf("nothing should be written, got %q", buf.String())
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestDeliver_WriteError(t *testing.T) {
	t.Parallel()

	p := NewWithWriter(failingWriter{})
	if err := p.Deliver(context.Background(), &email.Email{TextBody: "body"}); err == nil {
		t.Error("expected error from failing writer, got nil")
	}
}

func TestName(t *testing.T) {
	t.Parallel()

	p := New()
	if p.Name() != "stdout" {
		t.Errorf("Name: got %q, want %q", p.Name(), "stdout")
	}
}
