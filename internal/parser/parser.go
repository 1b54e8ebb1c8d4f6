// Package parser reads RFC 5322 drafts into the recipients, subject and
// message consumed by the sender.
package parser

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"mime/multipart"
	"net/mail"
	"strings"
)

// ErrNoRecipients is returned when a draft has neither To nor Cc addresses.
var ErrNoRecipients = errors.New("draft has no recipients")

// Draft is an unsent message as written by the user.
type Draft struct {
	// Recipients holds To then Cc addresses, spelled as they appear.
	Recipients []string
	Subject    string
	Message    string
}

// Parse parses a raw RFC 5322 draft. Plain text drafts use the whole body;
// multipart drafts use the first text/plain part, falling back to the first
// text/html part. Attachments and unrecognized parts are skipped.
func Parse(raw []byte) (*Draft, error) {
	msg, err := mail.ReadMessage(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("failed to parse draft: %w", err)
	}

	draft := &Draft{
		Subject: decodeHeader(msg.Header.Get("Subject")),
	}
	draft.Recipients = append(draft.Recipients, parseAddressList(msg.Header.Get("To"))...)
	draft.Recipients = append(draft.Recipients, parseAddressList(msg.Header.Get("Cc"))...)

	if len(draft.Recipients) == 0 {
		return nil, ErrNoRecipients
	}

	contentType := msg.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "text/plain"
	}

	mediaType, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		slog.Warn("failed to parse content type, treating as plain text",
			"content_type", contentType,
			"error", err,
		)
		mediaType = "text/plain"
	}

	if strings.HasPrefix(mediaType, "multipart/") {
		boundary := params["boundary"]
		if boundary == "" {
			return nil, fmt.Errorf("multipart draft missing boundary")
		}
		var text, html string
		if err := parseMultipart(msg.Body, boundary, &text, &html); err != nil {
			return nil, fmt.Errorf("failed to parse multipart draft: %w", err)
		}
		draft.Message = text
		if draft.Message == "" {
			draft.Message = html
		}
		return draft, nil
	}

	body, err := decodeBody(msg.Body, msg.Header.Get("Content-Transfer-Encoding"))
	if err != nil {
		return nil, fmt.Errorf("failed to read draft body: %w", err)
	}
	if mediaType != "text/plain" && mediaType != "text/html" {
		slog.Warn("unrecognized draft content type", "content_type", mediaType)
	}
	draft.Message = string(body)

	return draft, nil
}

// parseMultipart walks a multipart body and records the first text/plain
// and text/html parts, descending into nested multiparts.
func parseMultipart(body io.Reader, boundary string, text, html *string) error {
	reader := multipart.NewReader(body, boundary)

	for {
		part, err := reader.NextPart()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read next part: %w", err)
		}

		partContentType := part.Header.Get("Content-Type")
		if partContentType == "" {
			partContentType = "text/plain"
		}

		mediaType, params, err := mime.ParseMediaType(partContentType)
		if err != nil {
			slog.Warn("failed to parse part content type, skipping",
				"content_type", partContentType,
				"error", err,
			)
			continue
		}

		if strings.HasPrefix(part.Header.Get("Content-Disposition"), "attachment") {
			slog.Debug("skipping draft attachment", "content_type", mediaType)
			continue
		}

		if strings.HasPrefix(mediaType, "multipart/") {
			nestedBoundary := params["boundary"]
			if nestedBoundary == "" {
				slog.Warn("nested multipart missing boundary, skipping")
				continue
			}
			if err := parseMultipart(part, nestedBoundary, text, html); err != nil {
				slog.Warn("failed to parse nested multipart", "error", err)
			}
			continue
		}

		switch mediaType {
		case "text/plain":
			if *text != "" {
				continue
			}
		case "text/html":
			if *html != "" {
				continue
			}
		default:
			slog.Warn("unrecognized MIME part, skipping", "content_type", mediaType)
			continue
		}

		content, err := decodeBody(part, part.Header.Get("Content-Transfer-Encoding"))
		if err != nil {
			slog.Warn("failed to read part content",
				"content_type", mediaType,
				"error", err,
			)
			continue
		}

		if mediaType == "text/plain" {
			*text = string(content)
		} else {
			*html = string(content)
		}
	}

	return nil
}

// decodeBody reads r and undoes a base64 Content-Transfer-Encoding.
// Other encodings are returned as read.
func decodeBody(r io.Reader, encoding string) ([]byte, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	if strings.ToLower(strings.TrimSpace(encoding)) != "base64" {
		return raw, nil
	}

	cleaned := strings.NewReplacer("\r", "", "\n", "").Replace(string(raw))
	decoded, err := base64.StdEncoding.DecodeString(cleaned)
	if err != nil {
		decoded, err = base64.RawStdEncoding.DecodeString(cleaned)
		if err != nil {
			return nil, fmt.Errorf("failed to decode base64 content: %w", err)
		}
	}
	return decoded, nil
}

// decodeHeader decodes RFC 2047 encoded words, returning the input on failure.
func decodeHeader(s string) string {
	dec := new(mime.WordDecoder)
	decoded, err := dec.DecodeHeader(s)
	if err != nil {
		return s
	}
	return decoded
}

// parseAddressList splits a comma-separated address list. Entries keep the
// spelling they have in the draft so the sender's filter judges them as typed.
func parseAddressList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	addresses, err := mail.ParseAddressList(raw)
	if err != nil {
		// Fall back to a plain comma split; invalid entries are dropped later.
		parts := strings.Split(raw, ",")
		result := make([]string, 0, len(parts))
		for _, p := range parts {
			trimmed := strings.TrimSpace(p)
			if trimmed != "" {
				result = append(result, trimmed)
			}
		}
		return result
	}

	result := make([]string, 0, len(addresses))
	for _, addr := range addresses {
		result = append(result, addr.Address)
	}
	return result
}
