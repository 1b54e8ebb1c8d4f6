// Package main is the entry point for the study mailer.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/shineum/study-mailer/internal/config"
	"github.com/shineum/study-mailer/internal/email"
	"github.com/shineum/study-mailer/internal/parser"
	"github.com/shineum/study-mailer/internal/provider"
	"github.com/shineum/study-mailer/internal/provider/stdout"
	"github.com/shineum/study-mailer/internal/sender"
)

func main() {
	configPath := flag.String("config", "", "path to YAML configuration file (optional)")
	draftPath := flag.String("draft", "", "path to RFC 5322 draft file (default: stdin)")
	flag.Parse()

	// Load configuration
	cfg, err := loadConfig(*configPath)
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	// Setup structured logging
	setupLogger(cfg.Logging.Level)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	raw, err := readDraft(*draftPath, os.Stdin)
	if err != nil {
		slog.Error("failed to read draft", "error", err)
		os.Exit(1)
	}

	prov, err := selectProvider(cfg)
	if err != nil {
		slog.Error("failed to select provider", "error", err)
		os.Exit(1)
	}

	slog.Info("starting study-mailer",
		"provider", prov.Name(),
		"allowed_suffixes", cfg.Sender.AllowedSuffixes,
	)

	count, err := run(ctx, raw, sender.New(cfg.SenderOptions()...), prov)
	if err != nil {
		slog.Error("send failed", "error", err)
		os.Exit(1)
	}

	slog.Info("study-mailer finished", "sent", count)
}

// run parses the draft, builds the sent records and hands each one to prov.
// It returns the number of records delivered.
func run(ctx context.Context, raw []byte, s *sender.Sender, prov provider.Provider) (int, error) {
	draft, err := parser.Parse(raw)
	if err != nil {
		return 0, fmt.Errorf("failed to parse draft: %w", err)
	}

	records := s.Send(draft.Recipients, draft.Subject, draft.Message)
	if len(records) == 0 {
		slog.Warn("nothing was sent",
			"recipients", len(draft.Recipients),
		)
		return 0, nil
	}

	for i, rec := range records {
		msg := email.FromRecord(rec)
		if err := prov.Deliver(ctx, msg); err != nil {
			return i, fmt.Errorf("failed to deliver message %s: %w", msg.MessageID, err)
		}
		slog.Debug("message delivered",
			"message_id", msg.MessageID,
			"provider", prov.Name(),
		)
	}

	return len(records), nil
}

// readDraft reads the draft from path, or from stdin when path is empty.
func readDraft(path string, stdin io.Reader) ([]byte, error) {
	if path == "" {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(path)
}

// loadConfig loads configuration from the specified path (YAML + env override)
// or from environment variables only if no path is given.
func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFromFile(path)
	}
	return config.Load()
}

// setupLogger configures the global slog logger with JSON output and the
// specified log level.
func setupLogger(level string) {
	var logLevel slog.Level

	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	})
	slog.SetDefault(slog.New(handler))
}

// selectProvider chooses the output provider based on configuration.
func selectProvider(cfg *config.Config) (provider.Provider, error) {
	switch cfg.Provider {
	case "stdout", "":
		return stdout.New(), nil
	default:
		return nil, fmt.Errorf("unknown provider %q", cfg.Provider)
	}
}
