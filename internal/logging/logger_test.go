package logging_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"skinini/internal/config"
	"skinini/internal/logging"
)

func readLog(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	return string(content)
}

func TestNewFromConfigWritesJSONCopyToLogDir(t *testing.T) {
	cfg := config.Default()
	cfg.Logging.Dir = filepath.Join(t.TempDir(), "logs")
	cfg.Logging.Level = "debug"

	logger, err := logging.NewFromConfig(&cfg)
	if err != nil {
		t.Fatalf("NewFromConfig returned error: %v", err)
	}
	logger.Debug("skin resolved", logging.Int("mania_count", 2))

	content := readLog(t, filepath.Join(cfg.Logging.Dir, logging.LogFileName))
	var record map[string]any
	if err := json.Unmarshal([]byte(strings.TrimSpace(content)), &record); err != nil {
		t.Fatalf("expected one JSON record, got %q: %v", content, err)
	}
	if record["msg"] != "skin resolved" || record["level"] != "debug" {
		t.Fatalf("unexpected record: %v", record)
	}
	if record["mania_count"] != float64(2) {
		t.Fatalf("mania_count = %v", record["mania_count"])
	}
}

func TestConsoleLoggerOmitsCallerForInfo(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "console-info.log")
	logger, err := logging.New(logging.Options{
		Format:      "console",
		Level:       "info",
		OutputPaths: []string{logPath},
	})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Info("message without caller")

	if content := readLog(t, logPath); strings.Contains(content, ".go:") {
		t.Fatalf("expected no caller information in info logs, got %q", content)
	}
}

func TestConsoleLoggerIncludesCallerForDebug(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "console-debug.log")
	logger, err := logging.New(logging.Options{
		Format:      "console",
		Level:       "debug",
		OutputPaths: []string{logPath},
	})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Info("message with caller")

	if content := readLog(t, logPath); !strings.Contains(content, ".go:") {
		t.Fatalf("expected caller information in debug logs, got %q", content)
	}
}

func TestConsoleLoggerRendersSubjectAndFields(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "console.log")
	logger, err := logging.New(logging.Options{Format: "console", Level: "info", OutputPaths: []string{logPath}})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	ctx := logging.WithPath(context.Background(), "/skins/Aggro/skin.ini")
	ctx = logging.WithCorrelationID(ctx, "abc-123")
	logger = logging.NewComponentLogger(logging.WithContext(ctx, logger), "watch")
	logger.Info("skin reloaded",
		logging.String(logging.FieldSection, "Mania"),
		logging.Int("mania_count", 3),
		logging.Bool("changed", true),
	)

	content := readLog(t, logPath)
	for _, want := range []string{"INFO [watch] skin.ini · [Mania] - skin reloaded", "- Mania Configs: 3", "- Changed: yes", "+ 1 more field hidden"} {
		if !strings.Contains(content, want) {
			t.Fatalf("expected %q in output, got %q", want, content)
		}
	}
	if strings.Contains(content, "abc-123") {
		t.Fatalf("expected correlation id to stay out of info output, got %q", content)
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := logging.New(logging.Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestNewInvalidLevelDefaultsToInfo(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "level.log")
	logger, err := logging.New(logging.Options{Format: "json", Level: "invalid", OutputPaths: []string{logPath}})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logger.Debug("hidden")
	logger.Info("visible")

	content := readLog(t, logPath)
	if strings.Contains(content, "hidden") || !strings.Contains(content, "visible") {
		t.Fatalf("expected info level filtering, got %q", content)
	}
}

func TestWithContextAddsFields(t *testing.T) {
	ctx := logging.WithPath(context.Background(), "skin.ini")
	ctx = logging.WithCorrelationID(ctx, "req-xyz")

	fields := logging.ContextFields(ctx)
	if len(fields) != 2 {
		t.Fatalf("expected 2 fields, got %d", len(fields))
	}
	if fields[0].Key != logging.FieldPath || fields[0].Value.String() != "skin.ini" {
		t.Fatalf("unexpected path field: %v", fields[0])
	}
	if fields[1].Key != logging.FieldCorrelationID || fields[1].Value.String() != "req-xyz" {
		t.Fatalf("unexpected correlation field: %v", fields[1])
	}
	if n := len(logging.ContextFields(context.Background())); n != 0 {
		t.Fatalf("expected no fields on empty context, got %d", n)
	}
}

func TestNopLoggerDiscards(t *testing.T) {
	logger := logging.NewComponentLogger(nil, "skin")
	if logger.Enabled(context.Background(), slog.LevelError) {
		t.Fatal("expected no-op logger to be disabled")
	}
	logging.WarnWithContext(logger, "ignored", "test")
}
