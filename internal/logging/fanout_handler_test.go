package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestNewFanoutHandlerCollapses(t *testing.T) {
	if _, ok := newFanoutHandler(nil, nil).(NoopHandler); !ok {
		t.Fatal("expected NoopHandler when every handler is nil")
	}
	var buf bytes.Buffer
	inner := slog.NewJSONHandler(&buf, nil)
	if h := newFanoutHandler(nil, inner); h != inner {
		t.Fatal("expected single handler to be returned unwrapped")
	}
}

func TestFanoutHandlerRespectsLevels(t *testing.T) {
	var console, file bytes.Buffer
	info := new(slog.LevelVar)
	debug := new(slog.LevelVar)
	debug.Set(slog.LevelDebug)

	logger := slog.New(newFanoutHandler(
		newPrettyHandler(&console, info, false),
		newJSONHandler(&file, debug, false),
	)).With(slog.String(FieldComponent, "skin"))

	logger.Debug("section skipped", slog.String("keys", "abc"))
	logger.Info("resolved")

	if strings.Contains(console.String(), "section skipped") {
		t.Fatalf("console should drop debug records, got %q", console.String())
	}
	if !strings.Contains(console.String(), "[skin]") {
		t.Fatalf("console missing component, got %q", console.String())
	}
	out := file.String()
	if !strings.Contains(out, `"msg":"section skipped"`) || !strings.Contains(out, `"msg":"resolved"`) {
		t.Fatalf("json output missing records: %q", out)
	}
	if !strings.Contains(out, `"component":"skin"`) {
		t.Fatalf("json output missing component: %q", out)
	}
	if !(&fanoutHandler{handlers: []slog.Handler{newJSONHandler(&file, debug, false)}}).Enabled(context.Background(), slog.LevelDebug) {
		t.Fatal("expected fanout to be enabled when any handler is")
	}
}
