package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func newTestLogger(t *testing.T) (*SlogLogger, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	h := slog.NewTextHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})
	l := slog.New(h)
	return NewSlogLogger(l), &buf
}

func TestSlogLogger_Levels_WriteExpectedOutput(t *testing.T) {
	log, buf := newTestLogger(t)
	ctx := context.Background()

	log.Debug(ctx, "dbg", "a", 1)
	log.Info(ctx, "inf", "b", 2)
	log.Warn(ctx, "wrn", "c", 3)
	log.Error(ctx, "err", "d", 4)

	out := buf.String()

	tests := []struct {
		level string
		msg   string
		key   string
		val   string
	}{
		{"DEBUG", "dbg", "a", "1"},
		{"INFO", "inf", "b", "2"},
		{"WARN", "wrn", "c", "3"},
		{"ERROR", "err", "d", "4"},
	}

	for _, tc := range tests {
		if !strings.Contains(out, "level="+tc.level) {
			t.Fatalf("expected line with level=%s in output:\n%s", tc.level, out)
		}
		if !strings.Contains(out, "msg="+tc.msg) {
			t.Fatalf("expected line with msg=%q in output:\n%s", tc.msg, out)
		}
		if !strings.Contains(out, tc.key+"="+tc.val) {
			t.Fatalf("expected attribute %s=%s in output:\n%s", tc.key, tc.val, out)
		}
	}
}

func TestSlogLogger_With_AddsAttributes(t *testing.T) {
	log, buf := newTestLogger(t)
	ctx := context.Background()

	log2 := log.With("req_id", "123", "item", "42")
	log2.Info(ctx, "hello", "k", "v")

	out := buf.String()
	wantSubs := []string{
		"level=INFO",
		"msg=hello",
		"req_id=123",
		"item=42",
		"k=v",
	}
	for _, s := range wantSubs {
		if !strings.Contains(out, s) {
			t.Fatalf("expected %q in output, got:\n%s", s, out)
		}
	}
}

func TestSlogLogger_ContextDoesNotPanic(t *testing.T) {
	log, _ := newTestLogger(t)

	ctx := context.TODO()
	log.Info(ctx, "ctx-ok")
	log.Debug(ctx, "ctx-ok")
	log.Warn(ctx, "ctx-ok")
	log.Error(ctx, "ctx-ok")
}

func TestSlogLogger_ContextFields(t *testing.T) {
	log, buf := newTestLogger(t)

	ctx := ContextWith(context.Background(), "method", "/mnemos.v1.Mnemos/UpdateItem")
	ctx = ContextWith(ctx, "item", "a1")
	log.Warn(ctx, "update failed", "error", "archived")

	out := buf.String()
	for _, s := range []string{"method=/mnemos.v1.Mnemos/UpdateItem", "item=a1", "error=archived"} {
		if !strings.Contains(out, s) {
			t.Fatalf("expected %q in output, got:\n%s", s, out)
		}
	}
	if strings.Index(out, "method=") > strings.Index(out, "error=") {
		t.Fatalf("context fields must come before call args:\n%s", out)
	}
}

func TestSlogLogger_LevelFilteredBeforeMerge(t *testing.T) {
	var buf bytes.Buffer
	log := NewSlogLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn})))

	ctx := ContextWith(context.Background(), "item", "a1")
	log.Info(ctx, "quiet")
	log.Debug(nil, "quiet")
	if buf.Len() != 0 {
		t.Fatalf("expected no output, got:\n%s", buf.String())
	}
}

func TestContextWith_DoesNotAliasParent(t *testing.T) {
	parent := ContextWith(context.Background(), "a", 1)
	left := ContextWith(parent, "b", 2)
	right := ContextWith(parent, "c", 3)

	if got := Fields(parent); len(got) != 2 {
		t.Fatalf("parent fields changed: %v", got)
	}
	if got := Fields(left); len(got) != 4 || got[2] != "b" {
		t.Fatalf("left fields: %v", got)
	}
	if got := Fields(right); len(got) != 4 || got[2] != "c" {
		t.Fatalf("right fields: %v", got)
	}
	if ContextWith(parent) != parent {
		t.Fatalf("no args must return ctx unchanged")
	}
}
