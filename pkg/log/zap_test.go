package log_test

import (
	"context"
	"testing"

	"todo-assistant/pkg/log"
)

func TestInit(t *testing.T) {
	t.Run("Console Debug", func(t *testing.T) {
		l := log.Init(log.ZapConfig{Level: "debug", Mode: log.ModeDebug, Encoding: log.EncodingConsole, ColorEnabled: true})
		if l == nil {
			t.Fatal("expected logger")
		}
		l.Infof(context.Background(), "hello %s", "world")
	})

	t.Run("JSON Production Unknown Level", func(t *testing.T) {
		l := log.Init(log.ZapConfig{Level: "loud", Mode: log.ModeProduction, Encoding: log.EncodingJSON})
		if l == nil {
			t.Fatal("expected logger")
		}
		l.Debug(context.Background(), "dropped")
	})
}

func TestRequestID(t *testing.T) {
	ctx := log.WithRequestID(context.Background(), "req-1")
	if got := log.RequestID(ctx); got != "req-1" {
		t.Errorf("expected req-1, got %q", got)
	}
	if got := log.RequestID(context.Background()); got != "" {
		t.Errorf("expected empty id, got %q", got)
	}

	// Nop logger must accept request-scoped contexts.
	log.NewNop().Info(ctx, "ok")
}
