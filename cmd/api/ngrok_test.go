package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestResolveWebhookURL(t *testing.T) {
	t.Run("Configured Wins", func(t *testing.T) {
		got, err := resolveWebhookURL(context.Background(), "https://bot.example/webhook/telegram", "http://unused", time.Millisecond)
		if err != nil || got != "https://bot.example/webhook/telegram" {
			t.Fatalf("got %q, %v", got, err)
		}
	})

	t.Run("Nothing Configured", func(t *testing.T) {
		got, err := resolveWebhookURL(context.Background(), "", "", time.Millisecond)
		if err != nil || got != "" {
			t.Fatalf("got %q, %v", got, err)
		}
	})

	t.Run("Ngrok Prefers HTTPS", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/api/tunnels" {
				http.NotFound(w, r)
				return
			}
			w.Write([]byte(`{"tunnels":[{"public_url":"http://a.ngrok.io","proto":"http"},{"public_url":"https://a.ngrok.io","proto":"https"}]}`))
		}))
		defer srv.Close()

		got, err := resolveWebhookURL(context.Background(), "", srv.URL, time.Millisecond)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "https://a.ngrok.io/webhook/telegram" {
			t.Errorf("got %q", got)
		}
	})

	t.Run("Ngrok Without Tunnels", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"tunnels":[]}`))
		}))
		defer srv.Close()

		if _, err := resolveWebhookURL(context.Background(), "", srv.URL, time.Millisecond); err == nil {
			t.Fatal("expected error when no tunnel appears")
		}
	})
}
