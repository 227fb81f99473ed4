package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const (
	ngrokAttempts = 10
	ngrokInterval = 3 * time.Second
	webhookPath   = "/webhook/telegram"
)

type ngrokTunnels struct {
	Tunnels []struct {
		PublicURL string `json:"public_url"`
		Proto     string `json:"proto"`
	} `json:"tunnels"`
}

// resolveWebhookURL prefers the configured URL and falls back to the first
// public ngrok tunnel. An empty result means no webhook should be registered.
func resolveWebhookURL(ctx context.Context, configured, ngrokAPI string, interval time.Duration) (string, error) {
	if configured != "" {
		return configured, nil
	}
	if ngrokAPI == "" {
		return "", nil
	}
	base, err := detectNgrokURL(ctx, ngrokAPI, interval)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(base, "/") + webhookPath, nil
}

// detectNgrokURL polls the ngrok local API until a tunnel appears, preferring https.
func detectNgrokURL(ctx context.Context, ngrokAPI string, interval time.Duration) (string, error) {
	client := &http.Client{Timeout: 5 * time.Second}
	endpoint := strings.TrimRight(ngrokAPI, "/") + "/api/tunnels"

	var lastErr error
	for attempt := 1; attempt <= ngrokAttempts; attempt++ {
		url, err := fetchTunnel(ctx, client, endpoint)
		if err == nil && url != "" {
			return url, nil
		}
		lastErr = err

		if attempt == ngrokAttempts {
			break
		}
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(interval):
		}
	}

	if lastErr != nil {
		return "", fmt.Errorf("ngrok API not reachable after %d attempts: %w", ngrokAttempts, lastErr)
	}
	return "", fmt.Errorf("ngrok has no active tunnels after %d attempts", ngrokAttempts)
}

func fetchTunnel(ctx context.Context, client *http.Client, endpoint string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", err
	}

	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var body ngrokTunnels
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("decode ngrok response: %w", err)
	}

	for _, t := range body.Tunnels {
		if t.Proto == "https" {
			return t.PublicURL, nil
		}
	}
	if len(body.Tunnels) > 0 {
		return body.Tunnels[0].PublicURL, nil
	}
	return "", nil
}
