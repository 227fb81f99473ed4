package llmprovider

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/sashabaranov/go-openai"

	"todo-assistant/pkg/gemini"
)

const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"

	defaultOpenAIModel = "gpt-4o-mini"
	defaultTimeout     = 30 * time.Second
)

// Config selects and configures the single provider used by the process.
type Config struct {
	Provider string
	APIKey   string
	BaseURL  string
	Model    string
	Timeout  time.Duration
}

// New builds the configured provider. It fails with ErrMissingAPIKey when
// no credential is set, so callers can stop at startup.
func New(ctx context.Context, cfg Config) (Provider, error) {
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}

	switch cfg.Provider {
	case ProviderGemini, "":
		client, err := gemini.New(ctx, gemini.Config{
			APIKey:  cfg.APIKey,
			Model:   cfg.Model,
			BaseURL: cfg.BaseURL,
			Timeout: cfg.Timeout,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create gemini client: %w", err)
		}
		return NewGeminiAdapter(client), nil

	case ProviderOpenAI:
		model := cfg.Model
		if model == "" {
			model = defaultOpenAIModel
		}
		clientConfig := openai.DefaultConfig(cfg.APIKey)
		if cfg.BaseURL != "" {
			clientConfig.BaseURL = cfg.BaseURL
		}
		clientConfig.HTTPClient = &http.Client{Timeout: cfg.Timeout}
		return NewOpenAIAdapter(openai.NewClientWithConfig(clientConfig), model), nil

	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownProvider, cfg.Provider)
	}
}
