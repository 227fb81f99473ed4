package gemini

import (
	"errors"
	"time"
)

// ErrMissingAPIKey is returned by New when no credential is configured.
var ErrMissingAPIKey = errors.New("gemini: API key is required")

// Role names accepted by the Gemini API.
const (
	RoleUser  = "user"
	RoleModel = "model"
)

// Config configures the Gemini client.
type Config struct {
	APIKey string
	Model  string
	// BaseURL overrides the API endpoint. Empty uses the SDK default.
	BaseURL string
	Timeout time.Duration
}

// Validate fills defaults and rejects a config without a key.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return ErrMissingAPIKey
	}
	if c.Model == "" {
		c.Model = DefaultModel
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	return nil
}

// Turn is one message of a chat history.
type Turn struct {
	Role string
	Text string
}
