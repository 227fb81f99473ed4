package llmprovider

import "context"

// Provider is a stateless chat completion backend.
type Provider interface {
	// Complete sends history, oldest first, followed by input as the live
	// user turn and returns the model's reply verbatim.
	Complete(ctx context.Context, history []Message, input string) (string, error)

	// Name returns the provider name (e.g., "gemini", "openai")
	Name() string

	// Model returns the model being used
	Model() string
}

// Roles carried in Message.Role.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one role-tagged turn of history.
type Message struct {
	Role    string
	Content string
}
