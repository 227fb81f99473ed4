package gemini

import "context"

// IGemini is a stateless chat completion client.
// Implementations are safe for concurrent use.
type IGemini interface {
	// Chat sends history followed by input as the user turn and returns the reply text.
	Chat(ctx context.Context, history []Turn, input string) (string, error)

	// Model returns the model being used
	Model() string
}

// New creates a new Gemini client with the given configuration.
func New(ctx context.Context, cfg Config) (IGemini, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newGeminiImpl(ctx, cfg)
}
