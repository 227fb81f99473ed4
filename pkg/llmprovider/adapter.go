package llmprovider

import (
	"context"

	"github.com/sashabaranov/go-openai"

	"todo-assistant/pkg/gemini"
)

// GeminiAdapter adapts pkg/gemini to llmprovider.Provider interface
type GeminiAdapter struct {
	client gemini.IGemini
}

// NewGeminiAdapter creates a new Gemini adapter
func NewGeminiAdapter(client gemini.IGemini) *GeminiAdapter {
	return &GeminiAdapter{client: client}
}

// Complete implements Provider. Gemini calls the assistant role "model".
func (a *GeminiAdapter) Complete(ctx context.Context, history []Message, input string) (string, error) {
	turns := make([]gemini.Turn, len(history))
	for i, m := range history {
		role := gemini.RoleUser
		if m.Role == RoleAssistant {
			role = gemini.RoleModel
		}
		turns[i] = gemini.Turn{Role: role, Text: m.Content}
	}

	text, err := a.client.Chat(ctx, turns, input)
	if err != nil {
		return "", &ProviderError{Provider: a.Name(), Err: err}
	}
	return text, nil
}

// Name returns provider name
func (a *GeminiAdapter) Name() string {
	return ProviderGemini
}

// Model returns model name
func (a *GeminiAdapter) Model() string {
	return a.client.Model()
}

// OpenAIAdapter serves any OpenAI-compatible chat completions endpoint.
type OpenAIAdapter struct {
	client *openai.Client
	model  string
}

// NewOpenAIAdapter creates a new OpenAI adapter
func NewOpenAIAdapter(client *openai.Client, model string) *OpenAIAdapter {
	return &OpenAIAdapter{client: client, model: model}
}

// Complete implements Provider.
func (a *OpenAIAdapter) Complete(ctx context.Context, history []Message, input string) (string, error) {
	msgs := make([]openai.ChatCompletionMessage, 0, len(history)+1)
	for _, m := range history {
		role := openai.ChatMessageRoleUser
		if m.Role == RoleAssistant {
			role = openai.ChatMessageRoleAssistant
		}
		msgs = append(msgs, openai.ChatCompletionMessage{Role: role, Content: m.Content})
	}
	msgs = append(msgs, openai.ChatCompletionMessage{Role: openai.ChatMessageRoleUser, Content: input})

	resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:    a.model,
		Messages: msgs,
	})
	if err != nil {
		return "", &ProviderError{Provider: a.Name(), Err: err}
	}
	if len(resp.Choices) == 0 {
		return "", &ProviderError{Provider: a.Name(), Err: ErrEmptyResponse}
	}
	return resp.Choices[0].Message.Content, nil
}

// Name returns provider name
func (a *OpenAIAdapter) Name() string {
	return ProviderOpenAI
}

// Model returns model name
func (a *OpenAIAdapter) Model() string {
	return a.model
}
