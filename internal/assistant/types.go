package assistant

// ProcessCommandInput is one free-text user message.
type ProcessCommandInput struct {
	Text string
}

// ProcessCommandOutput is the reply for one turn. Intent is the classified
// intent name ("add", "list", ..., "other").
type ProcessCommandOutput struct {
	Intent         string
	Response       string
	ConversationID string
}

type ChatInput struct {
	Text string
}

type ChatOutput struct {
	Response       string
	ConversationID string
}
