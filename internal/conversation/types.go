package conversation

import "time"

// Role tags who authored a message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAssistant
}

// Conversation is the running transcript container for one user.
type Conversation struct {
	ID        string
	UserID    string
	CreatedAt time.Time
}

// Message is one immutable turn half. Seq is assigned by the store and
// orders messages by insertion.
type Message struct {
	ID             string
	ConversationID string
	Role           Role
	Content        string
	Seq            int64
	CreatedAt      time.Time
}

// --- UseCase Inputs ---

type AppendMessageInput struct {
	ConversationID string
	Role           Role
	Content        string
}

// ListMessagesInput pages a conversation newest first. Page is 1-based.
type ListMessagesInput struct {
	ConversationID string
	Page           int
	Limit          int
}

// --- UseCase Outputs ---

type ListConversationsOutput struct {
	Conversations []Conversation
	Total         int
	Page          int
	Limit         int
}

type ListMessagesOutput struct {
	Messages []Message
	Total    int
	Page     int
	Limit    int
}
