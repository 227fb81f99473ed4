package router

// Intent is the classified purpose of a user message.
type Intent string

const (
	IntentAdd      Intent = "add"
	IntentList     Intent = "list"
	IntentComplete Intent = "complete"
	IntentDelete   Intent = "delete"
	IntentUpdate   Intent = "update"
	IntentOther    Intent = "other"
)

// RouterOutput is the result of Route. Keyword is the substring that
// decided the intent, empty for IntentOther.
type RouterOutput struct {
	Intent  Intent
	Keyword string
}
