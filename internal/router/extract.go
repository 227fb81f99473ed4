package router

import "strings"

// ExtractTitle derives a todo title by lowercasing message and deleting
// every filler substring in turn. Fillers are not word-bounded:
// "add tomorrow's meeting" yields "morrow's eting".
func ExtractTitle(message string) string {
	title := strings.ToLower(message)
	for _, filler := range titleFillers {
		title = strings.TrimSpace(strings.ReplaceAll(title, filler, ""))
	}
	return title
}

// ExtractUpdateTitle removes the update verbs from message without
// lowercasing it first, so "Update" survives.
func ExtractUpdateTitle(message string) string {
	title := message
	for _, tok := range updateTokens {
		title = strings.ReplaceAll(title, tok, "")
	}
	return strings.TrimSpace(title)
}

// ParseListFilter maps the wording of a list request to a completion filter.
// nil means every todo.
func ParseListFilter(message string) *bool {
	text := strings.ToLower(message)
	if _, ok := containsAny(text, pendingWords); ok {
		f := false
		return &f
	}
	if _, ok := containsAny(text, completedWords); ok {
		t := true
		return &t
	}
	return nil
}
