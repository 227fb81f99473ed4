package router

import "strings"

// Route lowercases message and reports the first keyword set it matches.
// A message carrying keywords of several intents resolves to the earliest
// set, so "add and delete" is IntentAdd.
func Route(message string) RouterOutput {
	text := strings.ToLower(message)
	for _, set := range intentKeywords {
		if kw, ok := containsAny(text, set.keywords); ok {
			return RouterOutput{Intent: set.intent, Keyword: kw}
		}
	}
	return RouterOutput{Intent: IntentOther}
}

// Classify returns only the intent of Route.
func Classify(message string) Intent {
	return Route(message).Intent
}

func containsAny(text string, keywords []string) (string, bool) {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return kw, true
		}
	}
	return "", false
}
