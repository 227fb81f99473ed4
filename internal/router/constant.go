package router

// keywordSet pairs an intent with the substrings that select it.
type keywordSet struct {
	intent   Intent
	keywords []string
}

// intentKeywords is checked in order; the first set with a match wins.
var intentKeywords = []keywordSet{
	{IntentAdd, []string{"add", "create", "new", "make", "remember", "remind"}},
	{IntentList, []string{"list", "show", "see", "view", "display", "all", "my"}},
	{IntentComplete, []string{"complete", "done", "finish", "mark", "as done", "check"}},
	{IntentDelete, []string{"delete", "remove", "cancel", "erase", "get rid of"}},
	{IntentUpdate, []string{"update", "change", "modify", "edit", "rename", "fix"}},
}

// titleFillers are removed, in order, as plain substrings.
var titleFillers = []string{"add", "create", "new", "remember", "remind", "me", "to"}

// updateTokens are removed case-sensitively from update requests.
var updateTokens = []string{"update", "change", "modify"}

var (
	pendingWords   = []string{"pending", "incomplete"}
	completedWords = []string{"completed", "done"}
)
