package prompt

import "time"

// Today returns the local calendar date as YYYY-MM-DD. It is embedded in the
// analyze prompt so the model resolves relative dates ("tomorrow", "next
// Friday") against the invocation day instead of its training cutoff.
func Today() string {
	return time.Now().Format("2006-01-02")
}

// AnalyzeSystem builds the system instruction for task analysis.
func AnalyzeSystem(today string) string {
	return "You are a professional task analysis engine. The current date is " + today + ". " +
		"Your sole purpose is to analyze the user's task and return ONLY a valid JSON object matching the requested schema. " +
		"Strictly format any date found as YYYY-MM-DD."
}

// SuggestSystem is the system instruction for task completion suggestions.
const SuggestSystem = "You are a helpful AI completer. " +
	"Generate 5 unique, diverse suggestions that complete the user's partial text. " +
	"Return ONLY a valid JSON object matching the requested schema."
