package types

// SuggestRequest is the /api/suggest request payload.
type SuggestRequest struct {
	PartialTask string `json:"partial_task"`
}

// SuggestResult carries the completions generated for a partial task.
type SuggestResult struct {
	Suggestions []string `json:"suggestions"`
}
