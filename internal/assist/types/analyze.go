package types

// AnalyzeRequest is the /api/analyze request payload.
type AnalyzeRequest struct {
	TaskText string `json:"task_text"`
}

// Effort score values the model may assign to a task.
const (
	EffortLow      = "Low"
	EffortMedium   = "Medium"
	EffortHigh     = "High"
	EffortCritical = "Critical"
)

// AnalyzeResult is the structured analysis returned by the model.
// Every field is required by the response schema.
type AnalyzeResult struct {
	Text        string `json:"text"`         // cleaned-up final task text
	Time        string `json:"time"`         // YYYY-MM-DD, a time of day, or "unspecified"
	Category    string `json:"category"`     // e.g. Work, Study, Health
	Urgent      bool   `json:"urgent"`       // true for ASAP-style wording
	Note        string `json:"note"`         // short note or warning for the user
	EffortScore string `json:"effort_score"` // Low | Medium | High | Critical
}
