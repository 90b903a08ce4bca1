package gemini

import (
	"github.com/google/generative-ai-go/genai"

	"task-assist/internal/assist/types"
)

// analyzeSchema constrains the model output for /api/analyze. All six fields
// are required; effort_score is limited to the four known values.
var analyzeSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"text": {
			Type:        genai.TypeString,
			Description: "The cleaned-up final task text.",
		},
		"time": {
			Type:        genai.TypeString,
			Description: "Extracted deadline or date. Must be YYYY-MM-DD or a time of day/unspecified.",
		},
		"category": {
			Type:        genai.TypeString,
			Description: "A category label (e.g., Work, Study, Health).",
		},
		"urgent": {
			Type:        genai.TypeBoolean,
			Description: "True if the task is marked urgent or uses words like ASAP.",
		},
		"note": {
			Type:        genai.TypeString,
			Description: "A helpful, concise note or warning for the user.",
		},
		"effort_score": {
			Type:        genai.TypeString,
			Description: "Assigned score: Low, Medium, High, or Critical.",
			Enum:        []string{types.EffortLow, types.EffortMedium, types.EffortHigh, types.EffortCritical},
		},
	},
	Required: []string{"text", "time", "category", "urgent", "note", "effort_score"},
}

// suggestSchema constrains the model output for /api/suggest.
var suggestSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"suggestions": {
			Type:        genai.TypeArray,
			Items:       &genai.Schema{Type: genai.TypeString},
			Description: "A list of 5 complete task suggestions.",
		},
	},
	Required: []string{"suggestions"},
}
