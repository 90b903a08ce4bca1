package gemini

import (
	"testing"

	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"task-assist/internal/assist/types"
)

func TestAnalyzeSchemaRequiresAllFields(t *testing.T) {
	require.Equal(t, genai.TypeObject, analyzeSchema.Type)
	assert.ElementsMatch(t,
		[]string{"text", "time", "category", "urgent", "note", "effort_score"},
		analyzeSchema.Required)
	for _, f := range analyzeSchema.Required {
		assert.Contains(t, analyzeSchema.Properties, f)
	}
	assert.Equal(t, genai.TypeBoolean, analyzeSchema.Properties["urgent"].Type)
	assert.ElementsMatch(t,
		[]string{types.EffortLow, types.EffortMedium, types.EffortHigh, types.EffortCritical},
		analyzeSchema.Properties["effort_score"].Enum)
}

func TestSuggestSchemaShape(t *testing.T) {
	require.Equal(t, genai.TypeObject, suggestSchema.Type)
	require.Contains(t, suggestSchema.Properties, "suggestions")
	s := suggestSchema.Properties["suggestions"]
	assert.Equal(t, genai.TypeArray, s.Type)
	require.NotNil(t, s.Items)
	assert.Equal(t, genai.TypeString, s.Items.Type)
	assert.Equal(t, []string{"suggestions"}, suggestSchema.Required)
}

func TestFirstText(t *testing.T) {
	assert.Empty(t, firstText(nil))
	assert.Empty(t, firstText(&genai.GenerateContentResponse{}))

	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: nil},
			{Content: &genai.Content{Parts: []genai.Part{genai.Text(`{"suggestions":[]}`)}}},
		},
	}
	assert.Equal(t, `{"suggestions":[]}`, firstText(resp))
}

func TestNewTrimsInputs(t *testing.T) {
	e := New("  key  ", " gemini-2.5-flash \n")
	assert.Equal(t, "key", e.APIKey)
	assert.Equal(t, "gemini-2.5-flash", e.Model)
	assert.Equal(t, "gemini", e.Name())
}
