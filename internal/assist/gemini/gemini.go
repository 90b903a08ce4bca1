package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"task-assist/internal/assist/prompt"
	"task-assist/internal/assist/types"
	"task-assist/internal/util"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

type Engine struct {
	APIKey string
	Model  string
}

func New(apiKey, model string) *Engine {
	return &Engine{
		APIKey: strings.TrimSpace(apiKey),
		Model:  strings.TrimSpace(model),
	}
}

func (e *Engine) Name() string { return "gemini" }

// Analyze extracts task metadata from free text. The model output is pinned
// to analyzeSchema via schema-constrained generation.
func (e *Engine) Analyze(ctx context.Context, in types.AnalyzeRequest) (types.AnalyzeResult, error) {
	if e.APIKey == "" {
		return types.AnalyzeResult{}, errors.New("GEMINI_API_KEY is empty")
	}
	cl, err := genai.NewClient(ctx, option.WithAPIKey(e.APIKey))
	if err != nil {
		return types.AnalyzeResult{}, err
	}
	defer cl.Close()

	m := cl.GenerativeModel(e.Model)
	if m == nil {
		return types.AnalyzeResult{}, fmt.Errorf("gemini: model is nil")
	}
	m.GenerationConfig = genai.GenerationConfig{
		Temperature:      ptrFloat32(0),
		ResponseMIMEType: "application/json",
		ResponseSchema:   analyzeSchema,
	}
	m.SystemInstruction = &genai.Content{
		Parts: []genai.Part{
			genai.Text(prompt.AnalyzeSystem(prompt.Today())),
		},
	}

	// User text goes in verbatim; the consumer is a generative model, not a
	// code interpreter, so no escaping is applied.
	resp, err := m.GenerateContent(ctx, genai.Text(in.TaskText))
	if err != nil {
		return types.AnalyzeResult{}, fmt.Errorf("gemini analyze: %w", err)
	}
	txt := firstText(resp)
	if txt == "" {
		return types.AnalyzeResult{}, fmt.Errorf("gemini analyze: empty response")
	}
	txt = util.StripCodeFences(txt)

	var out types.AnalyzeResult
	if err := json.Unmarshal([]byte(txt), &out); err != nil {
		return types.AnalyzeResult{}, fmt.Errorf("gemini analyze: bad JSON: %w", err)
	}
	return out, nil
}

// Suggest generates five completions for a partial task description.
func (e *Engine) Suggest(ctx context.Context, in types.SuggestRequest) (types.SuggestResult, error) {
	if e.APIKey == "" {
		return types.SuggestResult{}, errors.New("GEMINI_API_KEY is empty")
	}
	cl, err := genai.NewClient(ctx, option.WithAPIKey(e.APIKey))
	if err != nil {
		return types.SuggestResult{}, err
	}
	defer cl.Close()

	m := cl.GenerativeModel(e.Model)
	if m == nil {
		return types.SuggestResult{}, fmt.Errorf("gemini: model is nil")
	}
	m.GenerationConfig = genai.GenerationConfig{
		Temperature:      ptrFloat32(0),
		ResponseMIMEType: "application/json",
		ResponseSchema:   suggestSchema,
	}
	m.SystemInstruction = &genai.Content{
		Parts: []genai.Part{
			genai.Text(prompt.SuggestSystem),
		},
	}

	resp, err := m.GenerateContent(ctx, genai.Text(in.PartialTask))
	if err != nil {
		return types.SuggestResult{}, fmt.Errorf("gemini suggest: %w", err)
	}
	txt := firstText(resp)
	if txt == "" {
		return types.SuggestResult{}, fmt.Errorf("gemini suggest: empty response")
	}
	txt = util.StripCodeFences(txt)

	var out types.SuggestResult
	if err := json.Unmarshal([]byte(txt), &out); err != nil {
		return types.SuggestResult{}, fmt.Errorf("gemini suggest: bad JSON: %w", err)
	}
	return out, nil
}

func firstText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}
	for _, c := range resp.Candidates {
		if c.Content == nil {
			continue
		}
		for _, p := range c.Content.Parts {
			if t, ok := p.(genai.Text); ok {
				return string(t)
			}
		}
	}
	return ""
}

func ptrFloat32(v float32) *float32 { return &v }
