package assist

import (
	"context"

	"task-assist/internal/assist/types"
)

// Engine is the gateway to a generative model that returns
// schema-constrained JSON for the two assist operations.
type Engine interface {
	Name() string
	Analyze(ctx context.Context, in types.AnalyzeRequest) (types.AnalyzeResult, error)
	Suggest(ctx context.Context, in types.SuggestRequest) (types.SuggestResult, error)
}
