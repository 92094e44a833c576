package plugins

import "context"

// LLMClient generates free text from a single prompt
type LLMClient interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}
