// Package llm adapts a genkit model to plugins.LLMClient.
package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/firebase/genkit/go/ai"
	"github.com/firebase/genkit/go/genkit"
	"github.com/va6996/dateaware/log"
	"github.com/va6996/dateaware/plugins"
)

// Client generates text with one genkit model
type Client struct {
	genkit *genkit.Genkit
	model  ai.Model
}

// Ensure Client satisfies LLMClient
var _ plugins.LLMClient = (*Client)(nil)

// NewClient binds gk and model
func NewClient(gk *genkit.Genkit, model ai.Model) *Client {
	return &Client{
		genkit: gk,
		model:  model,
	}
}

// ResolveModel maps a configured model identifier to a model. Aliases are
// consulted first (e.g. "replyer" → the active AI plugin's model), then the
// genkit registry by fully qualified name. Returns nil when nothing matches.
func ResolveModel(gk *genkit.Genkit, name string, aliases map[string]ai.Model) ai.Model {
	if name == "" {
		return nil
	}
	if m, ok := aliases[name]; ok && m != nil {
		return m
	}
	if gk == nil {
		return nil
	}
	return genkit.LookupModel(gk, name)
}

// GenerateContent sends prompt to the model and returns the trimmed text
func (c *Client) GenerateContent(ctx context.Context, prompt string) (string, error) {
	if c.genkit == nil || c.model == nil {
		return "", fmt.Errorf("model not configured")
	}

	log.Debugf(ctx, "Generating with model %s", c.model.Name())
	resp, err := genkit.Generate(ctx, c.genkit,
		ai.WithModel(c.model),
		ai.WithPrompt(prompt),
	)
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	return strings.TrimSpace(resp.Text()), nil
}
