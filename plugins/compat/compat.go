// Package compat is a genkit plugin for any OpenAI-compatible chat endpoint
// (DeepSeek, Qwen/DashScope, Z.ai, vLLM, ...).
package compat

import (
	"context"

	"github.com/firebase/genkit/go/ai"
	"github.com/firebase/genkit/go/core/api"
	"github.com/firebase/genkit/go/genkit"
	"github.com/firebase/genkit/go/plugins/compat_oai"
	"github.com/openai/openai-go/option"
	"github.com/va6996/dateaware/log"
)

// DefaultProvider is used when Provider is empty
const DefaultProvider = "compat"

// Compat registers Models under Provider, talking to BaseURL with APIKey
type Compat struct {
	Provider string
	APIKey   string
	BaseURL  string
	Models   []string

	openAICompatible *compat_oai.OpenAICompatible
}

// Name implements genkit.Plugin.
func (c *Compat) Name() string {
	if c.Provider == "" {
		return DefaultProvider
	}
	return c.Provider
}

// Init implements genkit.Plugin.
func (c *Compat) Init(ctx context.Context) []api.Action {
	if c.APIKey == "" {
		log.Warn(ctx, "OpenAI-compatible plugin has no API key; requests will be rejected upstream")
	}

	opts := []option.RequestOption{option.WithAPIKey(c.APIKey)}
	if c.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(c.BaseURL))
	}

	c.openAICompatible = &compat_oai.OpenAICompatible{
		Opts:     opts,
		Provider: c.Name(),
	}
	actions := c.openAICompatible.Init(ctx)

	for _, id := range c.Models {
		actions = append(actions, c.DefineModel(id).(api.Action))
	}
	return actions
}

// DefineModel defines a text model with the given ID
func (c *Compat) DefineModel(id string) ai.Model {
	return c.openAICompatible.DefineModel(c.Name(), id, ai.ModelOptions{
		Label:    c.Name() + " " + id,
		Supports: &compat_oai.BasicText,
		Versions: []string{id},
	})
}

// Model returns a model previously defined by Init
func (c *Compat) Model(g *genkit.Genkit, name string) ai.Model {
	return c.openAICompatible.Model(g, api.NewName(c.Name(), name))
}
