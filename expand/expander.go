// Package expand rewrites the rendered three-day block into prose with an LLM.
// It is best-effort: any failure yields the input unchanged.
package expand

import (
	"context"
	"strings"

	"github.com/va6996/dateaware/log"
	"github.com/va6996/dateaware/plugins"
)

// PromptTemplate wraps the raw block; {raw_info} is substituted
const PromptTemplate = "你是一个日期信息助手。将以下日期信息整理成自然语言。原始信息: {raw_info}。" +
	"输出时必须包含昨天今天明天三天的日期、星期几和节假日。调休工作日需特别说明。" +
	"直接输出内容，不要JSON。"

// Expander turns raw date lines into prose
type Expander struct {
	client plugins.LLMClient
}

// New creates an Expander. A nil client disables expansion.
func New(client plugins.LLMClient) *Expander {
	return &Expander{client: client}
}

// Prompt builds the generation prompt for raw
func Prompt(raw string) string {
	return strings.ReplaceAll(PromptTemplate, "{raw_info}", raw)
}

// Expand returns the prose rendering of raw, or raw itself when no model is
// configured, the call fails or the model answers with nothing.
func (e *Expander) Expand(ctx context.Context, raw string) string {
	if e == nil || e.client == nil {
		log.Warn(ctx, "No LLM model available for date expansion")
		return raw
	}

	out, err := e.client.GenerateContent(ctx, Prompt(raw))
	if err != nil {
		log.Errorf(ctx, "LLM date expansion failed: %v", err)
		return raw
	}
	out = strings.TrimSpace(out)
	if out == "" {
		return raw
	}
	return out
}
