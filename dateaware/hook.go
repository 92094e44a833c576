package dateaware

import (
	"context"

	"github.com/va6996/dateaware/host"
	"github.com/va6996/dateaware/log"
)

const (
	promptHeader = "\n\n【日期】\n"
	promptFooter = "\n\n提示：以上是当前日期信息，可以根据需要融入回复中。"
)

// PromptHook appends the raw date block to the prompt before each inference call
type PromptHook struct {
	service *Service
}

// NewPromptHook creates the handler
func NewPromptHook(service *Service) *PromptHook {
	return &PromptHook{service: service}
}

func (h *PromptHook) Name() string {
	return "date_inject_handler"
}

func (h *PromptHook) Event() host.EventType {
	return host.EventPreLLM
}

func (h *PromptHook) Weight() int {
	return 10
}

// Handle only ever appends. Messages without a prompt pass through untouched,
// and the pipeline always continues.
func (h *PromptHook) Handle(ctx context.Context, msg *host.Message) host.HookResult {
	if msg == nil || msg.LLMPrompt == "" {
		return host.HookResult{Continue: true}
	}

	info, err := h.service.Raw(ctx)
	if err != nil {
		log.Errorf(ctx, "Date prompt injection failed: %v", err)
		return host.HookResult{Continue: true}
	}

	msg.ModifyLLMPrompt(msg.LLMPrompt + promptHeader + info + promptFooter)
	log.Debugf(ctx, "Date info injected into prompt")
	return host.HookResult{Continue: true, Message: msg}
}
