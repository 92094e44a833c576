package dateaware

import (
	"context"
	"fmt"

	"github.com/va6996/dateaware/host"
	"github.com/va6996/dateaware/log"
)

// ContextInjector is the always-on action that puts the date block into the
// message context before every generation
type ContextInjector struct {
	service *Service
}

// NewContextInjector creates the action
func NewContextInjector(service *Service) *ContextInjector {
	return &ContextInjector{service: service}
}

func (a *ContextInjector) Name() string {
	return "inject_date_context"
}

func (a *ContextInjector) Description() string {
	return "自动获取并注入日期信息到对话上下文中，让 Bot 感知当前日期"
}

// Execute appends the block to msg's context
func (a *ContextInjector) Execute(ctx context.Context, msg *host.Message) (bool, string) {
	if msg == nil {
		return false, "注入失败: no message"
	}

	info, err := a.service.Info(ctx)
	if err != nil {
		log.Errorf(ctx, "Failed to inject date context: %v", err)
		return false, fmt.Sprintf("注入失败: %v", err)
	}

	msg.AddContext("[日期信息注入]" + info + "[/日期信息注入]")
	return true, "日期信息已注入"
}
