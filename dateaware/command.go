package dateaware

import (
	"context"
	"fmt"
	"regexp"

	"github.com/va6996/dateaware/host"
	"github.com/va6996/dateaware/log"
)

// FailureReply is what the user sees when /date cannot be answered
const FailureReply = "查询日期信息失败，请稍后再试"

var datePattern = regexp.MustCompile(`^/date$`)

// DateCommand answers /date with the (optionally expanded) three-day block
type DateCommand struct {
	service *Service
}

// NewDateCommand creates the command
func NewDateCommand(service *Service) *DateCommand {
	return &DateCommand{service: service}
}

func (c *DateCommand) Name() string {
	return "date_query"
}

func (c *DateCommand) Description() string {
	return "查询昨天、今天、明天的日期信息，包括星期几和节假日"
}

func (c *DateCommand) Pattern() *regexp.Regexp {
	return datePattern
}

// Execute always acknowledges the command; a failure is reported to the
// user and described in the result message.
func (c *DateCommand) Execute(ctx context.Context, sender host.Sender) host.CommandResult {
	message, err := c.reply(ctx, sender)
	if err != nil {
		log.Errorf(ctx, "Date query failed: %v", err)
		if sendErr := sender.SendText(ctx, FailureReply); sendErr != nil {
			log.Errorf(ctx, "Failed to send date query failure notice: %v", sendErr)
		}
		return host.CommandResult{Success: true, Message: fmt.Sprintf("查询失败: %v", err), Intercept: true}
	}
	return host.CommandResult{Success: true, Message: "显示了日期信息: " + message, Intercept: true}
}

func (c *DateCommand) reply(ctx context.Context, sender host.Sender) (string, error) {
	message, err := c.service.Info(ctx)
	if err != nil {
		return "", err
	}
	if err := sender.SendText(ctx, message); err != nil {
		return "", fmt.Errorf("failed to send date info: %w", err)
	}
	return message, nil
}
