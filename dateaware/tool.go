package dateaware

import (
	"context"

	"github.com/firebase/genkit/go/ai"
	"github.com/firebase/genkit/go/genkit"
	"github.com/va6996/dateaware/log"
	"github.com/va6996/dateaware/tools"
)

// InfoToolName is the tool id models call
const InfoToolName = "get_date_info"

// InfoInput takes no arguments
type InfoInput struct{}

// InfoOutput carries the rendering, or an error string when it failed
type InfoOutput struct {
	Content     string `json:"content"`
	Description string `json:"description,omitempty"`
	Error       string `json:"error,omitempty"`
}

// InfoTool returns yesterday/today/tomorrow with weekdays and holidays
type InfoTool struct {
	service *Service
}

func (t *InfoTool) Name() string {
	return InfoToolName
}

func (t *InfoTool) Description() string {
	return "获取昨天、今天、明天的日期、星期几和节假日信息。LLM 可根据需要调用此工具。"
}

// Register defines the tool with genkit and adds it to registry
func (t *InfoTool) Register(gk *genkit.Genkit, registry *tools.Registry) {
	registry.Register(genkit.DefineTool[*InfoInput, *InfoOutput](
		gk,
		t.Name(),
		t.Description(),
		func(ctx *ai.ToolContext, input *InfoInput) (*InfoOutput, error) {
			return t.Execute(ctx, input), nil
		},
	), func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
		return t.Execute(ctx, &InfoInput{}), nil
	})
}

// Execute renders the raw three-day block. Failures are reported in the output.
func (t *InfoTool) Execute(ctx context.Context, _ *InfoInput) *InfoOutput {
	info, err := t.service.Raw(ctx)
	if err != nil {
		log.Errorf(ctx, "Failed to get date info: %v", err)
		return &InfoOutput{Content: "", Error: err.Error()}
	}
	return &InfoOutput{
		Content:     info,
		Description: "日期信息已获取",
	}
}
