package mcpserver

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/va6996/dateaware/config"
	"github.com/va6996/dateaware/dateaware"
	"github.com/va6996/dateaware/dayinfo"
	"github.com/va6996/dateaware/expand"
	"github.com/va6996/dateaware/holiday"
)

type emptyHolidays struct{}

func (emptyHolidays) GetHolidayMap(context.Context, int) holiday.Map {
	return holiday.Map{}
}

func newTestPlugin(now time.Time) *dateaware.Plugin {
	formatter := &dayinfo.Formatter{
		Holidays: emptyHolidays{},
		Now:      func() time.Time { return now },
	}
	return dateaware.NewPlugin(config.Config{Plugin: config.PluginConfig{Enabled: true}}, formatter, expand.New(nil))
}

func textOf(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	require.Len(t, result.Content, 1)
	text, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok)
	return text.Text
}

func TestNew(t *testing.T) {
	s := New(newTestPlugin(time.Now()), "test")
	assert.NotNil(t, s)
}

func TestHandleDateInfo(t *testing.T) {
	p := newTestPlugin(time.Date(2024, time.January, 1, 10, 0, 0, 0, time.UTC))
	handler := handleDateInfo(p.InfoTool)

	t.Run("Success", func(t *testing.T) {
		result, err := handler(context.Background(), mcp.CallToolRequest{})
		require.NoError(t, err)
		assert.False(t, result.IsError)
		assert.Equal(t, "昨天 | 12月31日 星期日\n今天 | 1月1日 星期一【元旦】\n明天 | 1月2日 星期二", textOf(t, result))
	})

	t.Run("CancelledContext", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		result, err := handler(ctx, mcp.CallToolRequest{})
		require.NoError(t, err)
		assert.True(t, result.IsError)
	})
}

func TestHandleDateLookup(t *testing.T) {
	p := newTestPlugin(time.Date(2024, time.June, 1, 10, 0, 0, 0, time.UTC))
	handler := handleDateLookup(p.LookupTool)

	tests := []struct {
		name      string
		arguments map[string]interface{}
		wantError bool
		wantDay   string
	}{
		{"ChildrensDay", map[string]interface{}{"expression": "'2024-06-01'"}, false, "儿童节"},
		{"MissingExpression", map[string]interface{}{}, true, ""},
		{"WrongType", map[string]interface{}{"expression": 42}, true, ""},
		{"BadScript", map[string]interface{}{"expression": "throw new Error('x')"}, true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := mcp.CallToolRequest{
				Params: mcp.CallToolParams{
					Name:      dateaware.LookupToolName,
					Arguments: tt.arguments,
				},
			}
			result, err := handler(context.Background(), request)
			require.NoError(t, err)
			assert.Equal(t, tt.wantError, result.IsError)
			if tt.wantError {
				return
			}

			var day dayinfo.Day
			require.NoError(t, json.Unmarshal([]byte(textOf(t, result)), &day))
			assert.Equal(t, tt.wantDay, day.Holiday)
			assert.Equal(t, "星期六", day.Weekday)
		})
	}
}
