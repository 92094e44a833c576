package tools_test

import (
	"context"
	"testing"

	"github.com/firebase/genkit/go/ai"
	"github.com/firebase/genkit/go/genkit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/va6996/dateaware/tools"
)

type echoInput struct {
	Text string `json:"text"`
}

func TestNewRegistry(t *testing.T) {
	reg := tools.NewRegistry()
	assert.NotNil(t, reg)
	assert.Empty(t, reg.GetTools())
	assert.Empty(t, reg.Names())
}

func TestRegistry_RegisterAndExecute(t *testing.T) {
	ctx := context.Background()
	gk := genkit.Init(ctx)
	reg := tools.NewRegistry()

	reg.Register(genkit.DefineTool[*echoInput, string](
		gk,
		"echoTool",
		"Echoes its input",
		func(ctx *ai.ToolContext, input *echoInput) (string, error) {
			return input.Text, nil
		},
	), func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
		text, _ := args["text"].(string)
		return text, nil
	})

	registered := reg.GetTools()
	require.Len(t, registered, 1)
	assert.Equal(t, "echoTool", registered[0].Definition().Name)
	assert.Equal(t, []string{"echoTool"}, reg.Names())

	out, err := reg.ExecuteTool(ctx, "echoTool", map[string]interface{}{"text": "hi"})
	require.NoError(t, err)
	assert.Equal(t, "hi", out)
}

func TestRegistry_ExecuteUnknown(t *testing.T) {
	_, err := tools.NewRegistry().ExecuteTool(context.Background(), "missing", nil)
	assert.EqualError(t, err, "tool not found: missing")
}
