package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/firebase/genkit/go/ai"
	"github.com/firebase/genkit/go/genkit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defineEchoModel(gk *genkit.Genkit, name string, reply string, err error) ai.Model {
	return genkit.DefineModel(gk, name, &ai.ModelOptions{Supports: &ai.ModelSupports{}},
		func(ctx context.Context, req *ai.ModelRequest, cb ai.ModelStreamCallback) (*ai.ModelResponse, error) {
			if err != nil {
				return nil, err
			}
			return &ai.ModelResponse{
				Request: req,
				Message: ai.NewModelTextMessage(reply),
			}, nil
		})
}

func TestClient_GenerateContent(t *testing.T) {
	ctx := context.Background()
	gk := genkit.Init(ctx)

	t.Run("TrimsReply", func(t *testing.T) {
		model := defineEchoModel(gk, "test/echo", "  今天是星期一。\n", nil)
		out, err := NewClient(gk, model).GenerateContent(ctx, "hi")
		require.NoError(t, err)
		assert.Equal(t, "今天是星期一。", out)
	})

	t.Run("ModelError", func(t *testing.T) {
		model := defineEchoModel(gk, "test/broken", "", errors.New("quota exceeded"))
		_, err := NewClient(gk, model).GenerateContent(ctx, "hi")
		assert.Error(t, err)
	})

	t.Run("NotConfigured", func(t *testing.T) {
		_, err := NewClient(gk, nil).GenerateContent(ctx, "hi")
		assert.EqualError(t, err, "model not configured")
	})
}

func TestResolveModel(t *testing.T) {
	ctx := context.Background()
	gk := genkit.Init(ctx)
	model := defineEchoModel(gk, "test/replyer-backend", "ok", nil)

	assert.Equal(t, model, ResolveModel(gk, "replyer", map[string]ai.Model{"replyer": model}))
	assert.NotNil(t, ResolveModel(gk, "test/replyer-backend", nil))
	assert.Nil(t, ResolveModel(gk, "", map[string]ai.Model{"replyer": model}))
	assert.Nil(t, ResolveModel(nil, "unknown", nil))
}
