package context

import (
	stdctx "context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequestID(t *testing.T) {
	ctx := WithRequestID(stdctx.Background(), "abc")
	assert.Equal(t, "abc", RequestIDFromContext(ctx))
	assert.Equal(t, "", RequestIDFromContext(stdctx.Background()))
}

func TestEnsureRequestID(t *testing.T) {
	t.Run("KeepsExisting", func(t *testing.T) {
		ctx := WithRequestID(stdctx.Background(), "abc")
		assert.Equal(t, "abc", RequestIDFromContext(EnsureRequestID(ctx)))
	})

	t.Run("AssignsFresh", func(t *testing.T) {
		first := RequestIDFromContext(EnsureRequestID(stdctx.Background()))
		second := RequestIDFromContext(EnsureRequestID(stdctx.Background()))
		assert.NotEmpty(t, first)
		assert.NotEqual(t, first, second)
	})
}
