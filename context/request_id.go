// Package context tags each host call chain (a /date command, a tool call,
// one prompt preparation) with an id that every log line of the chain carries.
package context

import (
	stdctx "context"

	"github.com/google/uuid"
)

type requestIDKey struct{}

// NewRequestID returns a random UUID string
func NewRequestID() string {
	return uuid.NewString()
}

// WithRequestID returns a child of parent carrying id
func WithRequestID(parent stdctx.Context, id string) stdctx.Context {
	return stdctx.WithValue(parent, requestIDKey{}, id)
}

// RequestIDFromContext returns the chain's id, or "" outside a host call
func RequestIDFromContext(ctx stdctx.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// EnsureRequestID keeps an id set by the transport (e.g. X-Request-ID) and
// otherwise starts a new chain.
func EnsureRequestID(ctx stdctx.Context) stdctx.Context {
	if RequestIDFromContext(ctx) != "" {
		return ctx
	}
	return WithRequestID(ctx, NewRequestID())
}
