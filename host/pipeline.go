package host

import (
	"context"
	"sort"
	"sync"
)

// EventType names a point in the host's message lifecycle
type EventType string

const (
	// EventPreLLM fires before each model inference call
	EventPreLLM EventType = "pre_llm"
)

// HookResult tells the pipeline how to proceed. A non-nil Message replaces
// the one passed to later handlers.
type HookResult struct {
	Continue bool
	Message  *Message
}

// EventHandler reacts to one event type
type EventHandler interface {
	Name() string
	Event() EventType
	Weight() int
	Handle(ctx context.Context, msg *Message) HookResult
}

// Pipeline runs handlers per event, heaviest first
type Pipeline struct {
	mu       sync.RWMutex
	handlers map[EventType][]EventHandler
}

// NewPipeline creates an empty pipeline
func NewPipeline() *Pipeline {
	return &Pipeline{handlers: make(map[EventType][]EventHandler)}
}

// Add registers h under its event
func (p *Pipeline) Add(h EventHandler) {
	p.mu.Lock()
	defer p.mu.Unlock()
	list := append(p.handlers[h.Event()], h)
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].Weight() > list[j].Weight()
	})
	p.handlers[h.Event()] = list
}

// Run passes msg through the handlers of event and returns the final message
func (p *Pipeline) Run(ctx context.Context, event EventType, msg *Message) *Message {
	p.mu.RLock()
	handlers := append([]EventHandler(nil), p.handlers[event]...)
	p.mu.RUnlock()

	for _, h := range handlers {
		res := h.Handle(ctx, msg)
		if res.Message != nil {
			msg = res.Message
		}
		if !res.Continue {
			break
		}
	}
	return msg
}
