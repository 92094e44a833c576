package host

import (
	"context"
	"sync"

	"github.com/va6996/dateaware/log"
)

// Action is an always-on step run before the model is invoked
type Action interface {
	Name() string
	Description() string
	Execute(ctx context.Context, msg *Message) (bool, string)
}

// Actions holds the always-on actions
type Actions struct {
	mu      sync.RWMutex
	actions []Action
}

// NewActions creates an empty action set
func NewActions() *Actions {
	return &Actions{}
}

// Add registers action
func (a *Actions) Add(action Action) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.actions = append(a.actions, action)
}

// RunAlways executes every action in registration order. Failures are
// logged and do not stop the others.
func (a *Actions) RunAlways(ctx context.Context, msg *Message) {
	a.mu.RLock()
	actions := append([]Action(nil), a.actions...)
	a.mu.RUnlock()

	for _, action := range actions {
		ok, detail := action.Execute(ctx, msg)
		if !ok {
			log.Warnf(ctx, "Action %s failed: %s", action.Name(), detail)
			continue
		}
		log.Debugf(ctx, "Action %s: %s", action.Name(), detail)
	}
}
