package host

import (
	"context"
	"regexp"
	"strings"
	"sync"

	"github.com/va6996/dateaware/log"
)

// CommandResult is what a command reports back to the router. Success is
// transport-level: a command that failed for the user may still report true.
type CommandResult struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Intercept bool   `json:"intercept"`
}

// Command handles chat text matching its pattern
type Command interface {
	Name() string
	Description() string
	Pattern() *regexp.Regexp
	Execute(ctx context.Context, sender Sender) CommandResult
}

// Router matches chat text against registered command patterns
type Router struct {
	mu       sync.RWMutex
	commands []Command
}

// NewRouter creates an empty router
func NewRouter() *Router {
	return &Router{}
}

// Add registers cmd; earlier registrations win on overlapping patterns
func (r *Router) Add(cmd Command) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.commands = append(r.commands, cmd)
}

// Dispatch runs the first command whose pattern matches text.
// The bool is false when nothing matched.
func (r *Router) Dispatch(ctx context.Context, text string, sender Sender) (CommandResult, bool) {
	text = strings.TrimSpace(text)

	r.mu.RLock()
	var matched Command
	for _, cmd := range r.commands {
		if cmd.Pattern().MatchString(text) {
			matched = cmd
			break
		}
	}
	r.mu.RUnlock()

	if matched == nil {
		return CommandResult{}, false
	}
	log.Debugf(ctx, "Dispatching %q to command %s", text, matched.Name())
	return matched.Execute(ctx, sender), true
}
