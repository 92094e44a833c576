// Package host is the minimal plugin runtime the add-on is mounted in: a
// command router, an event pipeline, always-on actions and a tool registry.
package host

import (
	"context"

	"github.com/firebase/genkit/go/genkit"
	logcontext "github.com/va6996/dateaware/context"
	"github.com/va6996/dateaware/log"
	"github.com/va6996/dateaware/tools"
)

// Sender delivers text back to the chat the current call chain serves
type Sender interface {
	SendText(ctx context.Context, text string) error
}

// Components are what a plugin contributes besides tools
type Components struct {
	Commands []Command
	Handlers []EventHandler
	Actions  []Action
}

// Plugin is a unit of functionality the host can mount
type Plugin interface {
	tools.ToolPlugin
	Name() string
	Enabled() bool
	Components() Components
}

// Host bundles the runtime pieces shared by all plugins
type Host struct {
	Genkit   *genkit.Genkit
	Tools    *tools.Registry
	Router   *Router
	Pipeline *Pipeline
	Actions  *Actions
}

// New creates an empty host around gk and registry
func New(gk *genkit.Genkit, registry *tools.Registry) *Host {
	if registry == nil {
		registry = tools.NewRegistry()
	}
	return &Host{
		Genkit:   gk,
		Tools:    registry,
		Router:   NewRouter(),
		Pipeline: NewPipeline(),
		Actions:  NewActions(),
	}
}

// Register mounts p. Disabled plugins are skipped.
func (h *Host) Register(ctx context.Context, p Plugin) {
	if !p.Enabled() {
		log.Infof(ctx, "Plugin %s is disabled, skipping", p.Name())
		return
	}

	p.RegisterTools(h.Genkit, h.Tools)

	c := p.Components()
	for _, cmd := range c.Commands {
		h.Router.Add(cmd)
	}
	for _, handler := range c.Handlers {
		h.Pipeline.Add(handler)
	}
	for _, action := range c.Actions {
		h.Actions.Add(action)
	}
	log.Infof(ctx, "Registered plugin %s: %d commands, %d handlers, %d actions",
		p.Name(), len(c.Commands), len(c.Handlers), len(c.Actions))
}

// HandleCommand routes text to the first matching command
func (h *Host) HandleCommand(ctx context.Context, text string, sender Sender) (CommandResult, bool) {
	return h.Router.Dispatch(logcontext.EnsureRequestID(ctx), text, sender)
}

// CallTool invokes a registered tool by name
func (h *Host) CallTool(ctx context.Context, name string, args map[string]interface{}) (interface{}, error) {
	return h.Tools.ExecuteTool(logcontext.EnsureRequestID(ctx), name, args)
}

// PrepareGeneration runs always-on actions and then the pre-inference
// pipeline over msg, returning the message the model should see.
func (h *Host) PrepareGeneration(ctx context.Context, msg *Message) *Message {
	ctx = logcontext.EnsureRequestID(ctx)
	h.Actions.RunAlways(ctx, msg)
	return h.Pipeline.Run(ctx, EventPreLLM, msg)
}
