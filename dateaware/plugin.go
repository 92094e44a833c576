// Package dateaware is the date/holiday awareness plugin: a tool, an
// always-on context injector, a pre-inference prompt hook and the /date
// command, all backed by the same three-day rendering.
package dateaware

import (
	"context"

	"github.com/firebase/genkit/go/genkit"
	"github.com/va6996/dateaware/config"
	"github.com/va6996/dateaware/dayinfo"
	"github.com/va6996/dateaware/expand"
	"github.com/va6996/dateaware/host"
	"github.com/va6996/dateaware/tools"
)

// PluginName identifies the plugin to the host
const PluginName = "date_aware_plugin"

// Service renders date info and optionally expands it into prose
type Service struct {
	Formatter *dayinfo.Formatter
	Expander  *expand.Expander
	Config    config.DateConfig
}

// Raw returns the three-line rendering
func (s *Service) Raw(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return s.Formatter.Render(ctx), nil
}

// Info returns the rendering, rewritten by the LLM when expansion is enabled
func (s *Service) Info(ctx context.Context) (string, error) {
	raw, err := s.Raw(ctx)
	if err != nil {
		return "", err
	}
	if !s.Config.EnableLLMExpand {
		return raw, nil
	}
	return s.Expander.Expand(ctx, raw), nil
}

// Plugin mounts the date components into a host
type Plugin struct {
	service *Service
	cfg     config.Config

	InfoTool   *InfoTool
	LookupTool *LookupTool
}

var _ host.Plugin = (*Plugin)(nil)

// NewPlugin creates the plugin; tools are defined on RegisterTools
func NewPlugin(cfg config.Config, formatter *dayinfo.Formatter, expander *expand.Expander) *Plugin {
	service := &Service{
		Formatter: formatter,
		Expander:  expander,
		Config:    cfg.Date,
	}
	return &Plugin{
		service:    service,
		cfg:        cfg,
		InfoTool:   &InfoTool{service: service},
		LookupTool: NewLookupTool(formatter),
	}
}

// Name implements host.Plugin
func (p *Plugin) Name() string {
	return PluginName
}

// Enabled implements host.Plugin
func (p *Plugin) Enabled() bool {
	return p.cfg.Plugin.Enabled
}

// Service exposes the rendering service for surfaces outside the host
func (p *Plugin) Service() *Service {
	return p.service
}

// RegisterTools implements tools.ToolPlugin
func (p *Plugin) RegisterTools(gk *genkit.Genkit, registry *tools.Registry) {
	if gk == nil || registry == nil {
		return
	}
	p.InfoTool.Register(gk, registry)
	p.LookupTool.Register(gk, registry)
}

// Components implements host.Plugin. The context injector is only
// contributed when date.enable_action is set.
func (p *Plugin) Components() host.Components {
	c := host.Components{
		Commands: []host.Command{NewDateCommand(p.service)},
		Handlers: []host.EventHandler{NewPromptHook(p.service)},
	}
	if p.cfg.Date.EnableAction {
		c.Actions = []host.Action{NewContextInjector(p.service)}
	}
	return c
}
