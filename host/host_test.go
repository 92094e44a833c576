package host

import (
	"context"
	"regexp"
	"testing"

	"github.com/firebase/genkit/go/genkit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	logcontext "github.com/va6996/dateaware/context"
	"github.com/va6996/dateaware/tools"
)

type pingCommand struct {
	requestID string
}

func (c *pingCommand) Name() string            { return "ping" }
func (c *pingCommand) Description() string     { return "replies pong" }
func (c *pingCommand) Pattern() *regexp.Regexp { return regexp.MustCompile(`^/ping$`) }
func (c *pingCommand) Execute(ctx context.Context, sender Sender) CommandResult {
	c.requestID = logcontext.RequestIDFromContext(ctx)
	_ = sender.SendText(ctx, "pong")
	return CommandResult{Success: true, Message: "pong sent", Intercept: true}
}

type suffixHandler struct {
	name   string
	weight int
	suffix string
	cont   bool
}

func (h *suffixHandler) Name() string     { return h.name }
func (h *suffixHandler) Event() EventType { return EventPreLLM }
func (h *suffixHandler) Weight() int      { return h.weight }
func (h *suffixHandler) Handle(_ context.Context, msg *Message) HookResult {
	next := *msg
	next.ModifyLLMPrompt(msg.LLMPrompt + h.suffix)
	return HookResult{Continue: h.cont, Message: &next}
}

type contextAction struct{ ok bool }

func (a *contextAction) Name() string        { return "ctx" }
func (a *contextAction) Description() string { return "adds context" }
func (a *contextAction) Execute(_ context.Context, msg *Message) (bool, string) {
	if !a.ok {
		return false, "nope"
	}
	msg.AddContext("[ctx]")
	return true, "added"
}

type testPlugin struct {
	enabled    bool
	components Components
	toolsSeen  bool
}

func (p *testPlugin) Name() string           { return "test" }
func (p *testPlugin) Enabled() bool          { return p.enabled }
func (p *testPlugin) Components() Components { return p.components }
func (p *testPlugin) RegisterTools(_ *genkit.Genkit, _ *tools.Registry) {
	p.toolsSeen = true
}

func TestRouter_Dispatch(t *testing.T) {
	cmd := &pingCommand{}
	h := New(nil, nil)
	h.Router.Add(cmd)
	sender := &BufferSender{}

	res, ok := h.HandleCommand(context.Background(), "  /ping ", sender)
	require.True(t, ok)
	assert.True(t, res.Success)
	assert.Equal(t, []string{"pong"}, sender.Replies())
	assert.NotEmpty(t, cmd.requestID)

	_, ok = h.HandleCommand(context.Background(), "/pingpong", sender)
	assert.False(t, ok)
}

func TestPipeline_Run(t *testing.T) {
	p := NewPipeline()
	p.Add(&suffixHandler{name: "light", weight: 1, suffix: "-light", cont: true})
	p.Add(&suffixHandler{name: "heavy", weight: 10, suffix: "-heavy", cont: true})

	out := p.Run(context.Background(), EventPreLLM, &Message{LLMPrompt: "base"})
	assert.Equal(t, "base-heavy-light", out.LLMPrompt)

	stop := NewPipeline()
	stop.Add(&suffixHandler{name: "stop", weight: 5, suffix: "-stop", cont: false})
	stop.Add(&suffixHandler{name: "never", weight: 1, suffix: "-never", cont: true})
	out = stop.Run(context.Background(), EventPreLLM, &Message{LLMPrompt: "base"})
	assert.Equal(t, "base-stop", out.LLMPrompt)
}

func TestHost_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("Disabled", func(t *testing.T) {
		p := &testPlugin{components: Components{Commands: []Command{&pingCommand{}}}}
		h := New(nil, nil)
		h.Register(ctx, p)
		assert.False(t, p.toolsSeen)
		_, ok := h.HandleCommand(ctx, "/ping", &BufferSender{})
		assert.False(t, ok)
	})

	t.Run("Enabled", func(t *testing.T) {
		p := &testPlugin{enabled: true, components: Components{
			Commands: []Command{&pingCommand{}},
			Handlers: []EventHandler{&suffixHandler{name: "s", weight: 1, suffix: "!", cont: true}},
			Actions:  []Action{&contextAction{ok: true}, &contextAction{ok: false}},
		}}
		h := New(nil, nil)
		h.Register(ctx, p)
		assert.True(t, p.toolsSeen)

		msg := h.PrepareGeneration(ctx, &Message{LLMPrompt: "hello"})
		assert.Equal(t, "hello!", msg.LLMPrompt)
		assert.Equal(t, []string{"[ctx]"}, msg.Context)
		assert.Equal(t, "[ctx]\n\nhello!", msg.FullPrompt())
	})
}
