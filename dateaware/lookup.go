package dateaware

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dop251/goja"
	"github.com/firebase/genkit/go/ai"
	"github.com/firebase/genkit/go/genkit"
	"github.com/va6996/dateaware/dayinfo"
	"github.com/va6996/dateaware/log"
	"github.com/va6996/dateaware/tools"
)

// LookupToolName is the tool id models call
const LookupToolName = "date_lookup"

// evalTimeout bounds one expression even when the caller's context has no deadline
var evalTimeout = 2 * time.Second

// LookupInput is a JavaScript expression evaluating to a date
type LookupInput struct {
	Expression string `json:"expression" description:"JavaScript expression evaluating to a Date or ISO string. Variable 'now' holds the current timestamp in milliseconds."`
}

// LookupOutput is the annotated day, or an error string
type LookupOutput struct {
	Day   *dayinfo.Day `json:"day,omitempty"`
	Error string       `json:"error,omitempty"`
}

// LookupTool resolves relative date expressions ("next Friday") to an
// annotated day, with holidays taken from that day's own year
type LookupTool struct {
	formatter *dayinfo.Formatter
}

// NewLookupTool creates the tool over formatter
func NewLookupTool(formatter *dayinfo.Formatter) *LookupTool {
	return &LookupTool{formatter: formatter}
}

func (t *LookupTool) Name() string {
	return LookupToolName
}

func (t *LookupTool) Description() string {
	return `查询任意日期的星期几和节假日。Executes a JavaScript expression; variable 'now' holds the current timestamp (milliseconds).
Return a Date object or ISO string. The last expression is the return value.
ISO strings without an offset (e.g. "2025-10-01") are read in the server's local time zone, not UTC.
Expressions are stopped after a few seconds.
Examples:
- Next Friday: "var d = new Date(now); d.setDate(d.getDate() + ((12 - d.getDay()) % 7 || 7)); d"
- In ten days: "new Date(now + 10 * 86400000)"
- A fixed date: "'2025-10-01'"`
}

// Register defines the tool with genkit and adds it to registry
func (t *LookupTool) Register(gk *genkit.Genkit, registry *tools.Registry) {
	registry.Register(genkit.DefineTool[*LookupInput, *LookupOutput](
		gk,
		t.Name(),
		t.Description(),
		func(ctx *ai.ToolContext, input *LookupInput) (*LookupOutput, error) {
			return t.Execute(ctx, input), nil
		},
	), func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
		expression, ok := args["expression"].(string)
		if !ok {
			return nil, fmt.Errorf("missing expression")
		}
		return t.Execute(ctx, &LookupInput{Expression: expression}), nil
	})
}

// Execute evaluates the expression and annotates the resulting day
func (t *LookupTool) Execute(ctx context.Context, input *LookupInput) *LookupOutput {
	if input == nil || input.Expression == "" {
		return &LookupOutput{Error: "expression is required"}
	}

	now := t.formatter.Now()
	date, err := evalDate(ctx, input.Expression, now)
	if err != nil {
		log.Warnf(ctx, "date_lookup failed for %q: %v", input.Expression, err)
		return &LookupOutput{Error: err.Error()}
	}

	day := t.formatter.Lookup(ctx, date.In(now.Location()))
	return &LookupOutput{Day: &day}
}

// evalDate runs expression in a fresh VM with 'now' bound to now. The VM is
// interrupted when ctx is done or evalTimeout passes. Date strings are read
// in now's location.
func evalDate(ctx context.Context, expression string, now time.Time) (time.Time, error) {
	ctx, cancel := context.WithTimeout(ctx, evalTimeout)
	defer cancel()

	vm := goja.New()
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			vm.Interrupt(ctx.Err())
		case <-done:
		}
	}()

	if err := vm.Set("now", now.UnixMilli()); err != nil {
		return time.Time{}, fmt.Errorf("failed to set 'now': %w", err)
	}

	val, err := vm.RunString(expression)
	if err != nil {
		var interrupted *goja.InterruptedError
		if errors.As(err, &interrupted) {
			return time.Time{}, fmt.Errorf("js execution interrupted: %v", interrupted.Value())
		}
		return time.Time{}, fmt.Errorf("js execution failed: %w", err)
	}

	switch v := val.Export().(type) {
	case nil:
		return time.Time{}, fmt.Errorf("result is null or undefined")
	case time.Time:
		return v, nil
	case string:
		for _, layout := range []string{time.RFC3339, time.DateOnly} {
			if parsed, err := time.ParseInLocation(layout, v, now.Location()); err == nil {
				return parsed, nil
			}
		}
		return time.Time{}, fmt.Errorf("cannot parse %q as a date", v)
	default:
		return time.Time{}, fmt.Errorf("result is not a valid Date object or ISO string")
	}
}
