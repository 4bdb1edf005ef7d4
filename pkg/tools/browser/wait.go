package browser

import (
	"context"
	"encoding/json"
	"fmt"

	engine "github.com/entrhq/browserd/pkg/browser"
	"github.com/entrhq/browserd/pkg/tools"
)

// WaitTool blocks until an element reaches a target state or the timeout
// elapses.
type WaitTool struct {
	manager *engine.Manager
	waiter  *engine.Waiter
}

// NewWaitTool creates a new wait tool.
func NewWaitTool(manager *engine.Manager) *WaitTool {
	return &WaitTool{
		manager: manager,
		waiter:  &engine.Waiter{Interval: manager.PollInterval()},
	}
}

// Name returns the tool name.
func (t *WaitTool) Name() string {
	return "wait_for_element"
}

// Description returns the tool description.
func (t *WaitTool) Description() string {
	return "Wait for an element to reach a state: 'attached' (in DOM), 'detached' (removed from DOM), 'visible' (default), or 'hidden'. Fails with wait_timeout when the state is not reached in time."
}

// Schema returns the tool's JSON schema.
func (t *WaitTool) Schema() map[string]interface{} {
	return tools.BaseToolSchema(
		map[string]interface{}{
			"selector": map[string]interface{}{
				"type":        "string",
				"description": "CSS selector for the element to wait for (e.g. '.loading-spinner', '#content')",
			},
			"state": map[string]interface{}{
				"type":        "string",
				"description": "State to wait for: 'attached', 'detached', 'visible' (default), or 'hidden'",
			},
			"timeout": map[string]interface{}{
				"type":        "number",
				"description": "Maximum wait time in milliseconds. Default: 30000 (30 seconds)",
			},
		},
		[]string{"selector"},
	)
}

// waitInput defines the input parameters.
type waitInput struct {
	Selector string   `json:"selector"`
	State    string   `json:"state"`
	Timeout  *float64 `json:"timeout"`
}

// Execute waits for the element state.
func (t *WaitTool) Execute(ctx context.Context, args json.RawMessage) (interface{}, error) {
	var input waitInput
	if err := parseArgs(args, &input); err != nil {
		return nil, err
	}
	if input.Selector == "" {
		return nil, engine.ValidationErrorf("selector is required")
	}
	state := engine.WaitState(input.State)
	if input.State == "" {
		state = engine.WaitVisible
	}
	if !engine.ValidWaitState(state) {
		return nil, engine.ValidationErrorf("invalid state %q (must be 'attached', 'detached', 'visible', or 'hidden')", input.State)
	}
	timeout, err := timeoutFromMillis(input.Timeout, t.manager.Timeout())
	if err != nil {
		return nil, err
	}

	page, err := t.manager.EnsureReady(ctx)
	if err != nil {
		return nil, err
	}
	if err := t.waiter.Wait(ctx, page, input.Selector, state, timeout); err != nil {
		return nil, err
	}
	return fmt.Sprintf("Element %s is %s", input.Selector, state), nil
}
