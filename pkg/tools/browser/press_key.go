package browser

import (
	"context"
	"encoding/json"
	"fmt"

	engine "github.com/entrhq/browserd/pkg/browser"
	"github.com/entrhq/browserd/pkg/logging"
	"github.com/entrhq/browserd/pkg/tools"
)

// PressKeyTool sends a keyboard event to the first element matching a
// selector.
type PressKeyTool struct {
	manager    *engine.Manager
	interactor *engine.Interactor
}

// NewPressKeyTool creates a new press key tool.
func NewPressKeyTool(manager *engine.Manager, log *logging.Logger) *PressKeyTool {
	return &PressKeyTool{manager: manager, interactor: newInteractor(manager, log)}
}

// Name returns the tool name.
func (t *PressKeyTool) Name() string {
	return "press_key"
}

// Description returns the tool description.
func (t *PressKeyTool) Description() string {
	return "Press a keyboard key on the first element matching a CSS selector. Supports named keys (Enter, Tab, Escape, ArrowDown), single characters and modifier combinations like 'Control+a' or 'Shift+Tab'."
}

// Schema returns the tool's JSON schema.
func (t *PressKeyTool) Schema() map[string]interface{} {
	return tools.BaseToolSchema(
		map[string]interface{}{
			"selector": map[string]interface{}{
				"type":        "string",
				"description": "CSS selector for the target element (e.g. '#search-input')",
			},
			"key": map[string]interface{}{
				"type":        "string",
				"description": "Key to press: a named key, a single character, or modifiers joined with '+' (e.g. 'Enter', 'a', 'Control+Shift+t')",
			},
		},
		[]string{"selector", "key"},
	)
}

// pressKeyInput defines the input parameters.
type pressKeyInput struct {
	Selector string `json:"selector"`
	Key      string `json:"key"`
}

// Execute presses the key.
func (t *PressKeyTool) Execute(ctx context.Context, args json.RawMessage) (interface{}, error) {
	var input pressKeyInput
	if err := parseArgs(args, &input); err != nil {
		return nil, err
	}
	if input.Selector == "" {
		return nil, engine.ValidationErrorf("selector is required")
	}
	if err := engine.ValidateKey(input.Key); err != nil {
		return nil, err
	}

	page, err := t.manager.EnsureReady(ctx)
	if err != nil {
		return nil, err
	}
	if err := t.interactor.Press(ctx, page, input.Selector, input.Key, t.manager.Timeout()); err != nil {
		return nil, err
	}
	return fmt.Sprintf("Pressed %s on %s", input.Key, input.Selector), nil
}
