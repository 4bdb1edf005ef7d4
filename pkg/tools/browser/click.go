package browser

import (
	"context"
	"encoding/json"
	"fmt"

	engine "github.com/entrhq/browserd/pkg/browser"
	"github.com/entrhq/browserd/pkg/logging"
	"github.com/entrhq/browserd/pkg/tools"
)

// ClickTool clicks the first element matching a selector once it becomes
// visible.
type ClickTool struct {
	manager    *engine.Manager
	interactor *engine.Interactor
}

// NewClickTool creates a new click tool.
func NewClickTool(manager *engine.Manager, log *logging.Logger) *ClickTool {
	return &ClickTool{manager: manager, interactor: newInteractor(manager, log)}
}

// Name returns the tool name.
func (t *ClickTool) Name() string {
	return "click_on_element"
}

// Description returns the tool description.
func (t *ClickTool) Description() string {
	return "Click the first element matching a CSS selector. Waits for the element to become visible first; fails with element_not_interactable if it never does."
}

// Schema returns the tool's JSON schema.
func (t *ClickTool) Schema() map[string]interface{} {
	return tools.BaseToolSchema(
		map[string]interface{}{
			"selector": map[string]interface{}{
				"type":        "string",
				"description": "CSS selector for the element to click (e.g. '#submit-button', '.menu-toggle')",
			},
		},
		[]string{"selector"},
	)
}

// clickInput defines the input parameters.
type clickInput struct {
	Selector string `json:"selector"`
}

// Execute clicks the element.
func (t *ClickTool) Execute(ctx context.Context, args json.RawMessage) (interface{}, error) {
	var input clickInput
	if err := parseArgs(args, &input); err != nil {
		return nil, err
	}
	if input.Selector == "" {
		return nil, engine.ValidationErrorf("selector is required")
	}

	page, err := t.manager.EnsureReady(ctx)
	if err != nil {
		return nil, err
	}
	if err := t.interactor.Click(ctx, page, input.Selector, t.manager.Timeout()); err != nil {
		return nil, err
	}
	return fmt.Sprintf("Clicked %s", input.Selector), nil
}
