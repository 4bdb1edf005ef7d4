package browser

import (
	"context"
	"encoding/json"
	"fmt"

	engine "github.com/entrhq/browserd/pkg/browser"
	"github.com/entrhq/browserd/pkg/logging"
	"github.com/entrhq/browserd/pkg/tools"
)

// FillTool replaces the content of the first input matching a selector.
type FillTool struct {
	manager    *engine.Manager
	interactor *engine.Interactor
}

// NewFillTool creates a new fill tool.
func NewFillTool(manager *engine.Manager, log *logging.Logger) *FillTool {
	return &FillTool{manager: manager, interactor: newInteractor(manager, log)}
}

// Name returns the tool name.
func (t *FillTool) Name() string {
	return "fill_input"
}

// Description returns the tool description.
func (t *FillTool) Description() string {
	return "Fill a form input with text, replacing any existing content. Waits for the element to become visible first. An empty value clears the field."
}

// Schema returns the tool's JSON schema.
func (t *FillTool) Schema() map[string]interface{} {
	return tools.BaseToolSchema(
		map[string]interface{}{
			"selector": map[string]interface{}{
				"type":        "string",
				"description": "CSS selector for the input element (e.g. '#username', '.search-box')",
			},
			"value": map[string]interface{}{
				"type":        "string",
				"description": "Text to enter into the input field",
			},
		},
		[]string{"selector", "value"},
	)
}

// fillInput defines the input parameters.
type fillInput struct {
	Selector string  `json:"selector"`
	Value    *string `json:"value"`
}

// Execute fills the input.
func (t *FillTool) Execute(ctx context.Context, args json.RawMessage) (interface{}, error) {
	var input fillInput
	if err := parseArgs(args, &input); err != nil {
		return nil, err
	}
	if input.Selector == "" {
		return nil, engine.ValidationErrorf("selector is required")
	}
	if input.Value == nil {
		return nil, engine.ValidationErrorf("value is required")
	}

	page, err := t.manager.EnsureReady(ctx)
	if err != nil {
		return nil, err
	}
	if err := t.interactor.Fill(ctx, page, input.Selector, *input.Value, t.manager.Timeout()); err != nil {
		return nil, err
	}
	return fmt.Sprintf("Filled %s", input.Selector), nil
}
