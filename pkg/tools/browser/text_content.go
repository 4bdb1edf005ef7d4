package browser

import (
	"context"
	"encoding/json"

	engine "github.com/entrhq/browserd/pkg/browser"
	"github.com/entrhq/browserd/pkg/tools"
)

// TextContentTool reads the text content of the first element matching a
// selector.
type TextContentTool struct {
	manager *engine.Manager
}

// NewTextContentTool creates a new text content tool.
func NewTextContentTool(manager *engine.Manager) *TextContentTool {
	return &TextContentTool{manager: manager}
}

// Name returns the tool name.
func (t *TextContentTool) Name() string {
	return "get_element_text_content"
}

// Description returns the tool description.
func (t *TextContentTool) Description() string {
	return "Get the text content of the first element matching a CSS selector. Fails with element_not_found when nothing matches."
}

// Schema returns the tool's JSON schema.
func (t *TextContentTool) Schema() map[string]interface{} {
	return tools.BaseToolSchema(
		map[string]interface{}{
			"selector": map[string]interface{}{
				"type":        "string",
				"description": "CSS selector identifying the element (e.g. 'h1.title', '.error-message')",
			},
		},
		[]string{"selector"},
	)
}

// textContentInput defines the input parameters.
type textContentInput struct {
	Selector string `json:"selector"`
}

// Execute reads the element text.
func (t *TextContentTool) Execute(ctx context.Context, args json.RawMessage) (interface{}, error) {
	var input textContentInput
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
	return engine.ElementText(page, input.Selector)
}
