package browser

import (
	"context"
	"encoding/json"

	engine "github.com/entrhq/browserd/pkg/browser"
	"github.com/entrhq/browserd/pkg/tools"
)

// FindElementsTool lists every element matching a selector as a lightweight
// descriptor. Zero matches is a successful empty list.
type FindElementsTool struct {
	manager *engine.Manager
}

// NewFindElementsTool creates a new find elements tool.
func NewFindElementsTool(manager *engine.Manager) *FindElementsTool {
	return &FindElementsTool{manager: manager}
}

// Name returns the tool name.
func (t *FindElementsTool) Name() string {
	return "find_elements"
}

// Description returns the tool description.
func (t *FindElementsTool) Description() string {
	return "Find all elements matching a CSS selector and return lightweight descriptors (tag, direct text, id, class) in document order. Returns an empty list when nothing matches."
}

// Schema returns the tool's JSON schema.
func (t *FindElementsTool) Schema() map[string]interface{} {
	return tools.BaseToolSchema(
		map[string]interface{}{
			"selector": map[string]interface{}{
				"type":        "string",
				"description": "CSS selector identifying the elements (e.g. '.product-item', 'ul.menu > li')",
			},
		},
		[]string{"selector"},
	)
}

// findElementsInput defines the input parameters.
type findElementsInput struct {
	Selector string `json:"selector"`
}

// Execute finds matching elements.
func (t *FindElementsTool) Execute(ctx context.Context, args json.RawMessage) (interface{}, error) {
	var input findElementsInput
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
	return engine.DescribeElements(page, input.Selector)
}
