package browser

import (
	"context"
	"encoding/json"

	engine "github.com/entrhq/browserd/pkg/browser"
	"github.com/entrhq/browserd/pkg/tools"
)

// ExploreElementTool serializes the subtree of one element, identified by a
// required selector.
type ExploreElementTool struct {
	manager *engine.Manager
}

// NewExploreElementTool creates a new explore element tool.
func NewExploreElementTool(manager *engine.Manager) *ExploreElementTool {
	return &ExploreElementTool{manager: manager}
}

// Name returns the tool name.
func (t *ExploreElementTool) Name() string {
	return "explore_element_dom"
}

// Description returns the tool description.
func (t *ExploreElementTool) Description() string {
	return "Serialize the DOM subtree of the first element matching a selector, down to a maximum depth. Fails with element_not_found when nothing matches."
}

// Schema returns the tool's JSON schema.
func (t *ExploreElementTool) Schema() map[string]interface{} {
	return tools.BaseToolSchema(
		map[string]interface{}{
			"selector": map[string]interface{}{
				"type":        "string",
				"description": "CSS selector identifying the traversal root (e.g. '#main-content', '.product-list')",
			},
			"max_depth": map[string]interface{}{
				"type":        "integer",
				"description": "Maximum number of parent-to-child hops to include. Default: 10",
			},
		},
		[]string{"selector"},
	)
}

// exploreElementInput defines the input parameters.
type exploreElementInput struct {
	Selector string `json:"selector"`
	MaxDepth *int   `json:"max_depth"`
}

// Execute explores the element subtree.
func (t *ExploreElementTool) Execute(ctx context.Context, args json.RawMessage) (interface{}, error) {
	var input exploreElementInput
	if err := parseArgs(args, &input); err != nil {
		return nil, err
	}
	if input.Selector == "" {
		return nil, engine.ValidationErrorf("selector is required")
	}
	maxDepth := engine.DefaultMaxDepth
	if input.MaxDepth != nil {
		maxDepth = *input.MaxDepth
	}
	if maxDepth < 0 {
		return nil, engine.ValidationErrorf("max_depth must be non-negative, got %d", maxDepth)
	}

	page, err := t.manager.EnsureReady(ctx)
	if err != nil {
		return nil, err
	}
	return engine.ExplorePage(page, input.Selector, maxDepth)
}
