package browser

import (
	"context"
	"encoding/json"

	engine "github.com/entrhq/browserd/pkg/browser"
	"github.com/entrhq/browserd/pkg/tools"
)

// ExplorePageTool serializes the page DOM into a bounded-depth tree, rooted
// at the body or at an optional selector.
type ExplorePageTool struct {
	manager *engine.Manager
}

// NewExplorePageTool creates a new explore page tool.
func NewExplorePageTool(manager *engine.Manager) *ExplorePageTool {
	return &ExplorePageTool{manager: manager}
}

// Name returns the tool name.
func (t *ExplorePageTool) Name() string {
	return "explore_page_dom"
}

// Description returns the tool description.
func (t *ExplorePageTool) Description() string {
	return "Serialize the current page's DOM as a tree of elements with their attributes and direct text, down to a maximum depth. max_depth 0 returns just the root."
}

// Schema returns the tool's JSON schema.
func (t *ExplorePageTool) Schema() map[string]interface{} {
	return tools.BaseToolSchema(
		map[string]interface{}{
			"selector": map[string]interface{}{
				"type":        "string",
				"description": "Optional CSS selector for the traversal root. Defaults to the document body",
			},
			"max_depth": map[string]interface{}{
				"type":        "integer",
				"description": "Maximum number of parent-to-child hops to include. Default: 10",
			},
		},
		nil,
	)
}

// explorePageInput defines the input parameters.
type explorePageInput struct {
	Selector string `json:"selector"`
	MaxDepth *int   `json:"max_depth"`
}

// Execute explores the page DOM.
func (t *ExplorePageTool) Execute(ctx context.Context, args json.RawMessage) (interface{}, error) {
	var input explorePageInput
	if err := parseArgs(args, &input); err != nil {
		return nil, err
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
