package browser

import (
	"context"
	"encoding/json"
	"fmt"

	engine "github.com/entrhq/browserd/pkg/browser"
	"github.com/entrhq/browserd/pkg/tools"
)

// NavigateTool loads a URL in the managed session's page.
type NavigateTool struct {
	manager *engine.Manager
}

// NewNavigateTool creates a new navigate tool.
func NewNavigateTool(manager *engine.Manager) *NavigateTool {
	return &NavigateTool{manager: manager}
}

// Name returns the tool name.
func (t *NavigateTool) Name() string {
	return "navigate_to_url"
}

// Description returns the tool description.
func (t *NavigateTool) Description() string {
	return "Navigate the browser to a URL. The URL must be absolute and use http or https."
}

// Schema returns the tool's JSON schema.
func (t *NavigateTool) Schema() map[string]interface{} {
	return tools.BaseToolSchema(
		map[string]interface{}{
			"url": map[string]interface{}{
				"type":        "string",
				"description": "Complete URL to navigate to, including protocol (e.g. https://example.com)",
			},
			"timeout": map[string]interface{}{
				"type":        "number",
				"description": "Maximum navigation time in milliseconds. Default: 30000 (30 seconds)",
			},
		},
		[]string{"url"},
	)
}

// navigateInput defines the input parameters.
type navigateInput struct {
	URL     string   `json:"url"`
	Timeout *float64 `json:"timeout"`
}

// Execute navigates to the URL.
func (t *NavigateTool) Execute(ctx context.Context, args json.RawMessage) (interface{}, error) {
	var input navigateInput
	if err := parseArgs(args, &input); err != nil {
		return nil, err
	}
	if err := engine.ValidateURL(input.URL); err != nil {
		return nil, err
	}
	timeout, err := timeoutFromMillis(input.Timeout, t.manager.Timeout())
	if err != nil {
		return nil, err
	}

	page, err := t.manager.EnsureReady(ctx)
	if err != nil {
		return nil, err
	}
	if err := engine.Navigate(page, input.URL, timeout); err != nil {
		return nil, err
	}
	return fmt.Sprintf("Navigated to %s", input.URL), nil
}
