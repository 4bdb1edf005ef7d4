package browser

import (
	"context"
	"encoding/json"

	engine "github.com/entrhq/browserd/pkg/browser"
	"github.com/entrhq/browserd/pkg/tools"
)

// RestartTool tears down the current browser session and launches a fresh
// one, whatever state the old session was in.
type RestartTool struct {
	manager *engine.Manager
}

// NewRestartTool creates a new restart tool.
func NewRestartTool(manager *engine.Manager) *RestartTool {
	return &RestartTool{manager: manager}
}

// Name returns the tool name.
func (t *RestartTool) Name() string {
	return "restart_browser"
}

// Description returns the tool description.
func (t *RestartTool) Description() string {
	return "Restart the browser session. Any existing browser is torn down and replaced with a fresh one; captured console logs and network requests are cleared."
}

// Schema returns the tool's JSON schema.
func (t *RestartTool) Schema() map[string]interface{} {
	return tools.BaseToolSchema(map[string]interface{}{}, nil)
}

// Execute restarts the session.
func (t *RestartTool) Execute(ctx context.Context, args json.RawMessage) (interface{}, error) {
	var input struct{}
	if err := parseArgs(args, &input); err != nil {
		return nil, err
	}

	if err := t.manager.Restart(ctx); err != nil {
		return nil, err
	}
	return "Browser restarted; session is ready.", nil
}
