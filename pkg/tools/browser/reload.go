package browser

import (
	"context"
	"encoding/json"

	engine "github.com/entrhq/browserd/pkg/browser"
	"github.com/entrhq/browserd/pkg/tools"
)

// ReloadTool reloads the current page. Captured telemetry survives a reload;
// only a session restart clears it.
type ReloadTool struct {
	manager *engine.Manager
}

// NewReloadTool creates a new reload tool.
func NewReloadTool(manager *engine.Manager) *ReloadTool {
	return &ReloadTool{manager: manager}
}

// Name returns the tool name.
func (t *ReloadTool) Name() string {
	return "reload_page"
}

// Description returns the tool description.
func (t *ReloadTool) Description() string {
	return "Reload the current page."
}

// Schema returns the tool's JSON schema.
func (t *ReloadTool) Schema() map[string]interface{} {
	return tools.BaseToolSchema(map[string]interface{}{}, nil)
}

// Execute reloads the page.
func (t *ReloadTool) Execute(ctx context.Context, args json.RawMessage) (interface{}, error) {
	var input struct{}
	if err := parseArgs(args, &input); err != nil {
		return nil, err
	}

	page, err := t.manager.EnsureReady(ctx)
	if err != nil {
		return nil, err
	}
	if err := engine.Reload(page, t.manager.Timeout()); err != nil {
		return nil, err
	}
	return "Page reloaded", nil
}
