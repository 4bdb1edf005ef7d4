package browser

import (
	"context"
	"encoding/json"

	engine "github.com/entrhq/browserd/pkg/browser"
	"github.com/entrhq/browserd/pkg/tools"
)

// EvaluateTool executes JavaScript in the page context and returns the
// serialized result.
type EvaluateTool struct {
	manager *engine.Manager
}

// NewEvaluateTool creates a new evaluate tool.
func NewEvaluateTool(manager *engine.Manager) *EvaluateTool {
	return &EvaluateTool{manager: manager}
}

// Name returns the tool name.
func (t *EvaluateTool) Name() string {
	return "execute_js"
}

// Description returns the tool description.
func (t *EvaluateTool) Description() string {
	return "Execute JavaScript code in the page context and return the result. The result must be JSON-serializable: functions, symbols and cyclic structures fail with serialization_error; runtime failures in the code fail with script_error."
}

// Schema returns the tool's JSON schema.
func (t *EvaluateTool) Schema() map[string]interface{} {
	return tools.BaseToolSchema(
		map[string]interface{}{
			"code": map[string]interface{}{
				"type":        "string",
				"description": "JavaScript to execute: an expression (e.g. 'document.title') or a function that receives the args positionally (e.g. '(a, b) => a + b')",
			},
			"args": map[string]interface{}{
				"type":        "array",
				"description": "Optional arguments bound positionally when code is a function",
			},
		},
		[]string{"code"},
	)
}

// evaluateInput defines the input parameters.
type evaluateInput struct {
	Code string        `json:"code"`
	Args []interface{} `json:"args"`
}

// Execute evaluates the script.
func (t *EvaluateTool) Execute(ctx context.Context, args json.RawMessage) (interface{}, error) {
	var input evaluateInput
	if err := parseArgs(args, &input); err != nil {
		return nil, err
	}
	if input.Code == "" {
		return nil, engine.ValidationErrorf("code is required")
	}

	page, err := t.manager.EnsureReady(ctx)
	if err != nil {
		return nil, err
	}
	return engine.Evaluate(page, input.Code, input.Args)
}
