package browser

import (
	"context"
	"encoding/json"
	"time"

	engine "github.com/entrhq/browserd/pkg/browser"
	"github.com/entrhq/browserd/pkg/tools"
)

// ConsoleLogsTool returns the captured console messages in arrival order.
type ConsoleLogsTool struct {
	manager *engine.Manager
}

// NewConsoleLogsTool creates a new console logs tool.
func NewConsoleLogsTool(manager *engine.Manager) *ConsoleLogsTool {
	return &ConsoleLogsTool{manager: manager}
}

// Name returns the tool name.
func (t *ConsoleLogsTool) Name() string {
	return "get_console_logs"
}

// Description returns the tool description.
func (t *ConsoleLogsTool) Description() string {
	return "Retrieve captured browser console messages in arrival order. Optionally clears the buffer atomically and supports time_from/time_to filtering and limit/offset pagination."
}

// Schema returns the tool's JSON schema.
func (t *ConsoleLogsTool) Schema() map[string]interface{} {
	return tools.BaseToolSchema(
		map[string]interface{}{
			"clear": map[string]interface{}{
				"type":        "boolean",
				"description": "Clear the buffer after reading. The read and the clear are atomic",
			},
			"time_from": map[string]interface{}{
				"type":        "string",
				"description": "Only return entries captured at or after this RFC 3339 timestamp",
			},
			"time_to": map[string]interface{}{
				"type":        "string",
				"description": "Only return entries captured at or before this RFC 3339 timestamp",
			},
			"limit": map[string]interface{}{
				"type":        "integer",
				"description": "Maximum number of entries to return. 0 means all",
			},
			"offset": map[string]interface{}{
				"type":        "integer",
				"description": "Number of entries to skip, for pagination",
			},
		},
		nil,
	)
}

// consoleLogsInput defines the input parameters.
type consoleLogsInput struct {
	Clear    bool   `json:"clear"`
	TimeFrom string `json:"time_from"`
	TimeTo   string `json:"time_to"`
	Limit    int    `json:"limit"`
	Offset   int    `json:"offset"`
}

// Execute reads the console buffer. The time window applies before
// pagination, so offset and limit count in-window entries.
func (t *ConsoleLogsTool) Execute(ctx context.Context, args json.RawMessage) (interface{}, error) {
	var input consoleLogsInput
	if err := parseArgs(args, &input); err != nil {
		return nil, err
	}
	if input.Limit < 0 {
		return nil, engine.ValidationErrorf("limit must be non-negative, got %d", input.Limit)
	}
	if input.Offset < 0 {
		return nil, engine.ValidationErrorf("offset must be non-negative, got %d", input.Offset)
	}
	start, end, err := timeWindow(input.TimeFrom, input.TimeTo)
	if err != nil {
		return nil, err
	}

	if _, err := t.manager.EnsureReady(ctx); err != nil {
		return nil, err
	}
	entries := t.manager.Telemetry().ConsoleLogs(input.Clear)
	entries = clipToWindow(entries, func(e engine.ConsoleLogEntry) time.Time { return e.Timestamp }, start, end)
	return paginate(entries, input.Offset, input.Limit), nil
}
