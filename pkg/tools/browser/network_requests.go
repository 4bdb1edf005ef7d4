package browser

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	engine "github.com/entrhq/browserd/pkg/browser"
	"github.com/entrhq/browserd/pkg/tools"
)

// NetworkRequestsTool returns the captured network requests in arrival order.
type NetworkRequestsTool struct {
	manager *engine.Manager
}

// NewNetworkRequestsTool creates a new network requests tool.
func NewNetworkRequestsTool(manager *engine.Manager) *NetworkRequestsTool {
	return &NetworkRequestsTool{manager: manager}
}

// Name returns the tool name.
func (t *NetworkRequestsTool) Name() string {
	return "get_network_requests"
}

// Description returns the tool description.
func (t *NetworkRequestsTool) Description() string {
	return "Retrieve captured network requests in arrival order with URL, method, resource type and response status. Optionally clears the buffer atomically; supports resource_type and time_from/time_to filtering and limit/offset pagination."
}

// Schema returns the tool's JSON schema.
func (t *NetworkRequestsTool) Schema() map[string]interface{} {
	return tools.BaseToolSchema(
		map[string]interface{}{
			"clear": map[string]interface{}{
				"type":        "boolean",
				"description": "Clear the buffer after reading. The read and the clear are atomic",
			},
			"resource_type": map[string]interface{}{
				"type":        "string",
				"description": "Only return requests of this resource type (e.g. 'xhr', 'fetch', 'document', 'script')",
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

// networkRequestsInput defines the input parameters.
type networkRequestsInput struct {
	Clear        bool   `json:"clear"`
	ResourceType string `json:"resource_type"`
	TimeFrom     string `json:"time_from"`
	TimeTo       string `json:"time_to"`
	Limit        int    `json:"limit"`
	Offset       int    `json:"offset"`
}

// Execute reads the network buffer. The time window and resource type
// filters apply before pagination, so offset and limit count filtered
// entries.
func (t *NetworkRequestsTool) Execute(ctx context.Context, args json.RawMessage) (interface{}, error) {
	var input networkRequestsInput
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
	entries := t.manager.Telemetry().NetworkRequests(input.Clear)
	entries = clipToWindow(entries, func(e engine.NetworkRequestEntry) time.Time { return e.Timestamp }, start, end)
	if input.ResourceType != "" {
		want := strings.ToLower(input.ResourceType)
		filtered := make([]engine.NetworkRequestEntry, 0, len(entries))
		for _, entry := range entries {
			if strings.ToLower(entry.ResourceType) == want {
				filtered = append(filtered, entry)
			}
		}
		entries = filtered
	}
	return paginate(entries, input.Offset, input.Limit), nil
}
