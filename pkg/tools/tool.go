package tools

import (
	"context"
	"encoding/json"
)

// Tool represents one named operation exposed to the remote caller. Tools
// parse and validate their JSON arguments before doing any side-effecting
// work, so malformed input never reaches the browser session.
type Tool interface {
	// Name returns the stable identifier for this tool (e.g. "navigate_to_url")
	Name() string

	// Description returns a human-readable description of what this tool does
	Description() string

	// Schema returns the JSON schema for this tool's input parameters
	Schema() map[string]interface{}

	// Execute runs the tool with the given JSON arguments and returns the
	// tool-specific serializable result value
	Execute(ctx context.Context, arguments json.RawMessage) (interface{}, error)
}

// Call is one incoming tool invocation. It exists only for the life of one
// dispatch.
type Call struct {
	Name      string          `json:"name"`
	Arguments json.RawMessage `json:"arguments,omitempty"`
}

// Result is the uniform response envelope: a success payload or a typed
// error, never both.
type Result struct {
	OK    bool        `json:"ok"`
	Value interface{} `json:"value,omitempty"`
	Error *ErrorInfo  `json:"error,omitempty"`
}

// ErrorInfo carries a typed error across the wire.
type ErrorInfo struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// BaseToolSchema creates a common JSON schema structure for a tool with the
// given properties and required fields.
func BaseToolSchema(properties map[string]interface{}, required []string) map[string]interface{} {
	schema := map[string]interface{}{
		"type":       "object",
		"properties": properties,
	}
	if len(required) > 0 {
		schema["required"] = required
	}
	return schema
}
