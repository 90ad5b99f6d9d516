// Package tool defines the Tool capability: a single named operation the host
// can describe, validate against a JSON schema, and execute.
package tool

import (
	"context"
	"encoding/json"
)

// Handler executes one tool.
type Handler interface {
	Name() string
	Description() string
	// Schema describes the accepted input as JSON Schema.
	Schema() json.RawMessage
	// Execute runs the tool. input is always a valid JSON value; an empty or
	// malformed request arrives as {}.
	Execute(ctx context.Context, input json.RawMessage) (string, error)
}

// ApprovalRequirer is implemented by tools that must be confirmed by a user
// before Execute runs. Tools that do not implement it never require approval.
type ApprovalRequirer interface {
	RequiresApproval() bool
}

var emptyObject = json.RawMessage(`{}`)

func normalizeInput(input []byte) json.RawMessage {
	if len(input) == 0 || !json.Valid(input) {
		return emptyObject
	}
	return json.RawMessage(input)
}

func normalizeSchema(schema json.RawMessage) []byte {
	if len(schema) == 0 || !json.Valid(schema) {
		return []byte(emptyObject)
	}
	return []byte(schema)
}
