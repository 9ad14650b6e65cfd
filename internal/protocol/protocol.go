package protocol

import (
	"context"
	"fmt"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/oklog/ulid/v2"
)

// Handler executes one tool invocation. Arguments arrive untyped; handlers
// are responsible for decoding their expected shape and returning a
// descriptive error on mismatch. A returned error becomes an in-band failed
// ToolResult at the server boundary, never a transport fault.
type Handler func(ctx context.Context, args map[string]any) (any, error)

// Tool is a named, schema-described operation together with its handler.
// Tools are immutable once registered with a server.
type Tool struct {
	Name        string
	Description string
	InputSchema *jsonschema.Schema
	Handler     Handler
}

// Schema returns the discoverable view of the tool. The handler stays on
// the server side.
func (t *Tool) Schema() ToolSchema {
	return ToolSchema{
		Name:        t.Name,
		Description: t.Description,
		InputSchema: t.InputSchema,
	}
}

// ToolSchema is what discovery returns for one tool.
type ToolSchema struct {
	Name        string             `json:"name"`
	Description string             `json:"description"`
	InputSchema *jsonschema.Schema `json:"inputSchema,omitempty"`
}

// ServerInfo identifies a server. Immutable for the server's lifetime.
// The only capability tag in this core is "tools".
type ServerInfo struct {
	Name         string   `json:"name"`
	Version      string   `json:"version"`
	Capabilities []string `json:"capabilities"`
}

// ToolCall is a single invocation request.
type ToolCall struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Arguments map[string]any `json:"arguments"`
}

// ToolResult is the response to exactly one ToolCall. Build results with
// Success or Failure; constructing one by hand risks breaking the
// exactly-one-of Result/Error invariant.
type ToolResult struct {
	ID      string `json:"id"`
	Success bool   `json:"success"`
	Result  any    `json:"result,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Success builds a successful result carrying the handler's output.
// A nil payload is normalized to an empty object so that a result is
// present exactly when Success is true.
func Success(id string, payload any) ToolResult {
	if payload == nil {
		payload = map[string]any{}
	}

	return ToolResult{ID: id, Success: true, Result: payload}
}

// Failure builds a failed result carrying a human-readable message.
func Failure(id, message string) ToolResult {
	return ToolResult{ID: id, Success: false, Error: message}
}

// NotFound builds the failure returned for a call naming an unregistered
// tool. This is a normal outcome, not a fault.
func NotFound(id, name string) ToolResult {
	return Failure(id, fmt.Sprintf("Tool '%s' not found", name))
}

// NewCallID creates a unique call ID using ULID.
func NewCallID() string {
	return ulid.Make().String()
}
