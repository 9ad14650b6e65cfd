package toolwire

import "github.com/cmarchena/toolwire/internal/errors"

// Re-export error types from internal package

// DuplicateToolError indicates two tools with the same name were registered
// with one server; it is fatal and prevents server creation.
type DuplicateToolError = errors.DuplicateToolError

// ArgumentError indicates a tool handler rejected its arguments.
type ArgumentError = errors.ArgumentError

// ToolwireError is the base interface for all SDK errors.
type ToolwireError = errors.ToolwireError

// Re-export sentinel errors from internal package.
var (
	// ErrNotConnected indicates a discovery or call was attempted while the
	// client has no active server.
	ErrNotConnected = errors.ErrNotConnected

	// ErrAlreadyConnected indicates Connect was called on a client that
	// already holds an active server.
	ErrAlreadyConnected = errors.ErrAlreadyConnected
)
