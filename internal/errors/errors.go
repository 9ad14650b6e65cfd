package errors

import (
	"errors"
	"fmt"
)

// ToolwireError is the base interface for all SDK errors.
type ToolwireError interface {
	error
	IsToolwireError() bool
}

// Compile-time verification that all error types implement ToolwireError.
var (
	_ ToolwireError = (*DuplicateToolError)(nil)
	_ ToolwireError = (*ArgumentError)(nil)
)

// Sentinel errors for commonly checked conditions.
var (
	// ErrNotConnected indicates a discovery or call was attempted while the
	// client has no active server.
	ErrNotConnected = errors.New("client not connected")

	// ErrAlreadyConnected indicates Connect was called on a client that
	// already holds an active server. Disconnect first.
	ErrAlreadyConnected = errors.New("client already connected")
)

// DuplicateToolError indicates two tools with the same name were registered
// with one server. Registration happens at construction time only, so this
// error is fatal and prevents server creation.
type DuplicateToolError struct {
	Name string
}

func (e *DuplicateToolError) Error() string {
	return fmt.Sprintf("tool %q already registered", e.Name)
}

// IsToolwireError implements ToolwireError.
func (e *DuplicateToolError) IsToolwireError() bool { return true }

// ArgumentError indicates a tool handler rejected its arguments.
// Tool sets return it from handlers when decoding fails or a required
// parameter is missing; the server boundary converts it into a failed
// tool result like any other handler fault.
type ArgumentError struct {
	Tool string
	Err  error
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("invalid arguments for tool %q: %v", e.Tool, e.Err)
}

func (e *ArgumentError) Unwrap() error {
	return e.Err
}

// IsToolwireError implements ToolwireError.
func (e *ArgumentError) IsToolwireError() bool { return true }
