package toolwire

import (
	"context"
	"fmt"
)

// WithConnection manages connection lifecycle with automatic cleanup.
//
// This helper creates a client, connects it to server, executes the
// callback function, and always disconnects when done.
//
// The callback receives a connected Client that is ready for use.
// If the callback returns an error, it is returned to the caller.
//
// Example usage:
//
//	err := toolwire.WithConnection(ctx, server, func(c toolwire.Client) error {
//	    result, err := c.CallTool(ctx, "echo", map[string]any{"value": 7})
//	    if err != nil {
//	        return err
//	    }
//	    if !result.Success {
//	        return fmt.Errorf("echo failed: %s", result.Error)
//	    }
//	    return nil
//	},
//	    toolwire.WithLogger(log),
//	)
func WithConnection(ctx context.Context, server ToolServer, fn func(Client) error, opts ...Option) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	client := NewClient(opts...)
	if err := client.Connect(server); err != nil {
		return fmt.Errorf("failed to connect: %w", err)
	}
	defer client.Disconnect()

	return fn(client)
}
