package toolwire

import (
	"context"
	"fmt"
)

// Call performs a one-shot tool invocation: it creates a client, connects
// to server, calls the named tool, and disconnects.
//
// Use a long-lived Client instead when issuing several calls against the
// same server; Call re-discovers the tool list on every invocation.
//
// Example:
//
//	result, err := toolwire.Call(ctx, server, "echo", map[string]any{"value": 7})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if !result.Success {
//	    log.Printf("tool failed: %s", result.Error)
//	}
func Call(ctx context.Context, server ToolServer, name string, args map[string]any, opts ...Option) (ToolResult, error) {
	if err := ctx.Err(); err != nil {
		return ToolResult{}, err
	}

	client := NewClient(opts...)
	if err := client.Connect(server); err != nil {
		return ToolResult{}, fmt.Errorf("failed to connect: %w", err)
	}
	defer client.Disconnect()

	return client.CallTool(ctx, name, args)
}
