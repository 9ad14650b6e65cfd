package toolwire

import "context"

// Client owns the single active connection to a tool server.
//
// A client is a two-state machine: disconnected or connected to exactly one
// server. Connect caches the server's tool list; Disconnect clears it. The
// client issues at most one outstanding call at a time, so results come
// back in the order calls are issued.
//
// Example usage:
//
//	client := toolwire.NewClient(toolwire.WithLogger(slog.Default()))
//
//	if err := client.Connect(server); err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Disconnect()
//
//	tools, err := client.DiscoverTools()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := client.CallTool(ctx, tools[0].Name, map[string]any{"value": 7})
//	if err != nil {
//	    log.Fatal(err)
//	}
type Client interface {
	// Connect binds the client to server and caches its tool list.
	// Returns ErrAlreadyConnected when a server is already bound; call
	// Disconnect first. The previous connection is never silently dropped.
	Connect(server ToolServer) error

	// Disconnect clears the active server reference and the cached tool
	// list. A no-op (not an error) when already disconnected.
	Disconnect()

	// Connected reports whether the client holds an active server.
	Connected() bool

	// ServerInfo returns the active server's identity.
	// Returns ErrNotConnected when disconnected.
	ServerInfo() (ServerInfo, error)

	// DiscoverTools returns the tool list cached at connect time; the
	// server is not re-queried. Returns ErrNotConnected when disconnected.
	DiscoverTools() ([]ToolSchema, error)

	// CallTool invokes a named tool with arguments. Tool-level success or
	// failure is reported in-band via the ToolResult; the only raised
	// error is ErrNotConnected when disconnected.
	CallTool(ctx context.Context, name string, args map[string]any) (ToolResult, error)
}

// NewClient creates a disconnected client.
//
//	client := toolwire.NewClient(toolwire.WithLogger(slog.Default()))
func NewClient(opts ...Option) Client {
	return newClientImpl(opts)
}
