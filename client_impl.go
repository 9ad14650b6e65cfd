package toolwire

import (
	"context"

	"github.com/cmarchena/toolwire/internal/client"
)

// clientWrapper wraps the internal client to adapt it to the public interface.
type clientWrapper struct {
	impl *client.Client
}

// Compile-time check that *clientWrapper implements the Client interface.
var _ Client = (*clientWrapper)(nil)

// newClientImpl creates the internal client implementation.
func newClientImpl(opts []Option) Client {
	options := applyOptions(opts)

	return &clientWrapper{impl: client.New(options.Logger)}
}

// Connect binds the client to server and caches its tool list.
func (c *clientWrapper) Connect(server ToolServer) error {
	return c.impl.Connect(server)
}

// Disconnect clears the active server reference and the cached tool list.
func (c *clientWrapper) Disconnect() {
	c.impl.Disconnect()
}

// Connected reports whether the client holds an active server.
func (c *clientWrapper) Connected() bool {
	return c.impl.Connected()
}

// ServerInfo returns the active server's identity.
func (c *clientWrapper) ServerInfo() (ServerInfo, error) {
	return c.impl.ServerInfo()
}

// DiscoverTools returns the tool list cached at connect time.
func (c *clientWrapper) DiscoverTools() ([]ToolSchema, error) {
	return c.impl.DiscoverTools()
}

// CallTool invokes a named tool with arguments.
func (c *clientWrapper) CallTool(ctx context.Context, name string, args map[string]any) (ToolResult, error) {
	return c.impl.CallTool(ctx, name, args)
}
