// Package client implements the agent-side connection state machine.
package client

import (
	"context"
	"io"
	"log/slog"
	"slices"
	"sync"

	"github.com/cmarchena/toolwire/internal/errors"
	"github.com/cmarchena/toolwire/internal/protocol"
)

// Server is the protocol surface a client connects to. Any in-process tool
// server satisfies it; tests substitute their own.
type Server interface {
	// Info returns the server's identity.
	Info() protocol.ServerInfo

	// ListTools returns the schemas of all tools the server offers.
	ListTools() []protocol.ToolSchema

	// ExecuteTool routes a call to its handler and reports the outcome
	// in-band as a ToolResult.
	ExecuteTool(ctx context.Context, call protocol.ToolCall) protocol.ToolResult
}

// Client owns at most one active server reference plus the tool list cached
// at connect time. Two states: disconnected and connected; transitions only
// via Connect and Disconnect.
type Client struct {
	log *slog.Logger

	mu     sync.Mutex
	server Server
	tools  []protocol.ToolSchema
}

// New creates a disconnected client. A nil logger disables logging.
func New(log *slog.Logger) *Client {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Client{log: log.With("component", "client")}
}

// Connect binds the client to server and caches its tool list. It fails
// with errors.ErrAlreadyConnected when a server is already bound; callers
// must Disconnect first. The previous connection is never silently dropped.
func (c *Client) Connect(server Server) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.server != nil {
		return errors.ErrAlreadyConnected
	}

	c.server = server
	c.tools = server.ListTools()

	info := server.Info()
	c.log.Debug("Connected", "server", info.Name, "version", info.Version, "tools", len(c.tools))

	return nil
}

// Disconnect clears the active server reference and the tool cache.
// A no-op when already disconnected.
func (c *Client) Disconnect() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.server == nil {
		return
	}

	c.log.Debug("Disconnected", "server", c.server.Info().Name)

	c.server = nil
	c.tools = nil
}

// Connected reports whether the client holds an active server.
func (c *Client) Connected() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.server != nil
}

// ServerInfo returns the active server's identity, or
// errors.ErrNotConnected when disconnected.
func (c *Client) ServerInfo() (protocol.ServerInfo, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.server == nil {
		return protocol.ServerInfo{}, errors.ErrNotConnected
	}

	return c.server.Info(), nil
}

// DiscoverTools returns the tool list cached at connect time. The server is
// not re-queried; this core has no catalog-change notification, so
// staleness across calls is accepted. Fails with errors.ErrNotConnected
// when disconnected.
func (c *Client) DiscoverTools() ([]protocol.ToolSchema, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.server == nil {
		return nil, errors.ErrNotConnected
	}

	// Copy so callers cannot mutate the cache.
	return slices.Clone(c.tools), nil
}

// CallTool synthesizes a correlated call with a fresh ID and forwards it to
// the active server. Tool-level success or failure is reported in-band via
// the ToolResult; the only Go error is errors.ErrNotConnected when
// disconnected. The client issues one call at a time per its sequential
// caller model, so results come back in issue order.
func (c *Client) CallTool(ctx context.Context, name string, args map[string]any) (protocol.ToolResult, error) {
	c.mu.Lock()
	server := c.server
	c.mu.Unlock()

	if server == nil {
		return protocol.ToolResult{}, errors.ErrNotConnected
	}

	call := protocol.ToolCall{
		ID:        protocol.NewCallID(),
		Name:      name,
		Arguments: args,
	}

	c.log.Debug("Calling tool", "call_id", call.ID, "tool", name)

	result := server.ExecuteTool(ctx, call)
	if !result.Success {
		c.log.Debug("Tool call failed", "call_id", call.ID, "tool", name, "error", result.Error)
	}

	return result, nil
}
