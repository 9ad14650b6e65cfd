// Package server exposes a tool registry over the in-process protocol
// surface: discovery plus execution.
package server

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/cmarchena/toolwire/internal/protocol"
	"github.com/cmarchena/toolwire/internal/registry"
)

// capabilityTools is the single capability tag this core declares.
const capabilityTools = "tools"

// Server wraps a registry and owns no session state. It is safe for
// concurrent ExecuteTool invocations; handlers that mutate shared backing
// state must serialize their own mutations.
type Server struct {
	info     protocol.ServerInfo
	registry *registry.Registry
	log      *slog.Logger
}

// New creates a server with the given tools registered. It fails with
// *errors.DuplicateToolError when two tools share a name; construction
// errors are fatal, the server is not partially created.
func New(name, version string, log *slog.Logger, tools ...*protocol.Tool) (*Server, error) {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	reg := registry.New()
	for _, tool := range tools {
		if err := reg.Register(tool); err != nil {
			return nil, err
		}
	}

	s := &Server{
		info: protocol.ServerInfo{
			Name:         name,
			Version:      version,
			Capabilities: []string{capabilityTools},
		},
		registry: reg,
		log:      log.With("component", "server", "server", name),
	}

	s.log.Debug("Server created", "tools", reg.Len())

	return s, nil
}

// Info returns the server's identity. Pure, no failure mode.
func (s *Server) Info() protocol.ServerInfo {
	return s.info
}

// ListTools returns the schemas of all registered tools in registration
// order. Handlers never cross the protocol boundary. Always succeeds.
func (s *Server) ListTools() []protocol.ToolSchema {
	return s.registry.List()
}

// ExecuteTool routes a call to its registered handler and normalizes every
// outcome into a ToolResult. An unregistered name is a normal failed
// result, not a fault. This is the sole fault-containment point in the
// system: a handler error or panic becomes a failed result and never
// propagates, so a misbehaving tool cannot crash the server or poison
// subsequent calls.
func (s *Server) ExecuteTool(ctx context.Context, call protocol.ToolCall) (result protocol.ToolResult) {
	log := s.log.With("call_id", call.ID, "tool", call.Name)

	tool, ok := s.registry.Lookup(call.Name)
	if !ok {
		log.Debug("Tool not found")

		return protocol.NotFound(call.ID, call.Name)
	}

	defer func() {
		if r := recover(); r != nil {
			log.Warn("Handler panicked", "panic", r)

			result = protocol.Failure(call.ID, fmt.Sprint(r))
		}
	}()

	log.Debug("Executing tool")

	payload, err := tool.Handler(ctx, call.Arguments)
	if err != nil {
		log.Warn("Handler failed", "error", err)

		return protocol.Failure(call.ID, err.Error())
	}

	return protocol.Success(call.ID, payload)
}
