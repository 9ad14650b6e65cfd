package toolwire

import (
	"log/slog"

	"github.com/cmarchena/toolwire/internal/server"
)

// Server exposes a fixed set of tools over the in-process protocol surface:
// Info, ListTools, and ExecuteTool. It owns no session state and is safe
// for concurrent ExecuteTool invocations; tool sets that mutate shared
// backing state serialize their own mutations.
type Server = server.Server

// Compile-time verification that *Server satisfies the client-facing surface.
var _ ToolServer = (*Server)(nil)

// ServerOption configures a Server during construction.
type ServerOption func(*serverOptions)

type serverOptions struct {
	logger *slog.Logger
}

// WithServerLogger sets the logger for server-side dispatch logging.
// If not set, logging is disabled (silent operation).
func WithServerLogger(logger *slog.Logger) ServerOption {
	return func(o *serverOptions) {
		o.logger = logger
	}
}

// NewServer creates a server with the given tools registered.
//
// The tool set is fixed at construction: registering two tools with the
// same name fails with *DuplicateToolError and no server is created.
//
// Example:
//
//	server, err := toolwire.NewServer("crm", "1.0.0", store.Tools(),
//	    toolwire.WithServerLogger(slog.Default()),
//	)
func NewServer(name, version string, tools []*Tool, opts ...ServerOption) (*Server, error) {
	options := &serverOptions{}
	for _, opt := range opts {
		opt(options)
	}

	return server.New(name, version, options.logger, tools...)
}
