// Package registry holds the authoritative set of tools a server offers.
package registry

import (
	"github.com/cmarchena/toolwire/internal/errors"
	"github.com/cmarchena/toolwire/internal/protocol"
)

// Registry maps tool names to their schemas and handlers. It is populated
// at server construction and never mutated afterwards, so reads need no
// locking. Registration order is preserved to keep discovery output
// deterministic.
type Registry struct {
	order []string
	tools map[string]*protocol.Tool
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		tools: make(map[string]*protocol.Tool, 8),
	}
}

// Register adds a tool. It fails with *errors.DuplicateToolError when the
// name is already present.
func (r *Registry) Register(tool *protocol.Tool) error {
	if _, exists := r.tools[tool.Name]; exists {
		return &errors.DuplicateToolError{Name: tool.Name}
	}

	r.tools[tool.Name] = tool
	r.order = append(r.order, tool.Name)

	return nil
}

// List returns the schemas of all registered tools in registration order.
func (r *Registry) List() []protocol.ToolSchema {
	schemas := make([]protocol.ToolSchema, 0, len(r.order))
	for _, name := range r.order {
		schemas = append(schemas, r.tools[name].Schema())
	}

	return schemas
}

// Lookup returns the tool registered under name, or false when absent.
func (r *Registry) Lookup(name string) (*protocol.Tool, bool) {
	tool, ok := r.tools[name]

	return tool, ok
}

// Len returns the number of registered tools.
func (r *Registry) Len() int {
	return len(r.order)
}
