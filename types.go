package toolwire

import (
	"github.com/google/jsonschema-go/jsonschema"

	"github.com/cmarchena/toolwire/internal/client"
	"github.com/cmarchena/toolwire/internal/protocol"
)

// Re-export protocol types for the public API.
type (
	// Tool is a named, schema-described operation together with its handler.
	Tool = protocol.Tool

	// ToolSchema is what discovery returns for one tool; it never carries
	// the handler.
	ToolSchema = protocol.ToolSchema

	// ToolCall is a single invocation request. The client generates one per
	// call; IDs correlate results with calls.
	ToolCall = protocol.ToolCall

	// ToolResult is the response to exactly one ToolCall. Exactly one of
	// Result/Error is populated and Success reports which.
	ToolResult = protocol.ToolResult

	// ServerInfo identifies a server: name, version, and capability tags.
	ServerInfo = protocol.ServerInfo

	// Handler executes one tool invocation. Arguments arrive untyped;
	// handlers decode their expected shape and return a descriptive error
	// on mismatch.
	Handler = protocol.Handler

	// Schema is a JSON Schema object describing a tool's accepted
	// arguments.
	Schema = jsonschema.Schema

	// ToolServer is the protocol surface a Client connects to. *Server
	// satisfies it; external collaborators supply their own.
	ToolServer = client.Server
)
