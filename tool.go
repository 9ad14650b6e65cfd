package toolwire

import (
	"encoding/json"

	"github.com/google/jsonschema-go/jsonschema"
)

// NewTool creates a Tool from its name, description, input schema, and
// handler.
//
// The inputSchema should be a *toolwire.Schema. Use SimpleSchema for
// all-required primitive parameters or ObjectSchema when parameters need
// descriptions, defaults, or optionality.
//
// Example:
//
//	echo := toolwire.NewTool("echo", "Echo a value",
//	    toolwire.SimpleSchema(map[string]string{"value": "string"}),
//	    func(ctx context.Context, args map[string]any) (any, error) {
//	        return map[string]any{"value": args["value"]}, nil
//	    },
//	)
func NewTool(name, description string, inputSchema *Schema, handler Handler) *Tool {
	return &Tool{
		Name:        name,
		Description: description,
		InputSchema: inputSchema,
		Handler:     handler,
	}
}

// SimpleSchema creates a Schema from a simple type map. Every property is
// required.
//
// Input format: {"a": "float64", "b": "string"}
//
// Type mappings:
//   - "string"           → {"type": "string"}
//   - "int", "int64"     → {"type": "integer"}
//   - "float64", "float" → {"type": "number"}
//   - "bool"             → {"type": "boolean"}
//   - "[]string"         → {"type": "array", "items": {"type": "string"}}
//   - "any", "object"    → {"type": "object"}
func SimpleSchema(props map[string]string) *Schema {
	properties := make(map[string]*jsonschema.Schema, len(props))
	required := make([]string, 0, len(props))

	for name, goType := range props {
		properties[name] = goTypeToJSONSchema(goType)
		required = append(required, name)
	}

	return &jsonschema.Schema{
		Type:       "object",
		Properties: properties,
		Required:   required,
	}
}

// Prop describes one parameter for ObjectSchema.
type Prop struct {
	// Type is a Go type string, mapped the same way SimpleSchema maps it.
	Type string

	// Description documents the parameter.
	Description string

	// Default, when non-nil, is recorded in the schema. Defaults are
	// advisory: applying them is the handler's job, the protocol does not
	// fill in missing arguments.
	Default any
}

// ObjectSchema creates a Schema from described parameters plus the subset
// that is required. Use it instead of SimpleSchema when parameters are
// optional or carry defaults.
//
// Example:
//
//	schema := toolwire.ObjectSchema(map[string]toolwire.Prop{
//	    "query": {Type: "string", Description: "Search query"},
//	    "top_k": {Type: "int", Description: "Number of results", Default: 3},
//	}, "query")
func ObjectSchema(props map[string]Prop, required ...string) *Schema {
	properties := make(map[string]*jsonschema.Schema, len(props))

	for name, prop := range props {
		s := goTypeToJSONSchema(prop.Type)
		s.Description = prop.Description

		if prop.Default != nil {
			if raw, err := json.Marshal(prop.Default); err == nil {
				s.Default = raw
			}
		}

		properties[name] = s
	}

	return &jsonschema.Schema{
		Type:       "object",
		Properties: properties,
		Required:   required,
	}
}

// goTypeToJSONSchema converts a Go type string to a JSON Schema type.
func goTypeToJSONSchema(goType string) *jsonschema.Schema {
	switch goType {
	case "string":
		return &jsonschema.Schema{Type: "string"}
	case "int", "int8", "int16", "int32", "int64", "uint", "uint8", "uint16", "uint32", "uint64":
		return &jsonschema.Schema{Type: "integer"}
	case "float32", "float64", "float", "number":
		return &jsonschema.Schema{Type: "number"}
	case "bool", "boolean":
		return &jsonschema.Schema{Type: "boolean"}
	case "any", "object", "map[string]any":
		return &jsonschema.Schema{Type: "object"}
	default:
		// Check for array types
		if len(goType) > 2 && goType[:2] == "[]" {
			itemType := goType[2:]

			return &jsonschema.Schema{
				Type:  "array",
				Items: goTypeToJSONSchema(itemType),
			}
		}

		// Default to string
		return &jsonschema.Schema{Type: "string"}
	}
}
