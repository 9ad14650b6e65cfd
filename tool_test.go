package toolwire

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewTool(t *testing.T) {
	schema := SimpleSchema(map[string]string{"value": "string"})
	handler := func(_ context.Context, args map[string]any) (any, error) {
		return args, nil
	}

	tool := NewTool("echo", "echoes its arguments", schema, handler)

	require.Equal(t, "echo", tool.Name)
	require.Equal(t, "echoes its arguments", tool.Description)
	require.Equal(t, schema, tool.InputSchema)
	require.NotNil(t, tool.Handler)
}

func TestSimpleSchema(t *testing.T) {
	schema := SimpleSchema(map[string]string{
		"name":   "string",
		"active": "bool",
		"scores": "[]float64",
	})

	require.Equal(t, "object", schema.Type)
	require.ElementsMatch(t, []string{"name", "active", "scores"}, schema.Required)
	require.Equal(t, "string", schema.Properties["name"].Type)
	require.Equal(t, "boolean", schema.Properties["active"].Type)
	require.Equal(t, "array", schema.Properties["scores"].Type)
	require.Equal(t, "number", schema.Properties["scores"].Items.Type)
}

func TestObjectSchema(t *testing.T) {
	schema := ObjectSchema(map[string]Prop{
		"query": {Type: "string", Description: "Search query"},
		"top_k": {Type: "int", Description: "Number of results", Default: 3},
	}, "query")

	require.Equal(t, "object", schema.Type)
	require.Equal(t, []string{"query"}, schema.Required)
	require.Equal(t, "Search query", schema.Properties["query"].Description)
	require.Equal(t, "integer", schema.Properties["top_k"].Type)
	require.Equal(t, json.RawMessage("3"), schema.Properties["top_k"].Default)
	require.Nil(t, schema.Properties["query"].Default)
}

func TestGoTypeToJSONSchema(t *testing.T) {
	tests := []struct {
		name      string
		goType    string
		wantType  string
		wantItems *string
	}{
		{
			name:     "string",
			goType:   "string",
			wantType: "string",
		},
		{
			name:     "integer",
			goType:   "int64",
			wantType: "integer",
		},
		{
			name:     "number",
			goType:   "float32",
			wantType: "number",
		},
		{
			name:     "boolean",
			goType:   "boolean",
			wantType: "boolean",
		},
		{
			name:     "object",
			goType:   "map[string]any",
			wantType: "object",
		},
		{
			name:      "array",
			goType:    "[]int",
			wantType:  "array",
			wantItems: strPtr("integer"),
		},
		{
			name:     "fallback",
			goType:   "customType",
			wantType: "string",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := goTypeToJSONSchema(tt.goType)

			require.Equal(t, tt.wantType, got.Type)

			if tt.wantItems != nil {
				require.NotNil(t, got.Items)
				require.Equal(t, *tt.wantItems, got.Items.Type)
			}
		})
	}
}

func strPtr(s string) *string {
	return &s
}
