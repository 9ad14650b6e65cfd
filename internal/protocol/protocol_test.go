package protocol

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSuccessAndFailureAreExclusive(t *testing.T) {
	ok := Success("call-1", map[string]any{"value": 7})
	require.True(t, ok.Success)
	require.Equal(t, "call-1", ok.ID)
	require.NotNil(t, ok.Result)
	require.Empty(t, ok.Error)

	failed := Failure("call-2", "boom")
	require.False(t, failed.Success)
	require.Equal(t, "call-2", failed.ID)
	require.Nil(t, failed.Result)
	require.Equal(t, "boom", failed.Error)
}

func TestSuccessNormalizesNilPayload(t *testing.T) {
	got := Success("call-3", nil)

	require.True(t, got.Success)
	require.Equal(t, map[string]any{}, got.Result)
}

func TestNotFoundMessage(t *testing.T) {
	got := NotFound("call-4", "missing_tool")

	require.False(t, got.Success)
	require.Equal(t, "Tool 'missing_tool' not found", got.Error)
	require.Nil(t, got.Result)
}

func TestNewCallIDIsUnique(t *testing.T) {
	seen := make(map[string]bool, 100)
	for range 100 {
		id := NewCallID()
		require.Len(t, id, 26, "ULIDs are 26 characters")
		require.False(t, seen[id], "duplicate call id %s", id)
		seen[id] = true
	}
}

func TestToolSchemaOmitsHandler(t *testing.T) {
	tool := &Tool{
		Name:        "echo",
		Description: "echoes its arguments",
		Handler: func(_ context.Context, args map[string]any) (any, error) {
			return args, nil
		},
	}

	schema := tool.Schema()
	require.Equal(t, "echo", schema.Name)
	require.Equal(t, "echoes its arguments", schema.Description)
	require.Nil(t, schema.InputSchema)
}
