package toolwire_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cmarchena/toolwire"
)

func echoServer(t *testing.T) *toolwire.Server {
	t.Helper()

	echo := toolwire.NewTool("echo", "Echo a value",
		toolwire.SimpleSchema(map[string]string{"value": "string"}),
		func(_ context.Context, args map[string]any) (any, error) {
			return map[string]any{"value": args["value"]}, nil
		},
	)

	srv, err := toolwire.NewServer("demo", "1.0.0", []*toolwire.Tool{echo})
	require.NoError(t, err)

	return srv
}

func TestCall(t *testing.T) {
	srv := echoServer(t)

	result, err := toolwire.Call(context.Background(), srv, "echo", map[string]any{"value": 7})
	require.NoError(t, err)
	require.True(t, result.Success)
	require.Equal(t, map[string]any{"value": 7}, result.Result)
}

func TestCallUnknownToolIsInBand(t *testing.T) {
	srv := echoServer(t)

	result, err := toolwire.Call(context.Background(), srv, "missing_tool", map[string]any{})
	require.NoError(t, err)
	require.False(t, result.Success)
	require.Equal(t, "Tool 'missing_tool' not found", result.Error)
}

func TestCallCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := toolwire.Call(ctx, echoServer(t), "echo", nil)
	require.ErrorIs(t, err, context.Canceled)
}
