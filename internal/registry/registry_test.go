package registry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	sdkerrors "github.com/cmarchena/toolwire/internal/errors"
	"github.com/cmarchena/toolwire/internal/protocol"
)

func newTool(name string) *protocol.Tool {
	return &protocol.Tool{
		Name:        name,
		Description: "test tool " + name,
		Handler: func(_ context.Context, _ map[string]any) (any, error) {
			return nil, nil
		},
	}
}

func TestRegisterAndLookup(t *testing.T) {
	reg := New()
	tool := newTool("echo")

	require.NoError(t, reg.Register(tool))

	got, ok := reg.Lookup("echo")
	require.True(t, ok)
	require.Same(t, tool, got)

	_, ok = reg.Lookup("missing")
	require.False(t, ok)
}

func TestRegisterDuplicateFails(t *testing.T) {
	reg := New()
	require.NoError(t, reg.Register(newTool("echo")))

	err := reg.Register(newTool("echo"))
	require.Error(t, err)

	var dup *sdkerrors.DuplicateToolError
	require.ErrorAs(t, err, &dup)
	require.Equal(t, "echo", dup.Name)

	// The original registration is untouched.
	require.Equal(t, 1, reg.Len())
}

func TestListPreservesRegistrationOrder(t *testing.T) {
	reg := New()
	names := []string{"b-tool", "a-tool", "c-tool", "e-tool", "d-tool"}
	for _, name := range names {
		require.NoError(t, reg.Register(newTool(name)))
	}

	schemas := reg.List()
	require.Len(t, schemas, len(names))

	for i, schema := range schemas {
		require.Equal(t, names[i], schema.Name)
	}
}
