package crm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cmarchena/toolwire"
)

func newServer(t *testing.T, store *Store) *toolwire.Server {
	t.Helper()

	srv, err := toolwire.NewServer("crm", "1.0.0", store.Tools())
	require.NoError(t, err)

	return srv
}

func callPayload(t *testing.T, srv *toolwire.Server, tool string, args map[string]any) map[string]any {
	t.Helper()

	result, err := toolwire.Call(context.Background(), srv, tool, args)
	require.NoError(t, err)
	require.True(t, result.Success, "tool %q failed: %s", tool, result.Error)

	payload, ok := result.Result.(map[string]any)
	require.True(t, ok)

	return payload
}

func TestSearchCustomersMatchesNameAndEmail(t *testing.T) {
	srv := newServer(t, NewStore())

	byName := callPayload(t, srv, "search_customers", map[string]any{"query": "globex"})
	require.Equal(t, 1, byName["count"])

	byEmail := callPayload(t, srv, "search_customers", map[string]any{"query": "ops@acme"})
	require.Equal(t, 1, byEmail["count"])

	none := callPayload(t, srv, "search_customers", map[string]any{"query": "no such customer"})
	require.Equal(t, 0, none["count"])
}

func TestSearchCustomersRequiresQuery(t *testing.T) {
	srv := newServer(t, NewStore())

	result, err := toolwire.Call(context.Background(), srv, "search_customers", map[string]any{})
	require.NoError(t, err)
	require.False(t, result.Success)
	require.Contains(t, result.Error, `missing required parameter "query"`)
}

func TestAddCustomer(t *testing.T) {
	store := NewStore()
	srv := newServer(t, store)

	added := callPayload(t, srv, "add_customer", map[string]any{
		"name":    "Stark Industries",
		"email":   "pepper@stark.example",
		"region":  "AMER",
		"revenue": float64(500000),
	})

	require.NotEmpty(t, added["id"])
	require.Equal(t, "pepper@stark.example", added["email"])
	require.Equal(t, "amer", added["region"], "regions are normalized to lower case")
	require.Equal(t, len(SampleCustomers())+1, store.Len())

	found := callPayload(t, srv, "search_customers", map[string]any{"query": "stark"})
	require.Equal(t, 1, found["count"])
}

func TestAddCustomerRequiresNameAndEmail(t *testing.T) {
	srv := newServer(t, NewStore())

	tests := []struct {
		name    string
		args    map[string]any
		wantErr string
	}{
		{
			name:    "missing name",
			args:    map[string]any{"email": "x@example.com"},
			wantErr: `missing required parameter "name"`,
		},
		{
			name:    "missing email",
			args:    map[string]any{"name": "Nameless"},
			wantErr: `missing required parameter "email"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := toolwire.Call(context.Background(), srv, "add_customer", tt.args)
			require.NoError(t, err)
			require.False(t, result.Success)
			require.Contains(t, result.Error, tt.wantErr)
		})
	}
}

func TestTotalRevenue(t *testing.T) {
	store := NewStore(
		Customer{ID: "1", Name: "A", Email: "a@example.com", Region: "emea", Revenue: 100},
		Customer{ID: "2", Name: "B", Email: "b@example.com", Region: "amer", Revenue: 200},
		Customer{ID: "3", Name: "C", Email: "c@example.com", Region: "amer", Revenue: 50},
	)
	srv := newServer(t, store)

	all := callPayload(t, srv, "total_revenue", map[string]any{})
	require.Equal(t, float64(350), all["total"])
	require.Equal(t, 3, all["count"])

	amer := callPayload(t, srv, "total_revenue", map[string]any{"region": "AMER"})
	require.Equal(t, float64(250), amer["total"])
	require.Equal(t, 2, amer["count"])
}

func TestStoresDoNotShareState(t *testing.T) {
	first := newServer(t, NewStore())
	second := newServer(t, NewStore())

	callPayload(t, first, "add_customer", map[string]any{
		"name":  "Only Here",
		"email": "only@example.com",
	})

	found := callPayload(t, second, "search_customers", map[string]any{"query": "only here"})
	require.Equal(t, 0, found["count"])
}
