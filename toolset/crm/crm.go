// Package crm is a demonstration tool set backed by an in-memory customer
// registry.
//
// The registry is owned by the Store instance, never by package-level
// state, so multiple servers built from different stores do not interfere.
// A read-write mutex serializes mutations because the protocol allows
// concurrent ExecuteTool invocations against one server.
package crm

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/cmarchena/toolwire"
	"github.com/cmarchena/toolwire/toolset/internal/args"
)

// Customer is one registry record.
type Customer struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Region  string  `json:"region"`
	Revenue float64 `json:"revenue"`
}

// Store owns the customer records behind the crm tools.
type Store struct {
	mu        sync.RWMutex
	customers []Customer
}

// NewStore creates a store holding the given customers. With no arguments
// the store starts from SampleCustomers.
func NewStore(customers ...Customer) *Store {
	if customers == nil {
		customers = SampleCustomers()
	}

	return &Store{customers: customers}
}

// SampleCustomers returns the seed data used by the examples.
func SampleCustomers() []Customer {
	return []Customer{
		{ID: uuid.NewString(), Name: "Acme Corp", Email: "ops@acme.example", Region: "emea", Revenue: 125000},
		{ID: uuid.NewString(), Name: "Globex", Email: "billing@globex.example", Region: "amer", Revenue: 98000},
		{ID: uuid.NewString(), Name: "Initech", Email: "accounts@initech.example", Region: "amer", Revenue: 45500},
		{ID: uuid.NewString(), Name: "Umbrella Health", Email: "finance@umbrella.example", Region: "apac", Revenue: 230000},
	}
}

// Tools returns the tool set bound to this store: search_customers,
// add_customer, and total_revenue.
func (s *Store) Tools() []*toolwire.Tool {
	return []*toolwire.Tool{
		toolwire.NewTool(
			"search_customers",
			"Search customers by a substring of their name or email",
			toolwire.SimpleSchema(map[string]string{"query": "string"}),
			s.searchCustomers,
		),
		toolwire.NewTool(
			"add_customer",
			"Add a customer to the registry",
			toolwire.ObjectSchema(map[string]toolwire.Prop{
				"name":    {Type: "string", Description: "Customer display name"},
				"email":   {Type: "string", Description: "Billing contact address"},
				"region":  {Type: "string", Description: "Sales region code"},
				"revenue": {Type: "float64", Description: "Annual revenue in USD", Default: 0},
			}, "name", "email"),
			s.addCustomer,
		),
		toolwire.NewTool(
			"total_revenue",
			"Sum customer revenue, optionally restricted to one region",
			toolwire.ObjectSchema(map[string]toolwire.Prop{
				"region": {Type: "string", Description: "Restrict the sum to this region"},
			}),
			s.totalRevenue,
		),
	}
}

func (s *Store) searchCustomers(_ context.Context, raw map[string]any) (any, error) {
	var in struct {
		Query string
	}

	if err := args.Decode("search_customers", raw, &in); err != nil {
		return nil, err
	}

	if in.Query == "" {
		return nil, args.Missing("search_customers", "query")
	}

	query := strings.ToLower(in.Query)

	s.mu.RLock()
	defer s.mu.RUnlock()

	matches := make([]Customer, 0, len(s.customers))
	for _, c := range s.customers {
		if strings.Contains(strings.ToLower(c.Name), query) ||
			strings.Contains(strings.ToLower(c.Email), query) {
			matches = append(matches, c)
		}
	}

	return map[string]any{
		"customers": matches,
		"count":     len(matches),
	}, nil
}

func (s *Store) addCustomer(_ context.Context, raw map[string]any) (any, error) {
	var in struct {
		Name    string
		Email   string
		Region  string
		Revenue float64
	}

	if err := args.Decode("add_customer", raw, &in); err != nil {
		return nil, err
	}

	if in.Name == "" {
		return nil, args.Missing("add_customer", "name")
	}

	if in.Email == "" {
		return nil, args.Missing("add_customer", "email")
	}

	customer := Customer{
		ID:      uuid.NewString(),
		Name:    in.Name,
		Email:   in.Email,
		Region:  strings.ToLower(in.Region),
		Revenue: in.Revenue,
	}

	s.mu.Lock()
	s.customers = append(s.customers, customer)
	s.mu.Unlock()

	return map[string]any{
		"id":      customer.ID,
		"name":    customer.Name,
		"email":   customer.Email,
		"region":  customer.Region,
		"revenue": customer.Revenue,
	}, nil
}

func (s *Store) totalRevenue(_ context.Context, raw map[string]any) (any, error) {
	var in struct {
		Region string
	}

	if err := args.Decode("total_revenue", raw, &in); err != nil {
		return nil, err
	}

	region := strings.ToLower(in.Region)

	s.mu.RLock()
	defer s.mu.RUnlock()

	var total float64

	count := 0

	for _, c := range s.customers {
		if region != "" && c.Region != region {
			continue
		}

		total += c.Revenue
		count++
	}

	return map[string]any{
		"total": total,
		"count": count,
	}, nil
}

// Len returns the number of customers in the store.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.customers)
}
