// Package docs is a demonstration tool set backed by an in-memory document
// index with naive term-frequency scoring.
//
// Retrieval quality is not the point; the set exists to drive the protocol
// with a read-only backend. The index is immutable after BuildIndex, so its
// handlers need no locking.
package docs

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/cmarchena/toolwire"
	"github.com/cmarchena/toolwire/toolset/internal/args"
)

// defaultTopK limits search output when the caller does not set top_k.
const defaultTopK = 3

// Document is one indexed text.
type Document struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Body  string `json:"body"`
}

// SearchHit is one ranked search result.
type SearchHit struct {
	ID    string  `json:"id"`
	Title string  `json:"title"`
	Score float64 `json:"score"`
}

// Index holds documents and their term-frequency vectors.
type Index struct {
	docs    []Document
	byID    map[string]int
	vectors []map[string]float64
}

// BuildIndex computes a vector per document, one goroutine each. It fails
// on duplicate document IDs or a cancelled context.
func BuildIndex(ctx context.Context, documents []Document) (*Index, error) {
	byID := make(map[string]int, len(documents))
	for i, doc := range documents {
		if _, exists := byID[doc.ID]; exists {
			return nil, fmt.Errorf("duplicate document id %q", doc.ID)
		}

		byID[doc.ID] = i
	}

	vectors := make([]map[string]float64, len(documents))

	g, ctx := errgroup.WithContext(ctx)
	for i, doc := range documents {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			vectors[i] = termFrequencies(doc.Title + " " + doc.Body)

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &Index{docs: documents, byID: byID, vectors: vectors}, nil
}

// SampleDocuments returns the seed corpus used by the examples.
func SampleDocuments() []Document {
	return []Document{
		{ID: "onboarding", Title: "Customer onboarding guide", Body: "How to register a new customer account and send the welcome email."},
		{ID: "billing", Title: "Billing and revenue reporting", Body: "Monthly revenue aggregation per region and invoice delivery by email."},
		{ID: "support", Title: "Support playbook", Body: "Searching customer records and escalating account issues."},
		{ID: "retention", Title: "Retention campaigns", Body: "Email campaigns targeted at customers by region and revenue band."},
	}
}

// Tools returns the tool set bound to this index: search_documents and
// get_document.
func (idx *Index) Tools() []*toolwire.Tool {
	return []*toolwire.Tool{
		toolwire.NewTool(
			"search_documents",
			"Rank indexed documents against a query",
			toolwire.ObjectSchema(map[string]toolwire.Prop{
				"query": {Type: "string", Description: "Search query"},
				"top_k": {Type: "int", Description: "Number of results to return", Default: defaultTopK},
			}, "query"),
			idx.searchDocuments,
		),
		toolwire.NewTool(
			"get_document",
			"Fetch one document by its id",
			toolwire.SimpleSchema(map[string]string{"id": "string"}),
			idx.getDocument,
		),
	}
}

func (idx *Index) searchDocuments(_ context.Context, raw map[string]any) (any, error) {
	var in struct {
		Query string
		TopK  int `mapstructure:"top_k"`
	}

	if err := args.Decode("search_documents", raw, &in); err != nil {
		return nil, err
	}

	if in.Query == "" {
		return nil, args.Missing("search_documents", "query")
	}

	if in.TopK <= 0 {
		in.TopK = defaultTopK
	}

	query := termFrequencies(in.Query)

	hits := make([]SearchHit, 0, len(idx.docs))
	for i, doc := range idx.docs {
		score := cosine(query, idx.vectors[i])
		if score > 0 {
			hits = append(hits, SearchHit{ID: doc.ID, Title: doc.Title, Score: score})
		}
	}

	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].Score > hits[j].Score
	})

	if len(hits) > in.TopK {
		hits = hits[:in.TopK]
	}

	return map[string]any{
		"results": hits,
		"count":   len(hits),
	}, nil
}

func (idx *Index) getDocument(_ context.Context, raw map[string]any) (any, error) {
	var in struct {
		ID string
	}

	if err := args.Decode("get_document", raw, &in); err != nil {
		return nil, err
	}

	if in.ID == "" {
		return nil, args.Missing("get_document", "id")
	}

	i, ok := idx.byID[in.ID]
	if !ok {
		return nil, fmt.Errorf("document %q not found", in.ID)
	}

	doc := idx.docs[i]

	return map[string]any{
		"id":    doc.ID,
		"title": doc.Title,
		"body":  doc.Body,
	}, nil
}

// Len returns the number of indexed documents.
func (idx *Index) Len() int {
	return len(idx.docs)
}

// termFrequencies tokenizes text on non-letter boundaries and counts
// lowercase terms.
func termFrequencies(text string) map[string]float64 {
	freq := make(map[string]float64)

	words := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !('a' <= r && r <= 'z') && !('0' <= r && r <= '9')
	})
	for _, w := range words {
		freq[w]++
	}

	return freq
}

// cosine computes the cosine similarity of two term-frequency vectors.
func cosine(a, b map[string]float64) float64 {
	var dot, normA, normB float64

	for term, va := range a {
		normA += va * va

		if vb, ok := b[term]; ok {
			dot += va * vb
		}
	}

	for _, vb := range b {
		normB += vb * vb
	}

	if dot == 0 || normA == 0 || normB == 0 {
		return 0
	}

	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
