package search

import (
	"context"
	"fmt"
	"strings"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/search/query"

	apperrors "github.com/inkwellapp/inkwell-server/internal/errors"
)

// Params configures a search query.
type Params struct {
	Query string // Bare words, or query-string syntax like `title:kubernetes -tags:go`

	// Pagination over the ranked hits.
	Limit  int
	Offset int
}

// DefaultParams returns sensible defaults.
func DefaultParams() Params {
	return Params{
		Limit:  100,
		Offset: 0,
	}
}

// Result represents the ranked search results.
type Result struct {
	Query  string `json:"query"`
	Total  uint64 `json:"total"`
	TookMs int64  `json:"took_ms"`
	Hits   []Hit  `json:"hits"`
}

// Hit is a single ranked match.
type Hit struct {
	ID    string  `json:"id"`
	Score float64 `json:"score"`
}

// Search executes a search ordered by relevance.
//
// A blank query returns an empty result without touching the index.
// A query that fails to parse returns apperrors.ErrInvalidQuery so
// callers can distinguish user error from index failure.
func (s *Index) Search(ctx context.Context, params Params) (*Result, error) {
	trimmed := strings.TrimSpace(params.Query)
	if trimmed == "" {
		return &Result{Query: params.Query, Hits: []Hit{}}, nil
	}

	searchQuery, err := buildQuery(trimmed)
	if err != nil {
		return nil, err
	}

	limit := params.Limit
	if limit <= 0 {
		limit = DefaultParams().Limit
	}

	searchRequest := bleve.NewSearchRequestOptions(searchQuery, limit, params.Offset, false)
	searchRequest.SortBy([]string{"-_score"})

	s.mu.RLock()
	searchResult, err := s.index.SearchInContext(ctx, searchRequest)
	s.mu.RUnlock()
	if err != nil {
		return nil, fmt.Errorf("execute search: %w", err)
	}

	result := &Result{
		Query:  params.Query,
		Total:  searchResult.Total,
		TookMs: searchResult.Took.Milliseconds(),
		Hits:   make([]Hit, 0, len(searchResult.Hits)),
	}
	for _, hit := range searchResult.Hits {
		result.Hits = append(result.Hits, Hit{ID: hit.ID, Score: hit.Score})
	}

	return result, nil
}

// buildQuery turns user input into a bleve query. Bare-word input
// requires every token: a match query per searchable field with the AND
// operator, joined as a disjunction so either field can satisfy the
// whole query. Input carrying query-string operators keeps bleve's own
// syntax, where parse failure is the user's error.
func buildQuery(trimmed string) (query.Query, error) {
	if hasQuerySyntax(trimmed) {
		qs := bleve.NewQueryStringQuery(trimmed)
		if _, err := qs.Parse(); err != nil {
			return nil, apperrors.InvalidQuery(fmt.Sprintf("malformed search query: %v", err))
		}
		return qs, nil
	}

	title := bleve.NewMatchQuery(trimmed)
	title.SetField("title")
	title.SetOperator(query.MatchQueryOperatorAnd)

	body := bleve.NewMatchQuery(trimmed)
	body.SetField("body")
	body.SetOperator(query.MatchQueryOperatorAnd)

	return bleve.NewDisjunctionQuery(title, body), nil
}

// hasQuerySyntax reports whether the input uses query-string operators
// (field prefixes, phrases, boosts, exclusions) rather than bare words.
// A hyphen inside a word, as in a tag slug, is not an operator.
func hasQuerySyntax(input string) bool {
	if strings.ContainsAny(input, `:"+^~*?(\`) {
		return true
	}
	for _, field := range strings.Fields(input) {
		if strings.HasPrefix(field, "-") {
			return true
		}
	}
	return false
}
