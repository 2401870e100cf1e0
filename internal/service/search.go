package service

import (
	"context"
	"log/slog"

	"github.com/inkwellapp/inkwell-server/internal/domain"
	apperrors "github.com/inkwellapp/inkwell-server/internal/errors"
	"github.com/inkwellapp/inkwell-server/internal/search"
	"github.com/inkwellapp/inkwell-server/internal/store"
)

// SearchService bridges the search index with the store, resolving
// ranked hits back into articles and rebuilding the index from the
// published subset.
type SearchService struct {
	index  *search.Index
	store  *store.Store
	logger *slog.Logger
}

// NewSearchService creates a search service.
func NewSearchService(index *search.Index, st *store.Store, logger *slog.Logger) *SearchService {
	return &SearchService{
		index:  index,
		store:  st,
		logger: logger,
	}
}

// SearchResult is a ranked list of matching articles.
type SearchResult struct {
	Query    string
	Total    uint64
	TookMs   int64
	Articles []*domain.Article
}

// Search runs a query-string search and returns matching published
// articles in relevance order. A blank query yields an empty result; a
// malformed one returns ErrInvalidQuery.
//
// Hits are re-resolved against the store, so an article unpublished
// since its last indexing silently drops out of the results.
func (s *SearchService) Search(ctx context.Context, params search.Params) (*SearchResult, error) {
	indexResult, err := s.index.Search(ctx, params)
	if err != nil {
		return nil, err
	}

	result := &SearchResult{
		Query:    indexResult.Query,
		Total:    indexResult.Total,
		TookMs:   indexResult.TookMs,
		Articles: make([]*domain.Article, 0, len(indexResult.Hits)),
	}
	if len(indexResult.Hits) == 0 {
		return result, nil
	}

	published, err := s.store.ListPublished(ctx)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeInternal, "list published")
	}
	byID := make(map[string]*domain.Article, len(published))
	for _, a := range published {
		byID[a.ID] = a
	}

	for _, hit := range indexResult.Hits {
		if a, ok := byID[hit.ID]; ok {
			result.Articles = append(result.Articles, a)
		}
	}

	return result, nil
}

// DocumentCount reports how many articles the index currently holds.
func (s *SearchService) DocumentCount() (uint64, error) {
	return s.index.DocumentCount()
}

// Reindex rebuilds the search index from the store's published subset.
// Run at startup and after any suspected index drift.
func (s *SearchService) Reindex(ctx context.Context) (int, error) {
	if err := s.index.Rebuild(); err != nil {
		return 0, apperrors.Wrap(err, apperrors.CodeInternal, "rebuild index")
	}

	articles, err := s.store.ListPublished(ctx)
	if err != nil {
		return 0, apperrors.Wrap(err, apperrors.CodeInternal, "list published")
	}

	tags, err := s.store.ListTags(ctx)
	if err != nil {
		return 0, apperrors.Wrap(err, apperrors.CodeInternal, "list tags")
	}
	slugByID := make(map[string]string, len(tags))
	for _, t := range tags {
		slugByID[t.ID] = t.Slug
	}

	docs := make([]*search.ArticleDocument, 0, len(articles))
	for _, a := range articles {
		slugs := make([]string, 0, len(a.TagIDs))
		for _, tagID := range a.TagIDs {
			if slug, ok := slugByID[tagID]; ok {
				slugs = append(slugs, slug)
			}
		}
		docs = append(docs, search.ArticleToDocument(a, slugs))
	}

	if err := s.index.IndexArticles(docs); err != nil {
		return 0, apperrors.Wrap(err, apperrors.CodeInternal, "index articles")
	}

	s.logger.Info("reindexed published articles", "count", len(docs))
	return len(docs), nil
}
