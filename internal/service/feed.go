package service

import (
	"context"
	"log/slog"

	apperrors "github.com/inkwellapp/inkwell-server/internal/errors"
	"github.com/inkwellapp/inkwell-server/internal/feed"
	"github.com/inkwellapp/inkwell-server/internal/store"
)

// FeedService serves the RSS feed and the sitemap, both projected from
// the published subset.
type FeedService struct {
	store     *store.Store
	projector *feed.Projector
	logger    *slog.Logger
}

// NewFeedService creates a feed service.
func NewFeedService(st *store.Store, projector *feed.Projector, logger *slog.Logger) *FeedService {
	return &FeedService{
		store:     st,
		projector: projector,
		logger:    logger,
	}
}

// RSS renders the syndication feed: the five most recent published
// articles, bodies rendered to HTML and truncated to thirty words.
func (s *FeedService) RSS(ctx context.Context) (string, error) {
	articles, err := s.store.ListPublished(ctx)
	if err != nil {
		return "", apperrors.Wrap(err, apperrors.CodeInternal, "list published")
	}

	xml, err := s.projector.SyndicationRSS(articles)
	if err != nil {
		return "", apperrors.Wrap(err, apperrors.CodeInternal, "render feed")
	}
	return xml, nil
}

// Sitemap renders the sitemap XML for every published article.
func (s *FeedService) Sitemap(ctx context.Context) (string, error) {
	articles, err := s.store.ListPublished(ctx)
	if err != nil {
		return "", apperrors.Wrap(err, apperrors.CodeInternal, "list published")
	}

	xml, err := s.projector.SitemapXML(articles)
	if err != nil {
		return "", apperrors.Wrap(err, apperrors.CodeInternal, "render sitemap")
	}
	return xml, nil
}
