// Package service implements the application's use cases on top of the
// store, the search index, and the outbound mail boundary. Services
// translate store sentinels into coded domain errors; handlers only
// ever see the latter.
package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/inkwellapp/inkwell-server/internal/domain"
	apperrors "github.com/inkwellapp/inkwell-server/internal/errors"
	"github.com/inkwellapp/inkwell-server/internal/id"
	"github.com/inkwellapp/inkwell-server/internal/pagination"
	"github.com/inkwellapp/inkwell-server/internal/search"
	"github.com/inkwellapp/inkwell-server/internal/store"
	"github.com/inkwellapp/inkwell-server/internal/util"
	"github.com/inkwellapp/inkwell-server/internal/validation"
)

// ContentService manages articles and tags, keeping the search index in
// step with the published subset.
type ContentService struct {
	store    *store.Store
	index    *search.Index
	validate *validation.Validator
	logger   *slog.Logger
	pageSize int
}

// NewContentService creates a content service. pageSize controls list
// pagination; values below 1 fall back to the default.
func NewContentService(st *store.Store, index *search.Index, validate *validation.Validator, logger *slog.Logger, pageSize int) *ContentService {
	if pageSize < 1 {
		pageSize = pagination.DefaultPageSize
	}
	return &ContentService{
		store:    st,
		index:    index,
		validate: validate,
		logger:   logger,
		pageSize: pageSize,
	}
}

// CreateArticleInput is the payload for creating an article.
type CreateArticleInput struct {
	Title       string     `json:"title" validate:"required,max=250"`
	Slug        string     `json:"slug" validate:"omitempty,max=250"`
	AuthorID    string     `json:"author_id" validate:"required"`
	Body        string     `json:"body" validate:"required"`
	Status      string     `json:"status" validate:"required,oneof=draft published"`
	TagSlugs    []string   `json:"tags" validate:"omitempty,dive,required,max=100"`
	PublishedAt *time.Time `json:"published_at"`
}

// UpdateArticleInput is the payload for updating an article.
type UpdateArticleInput struct {
	Title       string     `json:"title" validate:"required,max=250"`
	Slug        string     `json:"slug" validate:"omitempty,max=250"`
	Body        string     `json:"body" validate:"required"`
	Status      string     `json:"status" validate:"required,oneof=draft published"`
	TagSlugs    []string   `json:"tags" validate:"omitempty,dive,required,max=100"`
	PublishedAt *time.Time `json:"published_at"`
}

// ArticleDetail is a published article with everything its page shows.
type ArticleDetail struct {
	Article  *domain.Article
	Tags     []*domain.Tag
	Comments []*domain.Comment
	Similar  []*domain.Article
}

// CreateArticle validates the input, persists the article, and indexes
// it when published. The slug defaults to a slugified title; missing
// tags are created on the fly.
func (s *ContentService) CreateArticle(ctx context.Context, input CreateArticleInput) (*domain.Article, error) {
	if err := s.validate.Validate(input); err != nil {
		return nil, err
	}

	slug := input.Slug
	if slug == "" {
		slug = util.Slugify(input.Title)
	}
	if slug == "" {
		return nil, apperrors.Validation("title does not produce a usable slug")
	}

	tagIDs, err := s.ensureTags(ctx, input.TagSlugs)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	publishedAt := now
	if input.PublishedAt != nil {
		publishedAt = input.PublishedAt.UTC()
	}

	articleID, err := id.Generate("art")
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeInternal, "generate article id")
	}

	article := &domain.Article{
		ID:          articleID,
		Title:       input.Title,
		Slug:        slug,
		AuthorID:    input.AuthorID,
		Body:        input.Body,
		Status:      domain.Status(input.Status),
		TagIDs:      tagIDs,
		PublishedAt: publishedAt,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.store.CreateArticle(ctx, article); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return nil, apperrors.AlreadyExists("an article with this slug already exists on that publish day")
		}
		return nil, apperrors.Wrap(err, apperrors.CodeInternal, "create article")
	}

	s.syncIndex(ctx, article)
	s.logger.Info("created article", "id", article.ID, "slug", article.Slug, "status", article.Status)

	return article, nil
}

// UpdateArticle applies the input to an existing article and keeps the
// search index consistent with the resulting visibility.
func (s *ContentService) UpdateArticle(ctx context.Context, articleID string, input UpdateArticleInput) (*domain.Article, error) {
	if err := s.validate.Validate(input); err != nil {
		return nil, err
	}

	article, err := s.store.GetArticleByID(ctx, articleID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperrors.NotFound("article not found")
		}
		return nil, apperrors.Wrap(err, apperrors.CodeInternal, "get article")
	}

	slug := input.Slug
	if slug == "" {
		slug = util.Slugify(input.Title)
	}

	tagIDs, err := s.ensureTags(ctx, input.TagSlugs)
	if err != nil {
		return nil, err
	}

	article.Title = input.Title
	article.Slug = slug
	article.Body = input.Body
	article.Status = domain.Status(input.Status)
	article.TagIDs = tagIDs
	if input.PublishedAt != nil {
		article.PublishedAt = input.PublishedAt.UTC()
	}
	article.Touch()

	if err := s.store.UpdateArticle(ctx, article); err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			return nil, apperrors.NotFound("article not found")
		case errors.Is(err, store.ErrAlreadyExists):
			return nil, apperrors.AlreadyExists("an article with this slug already exists on that publish day")
		}
		return nil, apperrors.Wrap(err, apperrors.CodeInternal, "update article")
	}

	s.syncIndex(ctx, article)
	s.logger.Info("updated article", "id", article.ID, "status", article.Status)

	return article, nil
}

// DeleteArticle removes an article, its comments, and its index entry.
func (s *ContentService) DeleteArticle(ctx context.Context, articleID string) error {
	if err := s.store.DeleteArticle(ctx, articleID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return apperrors.NotFound("article not found")
		}
		return apperrors.Wrap(err, apperrors.CodeInternal, "delete article")
	}

	if err := s.index.DeleteArticle(articleID); err != nil {
		s.logger.Warn("failed to remove article from search index", "id", articleID, "error", err)
	}

	s.logger.Info("deleted article", "id", articleID)
	return nil
}

// GetArticle retrieves an article of any status by ID. Editorial use.
func (s *ContentService) GetArticle(ctx context.Context, articleID string) (*domain.Article, error) {
	article, err := s.store.GetArticleByID(ctx, articleID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperrors.NotFound("article not found")
		}
		return nil, apperrors.Wrap(err, apperrors.CodeInternal, "get article")
	}
	return article, nil
}

// ListPage returns one page of the published listing, newest first.
// tagSlug narrows the listing to a tag; an unknown slug is NotFound.
// rawPage follows lenient coercion: non-numeric input means the first
// page, past-the-end input means the last.
func (s *ContentService) ListPage(ctx context.Context, tagSlug, rawPage string) (pagination.Page[*domain.Article], *domain.Tag, error) {
	var (
		articles []*domain.Article
		tag      *domain.Tag
		err      error
	)

	if tagSlug == "" {
		articles, err = s.store.ListPublished(ctx)
	} else {
		tag, err = s.tagBySlug(ctx, tagSlug)
		if err == nil {
			articles, err = s.store.ListPublishedByTag(ctx, tagSlug)
		}
	}
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return pagination.Page[*domain.Article]{}, nil, apperrors.NotFound("tag not found")
		}
		var appErr *apperrors.Error
		if errors.As(err, &appErr) {
			return pagination.Page[*domain.Article]{}, nil, err
		}
		return pagination.Page[*domain.Article]{}, nil, apperrors.Wrap(err, apperrors.CodeInternal, "list articles")
	}

	return pagination.PaginateParam(articles, s.pageSize, rawPage), tag, nil
}

// GetDetail retrieves a published article by its dated path, along with
// its tags, active comments, and up to four similar published articles
// ranked by shared tag count and recency.
func (s *ContentService) GetDetail(ctx context.Context, year, month, day int, slug string) (*ArticleDetail, error) {
	article, err := s.store.GetPublishedByPath(ctx, year, month, day, slug)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperrors.NotFound("article not found")
		}
		return nil, apperrors.Wrap(err, apperrors.CodeInternal, "get article")
	}

	tags, err := s.store.GetTagsByIDs(ctx, article.TagIDs)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeInternal, "load tags")
	}

	comments, err := s.store.ListActiveComments(ctx, article.ID)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeInternal, "load comments")
	}

	candidates, err := s.store.ListPublished(ctx)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeInternal, "load similar candidates")
	}
	similar := domain.SimilarArticles(article, candidates, domain.DefaultSimilarLimit)

	return &ArticleDetail{
		Article:  article,
		Tags:     tags,
		Comments: comments,
		Similar:  similar,
	}, nil
}

// ListTags returns every tag ordered by slug.
func (s *ContentService) ListTags(ctx context.Context) ([]*domain.Tag, error) {
	tags, err := s.store.ListTags(ctx)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeInternal, "list tags")
	}
	return tags, nil
}

// tagBySlug resolves a tag slug without mapping the error, so callers
// can distinguish unknown tags from store failures.
func (s *ContentService) tagBySlug(ctx context.Context, slug string) (*domain.Tag, error) {
	return s.store.GetTagBySlug(ctx, slug)
}

// ensureTags resolves tag slugs to IDs, creating missing tags. Slugs
// are normalized first so "Web Development" and "web-development" are
// the same tag.
func (s *ContentService) ensureTags(ctx context.Context, rawSlugs []string) ([]string, error) {
	if len(rawSlugs) == 0 {
		return nil, nil
	}

	seen := make(map[string]bool, len(rawSlugs))
	tagIDs := make([]string, 0, len(rawSlugs))

	for _, raw := range rawSlugs {
		slug := util.Slugify(raw)
		if slug == "" || seen[slug] {
			continue
		}
		seen[slug] = true

		tag, err := s.store.GetTagBySlug(ctx, slug)
		if err == nil {
			tagIDs = append(tagIDs, tag.ID)
			continue
		}
		if !errors.Is(err, store.ErrNotFound) {
			return nil, apperrors.Wrap(err, apperrors.CodeInternal, "resolve tag")
		}

		tagID, err := id.Generate("tag")
		if err != nil {
			return nil, apperrors.Wrap(err, apperrors.CodeInternal, "generate tag id")
		}
		now := time.Now().UTC()
		created := &domain.Tag{
			ID:        tagID,
			Slug:      slug,
			Name:      raw,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := s.store.CreateTag(ctx, created); err != nil {
			// Lost a race with a concurrent create; re-resolve.
			if errors.Is(err, store.ErrAlreadyExists) {
				tag, err = s.store.GetTagBySlug(ctx, slug)
				if err != nil {
					return nil, apperrors.Wrap(err, apperrors.CodeInternal, "resolve tag")
				}
				tagIDs = append(tagIDs, tag.ID)
				continue
			}
			return nil, apperrors.Wrap(err, apperrors.CodeInternal, "create tag")
		}
		tagIDs = append(tagIDs, created.ID)
	}

	return tagIDs, nil
}

// syncIndex makes the search index agree with the article's visibility.
// Index failures are logged, not returned; the store remains the source
// of truth and a reindex repairs drift.
func (s *ContentService) syncIndex(ctx context.Context, article *domain.Article) {
	if !article.IsVisible() {
		if err := s.index.DeleteArticle(article.ID); err != nil {
			s.logger.Warn("failed to remove article from search index", "id", article.ID, "error", err)
		}
		return
	}

	slugs, err := s.tagSlugs(ctx, article.TagIDs)
	if err != nil {
		s.logger.Warn("failed to resolve tag slugs for indexing", "id", article.ID, "error", err)
	}
	if err := s.index.IndexArticle(search.ArticleToDocument(article, slugs)); err != nil {
		s.logger.Warn("failed to index article", "id", article.ID, "error", err)
	}
}

func (s *ContentService) tagSlugs(ctx context.Context, tagIDs []string) ([]string, error) {
	if len(tagIDs) == 0 {
		return nil, nil
	}
	tags, err := s.store.GetTagsByIDs(ctx, tagIDs)
	if err != nil {
		return nil, err
	}
	slugs := make([]string, 0, len(tags))
	for _, t := range tags {
		slugs = append(slugs, t.Slug)
	}
	return slugs, nil
}
