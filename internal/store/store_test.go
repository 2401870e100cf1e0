package store

import (
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/inkwellapp/inkwell-server/internal/domain"
)

// newTestStore opens a store backed by a temp file, cleaned up with the test.
func newTestStore(t *testing.T) *Store {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db")
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	s, err := Open(path, logger)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })

	return s
}

var testEpoch = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

// makeTestArticle creates a domain.Article with sensible defaults for testing.
func makeTestArticle(id string, status domain.Status, publishedAt time.Time, tagIDs ...string) *domain.Article {
	return &domain.Article{
		ID:          id,
		Title:       "Title " + id,
		Slug:        "slug-" + id,
		AuthorID:    "author-1",
		Body:        "Body of " + id,
		Status:      status,
		TagIDs:      tagIDs,
		PublishedAt: publishedAt,
		CreatedAt:   publishedAt,
		UpdatedAt:   publishedAt,
	}
}

func makeTestTag(id, slug string) *domain.Tag {
	now := time.Now()
	return &domain.Tag{
		ID:        id,
		Slug:      slug,
		Name:      slug,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func makeTestComment(id, articleID string, createdAt time.Time) *domain.Comment {
	return &domain.Comment{
		ID:        id,
		ArticleID: articleID,
		Name:      "Reader",
		Email:     "reader@example.com",
		Body:      "Nice article.",
		Active:    true,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
}
