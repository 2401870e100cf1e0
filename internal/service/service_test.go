package service

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/inkwellapp/inkwell-server/internal/domain"
	"github.com/inkwellapp/inkwell-server/internal/feed"
	"github.com/inkwellapp/inkwell-server/internal/id"
	"github.com/inkwellapp/inkwell-server/internal/mail"
	"github.com/inkwellapp/inkwell-server/internal/search"
	"github.com/inkwellapp/inkwell-server/internal/store"
	"github.com/inkwellapp/inkwell-server/internal/urls"
	"github.com/inkwellapp/inkwell-server/internal/validation"
)

// testEnv wires real storage and a real index against temp directories.
type testEnv struct {
	store   *store.Store
	index   *search.Index
	content *ContentService
	mailer  *captureMailer
}

// captureMailer records sent messages instead of delivering them.
type captureMailer struct {
	mu   sync.Mutex
	sent []mail.Message
}

func (m *captureMailer) Send(_ context.Context, msg mail.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, msg)
	return nil
}

func (m *captureMailer) messages() []mail.Message {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]mail.Message(nil), m.sent...)
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	tmpDir := t.TempDir()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	st, err := store.Open(filepath.Join(tmpDir, "test.db"), logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	index, err := search.NewIndex(search.Options{DataPath: tmpDir, Logger: logger})
	require.NoError(t, err)
	t.Cleanup(func() { _ = index.Close() })

	validate := validation.New()

	return &testEnv{
		store:   st,
		index:   index,
		content: NewContentService(st, index, validate, logger, 3),
		mailer:  &captureMailer{},
	}
}

func (env *testEnv) commentService() *CommentService {
	return NewCommentService(env.store, validation.New(), slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func (env *testEnv) searchService() *SearchService {
	return NewSearchService(env.index, env.store, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func (env *testEnv) sharingService() *SharingService {
	return NewSharingService(env.store, env.mailer, urls.NewBuilder("https://blog.example.com"),
		validation.New(), slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func (env *testEnv) feedService() *FeedService {
	projector := feed.NewProjector(urls.NewBuilder("https://blog.example.com"),
		"My blog", "New posts of my blog.")
	return NewFeedService(env.store, projector, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// createPublished inserts a published article directly into the store,
// bypassing the service, with a distinct publish time per call.
func createPublished(t *testing.T, st *store.Store, title string, publishedAt time.Time, tagIDs ...string) *domain.Article {
	t.Helper()

	articleID, err := id.Generate("art")
	require.NoError(t, err)

	a := &domain.Article{
		ID:          articleID,
		Title:       title,
		Slug:        slugForTest(title),
		AuthorID:    "author-1",
		Body:        "Body of " + title,
		Status:      domain.StatusPublished,
		TagIDs:      tagIDs,
		PublishedAt: publishedAt,
		CreatedAt:   publishedAt,
		UpdatedAt:   publishedAt,
	}
	require.NoError(t, st.CreateArticle(context.Background(), a))
	return a
}

func slugForTest(title string) string {
	slug := make([]rune, 0, len(title))
	for _, r := range title {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			slug = append(slug, r)
		case r >= 'A' && r <= 'Z':
			slug = append(slug, r+32)
		case r == ' ':
			slug = append(slug, '-')
		}
	}
	return string(slug)
}

var baseTime = time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
