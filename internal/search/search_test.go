package search

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkwellapp/inkwell-server/internal/domain"
	apperrors "github.com/inkwellapp/inkwell-server/internal/errors"
)

// setupTestIndex creates a temporary search index for testing.
func setupTestIndex(t *testing.T) *Index {
	t.Helper()

	index, err := NewIndex(Options{
		DataPath: t.TempDir(),
		Logger:   nil,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = index.Close() })

	return index
}

func indexedArticle(id, title, body string, tags ...string) *ArticleDocument {
	return &ArticleDocument{
		ID:          id,
		Title:       title,
		Body:        body,
		Tags:        tags,
		PublishedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).UnixMilli(),
	}
}

func TestNewIndex(t *testing.T) {
	index := setupTestIndex(t)

	count, err := index.DocumentCount()
	require.NoError(t, err)
	assert.Equal(t, uint64(0), count)
}

func TestIndexArticle(t *testing.T) {
	index := setupTestIndex(t)

	err := index.IndexArticle(indexedArticle("art-1", "Writing a Blog Engine", "Notes on persistence."))
	require.NoError(t, err)

	count, err := index.DocumentCount()
	require.NoError(t, err)
	assert.Equal(t, uint64(1), count)
}

func TestIndexArticles_Batch(t *testing.T) {
	index := setupTestIndex(t)

	docs := []*ArticleDocument{
		indexedArticle("art-1", "First Post", "Hello."),
		indexedArticle("art-2", "Second Post", "Hello again."),
		indexedArticle("art-3", "Third Post", "Goodbye."),
	}
	require.NoError(t, index.IndexArticles(docs))

	count, err := index.DocumentCount()
	require.NoError(t, err)
	assert.Equal(t, uint64(3), count)
}

func TestSearch_MatchesTitleAndBody(t *testing.T) {
	index := setupTestIndex(t)
	ctx := context.Background()

	require.NoError(t, index.IndexArticles([]*ArticleDocument{
		indexedArticle("art-title", "Django Migrations Explained", "Nothing relevant here."),
		indexedArticle("art-body", "Weekly Roundup", "This week we cover django deployment."),
		indexedArticle("art-neither", "Gardening Tips", "Water your plants."),
	}))

	result, err := index.Search(ctx, Params{Query: "django", Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, uint64(2), result.Total)

	ids := make([]string, 0, len(result.Hits))
	for _, hit := range result.Hits {
		ids = append(ids, hit.ID)
	}
	assert.ElementsMatch(t, []string{"art-title", "art-body"}, ids)
}

func TestSearch_MultiWordRequiresAllTokens(t *testing.T) {
	index := setupTestIndex(t)
	ctx := context.Background()

	require.NoError(t, index.IndexArticles([]*ArticleDocument{
		indexedArticle("art-both", "Climate Change Report", "Climate change accelerates."),
		indexedArticle("art-one", "Climate News", "Nothing about the other word."),
		indexedArticle("art-split", "Climate Summary", "Change is in the body only."),
	}))

	result, err := index.Search(ctx, Params{Query: "climate change", Limit: 10})
	require.NoError(t, err)
	require.Len(t, result.Hits, 1)
	assert.Equal(t, "art-both", result.Hits[0].ID)
}

func TestSearch_EnglishStemming(t *testing.T) {
	index := setupTestIndex(t)
	ctx := context.Background()

	require.NoError(t, index.IndexArticle(
		indexedArticle("art-1", "Sharing Posts by Email", "How readers share articles.")))

	// Stemmed forms of the indexed words should match.
	result, err := index.Search(ctx, Params{Query: "shared", Limit: 10})
	require.NoError(t, err)
	require.Len(t, result.Hits, 1)
	assert.Equal(t, "art-1", result.Hits[0].ID)
}

func TestSearch_BlankQuery(t *testing.T) {
	index := setupTestIndex(t)
	ctx := context.Background()

	require.NoError(t, index.IndexArticle(indexedArticle("art-1", "A Post", "Body.")))

	for _, q := range []string{"", "   ", "\t\n"} {
		result, err := index.Search(ctx, Params{Query: q, Limit: 10})
		require.NoError(t, err)
		assert.Empty(t, result.Hits)
	}
}

func TestSearch_MalformedQuery(t *testing.T) {
	index := setupTestIndex(t)

	_, err := index.Search(context.Background(), Params{Query: `title:"unterminated`, Limit: 10})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrInvalidQuery)
}

func TestSearch_TagFilterSyntax(t *testing.T) {
	index := setupTestIndex(t)
	ctx := context.Background()

	require.NoError(t, index.IndexArticles([]*ArticleDocument{
		indexedArticle("art-go", "Concurrency Patterns", "Goroutines and channels.", "go"),
		indexedArticle("art-web", "Template Rendering", "Server side rendering.", "web-development"),
	}))

	result, err := index.Search(ctx, Params{Query: "tags:web-development", Limit: 10})
	require.NoError(t, err)
	require.Len(t, result.Hits, 1)
	assert.Equal(t, "art-web", result.Hits[0].ID)
}

func TestDeleteArticle(t *testing.T) {
	index := setupTestIndex(t)
	ctx := context.Background()

	require.NoError(t, index.IndexArticle(
		indexedArticle("art-1", "Ephemeral Post", "Soon to be unpublished.")))
	require.NoError(t, index.DeleteArticle("art-1"))

	result, err := index.Search(ctx, Params{Query: "ephemeral", Limit: 10})
	require.NoError(t, err)
	assert.Empty(t, result.Hits)

	// Deleting an unknown ID is a no-op.
	assert.NoError(t, index.DeleteArticle("art-ghost"))
}

func TestArticleToDocument(t *testing.T) {
	published := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	a := &domain.Article{
		ID:          "art-1",
		Title:       "A Title",
		Body:        "A body.",
		Status:      domain.StatusPublished,
		PublishedAt: published,
	}

	doc := ArticleToDocument(a, []string{"go"})
	assert.Equal(t, "art-1", doc.ID)
	assert.Equal(t, "A Title", doc.Title)
	assert.Equal(t, []string{"go"}, doc.Tags)
	assert.Equal(t, published.UnixMilli(), doc.PublishedAt)
}
