package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkwellapp/inkwell-server/internal/domain"
	apperrors "github.com/inkwellapp/inkwell-server/internal/errors"
)

func TestCreateArticle_SlugFromTitle(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()

	article, err := env.content.CreateArticle(ctx, CreateArticleInput{
		Title:    "Another Post on Go",
		AuthorID: "author-1",
		Body:     "Some body.",
		Status:   "published",
	})
	require.NoError(t, err)
	assert.Equal(t, "another-post-on-go", article.Slug)
	assert.True(t, article.IsVisible())
}

func TestCreateArticle_ValidationFailure(t *testing.T) {
	env := setupTestEnv(t)

	_, err := env.content.CreateArticle(context.Background(), CreateArticleInput{
		Title:  "",
		Status: "published",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestCreateArticle_CreatesMissingTags(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()

	article, err := env.content.CreateArticle(ctx, CreateArticleInput{
		Title:    "Tagged Post",
		AuthorID: "author-1",
		Body:     "Body.",
		Status:   "published",
		TagSlugs: []string{"Web Development", "go"},
	})
	require.NoError(t, err)
	require.Len(t, article.TagIDs, 2)

	tags, err := env.content.ListTags(ctx)
	require.NoError(t, err)
	require.Len(t, tags, 2)
	assert.Equal(t, "go", tags[0].Slug)
	assert.Equal(t, "web-development", tags[1].Slug)
}

func TestCreateArticle_ReusesExistingTags(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()

	first, err := env.content.CreateArticle(ctx, CreateArticleInput{
		Title:    "First",
		AuthorID: "author-1",
		Body:     "Body.",
		Status:   "published",
		TagSlugs: []string{"go"},
	})
	require.NoError(t, err)

	second, err := env.content.CreateArticle(ctx, CreateArticleInput{
		Title:    "Second",
		AuthorID: "author-1",
		Body:     "Body.",
		Status:   "published",
		TagSlugs: []string{"go"},
	})
	require.NoError(t, err)
	assert.Equal(t, first.TagIDs, second.TagIDs)
}

func TestCreateArticle_DuplicateSlugSameDay(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()
	when := baseTime

	_, err := env.content.CreateArticle(ctx, CreateArticleInput{
		Title:       "Same Title",
		AuthorID:    "author-1",
		Body:        "Body.",
		Status:      "published",
		PublishedAt: &when,
	})
	require.NoError(t, err)

	_, err = env.content.CreateArticle(ctx, CreateArticleInput{
		Title:       "Same Title",
		AuthorID:    "author-2",
		Body:        "Other body.",
		Status:      "published",
		PublishedAt: &when,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrAlreadyExists)
}

func TestListPage_LenientPageCoercion(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		createPublished(t, env.store, "Post "+string(rune('A'+i)), baseTime.AddDate(0, 0, i))
	}

	// Non-numeric page falls back to the first page.
	page, _, err := env.content.ListPage(ctx, "", "abc")
	require.NoError(t, err)
	assert.Equal(t, 1, page.PageNumber)
	assert.Len(t, page.Items, 3)
	assert.Equal(t, 5, page.TotalItems)
	assert.True(t, page.HasNext)

	// Past-the-end page clamps to the last page.
	page, _, err = env.content.ListPage(ctx, "", "9999")
	require.NoError(t, err)
	assert.Equal(t, 2, page.PageNumber)
	assert.Len(t, page.Items, 2)
	assert.False(t, page.HasNext)
}

func TestListPage_NewestFirst(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()

	older := createPublished(t, env.store, "Older", baseTime)
	newer := createPublished(t, env.store, "Newer", baseTime.AddDate(0, 0, 1))

	page, _, err := env.content.ListPage(ctx, "", "1")
	require.NoError(t, err)
	require.Len(t, page.Items, 2)
	assert.Equal(t, newer.ID, page.Items[0].ID)
	assert.Equal(t, older.ID, page.Items[1].ID)
}

func TestListPage_ByTag(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()

	tagged, err := env.content.CreateArticle(ctx, CreateArticleInput{
		Title:    "Tagged",
		AuthorID: "author-1",
		Body:     "Body.",
		Status:   "published",
		TagSlugs: []string{"go"},
	})
	require.NoError(t, err)

	_, err = env.content.CreateArticle(ctx, CreateArticleInput{
		Title:    "Untagged",
		AuthorID: "author-1",
		Body:     "Body.",
		Status:   "published",
	})
	require.NoError(t, err)

	page, tag, err := env.content.ListPage(ctx, "go", "1")
	require.NoError(t, err)
	require.NotNil(t, tag)
	assert.Equal(t, "go", tag.Slug)
	require.Len(t, page.Items, 1)
	assert.Equal(t, tagged.ID, page.Items[0].ID)
}

func TestListPage_UnknownTag(t *testing.T) {
	env := setupTestEnv(t)

	_, _, err := env.content.ListPage(context.Background(), "no-such-tag", "1")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestGetDetail(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()

	article, err := env.content.CreateArticle(ctx, CreateArticleInput{
		Title:       "Detailed Post",
		AuthorID:    "author-1",
		Body:        "Body.",
		Status:      "published",
		TagSlugs:    []string{"go", "rust"},
		PublishedAt: &baseTime,
	})
	require.NoError(t, err)

	year, month, day := article.PublishDay()
	detail, err := env.content.GetDetail(ctx, year, month, day, article.Slug)
	require.NoError(t, err)
	assert.Equal(t, article.ID, detail.Article.ID)
	assert.Len(t, detail.Tags, 2)
	assert.Empty(t, detail.Comments)
	assert.Empty(t, detail.Similar)
}

func TestGetDetail_SimilarRankedBySharedTags(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()

	newInput := func(title string, offset int, tags ...string) CreateArticleInput {
		when := baseTime.AddDate(0, 0, offset)
		return CreateArticleInput{
			Title:       title,
			AuthorID:    "author-1",
			Body:        "Body.",
			Status:      "published",
			TagSlugs:    tags,
			PublishedAt: &when,
		}
	}

	target, err := env.content.CreateArticle(ctx, newInput("Target", 0, "go", "rust"))
	require.NoError(t, err)
	twoShared, err := env.content.CreateArticle(ctx, newInput("Two Shared", 1, "go", "rust"))
	require.NoError(t, err)
	oneShared, err := env.content.CreateArticle(ctx, newInput("One Shared", 2, "go"))
	require.NoError(t, err)
	_, err = env.content.CreateArticle(ctx, newInput("Unrelated", 3, "cooking"))
	require.NoError(t, err)

	year, month, day := target.PublishDay()
	detail, err := env.content.GetDetail(ctx, year, month, day, target.Slug)
	require.NoError(t, err)
	require.Len(t, detail.Similar, 2)
	assert.Equal(t, twoShared.ID, detail.Similar[0].ID)
	assert.Equal(t, oneShared.ID, detail.Similar[1].ID)
}

func TestGetDetail_DraftNotFound(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()

	draft, err := env.content.CreateArticle(ctx, CreateArticleInput{
		Title:       "Hidden Draft",
		AuthorID:    "author-1",
		Body:        "Body.",
		Status:      "draft",
		PublishedAt: &baseTime,
	})
	require.NoError(t, err)

	year, month, day := draft.PublishDay()
	_, err = env.content.GetDetail(ctx, year, month, day, draft.Slug)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestUpdateArticle_UnpublishRemovesFromIndex(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()

	article, err := env.content.CreateArticle(ctx, CreateArticleInput{
		Title:    "Searchable Gopher Post",
		AuthorID: "author-1",
		Body:     "All about gophers.",
		Status:   "published",
	})
	require.NoError(t, err)

	count, err := env.index.DocumentCount()
	require.NoError(t, err)
	assert.Equal(t, uint64(1), count)

	_, err = env.content.UpdateArticle(ctx, article.ID, UpdateArticleInput{
		Title:  article.Title,
		Slug:   article.Slug,
		Body:   article.Body,
		Status: "draft",
	})
	require.NoError(t, err)

	count, err = env.index.DocumentCount()
	require.NoError(t, err)
	assert.Equal(t, uint64(0), count)
}

func TestDeleteArticle(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()

	article, err := env.content.CreateArticle(ctx, CreateArticleInput{
		Title:    "Doomed Post",
		AuthorID: "author-1",
		Body:     "Body.",
		Status:   "published",
	})
	require.NoError(t, err)

	require.NoError(t, env.content.DeleteArticle(ctx, article.ID))

	_, err = env.content.GetArticle(ctx, article.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	count, err := env.index.DocumentCount()
	require.NoError(t, err)
	assert.Equal(t, uint64(0), count)

	err = env.content.DeleteArticle(ctx, article.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestUpdateArticle_ExplicitPublishTime(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()

	article, err := env.content.CreateArticle(ctx, CreateArticleInput{
		Title:    "Backdated",
		AuthorID: "author-1",
		Body:     "Body.",
		Status:   "draft",
	})
	require.NoError(t, err)

	when := time.Date(2023, 12, 25, 8, 0, 0, 0, time.UTC)
	updated, err := env.content.UpdateArticle(ctx, article.ID, UpdateArticleInput{
		Title:       article.Title,
		Slug:        article.Slug,
		Body:        article.Body,
		Status:      "published",
		PublishedAt: &when,
	})
	require.NoError(t, err)

	year, month, day := updated.PublishDay()
	assert.Equal(t, 2023, year)
	assert.Equal(t, 12, month)
	assert.Equal(t, 25, day)

	detail, err := env.content.GetDetail(ctx, year, month, day, updated.Slug)
	require.NoError(t, err)
	assert.Equal(t, article.ID, detail.Article.ID)
}

func TestVisibilityEndToEnd(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()

	_, err := env.content.CreateArticle(ctx, CreateArticleInput{
		Title:    "Public Post",
		AuthorID: "author-1",
		Body:     "Body.",
		Status:   "published",
	})
	require.NoError(t, err)
	_, err = env.content.CreateArticle(ctx, CreateArticleInput{
		Title:    "Secret Draft",
		AuthorID: "author-1",
		Body:     "Body.",
		Status:   "draft",
	})
	require.NoError(t, err)

	page, _, err := env.content.ListPage(ctx, "", "1")
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, domain.StatusPublished, page.Items[0].Status)
}
