package domain

import (
	"testing"
	"time"
)

func makeArticle(id string, status Status, publishedAt time.Time, tagIDs ...string) *Article {
	return &Article{
		ID:          id,
		Title:       "Article " + id,
		Slug:        "article-" + id,
		AuthorID:    "author-1",
		Body:        "body",
		Status:      status,
		TagIDs:      tagIDs,
		PublishedAt: publishedAt,
		CreatedAt:   publishedAt,
		UpdatedAt:   publishedAt,
	}
}

func TestVisible_FiltersDrafts(t *testing.T) {
	now := time.Now()
	articles := []*Article{
		makeArticle("a", StatusPublished, now),
		makeArticle("b", StatusDraft, now),
		makeArticle("c", StatusPublished, now),
	}

	got := Visible(articles)
	if len(got) != 2 {
		t.Fatalf("expected 2 visible articles, got %d", len(got))
	}
	if got[0].ID != "a" || got[1].ID != "c" {
		t.Errorf("order not preserved: got [%s %s]", got[0].ID, got[1].ID)
	}
}

func TestVisible_Idempotent(t *testing.T) {
	now := time.Now()
	articles := []*Article{
		makeArticle("a", StatusPublished, now),
		makeArticle("b", StatusDraft, now),
	}

	once := Visible(articles)
	twice := Visible(once)

	if len(once) != len(twice) {
		t.Fatalf("idempotency broken: %d vs %d", len(once), len(twice))
	}
	for i := range once {
		if once[i].ID != twice[i].ID {
			t.Errorf("element %d differs: %s vs %s", i, once[i].ID, twice[i].ID)
		}
	}
}

func TestVisible_Empty(t *testing.T) {
	if got := Visible(nil); len(got) != 0 {
		t.Errorf("expected empty result for nil input, got %d", len(got))
	}
}

func TestVisible_FutureDatedStillVisible(t *testing.T) {
	// No scheduled-publish gating: published articles with a future
	// publish date are part of the public subset.
	future := makeArticle("f", StatusPublished, time.Now().Add(48*time.Hour))
	got := Visible([]*Article{future})
	if len(got) != 1 {
		t.Errorf("future-dated published article should be visible")
	}
}
