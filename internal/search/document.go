// Package search provides full-text article search backed by Bleve.
// Queries use Bleve's query-string syntax with English stemming, so
// "shares" finds "share" and "title:go" restricts a clause to the title.
package search

import (
	"github.com/inkwellapp/inkwell-server/internal/domain"
)

// ArticleDocument is the shape indexed for each published article.
//
// Only title and body are analyzed for matching. Tag slugs are indexed
// as exact keywords so "tags:go" works as a query-string filter without
// stemming mangling compound slugs like "web-development".
type ArticleDocument struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Body        string   `json:"body"`
	Tags        []string `json:"tags,omitempty"`
	PublishedAt int64    `json:"published_at"` // Unix millis
}

// ToMap converts the document to a map with lowercase field names.
// Bleve defaults to Go struct field names, which would not match the
// lowercase names in the index mapping.
func (d *ArticleDocument) ToMap() map[string]interface{} {
	m := map[string]interface{}{
		"id":           d.ID,
		"title":        d.Title,
		"body":         d.Body,
		"published_at": d.PublishedAt,
	}
	if len(d.Tags) > 0 {
		m["tags"] = d.Tags
	}
	return m
}

// ArticleToDocument converts a domain Article to its indexed form.
// Tag slugs are denormalized by the caller; the search package does not
// depend on the store.
func ArticleToDocument(a *domain.Article, tagSlugs []string) *ArticleDocument {
	return &ArticleDocument{
		ID:          a.ID,
		Title:       a.Title,
		Body:        a.Body,
		Tags:        tagSlugs,
		PublishedAt: a.PublishedAt.UnixMilli(),
	}
}
