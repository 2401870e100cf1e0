// Package domain contains the core business entities and domain logic for the Inkwell publishing engine.
package domain

import (
	"time"
)

// Status is the publication state of an article.
type Status string

// Article publication states.
const (
	StatusDraft     Status = "draft"
	StatusPublished Status = "published"
)

// Valid reports whether s is a known status value.
func (s Status) Valid() bool {
	return s == StatusDraft || s == StatusPublished
}

// Article represents a single piece of long-form content.
//
// Slug is unique among articles sharing the same publish day, which makes
// (year, month, day, slug) a stable public identifier. AuthorID is an opaque
// reference to an external identity provider; nothing in this server
// dereferences it.
type Article struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	AuthorID    string    `json:"author_id"`
	Body        string    `json:"body"` // Markdown source
	Status      Status    `json:"status"`
	TagIDs      []string  `json:"tag_ids,omitempty"`
	PublishedAt time.Time `json:"published_at"` // Defaults to creation time; may be future-dated
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// IsVisible reports whether the article belongs to the public subset.
// Visibility is purely a status check: future-dated publish times are
// still visible.
func (a *Article) IsVisible() bool {
	return a.Status == StatusPublished
}

// PublishDay returns the calendar components of the publish date.
// These are the URL-construction inputs for the canonical article path;
// the article never builds the path string itself.
func (a *Article) PublishDay() (year int, month int, day int) {
	return a.PublishedAt.Year(), int(a.PublishedAt.Month()), a.PublishedAt.Day()
}

// HasTag reports whether the article carries the given tag ID.
func (a *Article) HasTag(tagID string) bool {
	for _, id := range a.TagIDs {
		if id == tagID {
			return true
		}
	}
	return false
}

// Touch updates the UpdatedAt timestamp.
func (a *Article) Touch() {
	a.UpdatedAt = time.Now().UTC()
}
