// Package urls builds canonical public URLs for articles.
//
// The rest of the server supplies only the URL-construction inputs
// (publish year/month/day and slug); this is the single place path
// strings are assembled, so the scheme can change without touching
// projections or handlers.
package urls

import (
	"fmt"
	"strings"

	"github.com/inkwellapp/inkwell-server/internal/domain"
)

// Builder turns articles into canonical paths and absolute URLs.
type Builder struct {
	baseURL string
}

// NewBuilder creates a Builder. baseURL is the public origin of the site,
// e.g. "https://blog.example.com"; a trailing slash is tolerated.
func NewBuilder(baseURL string) *Builder {
	return &Builder{baseURL: strings.TrimRight(baseURL, "/")}
}

// ArticlePath returns the canonical site-relative path for an article:
// /articles/{year}/{month}/{day}/{slug}.
func (b *Builder) ArticlePath(a *domain.Article) string {
	year, month, day := a.PublishDay()
	return fmt.Sprintf("/articles/%d/%d/%d/%s", year, month, day, a.Slug)
}

// ArticleURL returns the absolute canonical URL for an article.
func (b *Builder) ArticleURL(a *domain.Article) string {
	return b.baseURL + b.ArticlePath(a)
}

// SiteURL returns the public origin.
func (b *Builder) SiteURL() string {
	return b.baseURL
}
