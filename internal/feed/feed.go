// Package feed projects the published article set into externally-consumed
// documents: a syndication feed of recent content and a crawler sitemap.
// Both projections are pure and regenerated on every invocation; there is
// no caching layer here.
package feed

import (
	"fmt"
	"sort"
	"time"

	"github.com/gorilla/feeds"

	"github.com/inkwellapp/inkwell-server/internal/domain"
	"github.com/inkwellapp/inkwell-server/internal/render"
	"github.com/inkwellapp/inkwell-server/internal/urls"
)

// FeedItemLimit is how many recent articles the syndication feed carries.
const FeedItemLimit = 5

// descriptionWords is the word-boundary for feed item descriptions.
const descriptionWords = 30

// Projector builds the syndication and sitemap projections.
type Projector struct {
	urls        *urls.Builder
	title       string
	description string
}

// NewProjector creates a Projector. title and description name the feed
// itself, not any one article.
func NewProjector(urlBuilder *urls.Builder, title, description string) *Projector {
	return &Projector{
		urls:        urlBuilder,
		title:       title,
		description: description,
	}
}

// Syndication builds the recent-content feed from visible articles.
// Articles are ordered by publish date descending and capped at
// FeedItemLimit. Each description is the markdown body rendered to HTML
// and truncated at a 30-word boundary with tags kept balanced.
func (p *Projector) Syndication(articles []*domain.Article) (*feeds.Feed, error) {
	recent := make([]*domain.Article, len(articles))
	copy(recent, articles)
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].PublishedAt.After(recent[j].PublishedAt)
	})
	if len(recent) > FeedItemLimit {
		recent = recent[:FeedItemLimit]
	}

	f := &feeds.Feed{
		Title:       p.title,
		Link:        &feeds.Link{Href: p.urls.SiteURL() + "/articles"},
		Description: p.description,
		Created:     time.Now(),
	}

	for _, a := range recent {
		body, err := render.Markdown(a.Body)
		if err != nil {
			return nil, fmt.Errorf("render body for %s: %w", a.ID, err)
		}
		f.Items = append(f.Items, &feeds.Item{
			Id:          p.urls.ArticleURL(a),
			Title:       a.Title,
			Link:        &feeds.Link{Href: p.urls.ArticleURL(a)},
			Description: render.TruncateHTMLWords(body, descriptionWords),
			Created:     a.PublishedAt,
		})
	}

	return f, nil
}

// SyndicationRSS renders the syndication projection as an RSS 2.0 document.
func (p *Projector) SyndicationRSS(articles []*domain.Article) (string, error) {
	f, err := p.Syndication(articles)
	if err != nil {
		return "", err
	}
	rss, err := f.ToRss()
	if err != nil {
		return "", fmt.Errorf("encode rss: %w", err)
	}
	return rss, nil
}
