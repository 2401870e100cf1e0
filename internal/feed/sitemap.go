package feed

import (
	"encoding/xml"
	"fmt"
	"time"

	"github.com/inkwellapp/inkwell-server/internal/domain"
)

// Sitemap change metadata for article pages.
const (
	sitemapChangeFreq = "weekly"
	sitemapPriority   = "0.9"
	sitemapNamespace  = "http://www.sitemaps.org/schemas/sitemap/0.9"
)

// SitemapURL is one <url> entry in the sitemap.
type SitemapURL struct {
	XMLName    xml.Name `xml:"url"`
	Loc        string   `xml:"loc"`
	LastMod    string   `xml:"lastmod"`
	ChangeFreq string   `xml:"changefreq"`
	Priority   string   `xml:"priority"`
}

// SitemapURLSet is the sitemap document root.
type SitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []SitemapURL `xml:"url"`
}

// Sitemap builds the sitemap projection over visible articles: one entry
// per article with its canonical URL, last modification time, and fixed
// change metadata.
func (p *Projector) Sitemap(articles []*domain.Article) *SitemapURLSet {
	set := &SitemapURLSet{
		Xmlns: sitemapNamespace,
		URLs:  make([]SitemapURL, 0, len(articles)),
	}
	for _, a := range articles {
		set.URLs = append(set.URLs, SitemapURL{
			Loc:        p.urls.ArticleURL(a),
			LastMod:    a.UpdatedAt.UTC().Format(time.RFC3339),
			ChangeFreq: sitemapChangeFreq,
			Priority:   sitemapPriority,
		})
	}
	return set
}

// SitemapXML renders the sitemap projection as an XML document.
func (p *Projector) SitemapXML(articles []*domain.Article) (string, error) {
	out, err := xml.MarshalIndent(p.Sitemap(articles), "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode sitemap: %w", err)
	}
	return xml.Header + string(out), nil
}
