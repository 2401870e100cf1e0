package api

import (
	"net/http"

	"github.com/inkwellapp/inkwell-server/internal/http/response"
)

// handleFeed serves the RSS feed of the five most recent published
// articles. Plain handler; the output is XML, not the JSON envelope.
func (s *Server) handleFeed(w http.ResponseWriter, r *http.Request) {
	xml, err := s.services.Feeds.RSS(r.Context())
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	w.Header().Set("Content-Type", "application/rss+xml; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(xml)); err != nil {
		s.logger.Error("Failed to write feed response", "error", err)
	}
}

// handleSitemap serves the sitemap of every published article.
func (s *Server) handleSitemap(w http.ResponseWriter, r *http.Request) {
	xml, err := s.services.Feeds.Sitemap(r.Context())
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(xml)); err != nil {
		s.logger.Error("Failed to write sitemap response", "error", err)
	}
}
