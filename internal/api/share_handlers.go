package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/inkwellapp/inkwell-server/internal/service"
)

func (s *Server) registerShareRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "shareArticle",
		Method:      http.MethodPost,
		Path:        "/api/v1/articles/{year}/{month}/{day}/{slug}/share",
		Summary:     "Share an article by email",
		Description: "Emails a recommendation for a published article on the sender's behalf",
		Tags:        []string{"Sharing"},
	}, s.handleShareArticle)
}

type ShareArticleInput struct {
	Year  int    `path:"year" doc:"Publish year"`
	Month int    `path:"month" doc:"Publish month"`
	Day   int    `path:"day" doc:"Publish day"`
	Slug  string `path:"slug" doc:"Article slug"`
	Body  service.ShareInput
}

type ShareArticleOutput struct {
	Body struct {
		Message string `json:"message" doc:"Success message"`
	}
}

func (s *Server) handleShareArticle(ctx context.Context, input *ShareArticleInput) (*ShareArticleOutput, error) {
	err := s.services.Sharing.ShareArticle(ctx, input.Year, input.Month, input.Day, input.Slug, input.Body)
	if err != nil {
		return nil, err
	}

	out := &ShareArticleOutput{}
	out.Body.Message = "article shared"
	return out, nil
}
