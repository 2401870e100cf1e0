package api

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/inkwellapp/inkwell-server/internal/service"
)

func (s *Server) registerCommentRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID:   "addComment",
		Method:        http.MethodPost,
		Path:          "/api/v1/articles/{year}/{month}/{day}/{slug}/comments",
		Summary:       "Add a comment",
		Description:   "Posts a comment on a published article; drafts cannot be commented on",
		Tags:          []string{"Comments"},
		DefaultStatus: http.StatusCreated,
	}, s.handleAddComment)
}

type AddCommentInput struct {
	Year  int    `path:"year" doc:"Publish year"`
	Month int    `path:"month" doc:"Publish month"`
	Day   int    `path:"day" doc:"Publish day"`
	Slug  string `path:"slug" doc:"Article slug"`
	Body  service.AddCommentInput
}

type AddCommentOutput struct {
	Body struct {
		ID        string    `json:"id" doc:"Comment ID"`
		ArticleID string    `json:"article_id" doc:"Owning article ID"`
		Name      string    `json:"name"`
		Body      string    `json:"body"`
		CreatedAt time.Time `json:"created_at"`
	}
}

func (s *Server) handleAddComment(ctx context.Context, input *AddCommentInput) (*AddCommentOutput, error) {
	comment, err := s.services.Comments.AddComment(ctx, input.Year, input.Month, input.Day, input.Slug, input.Body)
	if err != nil {
		return nil, err
	}

	out := &AddCommentOutput{}
	out.Body.ID = comment.ID
	out.Body.ArticleID = comment.ArticleID
	out.Body.Name = comment.Name
	out.Body.Body = comment.Body
	out.Body.CreatedAt = comment.CreatedAt
	return out, nil
}
