package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/inkwellapp/inkwell-server/internal/domain"
	apperrors "github.com/inkwellapp/inkwell-server/internal/errors"
	"github.com/inkwellapp/inkwell-server/internal/id"
	"github.com/inkwellapp/inkwell-server/internal/store"
	"github.com/inkwellapp/inkwell-server/internal/validation"
)

// CommentService accepts reader comments on published articles.
type CommentService struct {
	store    *store.Store
	validate *validation.Validator
	logger   *slog.Logger
}

// NewCommentService creates a comment service.
func NewCommentService(st *store.Store, validate *validation.Validator, logger *slog.Logger) *CommentService {
	return &CommentService{
		store:    st,
		validate: validate,
		logger:   logger,
	}
}

// AddCommentInput is the payload for posting a comment.
type AddCommentInput struct {
	Name  string `json:"name" validate:"required,max=80"`
	Email string `json:"email" validate:"required,email"`
	Body  string `json:"body" validate:"required,max=5000"`
}

// AddComment stores a comment on the article at the dated path.
// Commenting is only open on published articles; the dated lookup
// cannot see drafts, so an attempt against one is NotFound.
func (s *CommentService) AddComment(ctx context.Context, year, month, day int, slug string, input AddCommentInput) (*domain.Comment, error) {
	if err := s.validate.Validate(input); err != nil {
		return nil, err
	}

	article, err := s.store.GetPublishedByPath(ctx, year, month, day, slug)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperrors.NotFound("article not found")
		}
		return nil, apperrors.Wrap(err, apperrors.CodeInternal, "get article")
	}

	commentID, err := id.Generate("cmt")
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeInternal, "generate comment id")
	}

	now := time.Now().UTC()
	comment := &domain.Comment{
		ID:        commentID,
		ArticleID: article.ID,
		Name:      input.Name,
		Email:     input.Email,
		Body:      input.Body,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.store.CreateComment(ctx, comment); err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeInternal, "create comment")
	}

	s.logger.Info("added comment", "id", comment.ID, "article_id", article.ID)
	return comment, nil
}
