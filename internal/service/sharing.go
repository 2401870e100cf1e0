package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	apperrors "github.com/inkwellapp/inkwell-server/internal/errors"
	"github.com/inkwellapp/inkwell-server/internal/mail"
	"github.com/inkwellapp/inkwell-server/internal/store"
	"github.com/inkwellapp/inkwell-server/internal/urls"
	"github.com/inkwellapp/inkwell-server/internal/validation"
)

// SharingService emails article recommendations on a reader's behalf.
type SharingService struct {
	store    *store.Store
	mailer   mail.Mailer
	urls     *urls.Builder
	validate *validation.Validator
	logger   *slog.Logger
}

// NewSharingService creates a sharing service.
func NewSharingService(st *store.Store, mailer mail.Mailer, urlBuilder *urls.Builder, validate *validation.Validator, logger *slog.Logger) *SharingService {
	return &SharingService{
		store:    st,
		mailer:   mailer,
		urls:     urlBuilder,
		validate: validate,
		logger:   logger,
	}
}

// ShareInput is the payload for recommending an article by email.
type ShareInput struct {
	Name     string `json:"name" validate:"required,max=80"`
	From     string `json:"from" validate:"required,email"`
	To       string `json:"to" validate:"required,email"`
	Comments string `json:"comments" validate:"max=500"`
}

// ShareArticle sends a recommendation for the published article at the
// dated path. Drafts cannot be shared; the dated lookup does not see
// them.
func (s *SharingService) ShareArticle(ctx context.Context, year, month, day int, slug string, input ShareInput) error {
	if err := s.validate.Validate(input); err != nil {
		return err
	}

	article, err := s.store.GetPublishedByPath(ctx, year, month, day, slug)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return apperrors.NotFound("article not found")
		}
		return apperrors.Wrap(err, apperrors.CodeInternal, "get article")
	}

	articleURL := s.urls.ArticleURL(article)
	subject := fmt.Sprintf("%s (%s) recommends you read %q", input.Name, input.From, article.Title)
	body := fmt.Sprintf("Read %q at %s", article.Title, articleURL)
	if input.Comments != "" {
		body += fmt.Sprintf("\n\n%s's comments: %s", input.Name, input.Comments)
	}

	if err := s.mailer.Send(ctx, mail.Message{
		To:      input.To,
		Subject: subject,
		Body:    body,
	}); err != nil {
		return apperrors.Wrap(err, apperrors.CodeInternal, "send mail")
	}

	s.logger.Info("shared article", "article_id", article.ID, "to", input.To)
	return nil
}
