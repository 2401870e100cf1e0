package api

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/inkwellapp/inkwell-server/internal/domain"
	"github.com/inkwellapp/inkwell-server/internal/render"
	"github.com/inkwellapp/inkwell-server/internal/service"
)

func (s *Server) registerArticleRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "listArticles",
		Method:      http.MethodGet,
		Path:        "/api/v1/articles",
		Summary:     "List published articles",
		Description: "Returns one page of published articles, newest first, optionally narrowed to a tag",
		Tags:        []string{"Articles"},
	}, s.handleListArticles)

	huma.Register(s.api, huma.Operation{
		OperationID: "getArticle",
		Method:      http.MethodGet,
		Path:        "/api/v1/articles/{year}/{month}/{day}/{slug}",
		Summary:     "Get a published article",
		Description: "Returns the article at its canonical dated path with comments and similar articles",
		Tags:        []string{"Articles"},
	}, s.handleGetArticle)

	huma.Register(s.api, huma.Operation{
		OperationID: "createArticle",
		Method:      http.MethodPost,
		Path:        "/api/v1/articles",
		Summary:     "Create an article",
		Tags:        []string{"Editorial"},
	}, s.handleCreateArticle)

	huma.Register(s.api, huma.Operation{
		OperationID: "updateArticle",
		Method:      http.MethodPut,
		Path:        "/api/v1/editorial/articles/{id}",
		Summary:     "Update an article",
		Tags:        []string{"Editorial"},
	}, s.handleUpdateArticle)

	huma.Register(s.api, huma.Operation{
		OperationID: "deleteArticle",
		Method:      http.MethodDelete,
		Path:        "/api/v1/editorial/articles/{id}",
		Summary:     "Delete an article",
		Tags:        []string{"Editorial"},
	}, s.handleDeleteArticle)

	huma.Register(s.api, huma.Operation{
		OperationID: "listTags",
		Method:      http.MethodGet,
		Path:        "/api/v1/tags",
		Summary:     "List tags",
		Tags:        []string{"Tags"},
	}, s.handleListTags)
}

// === DTOs ===

// ArticleResponse is the wire form of an article.
type ArticleResponse struct {
	ID          string    `json:"id" doc:"Article ID"`
	Title       string    `json:"title" doc:"Article title"`
	Slug        string    `json:"slug" doc:"URL slug, unique per publish day"`
	AuthorID    string    `json:"author_id" doc:"Author ID"`
	Status      string    `json:"status" doc:"draft or published"`
	Body        string    `json:"body" doc:"Markdown source"`
	Tags        []string  `json:"tags" doc:"Tag slugs"`
	URL         string    `json:"url" doc:"Canonical dated URL"`
	PublishedAt time.Time `json:"published_at" doc:"Publish timestamp (UTC)"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CommentResponse is the wire form of a comment.
type CommentResponse struct {
	ID        string    `json:"id" doc:"Comment ID"`
	Name      string    `json:"name" doc:"Commenter name"`
	Body      string    `json:"body" doc:"Comment text"`
	CreatedAt time.Time `json:"created_at"`
}

// TagResponse is the wire form of a tag.
type TagResponse struct {
	ID   string `json:"id" doc:"Tag ID"`
	Slug string `json:"slug" doc:"URL slug"`
	Name string `json:"name" doc:"Display name"`
}

type ListArticlesInput struct {
	Tag  string `query:"tag" doc:"Narrow the listing to a tag slug"`
	Page string `query:"page" doc:"Page number; non-numeric means first page, past-the-end means last"`
}

type ListArticlesOutput struct {
	Body struct {
		Articles    []ArticleResponse `json:"articles" doc:"One page of published articles, newest first"`
		Tag         *TagResponse      `json:"tag,omitempty" doc:"The tag the listing is narrowed to"`
		Page        int               `json:"page" doc:"Page number actually served"`
		TotalPages  int               `json:"total_pages"`
		TotalItems  int               `json:"total_items"`
		HasNext     bool              `json:"has_next"`
		HasPrevious bool              `json:"has_previous"`
	}
}

type GetArticleInput struct {
	Year  int    `path:"year" doc:"Publish year"`
	Month int    `path:"month" doc:"Publish month"`
	Day   int    `path:"day" doc:"Publish day"`
	Slug  string `path:"slug" doc:"Article slug"`
}

type GetArticleOutput struct {
	Body struct {
		Article  ArticleResponse   `json:"article"`
		BodyHTML string            `json:"body_html" doc:"Body rendered from Markdown to HTML"`
		Comments []CommentResponse `json:"comments" doc:"Active comments, oldest first"`
		Similar  []ArticleResponse `json:"similar" doc:"Up to four published articles sharing the most tags"`
	}
}

type CreateArticleInput struct {
	Body service.CreateArticleInput
}

type CreateArticleOutput struct {
	Body ArticleResponse
}

type UpdateArticleInput struct {
	ID   string `path:"id" doc:"Article ID"`
	Body service.UpdateArticleInput
}

type UpdateArticleOutput struct {
	Body ArticleResponse
}

type DeleteArticleInput struct {
	ID string `path:"id" doc:"Article ID"`
}

type DeleteArticleOutput struct {
	Body struct {
		Message string `json:"message" doc:"Success message"`
	}
}

type ListTagsOutput struct {
	Body struct {
		Tags []TagResponse `json:"tags" doc:"All tags ordered by slug"`
	}
}

// === Handlers ===

func (s *Server) handleListArticles(ctx context.Context, input *ListArticlesInput) (*ListArticlesOutput, error) {
	page, tag, err := s.services.Content.ListPage(ctx, input.Tag, input.Page)
	if err != nil {
		return nil, err
	}

	slugsByID, err := s.tagSlugMap(ctx)
	if err != nil {
		return nil, err
	}

	out := &ListArticlesOutput{}
	out.Body.Articles = s.toArticleResponses(page.Items, slugsByID)
	out.Body.Page = page.PageNumber
	out.Body.TotalPages = page.TotalPages
	out.Body.TotalItems = page.TotalItems
	out.Body.HasNext = page.HasNext
	out.Body.HasPrevious = page.HasPrevious
	if tag != nil {
		out.Body.Tag = &TagResponse{ID: tag.ID, Slug: tag.Slug, Name: tag.Name}
	}
	return out, nil
}

func (s *Server) handleGetArticle(ctx context.Context, input *GetArticleInput) (*GetArticleOutput, error) {
	detail, err := s.services.Content.GetDetail(ctx, input.Year, input.Month, input.Day, input.Slug)
	if err != nil {
		return nil, err
	}

	slugsByID, err := s.tagSlugMap(ctx)
	if err != nil {
		return nil, err
	}

	bodyHTML, err := render.Markdown(detail.Article.Body)
	if err != nil {
		return nil, err
	}

	out := &GetArticleOutput{}
	out.Body.Article = s.toArticleResponse(detail.Article, slugsByID)
	out.Body.BodyHTML = bodyHTML
	out.Body.Comments = make([]CommentResponse, 0, len(detail.Comments))
	for _, c := range detail.Comments {
		out.Body.Comments = append(out.Body.Comments, CommentResponse{
			ID:        c.ID,
			Name:      c.Name,
			Body:      c.Body,
			CreatedAt: c.CreatedAt,
		})
	}
	out.Body.Similar = s.toArticleResponses(detail.Similar, slugsByID)
	return out, nil
}

func (s *Server) handleCreateArticle(ctx context.Context, input *CreateArticleInput) (*CreateArticleOutput, error) {
	article, err := s.services.Content.CreateArticle(ctx, input.Body)
	if err != nil {
		return nil, err
	}

	slugsByID, err := s.tagSlugMap(ctx)
	if err != nil {
		return nil, err
	}

	return &CreateArticleOutput{Body: s.toArticleResponse(article, slugsByID)}, nil
}

func (s *Server) handleUpdateArticle(ctx context.Context, input *UpdateArticleInput) (*UpdateArticleOutput, error) {
	article, err := s.services.Content.UpdateArticle(ctx, input.ID, input.Body)
	if err != nil {
		return nil, err
	}

	slugsByID, err := s.tagSlugMap(ctx)
	if err != nil {
		return nil, err
	}

	return &UpdateArticleOutput{Body: s.toArticleResponse(article, slugsByID)}, nil
}

func (s *Server) handleDeleteArticle(ctx context.Context, input *DeleteArticleInput) (*DeleteArticleOutput, error) {
	if err := s.services.Content.DeleteArticle(ctx, input.ID); err != nil {
		return nil, err
	}

	out := &DeleteArticleOutput{}
	out.Body.Message = "article deleted"
	return out, nil
}

func (s *Server) handleListTags(ctx context.Context, _ *struct{}) (*ListTagsOutput, error) {
	tags, err := s.services.Content.ListTags(ctx)
	if err != nil {
		return nil, err
	}

	out := &ListTagsOutput{}
	out.Body.Tags = make([]TagResponse, 0, len(tags))
	for _, tag := range tags {
		out.Body.Tags = append(out.Body.Tags, TagResponse{ID: tag.ID, Slug: tag.Slug, Name: tag.Name})
	}
	return out, nil
}

// === Helpers ===

// tagSlugMap loads the tag id to slug mapping once per request.
func (s *Server) tagSlugMap(ctx context.Context) (map[string]string, error) {
	tags, err := s.services.Content.ListTags(ctx)
	if err != nil {
		return nil, err
	}
	m := make(map[string]string, len(tags))
	for _, tag := range tags {
		m[tag.ID] = tag.Slug
	}
	return m, nil
}

func (s *Server) toArticleResponse(a *domain.Article, slugsByID map[string]string) ArticleResponse {
	tagSlugs := make([]string, 0, len(a.TagIDs))
	for _, tagID := range a.TagIDs {
		if slug, ok := slugsByID[tagID]; ok {
			tagSlugs = append(tagSlugs, slug)
		}
	}

	return ArticleResponse{
		ID:          a.ID,
		Title:       a.Title,
		Slug:        a.Slug,
		AuthorID:    a.AuthorID,
		Status:      string(a.Status),
		Body:        a.Body,
		Tags:        tagSlugs,
		URL:         s.urls.ArticleURL(a),
		PublishedAt: a.PublishedAt,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

func (s *Server) toArticleResponses(articles []*domain.Article, slugsByID map[string]string) []ArticleResponse {
	responses := make([]ArticleResponse, 0, len(articles))
	for _, a := range articles {
		responses = append(responses, s.toArticleResponse(a, slugsByID))
	}
	return responses
}
