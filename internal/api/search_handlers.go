package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/inkwellapp/inkwell-server/internal/search"
)

func (s *Server) registerSearchRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "searchArticles",
		Method:      http.MethodGet,
		Path:        "/api/v1/search",
		Summary:     "Search published articles",
		Description: "Full-text search over titles and bodies with query-string syntax, ranked by relevance",
		Tags:        []string{"Search"},
	}, s.handleSearchArticles)
}

type SearchArticlesInput struct {
	Query  string `query:"q" doc:"Query-string syntax, e.g. deploy or title:go"`
	Limit  int    `query:"limit" default:"20" minimum:"1" maximum:"100" doc:"Maximum hits to return"`
	Offset int    `query:"offset" default:"0" minimum:"0" doc:"Offset into the ranked hits"`
}

type SearchArticlesOutput struct {
	Body struct {
		Query    string            `json:"query" doc:"The query as given"`
		Total    uint64            `json:"total" doc:"Total ranked matches"`
		TookMs   int64             `json:"took_ms" doc:"Query execution time"`
		Articles []ArticleResponse `json:"articles" doc:"Matching published articles in relevance order"`
	}
}

func (s *Server) handleSearchArticles(ctx context.Context, input *SearchArticlesInput) (*SearchArticlesOutput, error) {
	result, err := s.services.Search.Search(ctx, search.Params{
		Query:  input.Query,
		Limit:  input.Limit,
		Offset: input.Offset,
	})
	if err != nil {
		return nil, err
	}

	slugsByID, err := s.tagSlugMap(ctx)
	if err != nil {
		return nil, err
	}

	out := &SearchArticlesOutput{}
	out.Body.Query = result.Query
	out.Body.Total = result.Total
	out.Body.TookMs = result.TookMs
	out.Body.Articles = s.toArticleResponses(result.Articles, slugsByID)
	return out, nil
}
