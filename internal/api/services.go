package api

import "github.com/inkwellapp/inkwell-server/internal/service"

// Services aggregates the application services the handlers depend on.
type Services struct {
	Content  *service.ContentService
	Comments *service.CommentService
	Search   *service.SearchService
	Sharing  *service.SharingService
	Feeds    *service.FeedService
}
