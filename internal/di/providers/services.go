package providers

import (
	"github.com/samber/do/v2"

	"github.com/inkwellapp/inkwell-server/internal/config"
	"github.com/inkwellapp/inkwell-server/internal/feed"
	"github.com/inkwellapp/inkwell-server/internal/logger"
	"github.com/inkwellapp/inkwell-server/internal/mail"
	"github.com/inkwellapp/inkwell-server/internal/service"
	"github.com/inkwellapp/inkwell-server/internal/urls"
	"github.com/inkwellapp/inkwell-server/internal/validation"
)

// ProvideValidator provides the request validator.
func ProvideValidator(i do.Injector) (*validation.Validator, error) {
	return validation.New(), nil
}

// ProvideMailer provides the outbound mailer. No SMTP relay is wired
// yet, so shares are logged rather than delivered.
func ProvideMailer(i do.Injector) (mail.Mailer, error) {
	log := do.MustInvoke[*logger.Logger](i)
	return mail.NewLogMailer(log.Logger), nil
}

// ProvideURLBuilder provides the canonical URL builder.
func ProvideURLBuilder(i do.Injector) (*urls.Builder, error) {
	cfg := do.MustInvoke[*config.Config](i)
	return urls.NewBuilder(cfg.Site.BaseURL), nil
}

// ProvideFeedProjector provides the RSS and sitemap projector.
func ProvideFeedProjector(i do.Injector) (*feed.Projector, error) {
	cfg := do.MustInvoke[*config.Config](i)
	urlBuilder := do.MustInvoke[*urls.Builder](i)

	return feed.NewProjector(urlBuilder, cfg.Site.Title, cfg.Site.Description), nil
}

// ProvideContentService provides the article content service.
func ProvideContentService(i do.Injector) (*service.ContentService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	indexHandle := do.MustInvoke[*SearchIndexHandle](i)
	validate := do.MustInvoke[*validation.Validator](i)
	log := do.MustInvoke[*logger.Logger](i)
	cfg := do.MustInvoke[*config.Config](i)

	return service.NewContentService(
		storeHandle.Store,
		indexHandle.Index,
		validate,
		log.Logger,
		cfg.Site.PageSize,
	), nil
}

// ProvideCommentService provides the comment service.
func ProvideCommentService(i do.Injector) (*service.CommentService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	validate := do.MustInvoke[*validation.Validator](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewCommentService(storeHandle.Store, validate, log.Logger), nil
}

// ProvideSharingService provides the share-by-email service.
func ProvideSharingService(i do.Injector) (*service.SharingService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	mailer := do.MustInvoke[mail.Mailer](i)
	urlBuilder := do.MustInvoke[*urls.Builder](i)
	validate := do.MustInvoke[*validation.Validator](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewSharingService(storeHandle.Store, mailer, urlBuilder, validate, log.Logger), nil
}

// ProvideFeedService provides the RSS and sitemap service.
func ProvideFeedService(i do.Injector) (*service.FeedService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	projector := do.MustInvoke[*feed.Projector](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewFeedService(storeHandle.Store, projector, log.Logger), nil
}
