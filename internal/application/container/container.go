// Package container holds the application's dependency injection container
package container

import (
	"github.com/MeadowlarkTravel/meadowlark-go/internal/application/services"
	"github.com/MeadowlarkTravel/meadowlark-go/internal/infrastructure/media"
	"github.com/MeadowlarkTravel/meadowlark-go/internal/infrastructure/observability/logging"
	"github.com/MeadowlarkTravel/meadowlark-go/internal/infrastructure/observability/performance"
	"github.com/MeadowlarkTravel/meadowlark-go/internal/infrastructure/persistence/newsletter"
	"github.com/MeadowlarkTravel/meadowlark-go/internal/infrastructure/sessions"
	"github.com/MeadowlarkTravel/meadowlark-go/internal/infrastructure/uploads"
	"github.com/MeadowlarkTravel/meadowlark-go/pkg/config"
)

// thumbnailWidth is the pixel width of generated upload thumbnails
const thumbnailWidth = 300

// Container wires every service and infrastructure collaborator the HTTP
// layer needs. Fields are exported so tests can reach past the router.
type Container struct {
	WeatherService    *services.WeatherService
	FortuneService    *services.FortuneService
	NewsletterService *services.NewsletterService
	CheckoutService   *services.CheckoutService

	SessionStore  *sessions.Store
	UploadHandler *uploads.Handler

	Logger      *logging.ChanneledLogger
	PerfTracker *performance.Tracker
}

// NewContainer builds the container over the injected seams: the signup
// repository, the order notifier and the upload directory. Production
// passes the real implementations; tests substitute fakes.
func NewContainer(logger *logging.ChanneledLogger, signupRepo newsletter.Repository, notifier services.OrderNotifier, uploadDir string) *Container {
	store := sessions.NewStore(config.SessionCookieName, config.SessionTTL, logger)
	uploadHandler := uploads.NewHandler(uploadDir, "/uploads", media.NewThumbnailer(thumbnailWidth), logger)

	return &Container{
		WeatherService:    services.NewWeatherService(),
		FortuneService:    services.NewFortuneService(),
		NewsletterService: services.NewNewsletterService(signupRepo, logger),
		CheckoutService:   services.NewCheckoutService(notifier, logger),
		SessionStore:      store,
		UploadHandler:     uploadHandler,
		Logger:            logger,
		PerfTracker:       performance.NewTracker(),
	}
}
