// Package routes assembles the gin engine: middleware chain, static
// mounts and every route of the site.
package routes

import (
	"net/http"

	"github.com/MeadowlarkTravel/meadowlark-go/internal/application/container"
	"github.com/MeadowlarkTravel/meadowlark-go/internal/presentation/http/handlers"
	"github.com/MeadowlarkTravel/meadowlark-go/internal/presentation/http/middleware"
	"github.com/MeadowlarkTravel/meadowlark-go/internal/presentation/templates"
	"github.com/MeadowlarkTravel/meadowlark-go/pkg/config"
	"github.com/gin-gonic/gin"
)

// SetupRoutes builds the configured gin engine over the container
func SetupRoutes(ctn *container.Container) *gin.Engine {
	r := gin.New()
	r.MaxMultipartMemory = int64(config.MaxUploadMB) << 20
	r.HTMLRender = templates.NewRenderer()

	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.RequestLogging(ctn.Logger))
	r.Use(middleware.Recovery(ctn.Logger))

	// Stored uploads are served statically, without session handling:
	// routes registered here do not pick up the middleware added below.
	r.Static("/uploads", ctn.UploadHandler.BaseDir())
	r.POST("/upload/*path", ctn.UploadHandler.HandleUpload)

	r.Use(middleware.Session(ctn.SessionStore))
	r.Use(middleware.Locals(ctn.SessionStore, ctn.WeatherService))

	pageHandlers := handlers.NewPageHandlers(ctn.FortuneService, ctn.Logger, ctn.PerfTracker)
	newsletterHandlers := handlers.NewNewsletterHandlers(ctn.NewsletterService, ctn.SessionStore, ctn.Logger, ctn.PerfTracker)
	cartHandlers := handlers.NewCartHandlers(ctn.CheckoutService, ctn.SessionStore, ctn.Logger, ctn.PerfTracker)
	contestHandlers := handlers.NewContestHandlers(ctn.UploadHandler, ctn.Logger, ctn.PerfTracker)
	processHandlers := handlers.NewProcessHandlers(ctn.Logger, ctn.PerfTracker)

	// Pages
	r.GET("/", pageHandlers.GetHome)
	r.GET("/about", pageHandlers.GetAbout)
	r.GET("/jquery-test", pageHandlers.GetJQueryTest)
	r.GET("/nursery-rhyme", pageHandlers.GetNurseryRhyme)
	r.GET("/data/nursery-rhyme", pageHandlers.GetNurseryRhymeData)
	r.GET("/tours/hood-river", pageHandlers.GetTourHoodRiver)
	r.GET("/tours/request-group-rate", pageHandlers.GetTourRequestGroupRate)
	r.GET("/thank-you", pageHandlers.GetThankYou)
	r.GET("/error", pageHandlers.GetErrorPage)
	r.GET("/epic-fail", pageHandlers.GetEpicFail)

	// Newsletter
	r.GET("/newsletter", newsletterHandlers.GetNewsletter)
	r.GET("/newsletter/archive", newsletterHandlers.GetNewsletterArchive)
	r.POST("/newsletter", newsletterHandlers.PostNewsletter)

	// Cart checkout
	r.GET("/cart/checkout", cartHandlers.GetCheckout)
	r.POST("/cart/checkout", cartHandlers.PostCheckout)

	// Vacation photo contest
	r.GET("/contest/vacation-photo", contestHandlers.GetVacationPhoto)
	r.POST("/contest/vacation-photo/:year/:month", contestHandlers.PostVacationPhoto)

	// Generic form sink
	r.POST("/process", processHandlers.PostProcess)

	r.NoRoute(func(c *gin.Context) {
		c.HTML(http.StatusNotFound, "404", gin.H{})
	})

	return r
}
