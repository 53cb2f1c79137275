package handlers

import (
	"net/http"

	"github.com/MeadowlarkTravel/meadowlark-go/internal/application/services"
	"github.com/MeadowlarkTravel/meadowlark-go/internal/infrastructure/observability/logging"
	"github.com/MeadowlarkTravel/meadowlark-go/internal/infrastructure/observability/performance"
	"github.com/gin-gonic/gin"
)

// PageHandlers serves the static informational pages
type PageHandlers struct {
	fortuneService *services.FortuneService
	logger         *logging.ChanneledLogger
	perfTracker    *performance.Tracker
}

// NewPageHandlers creates handlers for the static pages
func NewPageHandlers(fortuneService *services.FortuneService, logger *logging.ChanneledLogger, perfTracker *performance.Tracker) *PageHandlers {
	return &PageHandlers{
		fortuneService: fortuneService,
		logger:         logger,
		perfTracker:    perfTracker,
	}
}

// GetHome serves GET /
func (h *PageHandlers) GetHome(c *gin.Context) {
	render(c, http.StatusOK, "home", nil)
}

// GetAbout serves GET /about with a fresh fortune and the page's QA
// test script reference.
func (h *PageHandlers) GetAbout(c *gin.Context) {
	render(c, http.StatusOK, "about", gin.H{
		"Fortune":        h.fortuneService.GetFortune(),
		"PageTestScript": "qa/tests-about.js",
	})
}

// GetJQueryTest serves GET /jquery-test
func (h *PageHandlers) GetJQueryTest(c *gin.Context) {
	render(c, http.StatusOK, "jquery-test", nil)
}

// GetNurseryRhyme serves GET /nursery-rhyme, the page whose blanks are
// filled client-side from the data endpoint.
func (h *PageHandlers) GetNurseryRhyme(c *gin.Context) {
	render(c, http.StatusOK, "nursery-rhyme", nil)
}

// GetNurseryRhymeData serves GET /data/nursery-rhyme
func (h *PageHandlers) GetNurseryRhymeData(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"animal":    "squirrel",
		"bodyPart":  "tail",
		"adjective": "bushy",
		"noun":      "heck",
	})
}

// GetTourHoodRiver serves GET /tours/hood-river
func (h *PageHandlers) GetTourHoodRiver(c *gin.Context) {
	render(c, http.StatusOK, "tours/hood-river", nil)
}

// GetTourRequestGroupRate serves GET /tours/request-group-rate
func (h *PageHandlers) GetTourRequestGroupRate(c *gin.Context) {
	render(c, http.StatusOK, "tours/request-group-rate", nil)
}

// GetThankYou serves GET /thank-you, the generic post-submission page
func (h *PageHandlers) GetThankYou(c *gin.Context) {
	render(c, http.StatusOK, "thank-you", nil)
}

// GetErrorPage serves GET /error, the generic submission-failure page
func (h *PageHandlers) GetErrorPage(c *gin.Context) {
	render(c, http.StatusOK, "error", nil)
}

// GetEpicFail deliberately panics so the recovery path stays exercised
func (h *PageHandlers) GetEpicFail(c *gin.Context) {
	panic("epic fail")
}
