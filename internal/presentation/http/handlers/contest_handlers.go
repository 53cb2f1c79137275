package handlers

import (
	"net/http"
	"time"

	"github.com/MeadowlarkTravel/meadowlark-go/internal/infrastructure/observability/logging"
	"github.com/MeadowlarkTravel/meadowlark-go/internal/infrastructure/observability/performance"
	"github.com/MeadowlarkTravel/meadowlark-go/internal/infrastructure/uploads"
	"github.com/gin-gonic/gin"
)

// ContestHandlers serves the vacation-photo contest form and its
// multipart submission.
type ContestHandlers struct {
	uploadHandler *uploads.Handler
	logger        *logging.ChanneledLogger
	perfTracker   *performance.Tracker
}

// NewContestHandlers creates the contest handlers
func NewContestHandlers(uploadHandler *uploads.Handler, logger *logging.ChanneledLogger, perfTracker *performance.Tracker) *ContestHandlers {
	return &ContestHandlers{
		uploadHandler: uploadHandler,
		logger:        logger,
		perfTracker:   perfTracker,
	}
}

// GetVacationPhoto serves GET /contest/vacation-photo. The form posts to
// a year/month-scoped URL; the month is zero-based.
func (h *ContestHandlers) GetVacationPhoto(c *gin.Context) {
	now := time.Now()
	render(c, http.StatusOK, "contest/vacation-photo", gin.H{
		"Year":  now.Year(),
		"Month": int(now.Month()) - 1,
	})
}

// PostVacationPhoto serves POST /contest/vacation-photo/:year/:month.
// Outcomes are reported by redirect: /thank-you on success, /error when
// the submission could not be processed.
func (h *ContestHandlers) PostVacationPhoto(c *gin.Context) {
	marker := h.perfTracker.StartOperation("contest_entry")
	defer marker.Complete()

	year := c.Param("year")
	month := c.Param("month")

	entry, err := h.uploadHandler.ParseContestEntry(c, year, month)
	if err != nil {
		marker.SetSuccess(false)
		h.logger.Upload().Warn("Contest entry failed",
			"year", year, "month", month, "error", err.Error())
		c.Redirect(http.StatusSeeOther, "/error")
		return
	}

	h.logger.Upload().Info("Contest entry received",
		"year", year, "month", month,
		"fieldCount", len(entry.Fields), "fileCount", len(entry.Files))
	c.Redirect(http.StatusSeeOther, "/thank-you")
}
