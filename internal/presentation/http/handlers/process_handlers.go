package handlers

import (
	"net/http"

	"github.com/MeadowlarkTravel/meadowlark-go/internal/infrastructure/observability/logging"
	"github.com/MeadowlarkTravel/meadowlark-go/internal/infrastructure/observability/performance"
	"github.com/gin-gonic/gin"
)

// ProcessHandlers serves the generic form sink used by the group-rate
// request form.
type ProcessHandlers struct {
	logger      *logging.ChanneledLogger
	perfTracker *performance.Tracker
}

// NewProcessHandlers creates the generic form processing handlers
func NewProcessHandlers(logger *logging.ChanneledLogger, perfTracker *performance.Tracker) *ProcessHandlers {
	return &ProcessHandlers{
		logger:      logger,
		perfTracker: perfTracker,
	}
}

// PostProcess serves POST /process. The submission is logged, never
// stored; XHR clients get a JSON acknowledgment, browsers a redirect.
func (h *ProcessHandlers) PostProcess(c *gin.Context) {
	h.logger.Request().Debug("Form submission processed",
		"form", c.Query("form"),
		"csrf", c.PostForm("_csrf"),
		"hasName", c.PostForm("name") != "",
		"hasEmail", c.PostForm("email") != "",
	)

	if PreferredFormat(c.Request) == FormatJSON {
		c.JSON(http.StatusOK, gin.H{"success": true})
		return
	}
	c.Redirect(http.StatusSeeOther, "/thank-you")
}
