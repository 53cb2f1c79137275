package handlers

import (
	"net/http"

	"github.com/MeadowlarkTravel/meadowlark-go/internal/application/services"
	"github.com/MeadowlarkTravel/meadowlark-go/internal/domain/entities/session"
	"github.com/MeadowlarkTravel/meadowlark-go/internal/domain/validation"
	"github.com/MeadowlarkTravel/meadowlark-go/internal/infrastructure/observability/logging"
	"github.com/MeadowlarkTravel/meadowlark-go/internal/infrastructure/observability/performance"
	"github.com/MeadowlarkTravel/meadowlark-go/internal/infrastructure/security"
	"github.com/MeadowlarkTravel/meadowlark-go/internal/infrastructure/sessions"
	"github.com/MeadowlarkTravel/meadowlark-go/internal/presentation/http/middleware"
	"github.com/MeadowlarkTravel/meadowlark-go/pkg/config"
	"github.com/gin-gonic/gin"
)

// NewsletterHandlers serves the newsletter signup form, the archive page
// and the signup submission.
type NewsletterHandlers struct {
	newsletterService *services.NewsletterService
	sessionStore      *sessions.Store
	logger            *logging.ChanneledLogger
	perfTracker       *performance.Tracker
}

// NewNewsletterHandlers creates the newsletter handlers
func NewNewsletterHandlers(newsletterService *services.NewsletterService, sessionStore *sessions.Store, logger *logging.ChanneledLogger, perfTracker *performance.Tracker) *NewsletterHandlers {
	return &NewsletterHandlers{
		newsletterService: newsletterService,
		sessionStore:      sessionStore,
		logger:            logger,
		perfTracker:       perfTracker,
	}
}

// GetNewsletter serves GET /newsletter with a per-session CSRF token
// embedded in the form.
func (h *NewsletterHandlers) GetNewsletter(c *gin.Context) {
	csrf := ""
	if sess, ok := middleware.GetSession(c); ok && sess != nil {
		token, err := security.GenerateCSRFToken(sess.ID, config.CookieSecret)
		if err != nil {
			h.logger.Errors().Error("Failed to issue CSRF token", "error", err.Error())
		} else {
			csrf = token
		}
	}
	render(c, http.StatusOK, "newsletter", gin.H{"CSRF": csrf})
}

// GetNewsletterArchive serves GET /newsletter/archive, the page signup
// outcomes redirect to.
func (h *NewsletterHandlers) GetNewsletterArchive(c *gin.Context) {
	render(c, http.StatusOK, "newsletter/archive", nil)
}

// PostNewsletter serves POST /newsletter. XHR clients get JSON outcome
// objects; browser clients get a flash message and a redirect to the
// archive either way.
func (h *NewsletterHandlers) PostNewsletter(c *gin.Context) {
	marker := h.perfTracker.StartOperation("newsletter_signup")
	defer marker.Complete()

	name := c.PostForm("name")
	email := c.PostForm("email")
	wantsJSON := PreferredFormat(c.Request) == FormatJSON

	if !validation.IsValidEmail(email) {
		marker.SetSuccess(false)
		h.logger.Signup().Warn("Newsletter signup rejected", "reason", "invalid email")
		if wantsJSON {
			c.JSON(http.StatusOK, gin.H{"error": "Invalid name email address."})
			return
		}
		h.flashAndRedirect(c, &session.FlashMessage{
			Type:    session.FlashDanger,
			Intro:   "Validation error!",
			Message: "The email address you entered was not valid.",
		})
		return
	}

	if err := h.newsletterService.Signup(c.Request.Context(), name, email); err != nil {
		marker.SetSuccess(false)
		if wantsJSON {
			c.JSON(http.StatusOK, gin.H{"error": "Database error."})
			return
		}
		h.flashAndRedirect(c, &session.FlashMessage{
			Type:    session.FlashDanger,
			Intro:   "Database error!",
			Message: "There was a database error; please try again later.",
		})
		return
	}

	if wantsJSON {
		c.JSON(http.StatusOK, gin.H{"success": true})
		return
	}
	h.flashAndRedirect(c, &session.FlashMessage{
		Type:    session.FlashSuccess,
		Intro:   "Thank you!",
		Message: "You have now been signed up for the newsletter.",
	})
}

func (h *NewsletterHandlers) flashAndRedirect(c *gin.Context, flash *session.FlashMessage) {
	if sess, ok := middleware.GetSession(c); ok && sess != nil {
		h.sessionStore.SetFlash(sess.ID, flash)
	}
	c.Redirect(http.StatusSeeOther, "/newsletter/archive")
}
