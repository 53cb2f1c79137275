package handlers

import (
	"net/http"

	"github.com/MeadowlarkTravel/meadowlark-go/internal/application/services"
	"github.com/MeadowlarkTravel/meadowlark-go/internal/domain/entities/session"
	"github.com/MeadowlarkTravel/meadowlark-go/internal/domain/validation"
	"github.com/MeadowlarkTravel/meadowlark-go/internal/infrastructure/observability/logging"
	"github.com/MeadowlarkTravel/meadowlark-go/internal/infrastructure/observability/performance"
	"github.com/MeadowlarkTravel/meadowlark-go/internal/infrastructure/sessions"
	"github.com/MeadowlarkTravel/meadowlark-go/internal/presentation/http/middleware"
	"github.com/gin-gonic/gin"
)

// CartHandlers serves the checkout form and the order submission
type CartHandlers struct {
	checkoutService *services.CheckoutService
	sessionStore    *sessions.Store
	logger          *logging.ChanneledLogger
	perfTracker     *performance.Tracker
}

// NewCartHandlers creates the cart checkout handlers
func NewCartHandlers(checkoutService *services.CheckoutService, sessionStore *sessions.Store, logger *logging.ChanneledLogger, perfTracker *performance.Tracker) *CartHandlers {
	return &CartHandlers{
		checkoutService: checkoutService,
		sessionStore:    sessionStore,
		logger:          logger,
		perfTracker:     perfTracker,
	}
}

// GetCheckout serves GET /cart/checkout. A request without a session
// cart gets the not-found page rather than a broken form.
func (h *CartHandlers) GetCheckout(c *gin.Context) {
	sess, ok := middleware.GetSession(c)
	if !ok || sess == nil || h.sessionStore.EnsureCart(sess.ID) == nil {
		render(c, http.StatusNotFound, "404", nil)
		return
	}
	render(c, http.StatusOK, "cart-checkout", nil)
}

// PostCheckout serves POST /cart/checkout: validates the billing email,
// places the order on the session cart, kicks off the confirmation email
// and renders the order thank-you page.
func (h *CartHandlers) PostCheckout(c *gin.Context) {
	marker := h.perfTracker.StartOperation("cart_checkout")
	defer marker.Complete()

	sess, ok := middleware.GetSession(c)
	if !ok || sess == nil || h.sessionStore.EnsureCart(sess.ID) == nil {
		marker.SetSuccess(false)
		render(c, http.StatusNotFound, "404", nil)
		return
	}

	name := c.PostForm("name")
	email := c.PostForm("email")

	if !validation.IsValidEmail(email) {
		marker.SetSuccess(false)
		h.logger.Order().Warn("Checkout rejected", "reason", "invalid email")
		if PreferredFormat(c.Request) == FormatJSON {
			// Validation failures are reported in the body, never as 4xx
			c.JSON(http.StatusOK, gin.H{"error": "Invalid email address."})
			return
		}
		h.sessionStore.SetFlash(sess.ID, &session.FlashMessage{
			Type:    session.FlashDanger,
			Intro:   "Validation error!",
			Message: "The email address you entered was not valid.",
		})
		c.Redirect(http.StatusSeeOther, "/cart/checkout")
		return
	}

	var placed session.Cart
	h.sessionStore.UpdateCart(sess.ID, func(cart *session.Cart) {
		h.checkoutService.PlaceOrder(cart, name, email)
		placed = *cart
	})

	// Confirmation is issued before the render; delivery stays async
	h.checkoutService.NotifyOrderConfirmation(&placed)

	render(c, http.StatusOK, "cart-thank-you", gin.H{"Cart": &placed})
}
