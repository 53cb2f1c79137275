package middleware

import (
	"github.com/MeadowlarkTravel/meadowlark-go/internal/application/services"
	"github.com/MeadowlarkTravel/meadowlark-go/internal/infrastructure/sessions"
	"github.com/MeadowlarkTravel/meadowlark-go/pkg/config"
	"github.com/gin-gonic/gin"
)

// Locals prepares the per-request view context: it pops the pending flash
// message (read-once), guarantees the session has a cart, attaches the
// weather snapshot and decides whether the page test harness is shown.
// Must run after Session.
func Locals(store *sessions.Store, weatherService *services.WeatherService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if sess, ok := GetSession(c); ok && sess != nil {
			if flash := store.PopFlash(sess.ID); flash != nil {
				c.Set(FlashKey, flash)
			}
			store.EnsureCart(sess.ID)
		}

		c.Set(WeatherKey, weatherService.CurrentSnapshot())

		// Page tests never show in production, regardless of the query string
		showTests := !config.IsProduction() && c.Query("test") == "1"
		c.Set(ShowTestsKey, showTests)

		c.Next()
	}
}
