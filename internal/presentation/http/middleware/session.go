// Package middleware provides the gin middleware chain: CORS, request
// logging, panic recovery, session attachment and view locals.
package middleware

import (
	"github.com/MeadowlarkTravel/meadowlark-go/internal/domain/entities/session"
	"github.com/MeadowlarkTravel/meadowlark-go/internal/infrastructure/sessions"
	"github.com/gin-gonic/gin"
)

// Context keys set by the middleware chain and read by the handlers
const (
	SessionKey   = "session"
	FlashKey     = "flash"
	WeatherKey   = "weather"
	ShowTestsKey = "showTests"
)

// Session resolves or creates the request's session and stores it in the
// gin context for downstream handlers.
func Session(store *sessions.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := store.Attach(c)
		c.Set(SessionKey, sess)
		c.Next()
	}
}

// GetSession returns the session attached to the request, if any
func GetSession(c *gin.Context) (*session.Session, bool) {
	value, exists := c.Get(SessionKey)
	if !exists {
		return nil, false
	}
	sess, ok := value.(*session.Session)
	return sess, ok
}
