package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/MeadowlarkTravel/meadowlark-go/internal/infrastructure/observability/logging"
	"github.com/gin-gonic/gin"
)

// Recovery converts a handler panic into the rendered 500 page. The panic
// value and stack go to the errors channel; the response carries neither.
func Recovery(logger *logging.ChanneledLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if recovered := recover(); recovered != nil {
				logger.Errors().Error("Recovered from handler panic",
					"method", c.Request.Method,
					"path", c.Request.URL.Path,
					"panic", recovered,
					"stack", string(debug.Stack()),
				)
				c.HTML(http.StatusInternalServerError, "500", gin.H{})
				c.Abort()
			}
		}()
		c.Next()
	}
}
