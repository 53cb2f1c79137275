// Package handlers contains the HTTP handlers for the site's pages and
// form endpoints.
package handlers

import (
	"net/http"
	"strings"

	"github.com/MeadowlarkTravel/meadowlark-go/internal/presentation/http/middleware"
	"github.com/gin-gonic/gin"
)

// ResponseFormat selects between the two response variants a form
// endpoint supports.
type ResponseFormat int

const (
	FormatHTML ResponseFormat = iota
	FormatJSON
)

// PreferredFormat decides the response variant purely from request
// headers. An XHR marker wins outright; otherwise the first of
// application/json or text/html listed in Accept decides, and anything
// else falls back to HTML.
func PreferredFormat(r *http.Request) ResponseFormat {
	if r.Header.Get("X-Requested-With") == "XMLHttpRequest" {
		return FormatJSON
	}

	for _, part := range strings.Split(r.Header.Get("Accept"), ",") {
		mediaType := strings.TrimSpace(strings.SplitN(part, ";", 2)[0])
		switch strings.ToLower(mediaType) {
		case "application/json":
			return FormatJSON
		case "text/html", "application/xhtml+xml":
			return FormatHTML
		}
	}
	return FormatHTML
}

// render merges the per-request view locals (flash, weather, test
// harness flag) into the page data and renders the named view.
func render(c *gin.Context, status int, view string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	if flash, ok := c.Get(middleware.FlashKey); ok {
		data["Flash"] = flash
	}
	if snapshot, ok := c.Get(middleware.WeatherKey); ok {
		data["Weather"] = snapshot
	}
	if showTests, ok := c.Get(middleware.ShowTestsKey); ok {
		data["ShowTests"] = showTests
	}
	c.HTML(status, view, data)
}
