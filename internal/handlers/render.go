package handlers

import (
	"github.com/fikanova/portfolio/internal/config"
	"github.com/fikanova/portfolio/internal/view"
	"github.com/fikanova/portfolio/web/src/templates/layouts"
	"github.com/labstack/echo/v4"
	cmp "maragu.dev/gomponents"
)

// renderPage wraps page content in the base layout and writes it as a full
// HTML document with the given status.
func renderPage(c echo.Context, status int, title string, site *config.Site, content cmp.Node) error {
	flash := view.GetFlashData(c)
	doc := layouts.Base(title, site, flash, content)

	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(status)
	return doc.Render(c.Response().Writer)
}

// renderPartial writes a bare fragment, used for htmx swap responses.
func renderPartial(c echo.Context, status int, content cmp.Node) error {
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(status)
	return content.Render(c.Response().Writer)
}

// isHTMX reports whether the request came from the htmx client library.
func isHTMX(c echo.Context) bool {
	return c.Request().Header.Get("HX-Request") == "true"
}
