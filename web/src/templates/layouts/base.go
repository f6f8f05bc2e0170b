package layouts

import (
	"github.com/fikanova/portfolio/internal/config"
	"github.com/fikanova/portfolio/internal/view"
	"github.com/fikanova/portfolio/web/src/templates/partials"
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
)

// Base wraps page content in the site chrome: head, navigation, flash
// block and footer. Every full-page render goes through here.
func Base(title string, site *config.Site, flash view.FlashData, content cmp.Node) cmp.Node {
	pageTitle := site.Name
	if title != "" {
		pageTitle = title + " | " + site.Name
	}

	return g.Doctype(
		g.HTML(
			g.Lang("en"),
			g.Head(
				g.Meta(g.Charset("utf-8")),
				g.Meta(g.Name("viewport"), g.Content("width=device-width, initial-scale=1")),
				g.Meta(g.Name("description"), g.Content(site.Description)),
				g.TitleEl(cmp.Text(pageTitle)),
				g.Script(g.Src("https://cdn.tailwindcss.com")),
				g.Link(g.Rel("stylesheet"), g.Href("/static/css/site.css")),
				g.Script(g.Src("https://unpkg.com/htmx.org@1.9.12/dist/htmx.min.js"), g.Defer()),
			),
			g.Body(
				g.Class("bg-black text-white antialiased"),
				partials.Nav(site),
				partials.Flash(flash),
				g.Main(content),
				partials.Footer(site),
			),
		),
	)
}
