package partials

import (
	"strconv"
	"time"

	"github.com/fikanova/portfolio/internal/config"
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
)

// Footer renders the site footer: nav echo, copyright and builder credit.
func Footer(site *config.Site) cmp.Node {
	year := strconv.Itoa(time.Now().Year())

	var credit cmp.Node
	if site.Footer.CreditURL != "" {
		credit = g.A(
			g.Href(site.Footer.CreditURL),
			g.Target("_blank"),
			g.Rel("noopener noreferrer"),
			g.Class("text-white/50 hover:text-white transition-colors"),
			cmp.Text(site.Footer.Credit),
		)
	} else {
		credit = g.Span(g.Class("text-white/50"), cmp.Text(site.Footer.Credit))
	}

	return g.Footer(
		g.Class("bg-black border-t border-white/10"),
		g.Div(
			g.Class("container mx-auto px-6 py-12"),
			g.Div(
				g.Class("flex flex-col md:flex-row items-center justify-between gap-4 text-xs text-white/40 tracking-widest uppercase"),
				g.P(cmp.Text("© "+year+" "+site.Name+". All rights reserved.")),
				g.P(g.Class("normal-case tracking-wider"), cmp.Text("Built by "), credit),
			),
		),
	)
}
