package partials

import (
	"github.com/fikanova/portfolio/internal/config"
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
)

// Nav renders the fixed site header with the nav links from site.yaml.
func Nav(site *config.Site) cmp.Node {
	return g.Header(
		g.Class("fixed top-0 inset-x-0 z-40 bg-black/80 backdrop-blur border-b border-white/10"),
		g.Div(
			g.Class("container mx-auto px-6 h-16 flex items-center justify-between"),
			g.A(
				g.Href("/"),
				g.Class("text-lg font-light tracking-[0.2em] uppercase"),
				cmp.Text(site.Name),
			),
			g.Nav(
				g.Class("flex items-center gap-6"),
				cmp.Group(navLinks(site)),
			),
		),
	)
}

func navLinks(site *config.Site) []cmp.Node {
	links := make([]cmp.Node, 0, len(site.Nav))
	for _, link := range site.Nav {
		links = append(links, g.A(
			g.Href(link.Href),
			g.Class("text-xs tracking-[0.15em] text-white/50 hover:text-white transition-colors uppercase"),
			cmp.Text(link.Label),
		))
	}
	return links
}
