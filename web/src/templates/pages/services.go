package pages

import (
	"github.com/fikanova/portfolio/internal/domain"
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
)

// Services renders the service packages grouped into a pricing-style grid.
func Services(packages []domain.ServicePackage) cmp.Node {
	items := make([]cmp.Node, 0, len(packages))
	for _, pkg := range packages {
		items = append(items, serviceCard(pkg))
	}

	return g.Div(
		g.Class("pt-24 pb-16 bg-black min-h-screen"),
		g.Div(
			g.Class("container mx-auto px-6 py-16"),
			g.H1(
				g.Class("text-4xl font-light tracking-[0.15em] uppercase mb-4"),
				cmp.Text("Services"),
			),
			g.P(
				g.Class("text-white/50 max-w-2xl mb-16"),
				cmp.Text("Engagements are scoped per project. Reach out for a tailored quote."),
			),
			g.Div(
				g.Class("grid grid-cols-1 md:grid-cols-2 lg:grid-cols-3 gap-8"),
				cmp.Group(items),
			),
		),
	)
}

func serviceCard(pkg domain.ServicePackage) cmp.Node {
	cardClass := "flex flex-col p-8 border bg-white/[0.02] border-white/10"
	if pkg.IsPopular {
		cardClass = "flex flex-col p-8 border bg-white/[0.02] border-amber-400/60 relative"
	}

	var badge cmp.Node
	if pkg.IsPopular {
		badge = g.Span(
			g.Class("absolute -top-3 left-8 px-3 py-1 bg-amber-400 text-black text-xs tracking-[0.15em] uppercase"),
			cmp.Text("Popular"),
		)
	}

	features := make([]cmp.Node, 0, len(pkg.Features))
	for _, feature := range pkg.Features {
		features = append(features, g.Li(
			g.Class("text-white/60 text-sm leading-relaxed"),
			cmp.Text(feature),
		))
	}

	return g.Div(
		g.Class(cardClass),
		badge,
		g.P(
			g.Class("text-xs tracking-[0.2em] text-amber-400 uppercase mb-2"),
			cmp.Text(domain.CategoryTitle(pkg.Category)),
		),
		g.H2(
			g.Class("text-xl font-light tracking-wide mb-3"),
			cmp.Text(pkg.Title),
		),
		g.P(
			g.Class("text-white/60 text-sm leading-relaxed mb-6"),
			cmp.Text(pkg.Description),
		),
		g.Ul(
			g.Class("list-disc list-inside space-y-2 mb-8 flex-1"),
			cmp.Group(features),
		),
		g.Div(
			g.Class("flex items-center justify-between pt-6 border-t border-white/10"),
			g.P(
				g.Class("text-white/80"),
				cmp.Text(pkg.Price),
			),
			g.A(
				g.Href("/contact?service="+pkg.Category),
				g.Class("text-sm tracking-[0.1em] text-amber-400 hover:text-amber-300 uppercase transition-colors"),
				cmp.Text("Enquire"),
			),
		),
	)
}
