package pages

import (
	"github.com/fikanova/portfolio/internal/domain"
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
)

// Experience renders the work history as a vertical timeline. Entries arrive
// already sorted by their explicit order field.
func Experience(entries []domain.Experience) cmp.Node {
	items := make([]cmp.Node, 0, len(entries))
	for _, entry := range entries {
		items = append(items, experienceEntry(entry))
	}

	return g.Div(
		g.Class("pt-24 pb-16 bg-black min-h-screen"),
		g.Div(
			g.Class("container mx-auto px-6 py-16 max-w-3xl"),
			g.H1(
				g.Class("text-4xl font-light tracking-[0.15em] uppercase mb-16"),
				cmp.Text("Experience"),
			),
			g.Div(
				g.Class("space-y-12"),
				cmp.Group(items),
			),
		),
	)
}

func experienceEntry(entry domain.Experience) cmp.Node {
	var company cmp.Node
	if entry.Website != "" {
		company = g.A(
			g.Href(entry.Website),
			g.Target("_blank"),
			g.Rel("noopener noreferrer"),
			g.Class("text-amber-400 hover:text-amber-300 transition-colors"),
			cmp.Text(entry.Company),
		)
	} else {
		company = g.Span(
			g.Class("text-amber-400"),
			cmp.Text(entry.Company),
		)
	}

	highlights := make([]cmp.Node, 0, len(entry.Highlights))
	for _, h := range entry.Highlights {
		highlights = append(highlights, g.Li(
			g.Class("text-white/60 text-sm leading-relaxed"),
			cmp.Text(h),
		))
	}

	return g.Article(
		g.Class("border-l-2 border-white/10 pl-8 relative"),
		g.Div(
			g.Class("flex flex-wrap items-baseline justify-between gap-2 mb-1"),
			g.H2(
				g.Class("text-xl font-light tracking-wide"),
				cmp.Text(entry.Role),
			),
			g.P(
				g.Class("text-white/40 text-sm tracking-wide"),
				cmp.Text(entry.Period),
			),
		),
		g.P(
			g.Class("text-sm mb-1"),
			company,
			g.Span(
				g.Class("text-white/40"),
				cmp.Text(" · "+entry.Location),
			),
		),
		g.P(
			g.Class("text-white/60 text-sm leading-relaxed mt-3 mb-3"),
			cmp.Text(entry.Description),
		),
		g.Ul(
			g.Class("list-disc list-inside space-y-1"),
			cmp.Group(highlights),
		),
	)
}
