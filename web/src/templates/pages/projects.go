package pages

import (
	"github.com/fikanova/portfolio/internal/domain"
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
)

// ProjectsData feeds the project index.
type ProjectsData struct {
	Cards []ProjectCard
}

// Projects renders the full project index as a card grid.
func Projects(data ProjectsData) cmp.Node {
	return g.Div(
		g.Class("pt-24 pb-16 bg-black min-h-screen"),
		g.Div(
			g.Class("container mx-auto px-6 py-16"),
			g.H1(
				g.Class("text-4xl font-light tracking-[0.15em] uppercase mb-4"),
				cmp.Text("Projects"),
			),
			g.P(
				g.Class("text-white/50 max-w-2xl mb-16"),
				cmp.Text("Selected case studies across construction management, GIS and data work."),
			),
			projectGrid(data.Cards),
		),
	)
}

func projectGrid(cards []ProjectCard) cmp.Node {
	if len(cards) == 0 {
		return g.P(
			g.Class("text-white/40"),
			cmp.Text("No projects published yet."),
		)
	}

	items := make([]cmp.Node, 0, len(cards))
	for _, card := range cards {
		items = append(items, g.A(
			g.Href("/projects/"+card.Slug),
			g.Class("group block"),
			g.Div(
				g.Class("relative aspect-video overflow-hidden bg-white/5 border border-white/10 mb-4"),
				g.Img(
					g.Src(card.CoverURL),
					g.Alt(card.Title),
					g.Class("w-full h-full object-cover group-hover:scale-105 transition-transform duration-700"),
					g.Loading("lazy"),
				),
			),
			g.P(
				g.Class("text-xs tracking-[0.2em] text-amber-400 uppercase mb-1"),
				cmp.Text(domain.CategoryTitle(card.Category)),
			),
			g.H2(
				g.Class("text-lg font-light tracking-wide"),
				cmp.Text(card.Title),
			),
		))
	}

	return g.Div(
		g.Class("grid grid-cols-1 md:grid-cols-2 gap-12"),
		cmp.Group(items),
	)
}
