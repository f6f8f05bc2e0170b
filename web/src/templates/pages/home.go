package pages

import (
	"github.com/fikanova/portfolio/internal/domain"
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
)

// ProjectCard is the view model for a project teaser: everything resolved
// to plain strings so the template never touches store internals.
type ProjectCard struct {
	Title    string
	Slug     string
	Category string
	CoverURL string
}

// HomeData feeds the landing page.
type HomeData struct {
	Profile  domain.Profile
	Featured []ProjectCard
	Services []domain.ServicePackage
}

// Home renders the landing page: hero, featured case studies and a service
// teaser, each section linking to its full page.
func Home(data HomeData) cmp.Node {
	return g.Div(
		g.Class("pt-24 pb-16 bg-black min-h-screen"),
		hero(data.Profile),
		featuredWork(data.Featured),
		serviceTeaser(data.Services),
	)
}

func hero(profile domain.Profile) cmp.Node {
	return g.Section(
		g.Class("container mx-auto px-6 py-24 text-center"),
		g.H1(
			g.Class("text-5xl md:text-7xl font-light tracking-[0.2em] uppercase mb-6"),
			cmp.Text(profile.Name),
		),
		g.P(
			g.Class("text-white/60 text-lg max-w-2xl mx-auto mb-10"),
			cmp.Text(profile.Title),
		),
		g.Div(
			g.Class("flex items-center justify-center gap-4"),
			g.A(
				g.Href("/projects"),
				g.Class("px-8 py-3 bg-amber-400 text-black text-sm tracking-[0.15em] uppercase hover:bg-amber-300 transition-colors"),
				cmp.Text("View Work"),
			),
			g.A(
				g.Href("/contact"),
				g.Class("px-8 py-3 border border-white/30 text-sm tracking-[0.15em] uppercase hover:bg-white hover:text-black transition-colors"),
				cmp.Text("Get in Touch"),
			),
		),
	)
}

func featuredWork(cards []ProjectCard) cmp.Node {
	if len(cards) == 0 {
		return nil
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
			g.H3(
				g.Class("text-lg font-light tracking-wide"),
				cmp.Text(card.Title),
			),
		))
	}

	return g.Section(
		g.Class("container mx-auto px-6 py-24 border-t border-white/10"),
		g.H2(
			g.Class("text-sm tracking-[0.2em] text-white/40 uppercase mb-12"),
			cmp.Text("Featured Work"),
		),
		g.Div(
			g.Class("grid grid-cols-1 md:grid-cols-2 gap-12"),
			cmp.Group(items),
		),
	)
}

func serviceTeaser(services []domain.ServicePackage) cmp.Node {
	if len(services) == 0 {
		return nil
	}

	items := make([]cmp.Node, 0, len(services))
	for _, svc := range services {
		items = append(items, g.Div(
			g.Class("p-8 border border-white/10 bg-white/[0.02]"),
			g.H3(
				g.Class("text-xl font-light tracking-wide mb-3"),
				cmp.Text(svc.Title),
			),
			g.P(
				g.Class("text-white/60 text-sm leading-relaxed"),
				cmp.Text(svc.Description),
			),
		))
	}

	return g.Section(
		g.Class("container mx-auto px-6 py-24 border-t border-white/10"),
		g.H2(
			g.Class("text-sm tracking-[0.2em] text-white/40 uppercase mb-12"),
			cmp.Text("Services"),
		),
		g.Div(
			g.Class("grid grid-cols-1 md:grid-cols-3 gap-8"),
			cmp.Group(items),
		),
		g.Div(
			g.Class("mt-12 text-center"),
			g.A(
				g.Href("/services"),
				g.Class("text-sm tracking-[0.1em] text-white/50 hover:text-white transition-colors uppercase"),
				cmp.Text("All Services"),
			),
		),
	)
}
