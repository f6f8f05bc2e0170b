package pages

import (
	"github.com/fikanova/portfolio/internal/domain"
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
)

// ProjectDetailData feeds a single case-study page. Image URLs are resolved
// ahead of time so the template stays free of store concerns.
type ProjectDetailData struct {
	Project     domain.Project
	CoverURL    string
	GalleryURLs []string
}

// ProjectDetail renders one case study: cover, facts, narrative sections,
// impact list and gallery.
func ProjectDetail(data ProjectDetailData) cmp.Node {
	p := data.Project

	return g.Div(
		g.Class("pt-24 pb-16 bg-black min-h-screen"),
		g.Div(
			g.Class("container mx-auto px-6 py-16 max-w-4xl"),
			g.A(
				g.Href("/projects"),
				g.Class("text-sm tracking-[0.1em] text-white/40 hover:text-white uppercase transition-colors"),
				cmp.Text("Back to Projects"),
			),
			g.P(
				g.Class("text-xs tracking-[0.2em] text-amber-400 uppercase mt-10 mb-2"),
				cmp.Text(domain.CategoryTitle(p.Category)),
			),
			g.H1(
				g.Class("text-4xl font-light tracking-wide mb-8"),
				cmp.Text(p.Title),
			),
			projectCover(data.CoverURL, p.Title),
			projectFacts(p),
			projectNarrative(p),
			projectImpact(p.Impact),
			projectGallery(data.GalleryURLs, p.Title),
			projectLink(p.ProjectLink),
		),
	)
}

func projectCover(url, alt string) cmp.Node {
	if url == "" {
		return nil
	}
	return g.Div(
		g.Class("aspect-video overflow-hidden bg-white/5 border border-white/10 mb-12"),
		g.Img(
			g.Src(url),
			g.Alt(alt),
			g.Class("w-full h-full object-cover"),
		),
	)
}

func projectFacts(p domain.Project) cmp.Node {
	fact := func(label, value string) cmp.Node {
		if value == "" {
			return nil
		}
		return g.Div(
			g.P(
				g.Class("text-xs tracking-[0.2em] text-white/40 uppercase mb-1"),
				cmp.Text(label),
			),
			g.P(
				g.Class("text-white/80"),
				cmp.Text(value),
			),
		)
	}

	return g.Div(
		g.Class("grid grid-cols-2 md:grid-cols-4 gap-8 mb-16 pb-16 border-b border-white/10"),
		fact("Client", p.ClientName),
		fact("Date", p.ProjectDate),
		fact("Role", p.Role),
		fact("Category", domain.CategoryTitle(p.Category)),
	)
}

func projectNarrative(p domain.Project) cmp.Node {
	var sections []cmp.Node

	if paras := domain.Paragraphs(p.Description); len(paras) > 0 {
		body := make([]cmp.Node, 0, len(paras)+1)
		body = append(body, sectionHeading("Overview"))
		for _, text := range paras {
			body = append(body, g.P(
				g.Class("text-white/70 leading-relaxed mb-4"),
				cmp.Text(text),
			))
		}
		sections = append(sections, g.Section(g.Class("mb-12"), cmp.Group(body)))
	}

	if p.Challenge != "" {
		sections = append(sections, g.Section(
			g.Class("mb-12"),
			sectionHeading("Challenge"),
			g.P(g.Class("text-white/70 leading-relaxed"), cmp.Text(p.Challenge)),
		))
	}

	if p.Solution != "" {
		sections = append(sections, g.Section(
			g.Class("mb-12"),
			sectionHeading("Solution"),
			g.P(g.Class("text-white/70 leading-relaxed"), cmp.Text(p.Solution)),
		))
	}

	return cmp.Group(sections)
}

func projectImpact(impact []string) cmp.Node {
	if len(impact) == 0 {
		return nil
	}

	items := make([]cmp.Node, 0, len(impact))
	for _, line := range impact {
		items = append(items, g.Li(
			g.Class("border-l-2 border-amber-400/40 pl-4 text-white/70"),
			cmp.Text(line),
		))
	}

	return g.Section(
		g.Class("mb-12"),
		sectionHeading("Impact"),
		g.Ul(g.Class("space-y-3"), cmp.Group(items)),
	)
}

func projectGallery(urls []string, alt string) cmp.Node {
	if len(urls) == 0 {
		return nil
	}

	items := make([]cmp.Node, 0, len(urls))
	for _, url := range urls {
		items = append(items, g.Div(
			g.Class("aspect-video overflow-hidden bg-white/5 border border-white/10"),
			g.Img(
				g.Src(url),
				g.Alt(alt),
				g.Class("w-full h-full object-cover"),
				g.Loading("lazy"),
			),
		))
	}

	return g.Section(
		g.Class("mb-12"),
		sectionHeading("Gallery"),
		g.Div(g.Class("grid grid-cols-1 md:grid-cols-2 gap-6"), cmp.Group(items)),
	)
}

func projectLink(url string) cmp.Node {
	if url == "" {
		return nil
	}
	return g.A(
		g.Href(url),
		g.Target("_blank"),
		g.Rel("noopener noreferrer"),
		g.Class("inline-block px-8 py-3 border border-amber-400 text-amber-400 text-sm tracking-[0.15em] uppercase hover:bg-amber-400 hover:text-black transition-colors"),
		cmp.Text("Visit Project"),
	)
}
