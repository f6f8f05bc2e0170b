package pages

import (
	"strings"

	"github.com/fikanova/portfolio/internal/domain"
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
)

// AboutData feeds the about page. PortraitURL is pre-resolved by the
// handler so a missing asset falls back to the bundled headshot.
type AboutData struct {
	Profile     domain.Profile
	PortraitURL string
	CVURL       string
}

// About renders the profile page: portrait, bio, skills, hobbies,
// education and social links.
func About(data AboutData) cmp.Node {
	return g.Div(
		g.Class("pt-24 pb-16 bg-black min-h-screen"),
		g.Div(
			g.Class("container mx-auto px-6 py-16"),
			g.Div(
				g.Class("grid grid-cols-1 lg:grid-cols-3 gap-16"),
				aboutPortrait(data),
				g.Div(
					g.Class("lg:col-span-2 space-y-16"),
					aboutBio(data.Profile),
					aboutSkills(data.Profile.Skills),
					aboutHobbies(data.Profile.Hobbies),
					aboutEducation(data.Profile.Education),
				),
			),
		),
	)
}

func aboutPortrait(data AboutData) cmp.Node {
	nodes := []cmp.Node{
		g.Div(
			g.Class("aspect-[3/4] overflow-hidden bg-white/5 border border-white/10 mb-8"),
			g.Img(
				g.Src(data.PortraitURL),
				g.Alt(data.Profile.Name),
				g.Class("w-full h-full object-cover"),
			),
		),
		g.H1(
			g.Class("text-2xl font-light tracking-[0.15em] uppercase mb-2"),
			cmp.Text(data.Profile.Name),
		),
		g.P(
			g.Class("text-amber-400 text-sm tracking-wide mb-6"),
			cmp.Text(data.Profile.Title),
		),
	}

	if data.CVURL != "" {
		nodes = append(nodes, g.A(
			g.Href(data.CVURL),
			g.Class("inline-block px-6 py-2 border border-amber-400 text-amber-400 text-sm tracking-[0.15em] uppercase hover:bg-amber-400 hover:text-black transition-colors mb-8"),
			cmp.Text("Download CV"),
		))
	}

	nodes = append(nodes, aboutSocials(data.Profile.SocialLinks))

	return g.Div(cmp.Group(nodes))
}

func aboutSocials(links []domain.SocialLink) cmp.Node {
	if len(links) == 0 {
		return nil
	}

	items := make([]cmp.Node, 0, len(links))
	for _, link := range links {
		items = append(items, g.Li(
			g.A(
				g.Href(link.URL),
				g.Target("_blank"),
				g.Rel("noopener noreferrer"),
				g.Class("text-white/50 hover:text-white text-sm tracking-wide transition-colors"),
				cmp.Text(link.Platform),
			),
		))
	}

	return g.Ul(
		g.Class("flex flex-wrap gap-4"),
		cmp.Group(items),
	)
}

func aboutBio(profile domain.Profile) cmp.Node {
	var interests cmp.Node
	if len(profile.Interests) == 0 {
		interests = nil
	} else {
		interests = g.P(
			g.Class("text-white/40 text-sm tracking-wide mt-6"),
			cmp.Text(strings.Join(profile.Interests, " / ")),
		)
	}

	return g.Section(
		sectionHeading("About"),
		g.P(
			g.Class("text-white/70 leading-relaxed whitespace-pre-line"),
			cmp.Text(profile.Bio),
		),
		interests,
	)
}

func aboutSkills(skills []string) cmp.Node {
	if len(skills) == 0 {
		return nil
	}

	items := make([]cmp.Node, 0, len(skills))
	for _, skill := range skills {
		items = append(items, g.Li(
			g.Class("px-4 py-2 border border-white/15 text-sm text-white/70"),
			cmp.Text(skill),
		))
	}

	return g.Section(
		sectionHeading("Skills"),
		g.Ul(
			g.Class("flex flex-wrap gap-3"),
			cmp.Group(items),
		),
	)
}

func aboutHobbies(hobbies []domain.Hobby) cmp.Node {
	if len(hobbies) == 0 {
		return nil
	}

	items := make([]cmp.Node, 0, len(hobbies))
	for _, hobby := range hobbies {
		items = append(items, g.Div(
			g.Class("p-6 border border-white/10 bg-white/[0.02]"),
			g.H3(
				g.Class("font-light tracking-wide mb-2"),
				cmp.Text(hobby.Name),
			),
			g.P(
				g.Class("text-white/50 text-sm leading-relaxed"),
				cmp.Text(hobby.Description),
			),
		))
	}

	return g.Section(
		sectionHeading("Beyond Work"),
		g.Div(
			g.Class("grid grid-cols-1 md:grid-cols-2 gap-6"),
			cmp.Group(items),
		),
	)
}

func aboutEducation(entries []domain.Education) cmp.Node {
	if len(entries) == 0 {
		return nil
	}

	items := make([]cmp.Node, 0, len(entries))
	for _, entry := range entries {
		items = append(items, g.Div(
			g.Class("border-l-2 border-amber-400/40 pl-6"),
			g.H3(
				g.Class("font-light tracking-wide"),
				cmp.Text(entry.Degree),
			),
			g.P(
				g.Class("text-white/50 text-sm"),
				cmp.Text(entry.Institution),
			),
			g.P(
				g.Class("text-white/30 text-xs tracking-wide"),
				cmp.Text(entry.Period),
			),
		))
	}

	return g.Section(
		sectionHeading("Education"),
		g.Div(
			g.Class("space-y-6"),
			cmp.Group(items),
		),
	)
}

func sectionHeading(title string) cmp.Node {
	return g.H2(
		g.Class("text-sm tracking-[0.2em] text-white/40 uppercase mb-8"),
		cmp.Text(title),
	)
}
