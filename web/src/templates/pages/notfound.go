package pages

import (
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
)

// NotFound renders the designed 404 page. A missing project slug lands here
// with a tailored message; every other unroutable path gets the default.
func NotFound(message string) cmp.Node {
	if message == "" {
		message = "The page you are looking for does not exist or has moved."
	}

	return g.Div(
		g.Class("pt-24 pb-16 bg-black min-h-screen flex items-center"),
		g.Div(
			g.Class("container mx-auto px-6 text-center"),
			g.P(
				g.Class("text-7xl font-light text-amber-400 mb-6"),
				cmp.Text("404"),
			),
			g.H1(
				g.Class("text-2xl font-light tracking-[0.15em] uppercase mb-4"),
				cmp.Text("Not Found"),
			),
			g.P(
				g.Class("text-white/50 max-w-md mx-auto mb-10"),
				cmp.Text(message),
			),
			g.A(
				g.Href("/"),
				g.Class("px-8 py-3 border border-white/30 text-sm tracking-[0.15em] uppercase hover:bg-white hover:text-black transition-colors"),
				cmp.Text("Back Home"),
			),
		),
	)
}
