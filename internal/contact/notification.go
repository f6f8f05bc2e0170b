package contact

import (
	"strings"

	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
)

// notificationBody renders the HTML notification email. Field values are
// user input; gomponents escapes them on render.
func notificationBody(sub Submission) string {
	node := g.Div(
		g.Style("font-family: sans-serif; max-width: 600px; margin: 0 auto; padding: 20px; border: 1px solid #eee; border-radius: 10px;"),
		g.H2(
			g.Style("color: #0d2137; border-bottom: 2px solid #fbbf24; padding-bottom: 10px;"),
			cmp.Text("New Contact Form Submission"),
		),
		g.Div(
			g.Style("margin: 20px 0;"),
			fieldLine("Name", sub.Name),
			fieldLine("Email", sub.Email),
			fieldLine("Service Type", sub.ServiceType),
		),
		g.Div(
			g.Style("background: #f9f9f9; padding: 15px; border-radius: 5px; margin-top: 20px;"),
			g.P(g.Strong(cmp.Text("Message:"))),
			g.P(
				g.Style("white-space: pre-wrap;"),
				cmp.Text(sub.Message),
			),
		),
		g.Hr(g.Style("margin-top: 30px; border: 0; border-top: 1px solid #eee;")),
		g.P(
			g.Style("font-size: 12px; color: #666; text-align: center;"),
			cmp.Text("Sent from Bruce Odhiambo's Construction Manager Portfolio"),
		),
	)

	var sb strings.Builder
	if err := node.Render(&sb); err != nil {
		// Rendering to a strings.Builder cannot fail in practice; fall back
		// to an empty body rather than blocking the dispatch.
		return ""
	}
	return sb.String()
}

func fieldLine(label, value string) cmp.Node {
	return g.P(
		g.Strong(cmp.Text(label+":")),
		cmp.Text(" "+value),
	)
}
