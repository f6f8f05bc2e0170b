package partials

import (
	"github.com/fikanova/portfolio/internal/view"
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
)

// Flash renders session flash messages below the header. Renders nothing
// when there are none.
func Flash(flash view.FlashData) cmp.Node {
	if len(flash.Success) == 0 && len(flash.Error) == 0 {
		return nil
	}

	var blocks []cmp.Node
	for _, msg := range flash.Success {
		blocks = append(blocks, g.Div(
			g.Class("border border-green-500/40 bg-green-500/10 text-green-300 px-4 py-3 text-sm"),
			cmp.Text(msg),
		))
	}
	for _, msg := range flash.Error {
		blocks = append(blocks, g.Div(
			g.Class("border border-red-500/40 bg-red-500/10 text-red-300 px-4 py-3 text-sm"),
			cmp.Text(msg),
		))
	}

	return g.Div(
		g.Class("container mx-auto px-6 pt-20 space-y-2"),
		cmp.Group(blocks),
	)
}
