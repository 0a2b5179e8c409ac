package pages

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Modal wraps the single detail overlay a page may show. closeHref is the page
// without the selection parameter.
func Modal(id, title, closeHref string, body ...g.Node) g.Node {
	return h.Div(
		h.ID(id),
		h.Class("modal"),
		g.Attr("role", "dialog"),
		h.Aria("modal", "true"),
		h.Aria("label", title),
		h.A(h.Class("modal-backdrop"), h.Href(closeHref), h.Aria("label", "Close")),
		h.Div(
			h.Class("modal-body"),
			h.A(h.Class("modal-close"), h.Href(closeHref), h.Aria("label", "Close"), g.Text("×")),
			g.Group(body),
		),
	)
}

func bulletList(items []string) g.Node {
	return h.Ul(g.Map(items, func(item string) g.Node {
		return h.Li(g.Text(item))
	}))
}

// firstN returns at most n leading items.
func firstN(items []string, n int) []string {
	if len(items) <= n {
		return items
	}
	return items[:n]
}
