package pages

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/Isaiahshap/pulse/internal/models"
)

// MobileMenu is rendered only while open. The backdrop and the close button
// both link back to the bare page, which is the closed state.
func MobileMenu(path string, links []models.NavLink) g.Node {
	return h.Div(
		h.ID("mobile-menu"),
		g.Attr("role", "dialog"),
		h.Aria("modal", "true"),
		h.A(h.Class("menu-backdrop"), h.Href(path), h.Aria("label", "Close menu")),
		h.Div(
			h.Class("menu-panel"),
			h.A(h.Class("menu-close"), h.Href(path), h.Aria("label", "Close menu"), g.Text("×")),
			h.Ul(
				g.Map(links, func(link models.NavLink) g.Node {
					return h.Li(h.A(h.Href(link.Path), g.Text(link.Label)))
				}),
			),
			h.A(h.Class("cta"), h.Href("/membership"), g.Text("Join Now")),
		),
	)
}
