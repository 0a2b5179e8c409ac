package pages

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/Isaiahshap/pulse/internal/models"
)

func Navbar(cfg PageConfig) g.Node {
	state := "top"
	if cfg.Scrolled {
		state = "scrolled"
	}

	return h.Nav(
		h.Class("navbar"),
		g.Attr("data-scroll-state", state),
		g.Attr("data-scroll-threshold", "50"),
		h.A(h.Class("brand"), h.Href("/"), g.Text("Pulse"), h.Span(h.Class("brand-dot"), g.Text("."))),
		h.Div(
			h.Class("nav-links"),
			g.Map(cfg.NavLinks, func(link models.NavLink) g.Node {
				return navLink(link.Path, link.Label, cfg.Path == link.Path)
			}),
		),
		h.A(h.Class("cta"), h.Href("/membership"), g.Text("Join Now")),
		h.A(
			h.Class("menu-toggle"),
			h.Href(withQuery(cfg.Path, "menu", "open")),
			h.Aria("label", "Open menu"),
			h.Aria("expanded", boolAttr(cfg.MenuOpen)),
			g.Text("Menu"),
		),
	)
}

func navLink(path, label string, active bool) g.Node {
	return h.A(
		h.Href(path),
		g.If(active, h.Aria("current", "page")),
		g.Text(label),
	)
}

func boolAttr(v bool) string {
	if v {
		return "true"
	}
	return "false"
}
