package pages

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/Isaiahshap/pulse/internal/models"
)

// PageConfig carries what every page shares: the chrome around the content.
type PageConfig struct {
	Title       string
	Path        string
	MenuOpen    bool
	Scrolled    bool
	Info        models.GymInfo
	NavLinks    []models.NavLink
	MobileLinks []models.NavLink
	FooterLinks []models.NavLink
}

func Layout(cfg PageConfig, content ...g.Node) g.Node {
	title := cfg.Info.Name
	if cfg.Title != "" {
		title = cfg.Title + " | " + cfg.Info.Name
	}

	return h.Doctype(
		h.HTML(
			h.Lang("en"),
			h.Head(
				h.Meta(h.Charset("utf-8")),
				h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1")),
				g.El("title", g.Text(title)),
			),
			h.Body(
				Navbar(cfg),
				g.If(cfg.MenuOpen, MobileMenu(cfg.Path, cfg.MobileLinks)),
				h.Main(h.ID("content"), g.Group(content)),
				Footer(cfg.Info, cfg.FooterLinks),
			),
		),
	)
}

// withQuery appends one query parameter to path.
func withQuery(path, key, value string) string {
	return path + "?" + key + "=" + value
}
