package pages

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/Isaiahshap/pulse/internal/models"
)

func Footer(info models.GymInfo, links []models.NavLink) g.Node {
	return h.Footer(
		h.Class("footer"),
		h.Section(
			h.H3(g.Text(info.Name)),
			h.P(g.Text(info.Tagline)),
		),
		h.Section(
			h.H4(g.Text("Quick Links")),
			h.Ul(
				g.Map(links, func(link models.NavLink) g.Node {
					return h.Li(h.A(h.Href(link.Path), g.Text(link.Label)))
				}),
			),
		),
		h.Section(
			h.H4(g.Text("Contact")),
			contactDetails(info),
		),
		h.Section(
			h.H4(g.Text("Hours")),
			openingHours(info.Hours),
		),
		h.P(
			h.Class("legal"),
			g.Textf("© %s. All rights reserved. ", info.Name),
			h.A(h.Href("/privacy"), g.Text("Privacy Policy")),
		),
	)
}

func contactDetails(info models.GymInfo) g.Node {
	return h.Ul(
		h.Class("contact-details"),
		g.Map(info.AddressLines, func(line string) g.Node {
			return h.Li(g.Text(line))
		}),
		h.Li(h.A(h.Href("tel:"+info.Phone), g.Text(info.Phone))),
		h.Li(h.A(h.Href("mailto:"+info.Email), g.Text(info.Email))),
	)
}

func openingHours(hours []models.OpeningHours) g.Node {
	return h.Ul(
		h.Class("hours"),
		g.Map(hours, func(entry models.OpeningHours) g.Node {
			return h.Li(h.Span(g.Text(entry.Days)), g.Text(" "), h.Span(g.Text(entry.Hours)))
		}),
	)
}
