package pages

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

func Privacy(cfg PageConfig) g.Node {
	return Layout(cfg,
		h.Section(
			h.Class("page-header"),
			h.H1(g.Text("Privacy Policy")),
		),
		h.Section(
			h.Class("disclaimer"),
			h.H2(g.Text("Demo Site Disclaimer")),
			h.P(g.Text("This is a demonstration website for a fictional gym.")),
		),
		h.Section(
			h.H2(g.Text("Demo Privacy Policy")),
			h.P(g.Text("This is a demonstration website. Messages sent through the contact form are kept only so our staff can reply to them and are never shared.")),
			h.H3(g.Text("Demo Purposes Only")),
			h.P(g.Text("This privacy policy is for demonstration purposes only. In a real implementation, this section would contain detailed information about data collection, usage, and protection practices.")),
		),
	)
}
