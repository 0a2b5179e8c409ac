package pages

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/Isaiahshap/pulse/internal/viewstate"
)

func Home(cfg PageConfig, hero viewstate.Clip) g.Node {
	return Layout(cfg,
		Hero(hero),
		h.Section(
			h.Class("welcome"),
			h.H2(g.Text("Welcome to Pulse")),
			h.P(g.Text("Unlock the power of your body and mind in our state-of-the-art facility, where world-class trainers and top-tier equipment meet a vibrant community of fitness enthusiasts.")),
			h.P(g.Text("Whether you're a seasoned athlete or a complete beginner, our classes cater to all fitness levels, ensuring that everyone has the opportunity to discover their true potential.")),
		),
	)
}
