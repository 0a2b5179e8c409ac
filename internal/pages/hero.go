package pages

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/Isaiahshap/pulse/internal/viewstate"
)

var heroClips = []struct {
	clip viewstate.Clip
	src  string
}{
	{clip: viewstate.ClipA, src: "/hero.mp4"},
	{clip: viewstate.ClipB, src: "/hero2.mp4"},
}

// Hero renders both background clips; only the active one is marked visible.
func Hero(active viewstate.Clip) g.Node {
	clips := make([]g.Node, 0, len(heroClips))
	for _, c := range heroClips {
		clips = append(clips, g.El("video",
			h.ID("hero-video-"+c.clip.String()),
			h.Class("hero-video"),
			g.Attr("data-clip", c.clip.String()),
			g.Attr("data-active", boolAttr(c.clip == active)),
			g.Attr("muted"),
			g.Attr("playsinline"),
			g.If(c.clip == active, g.Attr("autoplay")),
			g.El("source", g.Attr("src", c.src), g.Attr("type", "video/mp4")),
		))
	}

	return h.Section(
		h.Class("hero"),
		h.Div(h.Class("hero-media"), g.Group(clips)),
		h.Div(
			h.Class("hero-copy"),
			h.H1(g.Text("Push Your "), h.Span(g.Text("Limits"))),
			h.P(g.Text("Experience luxury fitness with cutting-edge equipment and elite personal training. Your journey to excellence begins here.")),
			h.Div(
				h.Class("hero-actions"),
				h.A(h.Href("/membership"), g.Text("Start Now")),
				h.A(h.Href("/schedule"), g.Text("View Schedule")),
			),
		),
	)
}
