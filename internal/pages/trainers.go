package pages

import (
	"strconv"
	"time"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/Isaiahshap/pulse/internal/models"
)

type TrainersData struct {
	Trainers  []models.Trainer
	Selected  *models.Trainer
	Loading   bool
	Remaining time.Duration
}

func Trainers(cfg PageConfig, data TrainersData) g.Node {
	return Layout(cfg,
		h.Section(
			h.Class("page-header"),
			h.H1(g.Text("Elite "), h.Span(g.Text("Trainers"))),
			h.P(g.Text("Train with the best. Our world-class coaches bring decades of experience and proven results to every session.")),
		),
		h.Section(
			h.Class("trainer-grid"),
			h.Aria("busy", boolAttr(data.Loading)),
			g.Attr("data-ready-in-ms", strconv.FormatInt(data.Remaining.Milliseconds(), 10)),
			g.Map(data.Trainers, trainerCard),
		),
		h.Section(
			h.Class("cta-band"),
			h.H2(g.Text("Start Your Journey")),
			h.A(h.Href("/membership"), g.Text("View Memberships")),
		),
		selectedTrainerModal(data.Selected),
	)
}

func trainerCard(trainer models.Trainer) g.Node {
	return h.Article(
		h.Class("trainer-card"),
		g.Attr("data-trainer-id", strconv.Itoa(trainer.ID)),
		h.Img(h.Src(trainer.Image), h.Alt(trainer.Name), g.Attr("loading", "lazy")),
		h.H3(g.Text(trainer.Name)),
		h.P(h.Class("specialty"), g.Text(trainer.Specialty)),
		h.P(h.Class("experience"), g.Text(trainer.Experience)),
		h.A(h.Href(withQuery("/trainers", "trainer", strconv.Itoa(trainer.ID))), g.Text("View Profile")),
	)
}

func selectedTrainerModal(trainer *models.Trainer) g.Node {
	if trainer == nil {
		return g.Group{}
	}
	return Modal("trainer-modal", trainer.Name, "/trainers",
		h.Img(h.Src(trainer.Image), h.Alt(trainer.Name)),
		h.H2(g.Text(trainer.Name)),
		h.P(h.Class("specialty"), g.Text(trainer.Specialty+" · "+trainer.Experience)),
		h.P(g.Text(trainer.Bio)),
		h.H3(g.Text("Certifications")),
		bulletList(trainer.Certifications),
		h.H3(g.Text("Schedule")),
		bulletList(trainer.Schedule),
		h.H3(g.Text("Achievements")),
		bulletList(trainer.Achievements),
		h.P(h.Class("instagram"), g.Text(trainer.Instagram)),
	)
}
