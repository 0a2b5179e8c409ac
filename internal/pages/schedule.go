package pages

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/Isaiahshap/pulse/internal/models"
)

type ScheduleData struct {
	Days     []string
	Selected string
	Day      models.DaySchedule
}

func Schedule(cfg PageConfig, data ScheduleData) g.Node {
	return Layout(cfg,
		h.Section(
			h.Class("page-header"),
			h.H1(g.Text("Class "), h.Span(g.Text("Schedule"))),
		),
		h.Div(
			h.Class("day-selector"),
			g.Attr("role", "group"),
			h.Aria("label", "Day"),
			g.Map(data.Days, func(day string) g.Node {
				return h.A(
					h.Href(withQuery("/schedule", "day", day)),
					h.Aria("pressed", boolAttr(day == data.Selected)),
					g.Text(day),
				)
			}),
		),
		h.Section(
			h.Class("slots"),
			g.Attr("data-day", data.Day.Day),
			g.Map(data.Day.Slots, slotColumn),
		),
		h.Section(
			h.Class("cta-band"),
			h.H2(g.Text("Join the Movement")),
			h.A(h.Href("/membership"), g.Text("View Memberships")),
		),
	)
}

func slotColumn(slot models.SlotSchedule) g.Node {
	return h.Div(
		h.Class("slot"),
		g.Attr("data-slot", slot.Slot),
		h.H2(g.Text(slot.Slot)),
		g.If(len(slot.Classes) == 0, h.P(h.Class("empty"), g.Text("No classes scheduled"))),
		g.Map(slot.Classes, func(class models.ScheduleClass) g.Node {
			return h.Article(
				h.Class("schedule-class"),
				h.P(h.Class("time"), g.Text(class.Time)),
				h.H3(g.Text(class.Name)),
				h.P(g.Text(class.Trainer)),
				h.P(h.Class("meta"), g.Text(class.Duration+" · "+class.Level)),
			)
		}),
	)
}
