package pages

import (
	"net/url"
	"strconv"
	"strings"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/Isaiahshap/pulse/internal/models"
)

type ClassesData struct {
	Categories []models.CategoryAudit
	Featured   []models.FeaturedCategory
	Classes    []models.ClassOffering
	Category   string
	Selected   *models.ClassOffering
}

func Classes(cfg PageConfig, data ClassesData) g.Node {
	return Layout(cfg,
		h.Section(
			h.Class("page-header"),
			h.H1(g.Text("Elite Training")),
			h.P(g.Text("Our signature programs combine cutting-edge training methodologies with personalized coaching, ensuring maximum results for every member.")),
		),
		h.Section(
			h.Class("categories"),
			g.Map(data.Categories, func(category models.CategoryAudit) g.Node {
				return categoryButton(category, data.Category)
			}),
		),
		h.Section(
			h.Class("featured"),
			g.Map(data.Featured, featuredCard),
		),
		h.Section(
			h.Class("class-grid"),
			g.If(len(data.Classes) == 0, h.P(h.Class("empty"), g.Text("No classes in this category yet."))),
			g.Map(data.Classes, func(class models.ClassOffering) g.Node {
				return classCard(class, data.Category)
			}),
		),
		selectedClassModal(data),
	)
}

func selectedClassModal(data ClassesData) g.Node {
	if data.Selected == nil {
		return g.Group{}
	}
	return classModal(*data.Selected, classesHref(data.Category))
}

func categoryButton(category models.CategoryAudit, active string) g.Node {
	isActive := strings.EqualFold(category.Name, active) || (active == "" && category.Name == "All Classes")
	href := "/classes"
	if category.Name != "All Classes" {
		href = withQuery(href, "category", url.QueryEscape(category.Name))
	}

	return h.A(
		h.Class("category"),
		h.Href(href),
		g.Attr("title", category.Tooltip),
		g.Attr("data-class-count", strconv.Itoa(category.ClassCount)),
		g.If(isActive, h.Aria("current", "true")),
		h.Span(g.Text(category.Name)),
		h.Span(h.Class("count"), g.Text(category.DisplayCount)),
	)
}

func featuredCard(featured models.FeaturedCategory) g.Node {
	return h.Article(
		h.Class("featured-card"),
		h.Img(h.Src(featured.Image), h.Alt(featured.Title)),
		h.H3(g.Text(featured.Title)),
		h.P(g.Text(featured.Description)),
		h.Ul(g.Map(featured.Stats, func(stat models.FeaturedStat) g.Node {
			return h.Li(h.Span(g.Text(stat.Label)), g.Text(" "), h.Strong(g.Text(stat.Value)))
		})),
	)
}

func classCard(class models.ClassOffering, category string) g.Node {
	href := withQuery("/classes", "class", class.Slug)
	if category != "" {
		href += "&category=" + url.QueryEscape(category)
	}

	return h.Article(
		h.Class("class-card"),
		g.Attr("data-slug", class.Slug),
		h.Img(h.Src(class.Image), h.Alt(class.Name)),
		h.H3(g.Text(class.Name)),
		h.P(g.Text(class.Description)),
		h.P(h.Class("meta"), g.Text(class.Duration+" · "+class.Level)),
		h.A(h.Href(href), g.Text("Learn More")),
	)
}

func classModal(class models.ClassOffering, closeHref string) g.Node {
	return Modal("class-modal", class.Name, closeHref,
		h.Img(h.Src(class.Image), h.Alt(class.Name)),
		h.H2(g.Text(class.Name)),
		h.P(g.Text(class.Description)),
		h.Dl(
			h.Dt(g.Text("Duration")), h.Dd(g.Text(class.Duration)),
			h.Dt(g.Text("Level")), h.Dd(g.Text(class.Level)),
		),
		h.H3(g.Text("Benefits")),
		bulletList(firstN(class.Benefits, 4)),
		h.H3(g.Text("Next Sessions")),
		bulletList(firstN(class.Schedule, 2)),
		h.H3(g.Text("Instructor")),
		h.P(g.Text(class.Trainer)),
		h.A(h.Class("cta"), h.Href("/schedule"), g.Text("Start Training")),
	)
}

func classesHref(category string) string {
	if category == "" {
		return "/classes"
	}
	return withQuery("/classes", "category", url.QueryEscape(category))
}
