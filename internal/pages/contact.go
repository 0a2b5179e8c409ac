package pages

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/Isaiahshap/pulse/internal/models"
)

// ContactForm echoes submitted values back so a rejected form keeps its input.
type ContactForm struct {
	Name    string
	Email   string
	Phone   string
	Subject string
	Message string
	Errors  map[string]string
	Sent    bool
}

type subjectOption struct {
	value models.ContactSubject
	label string
}

var subjectOptions = []subjectOption{
	{models.SubjectGeneral, "General Inquiry"},
	{models.SubjectMembership, "Membership"},
	{models.SubjectTraining, "Personal Training"},
	{models.SubjectClasses, "Group Classes"},
}

func Contact(cfg PageConfig, form ContactForm) g.Node {
	return Layout(cfg,
		h.Section(
			h.Class("page-header"),
			h.H1(g.Text("Get In "), h.Span(g.Text("Touch"))),
		),
		h.Section(
			h.Class("contact-info"),
			h.P(g.Text("Ready to transform your fitness journey? Our team is here to answer your questions and help you get started.")),
			contactDetails(cfg.Info),
			openingHours(cfg.Info.Hours),
		),
		h.Section(
			h.Class("contact-form"),
			g.If(form.Sent, h.P(g.Attr("role", "status"), h.Class("sent"), g.Text("Thanks! Your message has been sent. We'll get back to you soon."))),
			g.If(len(form.Errors) > 0, h.P(g.Attr("role", "alert"), h.Class("errors"), g.Text("Please correct the highlighted fields."))),
			contactFormEl(form),
		),
		h.Section(
			h.Class("map"),
			g.El("iframe",
				g.Attr("src", cfg.Info.MapEmbedURL),
				g.Attr("title", "Gym location"),
				g.Attr("loading", "lazy"),
			),
		),
	)
}

func contactFormEl(form ContactForm) g.Node {
	subject := form.Subject
	if subject == "" {
		subject = string(models.SubjectGeneral)
	}

	return g.El("form",
		h.Method("post"),
		h.Action("/contact"),
		formField("name", "Name", "text", form.Name, form.Errors, true),
		formField("email", "Email", "email", form.Email, form.Errors, true),
		formField("phone", "Phone", "tel", form.Phone, form.Errors, false),
		h.Div(
			h.Class("field"),
			g.El("label", g.Attr("for", "subject"), g.Text("Subject")),
			h.Select(
				h.ID("subject"),
				h.Name("subject"),
				fieldInvalid("subject", form.Errors),
				g.Map(subjectOptions, func(option subjectOption) g.Node {
					return h.Option(
						h.Value(string(option.value)),
						g.If(string(option.value) == subject, h.Selected()),
						g.Text(option.label),
					)
				}),
			),
		),
		h.Div(
			h.Class("field"),
			g.El("label", g.Attr("for", "message"), g.Text("Message")),
			h.Textarea(
				h.ID("message"),
				h.Name("message"),
				g.Attr("rows", "6"),
				h.Required(),
				fieldInvalid("message", form.Errors),
				g.Text(form.Message),
			),
		),
		h.Button(h.Type("submit"), g.Text("Send Message")),
	)
}

func formField(name, label, inputType, value string, errs map[string]string, required bool) g.Node {
	return h.Div(
		h.Class("field"),
		g.El("label", g.Attr("for", name), g.Text(label)),
		h.Input(
			h.ID(name),
			h.Name(name),
			h.Type(inputType),
			h.Value(value),
			g.If(required, h.Required()),
			fieldInvalid(name, errs),
		),
	)
}

func fieldInvalid(name string, errs map[string]string) g.Node {
	if _, ok := errs[name]; !ok {
		return g.Group{}
	}
	return g.Group{h.Aria("invalid", "true"), g.Attr("data-error", errs[name])}
}
