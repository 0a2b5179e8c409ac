package handlers

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	g "maragu.dev/gomponents"

	"github.com/Isaiahshap/pulse/internal/models"
	"github.com/Isaiahshap/pulse/internal/pages"
	"github.com/Isaiahshap/pulse/internal/services"
	"github.com/Isaiahshap/pulse/internal/viewstate"
)

type siteCatalog interface {
	catalogReader
	Plans() []models.MembershipPlan
}

// PagesHandler renders the HTML site. Local page state comes from the query
// string and lives only for the request.
type PagesHandler struct {
	catalog  siteCatalog
	pricing  pricingService
	schedule scheduleService
	contact  contactService
	now      func() time.Time
}

func NewPagesHandler(catalog siteCatalog, pricing pricingService, schedule scheduleService, contact contactService) *PagesHandler {
	return &PagesHandler{
		catalog:  catalog,
		pricing:  pricing,
		schedule: schedule,
		contact:  contact,
		now:      time.Now,
	}
}

func (h *PagesHandler) Home(c *fiber.Ctx) error {
	state := h.pageState(c)
	defer state.Close()

	return renderPage(c, fiber.StatusOK, pages.Home(h.config(c, "", state), state.Hero.Active()))
}

func (h *PagesHandler) Classes(c *fiber.Ctx) error {
	state := h.pageState(c)
	defer state.Close()

	var overlay viewstate.Overlay[models.ClassOffering]
	if state.ClassSlug != "" {
		if class, ok := h.catalog.ClassBySlug(state.ClassSlug); ok {
			overlay.Show(class)
		}
	}

	data := pages.ClassesData{
		Categories: h.catalog.CategoryAudit(),
		Featured:   h.catalog.FeaturedCategories(),
		Classes:    h.catalog.ClassesByCategory(state.Category),
		Category:   state.Category,
	}
	if class, ok := overlay.Current(); ok {
		data.Selected = &class
	}

	return renderPage(c, fiber.StatusOK, pages.Classes(h.config(c, "Classes", state), data))
}

func (h *PagesHandler) Trainers(c *fiber.Ctx) error {
	state := h.pageState(c)
	defer state.Close()

	var overlay viewstate.Overlay[models.Trainer]
	if state.TrainerID > 0 {
		if trainer, ok := h.catalog.TrainerByID(state.TrainerID); ok {
			overlay.Show(trainer)
		}
	}

	loader := viewstate.NewLoader(viewstate.TrainersLoadDelay, h.now)
	data := pages.TrainersData{
		Trainers:  h.catalog.Trainers(),
		Loading:   loader.Loading(),
		Remaining: loader.Remaining(),
	}
	if trainer, ok := overlay.Current(); ok {
		data.Selected = &trainer
	}

	return renderPage(c, fiber.StatusOK, pages.Trainers(h.config(c, "Trainers", state), data))
}

func (h *PagesHandler) Membership(c *fiber.Ctx) error {
	state := h.pageState(c)
	defer state.Close()

	period := state.Pricing.Period()
	plans := h.catalog.Plans()
	views := make([]pages.PlanView, 0, len(plans))
	for _, plan := range plans {
		quote, err := h.pricing.QuoteByName(plan.Name, period)
		if err != nil {
			return mapCatalogError(c, err)
		}
		views = append(views, pages.PlanView{Plan: plan, Quote: *quote})
	}

	return renderPage(c, fiber.StatusOK, pages.Membership(h.config(c, "Membership", state), pages.MembershipData{
		Period: period,
		Plans:  views,
		FAQ:    h.catalog.FAQ(),
	}))
}

func (h *PagesHandler) Schedule(c *fiber.Ctx) error {
	state := h.pageState(c)
	defer state.Close()

	// A day outside the week renders an empty schedule with nothing pressed;
	// only an absent day falls back to Monday.
	day := state.Days.Day()
	if c.Context().QueryArgs().Has("day") {
		day = strings.TrimSpace(c.Query("day"))
	}
	return renderPage(c, fiber.StatusOK, pages.Schedule(h.config(c, "Schedule", state), pages.ScheduleData{
		Days:     h.schedule.Days(),
		Selected: day,
		Day:      h.schedule.Day(day),
	}))
}

func (h *PagesHandler) Contact(c *fiber.Ctx) error {
	state := h.pageState(c)
	defer state.Close()

	return renderPage(c, fiber.StatusOK, pages.Contact(h.config(c, "Contact", state), pages.ContactForm{}))
}

// SubmitContact handles the plain HTML form post and re-renders the page with
// either a confirmation or the rejected fields.
func (h *PagesHandler) SubmitContact(c *fiber.Ctx) error {
	state := h.pageState(c)
	defer state.Close()
	cfg := h.config(c, "Contact", state)

	var input services.ContactInput
	if err := c.BodyParser(&input); err != nil {
		return renderPage(c, fiber.StatusBadRequest, pages.Contact(cfg, pages.ContactForm{
			Errors: map[string]string{"form": "invalid"},
		}))
	}

	form := pages.ContactForm{
		Name:    input.Name,
		Email:   input.Email,
		Phone:   input.Phone,
		Subject: input.Subject,
		Message: input.Message,
	}

	if _, err := h.contact.Submit(c.UserContext(), input); err != nil {
		var validationErr *services.ContactValidationError
		if errors.As(err, &validationErr) {
			form.Errors = validationErr.Fields
			return renderPage(c, fiber.StatusBadRequest, pages.Contact(cfg, form))
		}
		return c.Status(fiber.StatusInternalServerError).SendString("Failed to send message")
	}

	return renderPage(c, fiber.StatusOK, pages.Contact(cfg, pages.ContactForm{Sent: true}))
}

func (h *PagesHandler) Privacy(c *fiber.Ctx) error {
	state := h.pageState(c)
	defer state.Close()

	return renderPage(c, fiber.StatusOK, pages.Privacy(h.config(c, "Privacy Policy", state)))
}

func (h *PagesHandler) pageState(c *fiber.Ctx) *viewstate.PageState {
	return viewstate.FromQuery(func(key string) string { return c.Query(key) })
}

func (h *PagesHandler) config(c *fiber.Ctx, title string, state *viewstate.PageState) pages.PageConfig {
	path := strings.TrimSuffix(c.Path(), "/")
	if path == "" {
		path = "/"
	}

	return pages.PageConfig{
		Title:       title,
		Path:        path,
		MenuOpen:    state.Menu.IsOpen(),
		Scrolled:    state.Scroll.Scrolled(),
		Info:        h.catalog.GymInfo(),
		NavLinks:    h.catalog.NavLinks(),
		MobileLinks: h.catalog.MobileMenuLinks(),
		FooterLinks: h.catalog.FooterLinks(),
	}
}

func renderPage(c *fiber.Ctx, status int, node g.Node) error {
	c.Status(status)
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return node.Render(c)
}
