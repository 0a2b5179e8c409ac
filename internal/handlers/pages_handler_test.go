package handlers

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Isaiahshap/pulse/internal/catalog"
	"github.com/Isaiahshap/pulse/internal/models"
	"github.com/Isaiahshap/pulse/internal/services"
)

func newPagesApp(contact contactService, now func() time.Time) *fiber.App {
	site := catalog.Default()
	handler := NewPagesHandler(site, services.NewPricingService(site), services.NewScheduleService(site), contact)
	if now != nil {
		handler.now = now
	}

	app := fiber.New()
	app.Get("/", handler.Home)
	app.Get("/classes", handler.Classes)
	app.Get("/trainers", handler.Trainers)
	app.Get("/membership", handler.Membership)
	app.Get("/schedule", handler.Schedule)
	app.Get("/contact", handler.Contact)
	app.Post("/contact", handler.SubmitContact)
	app.Get("/privacy", handler.Privacy)
	return app
}

func fetchPage(t *testing.T, app *fiber.App, req *http.Request) (int, string) {
	t.Helper()

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	if got := resp.Header.Get(fiber.HeaderContentType); resp.StatusCode < 500 && !strings.HasPrefix(got, "text/html") {
		t.Fatalf("expected html content type, got %q", got)
	}
	return resp.StatusCode, string(body)
}

func getPage(t *testing.T, app *fiber.App, target string) (int, string) {
	t.Helper()
	return fetchPage(t, app, httptest.NewRequest(http.MethodGet, target, nil))
}

func TestHomePageRendersMenuAndHero(t *testing.T) {
	app := newPagesApp(&stubContactService{}, nil)

	status, html := getPage(t, app, "/")
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	if strings.Contains(html, `id="mobile-menu"`) {
		t.Fatalf("expected menu closed by default")
	}
	if !strings.Contains(html, `data-scroll-state="top"`) {
		t.Fatalf("expected navbar at top state")
	}

	_, html = getPage(t, app, "/?menu=open&y=120")
	if !strings.Contains(html, `id="mobile-menu"`) {
		t.Fatalf("expected open mobile menu")
	}
	if !strings.Contains(html, `data-scroll-state="scrolled"`) {
		t.Fatalf("expected scrolled navbar state")
	}
}

func TestClassesPageOpensOverlay(t *testing.T) {
	app := newPagesApp(&stubContactService{}, nil)

	_, html := getPage(t, app, "/classes?class=boxing")
	if strings.Count(html, `id="class-modal"`) != 1 {
		t.Fatalf("expected exactly one class modal")
	}

	_, html = getPage(t, app, "/classes?class=zumba")
	if strings.Contains(html, `id="class-modal"`) {
		t.Fatalf("expected unknown class to leave the overlay closed")
	}

	_, html = getPage(t, app, "/classes?category=Recovery")
	if !strings.Contains(html, "No classes in this category yet.") {
		t.Fatalf("expected empty category notice")
	}
}

func TestTrainersPageReportsLoader(t *testing.T) {
	app := newPagesApp(&stubContactService{}, nil)

	_, html := getPage(t, app, "/trainers?trainer=2")
	if !strings.Contains(html, `aria-busy="true"`) {
		t.Fatalf("expected trainers grid to start busy")
	}
	if !strings.Contains(html, `id="trainer-modal"`) || !strings.Contains(html, "Marcus Chen") {
		t.Fatalf("expected trainer modal for Marcus Chen")
	}
}

func TestMembershipPageYearly(t *testing.T) {
	app := newPagesApp(&stubContactService{}, nil)

	_, html := getPage(t, app, "/membership?period=yearly")
	for _, want := range []string{"$1,400", "Save $388 per year", `aria-pressed="true"`} {
		if !strings.Contains(html, want) {
			t.Fatalf("expected %q in membership page", want)
		}
	}
}

func TestSchedulePageSelectsDay(t *testing.T) {
	app := newPagesApp(&stubContactService{}, nil)

	_, html := getPage(t, app, "/schedule")
	if !strings.Contains(html, `data-day="Monday"`) {
		t.Fatalf("expected Monday by default")
	}

	_, html = getPage(t, app, "/schedule?day=Sunday")
	if !strings.Contains(html, `data-day="Sunday"`) || !strings.Contains(html, "Open Gym") {
		t.Fatalf("expected Sunday schedule with Open Gym")
	}

	for _, target := range []string{"/schedule?day=Funday", "/schedule?day="} {
		_, html = getPage(t, app, target)
		if got := strings.Count(html, "No classes scheduled"); got != 3 {
			t.Fatalf("%s: expected 3 empty slots, got %d", target, got)
		}
		if strings.Contains(html, `data-day="Monday"`) || strings.Contains(html, `?day=Monday" aria-pressed="true"`) {
			t.Fatalf("%s: expected no day selected", target)
		}
	}
}

func postContactForm(t *testing.T, app *fiber.App, values url.Values) (int, string) {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", fiber.MIMEApplicationForm)
	return fetchPage(t, app, req)
}

func TestSubmitContactFormConfirms(t *testing.T) {
	service := &stubContactService{submitResult: &models.ContactMessage{ID: "msg-1"}}
	app := newPagesApp(service, nil)

	status, html := postContactForm(t, app, url.Values{
		"name":    {"Jordan"},
		"email":   {"jordan@example.com"},
		"subject": {"membership"},
		"message": {"Do you offer student rates?"},
	})
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	if !strings.Contains(html, "Your message has been sent") {
		t.Fatalf("expected confirmation text")
	}
	if service.lastInput.Subject != string(models.SubjectMembership) {
		t.Fatalf("expected membership subject, got %q", service.lastInput.Subject)
	}
}

func TestSubmitContactFormShowsErrors(t *testing.T) {
	service := &stubContactService{
		submitErr: &services.ContactValidationError{Fields: map[string]string{"name": "required"}},
	}
	app := newPagesApp(service, nil)

	status, html := postContactForm(t, app, url.Values{"email": {"jordan@example.com"}})
	if status != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", status)
	}
	if !strings.Contains(html, `aria-invalid="true" data-error="required"`) {
		t.Fatalf("expected name field flagged")
	}
	if !strings.Contains(html, `value="jordan@example.com"`) {
		t.Fatalf("expected submitted email to be kept")
	}
}
