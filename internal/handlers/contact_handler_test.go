package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Isaiahshap/pulse/internal/models"
	"github.com/Isaiahshap/pulse/internal/services"
)

type stubContactService struct {
	submitResult *models.ContactMessage
	submitErr    error
	getResult    *models.ContactMessage
	getErr       error
	listResult   []models.ContactMessage
	listTotal    int
	listErr      error
	lastInput    services.ContactInput
	lastPage     int
	lastLimit    int
	lastID       string
}

func (s *stubContactService) Submit(_ context.Context, input services.ContactInput) (*models.ContactMessage, error) {
	s.lastInput = input
	return s.submitResult, s.submitErr
}

func (s *stubContactService) Get(_ context.Context, id string) (*models.ContactMessage, error) {
	s.lastID = id
	return s.getResult, s.getErr
}

func (s *stubContactService) List(_ context.Context, page, limit int) ([]models.ContactMessage, int, error) {
	s.lastPage = page
	s.lastLimit = limit
	return s.listResult, s.listTotal, s.listErr
}

func TestSubmitContactReturnsCreated(t *testing.T) {
	service := &stubContactService{
		submitResult: &models.ContactMessage{ID: "msg-1", Subject: models.SubjectGeneral, ReceivedAt: time.Now()},
	}
	handler := NewContactHandler(service)

	app := fiber.New()
	app.Post("/api/v1/contact", handler.Submit)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/contact", strings.NewReader(`{
		"name": "Jordan",
		"email": "jordan@example.com",
		"message": "Hi there"
	}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}
	if service.lastInput.Name != "Jordan" || service.lastInput.Email != "jordan@example.com" {
		t.Fatalf("unexpected input: %+v", service.lastInput)
	}
}

func TestSubmitContactReturnsFieldErrors(t *testing.T) {
	service := &stubContactService{
		submitErr: &services.ContactValidationError{Fields: map[string]string{"email": "email"}},
	}
	handler := NewContactHandler(service)

	app := fiber.New()
	app.Post("/api/v1/contact", handler.Submit)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/contact", strings.NewReader(`{"email":"nope"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}

	var body struct {
		Fields map[string]string `json:"fields"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Fields["email"] != "email" {
		t.Fatalf("expected email field error, got %+v", body.Fields)
	}
}

func TestListMessagesClampsLimit(t *testing.T) {
	service := &stubContactService{
		listResult: []models.ContactMessage{{ID: "msg-1"}},
		listTotal:  120,
	}
	handler := NewContactHandler(service)

	app := fiber.New()
	app.Get("/api/v1/staff/messages", handler.ListMessages)

	var body struct {
		Pagination models.PaginationMeta `json:"pagination"`
	}
	status := doJSON(t, app, http.MethodGet, "/api/v1/staff/messages?page=2&limit=500", &body)
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	if service.lastPage != 2 || service.lastLimit != maxPageLimit {
		t.Fatalf("expected page 2 limit %d, got %d/%d", maxPageLimit, service.lastPage, service.lastLimit)
	}
	if body.Pagination.TotalPages != 3 {
		t.Fatalf("expected 3 pages, got %+v", body.Pagination)
	}
}

func TestListMessagesClampsPage(t *testing.T) {
	service := &stubContactService{}
	handler := NewContactHandler(service)

	app := fiber.New()
	app.Get("/api/v1/staff/messages", handler.ListMessages)

	status := doJSON(t, app, http.MethodGet, "/api/v1/staff/messages?page=9223372036854775807&limit=50", nil)
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	if service.lastPage != maxPage {
		t.Fatalf("expected page clamped to %d, got %d", maxPage, service.lastPage)
	}
}

func TestGetMessageNotFound(t *testing.T) {
	service := &stubContactService{getErr: services.ErrMessageNotFound}
	handler := NewContactHandler(service)

	app := fiber.New()
	app.Get("/api/v1/staff/messages/:id", handler.GetMessage)

	if status := doJSON(t, app, http.MethodGet, "/api/v1/staff/messages/abc", nil); status != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", status)
	}
	if service.lastID != "abc" {
		t.Fatalf("expected id abc, got %q", service.lastID)
	}
}

func TestMapContactErrorFallsBackTo500(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return mapContactError(c, errors.New("boom"))
	})

	if status := doJSON(t, app, http.MethodGet, "/", nil); status != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", status)
	}
}
