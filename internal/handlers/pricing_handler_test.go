package handlers

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/Isaiahshap/pulse/internal/catalog"
	"github.com/Isaiahshap/pulse/internal/services"
)

func newPricingApp() *fiber.App {
	handler := NewPricingHandler(services.NewPricingService(catalog.Default()), catalog.Default())

	app := fiber.New()
	app.Get("/api/v1/plans", handler.ListPlans)
	app.Get("/api/v1/plans/:name/quote", handler.QuotePlan)
	app.Get("/api/v1/pricing/yearly-estimate", handler.YearlyEstimate)
	return app
}

func TestQuotePlanYearly(t *testing.T) {
	var body struct {
		Quote struct {
			Price   int    `json:"price"`
			Display string `json:"display"`
			Unit    string `json:"unit"`
			Savings int    `json:"savings"`
		} `json:"quote"`
	}

	status := doJSON(t, newPricingApp(), http.MethodGet, "/api/v1/plans/elite/quote?period=yearly", &body)
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	if body.Quote.Price != 900 || body.Quote.Display != "$900" || body.Quote.Unit != "/year" || body.Quote.Savings != 288 {
		t.Fatalf("unexpected quote: %+v", body.Quote)
	}
}

func TestQuotePlanErrors(t *testing.T) {
	app := newPricingApp()

	if status := doJSON(t, app, http.MethodGet, "/api/v1/plans/platinum/quote", nil); status != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown plan, got %d", status)
	}
	if status := doJSON(t, app, http.MethodGet, "/api/v1/plans/basic/quote?period=weekly", nil); status != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown period, got %d", status)
	}
}

func TestListPlansDefaultsToMonthly(t *testing.T) {
	var body struct {
		Period string `json:"period"`
		Quotes []struct {
			Plan  string `json:"plan"`
			Price int    `json:"price"`
		} `json:"quotes"`
	}

	if status := doJSON(t, newPricingApp(), http.MethodGet, "/api/v1/plans", &body); status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	if body.Period != "monthly" || len(body.Quotes) != 3 || body.Quotes[0].Price != 49 {
		t.Fatalf("unexpected plans payload: %+v", body)
	}
}

func TestYearlyEstimate(t *testing.T) {
	var body struct {
		Yearly  int    `json:"yearly"`
		Display string `json:"display"`
	}

	if status := doJSON(t, newPricingApp(), http.MethodGet, "/api/v1/pricing/yearly-estimate?monthly=49", &body); status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	if body.Yearly != 470 || body.Display != "$470" {
		t.Fatalf("unexpected estimate: %+v", body)
	}

	if status := doJSON(t, newPricingApp(), http.MethodGet, "/api/v1/pricing/yearly-estimate?monthly=abc", nil); status != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed price, got %d", status)
	}
}

func TestYearlyEstimateRejectsOutOfRange(t *testing.T) {
	for _, monthly := range []string{"9223372036854775807", "1000001", "-5"} {
		status := doJSON(t, newPricingApp(), http.MethodGet, "/api/v1/pricing/yearly-estimate?monthly="+monthly, nil)
		if status != http.StatusBadRequest {
			t.Fatalf("monthly=%s: expected 400, got %d", monthly, status)
		}
	}

	var body struct {
		Yearly int `json:"yearly"`
	}
	status := doJSON(t, newPricingApp(), http.MethodGet, "/api/v1/pricing/yearly-estimate?monthly=1000000", &body)
	if status != http.StatusOK || body.Yearly != 9600000 {
		t.Fatalf("expected 200 with 9600000 at the bound, got %d %+v", status, body)
	}
}
