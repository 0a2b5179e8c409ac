package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"

	"github.com/Isaiahshap/pulse/pkg/utils"
)

func newAuthApp(t *testing.T) *fiber.App {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("correct horse"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("GenerateFromPassword: %v", err)
	}
	handler := NewAuthHandler("Staff@PulseGym.com", string(hash), "test-secret")

	app := fiber.New()
	app.Post("/api/auth/login", handler.Login)
	return app
}

func login(t *testing.T, app *fiber.App, body string) *http.Response {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	return resp
}

func TestStaffLoginIssuesStaffToken(t *testing.T) {
	resp := login(t, newAuthApp(t), `{"email":"staff@pulsegym.com","password":"correct horse"}`)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var body struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	claims, err := utils.ValidateToken(body.Token, "test-secret")
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.Role != "staff" || claims.UserID != "staff@pulsegym.com" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestStaffLoginRejectsBadCredentials(t *testing.T) {
	app := newAuthApp(t)

	cases := map[string]int{
		`{"email":"staff@pulsegym.com","password":"wrong"}`:         http.StatusUnauthorized,
		`{"email":"someone@pulsegym.com","password":"correct horse"}`: http.StatusUnauthorized,
		`{"email":"not-an-email","password":"correct horse"}`:         http.StatusBadRequest,
	}
	for body, want := range cases {
		resp := login(t, app, body)
		resp.Body.Close()
		if resp.StatusCode != want {
			t.Fatalf("%s: expected %d, got %d", body, want, resp.StatusCode)
		}
	}
}
