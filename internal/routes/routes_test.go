package routes

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
)

// Update endpoints are documented as PATCH. A wrongly registered method
// shows up as a 405 before any handler logic runs, so the requests here
// only need to get past routing; validation failures (400) or the auth
// guard (401) are fine.
func TestUpdateEndpointsAcceptPatch(t *testing.T) {
	app := fiber.New()
	api := app.Group("/api")
	SetupRoutesUser(api)
	SetupRoutesEvent(api)
	SetupRoutesPayment(api)
	SetupRoutesApplication(api)
	SetupRoutesSuper(api, "test-secret")

	paths := []string{
		"/api/users/not-an-id",
		"/api/events/not-an-id",
		"/api/payments/some-key",
		"/api/applications/status/not-an-id",
		"/api/super/users/not-an-id",
		"/api/super/admins/not-an-id",
		"/api/super/subscriptions/not-an-id",
		"/api/super/subscriptions/not-an-id/status",
		"/api/super/subscription-plans/some-slug",
	}
	for _, path := range paths {
		req := httptest.NewRequest("PATCH", path, strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("app.Test PATCH %s: %v", path, err)
		}
		resp.Body.Close()
		if resp.StatusCode == fiber.StatusMethodNotAllowed {
			t.Errorf("PATCH %s returned 405", path)
		}
	}

	// Role grants keep their PUT surface.
	req := httptest.NewRequest("PUT", "/api/roles/not-an-id", strings.NewReader(`{"role":"admin"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test PUT /api/roles/:userId: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode == fiber.StatusMethodNotAllowed {
		t.Errorf("PUT /api/roles/:userId returned 405")
	}
}
