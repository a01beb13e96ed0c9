package controllers

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"

	"meetspace-admin/dto"
)

// The app only needs the routes under test; validation runs before any
// store access so no database is required.
func validationApp() *fiber.App {
	app := fiber.New()
	app.Post("/users", CreateUser)
	app.Post("/users/check-email", CheckUserEmail)
	app.Get("/users/:id", GetUser)
	app.Post("/events", CreateEvent)
	app.Post("/payments", CreatePayment)
	app.Post("/applications", CreateApplication)
	app.Patch("/applications/status/:id", UpdateApplicationStatus)
	app.Post("/plans", CreatePlan)
	app.Patch("/subscriptions/:id/status", UpdateSubscriptionStatus)
	return app
}

func postJSON(t *testing.T, app *fiber.App, method, path, body string) (int, string) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	var parsed struct {
		Error string `json:"error"`
	}
	_ = json.Unmarshal(raw, &parsed)
	return resp.StatusCode, parsed.Error
}

func TestCreateRequiredFields(t *testing.T) {
	app := validationApp()

	cases := []struct {
		name string
		path string
		body string
	}{
		{"user missing password", "/users", `{"name":"A","email":"a@b.c"}`},
		{"user missing everything", "/users", `{}`},
		{"event missing category", "/events", `{"title":"T","description":"D","date":"2026-09-01"}`},
		{"event missing date", "/events", `{"title":"T","description":"D","category":"Tech"}`},
		{"payment missing tx_ref", "/payments", `{"amount":10,"email":"a@b.c","first_name":"A","last_name":"B"}`},
		{"payment missing names", "/payments", `{"tx_ref":"tx-1","amount":10,"email":"a@b.c"}`},
		{"application missing reason", "/applications", `{"fullName":"A","email":"a@b.c","organization":"Org","experience":"5y"}`},
		{"plan missing slug", "/plans", `{"name":"Pro","price":10,"durationDays":30}`},
		{"plan missing durationDays", "/plans", `{"name":"Pro","slug":"pro","price":10}`},
	}
	for _, tc := range cases {
		status, msg := postJSON(t, app, "POST", tc.path, tc.body)
		if status != fiber.StatusBadRequest {
			t.Errorf("%s: status = %d, want 400", tc.name, status)
		}
		if msg == "" {
			t.Errorf("%s: empty error message", tc.name)
		}
	}
}

func TestCreatePaymentAmountRules(t *testing.T) {
	app := validationApp()

	body := `{"tx_ref":"tx-1","amount":0,"email":"a@b.c","first_name":"A","last_name":"B"}`
	status, msg := postJSON(t, app, "POST", "/payments", body)
	if status != fiber.StatusBadRequest {
		t.Errorf("zero amount: status = %d, want 400", status)
	}
	if !strings.Contains(msg, "amount") {
		t.Errorf("zero amount: message = %q", msg)
	}

	body = `{"tx_ref":"tx-1","amount":10,"email":"a@b.c","first_name":"A","last_name":"B","status":"done"}`
	status, _ = postJSON(t, app, "POST", "/payments", body)
	if status != fiber.StatusBadRequest {
		t.Errorf("bad status value: status = %d, want 400", status)
	}
}

func TestApplicationStatusValidation(t *testing.T) {
	app := validationApp()
	const id = "64f000000000000000000001"

	status, _ := postJSON(t, app, "PATCH", "/applications/status/"+id, `{"status":"pending"}`)
	if status != fiber.StatusBadRequest {
		t.Errorf("pending not rejected: status = %d", status)
	}

	status, msg := postJSON(t, app, "PATCH", "/applications/status/"+id, `{"status":"rejected"}`)
	if status != fiber.StatusBadRequest {
		t.Errorf("reject without feedback: status = %d", status)
	}
	if !strings.Contains(msg, "feedback") {
		t.Errorf("reject without feedback: message = %q", msg)
	}

	status, _ = postJSON(t, app, "PATCH", "/applications/status/not-an-id", `{"status":"accepted"}`)
	if status != fiber.StatusBadRequest {
		t.Errorf("bad object id: status = %d", status)
	}
}

func TestSubscriptionStatusValidation(t *testing.T) {
	app := validationApp()
	const id = "64f000000000000000000001"

	status, _ := postJSON(t, app, "PATCH", "/subscriptions/"+id+"/status", `{"status":"  "}`)
	if status != fiber.StatusBadRequest {
		t.Errorf("blank status: status = %d, want 400", status)
	}

	status, _ = postJSON(t, app, "PATCH", "/subscriptions/nope/status", `{"status":"active"}`)
	if status != fiber.StatusBadRequest {
		t.Errorf("bad object id: status = %d, want 400", status)
	}
}

func TestInvalidObjectIDParams(t *testing.T) {
	app := validationApp()

	req := httptest.NewRequest("GET", "/users/not-hex", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Errorf("invalid user id: status = %d, want 400", resp.StatusCode)
	}
}

func TestUserUpdatesDemotesPasswordFlagForPlainRole(t *testing.T) {
	plain := "user"
	admin := "admin"
	flagOn := true

	updates, err := userUpdates(dto.UpdateUserRequest{Role: &plain, RequirePasswordChange: &flagOn})
	if err != nil {
		t.Fatalf("userUpdates: %v", err)
	}
	if v, ok := updates["requirePasswordChange"].(bool); !ok || v {
		t.Errorf("role user with flag requested: requirePasswordChange = %v, want false", updates["requirePasswordChange"])
	}

	// Moving to a plain role clears any stale flag even when the
	// payload never mentions it.
	updates, err = userUpdates(dto.UpdateUserRequest{Role: &plain})
	if err != nil {
		t.Fatalf("userUpdates: %v", err)
	}
	if v, ok := updates["requirePasswordChange"].(bool); !ok || v {
		t.Errorf("role user alone: requirePasswordChange = %v, want false", updates["requirePasswordChange"])
	}

	updates, err = userUpdates(dto.UpdateUserRequest{Role: &admin, RequirePasswordChange: &flagOn})
	if err != nil {
		t.Fatalf("userUpdates: %v", err)
	}
	if v, ok := updates["requirePasswordChange"].(bool); !ok || !v {
		t.Errorf("role admin: requirePasswordChange = %v, want true", updates["requirePasswordChange"])
	}

	if _, err := userUpdates(dto.UpdateUserRequest{}); err == nil {
		t.Error("empty update accepted")
	}
}

func TestCheckUserEmailRequiresEmail(t *testing.T) {
	app := validationApp()

	status, msg := postJSON(t, app, "POST", "/users/check-email", `{}`)
	if status != fiber.StatusBadRequest {
		t.Errorf("status = %d, want 400", status)
	}
	if !strings.Contains(msg, "Email") {
		t.Errorf("message = %q", msg)
	}
}
