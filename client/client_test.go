package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"meetspace-admin/dto"
	"meetspace-admin/internal/models"
)

func jsonHandler(t *testing.T, routes map[string]interface{}) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := routes[r.URL.Path]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(map[string]string{"error": "not found"})
			return
		}
		json.NewEncoder(w).Encode(body)
	})
}

func TestUsersListAppliesOverlayAndDefaults(t *testing.T) {
	srv := httptest.NewServer(jsonHandler(t, map[string]interface{}{
		"/api/users": map[string]interface{}{
			"success": true,
			"data": []map[string]interface{}{
				{"name": "A", "email": "a@x.dev", "role": "user"},
				{"name": "B", "email": "b@x.dev"},
			},
			"pagination": dto.Pagination{Total: 2, Page: 1, Limit: 10, Pages: 1},
		},
		"/api/roles": map[string]interface{}{
			"success": true,
			"data": []map[string]interface{}{
				{"email": "a@x.dev", "role": "admin"},
			},
		},
	}))
	defer srv.Close()

	c := New(srv.URL)
	users, page, err := c.Users.List(context.Background(), ListParams{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}

	if users[0].Role != models.RoleAdmin {
		t.Errorf("overlay not applied: role = %q", users[0].Role)
	}
	if users[1].Role != models.RoleUser {
		t.Errorf("missing role not defaulted: %q", users[1].Role)
	}
	if users[1].IsActive == nil || !*users[1].IsActive {
		t.Error("missing isActive not defaulted to true")
	}
	if page == nil || page.Total != 2 {
		t.Errorf("pagination = %+v", page)
	}
}

func TestAPIErrorFromServerMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(map[string]string{"error": "a user with this email already exists"})
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.Users.Create(context.Background(), dto.CreateUserRequest{
		Name: "A", Email: "a@x.dev", Password: "secret123",
	})

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error type = %T", err)
	}
	if apiErr.Status != http.StatusConflict {
		t.Errorf("Status = %d", apiErr.Status)
	}
	if apiErr.Message != "a user with this email already exists" {
		t.Errorf("Message = %q", apiErr.Message)
	}
}

func TestAPIErrorFromUnreachableServer(t *testing.T) {
	c := New("http://127.0.0.1:1")
	_, err := c.Users.Get(context.Background(), "507f1f77bcf86cd799439011")

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error type = %T", err)
	}
	if apiErr.Status != 0 || apiErr.Message == "" {
		t.Errorf("APIError = %+v", apiErr)
	}
}

func TestPaymentsListBackfills(t *testing.T) {
	srv := httptest.NewServer(jsonHandler(t, map[string]interface{}{
		"/api/payments": map[string]interface{}{
			"success": true,
			"data": []map[string]interface{}{
				{"amount": 25.0},
			},
			"pagination": dto.Pagination{Total: 1, Page: 1, Limit: 10, Pages: 1},
		},
	}))
	defer srv.Close()

	c := New(srv.URL)
	payments, _, err := c.Payments.List(context.Background(), ListParams{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}

	p := payments[0]
	if p.Currency != "USD" || p.Status != models.PaymentPending || p.PaymentDate == nil {
		t.Errorf("payment not backfilled: %+v", p)
	}
}

func TestBearerTokenSent(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(map[string]interface{}{"success": true, "data": []interface{}{}})
	}))
	defer srv.Close()

	c := New(srv.URL)
	c.Token = "tok-123"
	if _, err := c.Admins.ListSuper(context.Background()); err != nil {
		t.Fatalf("ListSuper: %v", err)
	}
	if gotAuth != "Bearer tok-123" {
		t.Errorf("Authorization = %q", gotAuth)
	}
}

func TestListParamsEncoding(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		json.NewEncoder(w).Encode(map[string]interface{}{"success": true, "data": []interface{}{}})
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, _, err := c.Events.List(context.Background(), ListParams{Search: "go conf", Page: 2, Limit: 5})
	if err != nil {
		t.Fatalf("List: %v", err)
	}

	for _, want := range []string{"search=go+conf", "page=2", "limit=5"} {
		if !strings.Contains(gotQuery, want) {
			t.Errorf("query %q missing %q", gotQuery, want)
		}
	}
}
