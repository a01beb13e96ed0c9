package apperr

import (
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"meetspace-admin/database"
)

func TestWrapClassification(t *testing.T) {
	cases := []struct {
		err  error
		want Kind
	}{
		{mongo.ErrNoDocuments, KindNotFound},
		{database.ErrNoURI, KindConnection},
		{errors.New("boom"), KindUnknown},
	}
	for _, tc := range cases {
		wrapped := Wrap(tc.err, "msg")
		if wrapped.Kind != tc.want {
			t.Errorf("Wrap(%v).Kind = %v, want %v", tc.err, wrapped.Kind, tc.want)
		}
		if !errors.Is(wrapped, tc.err) {
			t.Errorf("Wrap(%v) lost the cause", tc.err)
		}
	}

	if Wrap(nil, "msg") != nil {
		t.Error("Wrap(nil) != nil")
	}
}

func TestWrapWrappedSentinel(t *testing.T) {
	err := Wrap(errors.Join(errors.New("context"), mongo.ErrNoDocuments), "msg")
	if err.Kind != KindNotFound {
		t.Errorf("joined sentinel Kind = %v", err.Kind)
	}
}

func TestIsNotFound(t *testing.T) {
	if !IsNotFound(mongo.ErrNoDocuments) {
		t.Error("raw sentinel not recognized")
	}
	if !IsNotFound(Wrap(mongo.ErrNoDocuments, "msg")) {
		t.Error("classified error not recognized")
	}
	if !IsNotFound(NotFound("gone")) {
		t.Error("constructed error not recognized")
	}
	if IsNotFound(errors.New("boom")) {
		t.Error("arbitrary error recognized")
	}
	if IsNotFound(nil) {
		t.Error("nil recognized")
	}
}

func respondStatus(t *testing.T, err error) (int, string) {
	t.Helper()
	app := fiber.New()
	app.Get("/t", func(c *fiber.Ctx) error {
		return Respond(c, err)
	})

	resp, testErr := app.Test(httptest.NewRequest("GET", "/t", nil))
	if testErr != nil {
		t.Fatalf("app.Test: %v", testErr)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	var body struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		t.Fatalf("body %q: %v", raw, err)
	}
	return resp.StatusCode, body.Error
}

func TestRespondStatusMapping(t *testing.T) {
	cases := []struct {
		err        error
		wantStatus int
		wantMsg    string
	}{
		{Validation("bad input"), fiber.StatusBadRequest, "bad input"},
		{NotFound("missing"), fiber.StatusNotFound, "missing"},
		{Conflict("duplicate"), fiber.StatusConflict, "duplicate"},
		{Wrap(errors.New("driver detail"), "failed to fetch"), fiber.StatusInternalServerError, "failed to fetch"},
	}
	for _, tc := range cases {
		status, msg := respondStatus(t, tc.err)
		if status != tc.wantStatus || msg != tc.wantMsg {
			t.Errorf("Respond(%v) = %d %q, want %d %q", tc.err, status, msg, tc.wantStatus, tc.wantMsg)
		}
	}
}

func TestRespondHidesUnclassifiedDetail(t *testing.T) {
	status, msg := respondStatus(t, errors.New("connection string leaked"))
	if status != fiber.StatusInternalServerError {
		t.Errorf("status = %d", status)
	}
	if msg != "internal server error" {
		t.Errorf("internal detail leaked: %q", msg)
	}
}
