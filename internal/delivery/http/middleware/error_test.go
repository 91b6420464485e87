package middleware

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v3"
)

func newErrorApp(h fiber.Handler) *fiber.App {
	app := fiber.New()
	app.Use(NewErrorMiddleware(nil).Middleware())
	app.Get("/", h)
	return app
}

func doRequest(t *testing.T, app *fiber.App) (int, string) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp.StatusCode, string(body)
}

func TestErrorMiddleware_AppErrorPassthrough(t *testing.T) {
	app := newErrorApp(func(c fiber.Ctx) error {
		return NewAppError(fiber.StatusNotFound, "nothing here", nil, nil)
	})

	status, body := doRequest(t, app)
	if status != fiber.StatusNotFound {
		t.Fatalf("expected 404, got %d", status)
	}
	if !strings.Contains(body, "nothing here") {
		t.Fatalf("expected message in body, got %s", body)
	}
}

func TestErrorMiddleware_MasksInternalDetails(t *testing.T) {
	app := newErrorApp(func(c fiber.Ctx) error {
		return NewAppError(fiber.StatusInternalServerError, "db password is hunter2", nil, nil)
	})

	status, body := doRequest(t, app)
	if status != fiber.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", status)
	}
	if strings.Contains(body, "hunter2") {
		t.Fatalf("internal message leaked: %s", body)
	}
}

func TestErrorMiddleware_ServiceUnavailableKeepsMessage(t *testing.T) {
	app := newErrorApp(func(c fiber.Ctx) error {
		return NewAppError(fiber.StatusServiceUnavailable, "advisor is not configured", nil, nil)
	})

	status, body := doRequest(t, app)
	if status != fiber.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", status)
	}
	if !strings.Contains(body, "advisor is not configured") {
		t.Fatalf("expected message in body, got %s", body)
	}
}

func TestErrorMiddleware_PlainErrorBecomesInternal(t *testing.T) {
	app := newErrorApp(func(c fiber.Ctx) error {
		return errors.New("unexpected explosion")
	})

	status, body := doRequest(t, app)
	if status != fiber.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", status)
	}
	if strings.Contains(body, "explosion") {
		t.Fatalf("internal message leaked: %s", body)
	}
}

func TestErrorMiddleware_RecoversPanic(t *testing.T) {
	app := newErrorApp(func(c fiber.Ctx) error {
		panic("boom")
	})

	status, _ := doRequest(t, app)
	if status != fiber.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", status)
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := NewAppError(fiber.StatusBadRequest, "bad input", nil, cause)
	if !errors.Is(err, cause) {
		t.Fatal("expected errors.Is to reach the cause")
	}
	if !strings.Contains(err.Error(), "root cause") {
		t.Fatalf("expected cause in message, got %q", err.Error())
	}
}
