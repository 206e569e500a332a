package httpserver

import (
	"io"
	"net/http/httptest"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"canvasflow.dev/backend/internal/pkg/cferr"
)

func newErrorHandlerApp(t *testing.T, handler fiber.Handler) *fiber.App {
	t.Helper()

	app := fiber.New(fiber.Config{
		ErrorHandler: ErrorHandler,
	})
	app.Get("/", handler)
	return app
}

func request(t *testing.T, app *fiber.App) (int, map[string]any) {
	t.Helper()

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, json.Unmarshal(b, &body))
	return resp.StatusCode, body
}

func TestErrorHandlerCanvasError(t *testing.T) {
	app := newErrorHandlerApp(t, func(ctx *fiber.Ctx) error {
		return cferr.ErrNotFound.Msg("activity 42 does not exist")
	})

	status, body := request(t, app)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, cferr.CodeNotFound, body["code"])
	assert.Equal(t, "activity 42 does not exist", body["message"])
}

func TestErrorHandlerCanvasErrorExtras(t *testing.T) {
	app := newErrorHandlerApp(t, func(ctx *fiber.Ctx) error {
		return cferr.NewInvalidViolations([]string{"title is required"})
	})

	status, body := request(t, app)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, cferr.CodeInvalidRequest, body["code"])
	assert.Contains(t, body, "violations")
}

func TestErrorHandlerFiberError(t *testing.T) {
	app := newErrorHandlerApp(t, func(ctx *fiber.Ctx) error {
		return fiber.ErrMethodNotAllowed
	})

	status, body := request(t, app)
	assert.Equal(t, fiber.StatusMethodNotAllowed, status)
	assert.Equal(t, "UNKNOWN_ERROR", body["code"])
}

func TestErrorHandlerUnknownError(t *testing.T) {
	app := newErrorHandlerApp(t, func(ctx *fiber.Ctx) error {
		return errors.New("kaboom")
	})

	status, body := request(t, app)
	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.Equal(t, cferr.CodeInternalError, body["code"])
}

func TestErrorHandlerWithoutSentryMiddleware(t *testing.T) {
	// an app built without the fibersentry middleware (and with no sentry
	// client initialized at all) must still render the error response
	// instead of panicking on hub extraction
	app := newErrorHandlerApp(t, func(ctx *fiber.Ctx) error {
		return errors.New("downstream blew up")
	})

	var status int
	var body map[string]any
	assert.NotPanics(t, func() {
		status, body = request(t, app)
	})
	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.Equal(t, cferr.CodeInternalError, body["code"])
}

func TestErrorHandlerDoesNotMutateSentinel(t *testing.T) {
	app := newErrorHandlerApp(t, func(ctx *fiber.Ctx) error {
		return fiber.ErrTeapot
	})

	_, _ = request(t, app)
	assert.Equal(t, fiber.StatusInternalServerError, cferr.ErrInternalError.StatusCode)
	assert.Equal(t, cferr.CodeInternalError, cferr.ErrInternalError.ErrorCode)
}
