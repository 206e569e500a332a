package httpserver

import (
	"strconv"

	"github.com/getsentry/sentry-go"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"canvasflow.dev/backend/internal/pkg/cferr"
)

func HandleCustomError(ctx *fiber.Ctx, e *cferr.CanvasError) error {
	log.Warn().
		Err(e).
		Str("method", ctx.Method()).
		Str("path", ctx.Path()).
		Msg(e.Message)

	body := fiber.Map{
		"code":    e.ErrorCode,
		"message": e.Message,
	}

	if e.Extras != nil && len(*e.Extras) > 0 {
		for k, v := range *e.Extras {
			body[k] = v
		}
	}

	return ctx.Status(e.StatusCode).JSON(body)
}

func ErrorHandler(ctx *fiber.Ctx, err error) error {
	if e, ok := err.(*cferr.CanvasError); ok {
		return HandleCustomError(ctx, e)
	}

	// default 500 unless fiber provided a more specific code
	re := *cferr.ErrInternalError

	if e, ok := err.(*fiber.Error); ok {
		re.StatusCode = e.Code
		re.ErrorCode = "UNKNOWN_ERROR"
		re.Message = e.Message
	}

	log.Error().
		Stack().
		Err(err).
		Str("method", ctx.Method()).
		Str("path", ctx.Path()).
		Int("status", re.StatusCode).
		Msg("Internal Server Error")

	// fibersentry#GetHubFromContext type-asserts unconditionally and panics
	// when its middleware never ran on this request, so reporting goes
	// through the global hub, and only when sentry is actually initialized.
	if hub := sentry.CurrentHub(); hub.Client() != nil {
		hub.WithScope(func(scope *sentry.Scope) {
			scope.SetTag("status", strconv.Itoa(re.StatusCode))
			hub.CaptureException(err)
		})
	}

	return HandleCustomError(ctx, &re)
}
