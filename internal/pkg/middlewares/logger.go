package middlewares

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"canvasflow.dev/backend/internal/pkg/flog"
)

func Logger(app *fiber.App) {
	app.Use(flog.NewHandlerMiddleware(log.Logger))
	app.Use(flog.IDHandler("http.id"))
	app.Use(flog.RequestHandler("http.request"))
	app.Use(flog.RemoteAddrHandler("http.ip"))
	app.Use(flog.AccessHandler(func(ctx *fiber.Ctx, latencyMs float64) {
		flog.FromFiberCtx(ctx).Info().
			Int("http.status", ctx.Response().StatusCode()).
			Float64("http.latency", latencyMs).
			Msg("request handled")
	}))
}
