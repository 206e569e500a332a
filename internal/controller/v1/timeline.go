package v1

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"

	"canvasflow.dev/backend/internal/core/timeline"
	"canvasflow.dev/backend/internal/pkg/cachectrl"
	"canvasflow.dev/backend/internal/server/svr"
	"canvasflow.dev/backend/internal/service"
	"canvasflow.dev/backend/internal/util/rekuest"
)

type Timeline struct {
	fx.In

	TimelineService *service.Timeline
}

func RegisterTimeline(v1 *svr.V1, c Timeline) {
	v1.Get("/timeline", c.GetTimeline)
}

func (c *Timeline) GetTimeline(ctx *fiber.Ctx) error {
	mode := ctx.Query("mode", string(timeline.ModeDay))
	if err := rekuest.ValidViewMode(ctx, mode); err != nil {
		return err
	}

	body, err := c.TimelineService.GetLayout(ctx.UserContext(), timeline.ViewMode(mode), time.Now())
	if err != nil {
		return err
	}

	etag := cachectrl.OptInHashed(ctx, body)
	if ctx.Get(fiber.HeaderIfNoneMatch) == etag {
		return ctx.SendStatus(fiber.StatusNotModified)
	}

	ctx.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSONCharsetUTF8)
	return ctx.Send(body)
}
