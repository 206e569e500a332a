package v1

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"
	"gopkg.in/guregu/null.v3"

	"canvasflow.dev/backend/internal/model/types"
	"canvasflow.dev/backend/internal/pkg/cferr"
	"canvasflow.dev/backend/internal/server/svr"
	"canvasflow.dev/backend/internal/service"
	"canvasflow.dev/backend/internal/util/rekuest"
)

type Activity struct {
	fx.In

	ActivityService *service.Activity
}

func RegisterActivity(v1 *svr.V1, c Activity) {
	v1.Get("/activities", c.GetActivities)
	v1.Post("/activities", c.CreateActivity)
	v1.Patch("/activities/:activityId", c.UpdateActivity)
	v1.Delete("/activities/:activityId", c.DeleteActivity)
	v1.Post("/activities/:activityId/move", c.MoveActivity)
}

func (c *Activity) GetActivities(ctx *fiber.Ctx) error {
	status := ctx.Query("status")
	if status != "" {
		if err := rekuest.ValidVar(ctx, status, "boardstatus"); err != nil {
			return err
		}
	}

	projectId := null.Int{}
	if raw := ctx.Query("projectId"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil || id <= 0 {
			return cferr.ErrInvalidReq.Msg("invalid projectId: %s", raw)
		}
		projectId = null.NewInt(int64(id), true)
	}

	activities, err := c.ActivityService.GetActivitiesFiltered(ctx.UserContext(), status, projectId)
	if err != nil {
		return err
	}

	return ctx.JSON(activities)
}

func (c *Activity) CreateActivity(ctx *fiber.Ctx) error {
	var request types.CreateActivityRequest
	if err := rekuest.ValidBody(ctx, &request); err != nil {
		return err
	}

	activity, err := c.ActivityService.CreateActivity(ctx.UserContext(), &request)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(activity)
}

func (c *Activity) UpdateActivity(ctx *fiber.Ctx) error {
	activityId, err := ctx.ParamsInt("activityId")
	if err != nil || activityId <= 0 {
		return cferr.ErrInvalidReq.Msg("invalid or missing activityId")
	}

	var request types.UpdateActivityRequest
	if err := rekuest.ValidBody(ctx, &request); err != nil {
		return err
	}

	activity, err := c.ActivityService.UpdateActivity(ctx.UserContext(), activityId, &request)
	if err != nil {
		return err
	}

	return ctx.JSON(activity)
}

func (c *Activity) DeleteActivity(ctx *fiber.Ctx) error {
	activityId, err := ctx.ParamsInt("activityId")
	if err != nil || activityId <= 0 {
		return cferr.ErrInvalidReq.Msg("invalid or missing activityId")
	}

	if err := c.ActivityService.DeleteActivity(ctx.UserContext(), activityId); err != nil {
		return err
	}

	return ctx.SendStatus(fiber.StatusNoContent)
}

func (c *Activity) MoveActivity(ctx *fiber.Ctx) error {
	activityId, err := ctx.ParamsInt("activityId")
	if err != nil || activityId <= 0 {
		return cferr.ErrInvalidReq.Msg("invalid or missing activityId")
	}

	var request types.MoveActivityRequest
	if err := rekuest.ValidBody(ctx, &request); err != nil {
		return err
	}

	activity, err := c.ActivityService.MoveActivity(ctx.UserContext(), activityId, request.Status)
	if err != nil {
		return err
	}

	return ctx.JSON(activity)
}
