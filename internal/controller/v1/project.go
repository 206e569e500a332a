package v1

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"

	"canvasflow.dev/backend/internal/model/types"
	"canvasflow.dev/backend/internal/pkg/cferr"
	"canvasflow.dev/backend/internal/server/svr"
	"canvasflow.dev/backend/internal/service"
	"canvasflow.dev/backend/internal/util/rekuest"
)

type Project struct {
	fx.In

	ProjectService *service.Project
}

func RegisterProject(v1 *svr.V1, c Project) {
	v1.Get("/projects", c.GetProjects)
	v1.Post("/projects", c.CreateProject)
	v1.Delete("/projects/:projectId", c.DeleteProject)
}

func (c *Project) GetProjects(ctx *fiber.Ctx) error {
	projects, err := c.ProjectService.GetProjects(ctx.UserContext())
	if err != nil {
		return err
	}

	return ctx.JSON(projects)
}

func (c *Project) CreateProject(ctx *fiber.Ctx) error {
	var request types.CreateProjectRequest
	if err := rekuest.ValidBody(ctx, &request); err != nil {
		return err
	}

	project, err := c.ProjectService.CreateProject(ctx.UserContext(), &request)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(project)
}

func (c *Project) DeleteProject(ctx *fiber.Ctx) error {
	projectId, err := ctx.ParamsInt("projectId")
	if err != nil || projectId <= 0 {
		return cferr.ErrInvalidReq.Msg("invalid or missing projectId")
	}

	if err := c.ProjectService.DeleteProject(ctx.UserContext(), projectId); err != nil {
		return err
	}

	return ctx.SendStatus(fiber.StatusNoContent)
}
