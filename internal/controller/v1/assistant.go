package v1

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"

	"canvasflow.dev/backend/internal/server/svr"
	"canvasflow.dev/backend/internal/service"
)

type Assistant struct {
	fx.In

	AssistantService *service.Assistant
}

func RegisterAssistant(v1 *svr.V1, c Assistant) {
	v1.Post("/assistant/commands", c.ExecuteCommand)
}

// ExecuteCommand hands the raw envelope to the interpreter: the payload shape
// depends on its type tag, so body decoding happens there rather than through
// the usual ValidBody path.
func (c *Assistant) ExecuteCommand(ctx *fiber.Ctx) error {
	results, err := c.AssistantService.Execute(ctx.UserContext(), ctx.Body())
	if err != nil {
		return err
	}

	return ctx.JSON(fiber.Map{
		"results": results,
	})
}
