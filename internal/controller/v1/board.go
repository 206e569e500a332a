package v1

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"

	modelcache "canvasflow.dev/backend/internal/model/cache"
	"canvasflow.dev/backend/internal/pkg/cachectrl"
	"canvasflow.dev/backend/internal/server/svr"
	"canvasflow.dev/backend/internal/service"
)

type Board struct {
	fx.In

	BoardService *service.Board
}

func RegisterBoard(v1 *svr.V1, c Board) {
	v1.Get("/board", c.GetBoard)
}

func (c *Board) GetBoard(ctx *fiber.Ctx) error {
	board, err := c.BoardService.GetBoard(ctx.UserContext(), time.Now())
	if err != nil {
		return err
	}

	var lastModifiedTime time.Time
	if err := modelcache.LastModifiedTime.Get("[board]", &lastModifiedTime); err != nil {
		lastModifiedTime = time.Now()
	}
	cachectrl.OptInCustom(ctx, lastModifiedTime, time.Minute)

	return ctx.JSON(board)
}
