package v1

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"

	"github.com/millbrook-logistics/dispatchd/internal/model/types"
	"github.com/millbrook-logistics/dispatchd/internal/pkg/apperr"
	"github.com/millbrook-logistics/dispatchd/internal/pkg/middlewares"
	"github.com/millbrook-logistics/dispatchd/internal/server/svr"
	"github.com/millbrook-logistics/dispatchd/internal/service"
	"github.com/millbrook-logistics/dispatchd/internal/util/rekuest"
)

type Crew struct {
	fx.In

	CrewService    *service.Crew
	AccountService *service.Account
}

func RegisterCrew(v1 *svr.V1, c Crew) {
	session := middlewares.Session(c.AccountService)

	v1.Get("/assignments/:assignmentId/loaders", session, c.List)
	v1.Get("/assignments/:assignmentId/loaders/available", session, c.Available)
	v1.Post("/assignments/:assignmentId/loaders", session, c.Add)
	v1.Delete("/assignments/:assignmentId/loaders/:loaderId", session, c.Remove)
}

func (c *Crew) List(ctx *fiber.Ctx) error {
	id, err := assignmentID(ctx)
	if err != nil {
		return err
	}

	crew, err := c.CrewService.List(ctx.UserContext(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(crew)
}

func (c *Crew) Available(ctx *fiber.Ctx) error {
	id, err := assignmentID(ctx)
	if err != nil {
		return err
	}

	loaders, err := c.CrewService.AvailableLoaders(ctx.UserContext(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(loaders)
}

func (c *Crew) Add(ctx *fiber.Ctx) error {
	id, err := assignmentID(ctx)
	if err != nil {
		return err
	}

	var req types.AddLoaderRequest
	if err := rekuest.ValidBody(ctx, &req); err != nil {
		return err
	}

	member, err := c.CrewService.Add(ctx.UserContext(), id, req.LoaderID)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(member)
}

func (c *Crew) Remove(ctx *fiber.Ctx) error {
	id, err := assignmentID(ctx)
	if err != nil {
		return err
	}
	loaderID, err := strconv.Atoi(ctx.Params("loaderId"))
	if err != nil || loaderID <= 0 {
		return apperr.ErrInvalidReq.Msg("invalid or missing loaderId")
	}

	if err := c.CrewService.Remove(ctx.UserContext(), id, loaderID); err != nil {
		return err
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}
