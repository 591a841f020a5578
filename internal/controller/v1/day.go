package v1

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"

	"github.com/millbrook-logistics/dispatchd/internal/model/types"
	"github.com/millbrook-logistics/dispatchd/internal/pkg/apperr"
	"github.com/millbrook-logistics/dispatchd/internal/pkg/middlewares"
	"github.com/millbrook-logistics/dispatchd/internal/pkg/workdate"
	"github.com/millbrook-logistics/dispatchd/internal/server/svr"
	"github.com/millbrook-logistics/dispatchd/internal/service"
	"github.com/millbrook-logistics/dispatchd/internal/util/rekuest"
)

type Roster struct {
	fx.In

	RosterService  *service.Roster
	AccountService *service.Account
}

func RegisterRoster(v1 *svr.V1, c Roster) {
	session := middlewares.Session(c.AccountService)

	v1.Get("/days/:date", session, c.Resolve)
	v1.Patch("/days/:date/rows/:pos", session, c.UpdateField)
	v1.Post("/days/:date/rows", session, c.AddRow)
	v1.Delete("/days/:date/rows/:assignmentId", session, c.DeleteRow)
	v1.Post("/days/:date/finalize", session, c.Finalize)
	v1.Post("/days/:date/unfinalize", session, c.Unfinalize)
	v1.Post("/days/:date/reset", session, c.Reset)
	v1.Post("/assignments/:assignmentId/loading-status", session, c.SetLoadingStatus)
}

func (c *Roster) Resolve(ctx *fiber.Ctx) error {
	date, err := dateParam(ctx)
	if err != nil {
		return err
	}

	roster, err := c.RosterService.Resolve(ctx.UserContext(), date)
	if err != nil {
		return err
	}
	return ctx.JSON(roster)
}

func (c *Roster) UpdateField(ctx *fiber.Ctx) error {
	date, err := dateParam(ctx)
	if err != nil {
		return err
	}
	pos, err := strconv.Atoi(ctx.Params("pos"))
	if err != nil || pos < 0 {
		return apperr.ErrInvalidReq.Msg("invalid or missing row position")
	}

	var req types.UpdateRosterFieldRequest
	if err := rekuest.ValidBody(ctx, &req); err != nil {
		return err
	}

	assignment, err := c.RosterService.UpdateField(ctx.UserContext(), date, pos, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(assignment)
}

func (c *Roster) AddRow(ctx *fiber.Ctx) error {
	date, err := dateParam(ctx)
	if err != nil {
		return err
	}

	assignment, err := c.RosterService.AddRow(ctx.UserContext(), date)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(assignment)
}

func (c *Roster) DeleteRow(ctx *fiber.Ctx) error {
	date, err := dateParam(ctx)
	if err != nil {
		return err
	}
	id, err := assignmentID(ctx)
	if err != nil {
		return err
	}

	if err := c.RosterService.DeleteRow(ctx.UserContext(), date, id); err != nil {
		return err
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}

func (c *Roster) Finalize(ctx *fiber.Ctx) error {
	date, err := dateParam(ctx)
	if err != nil {
		return err
	}

	if err := c.RosterService.Finalize(ctx.UserContext(), date); err != nil {
		return err
	}
	return ctx.JSON(fiber.Map{"date": date, "planningStatus": "finalized"})
}

func (c *Roster) Unfinalize(ctx *fiber.Ctx) error {
	date, err := dateParam(ctx)
	if err != nil {
		return err
	}

	if err := c.RosterService.Unfinalize(ctx.UserContext(), date); err != nil {
		return err
	}
	return ctx.JSON(fiber.Map{"date": date, "planningStatus": "draft"})
}

func (c *Roster) Reset(ctx *fiber.Ctx) error {
	date, err := dateParam(ctx)
	if err != nil {
		return err
	}

	if err := c.RosterService.ResetToTemplate(ctx.UserContext(), date); err != nil {
		return err
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}

func (c *Roster) SetLoadingStatus(ctx *fiber.Ctx) error {
	id, err := assignmentID(ctx)
	if err != nil {
		return err
	}

	var req types.SetLoadingStatusRequest
	if err := rekuest.ValidBody(ctx, &req); err != nil {
		return err
	}

	assignment, err := c.RosterService.SetLoadingStatus(ctx.UserContext(), id, req.Status)
	if err != nil {
		return err
	}
	return ctx.JSON(assignment)
}

func dateParam(ctx *fiber.Ctx) (string, error) {
	date := ctx.Params("date")
	if _, err := workdate.Parse(date); err != nil {
		return "", apperr.ErrInvalidReq.Msg("invalid or missing date, expected YYYY-MM-DD")
	}
	return date, nil
}

func assignmentID(ctx *fiber.Ctx) (int, error) {
	id, err := strconv.Atoi(ctx.Params("assignmentId"))
	if err != nil || id <= 0 {
		return 0, apperr.ErrInvalidReq.Msg("invalid or missing assignmentId")
	}
	return id, nil
}
