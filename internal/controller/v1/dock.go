package v1

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"

	"github.com/millbrook-logistics/dispatchd/internal/model/types"
	"github.com/millbrook-logistics/dispatchd/internal/pkg/apperr"
	"github.com/millbrook-logistics/dispatchd/internal/pkg/cachectrl"
	"github.com/millbrook-logistics/dispatchd/internal/pkg/middlewares"
	"github.com/millbrook-logistics/dispatchd/internal/pkg/workdate"
	"github.com/millbrook-logistics/dispatchd/internal/server/svr"
	"github.com/millbrook-logistics/dispatchd/internal/service"
	"github.com/millbrook-logistics/dispatchd/internal/util/rekuest"
)

type Dock struct {
	fx.In

	DockService    *service.Dock
	AccountService *service.Account
}

func RegisterDock(v1 *svr.V1, c Dock) {
	session := middlewares.Session(c.AccountService)

	v1.Get("/dock", session, c.Snapshot)
	v1.Post("/dock/assignments", session, c.Assign)
	v1.Post("/dock/assignments/:doorAssignmentId/move-status", session, c.SetMoveStatus)
	v1.Post("/dock/assignments/:doorAssignmentId/clear", session, c.Clear)
	v1.Post("/dock/storage-trailer", session, c.PinStorageTrailer)
}

// dockDate resolves the date query param, defaulting to the next business
// day, which is what the shipping floor is loading for.
func (c *Dock) dockDate(ctx *fiber.Ctx) (string, error) {
	date := ctx.Query("date")
	if date == "" {
		return c.DockService.DeliveryDate(time.Now()), nil
	}
	if _, err := workdate.Parse(date); err != nil {
		return "", apperr.ErrInvalidReq.Msg("invalid date, expected YYYY-MM-DD")
	}
	return date, nil
}

func (c *Dock) Snapshot(ctx *fiber.Ctx) error {
	date, err := c.dockDate(ctx)
	if err != nil {
		return err
	}

	snapshot, err := c.DockService.CachedSnapshot(ctx.UserContext(), date)
	if err != nil {
		return err
	}

	// the board changes under the pollers' feet; never let it stick in an
	// intermediate cache
	cachectrl.OptOut(ctx)
	return ctx.JSON(snapshot)
}

func (c *Dock) Assign(ctx *fiber.Ctx) error {
	var req types.AssignDoorRequest
	if err := rekuest.ValidBody(ctx, &req); err != nil {
		return err
	}

	date, err := c.dockDate(ctx)
	if err != nil {
		return err
	}

	assignment, err := c.DockService.Assign(ctx.UserContext(), date, req.DoorNumber, req.TrailerID, req.AssignmentID)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(assignment)
}

func (c *Dock) SetMoveStatus(ctx *fiber.Ctx) error {
	id, err := doorAssignmentID(ctx)
	if err != nil {
		return err
	}

	var req types.SetMoveStatusRequest
	if err := rekuest.ValidBody(ctx, &req); err != nil {
		return err
	}

	if err := c.DockService.SetMoveStatus(ctx.UserContext(), id, req.Status); err != nil {
		return err
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}

func (c *Dock) Clear(ctx *fiber.Ctx) error {
	id, err := doorAssignmentID(ctx)
	if err != nil {
		return err
	}

	if err := c.DockService.Clear(ctx.UserContext(), id); err != nil {
		return err
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}

func (c *Dock) PinStorageTrailer(ctx *fiber.Ctx) error {
	date, err := c.dockDate(ctx)
	if err != nil {
		return err
	}

	assignment, err := c.DockService.PinStorageTrailer(ctx.UserContext(), date)
	if err != nil {
		return err
	}
	return ctx.JSON(assignment)
}

func doorAssignmentID(ctx *fiber.Ctx) (int, error) {
	id, err := strconv.Atoi(ctx.Params("doorAssignmentId"))
	if err != nil || id <= 0 {
		return 0, apperr.ErrInvalidReq.Msg("invalid or missing doorAssignmentId")
	}
	return id, nil
}
