package meta

import (
	"context"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"

	"github.com/millbrook-logistics/dispatchd/internal/constant"
	"github.com/millbrook-logistics/dispatchd/internal/model"
	modelcache "github.com/millbrook-logistics/dispatchd/internal/model/cache"
	"github.com/millbrook-logistics/dispatchd/internal/model/types"
	"github.com/millbrook-logistics/dispatchd/internal/pkg/apperr"
	"github.com/millbrook-logistics/dispatchd/internal/server/svr"
	"github.com/millbrook-logistics/dispatchd/internal/service"
	"github.com/millbrook-logistics/dispatchd/internal/util/rekuest"
)

type Admin struct {
	fx.In

	RefDataService *service.RefData
}

func RegisterAdmin(admin *svr.Admin, c Admin) {
	admin.Post("/routes", c.CreateRoute)
	admin.Post("/drivers", c.CreateDriver)
	admin.Post("/trucks", c.CreateTruck)
	admin.Post("/trailers", c.CreateTrailer)
	admin.Post("/loaders", c.CreateLoader)

	admin.Patch("/routes/:id", c.UpdateRouteStatus)
	admin.Patch("/drivers/:id", c.UpdateDriverStatus)
	admin.Patch("/trucks/:id", c.UpdateTruckStatus)
	admin.Patch("/trailers/:id", c.UpdateTrailerStatus)
	admin.Patch("/loaders/:id", c.UpdateLoaderStatus)

	admin.Post("/purge", c.PurgeCache)
}

func (c *Admin) CreateRoute(ctx *fiber.Ctx) error {
	var req types.CreateRouteRequest
	if err := rekuest.ValidBody(ctx, &req); err != nil {
		return err
	}

	route := &model.Route{
		Code:        req.Code,
		Description: req.Description,
		Status:      constant.EntityStatusActive,
	}
	if err := c.RefDataService.CreateRoute(ctx.UserContext(), route); err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(route)
}

func (c *Admin) CreateDriver(ctx *fiber.Ctx) error {
	var req types.CreateDriverRequest
	if err := rekuest.ValidBody(ctx, &req); err != nil {
		return err
	}

	driver := &model.Driver{
		Name:   req.Name,
		Status: constant.EntityStatusActive,
	}
	if err := c.RefDataService.CreateDriver(ctx.UserContext(), driver); err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(driver)
}

func (c *Admin) CreateTruck(ctx *fiber.Ctx) error {
	var req types.CreateTruckRequest
	if err := rekuest.ValidBody(ctx, &req); err != nil {
		return err
	}

	truck := &model.Truck{
		Number: req.Number,
		Type:   req.Type,
		Notes:  req.Notes,
		Status: constant.EntityStatusActive,
	}
	if err := c.RefDataService.CreateTruck(ctx.UserContext(), truck); err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(truck)
}

func (c *Admin) CreateTrailer(ctx *fiber.Ctx) error {
	var req types.CreateTrailerRequest
	if err := rekuest.ValidBody(ctx, &req); err != nil {
		return err
	}

	trailer := &model.Trailer{
		Number: req.Number,
		Type:   req.Type,
		Notes:  req.Notes,
		Status: constant.EntityStatusActive,
	}
	if err := c.RefDataService.CreateTrailer(ctx.UserContext(), trailer); err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(trailer)
}

func (c *Admin) CreateLoader(ctx *fiber.Ctx) error {
	var req types.CreateLoaderRequest
	if err := rekuest.ValidBody(ctx, &req); err != nil {
		return err
	}

	loader := &model.Loader{
		Name:   req.Name,
		Status: constant.EntityStatusActive,
	}
	if err := c.RefDataService.CreateLoader(ctx.UserContext(), loader); err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(loader)
}

func (c *Admin) UpdateRouteStatus(ctx *fiber.Ctx) error {
	return c.updateStatus(ctx, c.RefDataService.UpdateRouteStatus)
}

func (c *Admin) UpdateDriverStatus(ctx *fiber.Ctx) error {
	return c.updateStatus(ctx, c.RefDataService.UpdateDriverStatus)
}

func (c *Admin) UpdateTruckStatus(ctx *fiber.Ctx) error {
	return c.updateStatus(ctx, c.RefDataService.UpdateTruckStatus)
}

func (c *Admin) UpdateTrailerStatus(ctx *fiber.Ctx) error {
	return c.updateStatus(ctx, c.RefDataService.UpdateTrailerStatus)
}

func (c *Admin) UpdateLoaderStatus(ctx *fiber.Ctx) error {
	return c.updateStatus(ctx, c.RefDataService.UpdateLoaderStatus)
}

func (c *Admin) updateStatus(ctx *fiber.Ctx, update func(ctx context.Context, id int, status string) error) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil || id <= 0 {
		return apperr.ErrInvalidReq.Msg("invalid or missing id")
	}

	var req types.UpdateEntityStatusRequest
	if err := rekuest.ValidBody(ctx, &req); err != nil {
		return err
	}

	if err := update(ctx.UserContext(), id, req.Status); err != nil {
		return err
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}

func (c *Admin) PurgeCache(ctx *fiber.Ctx) error {
	var req types.PurgeCacheRequest
	if err := rekuest.ValidBody(ctx, &req); err != nil {
		return err
	}

	if err := modelcache.Delete(req.Name, req.Key); err != nil {
		return err
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}
