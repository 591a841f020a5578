package v1

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"

	"github.com/millbrook-logistics/dispatchd/internal/pkg/cachectrl"
	"github.com/millbrook-logistics/dispatchd/internal/pkg/middlewares"
	"github.com/millbrook-logistics/dispatchd/internal/server/svr"
	"github.com/millbrook-logistics/dispatchd/internal/service"
)

type RefData struct {
	fx.In

	RefDataService *service.RefData
	AccountService *service.Account
}

func RegisterRefData(v1 *svr.V1, c RefData) {
	session := middlewares.Session(c.AccountService)

	v1.Get("/routes", session, c.Routes)
	v1.Get("/drivers", session, c.Drivers)
	v1.Get("/trucks", session, c.Trucks)
	v1.Get("/trailers", session, c.Trailers)
	v1.Get("/loaders", session, c.Loaders)
}

// all=1 lists every entity regardless of status, for admin screens.
func listAll(ctx *fiber.Ctx) bool {
	return ctx.Query("all") == "1"
}

// reference data barely changes within a shift; let browsers hold it a bit
func refdataCacheHeaders(ctx *fiber.Ctx) {
	cachectrl.OptInCustom(ctx, time.Now(), time.Minute*5)
}

func (c *RefData) Routes(ctx *fiber.Ctx) error {
	if listAll(ctx) {
		routes, err := c.RefDataService.GetAllRoutes(ctx.UserContext())
		if err != nil {
			return err
		}
		return ctx.JSON(routes)
	}
	routes, err := c.RefDataService.GetActiveRoutes(ctx.UserContext())
	if err != nil {
		return err
	}
	refdataCacheHeaders(ctx)
	return ctx.JSON(routes)
}

func (c *RefData) Drivers(ctx *fiber.Ctx) error {
	if listAll(ctx) {
		drivers, err := c.RefDataService.GetAllDrivers(ctx.UserContext())
		if err != nil {
			return err
		}
		return ctx.JSON(drivers)
	}
	drivers, err := c.RefDataService.GetActiveDrivers(ctx.UserContext())
	if err != nil {
		return err
	}
	refdataCacheHeaders(ctx)
	return ctx.JSON(drivers)
}

func (c *RefData) Trucks(ctx *fiber.Ctx) error {
	if listAll(ctx) {
		trucks, err := c.RefDataService.GetAllTrucks(ctx.UserContext())
		if err != nil {
			return err
		}
		return ctx.JSON(trucks)
	}
	trucks, err := c.RefDataService.GetActiveTrucks(ctx.UserContext())
	if err != nil {
		return err
	}
	refdataCacheHeaders(ctx)
	return ctx.JSON(trucks)
}

func (c *RefData) Trailers(ctx *fiber.Ctx) error {
	if listAll(ctx) {
		trailers, err := c.RefDataService.GetAllTrailers(ctx.UserContext())
		if err != nil {
			return err
		}
		return ctx.JSON(trailers)
	}
	trailers, err := c.RefDataService.GetActiveTrailers(ctx.UserContext())
	if err != nil {
		return err
	}
	refdataCacheHeaders(ctx)
	return ctx.JSON(trailers)
}

func (c *RefData) Loaders(ctx *fiber.Ctx) error {
	if listAll(ctx) {
		loaders, err := c.RefDataService.GetAllLoaders(ctx.UserContext())
		if err != nil {
			return err
		}
		return ctx.JSON(loaders)
	}
	loaders, err := c.RefDataService.GetActiveLoaders(ctx.UserContext())
	if err != nil {
		return err
	}
	refdataCacheHeaders(ctx)
	return ctx.JSON(loaders)
}
