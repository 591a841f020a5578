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

type Template struct {
	fx.In

	TemplateService *service.Template
	AccountService  *service.Account
}

func RegisterTemplate(v1 *svr.V1, c Template) {
	session := middlewares.Session(c.AccountService)

	v1.Get("/templates", session, c.List)
	v1.Post("/templates", session, c.Create)
	v1.Patch("/templates/:templateId", session, c.Update)
	v1.Delete("/templates/:templateId", session, c.Delete)
}

func (c *Template) List(ctx *fiber.Ctx) error {
	dayOfWeek, err := strconv.Atoi(ctx.Query("day_of_week"))
	if err != nil {
		return apperr.ErrInvalidReq.Msg("invalid or missing day_of_week")
	}

	templates, err := c.TemplateService.List(ctx.UserContext(), dayOfWeek)
	if err != nil {
		return err
	}
	return ctx.JSON(templates)
}

func (c *Template) Create(ctx *fiber.Ctx) error {
	var req types.CreateTemplateRequest
	if err := rekuest.ValidBody(ctx, &req); err != nil {
		return err
	}

	template, err := c.TemplateService.Create(ctx.UserContext(), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(template)
}

func (c *Template) Update(ctx *fiber.Ctx) error {
	id, err := templateID(ctx)
	if err != nil {
		return err
	}

	var req types.UpdateTemplateRequest
	if err := rekuest.ValidBody(ctx, &req); err != nil {
		return err
	}

	template, err := c.TemplateService.Update(ctx.UserContext(), id, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(template)
}

func (c *Template) Delete(ctx *fiber.Ctx) error {
	id, err := templateID(ctx)
	if err != nil {
		return err
	}

	if err := c.TemplateService.Delete(ctx.UserContext(), id); err != nil {
		return err
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}

func templateID(ctx *fiber.Ctx) (int, error) {
	id, err := strconv.Atoi(ctx.Params("templateId"))
	if err != nil || id <= 0 {
		return 0, apperr.ErrInvalidReq.Msg("invalid or missing templateId")
	}
	return id, nil
}
