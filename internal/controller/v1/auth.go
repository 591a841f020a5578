package v1

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"

	"github.com/millbrook-logistics/dispatchd/internal/model/types"
	"github.com/millbrook-logistics/dispatchd/internal/pkg/middlewares"
	"github.com/millbrook-logistics/dispatchd/internal/server/svr"
	"github.com/millbrook-logistics/dispatchd/internal/service"
	"github.com/millbrook-logistics/dispatchd/internal/util/rekuest"
)

type Auth struct {
	fx.In

	AccountService *service.Account
}

func RegisterAuth(v1 *svr.V1, c Auth) {
	v1.Post("/auth/login", c.Login)
	v1.Post("/auth/logout", middlewares.Session(c.AccountService), c.Logout)
}

func (c *Auth) Login(ctx *fiber.Ctx) error {
	var req types.LoginRequest
	if err := rekuest.ValidBody(ctx, &req); err != nil {
		return err
	}

	resp, err := c.AccountService.Login(ctx.UserContext(), req.AccessKey)
	if err != nil {
		return err
	}
	return ctx.JSON(resp)
}

func (c *Auth) Logout(ctx *fiber.Ctx) error {
	token := middlewares.SessionToken(ctx)
	if err := c.AccountService.Logout(ctx.UserContext(), token); err != nil {
		return err
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}
