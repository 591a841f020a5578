package svr

import (
	"github.com/gofiber/fiber/v2"

	"github.com/millbrook-logistics/dispatchd/internal/app/appconfig"
	"github.com/millbrook-logistics/dispatchd/internal/pkg/middlewares"
)

// V1 is the staff-facing API group (dispatch planning + dock board).
type V1 struct {
	fiber.Router
}

// Admin is the key-gated group for reference-data mutation and cache
// maintenance.
type Admin struct {
	fiber.Router
}

func CreateEndpointGroups(app *fiber.App, conf *appconfig.Config) (*V1, *Admin) {
	v1 := app.Group("/api/v1")
	admin := app.Group("/api/_/admin", middlewares.AdminKey(conf.AdminKey))

	return &V1{Router: v1}, &Admin{Router: admin}
}
