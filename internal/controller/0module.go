package controller

import (
	"go.uber.org/fx"

	controllermeta "github.com/millbrook-logistics/dispatchd/internal/controller/meta"
	controllerv1 "github.com/millbrook-logistics/dispatchd/internal/controller/v1"
)

func Module() fx.Option {
	return fx.Module("controller",
		controllerv1.Module(),
		controllermeta.Module(),
	)
}
