package types

import "gopkg.in/guregu/null.v3"

type CreateDriverRequest struct {
	Name string `json:"name" validate:"required"`
}

type CreateTruckRequest struct {
	Number string      `json:"number" validate:"required"`
	Type   string      `json:"type" validate:"required,oneof=tractor box_truck"`
	Notes  null.String `json:"notes"`
}

type CreateTrailerRequest struct {
	Number string      `json:"number" validate:"required"`
	Type   string      `json:"type" validate:"required,oneof=standard transfer"`
	Notes  null.String `json:"notes"`
}

type CreateLoaderRequest struct {
	Name string `json:"name" validate:"required"`
}

type CreateRouteRequest struct {
	Code        string      `json:"code" validate:"required"`
	Description null.String `json:"description"`
}

type UpdateEntityStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=active inactive maintenance retired"`
}

type PurgeCacheRequest struct {
	Name string      `json:"name" validate:"required"`
	Key  null.String `json:"key"`
}
