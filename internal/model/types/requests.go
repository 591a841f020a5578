package types

import (
	"gopkg.in/guregu/null.v3"
)

type LoginRequest struct {
	AccessKey string `json:"accessKey" validate:"required"`
}

type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresIn int64  `json:"expiresIn"`
}

type CreateTemplateRequest struct {
	DayOfWeek    int         `json:"dayOfWeek" validate:"required,min=1,max=5"`
	RouteID      null.Int    `json:"routeId"`
	DriverID     null.Int    `json:"driverId"`
	TruckID      null.Int    `json:"truckId"`
	TrailerID    null.Int    `json:"trailerId"`
	DispatchTime null.String `json:"dispatchTime"`
	Backhaul     null.String `json:"backhaul"`
	Notes        null.String `json:"notes"`
	SortOrder    null.Int    `json:"sortOrder"`
}

type UpdateTemplateRequest struct {
	RouteID      null.Int    `json:"routeId"`
	DriverID     null.Int    `json:"driverId"`
	TruckID      null.Int    `json:"truckId"`
	TrailerID    null.Int    `json:"trailerId"`
	DispatchTime null.String `json:"dispatchTime"`
	Backhaul     null.String `json:"backhaul"`
	Notes        null.String `json:"notes"`
	SortOrder    null.Int    `json:"sortOrder"`
}

// UpdateRosterFieldRequest patches a single field of one roster row. ID
// fields are carried in IDValue, text fields in TextValue; a null value
// clears the field.
type UpdateRosterFieldRequest struct {
	Field     string      `json:"field" validate:"required,oneof=route_id driver_id truck_id trailer_id dispatch_time backhaul notes"`
	IDValue   null.Int    `json:"idValue"`
	TextValue null.String `json:"textValue"`
}

type SetLoadingStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=not_started in_progress loaded"`
}

type AssignDoorRequest struct {
	DoorNumber   int      `json:"doorNumber" validate:"required,min=4,max=13"`
	TrailerID    int      `json:"trailerId" validate:"required"`
	AssignmentID null.Int `json:"dailyAssignmentId"`
}

type SetMoveStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=at_door jockey_moving truck_in departed"`
}

type AddLoaderRequest struct {
	LoaderID int `json:"loaderId" validate:"required"`
}
