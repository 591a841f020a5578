package model

import (
	"time"

	"github.com/uptrace/bun"
	"gopkg.in/guregu/null.v3"
)

// DailyAssignment is the date-specific, materialized instance of a roster
// entry. A date either has zero rows (virtual: the weekday's templates are
// displayed instead) or carries the whole day's roster.
type DailyAssignment struct {
	bun.BaseModel `bun:"daily_assignments,alias:da"`

	AssignmentID   int         `bun:",pk,autoincrement" json:"id"`
	Date           string      `json:"date"`
	RouteID        null.Int    `json:"routeId"`
	DriverID       null.Int    `json:"driverId"`
	TruckID        null.Int    `json:"truckId"`
	TrailerID      null.Int    `json:"trailerId"`
	DispatchTime   null.String `json:"dispatchTime"`
	Backhaul       null.String `json:"backhaul"`
	Notes          null.String `json:"notes"`
	PlanningStatus string      `json:"planningStatus"`
	LoadingStatus  string      `json:"loadingStatus"`
	SortOrder      int         `json:"sortOrder"`
	CreatedAt      time.Time   `bun:",nullzero,default:now()" json:"createdAt"`
	UpdatedAt      time.Time   `bun:",nullzero,default:now()" json:"updatedAt"`

	Route   *Route   `bun:"rel:belongs-to,join:route_id=route_id" json:"route,omitempty"`
	Driver  *Driver  `bun:"rel:belongs-to,join:driver_id=driver_id" json:"driver,omitempty"`
	Truck   *Truck   `bun:"rel:belongs-to,join:truck_id=truck_id" json:"truck,omitempty"`
	Trailer *Trailer `bun:"rel:belongs-to,join:trailer_id=trailer_id" json:"trailer,omitempty"`

	Loaders []*AssignmentLoader `bun:"rel:has-many,join:assignment_id=assignment_id" json:"loaders,omitempty"`
}
