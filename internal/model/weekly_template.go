package model

import (
	"time"

	"github.com/uptrace/bun"
	"gopkg.in/guregu/null.v3"
)

// WeeklyTemplate is the recurring default roster row for a weekday
// (Monday=1 .. Friday=5), independent of any calendar date.
type WeeklyTemplate struct {
	bun.BaseModel `bun:"weekly_templates,alias:wt"`

	TemplateID   int         `bun:",pk,autoincrement" json:"id"`
	DayOfWeek    int         `json:"dayOfWeek"`
	RouteID      null.Int    `json:"routeId"`
	DriverID     null.Int    `json:"driverId"`
	TruckID      null.Int    `json:"truckId"`
	TrailerID    null.Int    `json:"trailerId"`
	DispatchTime null.String `json:"dispatchTime"`
	Backhaul     null.String `json:"backhaul"`
	Notes        null.String `json:"notes"`
	SortOrder    int         `json:"sortOrder"`
	CreatedAt    time.Time   `bun:",nullzero,default:now()" json:"createdAt"`
	UpdatedAt    time.Time   `bun:",nullzero,default:now()" json:"updatedAt"`

	Route   *Route   `bun:"rel:belongs-to,join:route_id=route_id" json:"route,omitempty"`
	Driver  *Driver  `bun:"rel:belongs-to,join:driver_id=driver_id" json:"driver,omitempty"`
	Truck   *Truck   `bun:"rel:belongs-to,join:truck_id=truck_id" json:"truck,omitempty"`
	Trailer *Trailer `bun:"rel:belongs-to,join:trailer_id=trailer_id" json:"trailer,omitempty"`
}
