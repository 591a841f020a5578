package model

import (
	"gopkg.in/guregu/null.v3"
)

const (
	RosterSourceTemplate   = "template"
	RosterSourceAssignment = "assignment"
)

// RosterRow is one displayed row of a date's roster, sourced either from a
// weekly template (virtual date) or from a daily assignment (materialized
// date). ID is the template id or the assignment id depending on Source.
type RosterRow struct {
	ID             int         `json:"id"`
	Source         string      `json:"source"`
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

	Route   *Route   `json:"route,omitempty"`
	Driver  *Driver  `json:"driver,omitempty"`
	Truck   *Truck   `json:"truck,omitempty"`
	Trailer *Trailer `json:"trailer,omitempty"`
}

// DayRoster is the resolved roster of one calendar date.
type DayRoster struct {
	Date           string       `json:"date"`
	DayOfWeek      int          `json:"dayOfWeek"`
	HasAssignments bool         `json:"hasAssignments"`
	IsFinalized    bool         `json:"isFinalized"`
	Rows           []*RosterRow `json:"rows"`
}
