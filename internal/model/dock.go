package model

import "time"

// DockDoor is one physical door in the dock snapshot, with its active
// assignment if occupied.
type DockDoor struct {
	DoorNumber int             `json:"doorNumber"`
	Assignment *DoorAssignment `json:"assignment,omitempty"`
}

// YardTrailer is a finalized route's trailer that is loadable but not yet at
// a door: the "unassigned, in-yard" pool.
type YardTrailer struct {
	TrailerID     int    `json:"trailerId"`
	TrailerNumber string `json:"trailerNumber"`
	AssignmentID  int    `json:"dailyAssignmentId"`
	RouteCode     string `json:"routeCode"`
	LoadingStatus string `json:"loadingStatus"`
	DispatchTime  string `json:"dispatchTime,omitempty"`
}

// DockSnapshot is the full dock state for a delivery date, re-derived from
// scratch on every refresh.
type DockSnapshot struct {
	Date       string         `json:"date"`
	Doors      []*DockDoor    `json:"doors"`
	Unassigned []*YardTrailer `json:"unassigned"`
	Occupied   int            `json:"occupied"`
	Empty      int            `json:"empty"`
	DerivedAt  time.Time      `json:"derivedAt"`
}
