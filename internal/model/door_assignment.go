package model

import (
	"time"

	"github.com/uptrace/bun"
	"gopkg.in/guregu/null.v3"
)

// DoorAssignment is the dock-door occupancy record of a trailer for a
// delivery date. A row is active while removed_at is null; at most one active
// row may exist per (door_number, date) and per assignment.
type DoorAssignment struct {
	bun.BaseModel `bun:"door_assignments,alias:do"`

	DoorAssignmentID int       `bun:",pk,autoincrement" json:"id"`
	DoorNumber       int       `json:"doorNumber"`
	TrailerID        int       `json:"trailerId"`
	AssignmentID     null.Int  `json:"dailyAssignmentId"`
	Date             string    `json:"date"`
	MoveStatus       string    `json:"moveStatus"`
	AssignedAt       time.Time `bun:",nullzero,default:now()" json:"assignedAt"`
	RemovedAt        null.Time `json:"removedAt"`

	Trailer    *Trailer         `bun:"rel:belongs-to,join:trailer_id=trailer_id" json:"trailer,omitempty"`
	Assignment *DailyAssignment `bun:"rel:belongs-to,join:assignment_id=assignment_id" json:"assignment,omitempty"`
}

// Active reports whether the row still occupies its door.
func (d *DoorAssignment) Active() bool {
	return !d.RemovedAt.Valid
}
