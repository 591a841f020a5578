package repo

import (
	"context"

	"github.com/uptrace/bun"

	"github.com/millbrook-logistics/dispatchd/internal/constant"
	"github.com/millbrook-logistics/dispatchd/internal/model"
	"github.com/millbrook-logistics/dispatchd/internal/repo/selector"
)

type DoorAssignment struct {
	db  *bun.DB
	sel selector.S[model.DoorAssignment]
}

func NewDoorAssignment(db *bun.DB) *DoorAssignment {
	return &DoorAssignment{db: db, sel: selector.New[model.DoorAssignment](db)}
}

// GetActiveByDate returns the date's live door occupancy, one row per
// occupied door.
func (r *DoorAssignment) GetActiveByDate(ctx context.Context, date string) ([]*model.DoorAssignment, error) {
	return r.sel.SelectMany(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.
			Relation("Trailer").
			Relation("Assignment").
			Relation("Assignment.Route").
			Where("do.date = ?", date).
			Where("do.removed_at IS NULL").
			Order("do.door_number ASC")
	})
}

func (r *DoorAssignment) GetActiveByID(ctx context.Context, id int) (*model.DoorAssignment, error) {
	return r.sel.SelectOne(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.
			Where("door_assignment_id = ?", id).
			Where("removed_at IS NULL")
	})
}

func (r *DoorAssignment) GetActiveByDoor(ctx context.Context, date string, doorNumber int) (*model.DoorAssignment, error) {
	return r.sel.SelectOne(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.
			Where("date = ?", date).
			Where("door_number = ?", doorNumber).
			Where("removed_at IS NULL")
	})
}

func (r *DoorAssignment) GetActiveByTrailer(ctx context.Context, date string, trailerID int) (*model.DoorAssignment, error) {
	return r.sel.SelectOne(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.
			Where("date = ?", date).
			Where("trailer_id = ?", trailerID).
			Where("removed_at IS NULL")
	})
}

func (r *DoorAssignment) CreateDoorAssignment(ctx context.Context, assignment *model.DoorAssignment) error {
	_, err := r.db.NewInsert().
		Model(assignment).
		Returning("door_assignment_id, assigned_at").
		Exec(ctx)
	return err
}

func (r *DoorAssignment) SetMoveStatus(ctx context.Context, id int, status string) error {
	_, err := r.db.NewUpdate().
		Model((*model.DoorAssignment)(nil)).
		Set("move_status = ?", status).
		Where("door_assignment_id = ?", id).
		Where("removed_at IS NULL").
		Exec(ctx)
	return err
}

// Depart records the departure and closes the row in one statement, so a
// departed trailer can never linger as active occupancy.
func (r *DoorAssignment) Depart(ctx context.Context, id int) error {
	_, err := r.db.NewUpdate().
		Model((*model.DoorAssignment)(nil)).
		Set("move_status = ?", constant.MoveStatusDeparted).
		Set("removed_at = now()").
		Where("door_assignment_id = ?", id).
		Where("removed_at IS NULL").
		Exec(ctx)
	return err
}

// Retire closes an occupancy row instead of deleting it, so the day keeps a
// full movement history.
func (r *DoorAssignment) Retire(ctx context.Context, id int) error {
	_, err := r.db.NewUpdate().
		Model((*model.DoorAssignment)(nil)).
		Set("removed_at = now()").
		Where("door_assignment_id = ?", id).
		Where("removed_at IS NULL").
		Exec(ctx)
	return err
}
