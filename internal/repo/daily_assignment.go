package repo

import (
	"context"

	"github.com/uptrace/bun"

	"github.com/millbrook-logistics/dispatchd/internal/constant"
	"github.com/millbrook-logistics/dispatchd/internal/model"
	"github.com/millbrook-logistics/dispatchd/internal/repo/selector"
)

type DailyAssignment struct {
	db  *bun.DB
	sel selector.S[model.DailyAssignment]
}

func NewDailyAssignment(db *bun.DB) *DailyAssignment {
	return &DailyAssignment{db: db, sel: selector.New[model.DailyAssignment](db)}
}

// GetAssignmentsByDate returns the materialized roster for a date in roster
// order. An empty slice means the date is still virtual.
func (r *DailyAssignment) GetAssignmentsByDate(ctx context.Context, date string) ([]*model.DailyAssignment, error) {
	return r.sel.SelectMany(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.
			Relation("Route").
			Relation("Driver").
			Relation("Truck").
			Relation("Trailer").
			Relation("Loaders").
			Relation("Loaders.Loader").
			Where("da.date = ?", date).
			Order("da.sort_order ASC", "da.assignment_id ASC")
	})
}

func (r *DailyAssignment) GetAssignmentByID(ctx context.Context, id int) (*model.DailyAssignment, error) {
	return r.sel.SelectOne(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("assignment_id = ?", id)
	})
}

// CountByDate reports how many assignment rows a date carries, regardless of
// planning status.
func (r *DailyAssignment) CountByDate(ctx context.Context, date string) (int, error) {
	return r.db.NewSelect().
		Model((*model.DailyAssignment)(nil)).
		Where("date = ?", date).
		Count(ctx)
}

// CreateBatch materializes a whole day's rows in one transaction and fills
// the generated assignment ids back into the models. An advisory lock on the
// date plus an in-lock emptiness recheck makes the date the atomic unit:
// of two racing promotions, exactly one inserts and the other reports false.
func (r *DailyAssignment) CreateBatch(ctx context.Context, date string, assignments []*model.DailyAssignment) (bool, error) {
	var inserted bool
	err := r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.ExecContext(ctx, "SELECT pg_advisory_xact_lock(hashtext(?))", date); err != nil {
			return err
		}

		count, err := tx.NewSelect().
			Model((*model.DailyAssignment)(nil)).
			Where("date = ?", date).
			Count(ctx)
		if err != nil {
			return err
		}
		if count > 0 {
			return nil
		}

		inserted = true
		if len(assignments) == 0 {
			return nil
		}
		_, err = tx.NewInsert().
			Model(&assignments).
			Returning("assignment_id").
			Exec(ctx)
		return err
	})
	return inserted, err
}

func (r *DailyAssignment) CreateAssignment(ctx context.Context, assignment *model.DailyAssignment) error {
	_, err := r.db.NewInsert().
		Model(assignment).
		Returning("assignment_id").
		Exec(ctx)
	return err
}

// UpdateAssignmentField writes a single column of an assignment row. The
// column name must come from the caller's whitelist, never from the request.
func (r *DailyAssignment) UpdateAssignmentField(ctx context.Context, id int, column string, value any) error {
	_, err := r.db.NewUpdate().
		Model((*model.DailyAssignment)(nil)).
		Set("? = ?", bun.Ident(column), value).
		Set("updated_at = now()").
		Where("assignment_id = ?", id).
		Exec(ctx)
	return err
}

func (r *DailyAssignment) SetLoadingStatus(ctx context.Context, id int, status string) error {
	_, err := r.db.NewUpdate().
		Model((*model.DailyAssignment)(nil)).
		Set("loading_status = ?", status).
		Set("updated_at = now()").
		Where("assignment_id = ?", id).
		Exec(ctx)
	return err
}

// SetPlanningStatusByDate flips every row of a date between draft and
// finalized and reports how many rows were touched.
func (r *DailyAssignment) SetPlanningStatusByDate(ctx context.Context, date string, status string) (int, error) {
	res, err := r.db.NewUpdate().
		Model((*model.DailyAssignment)(nil)).
		Set("planning_status = ?", status).
		Set("updated_at = now()").
		Where("date = ?", date).
		Exec(ctx)
	if err != nil {
		return 0, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	return int(affected), nil
}

func (r *DailyAssignment) DeleteAssignment(ctx context.Context, id int) error {
	_, err := r.db.NewDelete().
		Model((*model.DailyAssignment)(nil)).
		Where("assignment_id = ?", id).
		Exec(ctx)
	return err
}

// DeleteByDate drops the date's whole roster so it reverts to virtual. The
// loader crew rows go with it in the same transaction.
func (r *DailyAssignment) DeleteByDate(ctx context.Context, date string) error {
	return r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		_, err := tx.NewDelete().
			Model((*model.AssignmentLoader)(nil)).
			Where("assignment_id IN (SELECT assignment_id FROM daily_assignments WHERE date = ?)", date).
			Exec(ctx)
		if err != nil {
			return err
		}
		_, err = tx.NewDelete().
			Model((*model.DailyAssignment)(nil)).
			Where("date = ?", date).
			Exec(ctx)
		return err
	})
}

// GetFinalizedWithTrailer returns the date's finalized rows that have a
// trailer attached, for dock reconciliation.
func (r *DailyAssignment) GetFinalizedWithTrailer(ctx context.Context, date string) ([]*model.DailyAssignment, error) {
	return r.sel.SelectMany(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.
			Relation("Trailer").
			Relation("Route").
			Where("da.date = ?", date).
			Where("da.planning_status = ?", constant.PlanningStatusFinalized).
			Where("da.trailer_id IS NOT NULL").
			Order("da.sort_order ASC", "da.assignment_id ASC")
	})
}
