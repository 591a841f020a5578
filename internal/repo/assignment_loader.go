package repo

import (
	"context"

	"github.com/uptrace/bun"

	"github.com/millbrook-logistics/dispatchd/internal/model"
	"github.com/millbrook-logistics/dispatchd/internal/repo/selector"
)

type AssignmentLoader struct {
	db  *bun.DB
	sel selector.S[model.AssignmentLoader]
}

func NewAssignmentLoader(db *bun.DB) *AssignmentLoader {
	return &AssignmentLoader{db: db, sel: selector.New[model.AssignmentLoader](db)}
}

func (r *AssignmentLoader) GetByAssignment(ctx context.Context, assignmentID int) ([]*model.AssignmentLoader, error) {
	return r.sel.SelectMany(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.
			Relation("Loader").
			Where("al.assignment_id = ?", assignmentID).
			Order("al.created_at ASC", "al.assignment_loader_id ASC")
	})
}

func (r *AssignmentLoader) DeleteAssignmentLoader(ctx context.Context, assignmentID, loaderID int) (bool, error) {
	res, err := r.db.NewDelete().
		Model((*model.AssignmentLoader)(nil)).
		Where("assignment_id = ?", assignmentID).
		Where("loader_id = ?", loaderID).
		Exec(ctx)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// WithTx runs fn against a transaction so crew changes and their roster
// side effects land atomically.
func (r *AssignmentLoader) WithTx(ctx context.Context, fn func(ctx context.Context, tx bun.Tx) error) error {
	return r.db.RunInTx(ctx, nil, fn)
}
