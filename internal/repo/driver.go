package repo

import (
	"context"

	"github.com/uptrace/bun"

	"github.com/millbrook-logistics/dispatchd/internal/constant"
	"github.com/millbrook-logistics/dispatchd/internal/model"
	"github.com/millbrook-logistics/dispatchd/internal/repo/selector"
)

type Driver struct {
	db  *bun.DB
	sel selector.S[model.Driver]
}

func NewDriver(db *bun.DB) *Driver {
	return &Driver{db: db, sel: selector.New[model.Driver](db)}
}

func (r *Driver) GetDrivers(ctx context.Context) ([]*model.Driver, error) {
	return r.sel.SelectMany(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Order("name ASC")
	})
}

func (r *Driver) GetActiveDrivers(ctx context.Context) ([]*model.Driver, error) {
	return r.sel.SelectMany(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("status = ?", constant.EntityStatusActive).Order("name ASC")
	})
}

func (r *Driver) GetDriverByID(ctx context.Context, id int) (*model.Driver, error) {
	return r.sel.SelectOne(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("driver_id = ?", id)
	})
}

func (r *Driver) CreateDriver(ctx context.Context, driver *model.Driver) error {
	_, err := r.db.NewInsert().
		Model(driver).
		Returning("driver_id").
		Exec(ctx)
	return err
}

func (r *Driver) UpdateDriverStatus(ctx context.Context, id int, status string) error {
	_, err := r.db.NewUpdate().
		Model((*model.Driver)(nil)).
		Set("status = ?", status).
		Where("driver_id = ?", id).
		Exec(ctx)
	return err
}
