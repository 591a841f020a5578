package repo

import (
	"context"

	"github.com/uptrace/bun"

	"github.com/millbrook-logistics/dispatchd/internal/constant"
	"github.com/millbrook-logistics/dispatchd/internal/model"
	"github.com/millbrook-logistics/dispatchd/internal/repo/selector"
)

type Loader struct {
	db  *bun.DB
	sel selector.S[model.Loader]
}

func NewLoader(db *bun.DB) *Loader {
	return &Loader{db: db, sel: selector.New[model.Loader](db)}
}

func (r *Loader) GetLoaders(ctx context.Context) ([]*model.Loader, error) {
	return r.sel.SelectMany(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Order("name ASC")
	})
}

func (r *Loader) GetActiveLoaders(ctx context.Context) ([]*model.Loader, error) {
	return r.sel.SelectMany(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("status = ?", constant.EntityStatusActive).Order("name ASC")
	})
}

func (r *Loader) GetLoaderByID(ctx context.Context, id int) (*model.Loader, error) {
	return r.sel.SelectOne(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("loader_id = ?", id)
	})
}

func (r *Loader) CreateLoader(ctx context.Context, loader *model.Loader) error {
	_, err := r.db.NewInsert().
		Model(loader).
		Returning("loader_id").
		Exec(ctx)
	return err
}

func (r *Loader) UpdateLoaderStatus(ctx context.Context, id int, status string) error {
	_, err := r.db.NewUpdate().
		Model((*model.Loader)(nil)).
		Set("status = ?", status).
		Where("loader_id = ?", id).
		Exec(ctx)
	return err
}
