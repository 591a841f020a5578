package repo

import (
	"context"

	"github.com/uptrace/bun"

	"github.com/millbrook-logistics/dispatchd/internal/constant"
	"github.com/millbrook-logistics/dispatchd/internal/model"
	"github.com/millbrook-logistics/dispatchd/internal/repo/selector"
)

type Trailer struct {
	db  *bun.DB
	sel selector.S[model.Trailer]
}

func NewTrailer(db *bun.DB) *Trailer {
	return &Trailer{db: db, sel: selector.New[model.Trailer](db)}
}

func (r *Trailer) GetTrailers(ctx context.Context) ([]*model.Trailer, error) {
	return r.sel.SelectMany(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Order("number ASC")
	})
}

func (r *Trailer) GetActiveTrailers(ctx context.Context) ([]*model.Trailer, error) {
	return r.sel.SelectMany(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("status = ?", constant.EntityStatusActive).Order("number ASC")
	})
}

func (r *Trailer) GetTrailerByID(ctx context.Context, id int) (*model.Trailer, error) {
	return r.sel.SelectOne(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("trailer_id = ?", id)
	})
}

func (r *Trailer) GetTrailerByNumber(ctx context.Context, number string) (*model.Trailer, error) {
	return r.sel.SelectOne(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("number = ?", number)
	})
}

func (r *Trailer) CreateTrailer(ctx context.Context, trailer *model.Trailer) error {
	_, err := r.db.NewInsert().
		Model(trailer).
		Returning("trailer_id").
		Exec(ctx)
	return err
}

func (r *Trailer) UpdateTrailerStatus(ctx context.Context, id int, status string) error {
	_, err := r.db.NewUpdate().
		Model((*model.Trailer)(nil)).
		Set("status = ?", status).
		Where("trailer_id = ?", id).
		Exec(ctx)
	return err
}
