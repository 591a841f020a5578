package repo

import (
	"context"

	"github.com/uptrace/bun"

	"github.com/millbrook-logistics/dispatchd/internal/constant"
	"github.com/millbrook-logistics/dispatchd/internal/model"
	"github.com/millbrook-logistics/dispatchd/internal/repo/selector"
)

type Truck struct {
	db  *bun.DB
	sel selector.S[model.Truck]
}

func NewTruck(db *bun.DB) *Truck {
	return &Truck{db: db, sel: selector.New[model.Truck](db)}
}

func (r *Truck) GetTrucks(ctx context.Context) ([]*model.Truck, error) {
	return r.sel.SelectMany(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Order("number ASC")
	})
}

func (r *Truck) GetActiveTrucks(ctx context.Context) ([]*model.Truck, error) {
	return r.sel.SelectMany(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("status = ?", constant.EntityStatusActive).Order("number ASC")
	})
}

func (r *Truck) GetTruckByID(ctx context.Context, id int) (*model.Truck, error) {
	return r.sel.SelectOne(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("truck_id = ?", id)
	})
}

func (r *Truck) CreateTruck(ctx context.Context, truck *model.Truck) error {
	_, err := r.db.NewInsert().
		Model(truck).
		Returning("truck_id").
		Exec(ctx)
	return err
}

func (r *Truck) UpdateTruckStatus(ctx context.Context, id int, status string) error {
	_, err := r.db.NewUpdate().
		Model((*model.Truck)(nil)).
		Set("status = ?", status).
		Where("truck_id = ?", id).
		Exec(ctx)
	return err
}
