package repo

import (
	"context"

	"github.com/uptrace/bun"

	"github.com/millbrook-logistics/dispatchd/internal/constant"
	"github.com/millbrook-logistics/dispatchd/internal/model"
	"github.com/millbrook-logistics/dispatchd/internal/repo/selector"
)

type Route struct {
	db  *bun.DB
	sel selector.S[model.Route]
}

func NewRoute(db *bun.DB) *Route {
	return &Route{db: db, sel: selector.New[model.Route](db)}
}

func (r *Route) GetRoutes(ctx context.Context) ([]*model.Route, error) {
	return r.sel.SelectMany(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Order("code ASC")
	})
}

func (r *Route) GetActiveRoutes(ctx context.Context) ([]*model.Route, error) {
	return r.sel.SelectMany(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("status = ?", constant.EntityStatusActive).Order("code ASC")
	})
}

func (r *Route) GetRouteByID(ctx context.Context, id int) (*model.Route, error) {
	return r.sel.SelectOne(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("route_id = ?", id)
	})
}

func (r *Route) CreateRoute(ctx context.Context, route *model.Route) error {
	_, err := r.db.NewInsert().
		Model(route).
		Returning("route_id").
		Exec(ctx)
	return err
}

func (r *Route) UpdateRouteStatus(ctx context.Context, id int, status string) error {
	_, err := r.db.NewUpdate().
		Model((*model.Route)(nil)).
		Set("status = ?", status).
		Where("route_id = ?", id).
		Exec(ctx)
	return err
}
