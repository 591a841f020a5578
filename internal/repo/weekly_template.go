package repo

import (
	"context"

	"github.com/uptrace/bun"

	"github.com/millbrook-logistics/dispatchd/internal/model"
	"github.com/millbrook-logistics/dispatchd/internal/repo/selector"
)

type WeeklyTemplate struct {
	db  *bun.DB
	sel selector.S[model.WeeklyTemplate]
}

func NewWeeklyTemplate(db *bun.DB) *WeeklyTemplate {
	return &WeeklyTemplate{db: db, sel: selector.New[model.WeeklyTemplate](db)}
}

// GetTemplatesByDay returns the weekday's template rows in roster order,
// with reference entities preloaded.
func (r *WeeklyTemplate) GetTemplatesByDay(ctx context.Context, dayOfWeek int) ([]*model.WeeklyTemplate, error) {
	return r.sel.SelectMany(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.
			Relation("Route").
			Relation("Driver").
			Relation("Truck").
			Relation("Trailer").
			Where("wt.day_of_week = ?", dayOfWeek).
			Order("wt.sort_order ASC", "wt.template_id ASC")
	})
}

func (r *WeeklyTemplate) GetTemplateByID(ctx context.Context, id int) (*model.WeeklyTemplate, error) {
	return r.sel.SelectOne(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("template_id = ?", id)
	})
}

// NextSortOrder returns the smallest sort order that would place a new row
// at the bottom of the weekday's template.
func (r *WeeklyTemplate) NextSortOrder(ctx context.Context, dayOfWeek int) (int, error) {
	var max int
	err := r.db.NewSelect().
		Model((*model.WeeklyTemplate)(nil)).
		ColumnExpr("coalesce(max(sort_order), 0)").
		Where("day_of_week = ?", dayOfWeek).
		Scan(ctx, &max)
	if err != nil {
		return 0, err
	}
	return max + 1, nil
}

func (r *WeeklyTemplate) CreateTemplate(ctx context.Context, template *model.WeeklyTemplate) error {
	_, err := r.db.NewInsert().
		Model(template).
		Returning("template_id").
		Exec(ctx)
	return err
}

// UpdateTemplateField writes a single column of a template row. The column
// name must come from the caller's whitelist, never from the request.
func (r *WeeklyTemplate) UpdateTemplateField(ctx context.Context, id int, column string, value any) error {
	_, err := r.db.NewUpdate().
		Model((*model.WeeklyTemplate)(nil)).
		Set("? = ?", bun.Ident(column), value).
		Set("updated_at = now()").
		Where("template_id = ?", id).
		Exec(ctx)
	return err
}

func (r *WeeklyTemplate) DeleteTemplate(ctx context.Context, id int) error {
	_, err := r.db.NewDelete().
		Model((*model.WeeklyTemplate)(nil)).
		Where("template_id = ?", id).
		Exec(ctx)
	return err
}
