package service

import (
	"context"

	"gopkg.in/guregu/null.v3"

	"github.com/millbrook-logistics/dispatchd/internal/model"
	"github.com/millbrook-logistics/dispatchd/internal/model/types"
	"github.com/millbrook-logistics/dispatchd/internal/pkg/apperr"
	"github.com/millbrook-logistics/dispatchd/internal/pkg/workdate"
	"github.com/millbrook-logistics/dispatchd/internal/repo"
)

// Template manages the recurring weekly roster defaults. Template rows are
// never shown or edited through the daily roster; they have their own CRUD.
type Template struct {
	TemplateRepo *repo.WeeklyTemplate
}

func NewTemplate(templateRepo *repo.WeeklyTemplate) *Template {
	return &Template{TemplateRepo: templateRepo}
}

func (s *Template) List(ctx context.Context, dayOfWeek int) ([]*model.WeeklyTemplate, error) {
	if dayOfWeek < 1 || dayOfWeek > 5 {
		return nil, apperr.ErrInvalidReq.Msg("day_of_week must be a weekday (1..5)")
	}
	return s.TemplateRepo.GetTemplatesByDay(ctx, dayOfWeek)
}

func (s *Template) Create(ctx context.Context, req *types.CreateTemplateRequest) (*model.WeeklyTemplate, error) {
	dispatchTime, err := normalizeDispatchTime(req.DispatchTime)
	if err != nil {
		return nil, err
	}

	sortOrder := int(req.SortOrder.Int64)
	if !req.SortOrder.Valid {
		sortOrder, err = s.TemplateRepo.NextSortOrder(ctx, req.DayOfWeek)
		if err != nil {
			return nil, err
		}
	}

	template := &model.WeeklyTemplate{
		DayOfWeek:    req.DayOfWeek,
		RouteID:      req.RouteID,
		DriverID:     req.DriverID,
		TruckID:      req.TruckID,
		TrailerID:    req.TrailerID,
		DispatchTime: dispatchTime,
		Backhaul:     req.Backhaul,
		Notes:        req.Notes,
		SortOrder:    sortOrder,
	}
	if err := s.TemplateRepo.CreateTemplate(ctx, template); err != nil {
		return nil, err
	}
	return template, nil
}

// Update patches the provided fields of one template row. Absent (null)
// id fields are left untouched rather than cleared; use the roster's
// single-field endpoint semantics for clearing via the daily view.
func (s *Template) Update(ctx context.Context, id int, req *types.UpdateTemplateRequest) (*model.WeeklyTemplate, error) {
	if _, err := s.TemplateRepo.GetTemplateByID(ctx, id); err != nil {
		return nil, err
	}

	fields := map[string]any{}
	if req.RouteID.Valid {
		fields["route_id"] = req.RouteID
	}
	if req.DriverID.Valid {
		fields["driver_id"] = req.DriverID
	}
	if req.TruckID.Valid {
		fields["truck_id"] = req.TruckID
	}
	if req.TrailerID.Valid {
		fields["trailer_id"] = req.TrailerID
	}
	if req.DispatchTime.Valid {
		dispatchTime, err := normalizeDispatchTime(req.DispatchTime)
		if err != nil {
			return nil, err
		}
		fields["dispatch_time"] = dispatchTime
	}
	if req.Backhaul.Valid {
		fields["backhaul"] = req.Backhaul
	}
	if req.Notes.Valid {
		fields["notes"] = req.Notes
	}
	if req.SortOrder.Valid {
		fields["sort_order"] = req.SortOrder
	}

	for column, value := range fields {
		if err := s.TemplateRepo.UpdateTemplateField(ctx, id, column, value); err != nil {
			return nil, err
		}
	}

	return s.TemplateRepo.GetTemplateByID(ctx, id)
}

func (s *Template) Delete(ctx context.Context, id int) error {
	if _, err := s.TemplateRepo.GetTemplateByID(ctx, id); err != nil {
		return err
	}
	return s.TemplateRepo.DeleteTemplate(ctx, id)
}

// normalizeDispatchTime converts user-entered dispatch times ("5:30am",
// "17:30") to the stored HH:MM:SS form. Null passes through untouched.
func normalizeDispatchTime(v null.String) (null.String, error) {
	if !v.Valid || v.String == "" {
		return v, nil
	}
	stored, err := workdate.ParseTimeOfDay(v.String)
	if err != nil {
		return null.String{}, apperr.ErrInvalidReq.Msg("unrecognized dispatch time %q", v.String)
	}
	return null.StringFrom(stored), nil
}
