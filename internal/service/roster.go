package service

import (
	"context"
	"time"

	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/millbrook-logistics/dispatchd/internal/constant"
	"github.com/millbrook-logistics/dispatchd/internal/model"
	"github.com/millbrook-logistics/dispatchd/internal/model/types"
	"github.com/millbrook-logistics/dispatchd/internal/pkg/apperr"
	"github.com/millbrook-logistics/dispatchd/internal/pkg/observability"
	"github.com/millbrook-logistics/dispatchd/internal/pkg/workdate"
	"github.com/millbrook-logistics/dispatchd/internal/repo"
)

// Roster owns the daily assignment lifecycle: a calendar date starts out
// virtual (rendered straight from the weekly template) and materializes
// into daily_assignments rows on the first edit, finalize or explicit add.
type Roster struct {
	TemplateRepo   *repo.WeeklyTemplate
	AssignmentRepo *repo.DailyAssignment
}

func NewRoster(templateRepo *repo.WeeklyTemplate, assignmentRepo *repo.DailyAssignment) *Roster {
	return &Roster{
		TemplateRepo:   templateRepo,
		AssignmentRepo: assignmentRepo,
	}
}

// Resolve returns the roster displayed for a date. Materialized dates read
// their own rows; virtual dates project the weekday's template. Weekend
// dates resolve to an empty virtual roster.
func (s *Roster) Resolve(ctx context.Context, date string) (*model.DayRoster, error) {
	day, err := workdate.Parse(date)
	if err != nil {
		return nil, apperr.ErrInvalidReq.Msg("invalid date %q", date)
	}
	dayOfWeek := workdate.DayOfWeek(day)

	assignments, err := s.AssignmentRepo.GetAssignmentsByDate(ctx, date)
	if err != nil {
		return nil, err
	}
	if len(assignments) > 0 {
		return rosterFromAssignments(date, dayOfWeek, assignments), nil
	}

	var templates []*model.WeeklyTemplate
	if !workdate.IsWeekend(day) {
		templates, err = s.TemplateRepo.GetTemplatesByDay(ctx, dayOfWeek)
		if err != nil {
			return nil, err
		}
	}
	return rosterFromTemplates(date, dayOfWeek, templates), nil
}

// Promote materializes a virtual date: every template row of the weekday is
// copied into daily_assignments in one transaction, roster order preserved,
// with the requested planning status. The created rows come back with their
// generated ids so callers never have to re-find a row by list position.
func (s *Roster) Promote(ctx context.Context, date string, planningStatus string, trigger string) ([]*model.DailyAssignment, error) {
	day, err := workdate.Parse(date)
	if err != nil {
		return nil, apperr.ErrInvalidReq.Msg("invalid date %q", date)
	}

	count, err := s.AssignmentRepo.CountByDate(ctx, date)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, apperr.ErrInvalidReq.Msg("date %s already has assignments", date)
	}

	templates, err := s.TemplateRepo.GetTemplatesByDay(ctx, workdate.DayOfWeek(day))
	if err != nil {
		return nil, err
	}

	assignments := buildPromotion(date, templates, planningStatus)
	// the count check above is a fast path only; the batch insert rechecks
	// emptiness under a per-date lock, so a racing promotion loses here
	inserted, err := s.AssignmentRepo.CreateBatch(ctx, date, assignments)
	if err != nil {
		return nil, err
	}
	if !inserted {
		return nil, apperr.ErrInvalidReq.Msg("date %s already has assignments", date)
	}

	if len(assignments) > 0 {
		observability.RosterPromotions.WithLabelValues(trigger).Inc()
		log.Ctx(ctx).Info().
			Str("date", date).
			Str("planningStatus", planningStatus).
			Int("rows", len(assignments)).
			Msg("promoted template to daily assignments")
	}

	return assignments, nil
}

// UpdateField patches one field of the roster row at the given display
// position. Editing a virtual date promotes it first; the target row is then
// taken from the promotion's returned set, not re-queried.
func (s *Roster) UpdateField(ctx context.Context, date string, position int, req *types.UpdateRosterFieldRequest) (*model.DailyAssignment, error) {
	if position < 0 {
		return nil, apperr.ErrInvalidReq.Msg("row position must not be negative")
	}

	column, value, err := rosterFieldValue(req)
	if err != nil {
		return nil, err
	}

	assignments, err := s.AssignmentRepo.GetAssignmentsByDate(ctx, date)
	if err != nil {
		return nil, err
	}
	if len(assignments) == 0 {
		assignments, err = s.Promote(ctx, date, constant.PlanningStatusDraft, "field_edit")
		if err != nil {
			return nil, err
		}
	}
	if position >= len(assignments) {
		return nil, apperr.ErrNotFound.Msg("no roster row at position %d for %s", position, date)
	}

	id := assignments[position].AssignmentID
	if err := s.AssignmentRepo.UpdateAssignmentField(ctx, id, column, value); err != nil {
		return nil, err
	}
	return s.AssignmentRepo.GetAssignmentByID(ctx, id)
}

// Finalize locks in the date's roster. A virtual date is promoted directly
// as finalized; a materialized one is bulk-updated. Finalizing an already
// finalized date is a no-op. A date that resolves to zero rows cannot be
// finalized.
func (s *Roster) Finalize(ctx context.Context, date string) error {
	count, err := s.AssignmentRepo.CountByDate(ctx, date)
	if err != nil {
		return err
	}

	if count == 0 {
		created, err := s.Promote(ctx, date, constant.PlanningStatusFinalized, "finalize")
		if err != nil {
			return err
		}
		if len(created) == 0 {
			return apperr.ErrEmptyRoster
		}
	} else {
		if _, err := s.AssignmentRepo.SetPlanningStatusByDate(ctx, date, constant.PlanningStatusFinalized); err != nil {
			return err
		}
	}

	observability.RosterFinalizations.WithLabelValues("finalize").Inc()
	return nil
}

// Unfinalize reopens a finalized date for editing. Row content is untouched.
func (s *Roster) Unfinalize(ctx context.Context, date string) error {
	affected, err := s.AssignmentRepo.SetPlanningStatusByDate(ctx, date, constant.PlanningStatusDraft)
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperr.ErrNotFound.Msg("no assignments exist for %s", date)
	}
	observability.RosterFinalizations.WithLabelValues("unfinalize").Inc()
	return nil
}

// ResetToTemplate discards the date's materialized roster so it reverts to
// the weekday's template. A finalized date must be unfinalized first.
func (s *Roster) ResetToTemplate(ctx context.Context, date string) error {
	assignments, err := s.AssignmentRepo.GetAssignmentsByDate(ctx, date)
	if err != nil {
		return err
	}
	if len(assignments) == 0 {
		return nil
	}
	if rosterFinalized(assignments) {
		return apperr.ErrRosterFinalized.Msg("unfinalize %s before resetting it to the template", date)
	}

	if err := s.AssignmentRepo.DeleteByDate(ctx, date); err != nil {
		return err
	}
	log.Ctx(ctx).Info().Str("date", date).Int("rows", len(assignments)).Msg("reset date to template")
	return nil
}

// AddRow appends one empty assignment row to the date's roster, promoting
// the date first when it is still virtual.
func (s *Roster) AddRow(ctx context.Context, date string) (*model.DailyAssignment, error) {
	assignments, err := s.AssignmentRepo.GetAssignmentsByDate(ctx, date)
	if err != nil {
		return nil, err
	}
	if len(assignments) == 0 {
		assignments, err = s.Promote(ctx, date, constant.PlanningStatusDraft, "add_row")
		if err != nil {
			return nil, err
		}
	}

	planningStatus := constant.PlanningStatusDraft
	if rosterFinalized(assignments) {
		// planning status stays uniform across the date
		planningStatus = constant.PlanningStatusFinalized
	}

	assignment := &model.DailyAssignment{
		Date:           date,
		PlanningStatus: planningStatus,
		LoadingStatus:  constant.LoadingStatusNotStarted,
		SortOrder:      nextSortOrder(assignments),
	}
	if err := s.AssignmentRepo.CreateAssignment(ctx, assignment); err != nil {
		return nil, err
	}
	return assignment, nil
}

// DeleteRow removes one assignment-sourced row. Rows of a virtual date come
// from the weekly template and cannot be deleted here.
func (s *Roster) DeleteRow(ctx context.Context, date string, id int) error {
	count, err := s.AssignmentRepo.CountByDate(ctx, date)
	if err != nil {
		return err
	}
	if count == 0 {
		return apperr.ErrTemplateRow
	}

	assignment, err := s.AssignmentRepo.GetAssignmentByID(ctx, id)
	if err != nil {
		return err
	}
	if assignment.Date != date {
		return apperr.ErrNotFound.Msg("assignment %d does not belong to %s", id, date)
	}
	return s.AssignmentRepo.DeleteAssignment(ctx, id)
}

// SetLoadingStatus moves one assignment through the shipping-floor cycle
// (not_started, in_progress, loaded). Transitions are free-form.
func (s *Roster) SetLoadingStatus(ctx context.Context, id int, status string) (*model.DailyAssignment, error) {
	if _, err := s.AssignmentRepo.GetAssignmentByID(ctx, id); err != nil {
		return nil, err
	}
	if err := s.AssignmentRepo.SetLoadingStatus(ctx, id, status); err != nil {
		return nil, err
	}
	return s.AssignmentRepo.GetAssignmentByID(ctx, id)
}

// buildPromotion copies the weekday's template rows into fresh assignment
// models for a date. Order becomes sort_order so the materialized roster
// renders identically to the virtual one.
func buildPromotion(date string, templates []*model.WeeklyTemplate, planningStatus string) []*model.DailyAssignment {
	assignments := make([]*model.DailyAssignment, 0, len(templates))
	for i, template := range templates {
		assignment := &model.DailyAssignment{}
		// field-for-field copy of the schedulable columns; ids and
		// bookkeeping are set explicitly below
		if err := copier.Copy(assignment, template); err != nil {
			// the two structs share field names; a copy failure is a
			// programming error, not an input error
			log.Error().Err(err).Msg("template copy failed")
		}
		assignment.AssignmentID = 0
		// zeroed so the insert falls through to the column defaults; the
		// copy above would otherwise persist the template's timestamps
		assignment.CreatedAt = time.Time{}
		assignment.UpdatedAt = time.Time{}
		assignment.Date = date
		assignment.PlanningStatus = planningStatus
		assignment.LoadingStatus = constant.LoadingStatusNotStarted
		assignment.SortOrder = i + 1
		assignments = append(assignments, assignment)
	}
	return assignments
}

// rosterFinalized reports whether any row of the date is finalized. Planning
// status is uniform per date in normal operation, but the any-of scan keeps
// the answer honest when a date got into a mixed state.
func rosterFinalized(assignments []*model.DailyAssignment) bool {
	return lo.SomeBy(assignments, func(a *model.DailyAssignment) bool {
		return a.PlanningStatus == constant.PlanningStatusFinalized
	})
}

func nextSortOrder(assignments []*model.DailyAssignment) int {
	max := 0
	for _, a := range assignments {
		if a.SortOrder > max {
			max = a.SortOrder
		}
	}
	return max + 1
}

// rosterFieldValue maps a field-edit request onto the target column and the
// value to write. The field name is validated against a whitelist upstream;
// this keeps the id/text split in one place.
func rosterFieldValue(req *types.UpdateRosterFieldRequest) (string, any, error) {
	switch req.Field {
	case "route_id", "driver_id", "truck_id", "trailer_id":
		return req.Field, req.IDValue, nil
	case "dispatch_time":
		normalized, err := normalizeDispatchTime(req.TextValue)
		if err != nil {
			return "", nil, err
		}
		return req.Field, normalized, nil
	case "backhaul", "notes":
		return req.Field, req.TextValue, nil
	}
	return "", nil, apperr.ErrInvalidReq.Msg("field %q is not editable", req.Field)
}

func rosterFromAssignments(date string, dayOfWeek int, assignments []*model.DailyAssignment) *model.DayRoster {
	rows := make([]*model.RosterRow, 0, len(assignments))
	for _, a := range assignments {
		rows = append(rows, &model.RosterRow{
			ID:             a.AssignmentID,
			Source:         model.RosterSourceAssignment,
			RouteID:        a.RouteID,
			DriverID:       a.DriverID,
			TruckID:        a.TruckID,
			TrailerID:      a.TrailerID,
			DispatchTime:   a.DispatchTime,
			Backhaul:       a.Backhaul,
			Notes:          a.Notes,
			PlanningStatus: a.PlanningStatus,
			LoadingStatus:  a.LoadingStatus,
			SortOrder:      a.SortOrder,
			Route:          a.Route,
			Driver:         a.Driver,
			Truck:          a.Truck,
			Trailer:        a.Trailer,
		})
	}
	return &model.DayRoster{
		Date:           date,
		DayOfWeek:      dayOfWeek,
		HasAssignments: true,
		IsFinalized:    rosterFinalized(assignments),
		Rows:           rows,
	}
}

func rosterFromTemplates(date string, dayOfWeek int, templates []*model.WeeklyTemplate) *model.DayRoster {
	rows := make([]*model.RosterRow, 0, len(templates))
	for i, t := range templates {
		rows = append(rows, &model.RosterRow{
			ID:             t.TemplateID,
			Source:         model.RosterSourceTemplate,
			RouteID:        t.RouteID,
			DriverID:       t.DriverID,
			TruckID:        t.TruckID,
			TrailerID:      t.TrailerID,
			DispatchTime:   t.DispatchTime,
			Backhaul:       t.Backhaul,
			Notes:          t.Notes,
			PlanningStatus: constant.PlanningStatusDraft,
			LoadingStatus:  constant.LoadingStatusNotStarted,
			SortOrder:      i + 1,
			Route:          t.Route,
			Driver:         t.Driver,
			Truck:          t.Truck,
			Trailer:        t.Trailer,
		})
	}
	return &model.DayRoster{
		Date:           date,
		DayOfWeek:      dayOfWeek,
		HasAssignments: false,
		IsFinalized:    false,
		Rows:           rows,
	}
}
