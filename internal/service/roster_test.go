package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/guregu/null.v3"

	"github.com/millbrook-logistics/dispatchd/internal/constant"
	"github.com/millbrook-logistics/dispatchd/internal/model"
	"github.com/millbrook-logistics/dispatchd/internal/model/types"
	"github.com/millbrook-logistics/dispatchd/internal/pkg/apperr"
)

func TestBuildPromotion(t *testing.T) {
	t.Parallel()

	templateAge := time.Date(2023, time.March, 1, 8, 0, 0, 0, time.Local)
	templates := []*model.WeeklyTemplate{
		{
			TemplateID:   11,
			DayOfWeek:    1,
			RouteID:      null.IntFrom(3),
			DriverID:     null.IntFrom(7),
			TruckID:      null.IntFrom(2),
			TrailerID:    null.IntFrom(9),
			DispatchTime: null.StringFrom("05:30:00"),
			Backhaul:     null.StringFrom("paper plant"),
			SortOrder:    1,
			CreatedAt:    templateAge,
			UpdatedAt:    templateAge,
		},
		{
			TemplateID: 12,
			DayOfWeek:  1,
			RouteID:    null.IntFrom(4),
			Notes:      null.StringFrom("second stop added on request"),
			SortOrder:  2,
		},
	}

	assignments := buildPromotion("2026-08-31", templates, constant.PlanningStatusDraft)
	require.Len(t, assignments, 2)

	first := assignments[0]
	assert.Zero(t, first.AssignmentID, "id must be left for the database to generate")
	assert.True(t, first.CreatedAt.IsZero(), "created_at must be left for the database default, not inherited from the template")
	assert.True(t, first.UpdatedAt.IsZero(), "updated_at must be left for the database default, not inherited from the template")
	assert.Equal(t, "2026-08-31", first.Date)
	assert.Equal(t, null.IntFrom(3), first.RouteID)
	assert.Equal(t, null.IntFrom(7), first.DriverID)
	assert.Equal(t, null.IntFrom(2), first.TruckID)
	assert.Equal(t, null.IntFrom(9), first.TrailerID)
	assert.Equal(t, null.StringFrom("05:30:00"), first.DispatchTime)
	assert.Equal(t, null.StringFrom("paper plant"), first.Backhaul)
	assert.Equal(t, constant.PlanningStatusDraft, first.PlanningStatus)
	assert.Equal(t, constant.LoadingStatusNotStarted, first.LoadingStatus)
	assert.Equal(t, 1, first.SortOrder)

	second := assignments[1]
	assert.Equal(t, null.IntFrom(4), second.RouteID)
	assert.False(t, second.DriverID.Valid)
	assert.Equal(t, null.StringFrom("second stop added on request"), second.Notes)
	assert.Equal(t, 2, second.SortOrder)
}

func TestBuildPromotionFinalized(t *testing.T) {
	t.Parallel()

	assignments := buildPromotion("2026-09-01", []*model.WeeklyTemplate{{TemplateID: 1, DayOfWeek: 2}}, constant.PlanningStatusFinalized)
	require.Len(t, assignments, 1)
	assert.Equal(t, constant.PlanningStatusFinalized, assignments[0].PlanningStatus)
}

func TestBuildPromotionEmpty(t *testing.T) {
	t.Parallel()

	assert.Empty(t, buildPromotion("2026-08-31", nil, constant.PlanningStatusDraft))
}

func TestRosterFinalized(t *testing.T) {
	t.Parallel()

	assert.False(t, rosterFinalized(nil))
	assert.False(t, rosterFinalized([]*model.DailyAssignment{{PlanningStatus: constant.PlanningStatusDraft}}))
	assert.True(t, rosterFinalized([]*model.DailyAssignment{{PlanningStatus: constant.PlanningStatusFinalized}}))

	// a mixed date is abnormal, but any finalized row must report the date
	// as finalized
	assert.True(t, rosterFinalized([]*model.DailyAssignment{
		{PlanningStatus: constant.PlanningStatusDraft},
		{PlanningStatus: constant.PlanningStatusFinalized},
	}))
}

func TestNextSortOrder(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1, nextSortOrder(nil))
	assert.Equal(t, 4, nextSortOrder([]*model.DailyAssignment{
		{SortOrder: 1}, {SortOrder: 3}, {SortOrder: 2},
	}))
}

func TestRosterFieldValue(t *testing.T) {
	t.Parallel()

	t.Run("IDField", func(t *testing.T) {
		column, value, err := rosterFieldValue(&types.UpdateRosterFieldRequest{
			Field:   "driver_id",
			IDValue: null.IntFrom(5),
		})
		require.NoError(t, err)
		assert.Equal(t, "driver_id", column)
		assert.Equal(t, null.IntFrom(5), value)
	})

	t.Run("ClearIDField", func(t *testing.T) {
		column, value, err := rosterFieldValue(&types.UpdateRosterFieldRequest{
			Field: "trailer_id",
		})
		require.NoError(t, err)
		assert.Equal(t, "trailer_id", column)
		assert.Equal(t, null.Int{}, value)
	})

	t.Run("TextField", func(t *testing.T) {
		column, value, err := rosterFieldValue(&types.UpdateRosterFieldRequest{
			Field:     "notes",
			TextValue: null.StringFrom("waiting on gate pass"),
		})
		require.NoError(t, err)
		assert.Equal(t, "notes", column)
		assert.Equal(t, null.StringFrom("waiting on gate pass"), value)
	})

	t.Run("DispatchTimeNormalized", func(t *testing.T) {
		column, value, err := rosterFieldValue(&types.UpdateRosterFieldRequest{
			Field:     "dispatch_time",
			TextValue: null.StringFrom("5:30am"),
		})
		require.NoError(t, err)
		assert.Equal(t, "dispatch_time", column)
		assert.Equal(t, null.StringFrom("05:30:00"), value)
	})

	t.Run("DispatchTimeInvalid", func(t *testing.T) {
		_, _, err := rosterFieldValue(&types.UpdateRosterFieldRequest{
			Field:     "dispatch_time",
			TextValue: null.StringFrom("half past five"),
		})
		require.Error(t, err)
		var e *apperr.Error
		require.ErrorAs(t, err, &e)
		assert.Equal(t, apperr.CodeInvalidRequest, e.ErrorCode)
	})

	t.Run("UnknownField", func(t *testing.T) {
		_, _, err := rosterFieldValue(&types.UpdateRosterFieldRequest{Field: "planning_status"})
		require.Error(t, err)
	})
}

func TestRosterFromTemplates(t *testing.T) {
	t.Parallel()

	roster := rosterFromTemplates("2026-08-31", 1, []*model.WeeklyTemplate{
		{TemplateID: 21, RouteID: null.IntFrom(1)},
		{TemplateID: 22, RouteID: null.IntFrom(2)},
	})

	assert.False(t, roster.HasAssignments)
	assert.False(t, roster.IsFinalized)
	require.Len(t, roster.Rows, 2)
	assert.Equal(t, model.RosterSourceTemplate, roster.Rows[0].Source)
	assert.Equal(t, 21, roster.Rows[0].ID)
	assert.Equal(t, constant.PlanningStatusDraft, roster.Rows[0].PlanningStatus)
	assert.Equal(t, 1, roster.Rows[0].SortOrder)
	assert.Equal(t, 2, roster.Rows[1].SortOrder)
}

func TestRosterFromAssignments(t *testing.T) {
	t.Parallel()

	roster := rosterFromAssignments("2026-08-31", 1, []*model.DailyAssignment{
		{AssignmentID: 31, PlanningStatus: constant.PlanningStatusFinalized, LoadingStatus: constant.LoadingStatusInProgress, SortOrder: 1},
	})

	assert.True(t, roster.HasAssignments)
	assert.True(t, roster.IsFinalized)
	require.Len(t, roster.Rows, 1)
	assert.Equal(t, model.RosterSourceAssignment, roster.Rows[0].Source)
	assert.Equal(t, 31, roster.Rows[0].ID)
	assert.Equal(t, constant.LoadingStatusInProgress, roster.Rows[0].LoadingStatus)
}
