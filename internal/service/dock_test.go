package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/guregu/null.v3"

	"github.com/millbrook-logistics/dispatchd/internal/constant"
	"github.com/millbrook-logistics/dispatchd/internal/model"
)

func TestBuildDockSnapshotEmpty(t *testing.T) {
	t.Parallel()

	snapshot := buildDockSnapshot("2026-08-31", nil, nil)

	require.Len(t, snapshot.Doors, len(constant.DockDoors))
	assert.Equal(t, constant.DockDoorFirst, snapshot.Doors[0].DoorNumber)
	assert.Equal(t, constant.DockDoorLast, snapshot.Doors[len(snapshot.Doors)-1].DoorNumber)
	for _, door := range snapshot.Doors {
		assert.Nil(t, door.Assignment)
	}
	assert.Zero(t, snapshot.Occupied)
	assert.Equal(t, len(constant.DockDoors), snapshot.Empty)
	assert.Empty(t, snapshot.Unassigned)
	assert.WithinDuration(t, time.Now(), snapshot.DerivedAt, time.Second)
}

func TestBuildDockSnapshotDoors(t *testing.T) {
	t.Parallel()

	active := []*model.DoorAssignment{
		{DoorAssignmentID: 1, DoorNumber: 4, TrailerID: 100, MoveStatus: constant.MoveStatusAtDoor, Date: "2026-08-31"},
		{DoorAssignmentID: 2, DoorNumber: 9, TrailerID: 101, MoveStatus: constant.MoveStatusJockeyMoving, Date: "2026-08-31"},
	}

	snapshot := buildDockSnapshot("2026-08-31", active, nil)

	assert.Equal(t, 2, snapshot.Occupied)
	assert.Equal(t, len(constant.DockDoors)-2, snapshot.Empty)

	byNumber := map[int]*model.DockDoor{}
	for _, door := range snapshot.Doors {
		byNumber[door.DoorNumber] = door
	}
	require.NotNil(t, byNumber[4].Assignment)
	assert.Equal(t, 100, byNumber[4].Assignment.TrailerID)
	require.NotNil(t, byNumber[9].Assignment)
	assert.Equal(t, constant.MoveStatusJockeyMoving, byNumber[9].Assignment.MoveStatus)
	assert.Nil(t, byNumber[5].Assignment)
}

func TestBuildDockSnapshotUnassignedPool(t *testing.T) {
	t.Parallel()

	active := []*model.DoorAssignment{
		{DoorAssignmentID: 1, DoorNumber: 6, TrailerID: 100, Date: "2026-08-31"},
	}
	loadable := []*model.DailyAssignment{
		{
			// already at door 6: not in the pool
			AssignmentID:  51,
			TrailerID:     null.IntFrom(100),
			LoadingStatus: constant.LoadingStatusInProgress,
		},
		{
			AssignmentID:  52,
			TrailerID:     null.IntFrom(101),
			LoadingStatus: constant.LoadingStatusNotStarted,
			DispatchTime:  null.StringFrom("05:30:00"),
			Trailer:       &model.Trailer{TrailerID: 101, Number: "2044"},
			Route:         &model.Route{RouteID: 3, Code: "N-12"},
		},
		{
			// no trailer: not loadable at the dock
			AssignmentID: 53,
		},
	}

	snapshot := buildDockSnapshot("2026-08-31", active, loadable)

	require.Len(t, snapshot.Unassigned, 1)
	yard := snapshot.Unassigned[0]
	assert.Equal(t, 101, yard.TrailerID)
	assert.Equal(t, "2044", yard.TrailerNumber)
	assert.Equal(t, 52, yard.AssignmentID)
	assert.Equal(t, "N-12", yard.RouteCode)
	assert.Equal(t, "5:30am", yard.DispatchTime)
}

func TestRetiresDoor(t *testing.T) {
	t.Parallel()

	assert.True(t, retiresDoor(constant.MoveStatusDeparted))
	assert.False(t, retiresDoor(constant.MoveStatusAtDoor))
	assert.False(t, retiresDoor(constant.MoveStatusJockeyMoving))
	assert.False(t, retiresDoor(constant.MoveStatusTruckIn))
}

func TestDepartedRowLeavesBoard(t *testing.T) {
	t.Parallel()

	departed := &model.DoorAssignment{
		DoorAssignmentID: 7,
		DoorNumber:       9,
		TrailerID:        101,
		MoveStatus:       constant.MoveStatusDeparted,
		RemovedAt:        null.TimeFrom(time.Now()),
	}
	assert.False(t, departed.Active(), "a departed row must never count as occupying its door")

	// active queries exclude retired rows, so the snapshot is built without
	// them; the door reads empty and the trailer returns to the yard pool
	loadable := []*model.DailyAssignment{
		{
			AssignmentID:  52,
			TrailerID:     null.IntFrom(101),
			LoadingStatus: constant.LoadingStatusLoaded,
			Trailer:       &model.Trailer{TrailerID: 101, Number: "2044"},
		},
	}
	snapshot := buildDockSnapshot("2026-08-31", nil, loadable)

	assert.Nil(t, snapshot.Doors[5].Assignment)
	assert.Zero(t, snapshot.Occupied)
	require.Len(t, snapshot.Unassigned, 1)
	assert.Equal(t, 101, snapshot.Unassigned[0].TrailerID)
}
