package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/millbrook-logistics/dispatchd/internal/constant"
	"github.com/millbrook-logistics/dispatchd/internal/model"
)

func TestStartsLoading(t *testing.T) {
	t.Parallel()

	assert.True(t, startsLoading(0, constant.LoadingStatusNotStarted))
	assert.False(t, startsLoading(1, constant.LoadingStatusNotStarted))
	assert.False(t, startsLoading(0, constant.LoadingStatusInProgress))
	assert.False(t, startsLoading(0, constant.LoadingStatusLoaded))
	assert.False(t, startsLoading(3, constant.LoadingStatusLoaded))
}

func TestAvailableLoaders(t *testing.T) {
	t.Parallel()

	active := []*model.Loader{
		{LoaderID: 1, Name: "Avery"},
		{LoaderID: 2, Name: "Jordan"},
		{LoaderID: 3, Name: "Sam"},
	}
	assigned := []*model.AssignmentLoader{
		{AssignmentID: 10, LoaderID: 2},
	}

	available := availableLoaders(active, assigned)

	require.Len(t, available, 2)
	assert.Equal(t, 1, available[0].LoaderID)
	assert.Equal(t, 3, available[1].LoaderID)
}

func TestAvailableLoadersNoneAssigned(t *testing.T) {
	t.Parallel()

	active := []*model.Loader{{LoaderID: 1}}
	assert.Len(t, availableLoaders(active, nil), 1)
	assert.Empty(t, availableLoaders(nil, nil))
}

func TestCrewHasLoader(t *testing.T) {
	t.Parallel()

	crew := []*model.AssignmentLoader{
		{AssignmentID: 10, LoaderID: 2},
		{AssignmentID: 10, LoaderID: 5},
	}
	assert.True(t, crewHasLoader(crew, 2))
	assert.True(t, crewHasLoader(crew, 5))
	assert.False(t, crewHasLoader(crew, 3))
	assert.False(t, crewHasLoader(nil, 2))
}
