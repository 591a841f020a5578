package service

import (
	"context"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"github.com/uptrace/bun"

	"github.com/millbrook-logistics/dispatchd/internal/constant"
	"github.com/millbrook-logistics/dispatchd/internal/model"
	"github.com/millbrook-logistics/dispatchd/internal/pkg/apperr"
	"github.com/millbrook-logistics/dispatchd/internal/repo"
)

// Crew manages the warehouse loaders attached to daily assignments.
type Crew struct {
	RefData        *RefData
	LoaderRepo     *repo.Loader
	CrewRepo       *repo.AssignmentLoader
	AssignmentRepo *repo.DailyAssignment
}

func NewCrew(refData *RefData, loaderRepo *repo.Loader, crewRepo *repo.AssignmentLoader, assignmentRepo *repo.DailyAssignment) *Crew {
	return &Crew{
		RefData:        refData,
		LoaderRepo:     loaderRepo,
		CrewRepo:       crewRepo,
		AssignmentRepo: assignmentRepo,
	}
}

func (s *Crew) List(ctx context.Context, assignmentID int) ([]*model.AssignmentLoader, error) {
	if _, err := s.AssignmentRepo.GetAssignmentByID(ctx, assignmentID); err != nil {
		return nil, err
	}
	return s.CrewRepo.GetByAssignment(ctx, assignmentID)
}

// Add puts a loader on an assignment's crew. The first loader on a
// not-started assignment flips its loading status to in_progress; the
// join-row insert and the flip commit together.
func (s *Crew) Add(ctx context.Context, assignmentID int, loaderID int) (*model.AssignmentLoader, error) {
	assignment, err := s.AssignmentRepo.GetAssignmentByID(ctx, assignmentID)
	if err != nil {
		return nil, err
	}
	if _, err := s.LoaderRepo.GetLoaderByID(ctx, loaderID); err != nil {
		return nil, err
	}

	existing, err := s.CrewRepo.GetByAssignment(ctx, assignmentID)
	if err != nil {
		return nil, err
	}
	if crewHasLoader(existing, loaderID) {
		return nil, apperr.ErrInvalidReq.Msg("loader %d is already on this crew", loaderID)
	}

	member := &model.AssignmentLoader{
		AssignmentID: assignmentID,
		LoaderID:     loaderID,
	}
	err = s.CrewRepo.WithTx(ctx, func(ctx context.Context, tx bun.Tx) error {
		// recheck inside the tx; the unique index on
		// (assignment_id, loader_id) backstops concurrent adds
		taken, err := tx.NewSelect().
			Model((*model.AssignmentLoader)(nil)).
			Where("assignment_id = ?", assignmentID).
			Where("loader_id = ?", loaderID).
			Exists(ctx)
		if err != nil {
			return err
		}
		if taken {
			return apperr.ErrInvalidReq.Msg("loader %d is already on this crew", loaderID)
		}

		if _, err := tx.NewInsert().
			Model(member).
			Returning("assignment_loader_id").
			Exec(ctx); err != nil {
			return err
		}
		if !startsLoading(len(existing), assignment.LoadingStatus) {
			return nil
		}
		_, err = tx.NewUpdate().
			Model((*model.DailyAssignment)(nil)).
			Set("loading_status = ?", constant.LoadingStatusInProgress).
			Set("updated_at = now()").
			Where("assignment_id = ?", assignmentID).
			Where("loading_status = ?", constant.LoadingStatusNotStarted).
			Exec(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}

	if startsLoading(len(existing), assignment.LoadingStatus) {
		log.Ctx(ctx).Info().
			Int("assignmentId", assignmentID).
			Int("loaderId", loaderID).
			Msg("first loader joined: loading started")
	}
	return member, nil
}

// Remove takes a loader off the crew. Loading status is left alone even if
// the crew empties out.
func (s *Crew) Remove(ctx context.Context, assignmentID int, loaderID int) error {
	deleted, err := s.CrewRepo.DeleteAssignmentLoader(ctx, assignmentID, loaderID)
	if err != nil {
		return err
	}
	if !deleted {
		return apperr.ErrNotFound.Msg("loader %d is not on this crew", loaderID)
	}
	return nil
}

// AvailableLoaders lists the active loaders not yet on the assignment's crew.
func (s *Crew) AvailableLoaders(ctx context.Context, assignmentID int) ([]*model.Loader, error) {
	assigned, err := s.List(ctx, assignmentID)
	if err != nil {
		return nil, err
	}
	active, err := s.RefData.GetActiveLoaders(ctx)
	if err != nil {
		return nil, err
	}
	return availableLoaders(active, assigned), nil
}

// startsLoading decides the first-loader side effect: only the first member
// joining a crew of a not-started assignment starts loading.
func startsLoading(currentCrewSize int, loadingStatus string) bool {
	return currentCrewSize == 0 && loadingStatus == constant.LoadingStatusNotStarted
}

func crewHasLoader(crew []*model.AssignmentLoader, loaderID int) bool {
	return lo.SomeBy(crew, func(m *model.AssignmentLoader) bool {
		return m.LoaderID == loaderID
	})
}

func availableLoaders(active []*model.Loader, assigned []*model.AssignmentLoader) []*model.Loader {
	taken := lo.SliceToMap(assigned, func(m *model.AssignmentLoader) (int, struct{}) {
		return m.LoaderID, struct{}{}
	})
	return lo.Filter(active, func(l *model.Loader, _ int) bool {
		_, ok := taken[l.LoaderID]
		return !ok
	})
}
