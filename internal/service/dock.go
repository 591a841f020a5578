package service

import (
	"context"
	"time"

	"github.com/go-redsync/redsync/v4"
	"github.com/goccy/go-json"
	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"gopkg.in/guregu/null.v3"

	"github.com/millbrook-logistics/dispatchd/internal/app/appconfig"
	"github.com/millbrook-logistics/dispatchd/internal/constant"
	"github.com/millbrook-logistics/dispatchd/internal/model"
	modelcache "github.com/millbrook-logistics/dispatchd/internal/model/cache"
	"github.com/millbrook-logistics/dispatchd/internal/pkg/apperr"
	"github.com/millbrook-logistics/dispatchd/internal/pkg/observability"
	"github.com/millbrook-logistics/dispatchd/internal/pkg/workdate"
	"github.com/millbrook-logistics/dispatchd/internal/repo"
)

const (
	dockSnapshotCacheTTL = time.Minute * 5

	// dockMutexKey guards door mutation across replicas; the door grid is
	// small enough that one lock for the whole dock is fine.
	dockMutexKey = "mutex:dock"
)

// Dock derives and mutates the shipping-dock door board: which trailer sits
// at which of the doors, and which finalized loads are still waiting in the
// yard. The board is re-derived from scratch on every refresh; nothing about
// it is incremental.
type Dock struct {
	config         *appconfig.Config
	nats           *nats.Conn
	redsync        *redsync.Redsync
	DoorRepo       *repo.DoorAssignment
	TrailerRepo    *repo.Trailer
	AssignmentRepo *repo.DailyAssignment
}

func NewDock(
	config *appconfig.Config,
	natsConn *nats.Conn,
	rs *redsync.Redsync,
	doorRepo *repo.DoorAssignment,
	trailerRepo *repo.Trailer,
	assignmentRepo *repo.DailyAssignment,
) *Dock {
	return &Dock{
		config:         config,
		nats:           natsConn,
		redsync:        rs,
		DoorRepo:       doorRepo,
		TrailerRepo:    trailerRepo,
		AssignmentRepo: assignmentRepo,
	}
}

// DeliveryDate is the date the dock is working toward: trailers loaded today
// roll out on the next business day.
func (s *Dock) DeliveryDate(now time.Time) string {
	return workdate.Format(workdate.NextBusinessDay(now))
}

// Snapshot derives the current dock state for a date: the fixed door range
// with each door's active occupancy, plus the pool of finalized loads whose
// trailer is not at any door yet.
func (s *Dock) Snapshot(ctx context.Context, date string, source string) (*model.DockSnapshot, error) {
	start := time.Now()
	defer func() {
		observability.DockSnapshotDuration.WithLabelValues(source).Observe(time.Since(start).Seconds())
	}()

	active, err := s.DoorRepo.GetActiveByDate(ctx, date)
	if err != nil {
		return nil, err
	}
	loadable, err := s.AssignmentRepo.GetFinalizedWithTrailer(ctx, date)
	if err != nil {
		return nil, err
	}

	snapshot := buildDockSnapshot(date, active, loadable)
	go modelcache.DockSnapshotByDate.Set(date, *snapshot, dockSnapshotCacheTTL)
	return snapshot, nil
}

// CachedSnapshot serves the worker-refreshed snapshot when present, falling
// back to a fresh derivation.
func (s *Dock) CachedSnapshot(ctx context.Context, date string) (*model.DockSnapshot, error) {
	var snapshot model.DockSnapshot
	if err := modelcache.DockSnapshotByDate.Get(date, &snapshot); err == nil {
		return &snapshot, nil
	}
	return s.Snapshot(ctx, date, "api")
}

// Assign puts a trailer at a door for a date. The redsync mutex plus an
// active-row recheck inside the lock keeps two dispatchers from claiming the
// same door in the polling gap.
func (s *Dock) Assign(ctx context.Context, date string, doorNumber int, trailerID int, assignmentID null.Int) (*model.DoorAssignment, error) {
	if doorNumber < constant.DockDoorFirst || doorNumber > constant.DockDoorLast {
		return nil, apperr.ErrInvalidReq.Msg("door %d is not a dock door (%d..%d)", doorNumber, constant.DockDoorFirst, constant.DockDoorLast)
	}
	if _, err := s.TrailerRepo.GetTrailerByID(ctx, trailerID); err != nil {
		return nil, err
	}

	mutex := s.redsync.NewMutex(dockMutexKey, redsync.WithExpiry(time.Second*10), redsync.WithTries(8))
	if err := mutex.LockContext(ctx); err != nil {
		return nil, err
	}
	defer func() {
		if _, err := mutex.UnlockContext(ctx); err != nil {
			log.Ctx(ctx).Warn().Err(err).Msg("failed to release dock mutex")
		}
	}()

	if existing, err := s.DoorRepo.GetActiveByDoor(ctx, date, doorNumber); err == nil && existing != nil {
		observability.DockAssignConflicts.Inc()
		return nil, apperr.ErrDoorOccupied.WithExtras(apperr.Extras{
			"doorNumber": doorNumber,
			"trailerId":  existing.TrailerID,
		})
	} else if err != nil && err != apperr.ErrNotFound {
		return nil, err
	}

	// a trailer leaves its old door implicitly when re-assigned
	if previous, err := s.DoorRepo.GetActiveByTrailer(ctx, date, trailerID); err == nil && previous != nil {
		if err := s.DoorRepo.Retire(ctx, previous.DoorAssignmentID); err != nil {
			return nil, err
		}
	} else if err != nil && err != apperr.ErrNotFound {
		return nil, err
	}

	doorAssignment := &model.DoorAssignment{
		DoorNumber:   doorNumber,
		TrailerID:    trailerID,
		AssignmentID: assignmentID,
		Date:         date,
		MoveStatus:   constant.MoveStatusAtDoor,
	}
	if err := s.DoorRepo.CreateDoorAssignment(ctx, doorAssignment); err != nil {
		return nil, err
	}

	s.publish(ctx, date)
	return doorAssignment, nil
}

// SetMoveStatus updates the yard-move state of an active occupancy row.
// Transitions are free-form; entering departed retires the row and frees
// the door in the same statement, so the row cannot end up departed but
// still occupying.
func (s *Dock) SetMoveStatus(ctx context.Context, id int, status string) error {
	row, err := s.DoorRepo.GetActiveByID(ctx, id)
	if err != nil {
		return err
	}
	if retiresDoor(status) {
		err = s.DoorRepo.Depart(ctx, id)
	} else {
		err = s.DoorRepo.SetMoveStatus(ctx, id, status)
	}
	if err != nil {
		return err
	}
	s.publish(ctx, row.Date)
	return nil
}

// retiresDoor reports whether a move status ends the occupancy.
func retiresDoor(status string) bool {
	return status == constant.MoveStatusDeparted
}

// Clear retires an occupancy row regardless of its move status.
func (s *Dock) Clear(ctx context.Context, id int) error {
	row, err := s.DoorRepo.GetActiveByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.DoorRepo.Retire(ctx, id); err != nil {
		return err
	}
	s.publish(ctx, row.Date)
	return nil
}

// PinStorageTrailer parks the configured storage trailer at its home door
// with no route behind it. Already pinned is a no-op.
func (s *Dock) PinStorageTrailer(ctx context.Context, date string) (*model.DoorAssignment, error) {
	trailer, err := s.trailerByNumber(ctx, s.config.StorageTrailerNumber)
	if err != nil {
		return nil, err
	}

	if existing, err := s.DoorRepo.GetActiveByTrailer(ctx, date, trailer.TrailerID); err == nil && existing != nil {
		return existing, nil
	} else if err != nil && err != apperr.ErrNotFound {
		return nil, err
	}

	return s.Assign(ctx, date, s.config.StorageTrailerDoor, trailer.TrailerID, null.Int{})
}

// Cache: trailer#number:{number}, 24hrs
func (s *Dock) trailerByNumber(ctx context.Context, number string) (*model.Trailer, error) {
	var trailer model.Trailer
	err := modelcache.TrailerByNumber.Get(number, &trailer)
	if err == nil {
		return &trailer, nil
	}

	dbTrailer, err := s.TrailerRepo.GetTrailerByNumber(ctx, number)
	if err != nil {
		return nil, err
	}
	go modelcache.TrailerByNumber.Set(number, *dbTrailer, time.Hour*24)
	return dbTrailer, nil
}

// publish fans the dock change out on NATS so dashboards can refetch before
// their next poll tick. Best effort: polling remains the delivery contract.
func (s *Dock) publish(ctx context.Context, date string) {
	payload, err := json.Marshal(map[string]any{
		"date":      date,
		"changedAt": time.Now(),
	})
	if err != nil {
		return
	}
	if err := s.nats.Publish("DOCK."+date, payload); err != nil {
		log.Ctx(ctx).Warn().Err(err).Str("date", date).Msg("failed to publish dock change")
	}
}

// buildDockSnapshot assembles the door board from the active occupancy rows
// and the finalized-with-trailer pool. Pure so it is testable without a
// database.
func buildDockSnapshot(date string, active []*model.DoorAssignment, loadable []*model.DailyAssignment) *model.DockSnapshot {
	byDoor := lo.KeyBy(active, func(d *model.DoorAssignment) int {
		return d.DoorNumber
	})
	atDoorTrailers := lo.SliceToMap(active, func(d *model.DoorAssignment) (int, struct{}) {
		return d.TrailerID, struct{}{}
	})

	doors := make([]*model.DockDoor, 0, len(constant.DockDoors))
	occupied := 0
	for _, number := range constant.DockDoors {
		door := &model.DockDoor{DoorNumber: number}
		if a, ok := byDoor[number]; ok {
			door.Assignment = a
			occupied++
		}
		doors = append(doors, door)
	}

	unassigned := make([]*model.YardTrailer, 0)
	for _, a := range loadable {
		if !a.TrailerID.Valid {
			continue
		}
		trailerID := int(a.TrailerID.Int64)
		if _, ok := atDoorTrailers[trailerID]; ok {
			continue
		}
		yard := &model.YardTrailer{
			TrailerID:     trailerID,
			AssignmentID:  a.AssignmentID,
			LoadingStatus: a.LoadingStatus,
			DispatchTime:  workdate.FormatDispatchTime(a.DispatchTime.ValueOrZero()),
		}
		if a.Trailer != nil {
			yard.TrailerNumber = a.Trailer.Number
		}
		if a.Route != nil {
			yard.RouteCode = a.Route.Code
		}
		unassigned = append(unassigned, yard)
	}

	return &model.DockSnapshot{
		Date:       date,
		Doors:      doors,
		Unassigned: unassigned,
		Occupied:   occupied,
		Empty:      len(constant.DockDoors) - occupied,
		DerivedAt:  time.Now(),
	}
}
