package service

import (
	"context"
	"time"

	"github.com/millbrook-logistics/dispatchd/internal/model"
	modelcache "github.com/millbrook-logistics/dispatchd/internal/model/cache"
	"github.com/millbrook-logistics/dispatchd/internal/repo"
)

const refdataCacheTTL = time.Hour * 24

// RefData serves the shared reference entities. Active lists are hot on
// every roster render, so they are cached in-process and flushed on
// admin mutation.
type RefData struct {
	RouteRepo   *repo.Route
	DriverRepo  *repo.Driver
	TruckRepo   *repo.Truck
	TrailerRepo *repo.Trailer
	LoaderRepo  *repo.Loader
}

func NewRefData(routeRepo *repo.Route, driverRepo *repo.Driver, truckRepo *repo.Truck, trailerRepo *repo.Trailer, loaderRepo *repo.Loader) *RefData {
	return &RefData{
		RouteRepo:   routeRepo,
		DriverRepo:  driverRepo,
		TruckRepo:   truckRepo,
		TrailerRepo: trailerRepo,
		LoaderRepo:  loaderRepo,
	}
}

// Cache: activeRoutes, 24hrs
func (s *RefData) GetActiveRoutes(ctx context.Context) ([]*model.Route, error) {
	var routes []*model.Route
	err := modelcache.ActiveRoutes.MutexGetSet(&routes, func() ([]*model.Route, error) {
		return s.RouteRepo.GetActiveRoutes(ctx)
	}, refdataCacheTTL)
	if err != nil {
		return nil, err
	}
	return routes, nil
}

// Cache: activeDrivers, 24hrs
func (s *RefData) GetActiveDrivers(ctx context.Context) ([]*model.Driver, error) {
	var drivers []*model.Driver
	err := modelcache.ActiveDrivers.MutexGetSet(&drivers, func() ([]*model.Driver, error) {
		return s.DriverRepo.GetActiveDrivers(ctx)
	}, refdataCacheTTL)
	if err != nil {
		return nil, err
	}
	return drivers, nil
}

// Cache: activeTrucks, 24hrs
func (s *RefData) GetActiveTrucks(ctx context.Context) ([]*model.Truck, error) {
	var trucks []*model.Truck
	err := modelcache.ActiveTrucks.MutexGetSet(&trucks, func() ([]*model.Truck, error) {
		return s.TruckRepo.GetActiveTrucks(ctx)
	}, refdataCacheTTL)
	if err != nil {
		return nil, err
	}
	return trucks, nil
}

// Cache: activeTrailers, 24hrs
func (s *RefData) GetActiveTrailers(ctx context.Context) ([]*model.Trailer, error) {
	var trailers []*model.Trailer
	err := modelcache.ActiveTrailers.MutexGetSet(&trailers, func() ([]*model.Trailer, error) {
		return s.TrailerRepo.GetActiveTrailers(ctx)
	}, refdataCacheTTL)
	if err != nil {
		return nil, err
	}
	return trailers, nil
}

// Cache: activeLoaders, 24hrs
func (s *RefData) GetActiveLoaders(ctx context.Context) ([]*model.Loader, error) {
	var loaders []*model.Loader
	err := modelcache.ActiveLoaders.MutexGetSet(&loaders, func() ([]*model.Loader, error) {
		return s.LoaderRepo.GetActiveLoaders(ctx)
	}, refdataCacheTTL)
	if err != nil {
		return nil, err
	}
	return loaders, nil
}

func (s *RefData) GetAllRoutes(ctx context.Context) ([]*model.Route, error) {
	return s.RouteRepo.GetRoutes(ctx)
}

func (s *RefData) GetAllDrivers(ctx context.Context) ([]*model.Driver, error) {
	return s.DriverRepo.GetDrivers(ctx)
}

func (s *RefData) GetAllTrucks(ctx context.Context) ([]*model.Truck, error) {
	return s.TruckRepo.GetTrucks(ctx)
}

func (s *RefData) GetAllTrailers(ctx context.Context) ([]*model.Trailer, error) {
	return s.TrailerRepo.GetTrailers(ctx)
}

func (s *RefData) GetAllLoaders(ctx context.Context) ([]*model.Loader, error) {
	return s.LoaderRepo.GetLoaders(ctx)
}

func (s *RefData) CreateRoute(ctx context.Context, route *model.Route) error {
	if err := s.RouteRepo.CreateRoute(ctx, route); err != nil {
		return err
	}
	return modelcache.ActiveRoutes.Delete()
}

func (s *RefData) CreateDriver(ctx context.Context, driver *model.Driver) error {
	if err := s.DriverRepo.CreateDriver(ctx, driver); err != nil {
		return err
	}
	return modelcache.ActiveDrivers.Delete()
}

func (s *RefData) CreateTruck(ctx context.Context, truck *model.Truck) error {
	if err := s.TruckRepo.CreateTruck(ctx, truck); err != nil {
		return err
	}
	return modelcache.ActiveTrucks.Delete()
}

func (s *RefData) CreateTrailer(ctx context.Context, trailer *model.Trailer) error {
	if err := s.TrailerRepo.CreateTrailer(ctx, trailer); err != nil {
		return err
	}
	if err := modelcache.TrailerByNumber.Flush(); err != nil {
		return err
	}
	return modelcache.ActiveTrailers.Delete()
}

func (s *RefData) CreateLoader(ctx context.Context, loader *model.Loader) error {
	if err := s.LoaderRepo.CreateLoader(ctx, loader); err != nil {
		return err
	}
	return modelcache.ActiveLoaders.Delete()
}

func (s *RefData) UpdateRouteStatus(ctx context.Context, id int, status string) error {
	if _, err := s.RouteRepo.GetRouteByID(ctx, id); err != nil {
		return err
	}
	if err := s.RouteRepo.UpdateRouteStatus(ctx, id, status); err != nil {
		return err
	}
	return modelcache.ActiveRoutes.Delete()
}

func (s *RefData) UpdateDriverStatus(ctx context.Context, id int, status string) error {
	if _, err := s.DriverRepo.GetDriverByID(ctx, id); err != nil {
		return err
	}
	if err := s.DriverRepo.UpdateDriverStatus(ctx, id, status); err != nil {
		return err
	}
	return modelcache.ActiveDrivers.Delete()
}

func (s *RefData) UpdateTruckStatus(ctx context.Context, id int, status string) error {
	if _, err := s.TruckRepo.GetTruckByID(ctx, id); err != nil {
		return err
	}
	if err := s.TruckRepo.UpdateTruckStatus(ctx, id, status); err != nil {
		return err
	}
	return modelcache.ActiveTrucks.Delete()
}

func (s *RefData) UpdateTrailerStatus(ctx context.Context, id int, status string) error {
	if _, err := s.TrailerRepo.GetTrailerByID(ctx, id); err != nil {
		return err
	}
	if err := s.TrailerRepo.UpdateTrailerStatus(ctx, id, status); err != nil {
		return err
	}
	if err := modelcache.TrailerByNumber.Flush(); err != nil {
		return err
	}
	return modelcache.ActiveTrailers.Delete()
}

func (s *RefData) UpdateLoaderStatus(ctx context.Context, id int, status string) error {
	if _, err := s.LoaderRepo.GetLoaderByID(ctx, id); err != nil {
		return err
	}
	if err := s.LoaderRepo.UpdateLoaderStatus(ctx, id, status); err != nil {
		return err
	}
	return modelcache.ActiveLoaders.Delete()
}
