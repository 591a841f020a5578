package cache

import (
	"sync"

	"github.com/redis/go-redis/v9"
	"gopkg.in/guregu/null.v3"

	"github.com/millbrook-logistics/dispatchd/internal/model"
	"github.com/millbrook-logistics/dispatchd/internal/pkg/cache"
)

type Flusher func() error

var (
	// reference data changes rarely; served from process memory and flushed
	// whenever an admin mutates the underlying table.
	ActiveRoutes   *cache.Singular[[]*model.Route]
	ActiveDrivers  *cache.Singular[[]*model.Driver]
	ActiveTrucks   *cache.Singular[[]*model.Truck]
	ActiveTrailers *cache.Singular[[]*model.Trailer]
	ActiveLoaders  *cache.Singular[[]*model.Loader]

	TrailerByNumber *cache.Set

	// dock snapshots are shared across instances so the polling worker's
	// refresh is visible to every API replica.
	DockSnapshotByDate *cache.Set

	once sync.Once

	SetMap             map[string]*cache.Set
	SingularFlusherMap map[string]Flusher
)

func Initialize(client *redis.Client) {
	once.Do(func() {
		initializeCaches(client)
	})
}

// Delete flushes the named cache. A valid key targets a single entry of a
// keyed cache; a null key flushes the whole cache.
func Delete(name string, key null.String) error {
	if key.Valid {
		if set, ok := SetMap[name]; ok {
			if err := set.Delete(key.String); err != nil {
				return err
			}
		}
	} else {
		if flush, ok := SingularFlusherMap[name]; ok {
			if err := flush(); err != nil {
				return err
			}
		} else if set, ok := SetMap[name]; ok {
			if err := set.Flush(); err != nil {
				return err
			}
		}
	}
	return nil
}

func initializeCaches(client *redis.Client) {
	SetMap = make(map[string]*cache.Set)
	SingularFlusherMap = make(map[string]Flusher)

	// refdata
	ActiveRoutes = cache.NewSingular[[]*model.Route]("activeRoutes")
	ActiveDrivers = cache.NewSingular[[]*model.Driver]("activeDrivers")
	ActiveTrucks = cache.NewSingular[[]*model.Truck]("activeTrucks")
	ActiveTrailers = cache.NewSingular[[]*model.Trailer]("activeTrailers")
	ActiveLoaders = cache.NewSingular[[]*model.Loader]("activeLoaders")

	SingularFlusherMap["activeRoutes"] = ActiveRoutes.Delete
	SingularFlusherMap["activeDrivers"] = ActiveDrivers.Delete
	SingularFlusherMap["activeTrucks"] = ActiveTrucks.Delete
	SingularFlusherMap["activeTrailers"] = ActiveTrailers.Delete
	SingularFlusherMap["activeLoaders"] = ActiveLoaders.Delete

	TrailerByNumber = cache.NewSet(client, "trailer#number")
	SetMap["trailer#number"] = TrailerByNumber

	// dock
	DockSnapshotByDate = cache.NewSet(client, "dockSnapshot#date")
	SetMap["dockSnapshot#date"] = DockSnapshotByDate
}
