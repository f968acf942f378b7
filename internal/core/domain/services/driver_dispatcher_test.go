package services_test

import (
	"testing"

	"lastmile/internal/core/domain/model/driver"
	"lastmile/internal/core/domain/model/kernel"
	"lastmile/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func point(t *testing.T, lat, lng float64) kernel.GeoPoint {
	t.Helper()
	p, err := kernel.NewGeoPoint(lat, lng)
	require.NoError(t, err)
	return p
}

func testDriver(t *testing.T, id int64, state driver.State, location *kernel.GeoPoint) *driver.Driver {
	t.Helper()
	d, err := driver.RestoreDriver(id, "Driver", "", state, location)
	require.NoError(t, err)
	return d
}

func TestDriverDispatcher_SelectNearest(t *testing.T) {
	dispatcher := services.NewDriverDispatcher()
	pickup := point(t, 12.9716, 77.5946)

	t.Run("picks_closest_idle_driver", func(t *testing.T) {
		near := point(t, 12.9720, 77.5950)
		far := point(t, 12.9352, 77.6146)
		drivers := []*driver.Driver{
			testDriver(t, 1, driver.Idle, &far),
			testDriver(t, 2, driver.Idle, &near),
		}

		selected, err := dispatcher.SelectNearest(pickup, drivers)

		require.NoError(t, err)
		assert.Equal(t, int64(2), selected.Driver.ID())
		assert.Greater(t, selected.DistanceMeters, 0.0)
	})

	t.Run("skips_non_idle_drivers", func(t *testing.T) {
		near := point(t, 12.9720, 77.5950)
		far := point(t, 12.9352, 77.6146)
		drivers := []*driver.Driver{
			testDriver(t, 1, driver.Enroute, &near),
			testDriver(t, 2, driver.Delivering, &near),
			testDriver(t, 3, driver.Idle, &far),
		}

		selected, err := dispatcher.SelectNearest(pickup, drivers)

		require.NoError(t, err)
		assert.Equal(t, int64(3), selected.Driver.ID())
	})

	t.Run("skips_idle_driver_without_location", func(t *testing.T) {
		far := point(t, 12.9352, 77.6146)
		drivers := []*driver.Driver{
			testDriver(t, 1, driver.Idle, nil),
			testDriver(t, 2, driver.Idle, &far),
		}

		selected, err := dispatcher.SelectNearest(pickup, drivers)

		require.NoError(t, err)
		assert.Equal(t, int64(2), selected.Driver.ID())
	})

	t.Run("first_listed_driver_wins_ties", func(t *testing.T) {
		loc := point(t, 12.9720, 77.5950)
		drivers := []*driver.Driver{
			testDriver(t, 5, driver.Idle, &loc),
			testDriver(t, 6, driver.Idle, &loc),
		}

		selected, err := dispatcher.SelectNearest(pickup, drivers)

		require.NoError(t, err)
		assert.Equal(t, int64(5), selected.Driver.ID())
	})

	t.Run("no_dispatchable_driver_fails", func(t *testing.T) {
		drivers := []*driver.Driver{
			testDriver(t, 1, driver.Offline, nil),
		}

		_, err := dispatcher.SelectNearest(pickup, drivers)

		require.Error(t, err)
		require.ErrorIs(t, err, services.ErrNoAvailableDrivers)
	})

	t.Run("empty_input_fails", func(t *testing.T) {
		_, err := dispatcher.SelectNearest(pickup, nil)

		require.Error(t, err)
		require.ErrorIs(t, err, services.ErrNoAvailableDrivers)
	})
}

func TestDriverDispatcher_RankByDistance(t *testing.T) {
	dispatcher := services.NewDriverDispatcher()
	pickup := point(t, 12.9716, 77.5946)

	t.Run("orders_candidates_by_ascending_distance", func(t *testing.T) {
		near := point(t, 12.9720, 77.5950)
		mid := point(t, 12.9600, 77.6000)
		far := point(t, 12.9352, 77.6146)
		drivers := []*driver.Driver{
			testDriver(t, 1, driver.Idle, &far),
			testDriver(t, 2, driver.Idle, &near),
			testDriver(t, 3, driver.Idle, &mid),
		}

		ranked, err := dispatcher.RankByDistance(pickup, drivers)

		require.NoError(t, err)
		require.Len(t, ranked, 3)
		assert.Equal(t, int64(2), ranked[0].Driver.ID())
		assert.Equal(t, int64(3), ranked[1].Driver.ID())
		assert.Equal(t, int64(1), ranked[2].Driver.ID())
		assert.LessOrEqual(t, ranked[0].DistanceMeters, ranked[1].DistanceMeters)
		assert.LessOrEqual(t, ranked[1].DistanceMeters, ranked[2].DistanceMeters)
	})

	t.Run("unconstructed_driver_fails", func(t *testing.T) {
		var zero driver.Driver

		_, err := dispatcher.RankByDistance(pickup, []*driver.Driver{&zero})

		require.Error(t, err)
	})
}
