package queries_test

import (
	"testing"

	"lastmile/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetDriverStatusQuery(t *testing.T) {
	t.Run("valid_id", func(t *testing.T) {
		query, err := queries.NewGetDriverStatusQuery(7)

		require.NoError(t, err)
		require.NoError(t, query.Validate())
		assert.Equal(t, int64(7), query.DriverID())
	})

	t.Run("non_positive_id", func(t *testing.T) {
		_, err := queries.NewGetDriverStatusQuery(0)

		require.Error(t, err)
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var query queries.GetDriverStatusQuery

		require.ErrorIs(t, query.Validate(), queries.ErrGetDriverStatusQueryIsNotConstructed)
	})
}

func TestNewCheckDriverOrderQuery(t *testing.T) {
	query, err := queries.NewCheckDriverOrderQuery(7)

	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, int64(7), query.DriverID())

	_, err = queries.NewCheckDriverOrderQuery(-1)
	require.Error(t, err)
}

func TestNewGetOrderDetailsQuery(t *testing.T) {
	query, err := queries.NewGetOrderDetailsQuery(1)

	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, int64(1), query.OrderID())

	_, err = queries.NewGetOrderDetailsQuery(0)
	require.Error(t, err)
}

func TestNewGetMerchantStatusQuery(t *testing.T) {
	query, err := queries.NewGetMerchantStatusQuery(20)

	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, int64(20), query.MerchantID())

	_, err = queries.NewGetMerchantStatusQuery(0)
	require.Error(t, err)
}

func TestNewGetUserDetailsQuery(t *testing.T) {
	query, err := queries.NewGetUserDetailsQuery(10)

	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, int64(10), query.UserID())

	_, err = queries.NewGetUserDetailsQuery(0)
	require.Error(t, err)
}

func TestNewFindNearbyMerchantsQuery(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		query, err := queries.NewFindNearbyMerchantsQuery("12 Market St", 5, []string{"Dosa"})

		require.NoError(t, err)
		require.NoError(t, query.Validate())
		assert.Equal(t, "12 Market St", query.Address())
		assert.InDelta(t, 5, query.RadiusKm(), 1e-9)
		assert.Equal(t, []string{"Dosa"}, query.Items())
	})

	t.Run("default_radius", func(t *testing.T) {
		query, err := queries.NewFindNearbyMerchantsQuery("12 Market St", 0, nil)

		require.NoError(t, err)
		assert.InDelta(t, queries.DefaultSearchRadiusKm, query.RadiusKm(), 1e-9)
	})

	t.Run("missing_address", func(t *testing.T) {
		_, err := queries.NewFindNearbyMerchantsQuery("", 5, nil)

		require.Error(t, err)
		require.ErrorIs(t, err, queries.ErrSearchAddressIsRequired)
	})
}
