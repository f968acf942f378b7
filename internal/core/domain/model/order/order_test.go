package order_test

import (
	"testing"

	"lastmile/internal/core/domain/model/kernel"
	"lastmile/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(1, 10, 20, "12 Market St", "34 Lake Rd", []string{"Margherita Pizza"})
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("creates_preparing_order_without_driver", func(t *testing.T) {
		o := newTestOrder(t)

		assert.Equal(t, int64(1), o.ID())
		assert.Equal(t, order.Preparing, o.Status())
		assert.Equal(t, int64(10), o.UserID())
		assert.Equal(t, int64(20), o.MerchantID())
		assert.Equal(t, "12 Market St", o.Source())
		assert.Equal(t, "34 Lake Rd", o.Destination())
		assert.Nil(t, o.DriverID())
		assert.Nil(t, o.SourceLocation())
	})

	t.Run("rejects_empty_items", func(t *testing.T) {
		_, err := order.NewOrder(1, 10, 20, "a", "b", nil)

		require.Error(t, err)
		require.ErrorIs(t, err, order.ErrItemsAreRequired)
	})
}

func TestOrder_AssignDriver(t *testing.T) {
	t.Run("assigns_driver", func(t *testing.T) {
		o := newTestOrder(t)

		require.NoError(t, o.AssignDriver(7))

		require.NotNil(t, o.DriverID())
		assert.Equal(t, int64(7), *o.DriverID())
	})

	t.Run("reassigning_same_driver_is_noop", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.AssignDriver(7))

		require.NoError(t, o.AssignDriver(7))
	})

	t.Run("rejects_second_driver", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.AssignDriver(7))

		err := o.AssignDriver(8)

		require.Error(t, err)
		require.ErrorIs(t, err, order.ErrDriverAlreadyAssigned)
		assert.Equal(t, int64(7), *o.DriverID())
	})

	t.Run("unconstructed_order_fails", func(t *testing.T) {
		var o order.Order

		require.Error(t, o.AssignDriver(7))
	})
}

func TestOrder_Unassign(t *testing.T) {
	t.Run("removes_assigned_driver", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.AssignDriver(7))

		removed, err := o.Unassign()

		require.NoError(t, err)
		assert.True(t, removed)
		assert.Nil(t, o.DriverID())
	})

	t.Run("without_driver_reports_false", func(t *testing.T) {
		o := newTestOrder(t)

		removed, err := o.Unassign()

		require.NoError(t, err)
		assert.False(t, removed)
	})
}

func TestOrder_ChangeStatus(t *testing.T) {
	t.Run("accepts_any_valid_status", func(t *testing.T) {
		o := newTestOrder(t)

		for _, s := range []order.Status{
			order.Pending, order.Delivered, order.Failed, order.Cancelled, order.Preparing,
		} {
			require.NoError(t, o.ChangeStatus(s))
			assert.Equal(t, s, o.Status())
		}
	})

	t.Run("rejects_unknown_status", func(t *testing.T) {
		o := newTestOrder(t)

		require.Error(t, o.ChangeStatus(order.StatusUnknown))
	})
}

func TestOrder_SetSourceLocation(t *testing.T) {
	t.Run("caches_resolved_coordinates", func(t *testing.T) {
		o := newTestOrder(t)
		loc, err := kernel.NewGeoPoint(12.9720, 77.5950)
		require.NoError(t, err)

		require.NoError(t, o.SetSourceLocation(loc))

		require.NotNil(t, o.SourceLocation())
		assert.InDelta(t, 12.9720, o.SourceLocation().Lat(), 1e-9)
	})
}

func TestParseStatus(t *testing.T) {
	t.Run("parses_all_valid_statuses", func(t *testing.T) {
		cases := map[string]order.Status{
			"preparing": order.Preparing,
			"pending":   order.Pending,
			"delivered": order.Delivered,
			"failed":    order.Failed,
			"cancelled": order.Cancelled,
		}

		for value, expected := range cases {
			status, err := order.ParseStatus(value)
			require.NoError(t, err)
			assert.Equal(t, expected, status)
			assert.Equal(t, value, status.String())
		}
	})

	t.Run("rejects_unknown_value", func(t *testing.T) {
		_, err := order.ParseStatus("shipped")

		require.Error(t, err)
	})
}
