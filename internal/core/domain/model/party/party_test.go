package party_test

import (
	"testing"
	"time"

	"lastmile/internal/core/domain/model/party"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Run("creates_user", func(t *testing.T) {
		u, err := party.NewUser(1, "Priya", "priya@example.com", "34 Lake Rd", "+919900112233")

		require.NoError(t, err)
		assert.Equal(t, int64(1), u.ID())
		assert.Equal(t, "Priya", u.Name())
		assert.Equal(t, "priya@example.com", u.Email())
		assert.Equal(t, "34 Lake Rd", u.Address())
		assert.Equal(t, "+919900112233", u.Phone())
	})

	t.Run("contact_fields_are_optional", func(t *testing.T) {
		u, err := party.NewUser(1, "Priya", "", "", "")

		require.NoError(t, err)
		assert.Empty(t, u.Email())
		assert.Empty(t, u.Phone())
	})

	t.Run("rejects_empty_name", func(t *testing.T) {
		_, err := party.NewUser(1, "", "", "", "")

		require.Error(t, err)
		require.ErrorIs(t, err, party.ErrUserNameIsRequired)
	})
}

func newTestMerchant(t *testing.T, inventory []string, status party.MerchantStatus) *party.Merchant {
	t.Helper()
	m, err := party.RestoreMerchant(
		20, "Corner Kitchen", "kitchen@example.com", "+918800445566",
		"12 Market St", nil, inventory, 25, status,
	)
	require.NoError(t, err)
	return m
}

func TestRestoreMerchant(t *testing.T) {
	t.Run("restores_merchant", func(t *testing.T) {
		m := newTestMerchant(t, []string{"Margherita Pizza", "Garlic Bread"}, party.MerchantOpen)

		assert.Equal(t, int64(20), m.ID())
		assert.Equal(t, "12 Market St", m.Address())
		assert.Equal(t, 25, m.PrepMinutes())
		assert.True(t, m.IsOpen())
	})

	t.Run("rejects_invalid_status", func(t *testing.T) {
		_, err := party.RestoreMerchant(20, "Corner Kitchen", "", "", "", nil, nil, 25, party.MerchantStatusUnknown)

		require.Error(t, err)
	})
}

func TestMerchant_CarriesAll(t *testing.T) {
	m := newTestMerchant(t, []string{"Margherita Pizza", "Garlic Bread"}, party.MerchantOpen)

	t.Run("matches_case_insensitively", func(t *testing.T) {
		assert.True(t, m.CarriesAll([]string{"margherita pizza", "GARLIC BREAD"}))
	})

	t.Run("rejects_missing_item", func(t *testing.T) {
		assert.False(t, m.CarriesAll([]string{"Margherita Pizza", "Tiramisu"}))
	})

	t.Run("empty_request_is_carried", func(t *testing.T) {
		assert.True(t, m.CarriesAll(nil))
	})
}

func TestParseMerchantStatus(t *testing.T) {
	t.Run("parses_valid_statuses", func(t *testing.T) {
		cases := map[string]party.MerchantStatus{
			"open":   party.MerchantOpen,
			"closed": party.MerchantClosed,
		}

		for value, expected := range cases {
			status, err := party.ParseMerchantStatus(value)
			require.NoError(t, err)
			assert.Equal(t, expected, status)
			assert.Equal(t, value, status.String())
		}
	})

	t.Run("rejects_unknown_value", func(t *testing.T) {
		_, err := party.ParseMerchantStatus("renovating")

		require.Error(t, err)
	})
}

func TestNewPackagingFeedback(t *testing.T) {
	t.Run("creates_feedback", func(t *testing.T) {
		orderID := int64(42)
		now := time.Now()

		f, err := party.NewPackagingFeedback(3, 20, &orderID, "box arrived crushed", now)

		require.NoError(t, err)
		assert.Equal(t, int64(20), f.MerchantID())
		assert.Equal(t, orderID, *f.OrderID())
		assert.Equal(t, "box arrived crushed", f.Feedback())
	})

	t.Run("rejects_empty_feedback", func(t *testing.T) {
		_, err := party.NewPackagingFeedback(3, 20, nil, "", time.Now())

		require.Error(t, err)
		require.ErrorIs(t, err, party.ErrFeedbackIsRequired)
	})
}
