package repository

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPreferenceRepo(t *testing.T) (*PreferenceRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewPreferenceRepository(db), mock
}

func TestGetPreferenceReturnsNilWhenAbsent(t *testing.T) {
	repo, mock := newPreferenceRepo(t)

	mock.ExpectQuery(`SELECT customer_id, menu_item_id, order_count, last_ordered, discount_eligible`).
		WithArgs(70, 3).
		WillReturnRows(sqlmock.NewRows([]string{"customer_id", "menu_item_id", "order_count", "last_ordered", "discount_eligible"}))

	pref, err := repo.GetPreference(context.Background(), 70, 3)
	require.NoError(t, err)
	assert.Nil(t, pref)
}

func TestGetPreferenceScansRow(t *testing.T) {
	repo, mock := newPreferenceRepo(t)

	rows := sqlmock.NewRows([]string{"customer_id", "menu_item_id", "order_count", "last_ordered", "discount_eligible"}).
		AddRow(70, 3, 6, "2025-01-10", true)
	mock.ExpectQuery(`SELECT customer_id, menu_item_id, order_count, last_ordered, discount_eligible`).
		WithArgs(70, 3).
		WillReturnRows(rows)

	pref, err := repo.GetPreference(context.Background(), 70, 3)
	require.NoError(t, err)
	require.NotNil(t, pref)
	assert.Equal(t, 6, pref.OrderCount)
	assert.True(t, pref.DiscountEligible)
}

func TestGetDiscountsForCustomerOrdersEligibleFirst(t *testing.T) {
	repo, mock := newPreferenceRepo(t)

	rows := sqlmock.NewRows([]string{"menu_item_id", "menu_item_name", "original_price", "discounted_price", "order_count", "discount_eligible"}).
		AddRow(1, "Salmon Nigiri", 10.00, 9.00, 6, true).
		AddRow(2, "Tuna Roll", 20.00, 18.00, 2, false)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT cp.menu_item_id, mi.menu_item_name`)).
		WithArgs(70).
		WillReturnRows(rows)

	discounts, err := repo.GetDiscountsForCustomer(context.Background(), 70)
	require.NoError(t, err)
	require.Len(t, discounts, 2)
	assert.True(t, discounts[0].DiscountEligible)
	assert.InDelta(t, 9.00, discounts[0].DiscountedPrice, 0.001)
	assert.False(t, discounts[1].DiscountEligible)
}
