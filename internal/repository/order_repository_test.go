package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rijanbdahal/SushiBaiKiyoshi/internal/entity"
)

func newMockDB(t *testing.T) (*OrderRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewOrderRepository(db), mock
}

func TestCreateOrderCommitsOrderDetailsAndStock(t *testing.T) {
	repo, mock := newMockDB(t)

	order := &entity.Order{CustomerID: 70, OrderDate: "2025-01-15", Status: entity.StatusPending, Total: 38.0}
	lines := []entity.OrderLine{
		{MenuItemID: 1, Quantity: 2, UnitPrice: 9.0},
		{MenuItemID: 2, Quantity: 1, UnitPrice: 20.0, CustomizationRequest: "no wasabi"},
	}

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO orders (customer_id, order_date, status, total) VALUES (?, ?, ?, ?)`)).
		WithArgs(70, "2025-01-15", entity.StatusPending, 38.0).
		WillReturnResult(sqlmock.NewResult(501, 1))
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO order_details (order_id, menu_item_id, quantity, customization_request) VALUES (?, ?, ?, ?),(?, ?, ?, ?)`)).
		WithArgs(int64(501), 1, 2, nil, int64(501), 2, 1, "no wasabi").
		WillReturnResult(sqlmock.NewResult(1, 2))
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE inventory SET no_in_stock = no_in_stock - ?`)).
		WithArgs(2, 1).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE inventory SET no_in_stock = no_in_stock - ?`)).
		WithArgs(1, 2).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	orderID, err := repo.CreateOrder(context.Background(), order, lines)
	require.NoError(t, err)
	assert.Equal(t, 501, orderID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateOrderRollsBackOnDetailFailure(t *testing.T) {
	repo, mock := newMockDB(t)

	order := &entity.Order{CustomerID: 70, OrderDate: "2025-01-15", Status: entity.StatusPending, Total: 18.0}
	lines := []entity.OrderLine{{MenuItemID: 1, Quantity: 2, UnitPrice: 9.0}}

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO orders`)).
		WillReturnResult(sqlmock.NewResult(501, 1))
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO order_details`)).
		WillReturnError(errors.New("detail insert failed"))
	mock.ExpectRollback()

	_, err := repo.CreateOrder(context.Background(), order, lines)
	require.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateOrderRollsBackOnStockFailure(t *testing.T) {
	repo, mock := newMockDB(t)

	order := &entity.Order{CustomerID: 70, OrderDate: "2025-01-15", Status: entity.StatusPending, Total: 18.0}
	lines := []entity.OrderLine{{MenuItemID: 1, Quantity: 2, UnitPrice: 9.0}}

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO orders`)).
		WillReturnResult(sqlmock.NewResult(501, 1))
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO order_details`)).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE inventory SET no_in_stock = no_in_stock - ?`)).
		WillReturnError(errors.New("stock update failed"))
	mock.ExpectRollback()

	_, err := repo.CreateOrder(context.Background(), order, lines)
	require.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteOrderRemovesDetailsFirst(t *testing.T) {
	repo, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM order_details WHERE order_id = ?`)).
		WithArgs(9).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM orders WHERE order_id = ?`)).
		WithArgs(9).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.DeleteOrder(context.Background(), 9)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteOrderUnknownIDIsNotAnError(t *testing.T) {
	repo, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM order_details WHERE order_id = ?`)).
		WithArgs(404).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM orders WHERE order_id = ?`)).
		WithArgs(404).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := repo.DeleteOrder(context.Background(), 404)
	assert.NoError(t, err)
}

func TestGetCustomerIDByUserIDNoRow(t *testing.T) {
	repo, mock := newMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT customer_id FROM customers WHERE user_id = ?`)).
		WithArgs(99).
		WillReturnRows(sqlmock.NewRows([]string{"customer_id"}))

	_, err := repo.GetCustomerIDByUserID(context.Background(), 99)
	assert.Error(t, err)
}
