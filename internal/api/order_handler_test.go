package api

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rijanbdahal/SushiBaiKiyoshi/internal/entity"
	"github.com/rijanbdahal/SushiBaiKiyoshi/internal/service"
)

type fakeOrderStore struct {
	customerIDs  map[int]int
	createdOrder *entity.Order
	nextOrderID  int
	deletedID    int
}

func (f *fakeOrderStore) GetCustomerIDByUserID(ctx context.Context, userID int) (int, error) {
	id, ok := f.customerIDs[userID]
	if !ok {
		return 0, sql.ErrNoRows
	}
	return id, nil
}

func (f *fakeOrderStore) CreateOrder(ctx context.Context, order *entity.Order, lines []entity.OrderLine) (int, error) {
	f.createdOrder = order
	return f.nextOrderID, nil
}

func (f *fakeOrderStore) GetOrdersByCustomer(ctx context.Context, customerID int) ([]*entity.Order, error) {
	return nil, nil
}

func (f *fakeOrderStore) GetAllOrders(ctx context.Context) ([]*entity.Order, error) {
	return nil, nil
}

func (f *fakeOrderStore) UpdateOrderStatus(ctx context.Context, orderID int, status string) error {
	return nil
}

func (f *fakeOrderStore) DeleteOrder(ctx context.Context, orderID int) error {
	f.deletedID = orderID
	return nil
}

type fakeDiscountStore struct{}

func (f *fakeDiscountStore) GetPreference(ctx context.Context, customerID, menuItemID int) (*entity.CustomerPreference, error) {
	return nil, nil
}

func (f *fakeDiscountStore) GetDiscountsForCustomer(ctx context.Context, customerID int) ([]*entity.CustomerDiscount, error) {
	return nil, nil
}

func newOrderHandler(store *fakeOrderStore) *OrderHandler {
	return NewOrderHandler(service.NewOrderService(store, &fakeDiscountStore{}, nil, nil))
}

func postJSON(t *testing.T, handler echo.HandlerFunc, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	require.NoError(t, handler(c))
	return rec
}

func TestPlaceOrderZeroQuantityRejected(t *testing.T) {
	t.Setenv("ENV", "test")
	store := &fakeOrderStore{customerIDs: map[int]int{7: 70}}
	h := newOrderHandler(store)

	body := `{"user_id": 7, "order_date": "2025-01-15", "status": "Pending",
		"items": [{"menu_item_id": 1, "quantity": 0, "price": 10}]}`
	rec := postJSON(t, h.PlaceOrder, "/handleorder", body)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, store.createdOrder, "no rows should be written for an invalid order")
}

func TestPlaceOrderUnknownCustomerRejected(t *testing.T) {
	t.Setenv("ENV", "test")
	h := newOrderHandler(&fakeOrderStore{customerIDs: map[int]int{}})

	body := `{"user_id": 42, "order_date": "2025-01-15", "status": "Pending",
		"items": [{"menu_item_id": 1, "quantity": 1, "price": 10}]}`
	rec := postJSON(t, h.PlaceOrder, "/handleorder", body)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Customer not found")
}

func TestPlaceOrderReturnsIDAndTotal(t *testing.T) {
	t.Setenv("ENV", "test")
	store := &fakeOrderStore{customerIDs: map[int]int{7: 70}, nextOrderID: 501}
	h := newOrderHandler(store)

	body := `{"user_id": 7, "order_date": "2025-01-15", "status": "Pending",
		"items": [{"menu_item_id": 1, "quantity": 2, "price": 10}]}`
	rec := postJSON(t, h.PlaceOrder, "/handleorder", body)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, float64(501), resp["orderId"])
	assert.InDelta(t, 20.0, resp["total"], 0.001)
}

func TestDeleteOrderAlwaysReturnsOK(t *testing.T) {
	store := &fakeOrderStore{}
	h := newOrderHandler(store)

	e := echo.New()
	req := httptest.NewRequest(http.MethodDelete, "/handleorder/deleteOrder/999", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("order_id")
	c.SetParamValues("999")

	require.NoError(t, h.DeleteOrder(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 999, store.deletedID)
}

func TestGetItemsRendersEmptyArray(t *testing.T) {
	h := newOrderHandler(&fakeOrderStore{customerIDs: map[int]int{7: 70}})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/handleorder/getItems/7", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("user_id")
	c.SetParamValues("7")

	require.NoError(t, h.GetItems(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))
}
