package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rijanbdahal/SushiBaiKiyoshi/internal/entity"
)

type fakeOrderStore struct {
	customerIDs  map[int]int
	createdOrder *entity.Order
	createdLines []entity.OrderLine
	nextOrderID  int
	deletedID    int
	statusByID   map[int]string
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
	f.createdLines = lines
	return f.nextOrderID, nil
}

func (f *fakeOrderStore) GetOrdersByCustomer(ctx context.Context, customerID int) ([]*entity.Order, error) {
	return nil, nil
}

func (f *fakeOrderStore) GetAllOrders(ctx context.Context) ([]*entity.Order, error) {
	return nil, nil
}

func (f *fakeOrderStore) UpdateOrderStatus(ctx context.Context, orderID int, status string) error {
	if f.statusByID == nil {
		f.statusByID = map[int]string{}
	}
	f.statusByID[orderID] = status
	return nil
}

func (f *fakeOrderStore) DeleteOrder(ctx context.Context, orderID int) error {
	f.deletedID = orderID
	return nil
}

type fakeDiscountStore struct {
	prefs map[int]*entity.CustomerPreference // keyed by menu item id
}

func (f *fakeDiscountStore) GetPreference(ctx context.Context, customerID, menuItemID int) (*entity.CustomerPreference, error) {
	return f.prefs[menuItemID], nil
}

func (f *fakeDiscountStore) GetDiscountsForCustomer(ctx context.Context, customerID int) ([]*entity.CustomerDiscount, error) {
	return nil, nil
}

func TestPlaceOrderRejectsInvalidRequests(t *testing.T) {
	t.Setenv("ENV", "test")
	svc := NewOrderService(&fakeOrderStore{}, &fakeDiscountStore{}, nil, nil)

	tests := []struct {
		name string
		req  entity.OrderRequest
	}{
		{"missing user", entity.OrderRequest{OrderDate: "2025-01-15", Items: []entity.OrderLineItem{{MenuItemID: 1, Quantity: 1, Price: 10}}}},
		{"missing date", entity.OrderRequest{UserID: 1, Items: []entity.OrderLineItem{{MenuItemID: 1, Quantity: 1, Price: 10}}}},
		{"empty items", entity.OrderRequest{UserID: 1, OrderDate: "2025-01-15"}},
		{"zero quantity", entity.OrderRequest{UserID: 1, OrderDate: "2025-01-15", Items: []entity.OrderLineItem{{MenuItemID: 1, Quantity: 0, Price: 10}}}},
		{"negative quantity", entity.OrderRequest{UserID: 1, OrderDate: "2025-01-15", Items: []entity.OrderLineItem{{MenuItemID: 1, Quantity: -2, Price: 10}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := svc.PlaceOrder(context.Background(), &tt.req, "")
			assert.ErrorIs(t, err, ErrInvalidOrder)
		})
	}
}

func TestPlaceOrderRejectsUnknownCustomer(t *testing.T) {
	t.Setenv("ENV", "test")
	store := &fakeOrderStore{customerIDs: map[int]int{}}
	svc := NewOrderService(store, &fakeDiscountStore{}, nil, nil)

	req := entity.OrderRequest{
		UserID:    42,
		OrderDate: "2025-01-15",
		Status:    entity.StatusPending,
		Items:     []entity.OrderLineItem{{MenuItemID: 1, Quantity: 1, Price: 10}},
	}

	_, _, err := svc.PlaceOrder(context.Background(), &req, "")
	assert.ErrorIs(t, err, ErrCustomerNotFound)
	assert.Nil(t, store.createdOrder, "nothing should be written for an unknown customer")
}

func TestPlaceOrderAppliesDiscountToEligibleLinesOnly(t *testing.T) {
	t.Setenv("ENV", "test")
	store := &fakeOrderStore{
		customerIDs: map[int]int{7: 70},
		nextOrderID: 501,
	}
	discounts := &fakeDiscountStore{prefs: map[int]*entity.CustomerPreference{
		1: {CustomerID: 70, MenuItemID: 1, OrderCount: 6, DiscountEligible: true},
		2: {CustomerID: 70, MenuItemID: 2, OrderCount: 2, DiscountEligible: false},
	}}
	svc := NewOrderService(store, discounts, nil, nil)

	req := entity.OrderRequest{
		UserID:    7,
		OrderDate: "2025-01-15",
		Status:    entity.StatusPending,
		Items: []entity.OrderLineItem{
			{MenuItemID: 1, Quantity: 2, Price: 10.00}, // eligible: 9.00 each
			{MenuItemID: 2, Quantity: 1, Price: 20.00}, // below threshold
			{MenuItemID: 3, Quantity: 3, Price: 5.00},  // no preference row
		},
	}

	orderID, total, err := svc.PlaceOrder(context.Background(), &req, "")
	require.NoError(t, err)

	assert.Equal(t, 501, orderID)
	assert.InDelta(t, 2*9.00+20.00+3*5.00, total, 0.001)

	require.Len(t, store.createdLines, 3)
	assert.True(t, store.createdLines[0].DiscountApplied)
	assert.InDelta(t, 9.00, store.createdLines[0].UnitPrice, 0.001)
	assert.False(t, store.createdLines[1].DiscountApplied)
	assert.InDelta(t, 20.00, store.createdLines[1].UnitPrice, 0.001)
	assert.False(t, store.createdLines[2].DiscountApplied)

	require.NotNil(t, store.createdOrder)
	assert.Equal(t, 70, store.createdOrder.CustomerID)
	assert.InDelta(t, total, store.createdOrder.Total, 0.001)
}

func TestCompleteAndProcessOrderSetStatus(t *testing.T) {
	store := &fakeOrderStore{}
	svc := NewOrderService(store, &fakeDiscountStore{}, nil, nil)

	require.NoError(t, svc.CompleteOrder(context.Background(), 11))
	require.NoError(t, svc.ProcessOrder(context.Background(), 12))

	assert.Equal(t, entity.StatusCompleted, store.statusByID[11])
	assert.Equal(t, entity.StatusProcessing, store.statusByID[12])
}

func TestGetCustomerOrdersUnknownUser(t *testing.T) {
	svc := NewOrderService(&fakeOrderStore{customerIDs: map[int]int{}}, &fakeDiscountStore{}, nil, nil)

	_, err := svc.GetCustomerOrders(context.Background(), 999)
	assert.ErrorIs(t, err, ErrCustomerNotFound)
}
