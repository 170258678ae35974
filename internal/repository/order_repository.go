package repository

import (
	"context"
	"database/sql"

	"github.com/rijanbdahal/SushiBaiKiyoshi/internal/entity"
)

type OrderRepository struct {
	db *sql.DB
}

func NewOrderRepository(db *sql.DB) *OrderRepository {
	return &OrderRepository{db}
}

// GetCustomerIDByUserID resolves the customer row backing a user. Returns
// sql.ErrNoRows for users without a customer record (admins).
func (r *OrderRepository) GetCustomerIDByUserID(ctx context.Context, userID int) (int, error) {
	var customerID int
	query := `SELECT customer_id FROM customers WHERE user_id = ?`
	err := r.db.QueryRowContext(ctx, query, userID).Scan(&customerID)
	if err != nil {
		return 0, err
	}

	return customerID, nil
}

// CreateOrder persists the order, its line items and the inventory decrements
// in one transaction. Any failure rolls the whole order back.
func (r *OrderRepository) CreateOrder(ctx context.Context, order *entity.Order, lines []entity.OrderLine) (int, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}

	orderQuery := `INSERT INTO orders (customer_id, order_date, status, total) VALUES (?, ?, ?, ?)`
	res, err := tx.ExecContext(ctx, orderQuery, order.CustomerID, order.OrderDate, order.Status, order.Total)
	if err != nil {
		tx.Rollback()
		return 0, err
	}

	orderID, err := res.LastInsertId()
	if err != nil {
		tx.Rollback()
		return 0, err
	}

	// Insert order details with batch
	detailQuery := `INSERT INTO order_details (order_id, menu_item_id, quantity, customization_request) VALUES `

	var values []interface{}
	for _, line := range lines {
		detailQuery += "(?, ?, ?, ?),"
		var customization interface{}
		if line.CustomizationRequest != "" {
			customization = line.CustomizationRequest
		}
		values = append(values, orderID, line.MenuItemID, line.Quantity, customization)
	}

	// Remove the trailing comma
	detailQuery = detailQuery[:len(detailQuery)-1]

	_, err = tx.ExecContext(ctx, detailQuery, values...)
	if err != nil {
		tx.Rollback()
		return 0, err
	}

	// Decrement stock per line via the menu item's inventory reference. The
	// update is unconditional; stock may go negative under concurrent load.
	inventoryQuery := `UPDATE inventory SET no_in_stock = no_in_stock - ?
		WHERE inventory_id = (SELECT inventory_id FROM menu_item WHERE menu_item_id = ?)`
	for _, line := range lines {
		_, err = tx.ExecContext(ctx, inventoryQuery, line.Quantity, line.MenuItemID)
		if err != nil {
			tx.Rollback()
			return 0, err
		}
	}

	err = tx.Commit()
	if err != nil {
		return 0, err
	}

	return int(orderID), nil
}

func (r *OrderRepository) GetOrdersByCustomer(ctx context.Context, customerID int) ([]*entity.Order, error) {
	query := `SELECT order_id, customer_id, order_date, status, total FROM orders WHERE customer_id = ? ORDER BY order_date DESC`
	rows, err := r.db.QueryContext(ctx, query, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanOrders(rows)
}

func (r *OrderRepository) GetAllOrders(ctx context.Context) ([]*entity.Order, error) {
	query := `SELECT order_id, customer_id, order_date, status, total FROM orders ORDER BY order_date DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanOrders(rows)
}

func scanOrders(rows *sql.Rows) ([]*entity.Order, error) {
	var orders []*entity.Order
	for rows.Next() {
		var order entity.Order
		err := rows.Scan(&order.OrderID, &order.CustomerID, &order.OrderDate, &order.Status, &order.Total)
		if err != nil {
			return nil, err
		}
		orders = append(orders, &order)
	}
	return orders, rows.Err()
}

func (r *OrderRepository) UpdateOrderStatus(ctx context.Context, orderID int, status string) error {
	query := `UPDATE orders SET status = ? WHERE order_id = ?`
	_, err := r.db.ExecContext(ctx, query, status, orderID)
	if err != nil {
		return err
	}

	return nil
}

// DeleteOrder removes the order details then the order itself in one
// transaction. Deleting an unknown id is not an error.
func (r *OrderRepository) DeleteOrder(ctx context.Context, orderID int) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx, `DELETE FROM order_details WHERE order_id = ?`, orderID)
	if err != nil {
		tx.Rollback()
		return err
	}

	_, err = tx.ExecContext(ctx, `DELETE FROM orders WHERE order_id = ?`, orderID)
	if err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit()
}
