package repository

import (
	"context"
	"database/sql"

	"github.com/rijanbdahal/SushiBaiKiyoshi/internal/entity"
)

type PreferenceRepository struct {
	db *sql.DB
}

func NewPreferenceRepository(db *sql.DB) *PreferenceRepository {
	return &PreferenceRepository{db}
}

// GetPreference returns the preference row for a (customer, menu item) pair,
// or nil when none exists yet.
func (r *PreferenceRepository) GetPreference(ctx context.Context, customerID, menuItemID int) (*entity.CustomerPreference, error) {
	pref := &entity.CustomerPreference{}
	query := `SELECT customer_id, menu_item_id, order_count, last_ordered, discount_eligible
		FROM customer_preferences WHERE customer_id = ? AND menu_item_id = ?`
	err := r.db.QueryRowContext(ctx, query, customerID, menuItemID).Scan(&pref.CustomerID, &pref.MenuItemID, &pref.OrderCount, &pref.LastOrdered, &pref.DiscountEligible)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return pref, nil
}

func (r *PreferenceRepository) CreatePreference(ctx context.Context, pref *entity.CustomerPreference) error {
	query := `INSERT INTO customer_preferences (customer_id, menu_item_id, order_count, last_ordered, discount_eligible)
		VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query, pref.CustomerID, pref.MenuItemID, pref.OrderCount, pref.LastOrdered, pref.DiscountEligible)
	return err
}

func (r *PreferenceRepository) UpdatePreference(ctx context.Context, pref *entity.CustomerPreference) error {
	query := `UPDATE customer_preferences SET order_count = ?, last_ordered = ?, discount_eligible = ?
		WHERE customer_id = ? AND menu_item_id = ?`
	_, err := r.db.ExecContext(ctx, query, pref.OrderCount, pref.LastOrdered, pref.DiscountEligible, pref.CustomerID, pref.MenuItemID)
	return err
}

// GetDiscountsForCustomer lists the customer's preference rows joined with
// menu items, eligible rows first.
func (r *PreferenceRepository) GetDiscountsForCustomer(ctx context.Context, customerID int) ([]*entity.CustomerDiscount, error) {
	query := `SELECT cp.menu_item_id, mi.menu_item_name, mi.price AS original_price,
			ROUND(mi.price * 0.9, 2) AS discounted_price, cp.order_count, cp.discount_eligible
		FROM customer_preferences cp
		JOIN menu_item mi ON cp.menu_item_id = mi.menu_item_id
		WHERE cp.customer_id = ?
		ORDER BY cp.discount_eligible DESC, cp.order_count DESC`
	rows, err := r.db.QueryContext(ctx, query, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var discounts []*entity.CustomerDiscount
	for rows.Next() {
		var d entity.CustomerDiscount
		err := rows.Scan(&d.MenuItemID, &d.MenuItemName, &d.OriginalPrice, &d.DiscountedPrice, &d.OrderCount, &d.DiscountEligible)
		if err != nil {
			return nil, err
		}
		discounts = append(discounts, &d)
	}

	return discounts, rows.Err()
}
