package repository

import (
	"context"
	"database/sql"

	"github.com/rijanbdahal/SushiBaiKiyoshi/internal/entity"
)

type MenuRepository struct {
	db *sql.DB
}

func NewMenuRepository(db *sql.DB) *MenuRepository {
	return &MenuRepository{db}
}

func (r *MenuRepository) GetMenuItems(ctx context.Context) ([]*entity.MenuItem, error) {
	query := `SELECT menu_item_id, inventory_id, menu_item_name, description, availability, price FROM menu_item`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*entity.MenuItem
	for rows.Next() {
		var item entity.MenuItem
		err := rows.Scan(&item.MenuItemID, &item.InventoryID, &item.MenuItemName, &item.Description, &item.Availability, &item.Price)
		if err != nil {
			return nil, err
		}
		items = append(items, &item)
	}

	return items, rows.Err()
}

func (r *MenuRepository) CreateMenuItem(ctx context.Context, item *entity.MenuItem) (int, error) {
	query := `INSERT INTO menu_item (inventory_id, menu_item_name, description, availability, price) VALUES (?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query, item.InventoryID, item.MenuItemName, item.Description, item.Availability, item.Price)
	if err != nil {
		return 0, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	return int(id), nil
}

func (r *MenuRepository) UpdateMenuItem(ctx context.Context, item *entity.MenuItem) (int64, error) {
	query := `UPDATE menu_item SET inventory_id = ?, menu_item_name = ?, description = ?, availability = ?, price = ? WHERE menu_item_id = ?`
	res, err := r.db.ExecContext(ctx, query, item.InventoryID, item.MenuItemName, item.Description, item.Availability, item.Price, item.MenuItemID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// GetInventoryOptions lists inventory id/name pairs for the menu-item form.
func (r *MenuRepository) GetInventoryOptions(ctx context.Context) ([]*entity.InventoryOption, error) {
	query := `SELECT inventory_id, item_name FROM inventory`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var options []*entity.InventoryOption
	for rows.Next() {
		var option entity.InventoryOption
		err := rows.Scan(&option.InventoryID, &option.ItemName)
		if err != nil {
			return nil, err
		}
		options = append(options, &option)
	}

	return options, rows.Err()
}
