package repository

import (
	"context"
	"database/sql"

	"github.com/rijanbdahal/SushiBaiKiyoshi/internal/entity"
)

type InventoryRepository struct {
	db *sql.DB
}

func NewInventoryRepository(db *sql.DB) *InventoryRepository {
	return &InventoryRepository{db}
}

func (r *InventoryRepository) GetItems(ctx context.Context) ([]*entity.InventoryItem, error) {
	query := `SELECT inventory_id, item_name, no_in_stock FROM inventory`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*entity.InventoryItem
	for rows.Next() {
		var item entity.InventoryItem
		err := rows.Scan(&item.InventoryID, &item.ItemName, &item.NoInStock)
		if err != nil {
			return nil, err
		}
		items = append(items, &item)
	}

	return items, rows.Err()
}

// GetItemByName returns nil when the name is unseen.
func (r *InventoryRepository) GetItemByName(ctx context.Context, name string) (*entity.InventoryItem, error) {
	item := &entity.InventoryItem{}
	query := `SELECT inventory_id, item_name, no_in_stock FROM inventory WHERE item_name = ?`
	err := r.db.QueryRowContext(ctx, query, name).Scan(&item.InventoryID, &item.ItemName, &item.NoInStock)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return item, nil
}

func (r *InventoryRepository) CreateItem(ctx context.Context, item *entity.InventoryItem) (int, error) {
	query := `INSERT INTO inventory (item_name, no_in_stock) VALUES (?, ?)`
	res, err := r.db.ExecContext(ctx, query, item.ItemName, item.NoInStock)
	if err != nil {
		return 0, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	return int(id), nil
}

func (r *InventoryRepository) UpdateItem(ctx context.Context, item *entity.InventoryItem) (int64, error) {
	query := `UPDATE inventory SET item_name = ?, no_in_stock = ? WHERE inventory_id = ?`
	res, err := r.db.ExecContext(ctx, query, item.ItemName, item.NoInStock, item.InventoryID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *InventoryRepository) DeleteItem(ctx context.Context, id int) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM inventory WHERE inventory_id = ?`, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// AddStock increments an item's stock by its name.
func (r *InventoryRepository) AddStock(ctx context.Context, itemName string, quantity int) error {
	query := `UPDATE inventory SET no_in_stock = no_in_stock + ? WHERE item_name = ?`
	_, err := r.db.ExecContext(ctx, query, quantity, itemName)
	return err
}

// CreateMarketReceipt logs an inbound shipment in the fish_market table.
func (r *InventoryRepository) CreateMarketReceipt(ctx context.Context, inventoryID int, req *entity.ReceiveShipmentRequest) error {
	query := `INSERT INTO fish_market (inventory_id, market_name, fish_price, postal_code, inbound_quantity) VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query, inventoryID, req.MarketName, req.FishPrice, req.PostalCode, req.Quantity)
	return err
}

func (r *InventoryRepository) GetMarketReceipts(ctx context.Context) ([]*entity.MarketReceipt, error) {
	query := `SELECT fm.market_id, i.item_name, fm.market_name, fm.fish_price, fm.postal_code, fm.inbound_quantity
		FROM fish_market fm
		JOIN inventory i ON fm.inventory_id = i.inventory_id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var receipts []*entity.MarketReceipt
	for rows.Next() {
		var receipt entity.MarketReceipt
		err := rows.Scan(&receipt.MarketID, &receipt.ItemName, &receipt.MarketName, &receipt.FishPrice, &receipt.PostalCode, &receipt.InboundQuantity)
		if err != nil {
			return nil, err
		}
		receipts = append(receipts, &receipt)
	}

	return receipts, rows.Err()
}
