package service

import (
	"context"

	"github.com/rijanbdahal/SushiBaiKiyoshi/internal/entity"
)

// InventoryStore is the slice of the inventory repository the service needs.
type InventoryStore interface {
	GetItems(ctx context.Context) ([]*entity.InventoryItem, error)
	GetItemByName(ctx context.Context, name string) (*entity.InventoryItem, error)
	CreateItem(ctx context.Context, item *entity.InventoryItem) (int, error)
	UpdateItem(ctx context.Context, item *entity.InventoryItem) (int64, error)
	DeleteItem(ctx context.Context, id int) (int64, error)
	AddStock(ctx context.Context, itemName string, quantity int) error
	CreateMarketReceipt(ctx context.Context, inventoryID int, req *entity.ReceiveShipmentRequest) error
	GetMarketReceipts(ctx context.Context) ([]*entity.MarketReceipt, error)
}

type InventoryService struct {
	inventory InventoryStore
}

// NewInventoryService creates a new instance of InventoryService.
func NewInventoryService(inventory InventoryStore) *InventoryService {
	return &InventoryService{inventory: inventory}
}

func (s *InventoryService) GetItems(ctx context.Context) ([]*entity.InventoryItem, error) {
	items, err := s.inventory.GetItems(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("Error fetching inventory")
		return nil, err
	}
	return items, nil
}

func (s *InventoryService) CreateItem(ctx context.Context, item *entity.InventoryItem) (int, error) {
	if item.ItemName == "" {
		return 0, ErrMissingFields
	}

	id, err := s.inventory.CreateItem(ctx, item)
	if err != nil {
		logger.Error().Err(err).Msg("Error adding inventory item")
		return 0, err
	}
	return id, nil
}

func (s *InventoryService) UpdateItem(ctx context.Context, item *entity.InventoryItem) error {
	rows, err := s.inventory.UpdateItem(ctx, item)
	if err != nil {
		logger.Error().Err(err).Int("inventory_id", item.InventoryID).Msg("Error updating inventory item")
		return err
	}
	if rows == 0 {
		return ErrItemNotFound
	}
	return nil
}

func (s *InventoryService) DeleteItem(ctx context.Context, id int) error {
	rows, err := s.inventory.DeleteItem(ctx, id)
	if err != nil {
		logger.Error().Err(err).Int("inventory_id", id).Msg("Error deleting inventory item")
		return err
	}
	if rows == 0 {
		return ErrItemNotFound
	}
	return nil
}

// ReceiveShipment adds inbound stock to the named item, creating the item
// when the name is unseen, and always appends a fish_market receipt.
func (s *InventoryService) ReceiveShipment(ctx context.Context, req *entity.ReceiveShipmentRequest) error {
	if req.ItemName == "" || req.Quantity == 0 || req.MarketName == "" || req.FishPrice == 0 || req.PostalCode == "" {
		return ErrMissingFields
	}

	item, err := s.inventory.GetItemByName(ctx, req.ItemName)
	if err != nil {
		logger.Error().Err(err).Str("item_name", req.ItemName).Msg("Error looking up inventory item")
		return err
	}

	var inventoryID int
	if item != nil {
		inventoryID = item.InventoryID
		err = s.inventory.AddStock(ctx, req.ItemName, req.Quantity)
	} else {
		inventoryID, err = s.inventory.CreateItem(ctx, &entity.InventoryItem{
			ItemName:  req.ItemName,
			NoInStock: req.Quantity,
		})
	}
	if err != nil {
		logger.Error().Err(err).Str("item_name", req.ItemName).Msg("Error updating stock")
		return err
	}

	err = s.inventory.CreateMarketReceipt(ctx, inventoryID, req)
	if err != nil {
		logger.Error().Err(err).Str("item_name", req.ItemName).Msg("Error logging market receipt")
		return err
	}

	return nil
}

func (s *InventoryService) GetMarketReceipts(ctx context.Context) ([]*entity.MarketReceipt, error) {
	receipts, err := s.inventory.GetMarketReceipts(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("Error fetching market receipts")
		return nil, err
	}
	return receipts, nil
}
