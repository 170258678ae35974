package api

import (
	"errors"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/rijanbdahal/SushiBaiKiyoshi/internal/entity"
	"github.com/rijanbdahal/SushiBaiKiyoshi/internal/service"
)

type InventoryHandler struct {
	inventoryService *service.InventoryService
}

// NewInventoryHandler creates a new instance of InventoryHandler.
func NewInventoryHandler(inventoryService *service.InventoryService) *InventoryHandler {
	return &InventoryHandler{inventoryService: inventoryService}
}

// GetItems lists the inventory --> GET /inventory
func (h *InventoryHandler) GetItems(c echo.Context) error {
	items, err := h.inventoryService.GetItems(c.Request().Context())
	if err != nil {
		return c.JSON(500, map[string]string{"message": "Internal server error"})
	}

	if items == nil {
		items = []*entity.InventoryItem{}
	}
	return c.JSON(200, items)
}

// AddItem creates an inventory item --> POST /inventory
func (h *InventoryHandler) AddItem(c echo.Context) error {
	item := entity.InventoryItem{}
	if err := c.Bind(&item); err != nil {
		return c.JSON(400, map[string]string{"message": "Invalid request payload"})
	}

	_, err := h.inventoryService.CreateItem(c.Request().Context(), &item)
	if err != nil {
		if errors.Is(err, service.ErrMissingFields) {
			return c.JSON(400, map[string]string{"message": "All fields are required"})
		}
		return c.JSON(500, map[string]string{"message": "Internal server error"})
	}

	return c.JSON(201, map[string]string{"message": "Item added successfully"})
}

// EditItem updates an inventory item --> PUT /inventory/:id
func (h *InventoryHandler) EditItem(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(400, map[string]string{"message": "Invalid ID"})
	}

	item := entity.InventoryItem{}
	if err := c.Bind(&item); err != nil {
		return c.JSON(400, map[string]string{"message": "Invalid request payload"})
	}
	item.InventoryID = id

	if err := h.inventoryService.UpdateItem(c.Request().Context(), &item); err != nil {
		if errors.Is(err, service.ErrItemNotFound) {
			return c.JSON(404, map[string]string{"message": "Item not found"})
		}
		return c.JSON(500, map[string]string{"message": "Internal server error"})
	}

	return c.JSON(200, map[string]string{"message": "Item updated successfully"})
}

// DeleteItem removes an inventory item --> DELETE /inventory/:id
func (h *InventoryHandler) DeleteItem(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(400, map[string]string{"message": "Invalid ID"})
	}

	if err := h.inventoryService.DeleteItem(c.Request().Context(), id); err != nil {
		if errors.Is(err, service.ErrItemNotFound) {
			return c.JSON(404, map[string]string{"message": "Item not found"})
		}
		return c.JSON(500, map[string]string{"message": "Internal server error"})
	}

	return c.JSON(200, map[string]string{"message": "Item deleted successfully"})
}

// ReceiveShipment adds inbound stock and logs the market receipt --> POST /receivefish
func (h *InventoryHandler) ReceiveShipment(c echo.Context) error {
	req := entity.ReceiveShipmentRequest{}
	if err := c.Bind(&req); err != nil {
		return c.JSON(400, map[string]string{"error": "Invalid request payload"})
	}

	if err := h.inventoryService.ReceiveShipment(c.Request().Context(), &req); err != nil {
		if errors.Is(err, service.ErrMissingFields) {
			return c.JSON(400, map[string]string{"error": "Missing required fields"})
		}
		return c.JSON(500, map[string]string{"error": "Database error"})
	}

	return c.JSON(200, map[string]string{"message": "Inventory and market details updated"})
}

// GetReceivedShipments lists fish_market receipts --> GET /receivefish/getReceivedFish
func (h *InventoryHandler) GetReceivedShipments(c echo.Context) error {
	receipts, err := h.inventoryService.GetMarketReceipts(c.Request().Context())
	if err != nil {
		return c.JSON(500, map[string]string{"error": "Database error"})
	}

	if receipts == nil {
		receipts = []*entity.MarketReceipt{}
	}
	return c.JSON(200, receipts)
}
