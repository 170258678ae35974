package api

import (
	"errors"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/rijanbdahal/SushiBaiKiyoshi/internal/entity"
	"github.com/rijanbdahal/SushiBaiKiyoshi/internal/service"
)

type MenuHandler struct {
	menuService *service.MenuService
}

// NewMenuHandler creates a new instance of MenuHandler.
func NewMenuHandler(menuService *service.MenuService) *MenuHandler {
	return &MenuHandler{menuService: menuService}
}

// GetMenuItems lists the menu --> GET /menuitems
func (h *MenuHandler) GetMenuItems(c echo.Context) error {
	items, err := h.menuService.GetMenuItems(c.Request().Context())
	if err != nil {
		return c.JSON(500, map[string]string{"error": "Internal Server Error"})
	}

	if items == nil {
		items = []*entity.MenuItem{}
	}
	return c.JSON(200, items)
}

// CreateMenuItem adds a menu item --> POST /menuitems
func (h *MenuHandler) CreateMenuItem(c echo.Context) error {
	item := entity.MenuItem{Availability: true}
	if err := c.Bind(&item); err != nil {
		return c.JSON(400, map[string]string{"error": "Invalid request payload"})
	}

	id, err := h.menuService.CreateMenuItem(c.Request().Context(), &item)
	if err != nil {
		if errors.Is(err, service.ErrMissingFields) {
			return c.JSON(400, map[string]string{"error": "Missing required fields"})
		}
		return c.JSON(500, map[string]string{"error": "Internal Server Error"})
	}

	return c.JSON(201, map[string]interface{}{
		"message":    "Menu item created successfully",
		"menuItemId": id,
	})
}

// UpdateMenuItem edits a menu item --> PUT /menuitems/:id
func (h *MenuHandler) UpdateMenuItem(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(400, map[string]string{"error": "Invalid ID"})
	}

	item := entity.MenuItem{Availability: true}
	if err := c.Bind(&item); err != nil {
		return c.JSON(400, map[string]string{"error": "Invalid request payload"})
	}
	item.MenuItemID = id

	if err := h.menuService.UpdateMenuItem(c.Request().Context(), &item); err != nil {
		if errors.Is(err, service.ErrMissingFields) {
			return c.JSON(400, map[string]string{"error": "Missing required fields"})
		}
		if errors.Is(err, service.ErrMenuItemNotFound) {
			return c.JSON(404, map[string]string{"error": "Menu item not found"})
		}
		return c.JSON(500, map[string]string{"error": "Internal Server Error"})
	}

	return c.JSON(200, map[string]string{"message": "Menu item updated successfully"})
}

// GetInventoryOptions lists inventory choices for the menu form --> GET /menuitems/inventory
func (h *MenuHandler) GetInventoryOptions(c echo.Context) error {
	options, err := h.menuService.GetInventoryOptions(c.Request().Context())
	if err != nil {
		return c.JSON(500, map[string]string{"error": "Internal Server Error"})
	}

	if options == nil {
		options = []*entity.InventoryOption{}
	}
	return c.JSON(200, options)
}
