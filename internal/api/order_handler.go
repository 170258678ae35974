package api

import (
	"errors"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/rijanbdahal/SushiBaiKiyoshi/internal/entity"
	"github.com/rijanbdahal/SushiBaiKiyoshi/internal/service"
)

type OrderHandler struct {
	orderService *service.OrderService
}

// NewOrderHandler creates a new instance of OrderHandler.
func NewOrderHandler(orderService *service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// PlaceOrder runs the order pipeline --> POST /handleorder
func (h *OrderHandler) PlaceOrder(c echo.Context) error {
	req := entity.OrderRequest{}
	if err := c.Bind(&req); err != nil {
		return c.JSON(400, map[string]string{"error": "Invalid request payload"})
	}

	idempotentKey := c.Request().Header.Get("Idempotent-Key")

	orderID, total, err := h.orderService.PlaceOrder(c.Request().Context(), &req, idempotentKey)
	if err != nil {
		if errors.Is(err, service.ErrInvalidOrder) {
			return c.JSON(400, map[string]string{"error": "Invalid order data: Ensure all fields are provided and quantities are greater than zero."})
		}
		if errors.Is(err, service.ErrCustomerNotFound) {
			return c.JSON(400, map[string]string{"error": "Customer not found for the given user."})
		}
		if errors.Is(err, service.ErrDuplicateOrder) {
			return c.JSON(400, map[string]string{"error": "Duplicate order"})
		}
		return c.JSON(500, map[string]string{"error": "Internal Server Error"})
	}

	return c.JSON(201, map[string]interface{}{
		"message": "Order placed successfully",
		"orderId": orderID,
		"total":   total,
	})
}

// GetItems lists a customer's orders --> GET /handleorder/getItems/:user_id
func (h *OrderHandler) GetItems(c echo.Context) error {
	userID, err := strconv.Atoi(c.Param("user_id"))
	if err != nil {
		return c.JSON(400, map[string]string{"error": "Invalid ID"})
	}

	orders, err := h.orderService.GetCustomerOrders(c.Request().Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrCustomerNotFound) {
			return c.JSON(400, map[string]string{"error": "Customer not found for the given user."})
		}
		return c.JSON(500, map[string]string{"error": "Internal Server Error"})
	}

	if orders == nil {
		orders = []*entity.Order{}
	}
	return c.JSON(200, orders)
}

// GetAllOrders lists every order --> GET /handleorder/getAllOrders
func (h *OrderHandler) GetAllOrders(c echo.Context) error {
	orders, err := h.orderService.GetAllOrders(c.Request().Context())
	if err != nil {
		return c.JSON(500, map[string]string{"error": "Internal Server Error"})
	}

	if orders == nil {
		orders = []*entity.Order{}
	}
	return c.JSON(200, orders)
}

// CompleteOrder marks an order completed --> PUT /handleorder/completeOrder/:orderId
func (h *OrderHandler) CompleteOrder(c echo.Context) error {
	orderID, err := strconv.Atoi(c.Param("orderId"))
	if err != nil {
		return c.JSON(400, map[string]string{"error": "Invalid ID"})
	}

	if err := h.orderService.CompleteOrder(c.Request().Context(), orderID); err != nil {
		return c.JSON(500, map[string]string{"error": "Order Completion Error"})
	}

	return c.JSON(200, map[string]string{"message": "Order marked as completed successfully"})
}

// ProcessOrder marks an order processing --> PUT /handleorder/processOrder/:orderId
func (h *OrderHandler) ProcessOrder(c echo.Context) error {
	orderID, err := strconv.Atoi(c.Param("orderId"))
	if err != nil {
		return c.JSON(400, map[string]string{"error": "Invalid ID"})
	}

	if err := h.orderService.ProcessOrder(c.Request().Context(), orderID); err != nil {
		return c.JSON(500, map[string]string{"error": "Order Processing Error"})
	}

	return c.JSON(200, map[string]string{"message": "Order marked as processing successfully"})
}

// DeleteOrder removes an order and its details --> DELETE /handleorder/deleteOrder/:order_id
// Deleting an unknown id still returns 200.
func (h *OrderHandler) DeleteOrder(c echo.Context) error {
	orderID, err := strconv.Atoi(c.Param("order_id"))
	if err != nil {
		return c.JSON(400, map[string]string{"error": "Invalid ID"})
	}

	if err := h.orderService.DeleteOrder(c.Request().Context(), orderID); err != nil {
		return c.JSON(500, map[string]string{"error": "Internal Server Error"})
	}

	return c.JSON(200, map[string]string{"message": "Order deleted successfully"})
}

// GetDiscounts lists a user's loyalty discounts --> GET /handleorder/discounts/:user_id
func (h *OrderHandler) GetDiscounts(c echo.Context) error {
	userID, err := strconv.Atoi(c.Param("user_id"))
	if err != nil {
		return c.JSON(400, map[string]string{"error": "Invalid ID"})
	}

	discounts, err := h.orderService.GetDiscounts(c.Request().Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrCustomerNotFound) {
			return c.JSON(404, map[string]string{"error": "Customer not found"})
		}
		return c.JSON(500, map[string]string{"error": "Internal Server Error"})
	}

	if discounts == nil {
		discounts = []*entity.CustomerDiscount{}
	}
	return c.JSON(200, discounts)
}
