package api

import (
	"errors"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/rijanbdahal/SushiBaiKiyoshi/internal/entity"
	"github.com/rijanbdahal/SushiBaiKiyoshi/internal/service"
)

type CardHandler struct {
	cardService *service.CardService
}

// NewCardHandler creates a new instance of CardHandler.
func NewCardHandler(cardService *service.CardService) *CardHandler {
	return &CardHandler{cardService: cardService}
}

// AddCard stores a payment card --> POST /cards/addCard
func (h *CardHandler) AddCard(c echo.Context) error {
	card := entity.CardRequest{}
	if err := c.Bind(&card); err != nil {
		return c.JSON(400, map[string]string{"error": "Invalid request payload"})
	}

	id, err := h.cardService.AddCard(c.Request().Context(), &card)
	if err != nil {
		if errors.Is(err, service.ErrMissingFields) {
			return c.JSON(400, map[string]string{"error": "Card details are incomplete."})
		}
		return c.JSON(500, map[string]string{"error": "Internal Server Error"})
	}

	return c.JSON(201, map[string]interface{}{
		"message": "Card added successfully",
		"cardId":  id,
	})
}

// EditCard updates a card --> PUT /cards/editCard/:payment_type_id
func (h *CardHandler) EditCard(c echo.Context) error {
	paymentTypeID, err := strconv.Atoi(c.Param("payment_type_id"))
	if err != nil {
		return c.JSON(400, map[string]string{"error": "Invalid ID"})
	}

	card := entity.CardRequest{}
	if err := c.Bind(&card); err != nil {
		return c.JSON(400, map[string]string{"error": "Invalid request payload"})
	}

	if err := h.cardService.EditCard(c.Request().Context(), paymentTypeID, &card); err != nil {
		if errors.Is(err, service.ErrMissingFields) {
			return c.JSON(400, map[string]string{"error": "Card details are incomplete."})
		}
		if errors.Is(err, service.ErrCardNotFound) {
			return c.JSON(404, map[string]string{"error": "Card not found."})
		}
		return c.JSON(500, map[string]string{"error": "Internal Server Error"})
	}

	return c.JSON(200, map[string]string{"message": "Card updated successfully"})
}

// DeleteCard removes a card --> DELETE /cards/deleteCard/:payment_type_id
func (h *CardHandler) DeleteCard(c echo.Context) error {
	paymentTypeID, err := strconv.Atoi(c.Param("payment_type_id"))
	if err != nil {
		return c.JSON(400, map[string]string{"error": "Invalid ID"})
	}

	if err := h.cardService.DeleteCard(c.Request().Context(), paymentTypeID); err != nil {
		if errors.Is(err, service.ErrCardNotFound) {
			return c.JSON(404, map[string]string{"error": "Card not found."})
		}
		return c.JSON(500, map[string]string{"error": "Internal Server Error"})
	}

	return c.JSON(200, map[string]string{"message": "Card deleted successfully"})
}

// GetCards lists a holder's cards --> GET /cards/getCards/:userName
func (h *CardHandler) GetCards(c echo.Context) error {
	userName := c.Param("userName")

	cards, err := h.cardService.GetCards(c.Request().Context(), userName)
	if err != nil {
		return c.JSON(500, map[string]string{"error": "Internal Server Error"})
	}

	if cards == nil {
		cards = []*entity.Card{}
	}
	return c.JSON(200, cards)
}
