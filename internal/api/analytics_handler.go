package api

import (
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/rijanbdahal/SushiBaiKiyoshi/internal/entity"
	"github.com/rijanbdahal/SushiBaiKiyoshi/internal/service"
)

type AnalyticsHandler struct {
	analyticsService  *service.AnalyticsService
	preferenceService *service.PreferenceService
}

// NewAnalyticsHandler creates a new instance of AnalyticsHandler.
func NewAnalyticsHandler(analyticsService *service.AnalyticsService, preferenceService *service.PreferenceService) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsService:  analyticsService,
		preferenceService: preferenceService,
	}
}

// The chart endpoints return an empty 200 payload on failure so the frontend
// can always render; the error is already logged below.

// GetMonthlySales --> GET /analytics/sales/monthly
func (h *AnalyticsHandler) GetMonthlySales(c echo.Context) error {
	sales, err := h.analyticsService.GetMonthlySales(c.Request().Context())
	if err != nil || sales == nil {
		sales = []*entity.MonthlySales{}
	}
	return c.JSON(200, sales)
}

// GetMonthlyExpenses --> GET /analytics/expenses/monthly
func (h *AnalyticsHandler) GetMonthlyExpenses(c echo.Context) error {
	expenses, err := h.analyticsService.GetMonthlyExpenses(c.Request().Context())
	if err != nil || expenses == nil {
		expenses = []*entity.MonthlyExpense{}
	}
	return c.JSON(200, expenses)
}

// GetMarketPrices --> GET /analytics/market-prices
func (h *AnalyticsHandler) GetMarketPrices(c echo.Context) error {
	prices, err := h.analyticsService.GetMarketPrices(c.Request().Context())
	if err != nil || prices == nil {
		prices = []*entity.MarketPricePoint{}
	}
	return c.JSON(200, prices)
}

// GetCustomerPreferences --> GET /analytics/customer-preferences
func (h *AnalyticsHandler) GetCustomerPreferences(c echo.Context) error {
	summaries, err := h.analyticsService.GetPreferenceSummaries(c.Request().Context())
	if err != nil || summaries == nil {
		summaries = []*entity.PreferenceSummary{}
	}
	return c.JSON(200, summaries)
}

// GetDiscountRecommendations --> GET /analytics/discount-recommendations
// Unlike the chart endpoints, failures here surface as errors.
func (h *AnalyticsHandler) GetDiscountRecommendations(c echo.Context) error {
	recs, err := h.analyticsService.GetDiscountRecommendations(c.Request().Context())
	if err != nil {
		return c.JSON(500, map[string]string{"error": "Internal Server Error"})
	}

	if recs == nil {
		recs = []*entity.DiscountRecommendation{}
	}
	return c.JSON(200, recs)
}

// GetSalesTrends --> GET /analytics/sales-trends/:periodType
func (h *AnalyticsHandler) GetSalesTrends(c echo.Context) error {
	periodType := c.Param("periodType")
	if periodType != "daily" && periodType != "weekly" && periodType != "monthly" {
		return c.JSON(400, map[string]string{"error": "Invalid period type. Must be daily, weekly, or monthly."})
	}

	points, err := h.analyticsService.GetSalesTrends(c.Request().Context(), periodType)
	if err != nil || points == nil {
		points = []*entity.SalesTrendPoint{}
	}
	return c.JSON(200, points)
}

// UpdatePreferences applies a loyalty update --> POST /analytics/update-preferences
func (h *AnalyticsHandler) UpdatePreferences(c echo.Context) error {
	req := entity.PreferenceUpdateRequest{}
	if err := c.Bind(&req); err != nil {
		return c.JSON(400, map[string]string{"error": "Invalid request payload"})
	}

	if err := h.preferenceService.UpdatePreference(c.Request().Context(), &req); err != nil {
		if errors.Is(err, service.ErrMissingFields) {
			return c.JSON(400, map[string]string{"error": "Missing required fields"})
		}
		return c.JSON(500, map[string]string{"error": "Internal Server Error"})
	}

	return c.JSON(200, map[string]string{"message": "Customer preferences updated successfully"})
}
