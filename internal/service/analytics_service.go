package service

import (
	"context"

	"github.com/rijanbdahal/SushiBaiKiyoshi/internal/entity"
)

// AnalyticsStore is the read-side rollup repository.
type AnalyticsStore interface {
	GetMonthlySales(ctx context.Context) ([]*entity.MonthlySales, error)
	GetMonthlyExpenses(ctx context.Context) ([]*entity.MonthlyExpense, error)
	GetMarketPrices(ctx context.Context) ([]*entity.MarketPricePoint, error)
	GetPreferenceSummaries(ctx context.Context) ([]*entity.PreferenceSummary, error)
	GetDiscountRecommendations(ctx context.Context) ([]*entity.DiscountRecommendation, error)
	GetSalesTrends(ctx context.Context, periodType string) ([]*entity.SalesTrendPoint, error)
}

// AnalyticsService wraps the rollup queries. The chart-feeding handlers mask
// failures as empty results; this service only reports them.
type AnalyticsService struct {
	analytics AnalyticsStore
}

// NewAnalyticsService creates a new instance of AnalyticsService.
func NewAnalyticsService(analytics AnalyticsStore) *AnalyticsService {
	return &AnalyticsService{analytics: analytics}
}

func (s *AnalyticsService) GetMonthlySales(ctx context.Context) ([]*entity.MonthlySales, error) {
	sales, err := s.analytics.GetMonthlySales(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("Error fetching monthly sales")
		return nil, err
	}
	return sales, nil
}

func (s *AnalyticsService) GetMonthlyExpenses(ctx context.Context) ([]*entity.MonthlyExpense, error) {
	expenses, err := s.analytics.GetMonthlyExpenses(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("Error fetching monthly expenses")
		return nil, err
	}
	return expenses, nil
}

func (s *AnalyticsService) GetMarketPrices(ctx context.Context) ([]*entity.MarketPricePoint, error) {
	prices, err := s.analytics.GetMarketPrices(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("Error fetching market prices")
		return nil, err
	}
	return prices, nil
}

func (s *AnalyticsService) GetPreferenceSummaries(ctx context.Context) ([]*entity.PreferenceSummary, error) {
	summaries, err := s.analytics.GetPreferenceSummaries(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("Error fetching preference summaries")
		return nil, err
	}
	return summaries, nil
}

func (s *AnalyticsService) GetDiscountRecommendations(ctx context.Context) ([]*entity.DiscountRecommendation, error) {
	recs, err := s.analytics.GetDiscountRecommendations(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("Error fetching discount recommendations")
		return nil, err
	}
	return recs, nil
}

func (s *AnalyticsService) GetSalesTrends(ctx context.Context, periodType string) ([]*entity.SalesTrendPoint, error) {
	points, err := s.analytics.GetSalesTrends(ctx, periodType)
	if err != nil {
		logger.Error().Err(err).Str("period", periodType).Msg("Error fetching sales trends")
		return nil, err
	}
	return points, nil
}
