package service

import (
	"context"
	"time"

	"github.com/rijanbdahal/SushiBaiKiyoshi/internal/entity"
)

// PreferenceStore is the slice of the preference repository the loyalty
// tracker needs.
type PreferenceStore interface {
	GetPreference(ctx context.Context, customerID, menuItemID int) (*entity.CustomerPreference, error)
	CreatePreference(ctx context.Context, pref *entity.CustomerPreference) error
	UpdatePreference(ctx context.Context, pref *entity.CustomerPreference) error
}

// PreferenceService maintains the per-(customer, menu item) order counts and
// discount eligibility. Both the REST endpoint and the kafka consumer go
// through UpdatePreference.
type PreferenceService struct {
	prefs PreferenceStore
}

// NewPreferenceService creates a new instance of PreferenceService.
func NewPreferenceService(prefs PreferenceStore) *PreferenceService {
	return &PreferenceService{prefs: prefs}
}

// UpdatePreference adds quantity to the pair's cumulative count and flips
// discount eligibility once the count reaches the threshold. The sequence is
// read-modify-write; concurrent updates for the same pair are last-write-wins.
func (s *PreferenceService) UpdatePreference(ctx context.Context, req *entity.PreferenceUpdateRequest) error {
	if req.CustomerID == 0 || req.MenuItemID == 0 || req.Quantity == 0 {
		return ErrMissingFields
	}

	today := time.Now().Format("2006-01-02")

	pref, err := s.prefs.GetPreference(ctx, req.CustomerID, req.MenuItemID)
	if err != nil {
		logger.Error().Err(err).Int("customer_id", req.CustomerID).Int("menu_item_id", req.MenuItemID).Msg("Error reading preference")
		return err
	}

	if pref != nil {
		pref.OrderCount += req.Quantity
		pref.LastOrdered = today
		pref.DiscountEligible = pref.OrderCount >= entity.DiscountThreshold
		err = s.prefs.UpdatePreference(ctx, pref)
	} else {
		err = s.prefs.CreatePreference(ctx, &entity.CustomerPreference{
			CustomerID:       req.CustomerID,
			MenuItemID:       req.MenuItemID,
			OrderCount:       req.Quantity,
			LastOrdered:      today,
			DiscountEligible: req.Quantity >= entity.DiscountThreshold,
		})
	}
	if err != nil {
		logger.Error().Err(err).Int("customer_id", req.CustomerID).Int("menu_item_id", req.MenuItemID).Msg("Error writing preference")
		return err
	}

	return nil
}
