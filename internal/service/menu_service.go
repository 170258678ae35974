package service

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/rijanbdahal/SushiBaiKiyoshi/internal/entity"
)

const menuCacheKey = "menu:items"

// MenuStore is the slice of the menu repository the service needs.
type MenuStore interface {
	GetMenuItems(ctx context.Context) ([]*entity.MenuItem, error)
	CreateMenuItem(ctx context.Context, item *entity.MenuItem) (int, error)
	UpdateMenuItem(ctx context.Context, item *entity.MenuItem) (int64, error)
	GetInventoryOptions(ctx context.Context) ([]*entity.InventoryOption, error)
}

// MenuService serves the menu cache-aside from redis; writes invalidate the
// cached list.
type MenuService struct {
	menu MenuStore
	rdb  *redis.Client
}

// NewMenuService creates a new instance of MenuService.
func NewMenuService(menu MenuStore, rdb *redis.Client) *MenuService {
	return &MenuService{menu: menu, rdb: rdb}
}

func (s *MenuService) GetMenuItems(ctx context.Context) ([]*entity.MenuItem, error) {
	// if env is set to test, skip the cache
	if os.Getenv("ENV") != "test" {
		cached, err := s.rdb.Get(ctx, menuCacheKey).Result()
		if err != nil && !errors.Is(err, redis.Nil) {
			logger.Error().Err(err).Msg("Error reading menu cache")
		}
		if cached != "" {
			var items []*entity.MenuItem
			if err := json.Unmarshal([]byte(cached), &items); err == nil {
				return items, nil
			} else {
				logger.Error().Err(err).Msg("Error unmarshalling cached menu")
			}
		}
	}

	items, err := s.menu.GetMenuItems(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("Error fetching menu items")
		return nil, err
	}

	if os.Getenv("ENV") != "test" {
		data, err := json.Marshal(items)
		if err == nil {
			if err := s.rdb.Set(ctx, menuCacheKey, data, 1*time.Minute).Err(); err != nil {
				logger.Error().Err(err).Msg("Error writing menu cache")
			}
		}
	}

	return items, nil
}

func (s *MenuService) CreateMenuItem(ctx context.Context, item *entity.MenuItem) (int, error) {
	if item.InventoryID == 0 || item.MenuItemName == "" {
		return 0, ErrMissingFields
	}

	id, err := s.menu.CreateMenuItem(ctx, item)
	if err != nil {
		logger.Error().Err(err).Msg("Error creating menu item")
		return 0, err
	}

	s.invalidateCache(ctx)
	return id, nil
}

func (s *MenuService) UpdateMenuItem(ctx context.Context, item *entity.MenuItem) error {
	if item.InventoryID == 0 || item.MenuItemName == "" {
		return ErrMissingFields
	}

	rows, err := s.menu.UpdateMenuItem(ctx, item)
	if err != nil {
		logger.Error().Err(err).Int("menu_item_id", item.MenuItemID).Msg("Error updating menu item")
		return err
	}
	if rows == 0 {
		return ErrMenuItemNotFound
	}

	s.invalidateCache(ctx)
	return nil
}

func (s *MenuService) GetInventoryOptions(ctx context.Context) ([]*entity.InventoryOption, error) {
	options, err := s.menu.GetInventoryOptions(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("Error fetching inventory options")
		return nil, err
	}
	return options, nil
}

func (s *MenuService) invalidateCache(ctx context.Context) {
	if os.Getenv("ENV") == "test" {
		return
	}
	if err := s.rdb.Del(ctx, menuCacheKey).Err(); err != nil {
		logger.Error().Err(err).Msg("Error invalidating menu cache")
	}
}
