package services

import (
	"context"
	"log"

	"restaurant_storefront/internal/catalog"
	"restaurant_storefront/internal/models"
	"restaurant_storefront/pkg/restaurantapi"
)

// MenuAPI is the slice of the backend the menu needs.
type MenuAPI interface {
	GetMenuCategories(ctx context.Context) ([]restaurantapi.MenuCategory, error)
}

type MenuService interface {
	// GetMenu returns one PricedItem per fixed catalog entry. The menu
	// always renders: if the backend is unreachable, every item comes
	// back unpriced and assumed available.
	GetMenu(ctx context.Context) []models.PricedItem
	// FindItem looks up a single priced item by its current id.
	FindItem(ctx context.Context, itemID string) (*models.PricedItem, error)
}

type menuService struct {
	api MenuAPI
}

func NewMenuService(api MenuAPI) MenuService {
	return &menuService{api: api}
}

func (s *menuService) GetMenu(ctx context.Context) []models.PricedItem {
	categories, err := s.api.GetMenuCategories(ctx)
	if err != nil {
		log.Printf("Warning: failed to fetch menu from backend, serving fixed catalog: %v", err)
		categories = nil
	}
	return catalog.Reconcile(catalog.FixedItems(), categories)
}

func (s *menuService) FindItem(ctx context.Context, itemID string) (*models.PricedItem, error) {
	for _, item := range s.GetMenu(ctx) {
		if item.ID == itemID {
			return &item, nil
		}
	}
	return nil, ErrItemNotFound
}
