package catalog

import (
	"log"
	"strings"

	"restaurant_storefront/internal/models"
	"restaurant_storefront/pkg/restaurantapi"
)

// backendRecord is the mutable slice of a menu item owned by the
// backend: what the admin has priced and whether it can be ordered.
type backendRecord struct {
	id        string
	price     float64
	available bool
}

// Reconcile joins the fixed catalog with the backend category listing.
// The join key is the normalized item name; there is no foreign key
// between the two sides. Every fixed item produces exactly one
// PricedItem: items the backend does not know yet come back unpriced and
// assumed available, with the fixed id standing in for the backend id so
// callers keep stable keys. Passing nil categories (backend unreachable)
// yields the full fallback menu.
func Reconcile(fixed []models.CatalogItem, categories []restaurantapi.MenuCategory) []models.PricedItem {
	lookup := make(map[string]backendRecord)
	for _, category := range categories {
		for _, item := range category.Items {
			key := normalizeName(item.Name)
			if _, exists := lookup[key]; exists {
				// Duplicate names are anomalous; last write wins.
				log.Printf("Warning: duplicate backend menu item name %q, keeping the later record", item.Name)
			}
			lookup[key] = backendRecord{
				id:        item.ID,
				price:     item.Price,
				available: item.Available,
			}
		}
	}

	priced := make([]models.PricedItem, 0, len(fixed))
	for _, item := range fixed {
		merged := models.PricedItem{
			CatalogItem: item,
			ID:          item.FixedID,
			Available:   true,
		}
		if record, ok := lookup[normalizeName(item.Name)]; ok {
			price := record.price
			merged.ID = record.id
			merged.Price = &price
			merged.Available = record.available
			merged.ExistsInBackend = true
		}
		priced = append(priced, merged)
	}
	return priced
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
