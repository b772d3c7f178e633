package models

// CatalogItem is a menu entry shipped with the storefront binary. The
// fixed list is the source of truth for what the menu displays; the
// backend only contributes price and availability.
type CatalogItem struct {
	FixedID      string `json:"fixed_id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	Category     string `json:"category"`
	Spicy        string `json:"spicy"` // None, Low, Medium, High
	IsVegetarian bool   `json:"is_vegetarian"`
	Image        string `json:"image,omitempty"`
}

// PricedItem is a CatalogItem joined with backend pricing data. Price is
// nil until an admin has priced the item; ID falls back to FixedID when
// no backend record exists yet so UI keys stay stable.
type PricedItem struct {
	CatalogItem
	ID              string   `json:"id"`
	Price           *float64 `json:"price"`
	Available       bool     `json:"available"`
	ExistsInBackend bool     `json:"exists_in_backend"`
}
