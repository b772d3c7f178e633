package models

// CartLine is one item in a cart. Display fields and price are
// snapshotted when the item is added; the price the customer saw is the
// price they pay even if the admin changes it before checkout.
type CartLine struct {
	ItemID       string   `json:"id"`
	Name         string   `json:"name"`
	Price        *float64 `json:"price"`
	Image        string   `json:"image,omitempty"`
	IsVegetarian bool     `json:"is_vegetarian"`
	Quantity     int      `json:"quantity"`
}

// Subtotal returns price x quantity, treating an unpriced line as 0.
func (l CartLine) Subtotal() float64 {
	if l.Price == nil {
		return 0
	}
	return *l.Price * float64(l.Quantity)
}
