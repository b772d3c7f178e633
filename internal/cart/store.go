package cart

import (
	"encoding/json"
	"log"
	"sync"

	"restaurant_storefront/internal/models"
)

// Persistence is the durable storage behind a cart. Loading a missing
// cart returns (nil, nil); the store treats unreadable data as an empty
// cart rather than failing.
type Persistence interface {
	SaveCart(cartID string, data []byte) error
	LoadCart(cartID string) ([]byte, error)
	DeleteCart(cartID string) error
}

// Store is the single source of truth for what one customer intends to
// buy. Every mutation persists the full line list before returning, so a
// crash at any point between mutations loses nothing.
type Store struct {
	cartID      string
	persistence Persistence

	mu    sync.Mutex
	lines []models.CartLine
}

// NewStore restores the cart for cartID from persistence. Corrupt
// persisted data reconstructs to an empty cart; it never fails the
// caller.
func NewStore(cartID string, persistence Persistence) *Store {
	s := &Store{cartID: cartID, persistence: persistence}

	data, err := persistence.LoadCart(cartID)
	if err != nil {
		log.Printf("Warning: failed to load cart %s: %v", cartID, err)
		return s
	}
	if len(data) == 0 {
		return s
	}

	var lines []models.CartLine
	if err := json.Unmarshal(data, &lines); err != nil {
		log.Printf("Warning: corrupt cart data for %s, starting empty: %v", cartID, err)
		return s
	}

	s.lines = lines
	return s
}

// AddItem puts an item in the cart, snapshotting its display fields and
// price as of now. Adding an item that is already present increments the
// existing line instead of duplicating it.
func (s *Store) AddItem(item models.PricedItem, quantity int) error {
	if quantity < 1 {
		quantity = 1
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].ItemID == item.ID {
			s.lines[i].Quantity += quantity
			return s.persist()
		}
	}

	var price *float64
	if item.Price != nil {
		p := *item.Price
		price = &p
	}

	s.lines = append(s.lines, models.CartLine{
		ItemID:       item.ID,
		Name:         item.Name,
		Price:        price,
		Image:        item.Image,
		IsVegetarian: item.IsVegetarian,
		Quantity:     quantity,
	})
	return s.persist()
}

// RemoveItem deletes the line for itemID. Removing an absent item is a
// no-op, not an error.
func (s *Store) RemoveItem(itemID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].ItemID == itemID {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
			return s.persist()
		}
	}
	return nil
}

// SetQuantity overwrites a line's quantity. A quantity of zero or less
// removes the line.
func (s *Store) SetQuantity(itemID string, quantity int) error {
	if quantity <= 0 {
		return s.RemoveItem(itemID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].ItemID == itemID {
			s.lines[i].Quantity = quantity
			return s.persist()
		}
	}
	return nil
}

// Clear empties the cart. Checkout calls this exactly once, only after
// the order is durably created and the payment verified.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lines = nil
	if err := s.persistence.DeleteCart(s.cartID); err != nil {
		return err
	}
	return nil
}

// Total recomputes the cart total on every call. Unpriced lines
// contribute 0.
func (s *Store) Total() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := 0.0
	for _, line := range s.lines {
		total += line.Subtotal()
	}
	return total
}

// Count returns the summed quantity across all lines.
func (s *Store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for _, line := range s.lines {
		count += line.Quantity
	}
	return count
}

// Lines returns a copy of the current cart lines.
func (s *Store) Lines() []models.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := make([]models.CartLine, len(s.lines))
	copy(lines, s.lines)
	return lines
}

func (s *Store) persist() error {
	data, err := json.Marshal(s.lines)
	if err != nil {
		return err
	}
	return s.persistence.SaveCart(s.cartID, data)
}
