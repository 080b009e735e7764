package cart

import (
	"fmt"

	"github.com/pawmart/storefront-backend/internal/catalog"
	"github.com/shopspring/decimal"
)

// Item is one cart line. Lines are keyed by product, size and color: adding
// the same combination again increments the existing line instead of
// appending a second one.
type Item struct {
	ID            string          `json:"id"`
	Product       catalog.Product `json:"product"`
	Quantity      int             `json:"quantity"`
	SelectedSize  string          `json:"selected_size"`
	SelectedColor string          `json:"selected_color"`
}

// LineID builds the deterministic composite key for a line.
func LineID(productID, selectedSize, selectedColor string) string {
	return fmt.Sprintf("%s-%s-%s", productID, selectedSize, selectedColor)
}

// State is the cart slice. Total and ItemCount are derived from Items and
// recomputed after every mutation; no operation may leave them stale.
type State struct {
	Items     []Item          `json:"items"`
	Total     decimal.Decimal `json:"total"`
	ItemCount int             `json:"item_count"`
	IsOpen    bool            `json:"is_open"`
}

// NewState returns an empty cart.
func NewState() *State {
	return &State{Total: decimal.Zero}
}

// AddItem merges the quantity into an existing line with the same composite
// key, or appends a new line. Quantity positivity is a caller contract; the
// reducer stores whatever it is given.
func (s *State) AddItem(product catalog.Product, quantity int, selectedSize, selectedColor string) bool {
	id := LineID(product.ID, selectedSize, selectedColor)
	for i := range s.Items {
		if s.Items[i].ID == id {
			s.Items[i].Quantity += quantity
			s.recompute()
			return true
		}
	}
	s.Items = append(s.Items, Item{
		ID:            id,
		Product:       product,
		Quantity:      quantity,
		SelectedSize:  selectedSize,
		SelectedColor: selectedColor,
	})
	s.recompute()
	return true
}

// RemoveItem deletes the line with the given id. A missing id is a silent
// no-op; the return value reports whether anything changed.
func (s *State) RemoveItem(lineID string) bool {
	for i := range s.Items {
		if s.Items[i].ID == lineID {
			s.Items = append(s.Items[:i], s.Items[i+1:]...)
			s.recompute()
			return true
		}
	}
	return false
}

// UpdateQuantity sets the line's quantity verbatim, including to zero.
// Callers are expected to translate a zero target into RemoveItem; the
// reducer does not auto-remove zero-quantity lines.
func (s *State) UpdateQuantity(lineID string, quantity int) bool {
	for i := range s.Items {
		if s.Items[i].ID == lineID {
			s.Items[i].Quantity = quantity
			s.recompute()
			return true
		}
	}
	return false
}

// Clear empties the cart and zeroes the derived fields.
func (s *State) Clear() bool {
	s.Items = nil
	s.Total = decimal.Zero
	s.ItemCount = 0
	return true
}

// Toggle flips the UI visibility flag. Items are untouched.
func (s *State) Toggle() bool {
	s.IsOpen = !s.IsOpen
	return true
}

// SetOpen sets the UI visibility flag.
func (s *State) SetOpen(open bool) bool {
	s.IsOpen = open
	return true
}

// Find returns the line with the given id.
func (s *State) Find(lineID string) (Item, bool) {
	for _, item := range s.Items {
		if item.ID == lineID {
			return item, true
		}
	}
	return Item{}, false
}

// Snapshot returns a copy safe to hand outside the dispatch lock.
func (s *State) Snapshot() State {
	out := *s
	out.Items = make([]Item, len(s.Items))
	for i, item := range s.Items {
		out.Items[i] = item
		out.Items[i].Product = item.Product.Copy()
	}
	return out
}

func (s *State) recompute() {
	total := decimal.Zero
	count := 0
	for _, item := range s.Items {
		total = total.Add(item.Product.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
		count += item.Quantity
	}
	s.Total = total
	s.ItemCount = count
}
