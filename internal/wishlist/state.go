package wishlist

import "github.com/pawmart/storefront-backend/internal/catalog"

// State is the wishlist slice: a set of products keyed by id, with insertion
// order preserved for display. Toggle semantics live in the caller.
type State struct {
	Items []catalog.Product `json:"items"`
}

// NewState returns an empty wishlist.
func NewState() *State {
	return &State{}
}

// Add appends the product unless its id is already present. A duplicate add
// is silently ignored.
func (s *State) Add(product catalog.Product) bool {
	if s.Contains(product.ID) {
		return false
	}
	s.Items = append(s.Items, product)
	return true
}

// Remove drops the product with the given id. Absent ids are a no-op.
func (s *State) Remove(productID string) bool {
	for i := range s.Items {
		if s.Items[i].ID == productID {
			s.Items = append(s.Items[:i], s.Items[i+1:]...)
			return true
		}
	}
	return false
}

// Clear empties the collection.
func (s *State) Clear() bool {
	s.Items = nil
	return true
}

// Contains reports whether the product id is wishlisted.
func (s *State) Contains(productID string) bool {
	for _, p := range s.Items {
		if p.ID == productID {
			return true
		}
	}
	return false
}

// Snapshot returns a copy safe to hand outside the dispatch lock.
func (s *State) Snapshot() State {
	out := State{Items: make([]catalog.Product, len(s.Items))}
	for i, p := range s.Items {
		out.Items[i] = p.Copy()
	}
	return out
}
