package users

import (
	"github.com/pawmart/storefront-backend/pkg/enums"
	"github.com/shopspring/decimal"
)

// User is the single active profile of a session.
type User struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	Avatar      *string `json:"avatar,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	DateOfBirth *string `json:"date_of_birth,omitempty"`
}

// UserUpdate is a shallow partial update; nil fields are left untouched.
type UserUpdate struct {
	Name        *string `json:"name"`
	Email       *string `json:"email" validate:"omitempty,email"`
	Avatar      *string `json:"avatar"`
	Phone       *string `json:"phone"`
	DateOfBirth *string `json:"date_of_birth"`
}

// Address is a labeled shipping destination. At most one address in a
// collection carries IsDefault.
type Address struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Street    string `json:"street"`
	City      string `json:"city"`
	State     string `json:"state"`
	ZipCode   string `json:"zip_code"`
	Country   string `json:"country"`
	IsDefault bool   `json:"is_default"`
}

// OrderItem is a line snapshot captured at order time, independent of live
// product data.
type OrderItem struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	Image       string          `json:"image"`
}

// Order is created once at checkout. Items, total and the address snapshot
// are frozen; only the status could ever change, and no reducer changes it.
type Order struct {
	ID              string              `json:"id"`
	Date            string              `json:"date"`
	Status          enums.OrderStatus   `json:"status"`
	Items           []OrderItem         `json:"items"`
	Total           decimal.Decimal     `json:"total"`
	ShippingAddress Address             `json:"shipping_address"`
	PaymentMethod   enums.PaymentMethod `json:"payment_method,omitempty"`
}

// State is the user slice: profile, addresses and orders owned by one
// session.
type State struct {
	User            *User     `json:"user"`
	Addresses       []Address `json:"addresses"`
	Orders          []Order   `json:"orders"`
	IsAuthenticated bool      `json:"is_authenticated"`
}

// NewState returns a logged-out profile slice.
func NewState() *State {
	return &State{}
}

// SetUser replaces the active user.
func (s *State) SetUser(user User) bool {
	u := user
	s.User = &u
	s.IsAuthenticated = true
	return true
}

// UpdateUser shallow-merges the patch into the active user. Without an
// active user it is a no-op.
func (s *State) UpdateUser(patch UserUpdate) bool {
	if s.User == nil {
		return false
	}
	if patch.Name != nil {
		s.User.Name = *patch.Name
	}
	if patch.Email != nil {
		s.User.Email = *patch.Email
	}
	if patch.Avatar != nil {
		s.User.Avatar = patch.Avatar
	}
	if patch.Phone != nil {
		s.User.Phone = patch.Phone
	}
	if patch.DateOfBirth != nil {
		s.User.DateOfBirth = patch.DateOfBirth
	}
	return true
}

// Logout tears the whole session profile down: user, addresses and orders.
func (s *State) Logout() bool {
	s.User = nil
	s.IsAuthenticated = false
	s.Addresses = nil
	s.Orders = nil
	return true
}

// AddAddress appends the address. When it claims the default slot, the flag
// is cleared on every other address so at most one default exists.
func (s *State) AddAddress(address Address) bool {
	if address.IsDefault {
		s.clearDefaults()
	}
	s.Addresses = append(s.Addresses, address)
	return true
}

// UpdateAddress replaces the address with a matching id in place; absent ids
// are a no-op. Default exclusivity is enforced the same way as AddAddress.
func (s *State) UpdateAddress(address Address) bool {
	for i := range s.Addresses {
		if s.Addresses[i].ID == address.ID {
			if address.IsDefault {
				s.clearDefaults()
			}
			s.Addresses[i] = address
			return true
		}
	}
	return false
}

// RemoveAddress filters the address out. Removing the default leaves no
// default selected, which still satisfies the at-most-one invariant;
// consumers fall back to the first address.
func (s *State) RemoveAddress(id string) bool {
	for i := range s.Addresses {
		if s.Addresses[i].ID == id {
			s.Addresses = append(s.Addresses[:i], s.Addresses[i+1:]...)
			return true
		}
	}
	return false
}

// SetDefaultAddress marks the matching address as default and clears the
// flag on every other one. An absent id is a no-op.
func (s *State) SetDefaultAddress(id string) bool {
	found := false
	for i := range s.Addresses {
		if s.Addresses[i].ID == id {
			found = true
			break
		}
	}
	if !found {
		return false
	}
	for i := range s.Addresses {
		s.Addresses[i].IsDefault = s.Addresses[i].ID == id
	}
	return true
}

// AddOrder prepends the order: newest first.
func (s *State) AddOrder(order Order) bool {
	s.Orders = append([]Order{order}, s.Orders...)
	return true
}

// FindAddress returns the address with the given id.
func (s *State) FindAddress(id string) (Address, bool) {
	for _, a := range s.Addresses {
		if a.ID == id {
			return a, true
		}
	}
	return Address{}, false
}

// DefaultAddress returns the default address, falling back to the first one.
func (s *State) DefaultAddress() (Address, bool) {
	for _, a := range s.Addresses {
		if a.IsDefault {
			return a, true
		}
	}
	if len(s.Addresses) > 0 {
		return s.Addresses[0], true
	}
	return Address{}, false
}

// Snapshot returns a copy safe to hand outside the dispatch lock.
func (s *State) Snapshot() State {
	out := State{IsAuthenticated: s.IsAuthenticated}
	if s.User != nil {
		u := *s.User
		out.User = &u
	}
	out.Addresses = append([]Address(nil), s.Addresses...)
	out.Orders = make([]Order, len(s.Orders))
	for i, o := range s.Orders {
		out.Orders[i] = o
		out.Orders[i].Items = append([]OrderItem(nil), o.Items...)
	}
	return out
}

func (s *State) clearDefaults() {
	for i := range s.Addresses {
		s.Addresses[i].IsDefault = false
	}
}
