package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pawmart/storefront-backend/internal/cart"
	"github.com/pawmart/storefront-backend/internal/catalog"
	"github.com/pawmart/storefront-backend/internal/products"
	"github.com/pawmart/storefront-backend/internal/users"
	"github.com/pawmart/storefront-backend/internal/wishlist"
)

// State is one session's state tree: four independent slices. There are no
// inter-slice transactions; any cross-slice consistency (checkout emptying
// the cart after creating an order) is the caller's responsibility.
type State struct {
	Cart     *cart.State
	Wishlist *wishlist.State
	Products *products.State
	Profile  *users.State
}

// Session owns a state tree and serializes every dispatch against it
// through one mutex: one state tree, one writer at a time.
type Session struct {
	ID        uuid.UUID
	CreatedAt time.Time

	mu       sync.Mutex
	state    State
	lastSeen time.Time
}

func newSession(source *catalog.Catalog, profile *users.State, now time.Time) *Session {
	if profile == nil {
		profile = users.NewState()
	}
	return &Session{
		ID:        uuid.New(),
		CreatedAt: now,
		state: State{
			Cart:     cart.NewState(),
			Wishlist: wishlist.NewState(),
			Products: products.NewState(source),
			Profile:  profile,
		},
		lastSeen: now,
	}
}

// Dispatch runs one action against the state tree under the session lock and
// returns whether the action applied or resolved to a silent no-op.
func (s *Session) Dispatch(action func(*State) bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastSeen = time.Now()
	return action(&s.state)
}

// Read runs a reader against the state tree under the same lock.
func (s *Session) Read(reader func(*State)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	reader(&s.state)
}

// LastSeen returns the time of the most recent dispatch or creation.
func (s *Session) LastSeen() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}
