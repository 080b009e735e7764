package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pawmart/storefront-backend/internal/catalog"
	"github.com/pawmart/storefront-backend/internal/users"
	"github.com/pawmart/storefront-backend/pkg/config"
	pkgerrors "github.com/pawmart/storefront-backend/pkg/errors"
	"github.com/pawmart/storefront-backend/pkg/logger"
)

// ManagerParams groups dependencies for the session registry.
type ManagerParams struct {
	Catalog *catalog.Catalog
	Config  config.SessionConfig
	Logger  *logger.Logger
}

// Manager is the in-memory session registry. Sessions live only as long as
// the process; the sweep loop reclaims ones idle past the configured TTL.
type Manager struct {
	catalog *catalog.Catalog
	cfg     config.SessionConfig
	logg    *logger.Logger

	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session
}

// NewManager builds a session registry over the given catalog.
func NewManager(params ManagerParams) (*Manager, error) {
	if params.Catalog == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "catalog is required")
	}
	return &Manager{
		catalog:  params.Catalog,
		cfg:      params.Config,
		logg:     params.Logger,
		sessions: make(map[uuid.UUID]*Session),
	}, nil
}

// Create registers a new session. With seedDemo the profile slice starts
// with the storefront's dummy user, addresses and order history.
func (m *Manager) Create(seedDemo bool) *Session {
	var profile *users.State
	if seedDemo {
		profile = users.DemoState()
	}
	sess := newSession(m.catalog, profile, time.Now())

	m.mu.Lock()
	m.sessions[sess.ID] = sess
	m.mu.Unlock()
	return sess
}

// Get returns the session with the given id.
func (m *Manager) Get(id uuid.UUID) (*Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	sess, ok := m.sessions[id]
	return sess, ok
}

// Delete drops the session; a missing id is a no-op.
func (m *Manager) Delete(id uuid.UUID) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sessions[id]; !ok {
		return false
	}
	delete(m.sessions, id)
	return true
}

// Len returns the number of live sessions.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// Run sweeps idle sessions until the context is cancelled.
func (m *Manager) Run(ctx context.Context) error {
	if m.cfg.SweepInterval <= 0 || m.cfg.IdleTTL <= 0 {
		if m.logg != nil {
			m.logg.Warn(ctx, "session sweep disabled: non-positive interval or ttl")
		}
		<-ctx.Done()
		return ctx.Err()
	}

	ticker := time.NewTicker(m.cfg.SweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			removed := m.sweep(time.Now())
			if removed > 0 && m.logg != nil {
				m.logg.Info(m.logg.WithField(ctx, "removed", removed), "session sweep complete")
			}
		}
	}
}

func (m *Manager) sweep(now time.Time) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	removed := 0
	for id, sess := range m.sessions {
		sess.mu.Lock()
		idle := now.Sub(sess.lastSeen)
		sess.mu.Unlock()
		if idle > m.cfg.IdleTTL {
			delete(m.sessions, id)
			removed++
		}
	}
	return removed
}
