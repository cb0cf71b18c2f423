// Package session binds a catalog view and a cart to each browser
// session. Every session gets its own view parameters over the shared
// product set and its own persisted cart key.
package session

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/nicolesequeira/simpleshop/cart"
	"github.com/nicolesequeira/simpleshop/catalog"
	"github.com/nicolesequeira/simpleshop/models"
)

// CartKeyPrefix prefixes the per-session cart storage key.
const CartKeyPrefix = "simpleShopCart"

// ErrCatalogNotReady is returned while the product load has not succeeded
// yet; shop and cart actions are meaningless before that.
var ErrCatalogNotReady = errors.New("session: catalog not loaded")

type Session struct {
	ID   string
	View *catalog.Store
	Cart *cart.Store

	lastSeen time.Time
}

type Manager struct {
	mu       sync.Mutex
	products []models.Product
	storage  cart.Storage
	sessions map[string]*Session
	ttl      time.Duration
}

// NewManager builds a registry over the given cart storage backend. Idle
// sessions are dropped after ttl; their carts stay persisted.
func NewManager(storage cart.Storage, ttl time.Duration) *Manager {
	return &Manager{
		storage:  storage,
		sessions: make(map[string]*Session),
		ttl:      ttl,
	}
}

// SetCatalog validates and installs the shared product set. Sessions
// created afterwards see it; a failed validation leaves the manager in
// the not-ready state.
func (m *Manager) SetCatalog(products []models.Product) error {
	probe := catalog.NewStore()
	if err := probe.Load(products); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.products = products
	return nil
}

// Ready reports whether the catalog load has completed.
func (m *Manager) Ready() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.products) > 0
}

// Get returns the session for id, creating it on first sight.
func (m *Manager) Get(id string) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.products) == 0 {
		return nil, ErrCatalogNotReady
	}

	if s, ok := m.sessions[id]; ok {
		s.lastSeen = time.Now()
		return s, nil
	}

	view := catalog.NewStore()
	if err := view.Load(m.products); err != nil {
		// Validated in SetCatalog, so this cannot happen.
		return nil, err
	}
	s := &Session{
		ID:       id,
		View:     view,
		Cart:     cart.New(m.storage, fmt.Sprintf("%s:%s", CartKeyPrefix, id)),
		lastSeen: time.Now(),
	}
	m.sessions[id] = s
	return s, nil
}

// Sweep drops sessions idle longer than the TTL.
func (m *Manager) Sweep(now time.Time) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	var dropped int
	for id, s := range m.sessions {
		if now.Sub(s.lastSeen) > m.ttl {
			delete(m.sessions, id)
			dropped++
		}
	}
	return dropped
}

// StartJanitor sweeps idle sessions on a fixed interval until stop is
// closed.
func (m *Manager) StartJanitor(interval time.Duration, stop <-chan struct{}) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case now := <-ticker.C:
				m.Sweep(now)
			case <-stop:
				return
			}
		}
	}()
}
