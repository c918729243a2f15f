package state

import (
	"context"
	"sync"
)

const (
	cartKeyPrefix    = "lokapasar:cart:"
	sessionKeyPrefix = "lokapasar:session:"
	sellerKeyPrefix  = "lokapasar:store:"
)

// Registry owns the per-user state containers. Containers are constructed
// once (restoring their persisted snapshot) and handed out by reference;
// all mutation goes through the container's declared actions.
type Registry struct {
	mu        sync.Mutex
	persister Persister
	carts     map[string]*CartStore
	sessions  map[string]*SessionStore
	sellers   map[string]*SellerStore
}

func NewRegistry(persister Persister) *Registry {
	return &Registry{
		persister: persister,
		carts:     make(map[string]*CartStore),
		sessions:  make(map[string]*SessionStore),
		sellers:   make(map[string]*SellerStore),
	}
}

func (r *Registry) Cart(ctx context.Context, userID string) *CartStore {
	r.mu.Lock()
	defer r.mu.Unlock()

	if cart, ok := r.carts[userID]; ok {
		return cart
	}
	cart := NewCartStore(ctx, r.persister, cartKeyPrefix+userID)
	r.carts[userID] = cart
	return cart
}

func (r *Registry) Session(ctx context.Context, userID string) *SessionStore {
	r.mu.Lock()
	defer r.mu.Unlock()

	if session, ok := r.sessions[userID]; ok {
		return session
	}
	session := NewSessionStore(ctx, r.persister, sessionKeyPrefix+userID)
	r.sessions[userID] = session
	return session
}

func (r *Registry) Seller(ctx context.Context, userID string, loader StoreLoader) *SellerStore {
	r.mu.Lock()
	defer r.mu.Unlock()

	if seller, ok := r.sellers[userID]; ok {
		return seller
	}
	seller := NewSellerStore(ctx, r.persister, sellerKeyPrefix+userID, loader)
	r.sellers[userID] = seller
	return seller
}
