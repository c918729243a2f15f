package state

import (
	"context"
	"sync"

	"lokapasar/internal/domain/entity"
	"lokapasar/pkg/logger"
)

// StoreLoader fetches the caller's shop profile from the backend.
type StoreLoader func(ctx context.Context) (*entity.Store, error)

// SellerStore holds the caller's shop profile with a fetch-once guard: the
// first Fetch performs the remote load, and every later call (including
// calls racing the first) reuses the settled result. The guard is held
// across the remote call so concurrent fetches collapse to one load.
type SellerStore struct {
	mu        sync.Mutex
	profile   *entity.Store
	fetched   bool
	loader    StoreLoader
	persister Persister
	key       string
}

func NewSellerStore(ctx context.Context, persister Persister, key string, loader StoreLoader) *SellerStore {
	s := &SellerStore{
		loader:    loader,
		persister: persister,
		key:       key,
	}

	var snapshot entity.Store
	ok, err := persister.Load(ctx, key, &snapshot)
	if err != nil {
		logger.Warn("seller: failed to restore snapshot %s: %v", key, err)
	}
	if ok {
		s.profile = &snapshot
		s.fetched = true
	}

	return s
}

// Fetch returns the shop profile, loading it remotely at most once. A nil
// profile with a nil error means the caller has no shop yet; that outcome
// is also cached.
func (s *SellerStore) Fetch(ctx context.Context) (*entity.Store, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.fetched {
		return s.profile, nil
	}

	profile, err := s.loader(ctx)
	if err != nil {
		return nil, err
	}

	s.profile = profile
	s.fetched = true
	s.persist(ctx)
	return profile, nil
}

// Set replaces the cached profile after a successful create or update.
func (s *SellerStore) Set(ctx context.Context, profile *entity.Store) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.profile = profile
	s.fetched = true
	s.persist(ctx)
}

// Reset drops the cached profile so the next Fetch loads again.
func (s *SellerStore) Reset(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.profile = nil
	s.fetched = false
	if err := s.persister.Delete(ctx, s.key); err != nil {
		logger.Warn("seller: failed to delete snapshot %s: %v", s.key, err)
	}
}

func (s *SellerStore) persist(ctx context.Context) {
	if s.profile == nil {
		return
	}
	if err := s.persister.Save(ctx, s.key, s.profile); err != nil {
		logger.Warn("seller: failed to persist snapshot %s: %v", s.key, err)
	}
}
