package state

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"lokapasar/internal/domain/entity"
	"lokapasar/pkg/errors"
	"lokapasar/pkg/logger"
)

type sessionSnapshot struct {
	User          *entity.User     `json:"user,omitempty"`
	Authenticated bool             `json:"authenticated"`
	Addresses     []entity.Address `json:"addresses"`
}

// SessionStore holds the authenticated user, the derived authentication
// flag, and the user's shipping addresses. The user and the flag are only
// ever set together.
type SessionStore struct {
	mu        sync.Mutex
	user      *entity.User
	auth      bool
	addresses []entity.Address
	persister Persister
	key       string
}

func NewSessionStore(ctx context.Context, persister Persister, key string) *SessionStore {
	s := &SessionStore{
		persister: persister,
		key:       key,
	}

	var snapshot sessionSnapshot
	ok, err := persister.Load(ctx, key, &snapshot)
	if err != nil {
		logger.Warn("session: failed to restore snapshot %s: %v", key, err)
	}
	if ok {
		s.user = snapshot.User
		s.auth = snapshot.Authenticated
		s.addresses = snapshot.Addresses
	}

	return s
}

// SetUser records the signed-in user and flips the authenticated flag in
// the same mutation.
func (s *SessionStore) SetUser(ctx context.Context, user *entity.User) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = user
	s.auth = user != nil
	s.persist(ctx)
}

// Clear signs the session out, dropping the user and all addresses.
func (s *SessionStore) Clear(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = nil
	s.auth = false
	s.addresses = nil
	s.persist(ctx)
}

func (s *SessionStore) User() (*entity.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user, s.auth
}

func (s *SessionStore) Addresses() []entity.Address {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]entity.Address, len(s.addresses))
	copy(out, s.addresses)
	return out
}

// AddAddress appends a new address, assigning it an id. The first address
// for a user becomes the default.
func (s *SessionStore) AddAddress(ctx context.Context, address entity.Address) entity.Address {
	s.mu.Lock()
	defer s.mu.Unlock()

	address.ID = uuid.New().String()
	if len(s.addresses) == 0 {
		address.IsDefault = true
	}
	s.addresses = append(s.addresses, address)
	s.persist(ctx)
	return address
}

func (s *SessionStore) UpdateAddress(ctx context.Context, address entity.Address) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.addresses {
		if s.addresses[i].ID == address.ID {
			// IsDefault is owned by SetDefaultAddress.
			address.IsDefault = s.addresses[i].IsDefault
			s.addresses[i] = address
			s.persist(ctx)
			return nil
		}
	}
	return errors.NotFound("Address", nil)
}

func (s *SessionStore) RemoveAddress(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.addresses {
		if s.addresses[i].ID == id {
			s.addresses = append(s.addresses[:i], s.addresses[i+1:]...)
			break
		}
	}
	s.persist(ctx)
}

// SetDefaultAddress marks the target address as default and clears the
// flag on every other address. It is the only action allowed to mutate
// more than one record at a time.
func (s *SessionStore) SetDefaultAddress(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	found := false
	for i := range s.addresses {
		if s.addresses[i].ID == id {
			found = true
			break
		}
	}
	if !found {
		return errors.NotFound("Address", nil)
	}

	for i := range s.addresses {
		s.addresses[i].IsDefault = s.addresses[i].ID == id
	}
	s.persist(ctx)
	return nil
}

func (s *SessionStore) persist(ctx context.Context) {
	snapshot := sessionSnapshot{
		User:          s.user,
		Authenticated: s.auth,
		Addresses:     s.addresses,
	}
	if err := s.persister.Save(ctx, s.key, snapshot); err != nil {
		logger.Warn("session: failed to persist snapshot %s: %v", s.key, err)
	}
}
