package state

import (
	"context"
	"sync"

	"lokapasar/internal/domain/entity"
	"lokapasar/pkg/errors"
	"lokapasar/pkg/logger"
)

// CartStore holds a shopper's cart: per-store buckets of cart items. A
// store key is present iff its bucket is non-empty, and within one bucket
// at most one item exists per (product id, variant encoding) pair.
//
// Every mutation persists the full mapping under the container's key, so
// cart contents survive restarts. Persist failures do not fail the
// mutation; the in-memory state is authoritative for the session.
type CartStore struct {
	mu        sync.Mutex
	items     map[string][]entity.CartItem
	persister Persister
	key       string
}

// NewCartStore restores the persisted snapshot for key, starting empty
// when none exists.
func NewCartStore(ctx context.Context, persister Persister, key string) *CartStore {
	s := &CartStore{
		items:     make(map[string][]entity.CartItem),
		persister: persister,
		key:       key,
	}

	var snapshot map[string][]entity.CartItem
	ok, err := persister.Load(ctx, key, &snapshot)
	if err != nil {
		logger.Warn("cart: failed to restore snapshot %s: %v", key, err)
	}
	if ok && snapshot != nil {
		s.items = snapshot
	}

	return s
}

// AddItem puts quantity units of the product into its store's bucket. When
// an item with the same product and equivalent variant selection already
// exists, its quantity is increased instead of appending a duplicate.
// Quantity must be positive.
func (s *CartStore) AddItem(ctx context.Context, product entity.Product, quantity int, variant entity.SelectedVariant) error {
	if quantity < 1 {
		return errors.BadRequest("Quantity must be at least 1", nil)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	variantKey := variant.Encode()
	bucket := s.items[product.StoreID]

	for i := range bucket {
		if bucket[i].Matches(product.ID, variantKey) {
			bucket[i].Quantity += quantity
			s.persist(ctx)
			return nil
		}
	}

	s.items[product.StoreID] = append(bucket, entity.CartItem{
		Product:  product,
		Quantity: quantity,
		Variant:  variant,
	})
	s.persist(ctx)
	return nil
}

// RemoveItem drops the matching item from the store's bucket. Removing the
// last item removes the store key entirely. Unknown combinations are
// no-ops.
func (s *CartStore) RemoveItem(ctx context.Context, storeID, productID string, variant entity.SelectedVariant) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.removeLocked(storeID, productID, variant.Encode())
	s.persist(ctx)
}

// UpdateQuantity sets the matching item's quantity to the given absolute
// value. A quantity of zero or less removes the item, exactly as
// RemoveItem would.
func (s *CartStore) UpdateQuantity(ctx context.Context, storeID, productID string, quantity int, variant entity.SelectedVariant) {
	s.mu.Lock()
	defer s.mu.Unlock()

	variantKey := variant.Encode()
	if quantity <= 0 {
		s.removeLocked(storeID, productID, variantKey)
		s.persist(ctx)
		return
	}

	bucket := s.items[storeID]
	for i := range bucket {
		if bucket[i].Matches(productID, variantKey) {
			bucket[i].Quantity = quantity
			break
		}
	}
	s.persist(ctx)
}

// Clear empties the whole cart.
func (s *CartStore) Clear(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = make(map[string][]entity.CartItem)
	s.persist(ctx)
}

// ClearStore drops a single store's bucket.
func (s *CartStore) ClearStore(ctx context.Context, storeID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.items, storeID)
	s.persist(ctx)
}

// TotalItems sums quantities across every bucket.
func (s *CartStore) TotalItems() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := 0
	for _, bucket := range s.items {
		for i := range bucket {
			total += bucket[i].Quantity
		}
	}
	return total
}

// TotalPrice sums effective unit price times quantity across every bucket.
func (s *CartStore) TotalPrice() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := 0.0
	for _, bucket := range s.items {
		for i := range bucket {
			total += bucket[i].Subtotal()
		}
	}
	return total
}

// StoreTotal is TotalPrice restricted to one store; 0 for unknown stores.
func (s *CartStore) StoreTotal(storeID string) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := 0.0
	for i := range s.items[storeID] {
		total += s.items[storeID][i].Subtotal()
	}
	return total
}

// ItemCount sums quantities in one store's bucket; 0 for unknown stores.
func (s *CartStore) ItemCount(storeID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := 0
	for i := range s.items[storeID] {
		total += s.items[storeID][i].Quantity
	}
	return total
}

// Snapshot returns a copy of the cart mapping.
func (s *CartStore) Snapshot() map[string][]entity.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[string][]entity.CartItem, len(s.items))
	for storeID, bucket := range s.items {
		items := make([]entity.CartItem, len(bucket))
		copy(items, bucket)
		out[storeID] = items
	}
	return out
}

func (s *CartStore) removeLocked(storeID, productID, variantKey string) {
	bucket, ok := s.items[storeID]
	if !ok {
		return
	}

	for i := range bucket {
		if bucket[i].Matches(productID, variantKey) {
			bucket = append(bucket[:i], bucket[i+1:]...)
			break
		}
	}

	if len(bucket) == 0 {
		delete(s.items, storeID)
	} else {
		s.items[storeID] = bucket
	}
}

func (s *CartStore) persist(ctx context.Context) {
	if err := s.persister.Save(ctx, s.key, s.items); err != nil {
		logger.Warn("cart: failed to persist snapshot %s: %v", s.key, err)
	}
}
