package usecase

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"lokapasar/internal/domain/entity"
	"lokapasar/internal/domain/repository"
	"lokapasar/pkg/errors"
)

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func newFakeProductRepo(products ...*entity.Product) *fakeProductRepo {
	repo := &fakeProductRepo{products: make(map[string]*entity.Product)}
	for _, p := range products {
		repo.products[p.ID] = p
	}
	return repo
}

func (r *fakeProductRepo) Create(ctx context.Context, product *entity.Product) error {
	if product.ID == "" {
		product.ID = fmt.Sprintf("p%d", len(r.products)+1)
	}
	r.products[product.ID] = product
	return nil
}

func (r *fakeProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	product, ok := r.products[id]
	if !ok {
		return nil, errors.NotFound("Product", nil)
	}
	copied := *product
	return &copied, nil
}

func (r *fakeProductRepo) GetBySlug(ctx context.Context, slug string) (*entity.Product, error) {
	for _, p := range r.products {
		if p.Slug == slug {
			copied := *p
			return &copied, nil
		}
	}
	return nil, errors.NotFound("Product", nil)
}

func (r *fakeProductRepo) List(ctx context.Context, opts repository.ListOptions) ([]*entity.Product, int64, error) {
	out := make([]*entity.Product, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, p)
	}
	return out, int64(len(out)), nil
}

func (r *fakeProductRepo) ListByStoreID(ctx context.Context, storeID string, opts repository.ListOptions) ([]*entity.Product, int64, error) {
	out := make([]*entity.Product, 0)
	for _, p := range r.products {
		if p.StoreID == storeID {
			out = append(out, p)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeProductRepo) Update(ctx context.Context, product *entity.Product) error {
	if _, ok := r.products[product.ID]; !ok {
		return errors.NotFound("Product", nil)
	}
	r.products[product.ID] = product
	return nil
}

func (r *fakeProductRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.products[id]; !ok {
		return errors.NotFound("Product", nil)
	}
	delete(r.products, id)
	return nil
}

type fakeStoreRepo struct {
	stores      map[string]*entity.Store
	countErr    error
	countCalls  int
	lastDelta   int
	lastCountID string
}

func newFakeStoreRepo(stores ...*entity.Store) *fakeStoreRepo {
	repo := &fakeStoreRepo{stores: make(map[string]*entity.Store)}
	for _, s := range stores {
		repo.stores[s.ID] = s
	}
	return repo
}

func (r *fakeStoreRepo) Create(ctx context.Context, store *entity.Store) error {
	if store.ID == "" {
		store.ID = fmt.Sprintf("st%d", len(r.stores)+1)
	}
	r.stores[store.ID] = store
	return nil
}

func (r *fakeStoreRepo) GetByID(ctx context.Context, id string) (*entity.Store, error) {
	store, ok := r.stores[id]
	if !ok {
		return nil, errors.NotFound("Store", nil)
	}
	copied := *store
	return &copied, nil
}

func (r *fakeStoreRepo) GetBySlug(ctx context.Context, slug string) (*entity.Store, error) {
	for _, s := range r.stores {
		if s.Slug == slug {
			copied := *s
			return &copied, nil
		}
	}
	return nil, errors.NotFound("Store", nil)
}

func (r *fakeStoreRepo) GetByOwnerID(ctx context.Context, ownerID string) (*entity.Store, error) {
	for _, s := range r.stores {
		if s.OwnerID == ownerID {
			copied := *s
			return &copied, nil
		}
	}
	return nil, errors.NotFound("Store", nil)
}

func (r *fakeStoreRepo) List(ctx context.Context, opts repository.ListOptions) ([]*entity.Store, int64, error) {
	out := make([]*entity.Store, 0, len(r.stores))
	for _, s := range r.stores {
		out = append(out, s)
	}
	return out, int64(len(out)), nil
}

func (r *fakeStoreRepo) Update(ctx context.Context, store *entity.Store) error {
	if _, ok := r.stores[store.ID]; !ok {
		return errors.NotFound("Store", nil)
	}
	r.stores[store.ID] = store
	return nil
}

func (r *fakeStoreRepo) AdjustProductCount(ctx context.Context, id string, delta int) error {
	r.countCalls++
	r.lastCountID = id
	r.lastDelta = delta
	if r.countErr != nil {
		return r.countErr
	}
	if store, ok := r.stores[id]; ok {
		store.ProductCount += delta
	}
	return nil
}

type fakeCategoryRepo struct {
	categories map[string]*entity.Category
}

func newFakeCategoryRepo(categories ...*entity.Category) *fakeCategoryRepo {
	repo := &fakeCategoryRepo{categories: make(map[string]*entity.Category)}
	for _, c := range categories {
		repo.categories[c.ID] = c
	}
	return repo
}

func (r *fakeCategoryRepo) List(ctx context.Context) ([]*entity.Category, error) {
	out := make([]*entity.Category, 0, len(r.categories))
	for _, c := range r.categories {
		out = append(out, c)
	}
	return out, nil
}

func (r *fakeCategoryRepo) GetByID(ctx context.Context, id string) (*entity.Category, error) {
	category, ok := r.categories[id]
	if !ok {
		return nil, errors.NotFound("Category", nil)
	}
	return category, nil
}

func (r *fakeCategoryRepo) GetBySlug(ctx context.Context, slug string) (*entity.Category, error) {
	for _, c := range r.categories {
		if c.Slug == slug {
			return c, nil
		}
	}
	return nil, errors.NotFound("Category", nil)
}

type fakeVoucherRepo struct {
	vouchers map[string]*entity.Voucher
}

func newFakeVoucherRepo(vouchers ...*entity.Voucher) *fakeVoucherRepo {
	repo := &fakeVoucherRepo{vouchers: make(map[string]*entity.Voucher)}
	for _, v := range vouchers {
		repo.vouchers[v.Code] = v
	}
	return repo
}

func (r *fakeVoucherRepo) ListActive(ctx context.Context, storeID string) ([]*entity.Voucher, error) {
	out := make([]*entity.Voucher, 0)
	for _, v := range r.vouchers {
		if v.StoreID == storeID && v.Usable(time.Now()) {
			out = append(out, v)
		}
	}
	return out, nil
}

func (r *fakeVoucherRepo) GetByCode(ctx context.Context, code string) (*entity.Voucher, error) {
	voucher, ok := r.vouchers[code]
	if !ok {
		return nil, errors.NotFound("Voucher", nil)
	}
	return voucher, nil
}

type fakeWishlistRepo struct {
	items map[string]*entity.WishlistItem
}

func newFakeWishlistRepo() *fakeWishlistRepo {
	return &fakeWishlistRepo{items: make(map[string]*entity.WishlistItem)}
}

func (r *fakeWishlistRepo) key(userID, productID string) string {
	return userID + "_" + productID
}

func (r *fakeWishlistRepo) Add(ctx context.Context, userID, productID string) (*entity.WishlistItem, error) {
	item := &entity.WishlistItem{
		ID:        r.key(userID, productID),
		UserID:    userID,
		ProductID: productID,
		CreatedAt: time.Now(),
	}
	r.items[item.ID] = item
	return item, nil
}

func (r *fakeWishlistRepo) Remove(ctx context.Context, userID, productID string) error {
	delete(r.items, r.key(userID, productID))
	return nil
}

func (r *fakeWishlistRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]*entity.WishlistItem, int64, error) {
	out := make([]*entity.WishlistItem, 0)
	for _, item := range r.items {
		if item.UserID == userID {
			out = append(out, item)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeWishlistRepo) Contains(ctx context.Context, userID, productID string) (bool, error) {
	_, ok := r.items[r.key(userID, productID)]
	return ok, nil
}

// fakeStorage records uploads and serves URLs under a fixed fake host.
type fakeStorage struct {
	mu        sync.Mutex
	uploads   map[string][]byte
	uploadErr error
	deleteErr error
	deleted   []string
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{uploads: make(map[string][]byte)}
}

func (s *fakeStorage) Upload(ctx context.Context, path, contentType string, data io.Reader) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.uploadErr != nil {
		return "", s.uploadErr
	}

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, data); err != nil {
		return "", err
	}
	s.uploads[path] = buf.Bytes()
	return s.PublicURL(path), nil
}

func (s *fakeStorage) Delete(ctx context.Context, fileURL string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.deleteErr != nil {
		return s.deleteErr
	}
	s.deleted = append(s.deleted, fileURL)
	return nil
}

func (s *fakeStorage) PublicURL(path string) string {
	return "https://storage.test/bucket/" + path
}
