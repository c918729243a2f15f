package repository

import (
	"context"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"lokapasar/internal/domain/entity"
	"lokapasar/internal/domain/repository"
	"lokapasar/pkg/errors"
)

type firestoreProductRepository struct {
	client *firestore.Client
}

func NewFirestoreProductRepository(client *firestore.Client) repository.ProductRepository {
	return &firestoreProductRepository{
		client: client,
	}
}

func (r *firestoreProductRepository) Create(ctx context.Context, product *entity.Product) error {
	if product.ID == "" {
		doc := r.client.Collection("products").NewDoc()
		product.ID = doc.ID
	}

	now := time.Now()
	if product.CreatedAt.IsZero() {
		product.CreatedAt = now
	}
	product.UpdatedAt = now

	_, err := r.client.Collection("products").Doc(product.ID).Set(ctx, product)
	if err != nil {
		return errors.Internal("Failed to create product", err)
	}

	return nil
}

func (r *firestoreProductRepository) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	doc, err := r.client.Collection("products").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Product", err)
		}
		return nil, errors.Internal("Failed to get product", err)
	}

	var product entity.Product
	if err := doc.DataTo(&product); err != nil {
		return nil, errors.Internal("Failed to parse product data", err)
	}

	return &product, nil
}

func (r *firestoreProductRepository) GetBySlug(ctx context.Context, slug string) (*entity.Product, error) {
	iter := r.client.Collection("products").Where("slug", "==", slug).Limit(1).Documents(ctx)
	doc, err := iter.Next()
	if err == iterator.Done {
		return nil, errors.NotFound("Product", nil)
	}
	if err != nil {
		return nil, errors.Internal("Failed to get product", err)
	}

	var product entity.Product
	if err := doc.DataTo(&product); err != nil {
		return nil, errors.Internal("Failed to parse product data", err)
	}

	return &product, nil
}

func (r *firestoreProductRepository) List(ctx context.Context, opts repository.ListOptions) ([]*entity.Product, int64, error) {
	query := r.client.Collection("products").Query
	if opts.IsActive != nil {
		query = query.Where("isActive", "==", *opts.IsActive)
	}

	// Firestore has no substring search, so name matching happens in
	// memory over the filtered set.
	docs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to list products", err)
	}

	needle := strings.ToLower(opts.SearchQuery)
	var matched []*entity.Product
	for _, doc := range docs {
		var product entity.Product
		if err := doc.DataTo(&product); err != nil {
			continue
		}
		if needle != "" && !strings.Contains(strings.ToLower(product.Name), needle) {
			continue
		}
		matched = append(matched, &product)
	}

	total := int64(len(matched))
	return paginate(matched, opts), total, nil
}

func (r *firestoreProductRepository) ListByStoreID(ctx context.Context, storeID string, opts repository.ListOptions) ([]*entity.Product, int64, error) {
	query := r.client.Collection("products").
		Where("storeId", "==", storeID).
		OrderBy("createdAt", firestore.Desc)
	if opts.IsActive != nil {
		query = query.Where("isActive", "==", *opts.IsActive)
	}

	allDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to count store products", err)
	}
	total := int64(len(allDocs))

	limit, offset := bounds(opts)
	query = query.Limit(limit)
	if offset > 0 {
		query = query.Offset(offset)
	}

	iter := query.Documents(ctx)
	var products []*entity.Product

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, errors.Internal("Failed to iterate store products", err)
		}
		var product entity.Product
		if err := doc.DataTo(&product); err != nil {
			return nil, 0, errors.Internal("Failed to parse product data", err)
		}
		products = append(products, &product)
	}

	return products, total, nil
}

func (r *firestoreProductRepository) Update(ctx context.Context, product *entity.Product) error {
	product.UpdatedAt = time.Now()

	_, err := r.client.Collection("products").Doc(product.ID).Set(ctx, product)
	if err != nil {
		return errors.Internal("Failed to update product", err)
	}

	return nil
}

func (r *firestoreProductRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection("products").Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete product", err)
	}

	return nil
}

// bounds resolves the effective limit/offset pair. Supplying an offset
// without a limit still yields a bounded range.
func bounds(opts repository.ListOptions) (int, int) {
	limit := opts.Limit
	if limit <= 0 {
		limit = repository.DefaultPageSize
	}
	offset := opts.Offset
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

func paginate(products []*entity.Product, opts repository.ListOptions) []*entity.Product {
	limit, offset := bounds(opts)

	if offset >= len(products) {
		return []*entity.Product{}
	}
	end := offset + limit
	if end > len(products) {
		end = len(products)
	}
	return products[offset:end]
}
