package repository

import (
	"context"

	"lokapasar/internal/domain/entity"
)

// ListOptions bounds and filters a read path. A zero Limit with a non-zero
// Offset still produces a bounded range: implementations fall back to
// DefaultPageSize.
type ListOptions struct {
	Limit       int
	Offset      int
	SearchQuery string
	IsActive    *bool
}

const DefaultPageSize = 10

type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	GetBySlug(ctx context.Context, slug string) (*entity.Product, error)
	List(ctx context.Context, opts ListOptions) ([]*entity.Product, int64, error)
	ListByStoreID(ctx context.Context, storeID string, opts ListOptions) ([]*entity.Product, int64, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id string) error
}
