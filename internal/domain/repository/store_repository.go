package repository

import (
	"context"

	"lokapasar/internal/domain/entity"
)

type StoreRepository interface {
	Create(ctx context.Context, store *entity.Store) error
	GetByID(ctx context.Context, id string) (*entity.Store, error)
	GetBySlug(ctx context.Context, slug string) (*entity.Store, error)
	GetByOwnerID(ctx context.Context, ownerID string) (*entity.Store, error)
	List(ctx context.Context, opts ListOptions) ([]*entity.Store, int64, error)
	Update(ctx context.Context, store *entity.Store) error
	// AdjustProductCount shifts the cached product counter by delta.
	// Callers treat failures as best-effort.
	AdjustProductCount(ctx context.Context, id string, delta int) error
}
