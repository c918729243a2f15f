package repository

import (
	"context"

	"lokapasar/internal/domain/entity"
)

type WishlistRepository interface {
	Add(ctx context.Context, userID, productID string) (*entity.WishlistItem, error)
	Remove(ctx context.Context, userID, productID string) error
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]*entity.WishlistItem, int64, error)
	Contains(ctx context.Context, userID, productID string) (bool, error)
}
