package usecase

import (
	"context"

	"lokapasar/internal/domain/entity"
	"lokapasar/internal/domain/repository"
	"lokapasar/pkg/errors"
	"lokapasar/pkg/logger"
)

type WishlistUseCase struct {
	wishlistRepo repository.WishlistRepository
	productRepo  repository.ProductRepository
}

func NewWishlistUseCase(wishlistRepo repository.WishlistRepository, productRepo repository.ProductRepository) *WishlistUseCase {
	return &WishlistUseCase{
		wishlistRepo: wishlistRepo,
		productRepo:  productRepo,
	}
}

func (uc *WishlistUseCase) AddToWishlist(ctx context.Context, userID, productID string) (*entity.WishlistItem, error) {
	product, err := uc.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if !product.IsActive {
		return nil, errors.BadRequest("Cannot add an inactive product to the wishlist", nil)
	}

	return uc.wishlistRepo.Add(ctx, userID, productID)
}

func (uc *WishlistUseCase) RemoveFromWishlist(ctx context.Context, userID, productID string) error {
	return uc.wishlistRepo.Remove(ctx, userID, productID)
}

func (uc *WishlistUseCase) GetWishlist(ctx context.Context, userID string, limit, offset int) ([]*entity.WishlistItemWithProduct, int64, error) {
	items, total, err := uc.wishlistRepo.ListByUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	out := make([]*entity.WishlistItemWithProduct, 0, len(items))
	for _, item := range items {
		product, err := uc.productRepo.GetByID(ctx, item.ProductID)
		if err != nil {
			// The product may have been deleted since it was wished for.
			logger.Warn("Wishlist item %s references missing product %s", item.ID, item.ProductID)
			continue
		}
		out = append(out, &entity.WishlistItemWithProduct{
			ID:        item.ID,
			UserID:    item.UserID,
			ProductID: item.ProductID,
			Product:   product,
			CreatedAt: item.CreatedAt,
		})
	}

	return out, total, nil
}

func (uc *WishlistUseCase) IsInWishlist(ctx context.Context, userID, productID string) (bool, error) {
	return uc.wishlistRepo.Contains(ctx, userID, productID)
}
