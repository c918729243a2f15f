package usecase

import (
	"context"

	"lokapasar/internal/domain/entity"
	"lokapasar/internal/domain/repository"
	"lokapasar/internal/state"
	"lokapasar/pkg/errors"
)

type CartUseCase struct {
	productRepo repository.ProductRepository
	registry    *state.Registry
}

func NewCartUseCase(productRepo repository.ProductRepository, registry *state.Registry) *CartUseCase {
	return &CartUseCase{
		productRepo: productRepo,
		registry:    registry,
	}
}

// CartSummary is the cart mapping together with its derived aggregates.
type CartSummary struct {
	Items      map[string][]entity.CartItem `json:"items"`
	TotalItems int                          `json:"total_items"`
	TotalPrice float64                      `json:"total_price"`
}

// AddToCart snapshots the product into the shopper's cart. Price and stock
// drift after adding is not reconciled.
func (uc *CartUseCase) AddToCart(ctx context.Context, userID, productID string, quantity int, variant entity.SelectedVariant) (*CartSummary, error) {
	product, err := uc.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if !product.IsActive {
		return nil, errors.BadRequest("Product is not available", nil)
	}

	cart := uc.registry.Cart(ctx, userID)
	if err := cart.AddItem(ctx, *product, quantity, variant); err != nil {
		return nil, err
	}

	return uc.summary(cart), nil
}

func (uc *CartUseCase) RemoveFromCart(ctx context.Context, userID, storeID, productID string, variant entity.SelectedVariant) *CartSummary {
	cart := uc.registry.Cart(ctx, userID)
	cart.RemoveItem(ctx, storeID, productID, variant)
	return uc.summary(cart)
}

func (uc *CartUseCase) UpdateQuantity(ctx context.Context, userID, storeID, productID string, quantity int, variant entity.SelectedVariant) *CartSummary {
	cart := uc.registry.Cart(ctx, userID)
	cart.UpdateQuantity(ctx, storeID, productID, quantity, variant)
	return uc.summary(cart)
}

func (uc *CartUseCase) ClearCart(ctx context.Context, userID string) *CartSummary {
	cart := uc.registry.Cart(ctx, userID)
	cart.Clear(ctx)
	return uc.summary(cart)
}

func (uc *CartUseCase) ClearStoreCart(ctx context.Context, userID, storeID string) *CartSummary {
	cart := uc.registry.Cart(ctx, userID)
	cart.ClearStore(ctx, storeID)
	return uc.summary(cart)
}

func (uc *CartUseCase) GetCart(ctx context.Context, userID string) *CartSummary {
	return uc.summary(uc.registry.Cart(ctx, userID))
}

// StoreSummary is one store's bucket aggregates.
type StoreSummary struct {
	StoreID    string  `json:"store_id"`
	ItemCount  int     `json:"item_count"`
	StoreTotal float64 `json:"store_total"`
}

func (uc *CartUseCase) GetStoreSummary(ctx context.Context, userID, storeID string) *StoreSummary {
	cart := uc.registry.Cart(ctx, userID)
	return &StoreSummary{
		StoreID:    storeID,
		ItemCount:  cart.ItemCount(storeID),
		StoreTotal: cart.StoreTotal(storeID),
	}
}

func (uc *CartUseCase) summary(cart *state.CartStore) *CartSummary {
	return &CartSummary{
		Items:      cart.Snapshot(),
		TotalItems: cart.TotalItems(),
		TotalPrice: cart.TotalPrice(),
	}
}
