package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lokapasar/internal/domain/entity"
	"lokapasar/pkg/errors"
)

func TestAddToWishlist(t *testing.T) {
	ctx := context.Background()
	productRepo := newFakeProductRepo(&entity.Product{ID: "p1", Name: "Kopi", IsActive: true})
	uc := NewWishlistUseCase(newFakeWishlistRepo(), productRepo)

	item, err := uc.AddToWishlist(ctx, "u1", "p1")
	require.NoError(t, err)
	assert.Equal(t, "u1", item.UserID)
	assert.Equal(t, "p1", item.ProductID)

	in, err := uc.IsInWishlist(ctx, "u1", "p1")
	require.NoError(t, err)
	assert.True(t, in)
}

func TestAddToWishlistRejectsInactiveProduct(t *testing.T) {
	ctx := context.Background()
	productRepo := newFakeProductRepo(&entity.Product{ID: "p1", IsActive: false})
	uc := NewWishlistUseCase(newFakeWishlistRepo(), productRepo)

	_, err := uc.AddToWishlist(ctx, "u1", "p1")
	require.Error(t, err)
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestRemoveFromWishlist(t *testing.T) {
	ctx := context.Background()
	productRepo := newFakeProductRepo(&entity.Product{ID: "p1", IsActive: true})
	uc := NewWishlistUseCase(newFakeWishlistRepo(), productRepo)

	_, err := uc.AddToWishlist(ctx, "u1", "p1")
	require.NoError(t, err)
	require.NoError(t, uc.RemoveFromWishlist(ctx, "u1", "p1"))

	in, err := uc.IsInWishlist(ctx, "u1", "p1")
	require.NoError(t, err)
	assert.False(t, in)
}

func TestGetWishlistJoinsProducts(t *testing.T) {
	ctx := context.Background()
	productRepo := newFakeProductRepo(
		&entity.Product{ID: "p1", Name: "Kopi", IsActive: true},
		&entity.Product{ID: "p2", Name: "Teh", IsActive: true},
	)
	uc := NewWishlistUseCase(newFakeWishlistRepo(), productRepo)

	_, err := uc.AddToWishlist(ctx, "u1", "p1")
	require.NoError(t, err)
	_, err = uc.AddToWishlist(ctx, "u1", "p2")
	require.NoError(t, err)

	items, total, err := uc.GetWishlist(ctx, "u1", 10, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, items, 2)
	for _, item := range items {
		require.NotNil(t, item.Product)
		assert.Equal(t, item.ProductID, item.Product.ID)
	}
}

func TestGetWishlistSkipsMissingProducts(t *testing.T) {
	ctx := context.Background()
	productRepo := newFakeProductRepo(&entity.Product{ID: "p1", Name: "Kopi", IsActive: true})
	wishlistRepo := newFakeWishlistRepo()
	uc := NewWishlistUseCase(wishlistRepo, productRepo)

	_, err := uc.AddToWishlist(ctx, "u1", "p1")
	require.NoError(t, err)
	// Simulate a product deleted after being wished for.
	_, err = wishlistRepo.Add(ctx, "u1", "gone")
	require.NoError(t, err)

	items, _, err := uc.GetWishlist(ctx, "u1", 10, 0)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "p1", items[0].ProductID)
}
