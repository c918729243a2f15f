package repository

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"lokapasar/internal/domain/entity"
	"lokapasar/internal/domain/repository"
	"lokapasar/pkg/errors"
)

type firestoreWishlistRepository struct {
	client *firestore.Client
}

func NewFirestoreWishlistRepository(client *firestore.Client) repository.WishlistRepository {
	return &firestoreWishlistRepository{client: client}
}

// The document id is derived from (user, product) so a pair can exist at
// most once.
func wishlistID(userID, productID string) string {
	return fmt.Sprintf("%s_%s", userID, productID)
}

func (r *firestoreWishlistRepository) Add(ctx context.Context, userID, productID string) (*entity.WishlistItem, error) {
	exists, err := r.Contains(ctx, userID, productID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errors.Conflict("Product already in wishlist")
	}

	item := entity.WishlistItem{
		ID:        wishlistID(userID, productID),
		UserID:    userID,
		ProductID: productID,
		CreatedAt: time.Now(),
	}

	_, err = r.client.Collection("wishlists").Doc(item.ID).Set(ctx, item)
	if err != nil {
		return nil, errors.Internal("Failed to add to wishlist", err)
	}

	return &item, nil
}

func (r *firestoreWishlistRepository) Remove(ctx context.Context, userID, productID string) error {
	exists, err := r.Contains(ctx, userID, productID)
	if err != nil {
		return err
	}
	if !exists {
		return errors.NotFound("Wishlist item", nil)
	}

	_, err = r.client.Collection("wishlists").Doc(wishlistID(userID, productID)).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to remove from wishlist", err)
	}

	return nil
}

func (r *firestoreWishlistRepository) ListByUser(ctx context.Context, userID string, limit, offset int) ([]*entity.WishlistItem, int64, error) {
	query := r.client.Collection("wishlists").
		Where("userId", "==", userID).
		OrderBy("createdAt", firestore.Desc)

	allDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to count wishlist items", err)
	}
	total := int64(len(allDocs))

	if limit <= 0 {
		limit = repository.DefaultPageSize
	}
	query = query.Limit(limit)
	if offset > 0 {
		query = query.Offset(offset)
	}

	iter := query.Documents(ctx)
	var items []*entity.WishlistItem
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, errors.Internal("Failed to iterate wishlist", err)
		}
		var item entity.WishlistItem
		if err := doc.DataTo(&item); err != nil {
			return nil, 0, errors.Internal("Failed to parse wishlist data", err)
		}
		items = append(items, &item)
	}

	return items, total, nil
}

func (r *firestoreWishlistRepository) Contains(ctx context.Context, userID, productID string) (bool, error) {
	_, err := r.client.Collection("wishlists").Doc(wishlistID(userID, productID)).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return false, nil
		}
		return false, errors.Internal("Failed to check wishlist", err)
	}
	return true, nil
}
