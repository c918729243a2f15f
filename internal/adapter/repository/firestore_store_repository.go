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

type firestoreStoreRepository struct {
	client *firestore.Client
}

func NewFirestoreStoreRepository(client *firestore.Client) repository.StoreRepository {
	return &firestoreStoreRepository{
		client: client,
	}
}

func (r *firestoreStoreRepository) Create(ctx context.Context, store *entity.Store) error {
	if store.ID == "" {
		doc := r.client.Collection("stores").NewDoc()
		store.ID = doc.ID
	}

	now := time.Now()
	if store.CreatedAt.IsZero() {
		store.CreatedAt = now
	}
	store.UpdatedAt = now

	_, err := r.client.Collection("stores").Doc(store.ID).Set(ctx, store)
	if err != nil {
		return errors.Internal("Failed to create store", err)
	}

	return nil
}

func (r *firestoreStoreRepository) GetByID(ctx context.Context, id string) (*entity.Store, error) {
	doc, err := r.client.Collection("stores").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Store", err)
		}
		return nil, errors.Internal("Failed to get store", err)
	}

	var store entity.Store
	if err := doc.DataTo(&store); err != nil {
		return nil, errors.Internal("Failed to parse store data", err)
	}

	return &store, nil
}

func (r *firestoreStoreRepository) GetBySlug(ctx context.Context, slug string) (*entity.Store, error) {
	return r.getByField(ctx, "slug", slug)
}

func (r *firestoreStoreRepository) GetByOwnerID(ctx context.Context, ownerID string) (*entity.Store, error) {
	return r.getByField(ctx, "ownerId", ownerID)
}

func (r *firestoreStoreRepository) getByField(ctx context.Context, field, value string) (*entity.Store, error) {
	iter := r.client.Collection("stores").Where(field, "==", value).Limit(1).Documents(ctx)
	doc, err := iter.Next()
	if err == iterator.Done {
		return nil, errors.NotFound("Store", nil)
	}
	if err != nil {
		return nil, errors.Internal("Failed to get store", err)
	}

	var store entity.Store
	if err := doc.DataTo(&store); err != nil {
		return nil, errors.Internal("Failed to parse store data", err)
	}

	return &store, nil
}

func (r *firestoreStoreRepository) List(ctx context.Context, opts repository.ListOptions) ([]*entity.Store, int64, error) {
	query := r.client.Collection("stores").Query
	if opts.IsActive != nil {
		query = query.Where("isActive", "==", *opts.IsActive)
	}

	docs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to list stores", err)
	}

	needle := strings.ToLower(opts.SearchQuery)
	var matched []*entity.Store
	for _, doc := range docs {
		var store entity.Store
		if err := doc.DataTo(&store); err != nil {
			continue
		}
		if needle != "" && !strings.Contains(strings.ToLower(store.Name), needle) {
			continue
		}
		matched = append(matched, &store)
	}

	total := int64(len(matched))

	limit, offset := bounds(opts)
	if offset >= len(matched) {
		return []*entity.Store{}, total, nil
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}

	return matched[offset:end], total, nil
}

func (r *firestoreStoreRepository) Update(ctx context.Context, store *entity.Store) error {
	store.UpdatedAt = time.Now()

	_, err := r.client.Collection("stores").Doc(store.ID).Set(ctx, store)
	if err != nil {
		return errors.Internal("Failed to update store", err)
	}

	return nil
}

func (r *firestoreStoreRepository) AdjustProductCount(ctx context.Context, id string, delta int) error {
	_, err := r.client.Collection("stores").Doc(id).Update(ctx, []firestore.Update{
		{Path: "productCount", Value: firestore.Increment(delta)},
		{Path: "updatedAt", Value: time.Now()},
	})
	if err != nil {
		return errors.Internal("Failed to adjust product count", err)
	}

	return nil
}
