package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"lokapasar/internal/domain/entity"
	"lokapasar/internal/domain/repository"
	"lokapasar/pkg/errors"
)

type firestoreCategoryRepository struct {
	client *firestore.Client
}

func NewFirestoreCategoryRepository(client *firestore.Client) repository.CategoryRepository {
	return &firestoreCategoryRepository{
		client: client,
	}
}

func (r *firestoreCategoryRepository) List(ctx context.Context) ([]*entity.Category, error) {
	iter := r.client.Collection("categories").
		Where("isActive", "==", true).
		OrderBy("name", firestore.Asc).
		Documents(ctx)

	var categories []*entity.Category
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate categories", err)
		}
		var category entity.Category
		if err := doc.DataTo(&category); err != nil {
			return nil, errors.Internal("Failed to parse category data", err)
		}
		categories = append(categories, &category)
	}

	return categories, nil
}

func (r *firestoreCategoryRepository) GetByID(ctx context.Context, id string) (*entity.Category, error) {
	doc, err := r.client.Collection("categories").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Category", err)
		}
		return nil, errors.Internal("Failed to get category", err)
	}

	var category entity.Category
	if err := doc.DataTo(&category); err != nil {
		return nil, errors.Internal("Failed to parse category data", err)
	}

	return &category, nil
}

func (r *firestoreCategoryRepository) GetBySlug(ctx context.Context, slug string) (*entity.Category, error) {
	iter := r.client.Collection("categories").Where("slug", "==", slug).Limit(1).Documents(ctx)
	doc, err := iter.Next()
	if err == iterator.Done {
		return nil, errors.NotFound("Category", nil)
	}
	if err != nil {
		return nil, errors.Internal("Failed to get category", err)
	}

	var category entity.Category
	if err := doc.DataTo(&category); err != nil {
		return nil, errors.Internal("Failed to parse category data", err)
	}

	return &category, nil
}
