package repository

import (
	"context"

	"lokapasar/internal/domain/entity"
)

type CategoryRepository interface {
	List(ctx context.Context) ([]*entity.Category, error)
	GetByID(ctx context.Context, id string) (*entity.Category, error)
	GetBySlug(ctx context.Context, slug string) (*entity.Category, error)
}
