package usecase

import (
	"context"

	"lokapasar/internal/domain/entity"
	"lokapasar/internal/domain/repository"
)

type CategoryUseCase struct {
	categoryRepo repository.CategoryRepository
}

func NewCategoryUseCase(categoryRepo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{
		categoryRepo: categoryRepo,
	}
}

func (uc *CategoryUseCase) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	return uc.categoryRepo.List(ctx)
}

func (uc *CategoryUseCase) GetCategoryBySlug(ctx context.Context, slug string) (*entity.Category, error) {
	return uc.categoryRepo.GetBySlug(ctx, slug)
}
