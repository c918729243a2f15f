package usecase

import (
	"context"
	"time"

	"lokapasar/internal/domain/entity"
	"lokapasar/internal/domain/repository"
	"lokapasar/internal/state"
	"lokapasar/pkg/errors"
)

type StoreUseCase struct {
	storeRepo repository.StoreRepository
	registry  *state.Registry
}

func NewStoreUseCase(storeRepo repository.StoreRepository, registry *state.Registry) *StoreUseCase {
	return &StoreUseCase{
		storeRepo: storeRepo,
		registry:  registry,
	}
}

// seller returns the caller's seller-store container, wired to load the
// profile remotely at most once.
func (uc *StoreUseCase) seller(ctx context.Context, ownerID string) *state.SellerStore {
	return uc.registry.Seller(ctx, ownerID, func(ctx context.Context) (*entity.Store, error) {
		store, err := uc.storeRepo.GetByOwnerID(ctx, ownerID)
		if err != nil {
			if errors.Is(err, "NOT_FOUND") {
				return nil, nil
			}
			return nil, err
		}
		return store, nil
	})
}

// MyStore returns the caller's shop profile, or nil when none exists yet.
func (uc *StoreUseCase) MyStore(ctx context.Context, ownerID string) (*entity.Store, error) {
	return uc.seller(ctx, ownerID).Fetch(ctx)
}

type CreateStoreInput struct {
	Name        string
	Description string
	LogoURL     string
	BannerURL   string
	Street      string
	City        string
	Province    string
	PostalCode  string
}

func (uc *StoreUseCase) CreateStore(ctx context.Context, ownerID string, input CreateStoreInput) (*entity.Store, error) {
	existing, err := uc.seller(ctx, ownerID).Fetch(ctx)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.Conflict("You already have a store")
	}

	now := time.Now()
	store := &entity.Store{
		OwnerID:     ownerID,
		Name:        input.Name,
		Slug:        uniqueSlug(input.Name),
		Description: input.Description,
		LogoURL:     input.LogoURL,
		BannerURL:   input.BannerURL,
		Street:      input.Street,
		City:        input.City,
		Province:    input.Province,
		PostalCode:  input.PostalCode,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := uc.storeRepo.Create(ctx, store); err != nil {
		return nil, err
	}

	uc.seller(ctx, ownerID).Set(ctx, store)
	return store, nil
}

type UpdateStoreInput struct {
	Name        *string
	Description *string
	LogoURL     *string
	BannerURL   *string
	Street      *string
	City        *string
	Province    *string
	PostalCode  *string
	IsActive    *bool
}

func (uc *StoreUseCase) UpdateStore(ctx context.Context, ownerID string, input UpdateStoreInput) (*entity.Store, error) {
	store, err := uc.seller(ctx, ownerID).Fetch(ctx)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, errors.NotFound("Store", nil)
	}

	if input.Name != nil && *input.Name != store.Name {
		store.Name = *input.Name
		store.Slug = uniqueSlug(*input.Name)
	}
	if input.Description != nil {
		store.Description = *input.Description
	}
	if input.LogoURL != nil {
		store.LogoURL = *input.LogoURL
	}
	if input.BannerURL != nil {
		store.BannerURL = *input.BannerURL
	}
	if input.Street != nil {
		store.Street = *input.Street
	}
	if input.City != nil {
		store.City = *input.City
	}
	if input.Province != nil {
		store.Province = *input.Province
	}
	if input.PostalCode != nil {
		store.PostalCode = *input.PostalCode
	}
	if input.IsActive != nil {
		store.IsActive = *input.IsActive
	}

	if err := uc.storeRepo.Update(ctx, store); err != nil {
		return nil, err
	}

	uc.seller(ctx, ownerID).Set(ctx, store)
	return store, nil
}

func (uc *StoreUseCase) GetStoreBySlug(ctx context.Context, slug string) (*entity.Store, error) {
	return uc.storeRepo.GetBySlug(ctx, slug)
}

func (uc *StoreUseCase) GetStore(ctx context.Context, id string) (*entity.Store, error) {
	return uc.storeRepo.GetByID(ctx, id)
}

func (uc *StoreUseCase) ListStores(ctx context.Context, opts repository.ListOptions) ([]*entity.Store, int64, error) {
	return uc.storeRepo.List(ctx, opts)
}
