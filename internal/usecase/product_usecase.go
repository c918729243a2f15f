package usecase

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/gosimple/slug"
	"golang.org/x/sync/errgroup"

	"lokapasar/internal/domain/entity"
	"lokapasar/internal/domain/repository"
	"lokapasar/pkg/errors"
	"lokapasar/pkg/logger"
)

type ProductUseCase struct {
	productRepo  repository.ProductRepository
	storeRepo    repository.StoreRepository
	categoryRepo repository.CategoryRepository
	storage      ObjectStorage
}

func NewProductUseCase(
	productRepo repository.ProductRepository,
	storeRepo repository.StoreRepository,
	categoryRepo repository.CategoryRepository,
	storage ObjectStorage,
) *ProductUseCase {
	return &ProductUseCase{
		productRepo:  productRepo,
		storeRepo:    storeRepo,
		categoryRepo: categoryRepo,
		storage:      storage,
	}
}

// uniqueSlug derives a URL-safe slug from a name and appends the current
// unix-millisecond clock so two products with the same name never collide.
func uniqueSlug(name string) string {
	return slug.Make(name) + "-" + strconv.FormatInt(time.Now().UnixMilli(), 10)
}

type CreateProductInput struct {
	CategoryID    string
	Name          string
	Description   string
	Price         float64
	DiscountPrice *float64
	Stock         int
	Images        []string
	Variants      []entity.ProductVariant
	IsActive      bool
}

func (uc *ProductUseCase) CreateProduct(ctx context.Context, ownerID string, input CreateProductInput) (*entity.Product, error) {
	store, err := uc.storeRepo.GetByOwnerID(ctx, ownerID)
	if err != nil {
		return nil, errors.BadRequest("You must open a store before selling", err)
	}

	if _, err := uc.categoryRepo.GetByID(ctx, input.CategoryID); err != nil {
		return nil, errors.BadRequest("Invalid category", err)
	}

	now := time.Now()
	product := &entity.Product{
		StoreID:       store.ID,
		CategoryID:    input.CategoryID,
		Name:          input.Name,
		Slug:          uniqueSlug(input.Name),
		Description:   input.Description,
		Images:        input.Images,
		Price:         input.Price,
		DiscountPrice: input.DiscountPrice,
		Stock:         input.Stock,
		Variants:      input.Variants,
		IsActive:      input.IsActive,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := uc.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	// Best effort: the cached counter drifting is acceptable, the product
	// row is the source of truth.
	if err := uc.storeRepo.AdjustProductCount(ctx, store.ID, 1); err != nil {
		logger.Warn("Failed to increment product count for store %s: %v", store.ID, err)
	}

	return product, nil
}

type UpdateProductInput struct {
	CategoryID    *string
	Name          *string
	Description   *string
	Price         *float64
	DiscountPrice *float64
	Stock         *int
	Images        []string
	Variants      []entity.ProductVariant
	IsActive      *bool
}

func (uc *ProductUseCase) UpdateProduct(ctx context.Context, ownerID, id string, input UpdateProductInput) (*entity.Product, error) {
	product, _, err := uc.ownedProduct(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	if input.CategoryID != nil {
		if _, err := uc.categoryRepo.GetByID(ctx, *input.CategoryID); err != nil {
			return nil, errors.BadRequest("Invalid category", err)
		}
		product.CategoryID = *input.CategoryID
	}

	// The slug is re-derived only when the name is part of the payload.
	if input.Name != nil && *input.Name != product.Name {
		product.Name = *input.Name
		product.Slug = uniqueSlug(*input.Name)
	}
	if input.Description != nil {
		product.Description = *input.Description
	}
	if input.Price != nil {
		product.Price = *input.Price
	}
	if input.DiscountPrice != nil {
		product.DiscountPrice = input.DiscountPrice
	}
	if input.Stock != nil {
		product.Stock = *input.Stock
	}
	if input.Images != nil {
		product.Images = input.Images
	}
	if input.Variants != nil {
		product.Variants = input.Variants
	}
	if input.IsActive != nil {
		product.IsActive = *input.IsActive
	}

	if err := uc.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

// DeleteProduct removes the row and its stored images. Image removal
// failures (a malformed URL included) surface as the operation's error;
// the counter decrement is best effort.
func (uc *ProductUseCase) DeleteProduct(ctx context.Context, ownerID, id string) error {
	product, store, err := uc.ownedProduct(ctx, ownerID, id)
	if err != nil {
		return err
	}

	for _, imageURL := range product.Images {
		if err := uc.storage.Delete(ctx, imageURL); err != nil {
			return errors.BadRequest("Failed to remove product image", err)
		}
	}

	if err := uc.productRepo.Delete(ctx, id); err != nil {
		return err
	}

	if err := uc.storeRepo.AdjustProductCount(ctx, store.ID, -1); err != nil {
		logger.Warn("Failed to decrement product count for store %s: %v", store.ID, err)
	}

	return nil
}

func (uc *ProductUseCase) GetProduct(ctx context.Context, id string) (*entity.Product, error) {
	return uc.productRepo.GetByID(ctx, id)
}

func (uc *ProductUseCase) GetProductBySlug(ctx context.Context, slug string) (*entity.Product, error) {
	return uc.productRepo.GetBySlug(ctx, slug)
}

func (uc *ProductUseCase) ListProducts(ctx context.Context, opts repository.ListOptions) ([]*entity.Product, int64, error) {
	return uc.productRepo.List(ctx, opts)
}

func (uc *ProductUseCase) ListStoreProducts(ctx context.Context, storeID string, opts repository.ListOptions) ([]*entity.Product, int64, error) {
	return uc.productRepo.ListByStoreID(ctx, storeID, opts)
}

func (uc *ProductUseCase) ListMyProducts(ctx context.Context, ownerID string, opts repository.ListOptions) ([]*entity.Product, int64, error) {
	store, err := uc.storeRepo.GetByOwnerID(ctx, ownerID)
	if err != nil {
		return nil, 0, errors.NotFound("Store", err)
	}
	return uc.productRepo.ListByStoreID(ctx, store.ID, opts)
}

// ImageUpload is one file blob destined for object storage.
type ImageUpload struct {
	ContentType string
	Data        io.Reader
}

// UploadProductImages stores every blob concurrently under a path
// namespaced by product id, upload timestamp and input position, and
// returns the public URLs in input order. Any single failure fails the
// whole call; objects already written are not rolled back.
func (uc *ProductUseCase) UploadProductImages(ctx context.Context, ownerID, productID string, files []ImageUpload) ([]string, error) {
	if len(files) == 0 {
		return nil, errors.BadRequest("No files to upload", nil)
	}

	if _, _, err := uc.ownedProduct(ctx, ownerID, productID); err != nil {
		return nil, err
	}

	stamp := time.Now().UnixNano()
	urls := make([]string, len(files))

	g, gctx := errgroup.WithContext(ctx)
	for i, file := range files {
		i, file := i, file
		g.Go(func() error {
			path := fmt.Sprintf("products/%s/%d-%d", productID, stamp, i)
			url, err := uc.storage.Upload(gctx, path, file.ContentType, file.Data)
			if err != nil {
				return err
			}
			urls[i] = url
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, errors.Internal("Failed to upload product images", err)
	}

	return urls, nil
}

func (uc *ProductUseCase) ownedProduct(ctx context.Context, ownerID, id string) (*entity.Product, *entity.Store, error) {
	product, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	store, err := uc.storeRepo.GetByOwnerID(ctx, ownerID)
	if err != nil {
		return nil, nil, errors.Forbidden("You don't have permission to manage this product", err)
	}
	if product.StoreID != store.ID {
		return nil, nil, errors.Forbidden("You don't have permission to manage this product", nil)
	}

	return product, store, nil
}
