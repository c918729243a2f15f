package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"lokapasar/internal/domain/entity"
	"lokapasar/internal/domain/repository"
	"lokapasar/internal/usecase"
	"lokapasar/pkg/errors"
	"lokapasar/pkg/response"
)

type ProductHandler struct {
	productUseCase *usecase.ProductUseCase
	maxFileSize    int64
}

func NewProductHandler(productUseCase *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{
		productUseCase: productUseCase,
		maxFileSize:    5 * 1024 * 1024,
	}
}

// listOptions reads the shared read-path query parameters.
func listOptions(c echo.Context) repository.ListOptions {
	opts := repository.ListOptions{
		SearchQuery: c.QueryParam("search"),
	}
	if limit, err := strconv.Atoi(c.QueryParam("limit")); err == nil {
		opts.Limit = limit
	}
	if offset, err := strconv.Atoi(c.QueryParam("offset")); err == nil {
		opts.Offset = offset
	}
	if active := c.QueryParam("is_active"); active != "" {
		v, err := strconv.ParseBool(active)
		if err == nil {
			opts.IsActive = &v
		}
	}
	return opts
}

func (h *ProductHandler) ListProducts(c echo.Context) error {
	products, total, err := h.productUseCase.ListProducts(c.Request().Context(), listOptions(c))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"items": products,
		"count": total,
	})
}

func (h *ProductHandler) ListStoreProducts(c echo.Context) error {
	storeID := c.Param("storeId")

	products, total, err := h.productUseCase.ListStoreProducts(c.Request().Context(), storeID, listOptions(c))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"items": products,
		"count": total,
	})
}

func (h *ProductHandler) ListMyProducts(c echo.Context) error {
	uid := c.Get("uid").(string)

	products, total, err := h.productUseCase.ListMyProducts(c.Request().Context(), uid, listOptions(c))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"items": products,
		"count": total,
	})
}

func (h *ProductHandler) GetProduct(c echo.Context) error {
	product, err := h.productUseCase.GetProduct(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, product)
}

func (h *ProductHandler) GetProductBySlug(c echo.Context) error {
	product, err := h.productUseCase.GetProductBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, product)
}

type createProductRequest struct {
	CategoryID    string                  `json:"category_id" validate:"required"`
	Name          string                  `json:"name" validate:"required"`
	Description   string                  `json:"description"`
	Price         float64                 `json:"price" validate:"required,gt=0"`
	DiscountPrice *float64                `json:"discount_price"`
	Stock         int                     `json:"stock" validate:"min=0"`
	Images        []string                `json:"images"`
	Variants      []entity.ProductVariant `json:"variants"`
	IsActive      bool                    `json:"is_active"`
}

func (h *ProductHandler) CreateProduct(c echo.Context) error {
	var req createProductRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get("uid").(string)

	product, err := h.productUseCase.CreateProduct(c.Request().Context(), uid, usecase.CreateProductInput{
		CategoryID:    req.CategoryID,
		Name:          req.Name,
		Description:   req.Description,
		Price:         req.Price,
		DiscountPrice: req.DiscountPrice,
		Stock:         req.Stock,
		Images:        req.Images,
		Variants:      req.Variants,
		IsActive:      req.IsActive,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, product)
}

type updateProductRequest struct {
	CategoryID    *string                 `json:"category_id"`
	Name          *string                 `json:"name"`
	Description   *string                 `json:"description"`
	Price         *float64                `json:"price"`
	DiscountPrice *float64                `json:"discount_price"`
	Stock         *int                    `json:"stock"`
	Images        []string                `json:"images"`
	Variants      []entity.ProductVariant `json:"variants"`
	IsActive      *bool                   `json:"is_active"`
}

func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	var req updateProductRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get("uid").(string)

	product, err := h.productUseCase.UpdateProduct(c.Request().Context(), uid, c.Param("id"), usecase.UpdateProductInput{
		CategoryID:    req.CategoryID,
		Name:          req.Name,
		Description:   req.Description,
		Price:         req.Price,
		DiscountPrice: req.DiscountPrice,
		Stock:         req.Stock,
		Images:        req.Images,
		Variants:      req.Variants,
		IsActive:      req.IsActive,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, product)
}

func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	uid := c.Get("uid").(string)

	if err := h.productUseCase.DeleteProduct(c.Request().Context(), uid, c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"status": "deleted"})
}

func (h *ProductHandler) UploadImages(c echo.Context) error {
	uid := c.Get("uid").(string)
	productID := c.Param("id")

	form, err := c.MultipartForm()
	if err != nil {
		return response.Error(c, errors.BadRequest("Missing or invalid multipart form", err))
	}

	files := form.File["images"]
	if len(files) == 0 {
		return response.Error(c, errors.BadRequest("No images provided", nil))
	}

	uploads := make([]usecase.ImageUpload, 0, len(files))
	for _, file := range files {
		if file.Size > h.maxFileSize {
			return response.Error(c, errors.BadRequest("Image exceeds the maximum allowed size", nil))
		}
		src, err := file.Open()
		if err != nil {
			return response.Error(c, errors.Internal("Unable to read image", err))
		}
		defer src.Close()
		uploads = append(uploads, usecase.ImageUpload{
			ContentType: file.Header.Get("Content-Type"),
			Data:        src,
		})
	}

	urls, err := h.productUseCase.UploadProductImages(c.Request().Context(), uid, productID, uploads)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, map[string]interface{}{"urls": urls})
}
