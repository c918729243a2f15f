package handler

import (
	"github.com/labstack/echo/v4"

	"lokapasar/internal/domain/entity"
	"lokapasar/internal/usecase"
	"lokapasar/pkg/response"
)

type CartHandler struct {
	cartUseCase *usecase.CartUseCase
}

func NewCartHandler(cartUseCase *usecase.CartUseCase) *CartHandler {
	return &CartHandler{
		cartUseCase: cartUseCase,
	}
}

func (h *CartHandler) GetCart(c echo.Context) error {
	uid := c.Get("uid").(string)
	return response.Success(c, h.cartUseCase.GetCart(c.Request().Context(), uid))
}

type addToCartRequest struct {
	ProductID string                 `json:"product_id" validate:"required"`
	Quantity  int                    `json:"quantity" validate:"required,min=1"`
	Variant   entity.SelectedVariant `json:"variant"`
}

func (h *CartHandler) AddToCart(c echo.Context) error {
	var req addToCartRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get("uid").(string)

	summary, err := h.cartUseCase.AddToCart(c.Request().Context(), uid, req.ProductID, req.Quantity, req.Variant)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, summary)
}

type updateQuantityRequest struct {
	StoreID   string                 `json:"store_id" validate:"required"`
	ProductID string                 `json:"product_id" validate:"required"`
	Quantity  int                    `json:"quantity"`
	Variant   entity.SelectedVariant `json:"variant"`
}

func (h *CartHandler) UpdateQuantity(c echo.Context) error {
	var req updateQuantityRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get("uid").(string)

	summary := h.cartUseCase.UpdateQuantity(c.Request().Context(), uid, req.StoreID, req.ProductID, req.Quantity, req.Variant)
	return response.Success(c, summary)
}

type removeFromCartRequest struct {
	StoreID   string                 `json:"store_id" validate:"required"`
	ProductID string                 `json:"product_id" validate:"required"`
	Variant   entity.SelectedVariant `json:"variant"`
}

func (h *CartHandler) RemoveFromCart(c echo.Context) error {
	var req removeFromCartRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get("uid").(string)

	summary := h.cartUseCase.RemoveFromCart(c.Request().Context(), uid, req.StoreID, req.ProductID, req.Variant)
	return response.Success(c, summary)
}

func (h *CartHandler) ClearCart(c echo.Context) error {
	uid := c.Get("uid").(string)
	return response.Success(c, h.cartUseCase.ClearCart(c.Request().Context(), uid))
}

func (h *CartHandler) ClearStoreCart(c echo.Context) error {
	uid := c.Get("uid").(string)
	storeID := c.Param("storeId")
	return response.Success(c, h.cartUseCase.ClearStoreCart(c.Request().Context(), uid, storeID))
}

func (h *CartHandler) GetStoreSummary(c echo.Context) error {
	uid := c.Get("uid").(string)
	storeID := c.Param("storeId")
	return response.Success(c, h.cartUseCase.GetStoreSummary(c.Request().Context(), uid, storeID))
}
