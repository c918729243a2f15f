package handler

import (
	"github.com/labstack/echo/v4"

	"lokapasar/internal/usecase"
	"lokapasar/pkg/response"
	"lokapasar/pkg/utils"
)

type WishlistHandler struct {
	wishlistUseCase *usecase.WishlistUseCase
}

func NewWishlistHandler(wishlistUseCase *usecase.WishlistUseCase) *WishlistHandler {
	return &WishlistHandler{
		wishlistUseCase: wishlistUseCase,
	}
}

func (h *WishlistHandler) GetWishlist(c echo.Context) error {
	uid := c.Get("uid").(string)
	params := utils.GetPaginationParams(c)

	items, total, err := h.wishlistUseCase.GetWishlist(c.Request().Context(), uid, params.PageSize, params.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, items, total, params.Page, params.PageSize)
}

type wishlistRequest struct {
	ProductID string `json:"product_id" validate:"required"`
}

func (h *WishlistHandler) AddToWishlist(c echo.Context) error {
	var req wishlistRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get("uid").(string)

	item, err := h.wishlistUseCase.AddToWishlist(c.Request().Context(), uid, req.ProductID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, item)
}

func (h *WishlistHandler) CheckWishlist(c echo.Context) error {
	uid := c.Get("uid").(string)
	productID := c.Param("productId")

	in, err := h.wishlistUseCase.IsInWishlist(c.Request().Context(), uid, productID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]bool{"in_wishlist": in})
}

func (h *WishlistHandler) RemoveFromWishlist(c echo.Context) error {
	uid := c.Get("uid").(string)
	productID := c.Param("productId")

	if err := h.wishlistUseCase.RemoveFromWishlist(c.Request().Context(), uid, productID); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"status": "removed"})
}
