package handler

import (
	"github.com/labstack/echo/v4"

	"lokapasar/internal/usecase"
	"lokapasar/pkg/response"
)

type StoreHandler struct {
	storeUseCase *usecase.StoreUseCase
}

func NewStoreHandler(storeUseCase *usecase.StoreUseCase) *StoreHandler {
	return &StoreHandler{
		storeUseCase: storeUseCase,
	}
}

func (h *StoreHandler) ListStores(c echo.Context) error {
	stores, total, err := h.storeUseCase.ListStores(c.Request().Context(), listOptions(c))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"items": stores,
		"count": total,
	})
}

func (h *StoreHandler) GetStore(c echo.Context) error {
	store, err := h.storeUseCase.GetStore(c.Request().Context(), c.Param("storeId"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, store)
}

func (h *StoreHandler) GetStoreBySlug(c echo.Context) error {
	store, err := h.storeUseCase.GetStoreBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, store)
}

func (h *StoreHandler) MyStore(c echo.Context) error {
	uid := c.Get("uid").(string)

	store, err := h.storeUseCase.MyStore(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, store)
}

type createStoreRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	LogoURL     string `json:"logo_url" validate:"omitempty,url"`
	BannerURL   string `json:"banner_url" validate:"omitempty,url"`
	Street      string `json:"street"`
	City        string `json:"city"`
	Province    string `json:"province"`
	PostalCode  string `json:"postal_code"`
}

func (h *StoreHandler) CreateStore(c echo.Context) error {
	var req createStoreRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get("uid").(string)

	store, err := h.storeUseCase.CreateStore(c.Request().Context(), uid, usecase.CreateStoreInput{
		Name:        req.Name,
		Description: req.Description,
		LogoURL:     req.LogoURL,
		BannerURL:   req.BannerURL,
		Street:      req.Street,
		City:        req.City,
		Province:    req.Province,
		PostalCode:  req.PostalCode,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, store)
}

type updateStoreRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	LogoURL     *string `json:"logo_url"`
	BannerURL   *string `json:"banner_url"`
	Street      *string `json:"street"`
	City        *string `json:"city"`
	Province    *string `json:"province"`
	PostalCode  *string `json:"postal_code"`
	IsActive    *bool   `json:"is_active"`
}

func (h *StoreHandler) UpdateStore(c echo.Context) error {
	var req updateStoreRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get("uid").(string)

	store, err := h.storeUseCase.UpdateStore(c.Request().Context(), uid, usecase.UpdateStoreInput{
		Name:        req.Name,
		Description: req.Description,
		LogoURL:     req.LogoURL,
		BannerURL:   req.BannerURL,
		Street:      req.Street,
		City:        req.City,
		Province:    req.Province,
		PostalCode:  req.PostalCode,
		IsActive:    req.IsActive,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, store)
}
